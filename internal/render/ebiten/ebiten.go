// Package ebiten implements the render interfaces on top of Ebitengine.
package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/stillirise/internal/render"
)

// Debug font cell size in pixels
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Renderer draws with ebiten's vector package and the debug font.
// It is not safe for concurrent use; ebiten calls Draw on one goroutine.
type Renderer struct {
	// Scratch surface for tinting text, grown on demand
	glyphs *ebiten.Image
}

// NewRenderer creates an ebiten renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{img: ebiten.NewImage(width, height)}
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, false)
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(unwrap(dst), x, y, width, height, strokeWidth, clr, false)
}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(unwrap(dst), x0, y0, x1, y1, strokeWidth, clr, true)
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), x, y, radius, clr, true)
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	vector.StrokeCircle(unwrap(dst), x, y, radius, strokeWidth, clr, true)
}

// DrawText prints with the debug font. The font is white, so the line is
// printed to a scratch surface first and drawn back tinted and scaled.
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	w, h := r.MeasureText(str, 1)
	if w == 0 {
		return
	}

	area := image.Rect(0, 0, w, h)
	if r.glyphs == nil || !area.In(r.glyphs.Bounds()) {
		gw, gh := w, h
		if r.glyphs != nil {
			gw = max(gw, r.glyphs.Bounds().Dx())
			gh = max(gh, r.glyphs.Bounds().Dy())
		}
		r.glyphs = ebiten.NewImage(gw, gh)
	}

	line := r.glyphs.SubImage(area).(*ebiten.Image)
	line.Clear()
	ebitenutil.DebugPrintAt(line, str, 0, 0)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	unwrap(dst).DrawImage(line, op)
}

// MeasureText assumes one glyph cell per byte, which holds for the ASCII
// the climb prints.
func (r *Renderer) MeasureText(str string, scale float64) (width, height int) {
	if scale <= 0 {
		scale = 1
	}
	return int(float64(len(str)*glyphWidth) * scale), int(glyphHeight * scale)
}

// Image wraps an ebiten image
type Image struct {
	img *ebiten.Image
}

func unwrap(i render.Image) *ebiten.Image {
	return i.(*Image).img
}

func (i *Image) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) Fill(clr color.Color) {
	i.img.Fill(clr)
}

func (i *Image) Clear() {
	i.img.Clear()
}

// DrawImage draws src as a sprite placed by opts
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	sprite := unwrap(src)
	if opts == nil {
		i.img.DrawImage(sprite, nil)
		return
	}

	w, h := src.Size()
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(opts.Rotation)
	op.GeoM.Translate(opts.X+float64(w)/2, opts.Y+float64(h)/2)
	if opts.Alpha > 0 {
		op.ColorScale.ScaleAlpha(opts.Alpha)
	}
	i.img.DrawImage(sprite, op)
}

var keys = map[render.Key]ebiten.Key{
	render.KeyW:      ebiten.KeyW,
	render.KeyA:      ebiten.KeyA,
	render.KeyD:      ebiten.KeyD,
	render.KeyI:      ebiten.KeyI,
	render.KeyJ:      ebiten.KeyJ,
	render.KeyL:      ebiten.KeyL,
	render.KeyT:      ebiten.KeyT,
	render.KeyP:      ebiten.KeyP,
	render.KeyR:      ebiten.KeyR,
	render.KeyUp:     ebiten.KeyArrowUp,
	render.KeyDown:   ebiten.KeyArrowDown,
	render.KeyEnter:  ebiten.KeyEnter,
	render.KeySpace:  ebiten.KeySpace,
	render.KeyEscape: ebiten.KeyEscape,
}

var buttons = map[render.MouseButton]ebiten.MouseButton{
	render.MouseButtonLeft: ebiten.MouseButtonLeft,
}

// Input reads ebiten's keyboard and mouse state
type Input struct{}

// NewInput creates an ebiten input reader
func NewInput() *Input {
	return &Input{}
}

func (Input) IsKeyPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && ebiten.IsKeyPressed(k)
}

func (Input) IsKeyJustPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

func (Input) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

func (Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	b, ok := buttons[button]
	return ok && inpututil.IsMouseButtonJustPressed(b)
}

// Engine runs a game in an ebiten window
type Engine struct{}

// NewEngine creates an ebiten engine
func NewEngine() *Engine {
	return &Engine{}
}

// Run applies the window settings and blocks in ebiten's main loop
func (Engine) Run(game render.Game, w render.Window) error {
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	if w.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	if w.TPS > 0 {
		ebiten.SetTPS(w.TPS)
	}
	return ebiten.RunGame(&loop{game: game})
}

// loop adapts a render.Game to ebiten.Game
type loop struct {
	game render.Game
}

func (l *loop) Update() error {
	err := l.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (l *loop) Draw(screen *ebiten.Image) {
	l.game.Draw(&Image{img: screen})
}

func (l *loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return l.game.Layout(outsideWidth, outsideHeight)
}
