// Package menu draws the title and game-over overlays and turns clicks and
// key presses on them into lifecycle choices.
package menu

import (
	"fmt"
	"image/color"

	"chosenoffset.com/stillirise/internal/render"
)

// Choice is what the player picked on an overlay
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceStart
	ChoiceRestart
	ChoiceExit
)

// SideSummary is one side's result for the game-over screen
type SideSummary struct {
	Label   string
	Score   int
	Climbed float64
	Lives   int
	Good    int
	Bad     int
}

// Summary is the end-of-match report
type Summary struct {
	Left  SideSummary
	Right SideSummary
	Best      float64 // Highest climb this session, 0 when unknown
	BestScore int     // Highest single-side score this session
}

// SessionLine reports the session bests, or "" before any are known
func (s Summary) SessionLine() string {
	if s.Best <= 0 && s.BestScore <= 0 {
		return ""
	}
	return fmt.Sprintf("Session best: %.0fm climbed, %d pts", s.Best, s.BestScore)
}

// Verdict names the side that climbed higher, or reports a tie
func (s Summary) Verdict() string {
	switch {
	case s.Left.Climbed > s.Right.Climbed:
		return fmt.Sprintf("%s climbed higher", s.Left.Label)
	case s.Right.Climbed > s.Left.Climbed:
		return fmt.Sprintf("%s climbed higher", s.Right.Label)
	default:
		return "Both climbers reached the same height"
	}
}

// Menu handles the title and game-over overlays
type Menu struct {
	renderer     render.Renderer
	input        render.InputManager
	screenWidth  int
	screenHeight int

	// Game-over selection: 0 = restart, 1 = exit
	selected int
}

// NewMenu creates the overlay handler
func NewMenu(r render.Renderer, input render.InputManager, width, height int) *Menu {
	return &Menu{
		renderer:     r,
		input:        input,
		screenWidth:  width,
		screenHeight: height,
	}
}

// SetSize updates the screen dimensions
func (m *Menu) SetSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
}

// UpdateTitle returns ChoiceStart when the player starts the climb
func (m *Menu) UpdateTitle() Choice {
	if m.input.IsKeyJustPressed(render.KeyEnter) || m.input.IsKeyJustPressed(render.KeySpace) {
		return ChoiceStart
	}
	if m.clicked(m.startButton()) {
		return ChoiceStart
	}
	return ChoiceNone
}

// UpdateGameOver handles the restart / exit choice
func (m *Menu) UpdateGameOver() Choice {
	if m.input.IsKeyJustPressed(render.KeyUp) {
		m.selected = 0
	}
	if m.input.IsKeyJustPressed(render.KeyDown) {
		m.selected = 1
	}

	if m.input.IsKeyJustPressed(render.KeyR) {
		return ChoiceRestart
	}
	if m.input.IsKeyJustPressed(render.KeyEscape) {
		return ChoiceExit
	}
	if m.input.IsKeyJustPressed(render.KeyEnter) || m.input.IsKeyJustPressed(render.KeySpace) {
		if m.selected == 1 {
			return ChoiceExit
		}
		return ChoiceRestart
	}

	restart, exit := m.gameOverButtons()
	if m.clicked(restart) {
		return ChoiceRestart
	}
	if m.clicked(exit) {
		return ChoiceExit
	}
	return ChoiceNone
}

// ResetSelection puts the game-over cursor back on restart
func (m *Menu) ResetSelection() {
	m.selected = 0
}

func (m *Menu) clicked(r rect) bool {
	if !m.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		return false
	}
	x, y := m.input.GetCursorPosition()
	return pointInRect(x, y, r)
}

// DrawTitle renders the intro overlay with the controls and item legend
func (m *Menu) DrawTitle(screen render.Image) {
	m.drawBackdrop(screen)

	white := color.RGBA{255, 255, 255, 255}
	grey := color.RGBA{160, 160, 160, 255}

	m.drawCentered(screen, "S T I L L   I   R I S E", 80, grey, 1.0)
	m.drawCentered(screen, "Two players, two paths, one climb.", 110, white, 1.5)
	m.drawCentered(screen, "Climb as high as you can. Collect good items to stay alive,", 150, grey, 1.0)
	m.drawCentered(screen, "avoid bad items and falling off the screen.", 166, grey, 1.0)
	m.drawCentered(screen, "The left side is more stable; the right side moves.", 182, grey, 1.0)

	left := m.screenWidth/4 - 90
	right := m.screenWidth*3/4 - 90
	m.renderer.DrawText(screen, "Good Path (Left)", left, 230, white, 1.2)
	m.renderer.DrawText(screen, "A  Move Left", left, 256, grey, 1.0)
	m.renderer.DrawText(screen, "W  Jump", left, 272, grey, 1.0)
	m.renderer.DrawText(screen, "D  Move Right", left, 288, grey, 1.0)

	m.renderer.DrawText(screen, "Hard Path (Right)", right, 230, white, 1.2)
	m.renderer.DrawText(screen, "J  Move Left", right, 256, grey, 1.0)
	m.renderer.DrawText(screen, "I  Jump", right, 272, grey, 1.0)
	m.renderer.DrawText(screen, "L  Move Right", right, 288, grey, 1.0)
	m.renderer.DrawText(screen, "T or click TUPIT: extra books", right, 304, grey, 1.0)

	m.drawCentered(screen, "Good: book, food, money = +1 life, +10 score", 350, color.RGBA{134, 239, 172, 255}, 1.0)
	m.drawCentered(screen, "Bad: gun, drug, police, baby = -1 life", 366, color.RGBA{252, 165, 165, 255}, 1.0)
	m.drawCentered(screen, "Fall off the screen or back to the start and the climb ends for both.", 382, grey, 1.0)

	m.drawButton(screen, m.startButton(), "START GAME", true)
	m.drawCentered(screen, "[Press ENTER or SPACE]", m.startButton().y+m.startButton().h+12, grey, 1.0)
}

// DrawGameOver renders the end-of-match overlay
func (m *Menu) DrawGameOver(screen render.Image, s Summary) {
	m.drawBackdrop(screen)

	white := color.RGBA{255, 255, 255, 255}
	grey := color.RGBA{200, 200, 200, 255}

	m.drawCentered(screen, "GAME OVER", 120, white, 2.0)
	m.drawCentered(screen, s.Verdict(), 160, grey, 1.0)

	y := 200
	for _, side := range []SideSummary{s.Left, s.Right} {
		line := fmt.Sprintf("%s Score: %d   Height: %.0f   Good: %d   Bad: %d", side.Label, side.Score, side.Climbed, side.Good, side.Bad)
		m.drawCentered(screen, line, y, grey, 1.0)
		y += 20
	}
	if line := s.SessionLine(); line != "" {
		m.drawCentered(screen, line, y+10, white, 1.0)
	}

	restart, exit := m.gameOverButtons()
	m.drawButton(screen, restart, "RESTART", m.selected == 0)
	m.drawButton(screen, exit, "EXIT", m.selected == 1)
	m.drawCentered(screen, "[R] restart   [ESC] exit", restart.y+restart.h+16, grey, 1.0)
}

func (m *Menu) drawBackdrop(screen render.Image) {
	m.renderer.FillRect(screen, 0, 0, float32(m.screenWidth), float32(m.screenHeight), color.RGBA{17, 24, 39, 235})
}

func (m *Menu) drawCentered(screen render.Image, text string, y int, clr color.Color, scale float64) {
	w, _ := m.renderer.MeasureText(text, scale)
	m.renderer.DrawText(screen, text, (m.screenWidth-w)/2, y, clr, scale)
}

func (m *Menu) drawButton(screen render.Image, r rect, label string, selected bool) {
	fill := color.RGBA{55, 65, 81, 255}
	if selected {
		fill = color.RGBA{229, 231, 235, 255}
	}
	m.renderer.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), fill)
	m.renderer.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, color.RGBA{255, 255, 255, 255})

	tw, th := m.renderer.MeasureText(label, 1.0)
	m.renderer.DrawText(screen, label, r.x+(r.w-tw)/2, r.y+(r.h-th)/2, color.RGBA{0, 0, 0, 255}, 1.0)
}

func (m *Menu) startButton() rect {
	return rect{x: m.screenWidth/2 - 80, y: 440, w: 160, h: 36}
}

func (m *Menu) gameOverButtons() (restart, exit rect) {
	restart = rect{x: m.screenWidth/2 - 170, y: 300, w: 160, h: 36}
	exit = rect{x: m.screenWidth/2 + 10, y: 300, w: 160, h: 36}
	return restart, exit
}

// Helper types and functions

type rect struct {
	x, y, w, h int
}

func pointInRect(px, py int, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}
