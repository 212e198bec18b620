// Package render is the seam between the climb and a graphics backend. The
// desktop frontend draws only shapes, debug text and a few sprites it paints
// itself, so the surface stays small.
package render

import (
	"errors"
	"image/color"
)

// Renderer draws primitives onto images
type Renderer interface {
	NewImage(width, height int) Image

	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// DrawText draws a single line with its top-left corner at (x, y)
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image is a surface that can be drawn to, or drawn as a sprite
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	Clear()
	DrawImage(src Image, opts *DrawImageOptions)
}

// DrawImageOptions places a sprite. The sprite is scaled and rotated about
// its own center, then its top-left corner lands on (X, Y).
type DrawImageOptions struct {
	X, Y     float64
	Rotation float64 // Radians, clockwise on screen
	Scale    float64 // Zero means 1
	Alpha    float32 // Zero means opaque
}

// InputManager reports keyboard and mouse state for the current tick
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key is a key the climb listens to
type Key int

// W/A/D drive the left climber, I/J/L the right one
const (
	KeyW Key = iota
	KeyA
	KeyD
	KeyI
	KeyJ
	KeyL
	KeyT // Power-up
	KeyP // Pause
	KeyR // Restart
	KeyUp
	KeyDown
	KeyEnter
	KeySpace
	KeyEscape
)

// MouseButton is a mouse button the climb listens to
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
)

// Game is driven by an Engine once per tick
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// ErrQuit is returned from Game.Update to end the loop cleanly.
var ErrQuit = errors.New("quit")

// Window describes the desktop window a game runs in
type Window struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	TPS       int // Updates per second, zero keeps the backend default
}

// Engine owns the main loop. Run blocks until the window closes or Update
// returns ErrQuit, which is not reported as an error.
type Engine interface {
	Run(game Game, w Window) error
}
