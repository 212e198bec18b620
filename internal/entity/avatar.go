// Package entity provides the two climbing avatars. An Avatar is a plain
// mutable record owned by the match and updated in place every frame.
package entity

import (
	"chosenoffset.com/stillirise/internal/core/geom"
	"chosenoffset.com/stillirise/internal/world"
)

// Avatar represents one player's climber, confined to its half of the arena
type Avatar struct {
	Side world.Side

	// Position (top-left corner, y grows downward)
	X, Y float64

	// Velocity in units per frame
	VX, VY float64

	Width  float64
	Height float64

	// IsJumping is cleared on landing; a jump is only allowed while false
	IsJumping bool

	Score int
	Lives int

	// MaxHeightReached is the smallest y ever reached this match
	MaxHeightReached float64

	// Spawn point, kept for resets and the fall-back rule
	SpawnX, SpawnY float64
	StartLives     int
}

// Intent is one frame of resolved control input for an avatar.
// Jump is true only on the frame the jump key went down.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

// NewAvatar creates an avatar standing at its spawn point
func NewAvatar(side world.Side, spawnX, spawnY, width, height float64, lives int) *Avatar {
	a := &Avatar{
		Side:       side,
		Width:      width,
		Height:     height,
		SpawnX:     spawnX,
		SpawnY:     spawnY,
		StartLives: lives,
	}
	a.Reset()
	return a
}

// Reset returns the avatar to its fresh spawn state
func (a *Avatar) Reset() {
	a.X = a.SpawnX
	a.Y = a.SpawnY
	a.VX = 0
	a.VY = 0
	a.IsJumping = false
	a.Score = 0
	a.Lives = a.StartLives
	a.MaxHeightReached = a.SpawnY
}

// Bottom returns the y of the avatar's feet
func (a *Avatar) Bottom() float64 {
	return a.Y + a.Height
}

// Rect returns the avatar's bounding box
func (a *Avatar) Rect() geom.Rect {
	return geom.Rect{X: a.X, Y: a.Y, W: a.Width, H: a.Height}
}

// Alive reports whether the avatar still has lives left
func (a *Avatar) Alive() bool {
	return a.Lives > 0
}

// Climbed returns how far above the spawn point the avatar has ever been
func (a *Avatar) Climbed() float64 {
	return a.SpawnY - a.MaxHeightReached
}
