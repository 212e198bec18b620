// Package feedback animates the floating hearts shown when an avatar picks
// something up. Hearts live in screen space and expire by frame age.
package feedback

import (
	"math"

	"chosenoffset.com/stillirise/internal/economy"
	"chosenoffset.com/stillirise/internal/simulation"
)

// Heart is one floating pickup indicator
type Heart struct {
	ID      int
	X, Y    float64 // Screen position; Y is relative to the spawning side's camera
	Good    bool
	Opacity float64
	Age     int // Frames since spawn
}

// Emitter owns the active hearts
type Emitter struct {
	rise   float64
	fade   float64
	maxAge int

	hearts []Heart
	nextID int
}

// NewEmitter creates an emitter with no active hearts
func NewEmitter(cfg simulation.FeedbackConfig) *Emitter {
	return &Emitter{
		rise:   cfg.Rise,
		fade:   cfg.Fade,
		maxAge: cfg.MaxAge,
	}
}

// Spawn adds a heart at the pickup's position as seen by a camera at cameraY
func (e *Emitter) Spawn(p economy.Pickup, cameraY float64) Heart {
	h := Heart{
		ID:      e.nextID,
		X:       p.X,
		Y:       p.Y - cameraY,
		Good:    p.Good,
		Opacity: 1,
	}
	e.nextID++
	e.hearts = append(e.hearts, h)
	return h
}

// Step advances every heart one frame and drops those past their max age
func (e *Emitter) Step() {
	kept := e.hearts[:0]
	for _, h := range e.hearts {
		h.Y -= e.rise
		h.Opacity = math.Max(0, h.Opacity-e.fade)
		h.Age++
		if h.Age >= e.maxAge {
			continue
		}
		kept = append(kept, h)
	}
	e.hearts = kept
}

// Active returns a copy of the live hearts in spawn order
func (e *Emitter) Active() []Heart {
	out := make([]Heart, len(e.hearts))
	copy(out, e.hearts)
	return out
}

// Clear drops every heart and restarts id assignment
func (e *Emitter) Clear() {
	e.hearts = nil
	e.nextID = 0
}

// MaxAge returns the frame count after which a heart retires
func (e *Emitter) MaxAge() int {
	return e.maxAge
}

// Pose returns the draw offset and rotation in degrees for a heart.
// Good hearts float straight up; bad hearts shake, bob and wobble.
func (e *Emitter) Pose(h Heart) (dx, dy, rotation float64) {
	if h.Good {
		return 0, 0, 0
	}
	age := float64(h.Age)
	progress := age / float64(e.maxAge)
	dx = math.Sin(age*0.5) * 3
	dy = math.Sin(progress*math.Pi) * 8
	rotation = math.Sin(age*0.4) * 5
	return dx, dy, rotation
}
