// Package physics integrates avatar motion and resolves landings on
// one-sided platforms. The same resolver serves both avatars; the collision
// space only offers each avatar its own side's platforms and the ground.
package physics

import (
	"chosenoffset.com/stillirise/internal/core/geom"
	"chosenoffset.com/stillirise/internal/entity"
	"chosenoffset.com/stillirise/internal/simulation"
	"chosenoffset.com/stillirise/internal/world"
)

// Termination describes why an avatar was knocked out by the physics rules
type Termination int

const (
	TerminationNone Termination = iota
	TerminationFellOffScreen
	TerminationFellBackToStart
)

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "none"
	case TerminationFellOffScreen:
		return "fell off screen"
	case TerminationFellBackToStart:
		return "fell back to start"
	default:
		return "unknown"
	}
}

// Resolver applies the per-frame physics rules
type Resolver struct {
	physics     simulation.PhysicsConfig
	termination simulation.TerminationConfig
	arenaWidth  float64
	arenaHeight float64
	halfWidth   float64
}

// NewResolver creates a resolver for the given rules
func NewResolver(cfg *simulation.Config) *Resolver {
	return &Resolver{
		physics:     cfg.Physics,
		termination: cfg.Termination,
		arenaWidth:  cfg.Arena.Width,
		arenaHeight: cfg.Arena.Height,
		halfWidth:   cfg.HalfWidth(),
	}
}

// ApplyIntent sets horizontal velocity from held keys and starts a jump when
// the avatar is grounded.
func (r *Resolver) ApplyIntent(a *entity.Avatar, in entity.Intent) {
	switch {
	case in.Left:
		a.VX = -r.physics.MoveSpeed
	case in.Right:
		a.VX = r.physics.MoveSpeed
	default:
		a.VX = 0
	}

	if in.Jump && !a.IsJumping {
		a.VY = r.physics.JumpImpulse
		a.IsJumping = true
	}
}

// Bounds returns the horizontal range an avatar's left edge may occupy
func (r *Resolver) Bounds(a *entity.Avatar) (minX, maxX float64) {
	if a.Side == world.SideRight {
		return r.halfWidth, r.arenaWidth - a.Width
	}
	return 0, r.halfWidth - a.Width
}

// Integrate advances the avatar one frame and lands it on the highest
// platform it crossed. Candidates come from the space around the swept feet.
// A nil space means nothing to land on. Returns true when the avatar landed.
func (r *Resolver) Integrate(a *entity.Avatar, space *world.Space) bool {
	prevBottom := a.Bottom()

	a.VY += r.physics.Gravity
	a.X += a.VX
	a.Y += a.VY

	minX, maxX := r.Bounds(a)
	if a.X < minX {
		a.X = minX
	}
	if a.X > maxX {
		a.X = maxX
	}

	if a.Y < a.MaxHeightReached {
		a.MaxHeightReached = a.Y
	}

	if space == nil || a.VY < 0 {
		return false
	}

	var landing *world.Platform
	for _, p := range space.Platforms(a.Side, r.feet(a, prevBottom)) {
		if !r.Landed(a, prevBottom, p) {
			continue
		}
		if landing == nil || p.Y < landing.Y {
			landing = p
		}
	}

	if landing == nil {
		return false
	}

	a.Y = landing.Y - a.Height
	a.VY = 0
	a.IsJumping = false
	return true
}

// feet is the band a platform top must fall in for a landing this frame
func (r *Resolver) feet(a *entity.Avatar, prevBottom float64) geom.Rect {
	top := prevBottom - r.physics.LandingTolerance
	return geom.Rect{X: a.X, Y: top, W: a.Width, H: a.Bottom() - top}
}

// Landed reports whether an avatar whose feet were at prevBottom before this
// frame's step comes down onto the top of p. Platforms are one-sided: only a
// descending avatar that started at or just above the top can land.
func (r *Resolver) Landed(a *entity.Avatar, prevBottom float64, p *world.Platform) bool {
	if a.VY < 0 {
		return false
	}
	if !p.VisibleTo(a.Side) {
		return false
	}
	if !a.Rect().OverlapsX(p.Rect()) {
		return false
	}
	top := p.Y
	return prevBottom <= top+r.physics.LandingTolerance && prevBottom+a.VY >= top
}

// CheckTermination applies the fall-off and fall-back rules. Any
// termination zeroes the avatar's lives.
func (r *Resolver) CheckTermination(a *entity.Avatar, cameraY float64) Termination {
	reason := TerminationNone

	if a.Y-cameraY > r.arenaHeight+r.termination.FallMargin {
		reason = TerminationFellOffScreen
	} else if a.Y >= a.SpawnY && a.MaxHeightReached < a.SpawnY-r.termination.FallBackClimb {
		reason = TerminationFellBackToStart
	}

	if reason != TerminationNone {
		a.Lives = 0
	}
	return reason
}
