package game

import (
	"chosenoffset.com/stillirise/internal/economy"
	"chosenoffset.com/stillirise/internal/ui/menu"
	"chosenoffset.com/stillirise/internal/world"
)

// AvatarView is the read-only state of one avatar for drawing
type AvatarView struct {
	X, Y          float64 // Y is screen relative
	Width, Height float64
	Score         int
	Lives         int // Never negative
	Climbed       float64
	Jumping       bool
}

// PlatformView is a platform as seen by one side's camera
type PlatformView struct {
	ID            int
	X, Y          float64 // Y is screen relative
	Width, Height float64
	Side          world.Side
	Moving        bool
}

// CollectibleView is an uncollected item as seen by one side's camera
type CollectibleView struct {
	ID   int
	X, Y float64 // Y is screen relative
	Type world.CollectibleType
	Good bool
}

// HeartView is a floating heart with its pose already applied
type HeartView struct {
	ID       int
	X, Y     float64
	Good     bool
	Opacity  float64
	Rotation float64 // Degrees
}

// Panel is everything one half of the screen needs
type Panel struct {
	Side         world.Side
	Camera       float64
	Avatar       AvatarView
	Platforms    []PlatformView
	Collectibles []CollectibleView
	Tally        []economy.Entry
}

// Snapshot is the per-frame render feed. All slices are copies.
type Snapshot struct {
	State         State
	Frame         int
	PowerUpActive bool
	HitBox        float64
	Panels        [2]Panel
	Hearts        []HeartView
}

// Snapshot captures the current match for a renderer
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		State:         m.state,
		Frame:         m.frame,
		PowerUpActive: m.powerUp.Active(),
		HitBox:        m.config.Economy.HitBox,
	}

	for i, side := range []world.Side{world.SideLeft, world.SideRight} {
		snap.Panels[i] = m.panel(side)
	}

	for _, h := range m.hearts.Active() {
		dx, dy, rot := m.hearts.Pose(h)
		snap.Hearts = append(snap.Hearts, HeartView{
			ID:       h.ID,
			X:        h.X + dx,
			Y:        h.Y + dy,
			Good:     h.Good,
			Opacity:  h.Opacity,
			Rotation: rot,
		})
	}

	return snap
}

func (m *Match) panel(side world.Side) Panel {
	idx := sideIndex(side)
	cam := m.cameras[idx]
	a := m.avatars[idx]

	p := Panel{
		Side:   side,
		Camera: cam.Y,
		Avatar: AvatarView{
			X:       a.X,
			Y:       cam.ToScreen(a.Y),
			Width:   a.Width,
			Height:  a.Height,
			Score:   a.Score,
			Lives:   max(a.Lives, 0),
			Climbed: a.Climbed(),
			Jumping: a.IsJumping,
		},
		Tally: m.economy.Tally(side).Entries(),
	}

	if m.world == nil {
		return p
	}

	for _, pl := range m.world.Platforms {
		if !pl.VisibleTo(side) {
			continue
		}
		p.Platforms = append(p.Platforms, PlatformView{
			ID:     pl.ID,
			X:      pl.X,
			Y:      cam.ToScreen(pl.Y),
			Width:  pl.Width,
			Height: pl.Height,
			Side:   pl.Side,
			Moving: pl.Motion != nil,
		})
	}

	for _, c := range m.world.Uncollected(side) {
		p.Collectibles = append(p.Collectibles, CollectibleView{
			ID:   c.ID,
			X:    c.X,
			Y:    cam.ToScreen(c.Y),
			Type: c.Type,
			Good: c.Type.IsGood(),
		})
	}

	return p
}

// Summary builds the end-of-match report shown by every frontend
func (m *Match) Summary() menu.Summary {
	side := func(s world.Side, label string) menu.SideSummary {
		a := m.Avatar(s)
		t := m.Tally(s)
		return menu.SideSummary{
			Label:   label,
			Score:   a.Score,
			Climbed: a.Climbed(),
			Lives:   max(a.Lives, 0),
			Good:    t.Good(),
			Bad:     t.Bad(),
		}
	}
	return menu.Summary{
		Left:  side(world.SideLeft, "Good Path"),
		Right: side(world.SideRight, "Hard Path"),
	}
}
