package world

import (
	"math"

	"chosenoffset.com/stillirise/internal/simulation"
)

// PowerUp drops bonus books onto the moving column. It fires at most once
// per match.
type PowerUp struct {
	activated bool
}

// Active reports whether the power-up has already fired
func (pu *PowerUp) Active() bool {
	return pu.activated
}

// Reset re-arms the power-up for a new match
func (pu *PowerUp) Reset() {
	pu.activated = false
}

// Activate scans right-side platforms above avatarY and anchors a book on
// every Stride-th one, skipping spots that already hold a collectible.
// Returns the number of books added and whether this call fired.
func (pu *PowerUp) Activate(w *World, avatarY float64, cfg simulation.PowerUpConfig, hitBox float64) (added int, fired bool) {
	if pu.activated {
		return 0, false
	}
	pu.activated = true

	qualifying := 0
	for i := range w.Platforms {
		p := w.Platforms[i]
		if p.Side != SideRight || p.Y >= avatarY-cfg.AboveMargin {
			continue
		}

		index := qualifying
		qualifying++
		if index%cfg.Stride != 0 {
			continue
		}

		bookX := p.X + p.Width/2 - hitBox/2
		bookY := p.Y + cfg.ItemOffsetY
		if w.occupied(SideRight, bookX, bookY, cfg.DedupRadius) {
			continue
		}

		w.AddCollectible(Collectible{
			X:    bookX,
			Y:    bookY,
			Type: Book,
			Side: SideRight,
			Anchor: &Anchor{
				PlatformID: p.ID,
				OffsetX:    bookX - p.X,
			},
		})
		added++
	}

	return added, true
}

// occupied reports whether any collectible on side, collected or not, lies
// within radius of (x, y) on both axes.
func (w *World) occupied(side Side, x, y, radius float64) bool {
	for _, c := range w.Collectibles {
		if c.Side != side {
			continue
		}
		if math.Abs(c.X-x) < radius && math.Abs(c.Y-y) < radius {
			return true
		}
	}
	return false
}
