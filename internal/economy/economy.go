// Package economy resolves collectible pickups into score and lives.
// Each avatar can only collect items on its own side of the arena.
package economy

import (
	"sort"

	"chosenoffset.com/stillirise/internal/entity"
	"chosenoffset.com/stillirise/internal/simulation"
	"chosenoffset.com/stillirise/internal/world"
)

// Pickup describes one collectible taken this frame
type Pickup struct {
	CollectibleID int
	Type          world.CollectibleType
	Side          world.Side
	X, Y          float64 // World position of the collectible when taken
	Good          bool
}

// Economy applies pickup effects and keeps a tally per side
type Economy struct {
	hitBox    float64
	goodScore int
	maxLives  int

	tallies map[world.Side]*Tally
}

// NewEconomy creates an economy with empty tallies for both sides
func NewEconomy(cfg *simulation.Config) *Economy {
	return &Economy{
		hitBox:    cfg.Economy.HitBox,
		goodScore: cfg.Economy.GoodScore,
		maxLives:  cfg.Avatar.MaxLives,
		tallies: map[world.Side]*Tally{
			world.SideLeft:  NewTally(),
			world.SideRight: NewTally(),
		},
	}
}

// Tally returns the pickup tally for a side, or nil for the shared side
func (e *Economy) Tally(side world.Side) *Tally {
	return e.tallies[side]
}

// Reset clears both tallies
func (e *Economy) Reset() {
	for _, t := range e.tallies {
		t.Clear()
	}
}

// Resolve marks every collectible its side's avatar overlaps as collected and
// applies the effect. Good items add a life (capped) and score; bad items
// cost a life with no floor. Pickups are returned in collectible order.
func (e *Economy) Resolve(space *world.Space, avatars map[world.Side]*entity.Avatar) []Pickup {
	var hits []*world.Collectible
	for side, a := range avatars {
		if a == nil {
			continue
		}
		box := a.Rect()
		for _, c := range space.Collectibles(side, box) {
			if box.Overlaps(c.Rect(e.hitBox)) {
				hits = append(hits, c)
			}
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })

	var pickups []Pickup
	for _, c := range hits {
		a := avatars[c.Side]

		good := c.Type.IsGood()
		if good {
			a.Lives = min(a.Lives+1, e.maxLives)
			a.Score += e.goodScore
		} else {
			a.Lives--
		}
		c.Collected = true

		if t := e.tallies[c.Side]; t != nil {
			t.Add(c.Type)
		}

		pickups = append(pickups, Pickup{
			CollectibleID: c.ID,
			Type:          c.Type,
			Side:          c.Side,
			X:             c.X,
			Y:             c.Y,
			Good:          good,
		})
	}

	return pickups
}
