package world

import (
	"chosenoffset.com/stillirise/internal/core/roll"
	"chosenoffset.com/stillirise/internal/simulation"
)

// Generator handles procedural world generation
type Generator struct {
	config *simulation.Config
	roller *roll.Roller
}

// NewGenerator creates a new world generator. All randomness is drawn from roller.
func NewGenerator(config *simulation.Config, roller *roll.Roller) *Generator {
	return &Generator{
		config: config,
		roller: roller,
	}
}

// Generate creates the ground, both platform columns and their collectibles
func (g *Generator) Generate() *World {
	w := New()
	g.placeGround(w)
	g.placeLeftPath(w)
	g.placeRightPath(w)
	return w
}

func (g *Generator) placeGround(w *World) {
	w.AddPlatform(Platform{
		X:      0,
		Y:      g.config.GroundY(),
		Width:  g.config.Arena.Width,
		Height: g.config.Arena.GroundHeight,
		Side:   SideShared,
	})
}

// placeLeftPath lays out evenly spaced static platforms. Every
// CollectibleEvery-th row carries one item, usually good.
func (g *Generator) placeLeftPath(w *World) {
	cfg := g.config.Left
	span := g.config.HalfWidth() - cfg.PlatformWidth - cfg.MarginX

	for i := 1; i <= cfg.Rows; i++ {
		y := g.config.Arena.Height - cfg.BaseOffset - float64(i)*cfg.RowStep
		x := g.roller.Range(cfg.MarginX, span)

		w.AddPlatform(Platform{
			X:      x,
			Y:      y,
			Width:  cfg.PlatformWidth,
			Height: cfg.PlatformHeight,
			Side:   SideLeft,
		})

		if i%cfg.CollectibleEvery != 0 {
			continue
		}

		var itemType CollectibleType
		if g.roller.Chance(cfg.BadChance) {
			itemType = BadTypes[g.roller.Pick(len(BadTypes))]
		} else {
			itemType = GoodTypes[g.roller.Pick(len(GoodTypes))]
		}

		w.AddCollectible(Collectible{
			X:    x + cfg.ItemOffsetX,
			Y:    y + cfg.ItemOffsetY,
			Type: itemType,
			Side: SideLeft,
		})
	}
}

// placeRightPath lays out jittered oscillating platforms of varying width.
// Odd rows carry one hazard riding on its platform.
func (g *Generator) placeRightPath(w *World) {
	cfg := g.config.Right
	half := g.config.HalfWidth()
	span := half - cfg.ReserveX

	for i := 1; i <= cfg.Rows; i++ {
		y := g.config.Arena.Height - cfg.BaseOffset - float64(i)*cfg.RowStep + g.roller.Range(-cfg.Jitter, 2*cfg.Jitter)
		x := half + g.roller.Range(cfg.MarginX, span)

		platformID := w.AddPlatform(Platform{
			X:      x,
			Y:      y,
			Width:  g.roller.Range(cfg.MinWidth, cfg.WidthRange),
			Height: cfg.PlatformHeight,
			Side:   SideRight,
			Motion: &Motion{
				Offset:    0,
				Direction: g.roller.Sign(),
				OriginalX: x,
			},
		})

		if i%2 != 1 {
			continue
		}

		w.AddCollectible(Collectible{
			X:    x + cfg.ItemOffsetX,
			Y:    y + cfg.ItemOffsetY,
			Type: BadTypes[g.roller.Pick(len(BadTypes))],
			Side: SideRight,
			Anchor: &Anchor{
				PlatformID: platformID,
				OffsetX:    cfg.ItemOffsetX,
			},
		})
	}
}
