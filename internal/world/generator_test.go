package world

import (
	"testing"

	"chosenoffset.com/stillirise/internal/core/roll"
	"chosenoffset.com/stillirise/internal/simulation"
)

func generate(t *testing.T, seed int64) (*World, *simulation.Config) {
	t.Helper()
	cfg := simulation.DefaultConfig()
	return NewGenerator(cfg, roll.NewSeeded(seed)).Generate(), cfg
}

func TestGenerateLayout(t *testing.T) {
	w, cfg := generate(t, 7)

	expectedPlatforms := 1 + cfg.Left.Rows + cfg.Right.Rows
	if len(w.Platforms) != expectedPlatforms {
		t.Fatalf("Expected %d platforms, got %d", expectedPlatforms, len(w.Platforms))
	}

	ground := w.Platforms[0]
	if ground.Side != SideShared {
		t.Errorf("Expected first platform to be the shared ground, got side %s", ground.Side)
	}
	if ground.Y != cfg.GroundY() || ground.Width != cfg.Arena.Width {
		t.Errorf("Expected ground at y=%v spanning %v, got y=%v width=%v", cfg.GroundY(), cfg.Arena.Width, ground.Y, ground.Width)
	}

	// Left collectibles on every second row, right hazards on odd rows
	left := len(w.Uncollected(SideLeft))
	right := len(w.Uncollected(SideRight))
	if left != cfg.Left.Rows/2 {
		t.Errorf("Expected %d left collectibles, got %d", cfg.Left.Rows/2, left)
	}
	if right != (cfg.Right.Rows+1)/2 {
		t.Errorf("Expected %d right collectibles, got %d", (cfg.Right.Rows+1)/2, right)
	}
}

func TestGenerateLeftPath(t *testing.T) {
	w, cfg := generate(t, 11)
	half := cfg.HalfWidth()

	row := 0
	for _, p := range w.Platforms {
		if p.Side != SideLeft {
			continue
		}
		row++
		expectedY := cfg.Arena.Height - cfg.Left.BaseOffset - float64(row)*cfg.Left.RowStep
		if p.Y != expectedY {
			t.Errorf("Row %d: expected y %v, got %v", row, expectedY, p.Y)
		}
		if p.X < cfg.Left.MarginX || p.X+p.Width > half {
			t.Errorf("Row %d: platform [%v, %v] leaves the left half", row, p.X, p.X+p.Width)
		}
		if p.Motion != nil {
			t.Errorf("Row %d: expected static left platform", row)
		}
	}

	for _, c := range w.Collectibles {
		if c.Side != SideLeft {
			continue
		}
		if c.Anchor != nil {
			t.Errorf("Collectible %d: expected left collectibles to be unanchored", c.ID)
		}
	}
}

func TestGenerateRightPath(t *testing.T) {
	w, cfg := generate(t, 13)
	half := cfg.HalfWidth()

	row := 0
	for _, p := range w.Platforms {
		if p.Side != SideRight {
			continue
		}
		row++
		nominal := cfg.Arena.Height - cfg.Right.BaseOffset - float64(row)*cfg.Right.RowStep
		if p.Y < nominal-cfg.Right.Jitter || p.Y >= nominal+cfg.Right.Jitter {
			t.Errorf("Row %d: y %v outside jitter around %v", row, p.Y, nominal)
		}
		if p.X < half+cfg.Right.MarginX || p.X >= half+cfg.Right.MarginX+half-cfg.Right.ReserveX {
			t.Errorf("Row %d: x %v outside right range", row, p.X)
		}
		if p.Width < cfg.Right.MinWidth || p.Width >= cfg.Right.MinWidth+cfg.Right.WidthRange {
			t.Errorf("Row %d: width %v outside range", row, p.Width)
		}
		if p.Motion == nil {
			t.Fatalf("Row %d: expected motion state on right platform", row)
		}
		if p.Motion.Direction != 1 && p.Motion.Direction != -1 {
			t.Errorf("Row %d: expected direction +-1, got %d", row, p.Motion.Direction)
		}
		if p.Motion.OriginalX != p.X || p.Motion.Offset != 0 {
			t.Errorf("Row %d: expected fresh motion state", row)
		}
	}

	for _, c := range w.Collectibles {
		if c.Side != SideRight {
			continue
		}
		if c.Type.IsGood() {
			t.Errorf("Collectible %d: expected only hazards on the right path, got %s", c.ID, c.Type)
		}
		if c.Anchor == nil {
			t.Fatalf("Collectible %d: expected anchor", c.ID)
		}
		p, ok := w.PlatformByID(c.Anchor.PlatformID)
		if !ok {
			t.Fatalf("Collectible %d: anchor names unknown platform %d", c.ID, c.Anchor.PlatformID)
		}
		if c.X != p.X+c.Anchor.OffsetX {
			t.Errorf("Collectible %d: expected x %v, got %v", c.ID, p.X+c.Anchor.OffsetX, c.X)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, _ := generate(t, 99)
	b, _ := generate(t, 99)

	if len(a.Platforms) != len(b.Platforms) || len(a.Collectibles) != len(b.Collectibles) {
		t.Fatal("Expected identical sizes for identical seeds")
	}
	for i := range a.Platforms {
		pa, pb := a.Platforms[i], b.Platforms[i]
		if pa.X != pb.X || pa.Y != pb.Y || pa.Width != pb.Width {
			t.Fatalf("Platform %d differs between runs", i)
		}
	}
	for i := range a.Collectibles {
		if a.Collectibles[i].Type != b.Collectibles[i].Type || a.Collectibles[i].X != b.Collectibles[i].X {
			t.Fatalf("Collectible %d differs between runs", i)
		}
	}
}

func TestGenerateUniqueIDs(t *testing.T) {
	w, _ := generate(t, 5)

	seen := make(map[int]bool)
	for i, p := range w.Platforms {
		if p.ID != i {
			t.Errorf("Expected platform ids to count up from 0, got %d at %d", p.ID, i)
		}
		seen[p.ID] = true
	}
	if len(seen) != len(w.Platforms) {
		t.Error("Expected unique platform ids")
	}

	for i, c := range w.Collectibles {
		if c.ID != i {
			t.Errorf("Expected collectible ids to count up from 0, got %d at %d", c.ID, i)
		}
	}
}

func TestGenerateBadChanceExtremes(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Left.BadChance = 0
	w := NewGenerator(cfg, roll.NewSeeded(3)).Generate()
	for _, c := range w.Uncollected(SideLeft) {
		if !c.Type.IsGood() {
			t.Fatalf("Expected only good items with bad_chance 0, got %s", c.Type)
		}
	}

	cfg.Left.BadChance = 1
	w = NewGenerator(cfg, roll.NewSeeded(3)).Generate()
	for _, c := range w.Uncollected(SideLeft) {
		if c.Type.IsGood() {
			t.Fatalf("Expected only hazards with bad_chance 1, got %s", c.Type)
		}
	}
}

func TestWorldTowersAboveViewport(t *testing.T) {
	w, cfg := generate(t, 1)
	top := cfg.Arena.Height
	for _, p := range w.Platforms {
		if p.Y < top {
			top = p.Y
		}
	}
	if cfg.Arena.Height-top < 10*cfg.Arena.Height {
		t.Errorf("Expected the column to span many viewports, spans %v", cfg.Arena.Height-top)
	}
}
