package world

import (
	"testing"

	"chosenoffset.com/stillirise/internal/simulation"
)

func powerUpConfig() simulation.PowerUpConfig {
	return simulation.DefaultConfig().PowerUp
}

// rightColumn builds n right-side platforms stacked 80 apart above y=600.
func rightColumn(n int) *World {
	w := New()
	w.AddPlatform(Platform{X: 0, Y: 660, Width: 900, Height: 40, Side: SideShared})
	for i := 1; i <= n; i++ {
		x := 500.0
		w.AddPlatform(Platform{
			X:      x,
			Y:      600 - float64(i)*80,
			Width:  90,
			Height: 15,
			Side:   SideRight,
			Motion: &Motion{Direction: 1, OriginalX: x},
		})
	}
	return w
}

func TestPowerUpDropsOnEveryThirdPlatformAbove(t *testing.T) {
	w := rightColumn(9)
	var pu PowerUp

	// Avatar at 610: platforms qualify when y < 530, i.e. all 9 (first at 520)
	added, fired := pu.Activate(w, 610, powerUpConfig(), 30)
	if !fired {
		t.Fatal("Expected first activation to fire")
	}
	if added != 3 {
		t.Fatalf("Expected 3 books (indices 0, 3, 6), got %d", added)
	}

	for _, c := range w.Collectibles {
		if c.Type != Book || c.Side != SideRight {
			t.Errorf("Expected right-side book, got %s on %s", c.Type, c.Side)
		}
		p, ok := w.PlatformByID(c.Anchor.PlatformID)
		if !ok {
			t.Fatalf("Expected anchor to resolve")
		}
		if c.X != p.X+p.Width/2-15 || c.Y != p.Y-40 {
			t.Errorf("Expected book centered above platform %d, got (%v, %v)", p.ID, c.X, c.Y)
		}
	}
}

func TestPowerUpIsIdempotent(t *testing.T) {
	w := rightColumn(9)
	var pu PowerUp

	pu.Activate(w, 610, powerUpConfig(), 30)
	before := len(w.Collectibles)

	added, fired := pu.Activate(w, 610, powerUpConfig(), 30)
	if fired || added != 0 {
		t.Errorf("Expected second activation to be a no-op, got added=%d fired=%v", added, fired)
	}
	if len(w.Collectibles) != before {
		t.Errorf("Expected %d collectibles after repeat, got %d", before, len(w.Collectibles))
	}
	if !pu.Active() {
		t.Error("Expected power-up to remain active")
	}
}

func TestPowerUpWithNothingAbove(t *testing.T) {
	w := rightColumn(3)
	var pu PowerUp

	// Avatar far above the whole column
	added, fired := pu.Activate(w, -5000, powerUpConfig(), 30)
	if !fired {
		t.Error("Expected activation to fire even with nothing to drop")
	}
	if added != 0 || len(w.Collectibles) != 0 {
		t.Errorf("Expected no new collectibles, got %d", added)
	}
	if !pu.Active() {
		t.Error("Expected flag to be set")
	}
}

func TestPowerUpSkipsOccupiedSpots(t *testing.T) {
	w := rightColumn(4)
	// Platform id 1 is the first qualifying one; park a collected tombstone where its book would go
	p, _ := w.PlatformByID(1)
	w.AddCollectible(Collectible{X: p.X + p.Width/2 - 15 + 5, Y: p.Y - 40 - 5, Type: Gun, Side: SideRight, Collected: true})

	var pu PowerUp
	added, _ := pu.Activate(w, 610, powerUpConfig(), 30)
	// Qualifying indices 0 and 3; index 0 is occupied
	if added != 1 {
		t.Errorf("Expected 1 book after dedup, got %d", added)
	}
}

func TestPowerUpIgnoresLeftPlatforms(t *testing.T) {
	w := New()
	w.AddPlatform(Platform{X: 20, Y: 100, Width: 120, Height: 15, Side: SideLeft})
	var pu PowerUp
	if added, _ := pu.Activate(w, 610, powerUpConfig(), 30); added != 0 {
		t.Errorf("Expected no drops on the left path, got %d", added)
	}
}

func TestPowerUpReset(t *testing.T) {
	var pu PowerUp
	pu.Activate(New(), 0, powerUpConfig(), 30)
	pu.Reset()
	if pu.Active() {
		t.Error("Expected reset to re-arm the power-up")
	}
}
