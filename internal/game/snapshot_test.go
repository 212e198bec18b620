package game

import (
	"testing"

	"chosenoffset.com/stillirise/internal/world"
)

func TestSnapshotPanels(t *testing.T) {
	m := startedMatch(t, nil)
	snap := m.Snapshot()

	if snap.State != StateRunning {
		t.Errorf("Expected %s, got %s", StateRunning, snap.State)
	}

	for i, side := range []world.Side{world.SideLeft, world.SideRight} {
		p := snap.Panels[i]
		if p.Side != side {
			t.Errorf("Panel %d: expected side %s, got %s", i, side, p.Side)
		}

		groundSeen := false
		for _, pl := range p.Platforms {
			if pl.Side == world.SideShared {
				groundSeen = true
				continue
			}
			if pl.Side != side {
				t.Errorf("%s panel shows a %s platform", side, pl.Side)
			}
		}
		if !groundSeen {
			t.Errorf("%s panel is missing the ground", side)
		}

		for _, c := range p.Collectibles {
			if c.Good != c.Type.IsGood() {
				t.Errorf("Collectible %d: good flag mismatch", c.ID)
			}
		}

		if p.Avatar.Lives != 3 {
			t.Errorf("%s: expected 3 lives, got %d", side, p.Avatar.Lives)
		}
	}
}

func TestSnapshotIsScreenRelative(t *testing.T) {
	m := startedMatch(t, nil)
	m.cameras[0].Y = -1000

	snap := m.Snapshot()
	left := m.Avatar(world.SideLeft)

	if snap.Panels[0].Avatar.Y != left.Y+1000 {
		t.Errorf("Expected avatar screen y %v, got %v", left.Y+1000, snap.Panels[0].Avatar.Y)
	}
	ground := m.World().Platforms[0]
	if snap.Panels[0].Platforms[0].Y != ground.Y+1000 {
		t.Errorf("Expected ground screen y %v, got %v", ground.Y+1000, snap.Panels[0].Platforms[0].Y)
	}
	// The right side keeps its own camera
	if snap.Panels[1].Platforms[0].Y != ground.Y {
		t.Errorf("Expected right ground screen y %v, got %v", ground.Y, snap.Panels[1].Platforms[0].Y)
	}
}

func TestSnapshotHidesCollected(t *testing.T) {
	m := startedMatch(t, nil)
	dropOnAvatar(m, world.SideLeft, world.Money)
	id := m.World().Collectibles[len(m.World().Collectibles)-1].ID

	m.Step(Input{})

	for _, c := range m.Snapshot().Panels[0].Collectibles {
		if c.ID == id {
			t.Error("Expected collected item hidden from the snapshot")
		}
	}
}

func TestSnapshotClampsLives(t *testing.T) {
	m := startedMatch(t, nil)
	m.Avatar(world.SideRight).Lives = 0
	dropOnAvatar(m, world.SideRight, world.Gun)
	m.Step(Input{})

	if m.Avatar(world.SideRight).Lives != -1 {
		t.Fatalf("Expected raw lives -1, got %d", m.Avatar(world.SideRight).Lives)
	}
	if got := m.Snapshot().Panels[1].Avatar.Lives; got != 0 {
		t.Errorf("Expected displayed lives 0, got %d", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := startedMatch(t, nil)
	snap := m.Snapshot()
	snap.Panels[0].Platforms[0].X = 12345

	if m.World().Platforms[0].X == 12345 {
		t.Error("Expected snapshot edits not to reach the world")
	}
}
