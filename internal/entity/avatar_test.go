package entity

import (
	"testing"

	"chosenoffset.com/stillirise/internal/world"
)

func TestNewAvatarStartsAtSpawn(t *testing.T) {
	a := NewAvatar(world.SideLeft, 200, 610, 50, 50, 3)

	if a.X != 200 || a.Y != 610 {
		t.Errorf("Expected spawn (200, 610), got (%v, %v)", a.X, a.Y)
	}
	if a.Lives != 3 || a.Score != 0 {
		t.Errorf("Expected 3 lives and 0 score, got %d and %d", a.Lives, a.Score)
	}
	if a.IsJumping {
		t.Error("Expected avatar to start grounded")
	}
	if a.MaxHeightReached != 610 {
		t.Errorf("Expected max height 610, got %v", a.MaxHeightReached)
	}
	if a.Bottom() != 660 {
		t.Errorf("Expected bottom 660, got %v", a.Bottom())
	}
}

func TestResetRestoresFreshState(t *testing.T) {
	a := NewAvatar(world.SideRight, 650, 610, 50, 50, 3)
	a.X, a.Y = 800, -4000
	a.VX, a.VY = 4, -7
	a.IsJumping = true
	a.Score = 120
	a.Lives = 0
	a.MaxHeightReached = -4100

	a.Reset()

	fresh := NewAvatar(world.SideRight, 650, 610, 50, 50, 3)
	if *a != *fresh {
		t.Errorf("Expected reset avatar %+v to equal fresh avatar %+v", *a, *fresh)
	}
}

func TestClimbedAndAlive(t *testing.T) {
	a := NewAvatar(world.SideLeft, 200, 610, 50, 50, 3)
	a.MaxHeightReached = 400
	if a.Climbed() != 210 {
		t.Errorf("Expected climbed 210, got %v", a.Climbed())
	}

	a.Lives = 0
	if a.Alive() {
		t.Error("Expected avatar with 0 lives to be dead")
	}
	a.Lives = -1
	if a.Alive() {
		t.Error("Expected avatar with negative lives to be dead")
	}
}
