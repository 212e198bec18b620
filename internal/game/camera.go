package game

import "chosenoffset.com/stillirise/internal/entity"

// Camera tracks one side's vertical scroll. Y is the world y shown at the top
// of the viewport; it only ever decreases as the avatar climbs.
type Camera struct {
	Y float64
}

// Follow scrolls up when the avatar is rising above the anchor line.
// The camera never scrolls back down.
func (c *Camera) Follow(a *entity.Avatar, anchor float64) {
	if a.Y-c.Y < anchor && a.VY < 0 {
		c.Y = a.Y - anchor
	}
}

// ToScreen converts a world y into a viewport y
func (c *Camera) ToScreen(worldY float64) float64 {
	return worldY - c.Y
}

// Reset returns the camera to the bottom of the tower
func (c *Camera) Reset() {
	c.Y = 0
}
