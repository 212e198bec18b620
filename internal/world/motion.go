package world

import "math"

// StepPlatforms advances every moving platform by one frame. The direction
// reverses once the offset reaches the amplitude; the reversal applies to the
// following frame's step.
func (w *World) StepPlatforms(step, amplitude float64) {
	for i := range w.Platforms {
		p := &w.Platforms[i]
		if p.Motion == nil {
			continue
		}

		m := p.Motion
		m.Offset += float64(m.Direction) * step
		if math.Abs(m.Offset) >= amplitude {
			m.Direction = -m.Direction
		}
		p.X = m.OriginalX + m.Offset
	}
}

// ReanchorCollectibles moves anchored collectibles along with their platform.
// Anchors naming an unknown platform are skipped and counted.
func (w *World) ReanchorCollectibles() (missing int) {
	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if c.Anchor == nil {
			continue
		}

		p, ok := w.PlatformByID(c.Anchor.PlatformID)
		if !ok {
			missing++
			continue
		}
		c.X = p.X + c.Anchor.OffsetX
	}
	return missing
}
