// Package hud draws the per-side score panels, lives, and the power-up badge
// on top of the climb.
package hud

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/stillirise/internal/economy"
	"chosenoffset.com/stillirise/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowScore   bool    `yaml:"show_score"`
	ShowLives   bool    `yaml:"show_lives"`
	ShowHeight  bool    `yaml:"show_height"` // Show how far the avatar has climbed
	ShowTally   bool    `yaml:"show_tally"`  // Show per-type pickup counts
	Opacity     float64 `yaml:"opacity"`     // Background opacity (0-1)
	BadgeLabel  string  `yaml:"badge_label"`
	BadgeWidth  int     `yaml:"badge_width"`
	BadgeHeight int     `yaml:"badge_height"`
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowScore:   true,
		ShowLives:   true,
		ShowHeight:  true,
		ShowTally:   false,
		Opacity:     0.6,
		BadgeLabel:  "TUPIT",
		BadgeWidth:  70,
		BadgeHeight: 26,
	}
}

// LoadConfig reads HUD settings from a YAML file. A missing file yields the
// defaults.
func LoadConfig(path string) (*HUDConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read HUD config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse HUD config: %w", err)
	}
	return config, nil
}

// Stats is what one side's panel shows
type Stats struct {
	Label    string
	Score    int
	Lives    int
	MaxLives int
	Climbed  float64
	Tally    []economy.Entry
	Dark     bool // Panel sits on a dark background
}

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	// Cached layout
	panelWidth int
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   150,
	}
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Draw renders one side's panel with its top-left corner at (originX, 0)
func (h *HUD) Draw(screen render.Image, originX int, s Stats) {
	x := originX + 10
	y := 10

	h.drawPanel(screen, x, y, h.calculatePanelHeight(s), s.Dark)

	textColor := color.RGBA{20, 20, 20, 255}
	if s.Dark {
		textColor = color.RGBA{235, 235, 235, 255}
	}

	currentY := y + 6
	if s.Label != "" {
		h.renderer.DrawText(screen, s.Label, x+8, currentY, textColor, 1.0)
		currentY += 16
	}

	if h.config.ShowScore {
		h.renderer.DrawText(screen, fmt.Sprintf("Score: %d", s.Score), x+8, currentY, textColor, 1.0)
		currentY += 16
	}

	if h.config.ShowLives {
		currentY = h.drawLives(screen, x+8, currentY, s)
	}

	if h.config.ShowHeight {
		h.renderer.DrawText(screen, fmt.Sprintf("Height: %.0f", s.Climbed), x+8, currentY, textColor, 1.0)
		currentY += 16
	}

	if h.config.ShowTally {
		for _, e := range s.Tally {
			h.renderer.DrawText(screen, fmt.Sprintf("%-7s x%d", e.Type, e.Count), x+8, currentY, textColor, 1.0)
			currentY += 14
		}
	}
}

// calculatePanelHeight calculates the height needed for all HUD elements
func (h *HUD) calculatePanelHeight(s Stats) int {
	height := 12 // Padding
	if s.Label != "" {
		height += 16
	}
	if h.config.ShowScore {
		height += 16
	}
	if h.config.ShowLives {
		height += 20
	}
	if h.config.ShowHeight {
		height += 16
	}
	if h.config.ShowTally {
		height += len(s.Tally) * 14
	}
	return height
}

// drawPanel draws the semi-transparent background panel
func (h *HUD) drawPanel(screen render.Image, x, y, height int, dark bool) {
	alpha := uint8(h.config.Opacity * 255)
	panelColor := color.RGBA{240, 240, 240, alpha}
	borderColor := color.RGBA{160, 160, 160, alpha}
	if dark {
		panelColor = color.RGBA{20, 20, 30, alpha}
		borderColor = color.RGBA{60, 60, 80, alpha}
	}

	h.renderer.FillRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(height), panelColor)
	h.renderer.StrokeRect(screen, float32(x), float32(y), float32(h.panelWidth), float32(height), 1, borderColor)
}

// drawLives draws one heart per life, with empty outlines up to the cap
func (h *HUD) drawLives(screen render.Image, x, y int, s Stats) int {
	const size = 14
	for i := 0; i < max(s.MaxLives, s.Lives); i++ {
		hx := float32(x + i*(size+4))
		if i < s.Lives {
			DrawHeart(h.renderer, screen, hx, float32(y), size, color.RGBA{220, 38, 38, 255})
		} else {
			DrawHeart(h.renderer, screen, hx, float32(y), size, color.RGBA{150, 150, 150, 90})
		}
	}
	return y + 20
}

// BadgeRect returns the power-up badge bounds in screen space
func (h *HUD) BadgeRect() (x, y, w, height int) {
	w = h.config.BadgeWidth
	height = h.config.BadgeHeight
	return h.screenWidth - w - 10, h.screenHeight - height - 10, w, height
}

// BadgeContains reports whether a screen point falls on the power-up badge
func (h *HUD) BadgeContains(px, py int) bool {
	x, y, w, height := h.BadgeRect()
	return px >= x && px <= x+w && py >= y && py <= y+height
}

// DrawBadge draws the power-up badge, lit once it has been used
func (h *HUD) DrawBadge(screen render.Image, active bool) {
	x, y, w, height := h.BadgeRect()

	fill := color.RGBA{40, 40, 60, 220}
	border := color.RGBA{140, 140, 180, 255}
	if active {
		fill = color.RGBA{250, 204, 21, 230}
		border = color.RGBA{255, 255, 255, 255}
	}

	h.renderer.FillRect(screen, float32(x), float32(y), float32(w), float32(height), fill)
	h.renderer.StrokeRect(screen, float32(x), float32(y), float32(w), float32(height), 2, border)

	tw, th := h.renderer.MeasureText(h.config.BadgeLabel, 1.0)
	h.renderer.DrawText(screen, h.config.BadgeLabel, x+(w-tw)/2, y+(height-th)/2, border, 1.0)
}

// DrawHeart draws a heart whose bounding box is size x size at (x, y)
func DrawHeart(r render.Renderer, dst render.Image, x, y, size float32, clr color.Color) {
	lobe := size / 4
	r.FillCircle(dst, x+lobe, y+lobe, lobe, clr)
	r.FillCircle(dst, x+3*lobe, y+lobe, lobe, clr)

	// Taper from full width just below the lobes to a point
	top := y + lobe
	rows := int(size - lobe)
	for i := 0; i < rows; i++ {
		w := size * (1 - float32(i)/float32(rows))
		r.FillRect(dst, x+(size-w)/2, top+float32(i), w, 1, clr)
	}
}

// DrawBrokenHeart draws a heart with a crack through the middle
func DrawBrokenHeart(r render.Renderer, dst render.Image, x, y, size float32, clr, crack color.Color) {
	DrawHeart(r, dst, x, y, size, clr)
	mid := x + size/2
	r.StrokeLine(dst, mid, y+size*0.15, mid-size*0.12, y+size*0.45, 2, crack)
	r.StrokeLine(dst, mid-size*0.12, y+size*0.45, mid+size*0.1, y+size*0.6, 2, crack)
	r.StrokeLine(dst, mid+size*0.1, y+size*0.6, mid, y+size*0.9, 2, crack)
}
