package game

import (
	"image/color"
	"math"

	"chosenoffset.com/stillirise/internal/render"
	"chosenoffset.com/stillirise/internal/ui/hud"
	"chosenoffset.com/stillirise/internal/world"
)

const heartSprite = 32

var (
	leftBackground  = color.RGBA{255, 255, 255, 255}
	rightBackground = color.RGBA{17, 17, 17, 255}
	groundColor     = color.RGBA{75, 85, 99, 255}
	leftPlatform    = color.RGBA{209, 213, 219, 255}
	rightPlatform   = color.RGBA{107, 114, 128, 255}
	goodItem        = color.RGBA{34, 197, 94, 255}
	badItem         = color.RGBA{239, 68, 68, 255}
)

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	m.ensureSprites()

	snap := m.Match.Snapshot()
	half := float32(m.Match.Config().HalfWidth())
	height := float32(m.ScreenHeight)

	m.Renderer.FillRect(screen, 0, 0, half, height, leftBackground)
	m.Renderer.FillRect(screen, half, 0, float32(m.ScreenWidth)-half, height, rightBackground)

	for _, p := range snap.Panels {
		m.drawPanel(screen, p, snap.HitBox)
	}

	// Center divider
	m.Renderer.FillRect(screen, half-0.5, 0, 1, height, color.RGBA{107, 114, 128, 255})

	m.drawHearts(screen, snap.Hearts)

	maxLives := m.Match.Config().Avatar.MaxLives
	left, right := snap.Panels[0], snap.Panels[1]
	m.HUD.Draw(screen, 0, hud.Stats{
		Label: "GOOD PATH", Score: left.Avatar.Score, Lives: left.Avatar.Lives,
		MaxLives: maxLives, Climbed: left.Avatar.Climbed, Tally: left.Tally,
	})
	m.HUD.Draw(screen, int(half), hud.Stats{
		Label: "HARD PATH", Score: right.Avatar.Score, Lives: right.Avatar.Lives,
		MaxLives: maxLives, Climbed: right.Avatar.Climbed, Tally: right.Tally, Dark: true,
	})

	switch snap.State {
	case StateNotStarted:
		m.Menu.DrawTitle(screen)
	case StateRunning:
		m.HUD.DrawBadge(screen, snap.PowerUpActive)
		if m.Paused {
			m.drawPaused(screen)
		}
	case StateGameOver:
		m.Menu.DrawGameOver(screen, m.Summary())
	}
}

// ensureSprites renders the floating heart sprites once
func (m *Manager) ensureSprites() {
	if m.heartImg == nil {
		m.heartImg = m.Renderer.NewImage(heartSprite, heartSprite)
		hud.DrawHeart(m.Renderer, m.heartImg, 0, 0, heartSprite, color.RGBA{239, 68, 68, 255})
	}
	if m.brokenHeartImg == nil {
		m.brokenHeartImg = m.Renderer.NewImage(heartSprite, heartSprite)
		hud.DrawBrokenHeart(m.Renderer, m.brokenHeartImg, 0, 0, heartSprite,
			color.RGBA{127, 29, 29, 255}, color.RGBA{0, 0, 0, 255})
	}
}

func (m *Manager) drawPanel(screen render.Image, p Panel, hitBox float64) {
	dark := p.Side == world.SideRight

	for _, pl := range p.Platforms {
		if pl.Y+pl.Height < 0 || pl.Y > float64(m.ScreenHeight) {
			continue
		}
		x, w := pl.X, pl.Width
		if pl.Side == world.SideShared {
			// The ground spans both halves; each panel draws its own part
			x, w = m.panelSpan(p.Side)
		}
		clr := leftPlatform
		switch {
		case pl.Side == world.SideShared:
			clr = groundColor
		case dark:
			clr = rightPlatform
		}
		m.Renderer.FillRect(screen, float32(x), float32(pl.Y), float32(w), float32(pl.Height), clr)
	}

	for _, c := range p.Collectibles {
		if c.Y+hitBox < 0 || c.Y > float64(m.ScreenHeight) {
			continue
		}
		m.drawCollectible(screen, c, hitBox, dark)
	}

	m.drawAvatar(screen, p.Avatar, dark)
}

func (m *Manager) panelSpan(side world.Side) (x, w float64) {
	half := m.Match.Config().HalfWidth()
	if side == world.SideRight {
		return half, float64(m.ScreenWidth) - half
	}
	return 0, half
}

func (m *Manager) drawCollectible(screen render.Image, c CollectibleView, size float64, dark bool) {
	clr := badItem
	if c.Good {
		clr = goodItem
	}
	x, y, s := float32(c.X), float32(c.Y), float32(size)
	m.Renderer.StrokeRect(screen, x, y, s, s, 2, clr)

	label := string(c.Type.Glyph())
	tw, th := m.Renderer.MeasureText(label, 1.0)
	textColor := color.RGBA{0, 0, 0, 255}
	if dark {
		textColor = color.RGBA{255, 255, 255, 255}
	}
	m.Renderer.DrawText(screen, label, int(c.X)+(int(size)-tw)/2, int(c.Y)+(int(size)-th)/2, textColor, 1.0)
}

// drawAvatar draws a stick figure filling the avatar's box
func (m *Manager) drawAvatar(screen render.Image, a AvatarView, dark bool) {
	clr := color.RGBA{0, 0, 0, 255}
	if dark {
		clr = color.RGBA{255, 255, 255, 255}
	}

	x, y := float32(a.X), float32(a.Y)
	w, h := float32(a.Width), float32(a.Height)
	cx := x + w/2
	headR := h * 0.14

	m.Renderer.StrokeCircle(screen, cx, y+headR+1, headR, 2, clr)
	neck := y + 2*headR + 1
	hip := y + h*0.65
	m.Renderer.StrokeLine(screen, cx, neck, cx, hip, 2, clr)

	// Arms go up mid-jump
	armY := neck + h*0.12
	armDrop := h * 0.12
	if a.Jumping {
		armDrop = -h * 0.15
	}
	m.Renderer.StrokeLine(screen, cx, armY, x+w*0.15, armY+armDrop, 2, clr)
	m.Renderer.StrokeLine(screen, cx, armY, x+w*0.85, armY+armDrop, 2, clr)

	m.Renderer.StrokeLine(screen, cx, hip, x+w*0.25, y+h, 2, clr)
	m.Renderer.StrokeLine(screen, cx, hip, x+w*0.75, y+h, 2, clr)
}

func (m *Manager) drawHearts(screen render.Image, hearts []HeartView) {
	for _, h := range hearts {
		img := m.heartImg
		if !h.Good {
			img = m.brokenHeartImg
		}

		screen.DrawImage(img, &render.DrawImageOptions{
			X:        h.X,
			Y:        h.Y,
			Rotation: h.Rotation * math.Pi / 180,
			Alpha:    float32(math.Max(h.Opacity, 0.01)),
		})
	}
}

func (m *Manager) drawPaused(screen render.Image) {
	m.Renderer.FillRect(screen, 0, 0, float32(m.ScreenWidth), float32(m.ScreenHeight), color.RGBA{0, 0, 0, 120})
	text := "PAUSED - press P to resume"
	w, _ := m.Renderer.MeasureText(text, 1.0)
	m.Renderer.DrawText(screen, text, (m.ScreenWidth-w)/2, m.ScreenHeight/2, color.RGBA{255, 255, 255, 255}, 1.0)
}
