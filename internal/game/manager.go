package game

import (
	"log"

	"chosenoffset.com/stillirise/internal/records"
	"chosenoffset.com/stillirise/internal/render"
	"chosenoffset.com/stillirise/internal/ui/hud"
	"chosenoffset.com/stillirise/internal/ui/menu"
)

// CuePlayer plays short sounds for match events
type CuePlayer interface {
	Pickup(good bool)
	PowerUp()
	GameOver()
}

// Manager connects a match to a window: it reads the keyboard, steps the
// match once per tick, and draws the split screen with its overlays.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Match        *Match
	Menu         *menu.Menu
	HUD          *hud.HUD
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Cues         CuePlayer     // Optional
	Records      *records.Book // Optional

	// Paused stops stepping the match without leaving Running
	Paused bool

	// Sprites built on first draw
	heartImg       render.Image
	brokenHeartImg render.Image
}

// NewManager creates a new game manager.
func NewManager(m *Match, r render.Renderer, input render.InputManager) *Manager {
	cfg := m.Config()
	width, height := int(cfg.Arena.Width), int(cfg.Arena.Height)
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Match:        m,
		Menu:         menu.NewMenu(r, input, width, height),
		HUD:          hud.New(nil, r, width, height),
		Renderer:     r,
		InputMgr:     input,
	}
}

// ReadInput samples both control sets from the keyboard
func (m *Manager) ReadInput() Input {
	return Input{
		Left: Controls{
			MoveLeft:  m.InputMgr.IsKeyPressed(render.KeyA),
			MoveRight: m.InputMgr.IsKeyPressed(render.KeyD),
			Jump:      m.InputMgr.IsKeyPressed(render.KeyW),
		},
		Right: Controls{
			MoveLeft:  m.InputMgr.IsKeyPressed(render.KeyJ),
			MoveRight: m.InputMgr.IsKeyPressed(render.KeyL),
			Jump:      m.InputMgr.IsKeyPressed(render.KeyI),
		},
	}
}

// Update updates the game state.
func (m *Manager) Update() error {
	switch m.Match.State() {
	case StateNotStarted:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			return render.ErrQuit
		}
		if m.Menu.UpdateTitle() == menu.ChoiceStart {
			m.Paused = false
			if err := m.Match.Start(); err != nil {
				log.Printf("Failed to start match: %v", err)
			}
		}
	case StateRunning:
		m.updateRunning()
	case StateGameOver:
		switch m.Menu.UpdateGameOver() {
		case menu.ChoiceRestart:
			m.Paused = false
			m.Menu.ResetSelection()
			if err := m.Match.Restart(); err != nil {
				log.Printf("Failed to restart match: %v", err)
			}
		case menu.ChoiceExit:
			m.Menu.ResetSelection()
			if err := m.Match.Exit(); err != nil {
				log.Printf("Failed to exit match: %v", err)
			}
		}
	}
	return nil
}

func (m *Manager) updateRunning() {
	if m.InputMgr.IsKeyJustPressed(render.KeyP) {
		m.Paused = !m.Paused
	}
	if m.Paused {
		return
	}

	if m.powerUpRequested() && !m.Match.PowerUpActive() {
		if _, err := m.Match.ActivatePowerUp(); err != nil {
			log.Printf("Power-up rejected: %v", err)
		} else if m.Cues != nil {
			m.Cues.PowerUp()
		}
	}

	result := m.Match.Step(m.ReadInput())
	if result.GameOver && m.Records != nil {
		r := m.Records.Add(m.Match.Summary())
		log.Printf("Session best climb %.0f after %d matches", r.Best(), r.Matches)
	}

	if m.Cues != nil {
		for _, p := range result.Pickups {
			m.Cues.Pickup(p.Good)
		}
		if result.GameOver {
			m.Cues.GameOver()
		}
	}
}

func (m *Manager) powerUpRequested() bool {
	if m.InputMgr.IsKeyJustPressed(render.KeyT) {
		return true
	}
	if m.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := m.InputMgr.GetCursorPosition()
		return m.HUD.BadgeContains(x, y)
	}
	return false
}

// Summary builds the game-over report from the current match
func (m *Manager) Summary() menu.Summary {
	s := m.Match.Summary()
	if m.Records != nil {
		r := m.Records.Current()
		s.Best, s.BestScore = r.Best(), r.BestScore
	}
	return s
}

// Layout keeps the logical screen at the arena size and lets the window scale it.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
