package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/stillirise/internal/core/roll"
	"chosenoffset.com/stillirise/internal/economy"
	"chosenoffset.com/stillirise/internal/entity"
	"chosenoffset.com/stillirise/internal/feedback"
	"chosenoffset.com/stillirise/internal/physics"
	"chosenoffset.com/stillirise/internal/simulation"
	"chosenoffset.com/stillirise/internal/world"
)

// ErrInvalidCommand is returned when a lifecycle command arrives in a state
// that does not accept it.
var ErrInvalidCommand = errors.New("command not valid in current state")

// State is the match lifecycle state
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Controls is the held state of one side's keys
type Controls struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// Input is one frame of held keys for both sides
type Input struct {
	Left  Controls
	Right Controls
}

// TerminationEvent records an avatar knocked out by a fall
type TerminationEvent struct {
	Side   world.Side
	Reason physics.Termination
}

// StepResult reports what happened during one frame
type StepResult struct {
	Pickups      []economy.Pickup
	Terminations []TerminationEvent
	GameOver     bool
}

// SeedFunc supplies the seed for each newly generated world (0 = time based)
type SeedFunc func() int64

// Match owns the whole simulation for one pair of players.
// It is not safe for concurrent use; drive it from a single loop.
type Match struct {
	config *simulation.Config
	seeds  SeedFunc

	state State
	frame int

	world    *world.World
	space    *world.Space
	avatars  [2]*entity.Avatar
	cameras  [2]Camera
	prevJump [2]bool

	resolver *physics.Resolver
	economy  *economy.Economy
	hearts   *feedback.Emitter
	powerUp  world.PowerUp
}

// NewMatch creates a match waiting for Start. A nil seeds func makes every
// world time seeded.
func NewMatch(cfg *simulation.Config, seeds SeedFunc) *Match {
	if seeds == nil {
		seeds = func() int64 { return 0 }
	}

	m := &Match{
		config:   cfg,
		seeds:    seeds,
		state:    StateNotStarted,
		resolver: physics.NewResolver(cfg),
		economy:  economy.NewEconomy(cfg),
		hearts:   feedback.NewEmitter(cfg.Feedback),
	}
	m.avatars[sideIndex(world.SideLeft)] = entity.NewAvatar(world.SideLeft, cfg.SpawnX(false), cfg.SpawnY(),
		cfg.Avatar.Width, cfg.Avatar.Height, cfg.Avatar.StartLives)
	m.avatars[sideIndex(world.SideRight)] = entity.NewAvatar(world.SideRight, cfg.SpawnX(true), cfg.SpawnY(),
		cfg.Avatar.Width, cfg.Avatar.Height, cfg.Avatar.StartLives)
	return m
}

func sideIndex(side world.Side) int {
	if side == world.SideRight {
		return 1
	}
	return 0
}

// State returns the current lifecycle state
func (m *Match) State() State {
	return m.state
}

// Frame returns the number of frames simulated since the last reset
func (m *Match) Frame() int {
	return m.frame
}

// Config returns the rules this match was built with
func (m *Match) Config() *simulation.Config {
	return m.config
}

// World returns the current layout, or nil before the first Start
func (m *Match) World() *world.World {
	return m.world
}

// Avatar returns the avatar for a side
func (m *Match) Avatar(side world.Side) *entity.Avatar {
	return m.avatars[sideIndex(side)]
}

// Camera returns the camera for a side
func (m *Match) Camera(side world.Side) Camera {
	return m.cameras[sideIndex(side)]
}

// Tally returns the pickup tally for a side
func (m *Match) Tally(side world.Side) *economy.Tally {
	return m.economy.Tally(side)
}

// PowerUpActive reports whether the power-up has fired this match
func (m *Match) PowerUpActive() bool {
	return m.powerUp.Active()
}

// Start begins the first match
func (m *Match) Start() error {
	if m.state != StateNotStarted {
		return fmt.Errorf("start while %s: %w", m.state, ErrInvalidCommand)
	}
	m.reset()
	return nil
}

// Restart begins a fresh match after game over
func (m *Match) Restart() error {
	if m.state != StateGameOver {
		return fmt.Errorf("restart while %s: %w", m.state, ErrInvalidCommand)
	}
	m.reset()
	return nil
}

// Exit returns to the title state after game over. The last world is kept
// for display but never simulated.
func (m *Match) Exit() error {
	if m.state != StateGameOver {
		return fmt.Errorf("exit while %s: %w", m.state, ErrInvalidCommand)
	}
	m.state = StateNotStarted
	log.Printf("Match: exited to title after %d frames", m.frame)
	return nil
}

// ActivatePowerUp drops bonus books onto the right column above the right
// avatar. Only the first call in a match has any effect.
func (m *Match) ActivatePowerUp() (int, error) {
	if m.state != StateRunning {
		return 0, fmt.Errorf("power-up while %s: %w", m.state, ErrInvalidCommand)
	}
	right := m.avatars[sideIndex(world.SideRight)]
	added, fired := m.powerUp.Activate(m.world, right.Y, m.config.PowerUp, m.config.Economy.HitBox)
	if fired {
		log.Printf("Match: power-up added %d books", added)
	}
	return added, nil
}

func (m *Match) reset() {
	for _, a := range m.avatars {
		a.Reset()
	}
	for i := range m.cameras {
		m.cameras[i].Reset()
	}
	m.prevJump = [2]bool{}
	m.hearts.Clear()
	m.powerUp.Reset()
	m.economy.Reset()

	seed := m.seeds()
	m.world = world.NewGenerator(m.config, roll.NewSeeded(seed)).Generate()
	m.space = world.NewSpace(m.world, m.config.Economy.HitBox)
	m.frame = 0
	m.state = StateRunning

	log.Printf("Match: started with %d platforms and %d collectibles", len(m.world.Platforms), len(m.world.Collectibles))
}

// intent turns held controls into a frame intent. Jump fires only on the
// frame the key goes down.
func (m *Match) intent(side world.Side, c Controls) entity.Intent {
	idx := sideIndex(side)
	jump := c.Jump && !m.prevJump[idx]
	m.prevJump[idx] = c.Jump
	return entity.Intent{Left: c.MoveLeft, Right: c.MoveRight, Jump: jump}
}

// Step advances the simulation one frame. It does nothing unless running.
func (m *Match) Step(in Input) StepResult {
	var result StepResult
	if m.state != StateRunning {
		return result
	}
	m.frame++

	intents := [2]entity.Intent{
		m.intent(world.SideLeft, in.Left),
		m.intent(world.SideRight, in.Right),
	}

	for i, a := range m.avatars {
		m.resolver.ApplyIntent(a, intents[i])
		m.resolver.Integrate(a, m.space)
	}

	// Falls are judged against the cameras from the previous frame
	for i, a := range m.avatars {
		if reason := m.resolver.CheckTermination(a, m.cameras[i].Y); reason != physics.TerminationNone {
			result.Terminations = append(result.Terminations, TerminationEvent{Side: a.Side, Reason: reason})
			log.Printf("Match: %s avatar %s at frame %d", a.Side, reason, m.frame)
		}
	}

	anchor := m.config.CameraAnchor()
	for i, a := range m.avatars {
		m.cameras[i].Follow(a, anchor)
	}

	m.world.StepPlatforms(m.config.Motion.Step, m.config.Motion.Amplitude)
	if missing := m.world.ReanchorCollectibles(); missing > 0 {
		log.Printf("Match: %d collectibles lost their platform", missing)
	}
	m.space.Sync()

	result.Pickups = m.economy.Resolve(m.space, map[world.Side]*entity.Avatar{
		world.SideLeft:  m.avatars[0],
		world.SideRight: m.avatars[1],
	})
	for _, p := range result.Pickups {
		m.hearts.Spawn(p, m.cameras[sideIndex(p.Side)].Y)
	}
	m.hearts.Step()

	for _, a := range m.avatars {
		if a.Lives <= 0 {
			result.GameOver = true
		}
	}
	if result.GameOver {
		m.state = StateGameOver
		log.Printf("Match: game over at frame %d (left %d lives, right %d lives)",
			m.frame, m.avatars[0].Lives, m.avatars[1].Lives)
	}

	return result
}
