// Package simulation provides the tuning values for the climbing simulation.
// Defaults reproduce the classic arena; a YAML file can override any subset.
package simulation

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds all simulation rules for a match
type Config struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Avatar      AvatarConfig      `yaml:"avatar"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Camera      CameraConfig      `yaml:"camera"`
	Termination TerminationConfig `yaml:"termination"`
	Left        LeftPathConfig    `yaml:"left"`
	Right       RightPathConfig   `yaml:"right"`
	Motion      MotionConfig      `yaml:"motion"`
	Economy     EconomyConfig     `yaml:"economy"`
	PowerUp     PowerUpConfig     `yaml:"power_up"`
	Feedback    FeedbackConfig    `yaml:"feedback"`
}

// ArenaConfig defines the play field. The arena is split into two halves.
type ArenaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Shared floor thickness, its top is Height-GroundHeight
}

// AvatarConfig defines the size and starting state of both avatars
type AvatarConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartLives  int     `yaml:"start_lives"`
	MaxLives    int     `yaml:"max_lives"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Spawn y is Height-SpawnOffset
}

// PhysicsConfig defines per-frame integration constants
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"` // Negative, y grows downward
	MoveSpeed        float64 `yaml:"move_speed"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// CameraConfig defines the scroll anchor
type CameraConfig struct {
	AnchorFraction float64 `yaml:"anchor_fraction"` // Fraction of viewport height from the top
}

// TerminationConfig defines the fall-off and fall-back rules
type TerminationConfig struct {
	FallMargin    float64 `yaml:"fall_margin"`     // Distance below the viewport that counts as falling off
	FallBackClimb float64 `yaml:"fall_back_climb"` // Climb needed before returning to spawn height is fatal
}

// LeftPathConfig defines the static "good" column
type LeftPathConfig struct {
	Rows             int     `yaml:"rows"`
	RowStep          float64 `yaml:"row_step"`
	BaseOffset       float64 `yaml:"base_offset"`
	PlatformWidth    float64 `yaml:"platform_width"`
	PlatformHeight   float64 `yaml:"platform_height"`
	MarginX          float64 `yaml:"margin_x"`
	CollectibleEvery int     `yaml:"collectible_every"`
	BadChance        float64 `yaml:"bad_chance"`
	ItemOffsetX      float64 `yaml:"item_offset_x"`
	ItemOffsetY      float64 `yaml:"item_offset_y"`
}

// RightPathConfig defines the moving "hard" column
type RightPathConfig struct {
	Rows           int     `yaml:"rows"`
	RowStep        float64 `yaml:"row_step"`
	BaseOffset     float64 `yaml:"base_offset"`
	Jitter         float64 `yaml:"jitter"`
	MinWidth       float64 `yaml:"min_width"`
	WidthRange     float64 `yaml:"width_range"`
	PlatformHeight float64 `yaml:"platform_height"`
	MarginX        float64 `yaml:"margin_x"`
	ReserveX       float64 `yaml:"reserve_x"` // Space kept free at the right edge
	ItemOffsetX    float64 `yaml:"item_offset_x"`
	ItemOffsetY    float64 `yaml:"item_offset_y"`
}

// MotionConfig defines the platform oscillator
type MotionConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Step      float64 `yaml:"step"`
}

// EconomyConfig defines pickup effects
type EconomyConfig struct {
	HitBox    float64 `yaml:"hit_box"`
	GoodScore int     `yaml:"good_score"`
}

// PowerUpConfig defines the one-shot bonus drop
type PowerUpConfig struct {
	AboveMargin float64 `yaml:"above_margin"`
	Stride      int     `yaml:"stride"`
	DedupRadius float64 `yaml:"dedup_radius"`
	ItemOffsetY float64 `yaml:"item_offset_y"`
}

// FeedbackConfig defines floating heart animation
type FeedbackConfig struct {
	Rise   float64 `yaml:"rise"`
	Fade   float64 `yaml:"fade"`
	MaxAge int     `yaml:"max_age"` // Frames
}

// DefaultConfig returns the classic 900x700 arena rules
func DefaultConfig() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:        900,
			Height:       700,
			GroundHeight: 40,
		},
		Avatar: AvatarConfig{
			Width:       50,
			Height:      50,
			StartLives:  3,
			MaxLives:    5,
			SpawnOffset: 90,
		},
		Physics: PhysicsConfig{
			Gravity:          0.5,
			JumpImpulse:      -12,
			MoveSpeed:        4,
			LandingTolerance: 5,
		},
		Camera: CameraConfig{
			AnchorFraction: 0.4,
		},
		Termination: TerminationConfig{
			FallMargin:    50,
			FallBackClimb: 100,
		},
		Left: LeftPathConfig{
			Rows:             100,
			RowStep:          80,
			BaseOffset:       100,
			PlatformWidth:    120,
			PlatformHeight:   15,
			MarginX:          20,
			CollectibleEvery: 2,
			BadChance:        0.1,
			ItemOffsetX:      50,
			ItemOffsetY:      -40,
		},
		Right: RightPathConfig{
			Rows:           100,
			RowStep:        80,
			BaseOffset:     90,
			Jitter:         15,
			MinWidth:       80,
			WidthRange:     30,
			PlatformHeight: 15,
			MarginX:        10,
			ReserveX:       110,
			ItemOffsetX:    30,
			ItemOffsetY:    -40,
		},
		Motion: MotionConfig{
			Amplitude: 40,
			Step:      1,
		},
		Economy: EconomyConfig{
			HitBox:    30,
			GoodScore: 10,
		},
		PowerUp: PowerUpConfig{
			AboveMargin: 80,
			Stride:      3,
			DedupRadius: 10,
			ItemOffsetY: -40,
		},
		Feedback: FeedbackConfig{
			Rise:   2,
			Fade:   0.02,
			MaxAge: 50,
		},
	}
}

// LoadConfig loads simulation config from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the rules describe a playable arena
func (c *Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have a positive size", ErrInvalidConfig)
	case c.Avatar.Width <= 0 || c.Avatar.Height <= 0:
		return fmt.Errorf("%w: avatar must have a positive size", ErrInvalidConfig)
	case c.Avatar.Width > c.HalfWidth():
		return fmt.Errorf("%w: avatar width %.0f exceeds half arena %.0f", ErrInvalidConfig, c.Avatar.Width, c.HalfWidth())
	case c.Avatar.StartLives <= 0 || c.Avatar.MaxLives < c.Avatar.StartLives:
		return fmt.Errorf("%w: lives must satisfy 0 < start <= max", ErrInvalidConfig)
	case c.Left.Rows <= 0 || c.Right.Rows <= 0:
		return fmt.Errorf("%w: both paths need at least one row", ErrInvalidConfig)
	case c.Left.CollectibleEvery < 1:
		return fmt.Errorf("%w: left collectible_every must be >= 1", ErrInvalidConfig)
	case c.Left.BadChance < 0 || c.Left.BadChance > 1:
		return fmt.Errorf("%w: bad_chance %.2f outside [0,1]", ErrInvalidConfig, c.Left.BadChance)
	case c.Motion.Amplitude <= 0 || c.Motion.Step <= 0:
		return fmt.Errorf("%w: motion amplitude and step must be positive", ErrInvalidConfig)
	case c.PowerUp.Stride < 1:
		return fmt.Errorf("%w: power_up stride must be >= 1", ErrInvalidConfig)
	case c.Feedback.MaxAge < 1:
		return fmt.Errorf("%w: feedback max_age must be >= 1", ErrInvalidConfig)
	case c.Economy.HitBox <= 0:
		return fmt.Errorf("%w: economy hit_box must be positive", ErrInvalidConfig)
	}
	return nil
}

// HalfWidth returns the x coordinate splitting the two paths
func (c *Config) HalfWidth() float64 {
	return c.Arena.Width / 2
}

// GroundY returns the top of the shared floor
func (c *Config) GroundY() float64 {
	return c.Arena.Height - c.Arena.GroundHeight
}

// SpawnY returns the starting y for both avatars
func (c *Config) SpawnY() float64 {
	return c.Arena.Height - c.Avatar.SpawnOffset
}

// CameraAnchor returns the screen y the camera keeps a climbing avatar below
func (c *Config) CameraAnchor() float64 {
	return c.Arena.Height * c.Camera.AnchorFraction
}

// SpawnX returns the starting x for the left (right=false) or right avatar,
// centered in its half.
func (c *Config) SpawnX(right bool) float64 {
	half := c.HalfWidth()
	x := half/2 - c.Avatar.Width/2
	if right {
		x += half
	}
	return x
}
