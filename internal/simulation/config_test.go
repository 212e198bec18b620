package simulation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}

	if cfg.HalfWidth() != 450 {
		t.Errorf("Expected half width 450, got %v", cfg.HalfWidth())
	}
	if cfg.GroundY() != 660 {
		t.Errorf("Expected ground y 660, got %v", cfg.GroundY())
	}
	if cfg.SpawnY() != 610 {
		t.Errorf("Expected spawn y 610, got %v", cfg.SpawnY())
	}
	if cfg.CameraAnchor() != 280 {
		t.Errorf("Expected camera anchor 280, got %v", cfg.CameraAnchor())
	}
	if cfg.SpawnX(false) != 200 {
		t.Errorf("Expected left spawn x 200, got %v", cfg.SpawnX(false))
	}
	if cfg.SpawnX(true) != 650 {
		t.Errorf("Expected right spawn x 650, got %v", cfg.SpawnX(true))
	}
	// Avatar spawns standing on the ground
	if cfg.SpawnY()+cfg.Avatar.Height != cfg.GroundY() {
		t.Errorf("Expected avatar bottom %v to rest on ground %v", cfg.SpawnY()+cfg.Avatar.Height, cfg.GroundY())
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Expected default gravity 0.5, got %v", cfg.Physics.Gravity)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("physics:\n  gravity: 0.8\nleft:\n  rows: 12\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Expected gravity 0.8, got %v", cfg.Physics.Gravity)
	}
	if cfg.Left.Rows != 12 {
		t.Errorf("Expected 12 left rows, got %d", cfg.Left.Rows)
	}
	// Untouched keys keep defaults
	if cfg.Physics.JumpImpulse != -12 {
		t.Errorf("Expected default jump impulse -12, got %v", cfg.Physics.JumpImpulse)
	}
	if cfg.Right.Rows != 100 {
		t.Errorf("Expected default right rows 100, got %d", cfg.Right.Rows)
	}
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected parse error for malformed YAML")
	}
}

func TestLoadConfigShippedFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "data", "tuning.yaml"))
	if err != nil {
		t.Fatalf("Failed to load shipped tuning: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Error("Expected shipped tuning.yaml to match the built-in defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero arena", func(c *Config) { c.Arena.Width = 0 }},
		{"avatar wider than half", func(c *Config) { c.Avatar.Width = 500 }},
		{"max lives below start", func(c *Config) { c.Avatar.MaxLives = 2 }},
		{"no left rows", func(c *Config) { c.Left.Rows = 0 }},
		{"bad chance above one", func(c *Config) { c.Left.BadChance = 1.5 }},
		{"zero amplitude", func(c *Config) { c.Motion.Amplitude = 0 }},
		{"zero stride", func(c *Config) { c.PowerUp.Stride = 0 }},
		{"zero heart age", func(c *Config) { c.Feedback.MaxAge = 0 }},
		{"zero hit box", func(c *Config) { c.Economy.HitBox = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
