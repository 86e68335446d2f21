package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the playfield width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the playfield height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// StartLives is the number of lives at game start
	StartLives int `yaml:"start_lives"`

	// ShieldMax caps the shield points a player can bank
	ShieldMax int `yaml:"shield_max"`

	// BossKillThreshold is the number of kills in a stage that summons the boss
	BossKillThreshold int `yaml:"boss_kill_threshold"`

	// PowerUpDropChance is the probability an enemy drops a power-up on death
	PowerUpDropChance float64 `yaml:"powerup_drop_chance"`

	// StarCount is the number of background stars
	StarCount int `yaml:"star_count"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:       800,
		ScreenHeight:      600,
		StartLives:        3,
		ShieldMax:         3,
		BossKillThreshold: 30,
		PowerUpDropChance: 0.1,
		StarCount:         100,
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that would break the simulation.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	case c.StartLives < 1 || c.StartLives > 3:
		return fmt.Errorf("start_lives %d outside 1..3", c.StartLives)
	case c.ShieldMax < 0:
		return errors.New("shield_max must not be negative")
	case c.BossKillThreshold < 1:
		return errors.New("boss_kill_threshold must be at least 1")
	case c.PowerUpDropChance < 0 || c.PowerUpDropChance > 1:
		return fmt.Errorf("powerup_drop_chance %.2f outside 0..1", c.PowerUpDropChance)
	case c.StarCount < 0:
		return errors.New("star_count must not be negative")
	}
	return nil
}

// Width returns the playfield width as a float
func (c Config) Width() float64 {
	return float64(c.ScreenWidth)
}

// Height returns the playfield height as a float
func (c Config) Height() float64 {
	return float64(c.ScreenHeight)
}
