// Package config provides YAML-based game configuration loading and
// difficulty presets for Break-in.
package config

import "fmt"

// BreakinConfig contains all configuration for the Break-in game.
type BreakinConfig struct {
	Arena    BreakinArena    `yaml:"arena"`
	Ball     BreakinBall     `yaml:"ball"`
	Blocks   BreakinBlocks   `yaml:"blocks"`
	Row      BreakinRow      `yaml:"row"`
	Gameplay BreakinGameplay `yaml:"gameplay"`
}

// BreakinArena defines the walled play field in arena units.
type BreakinArena struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	WallSize float64 `yaml:"wall_size"`
}

// BreakinBall defines ball movement parameters.
type BreakinBall struct {
	Speed          float64 `yaml:"speed"`             // Constant magnitude of the velocity
	MaxSpawnXSpeed float64 `yaml:"max_spawn_x_speed"` // Upper bound (exclusive) of the random x component at spawn
}

// BreakinBlocks defines the initial block grid.
type BreakinBlocks struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	OriginX  float64 `yaml:"origin_x"`  // X of the first column
	OriginY  float64 `yaml:"origin_y"`  // Y of the first row
	SpacingX float64 `yaml:"spacing_x"` // Distance between column origins
	SpacingY float64 `yaml:"spacing_y"` // Distance between row origins
}

// BreakinRow defines how the block row responds to input.
type BreakinRow struct {
	Acceleration float64 `yaml:"acceleration"` // Speed change per tick while a direction is held
	MaxSpeed     float64 `yaml:"max_speed"`
}

// BreakinGameplay defines rules outside the physics.
type BreakinGameplay struct {
	Lives int `yaml:"lives"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset.
// An empty string means no preset; unknown names are rejected.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyBreakinPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyBreakinPreset(cfg *BreakinConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Row.Acceleration = 0.3
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Row.Acceleration = 0.15
		cfg.Row.MaxSpeed = 4
	}
}
