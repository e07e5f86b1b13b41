package config

import (
	_ "embed"
)

//go:embed defaults/breakin.yaml
var defaultBreakinYAML []byte

// DefaultBreakinConfig returns the default Break-in configuration.
func DefaultBreakinConfig() BreakinConfig {
	return BreakinConfig{
		Arena: BreakinArena{
			Width:    500,
			Height:   500,
			WallSize: 10,
		},
		Ball: BreakinBall{
			Speed:          5,
			MaxSpawnXSpeed: 5,
		},
		Blocks: BreakinBlocks{
			Columns:  10,
			Rows:     3,
			Width:    30,
			Height:   20,
			OriginX:  40,
			OriginY:  350,
			SpacingX: 40,
			SpacingY: 50,
		},
		Row: BreakinRow{
			Acceleration: 0.2,
			MaxSpeed:     5,
		},
		Gameplay: BreakinGameplay{
			Lives: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakinYAML
}
