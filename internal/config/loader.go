package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakin loads Break-in configuration.
// Search order: customPath -> ~/.breakin/configs/breakin.yaml -> ./configs/breakin.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadBreakin(customPath string) (BreakinConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakinConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBreakin(data)
		if err != nil {
			return BreakinConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakin.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBreakin(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/breakin.yaml"); err == nil {
		if cfg, err := parseBreakin(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBreakin(defaultBreakinYAML)
	if err != nil {
		return DefaultBreakinConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBreakin decodes YAML over the defaults and validates the result.
func parseBreakin(data []byte) (BreakinConfig, error) {
	cfg := DefaultBreakinConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakinConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BreakinConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakin", "configs", filename)
}

// Validate reports every field that would make the simulation ill-formed.
func (c BreakinConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	a := c.Arena
	check(a.WallSize >= 0, "arena.wall_size must not be negative, got %v", a.WallSize)
	check(a.Width > 2*a.WallSize, "arena.width must exceed twice wall_size, got %v", a.Width)
	check(a.Height > 2*a.WallSize, "arena.height must exceed twice wall_size, got %v", a.Height)

	check(c.Ball.Speed > 0, "ball.speed must be positive, got %v", c.Ball.Speed)
	// The spawn y component is sqrt(speed² - x²), which needs x < speed.
	check(c.Ball.MaxSpawnXSpeed >= 0 && c.Ball.MaxSpawnXSpeed <= c.Ball.Speed,
		"ball.max_spawn_x_speed must be within [0, speed], got %v", c.Ball.MaxSpawnXSpeed)

	b := c.Blocks
	check(b.Columns > 0, "blocks.columns must be positive, got %d", b.Columns)
	check(b.Rows > 0, "blocks.rows must be positive, got %d", b.Rows)
	check(b.Width > 0, "blocks.width must be positive, got %v", b.Width)
	check(b.Height > 0, "blocks.height must be positive, got %v", b.Height)
	if b.Columns > 0 && b.Rows > 0 {
		right := b.OriginX + float64(b.Columns-1)*b.SpacingX + b.Width
		bottom := b.OriginY + float64(b.Rows-1)*b.SpacingY + b.Height
		check(b.OriginX >= a.WallSize && right <= a.Width-a.WallSize,
			"blocks must fit between the side walls, spanning [%v, %v]", b.OriginX, right)
		check(b.OriginY >= a.WallSize && bottom <= a.Height-a.WallSize,
			"blocks must fit between the top and bottom walls, spanning [%v, %v]", b.OriginY, bottom)
	}

	check(c.Row.Acceleration > 0, "row.acceleration must be positive, got %v", c.Row.Acceleration)
	check(c.Row.MaxSpeed > 0, "row.max_speed must be positive, got %v", c.Row.MaxSpeed)

	check(c.Gameplay.Lives > 0, "gameplay.lives must be positive, got %d", c.Gameplay.Lives)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakin config: %w", errors.Join(errs...))
	}
	return nil
}
