package utils

import (
	"encoding/json"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// StatusLines is the number of screen rows above the grid holding status text
const StatusLines = 2

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	InitialDelay int    `json:"initial_delay_ms"`
	MinDelay     int    `json:"min_delay_ms"`
	DelayStep    int    `json:"delay_step_ms"`
	AliveGlyph   string `json:"alive_glyph"`
	GridOffset   int    `json:"grid_offset"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		InitialDelay: 100,
		MinDelay:     10,
		DelayStep:    10,
		AliveGlyph:   "O",
		GridOffset:   4, // leaves room for the two status lines
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Validate checks the delay bounds and rendering settings
func (c Config) Validate() error {
	switch {
	case c.MinDelay <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] min_delay_ms must be positive, got %d", c.MinDelay)
	case c.DelayStep <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] delay_step_ms must be positive, got %d", c.DelayStep)
	case c.InitialDelay < c.MinDelay:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] initial_delay_ms %d below min_delay_ms %d", c.InitialDelay, c.MinDelay)
	case utf8.RuneCountInString(c.AliveGlyph) != 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] alive_glyph must be a single character, got %q", c.AliveGlyph)
	case c.GridOffset < StatusLines:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid_offset must be at least %d, got %d", StatusLines, c.GridOffset)
	}
	return nil
}

// Glyph returns the rune drawn for a living cell
func (c Config) Glyph() rune {
	r, _ := utf8.DecodeRuneInString(c.AliveGlyph)
	return r
}
