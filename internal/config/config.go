// Package config loads the YAML game configuration and applies difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/one-more-match3/internal/match3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Match3Config is the full game configuration.
type Match3Config struct {
	Board   BoardConfig   `yaml:"board"`
	Palette []string      `yaml:"palette"`
	Scoring ScoringConfig `yaml:"scoring"`
	Cascade CascadeConfig `yaml:"cascade"`
	Moves   MovesConfig   `yaml:"moves"`
}

// BoardConfig bounds the board dimension offered by the UI.
type BoardConfig struct {
	Size    int `yaml:"size"`
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// ScoringConfig converts matches to points.
type ScoringConfig struct {
	PointsPerMatch int `yaml:"points_per_match"`
}

// CascadeConfig tunes cascade resolution.
type CascadeConfig struct {
	MaxPasses int `yaml:"max_passes"` // 0 = unbounded
}

// MovesConfig limits swaps in the limited mode.
type MovesConfig struct {
	Limit int `yaml:"limit"`
}

// Validate checks that the configuration is internally consistent.
func (c Match3Config) Validate() error {
	b := c.Board
	switch {
	case b.MinSize < 1:
		return fmt.Errorf("%w: board.min_size must be at least 1, got %d", ErrInvalidConfig, b.MinSize)
	case b.MaxSize < b.MinSize:
		return fmt.Errorf("%w: board.max_size %d is below min_size %d", ErrInvalidConfig, b.MaxSize, b.MinSize)
	case b.Size < b.MinSize || b.Size > b.MaxSize:
		return fmt.Errorf("%w: board.size %d outside [%d, %d]", ErrInvalidConfig, b.Size, b.MinSize, b.MaxSize)
	case c.Scoring.PointsPerMatch < 0:
		return fmt.Errorf("%w: scoring.points_per_match must not be negative", ErrInvalidConfig)
	case c.Cascade.MaxPasses < 0:
		return fmt.Errorf("%w: cascade.max_passes must not be negative", ErrInvalidConfig)
	case c.Moves.Limit < 1:
		return fmt.Errorf("%w: moves.limit must be at least 1, got %d", ErrInvalidConfig, c.Moves.Limit)
	}
	if _, err := c.PaletteTokens(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// PaletteTokens parses the configured palette. An empty list means the
// default seven-color palette.
func (c Match3Config) PaletteTokens() (match3.Palette, error) {
	if len(c.Palette) == 0 {
		return match3.DefaultPalette(), nil
	}
	return match3.ParsePalette(c.Palette)
}

// EngineOptions turns the configuration into engine options.
// The palette must already be valid.
func (c Match3Config) EngineOptions() []match3.Option {
	opts := []match3.Option{match3.WithMaxPasses(c.Cascade.MaxPasses)}
	if p, err := c.PaletteTokens(); err == nil {
		opts = append(opts, match3.WithPalette(p))
	}
	return opts
}
