package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration used when the
// embedded YAML cannot be parsed.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Size:    8,
			MinSize: 4,
			MaxSize: 12,
		},
		Palette: []string{"blue", "green", "orange", "purple", "red", "yellow", "gray"},
		Scoring: ScoringConfig{
			PointsPerMatch: 10,
		},
		Moves: MovesConfig{
			Limit: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
