package config

import "fmt"

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep moves.limit as configured
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// movesScale is the percentage of moves.limit each preset allows.
var movesScale = map[DifficultyPreset]int{
	DifficultyEasy:   150,
	DifficultyNormal: 100,
	DifficultyHard:   60,
}

// ApplyMatch3Preset adjusts the move budget for a preset.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	scale, ok := movesScale[preset]
	if !ok {
		return
	}
	cfg.Moves.Limit = max(1, cfg.Moves.Limit*scale/100)
}
