package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second
	Seed     int64 // RNG seed, 0 picks one from the clock
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports back to the platform.
type GameState struct {
	Score     int  // Current score
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the game is paused
	GridSize  int  // Current board dimension
	MovesLeft int  // Remaining swaps, -1 when unlimited
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Events are short human-readable notes about what happened this tick,
	// for example a rejected swap. The platform may log them.
	Events []string
}
