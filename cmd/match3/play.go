package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gamematch3 "github.com/vovakirdan/one-more-match3/internal/games/match3"
	"github.com/vovakirdan/one-more-match3/internal/platform/tui"
	"github.com/vovakirdan/one-more-match3/internal/registry"
	"github.com/vovakirdan/one-more-match3/internal/storage"
)

var (
	flagSize   int
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start a run of the given mode (default: match3).

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Space/Enter      - Arm a piece, then pick a neighbour to swap
  Mouse            - Click to arm or swap
  X/Esc            - Disarm
  +/-              - Bigger/smaller board (starts a new board)
  F                - Finish an endless run
  P                - Pause
  R                - Restart (after the run ends)
  Esc/B            - Back to the menu (when paused or finished)
  Ctrl+S           - Save a screenshot to ~/.match3/screenshots
  Q/Ctrl+C         - Quit

Difficulty scales the move budget of limited runs:
  easy   - 150% of moves.limit
  normal - moves.limit
  hard   - 60% of moves.limit
  fixed  - exactly moves.limit

Examples:
  match3 play
  match3 play match3_endless
  match3 play --size 10 --difficulty hard
  match3 play --config ./my-match3.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (0 = board.size from config)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your scores (default: $USER)")
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := gamematch3.IDLimited
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	logger, err := newLogger("match3", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	cfg := runtimeConfig()
	setup := tui.Setup{GameID: gameID, Size: flagSize, Difficulty: difficulty}
	opts := tui.Options{Store: store, Logger: logger, Player: playerName()}

	back, runErr := tui.Run(setup, cfg, opts)
	if runErr == nil && back {
		runErr = tui.RunSession(runtimeConfig(), gameConfig.Board, setup, opts)
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
