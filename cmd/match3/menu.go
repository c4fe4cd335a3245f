package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/one-more-match3/internal/platform/tui"
	"github.com/vovakirdan/one-more-match3/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive setup menu",
	Long: `Pick the mode, board size and difficulty, then play. Finished runs
return to the menu; Tab opens the scoreboard.`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your scores (default: $USER)")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, err := newLogger("match3", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	initial := tui.Setup{Size: gameConfig.Board.Size, Difficulty: difficulty}
	opts := tui.Options{Store: store, Logger: logger, Player: playerName()}
	runErr := tui.RunSession(runtimeConfig(), gameConfig.Board, initial, opts)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
