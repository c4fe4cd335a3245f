package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	gamematch3 "github.com/vovakirdan/one-more-match3/internal/games/match3"
	"github.com/vovakirdan/one-more-match3/internal/platform/tui"
	"github.com/vovakirdan/one-more-match3/internal/registry"
	"github.com/vovakirdan/one-more-match3/internal/storage"
)

var (
	flagScoreSize  int
	flagScoreLimit int
	flagScoreTUI   bool
	flagScoreClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode (default: match3).

Examples:
  match3 scores
  match3 scores match3_endless
  match3 scores --size 8 --limit 20
  match3 scores --tui
  match3 scores match3 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreSize, "size", 0, "Only show runs on this board size")
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoreTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoreClear, "clear", false, "Delete every score for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := gamematch3.IDLimited
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoreClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return

	case flagScoreTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		board := gameConfig.Board
		if _, err := tui.RunScoreboard(store, width, height, board.MinSize, board.MaxSize); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoreSize > 0 {
		scores, err = store.TopScoresForSize(gameID, flagScoreSize, flagScoreLimit)
		title = fmt.Sprintf("%s %dx%d", title, flagScoreSize, flagScoreSize)
	} else {
		scores, err = store.TopScores(gameID, flagScoreLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-7s  %-5s  %-12s  %s\n", "Rank", "Score", "Size", "Matches", "Moves", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-7s  %-5s  %-12s  %s\n", "----", "-----", "----", "-------", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-7d  %-5s  %-7d  %-5d  %-12s  %s\n",
			i+1, e.Score, fmt.Sprintf("%dx%d", e.GridSize, e.GridSize), e.Matches, e.Moves, e.Player,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Matches: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalMatches)
	}

	if all, err := store.GetAllGamesStats(); err == nil && len(all) > 1 {
		fmt.Println()
		fmt.Println("Other modes:")
		for _, info := range registry.List() {
			st, ok := all[info.ID]
			if !ok || info.ID == gameID {
				continue
			}
			fmt.Printf("  %-16s best %d over %d runs\n", info.Title, st.HighScore, st.GamesCount)
		}
	}
}
