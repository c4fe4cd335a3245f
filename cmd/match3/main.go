// match3 is a terminal match-3 game with a local TUI, an SSH server and a
// persistent scoreboard.
//
// Usage:
//
//	match3 list              - List game modes
//	match3 play [mode]       - Play a mode directly
//	match3 menu              - Pick mode, board size and difficulty interactively
//	match3 serve             - Start SSH server for remote play
//	match3 scores [mode]     - Show high scores
//	match3 gen               - Print generated boards and generator statistics
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Load a custom match3.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/one-more-match3/internal/config"
	"github.com/vovakirdan/one-more-match3/internal/core"
	gamematch3 "github.com/vovakirdan/one-more-match3/internal/games/match3"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// Resolved in PersistentPreRunE.
var (
	gameConfig config.Match3Config
	difficulty config.DifficultyPreset
	logFile    *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "One More Match3 - swap, match and cascade in your terminal",
	Long: `One More Match3 is a terminal match-3 game. Swap two neighbouring
pieces (diagonals count) and every line of three, in any direction,
is replaced and scored. Replacements can cascade into new matches.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive setup menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  gen      - Inspect the board generator

Examples:
  match3 play
  match3 play match3_endless --size 10
  match3 menu --difficulty hard
  match3 serve --ssh :2222
  match3 scores match3 --size 8
  match3 gen --size 6 --count 3 --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom match3.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the TUI is silent otherwise)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(genCmd)
}

// setup loads the game configuration and the difficulty preset once for
// every command.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	gameConfig = cfg
	difficulty = preset
	gamematch3.SetConfig(cfg)
	return nil
}

// newLogger builds the logger for a command. Interactive commands own the
// terminal, so they only log when --log-file is set.
func newLogger(prefix string, interactive bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	case interactive:
		w = io.Discard
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// runtimeConfig sizes the screen from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
