package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/one-more-match3/internal/core"
	gamematch3 "github.com/vovakirdan/one-more-match3/internal/games/match3"
	m3 "github.com/vovakirdan/one-more-match3/internal/match3"
	"github.com/vovakirdan/one-more-match3/internal/platform/tui"
)

var (
	flagGenSize    int
	flagGenCount   int
	flagGenStats   int
	flagGenCascade bool
	flagGenPlain   bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print generated boards",
	Long: `Generate boards with the configured palette and print them.

The generator makes one de-duplication sweep, so a board can still
contain a match now and then. --stats measures how often that happens,
and --cascade shows the settled board and what resolving it scored.

Examples:
  match3 gen
  match3 gen --size 6 --count 3 --seed 42
  match3 gen --size 5 --stats 10000
  match3 gen --cascade --plain`,
	Run: runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagGenSize, "size", 0, "Board size (0 = board.size from config)")
	genCmd.Flags().IntVar(&flagGenCount, "count", 1, "Number of boards to print")
	genCmd.Flags().IntVar(&flagGenStats, "stats", 0, "Generate this many boards and report the residual match rate")
	genCmd.Flags().BoolVar(&flagGenCascade, "cascade", false, "Also resolve each board and print the result")
	genCmd.Flags().BoolVar(&flagGenPlain, "plain", false, "Print token letters instead of colored pieces")
}

func runGen(_ *cobra.Command, _ []string) {
	size := flagGenSize
	if size <= 0 {
		size = gameConfig.Board.Size
	}
	if size < 1 {
		fmt.Fprintf(os.Stderr, "Error: board size must be positive, got %d\n", size)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := m3.NewEngine(append(gameConfig.EngineOptions(), m3.WithSeed(seed))...)

	if flagGenStats > 0 {
		printGenStats(engine, size, flagGenStats)
		return
	}

	points := gameConfig.Scoring.PointsPerMatch
	for i := range flagGenCount {
		if i > 0 {
			fmt.Println()
		}
		g := engine.Generate(size)
		fmt.Printf("board %d (seed %d), %d residual matches\n", i+1, seed, m3.CountMatches(g))
		printGrid(g)
		for _, m := range m3.Matches(g) {
			fmt.Printf("  %s match at %v\n", m.Pattern, m.Center)
		}

		if !flagGenCascade {
			continue
		}
		res, err := engine.ResolveCascade(g)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		fmt.Printf("resolved: %d matches over %d passes, %d points\n", res.TotalMatches, res.Passes, res.Score(points))
		printGrid(res.Grid)
	}
}

func printGenStats(engine *m3.Engine, size, n int) {
	withMatch := 0
	total := 0
	for range n {
		c := m3.CountMatches(engine.Generate(size))
		total += c
		if c > 0 {
			withMatch++
		}
	}
	fmt.Printf("%d boards of %dx%d\n", n, size, size)
	fmt.Printf("  with a residual match: %d (%.2f%%)\n", withMatch, 100*float64(withMatch)/float64(n))
	fmt.Printf("  residual matches per board: %.3f\n", float64(total)/float64(n))
}

func printGrid(g m3.Grid) {
	if flagGenPlain {
		fmt.Println(g.String())
		return
	}

	// Pieces that still take part in a match are drawn hollow.
	matched := m3.MatchedCells(g)
	screen := core.NewScreen(g.Size()*2, g.Size())
	for _, p := range g.Positions() {
		glyph := '●'
		if matched[p] {
			glyph = '◎'
		}
		screen.SetColor(p.Col*2, p.Row, glyph, gamematch3.TokenColor(g.Get(p)))
	}
	fmt.Println(tui.RenderScreen(screen))
}
