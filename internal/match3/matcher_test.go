package match3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/one-more-match3/internal/match3"
)

func TestCountMatchesPatterns(t *testing.T) {
	tests := []struct {
		name  string
		grid  string
		count int
	}{
		{
			name:  "no match",
			grid:  "BGR\nOPY\nARB",
			count: 0,
		},
		{
			name:  "vertical",
			grid:  "GBR\nOBY\nABP",
			count: 1,
		},
		{
			name:  "horizontal",
			grid:  "GOR\nBBB\nAYP",
			count: 1,
		},
		{
			name:  "diagonal down",
			grid:  "BOR\nGBY\nAPB",
			count: 1,
		},
		{
			name:  "diagonal up",
			grid:  "GOB\nRBY\nBPA",
			count: 1,
		},
		{
			name:  "cross counts twice for the center",
			grid:  "GBR\nBBB\nABP",
			count: 2,
		},
		{
			name:  "run of four counts each inner cell",
			grid:  "BBBB\nGORY\nYROG\nAPAP",
			count: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := match3.MustParseGrid(tc.grid)
			assert.Equal(t, tc.count, match3.CountMatches(g))
			assert.Len(t, match3.Matches(g), tc.count)
		})
	}
}

func TestCountMatchesUniformGrid(t *testing.T) {
	// Interior cells match on all four axes, non-corner edge cells only
	// along their edge, corners never.
	tests := []struct {
		size  int
		count int
	}{
		{1, 0},
		{2, 0},
		{3, 1*4 + 4*1},
		{4, 4*4 + 4*2},
		{5, 9*4 + 4*3},
	}

	for _, tc := range tests {
		g := uniformGrid(t, tc.size, match3.Red)
		assert.Equal(t, tc.count, match3.CountMatches(g), "uniform %dx%d", tc.size, tc.size)
	}
}

func TestSmallGridsNeverMatch(t *testing.T) {
	for _, text := range []string{"B", "BB\nBB", "BG\nGB", "RR\nRB"} {
		assert.Zero(t, match3.CountMatches(match3.MustParseGrid(text)), "grid %q", text)
	}
}

func TestCornersNeverCenterAMatch(t *testing.T) {
	g := uniformGrid(t, 4, match3.Green)
	corners := map[match3.Position]bool{
		match3.P(0, 0): true,
		match3.P(0, 3): true,
		match3.P(3, 0): true,
		match3.P(3, 3): true,
	}

	perCenter := make(map[match3.Position]int)
	for _, m := range match3.Matches(g) {
		perCenter[m.Center]++
	}

	for pos := range corners {
		assert.LessOrEqual(t, perCenter[pos], 1, "corner %v", pos)
		assert.Zero(t, perCenter[pos], "corner %v has an out-of-bounds neighbour on every axis", pos)
	}
	assert.Equal(t, 4, perCenter[match3.P(1, 1)])
	assert.Equal(t, 1, perCenter[match3.P(0, 1)])
}

func TestMatchedCellsCoversNeighbours(t *testing.T) {
	g := match3.MustParseGrid("GBR\nOBY\nABP")
	cells := match3.MatchedCells(g)

	assert.Len(t, cells, 3)
	for _, p := range []match3.Position{match3.P(0, 1), match3.P(1, 1), match3.P(2, 1)} {
		assert.True(t, cells[p], "%v should be part of the match", p)
	}
}

func TestMatchesDoNotMutate(t *testing.T) {
	g := match3.MustParseGrid("GBR\nBBB\nABP")
	before := g.Clone()
	match3.CountMatches(g)
	match3.Matches(g)
	assert.True(t, before.Equal(g))
}

func TestStableFixtureHasNoMatches(t *testing.T) {
	for _, n := range []int{1, 3, 5, 12} {
		assert.Zero(t, match3.CountMatches(stableGrid(t, n)), "size %d", n)
	}
}
