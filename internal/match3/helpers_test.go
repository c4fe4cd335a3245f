package match3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/one-more-match3/internal/match3"
)

// scriptedSource replays a fixed list of draws, wrapping around at the end.
type scriptedSource struct {
	vals []int
	pos  int
}

func script(vals ...int) *scriptedSource {
	return &scriptedSource{vals: vals}
}

func (s *scriptedSource) Intn(n int) int {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v % n
}

// stableGrid returns an n×n grid without any match: cell (r,c) holds
// token (3r+c) mod 7, so every symmetric neighbour pair differs from its center.
func stableGrid(t *testing.T, n int) match3.Grid {
	t.Helper()
	rows := make([][]match3.Token, n)
	for r := range n {
		rows[r] = make([]match3.Token, n)
		for c := range n {
			rows[r][c] = match3.Token((3*r + c) % 7)
		}
	}
	g, err := match3.NewGrid(rows)
	require.NoError(t, err)
	return g
}

// uniformGrid returns an n×n grid filled with a single token.
func uniformGrid(t *testing.T, n int, tok match3.Token) match3.Grid {
	t.Helper()
	rows := make([][]match3.Token, n)
	for r := range n {
		rows[r] = make([]match3.Token, n)
		for c := range n {
			rows[r][c] = tok
		}
	}
	g, err := match3.NewGrid(rows)
	require.NoError(t, err)
	return g
}
