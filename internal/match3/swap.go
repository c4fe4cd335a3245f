package match3

import (
	"errors"
	"fmt"
)

// ErrInvalidSwap is returned when a swap names an out-of-bounds or non-adjacent pair.
var ErrInvalidSwap = errors.New("match3: invalid swap")

// IsAdjacent reports whether b is one of the eight orthogonal or diagonal
// neighbours of a. A position is not adjacent to itself.
func IsAdjacent(a, b Position) bool {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	return dr <= 1 && dc <= 1 && (dr != 0 || dc != 0)
}

// Neighbors returns the in-bounds positions adjacent to p, row-major.
func (g Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n := p.Add(dr, dc)
			if (dr != 0 || dc != 0) && g.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// ValidateSwap checks that a and b are in bounds and adjacent.
func ValidateSwap(g Grid, a, b Position) error {
	if !g.InBounds(a) {
		return fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidSwap, a, g.size, g.size)
	}
	if !g.InBounds(b) {
		return fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidSwap, b, g.size, g.size)
	}
	if !IsAdjacent(a, b) {
		return fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidSwap, a, b)
	}
	return nil
}

// Exchange returns a copy of g with the tokens at a and b swapped.
// It performs no validation.
func Exchange(g Grid, a, b Position) Grid {
	out := g.Clone()
	ta, tb := out.Get(a), out.Get(b)
	out.set(a, tb)
	out.set(b, ta)
	return out
}

// Swap exchanges two adjacent cells and resolves the resulting cascade.
// The exchange is kept even when it produces no match. On ErrInvalidSwap the
// returned Resolution holds an unchanged copy of the input grid.
func (e *Engine) Swap(g Grid, a, b Position) (Resolution, error) {
	if err := ValidateSwap(g, a, b); err != nil {
		return Resolution{Grid: g.Clone()}, err
	}
	return e.ResolveCascade(Exchange(g, a, b))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
