package match3

import (
	"errors"
	"fmt"
)

// ErrCascadeDidNotConverge is returned when a pass cap is set and the grid
// still holds matches after that many replacement passes. The accompanying
// Resolution carries the last computed grid.
var ErrCascadeDidNotConverge = errors.New("match3: cascade did not converge")

// Resolution is the outcome of resolving a grid.
type Resolution struct {
	Grid         Grid // Final grid
	TotalMatches int  // Sum of match counts over every matching state
	Passes       int  // Number of replacement passes run
}

// Score converts the resolved matches into points.
func (r Resolution) Score(pointsPerMatch int) int {
	return r.TotalMatches * pointsPerMatch
}

// ResolveCascade repeatedly replaces matched cells until no match remains.
//
// Every grid state that still matches adds its CountMatches to TotalMatches
// before a replacement pass runs over it. A grid without matches is returned
// unchanged with zero totals. The input grid is never modified.
func (e *Engine) ResolveCascade(g Grid) (Resolution, error) {
	res := Resolution{Grid: g.Clone()}
	count := CountMatches(res.Grid)
	for count > 0 {
		if e.maxPasses > 0 && res.Passes >= e.maxPasses {
			return res, fmt.Errorf("%w after %d passes (%d matches left)", ErrCascadeDidNotConverge, res.Passes, count)
		}
		res.TotalMatches += count
		res.Grid = e.replaceMatched(res.Grid)
		res.Passes++
		count = CountMatches(res.Grid)
	}
	return res, nil
}

// replaceMatched returns a copy of g where, for every satisfied pattern, the
// center and both neighbours have been redrawn. Cells are visited row-major and
// each cell's token is captured before its patterns are checked, so a pattern
// found earlier in the same cell does not hide later ones.
func (e *Engine) replaceMatched(g Grid) Grid {
	out := g.Clone()
	for _, pos := range out.Positions() {
		v := out.Get(pos)
		for _, p := range Patterns {
			if !matchesAt(out, pos, p, v) {
				continue
			}
			a, b := p.Neighbors(pos)
			out.set(pos, e.RandomToken())
			out.set(b, e.RandomToken())
			out.set(a, e.RandomToken())
		}
	}
	return out
}
