package match3

import "fmt"

// Generate builds a size×size grid of random tokens, then runs one
// de-duplication sweep over it.
//
// The sweep visits cells in row-major order. For every pattern a cell
// satisfies against the grid as it stands at that moment, the cell is redrawn
// to a token different from its current one. The sweep runs exactly once, so
// a match can occasionally survive; callers treat the result as best-effort
// match-free.
//
// Generate panics if size < 1.
func (e *Engine) Generate(size int) Grid {
	if size < 1 {
		panic(fmt.Sprintf("match3: grid size must be at least 1, got %d", size))
	}
	g := filled(size, e.RandomToken)
	e.dedupe(g)
	return g
}

// dedupe applies the single generation sweep to g in place.
func (e *Engine) dedupe(g Grid) {
	for _, pos := range g.Positions() {
		v := g.Get(pos)
		for _, p := range Patterns {
			if matchesAt(g, pos, p, v) {
				g.set(pos, e.randomTokenExcept(g.Get(pos)))
			}
		}
	}
}
