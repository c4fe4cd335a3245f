package match3

// Pattern is one of the four symmetric axes a match can form along.
type Pattern uint8

const (
	Vertical     Pattern = iota // (r-1,c) and (r+1,c)
	Horizontal                  // (r,c-1) and (r,c+1)
	DiagonalDown                // (r-1,c-1) and (r+1,c+1)
	DiagonalUp                  // (r+1,c-1) and (r-1,c+1)
)

// Patterns lists every pattern in the order cells are checked.
var Patterns = [...]Pattern{Vertical, Horizontal, DiagonalDown, DiagonalUp}

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case DiagonalDown:
		return "diagonal-down"
	case DiagonalUp:
		return "diagonal-up"
	default:
		return "unknown"
	}
}

// Neighbors returns the two positions that must equal center for the pattern to match.
func (p Pattern) Neighbors(center Position) (Position, Position) {
	switch p {
	case Vertical:
		return center.Add(-1, 0), center.Add(1, 0)
	case Horizontal:
		return center.Add(0, -1), center.Add(0, 1)
	case DiagonalDown:
		return center.Add(-1, -1), center.Add(1, 1)
	default:
		return center.Add(1, -1), center.Add(-1, 1)
	}
}

// Match is a single satisfied pattern around a center cell.
type Match struct {
	Center  Position
	Pattern Pattern
}

// Cells returns the three positions involved in the match.
func (m Match) Cells() [3]Position {
	a, b := m.Pattern.Neighbors(m.Center)
	return [3]Position{a, m.Center, b}
}

// matchesAt reports whether both neighbours of center along p exist and hold v.
// The value is passed in rather than read from center so sweeps that mutate the
// grid can keep comparing against the token the cell held when visited.
func matchesAt(g Grid, center Position, p Pattern, v Token) bool {
	a, b := p.Neighbors(center)
	ta, okA := g.At(a)
	if !okA || ta != v {
		return false
	}
	tb, okB := g.At(b)
	return okB && tb == v
}

// CountMatches returns the number of (cell, pattern) pairs that form a match.
// A cell can contribute up to four counts, one per pattern.
func CountMatches(g Grid) int {
	count := 0
	for _, pos := range g.Positions() {
		v := g.Get(pos)
		for _, p := range Patterns {
			if matchesAt(g, pos, p, v) {
				count++
			}
		}
	}
	return count
}

// Matches lists every satisfied pattern in row-major, pattern order.
// len(Matches(g)) == CountMatches(g).
func Matches(g Grid) []Match {
	var found []Match
	for _, pos := range g.Positions() {
		v := g.Get(pos)
		for _, p := range Patterns {
			if matchesAt(g, pos, p, v) {
				found = append(found, Match{Center: pos, Pattern: p})
			}
		}
	}
	return found
}

// MatchedCells returns the set of positions taking part in at least one match.
func MatchedCells(g Grid) map[Position]bool {
	cells := make(map[Position]bool)
	for _, m := range Matches(g) {
		for _, pos := range m.Cells() {
			cells[pos] = true
		}
	}
	return cells
}
