package match3

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedGrid is returned when grid input is empty, ragged or not square.
var ErrMalformedGrid = errors.New("match3: malformed grid")

// Position addresses a cell by zero-indexed row and column.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns the position offset by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Grid is a square board of tokens stored in row-major order.
// The zero value is an empty 0x0 grid. Grid values never share cell storage
// with grids returned from other operations.
type Grid struct {
	size  int
	cells []Token
}

// NewGrid builds a grid from rows of tokens. Rows must form an N×N square, N >= 1.
func NewGrid(rows [][]Token) (Grid, error) {
	n := len(rows)
	if n == 0 {
		return Grid{}, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	g := Grid{size: n, cells: make([]Token, 0, n*n)}
	for r, row := range rows {
		if len(row) != n {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), n)
		}
		for c, t := range row {
			if t >= tokenCount {
				return Grid{}, fmt.Errorf("%w: unknown token at %v", ErrMalformedGrid, P(r, c))
			}
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// ParseGrid reads the text format produced by Grid.String: one row per line,
// one token character per cell. Blank lines and spaces are ignored.
func ParseGrid(text string) (Grid, error) {
	var rows [][]Token
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		row := make([]Token, 0, len(line))
		for _, ch := range line {
			t, ok := ParseToken(string(ch))
			if !ok {
				return Grid{}, fmt.Errorf("%w: unknown token %q", ErrMalformedGrid, ch)
			}
			row = append(row, t)
		}
		rows = append(rows, row)
	}
	return NewGrid(rows)
}

// MustParseGrid is like ParseGrid but panics on error. Intended for tests and fixtures.
func MustParseGrid(text string) Grid {
	g, err := ParseGrid(text)
	if err != nil {
		panic(err)
	}
	return g
}

// filled returns a size×size grid with every cell drawn from draw.
func filled(size int, draw func() Token) Grid {
	g := Grid{size: size, cells: make([]Token, size*size)}
	for i := range g.cells {
		g.cells[i] = draw()
	}
	return g
}

// Size returns the side length of the grid.
func (g Grid) Size() int {
	return g.size
}

// InBounds reports whether p lies inside the grid.
func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

func (g Grid) index(p Position) int {
	return p.Row*g.size + p.Col
}

// At returns the token at p and whether p is inside the grid.
// Out-of-bounds lookups report false and never compare equal to a real token.
func (g Grid) At(p Position) (Token, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.index(p)], true
}

// Get returns the token at p. It panics if p is out of bounds.
func (g Grid) Get(p Position) Token {
	t, ok := g.At(p)
	if !ok {
		panic(fmt.Sprintf("match3: position %v outside %dx%d grid", p, g.size, g.size))
	}
	return t
}

// With returns a copy of the grid with p set to t. The receiver is unchanged.
func (g Grid) With(p Position, t Token) Grid {
	out := g.Clone()
	if out.InBounds(p) {
		out.cells[out.index(p)] = t
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]Token, len(g.cells))
	copy(cells, g.cells)
	return Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the grid contents as a freshly allocated slice of rows.
func (g Grid) Rows() [][]Token {
	rows := make([][]Token, g.size)
	for r := range g.size {
		row := make([]Token, g.size)
		copy(row, g.cells[r*g.size:(r+1)*g.size])
		rows[r] = row
	}
	return rows
}

// Positions returns every position in row-major order.
func (g Grid) Positions() []Position {
	positions := make([]Position, 0, len(g.cells))
	for r := range g.size {
		for c := range g.size {
			positions = append(positions, P(r, c))
		}
	}
	return positions
}

// String renders the grid in the text format read by ParseGrid.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.size)
	for r := range g.size {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := range g.size {
			sb.WriteRune(g.cells[g.index(P(r, c))].Char())
		}
	}
	return sb.String()
}

// set writes t at p on a grid owned by the caller. Internal use only: callers
// must have cloned the grid first.
func (g Grid) set(p Position, t Token) {
	g.cells[g.index(p)] = t
}
