// Package match3 implements the grid algorithms behind One More Match3:
// match-free generation, symmetric-triple match detection, swap validation
// and cascade resolution.
//
// The package is UI-agnostic and deterministic for a given random source.
// Grids are values: every operation that changes a grid returns a new one.
package match3

import (
	"errors"
	"fmt"
	"strings"
)

// Token identifies the color occupying a cell.
// Tokens are only ever compared for equality.
type Token uint8

const (
	Blue Token = iota
	Green
	Orange
	Purple
	Red
	Yellow
	Gray
	tokenCount // Sentinel value for iteration
)

// String returns the color name of the token.
func (t Token) String() string {
	switch t {
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Orange:
		return "orange"
	case Purple:
		return "purple"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Gray:
		return "gray"
	default:
		return "unknown"
	}
}

// Char returns a single character used by the text grid format.
func (t Token) Char() rune {
	switch t {
	case Blue:
		return 'B'
	case Green:
		return 'G'
	case Orange:
		return 'O'
	case Purple:
		return 'P'
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	case Gray:
		return 'A'
	default:
		return '?'
	}
}

// ParseToken converts a color name or its grid character to a Token.
func ParseToken(s string) (Token, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue", "b":
		return Blue, true
	case "green", "g":
		return Green, true
	case "orange", "o":
		return Orange, true
	case "purple", "p":
		return Purple, true
	case "red", "r":
		return Red, true
	case "yellow", "y":
		return Yellow, true
	case "gray", "grey", "a":
		return Gray, true
	default:
		return Blue, false
	}
}

// AllTokens returns every known token in declaration order.
func AllTokens() []Token {
	tokens := make([]Token, 0, tokenCount)
	for t := Token(0); t < tokenCount; t++ {
		tokens = append(tokens, t)
	}
	return tokens
}

// ErrPaletteTooSmall is returned when a palette cannot offer a distinct redraw.
var ErrPaletteTooSmall = errors.New("match3: palette needs at least two distinct tokens")

// Source is the random draw primitive the engine consumes.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Palette is the finite set of tokens cells are drawn from.
type Palette struct {
	tokens []Token
}

// DefaultPalette returns the reference seven-color palette.
func DefaultPalette() Palette {
	return Palette{tokens: AllTokens()}
}

// NewPalette builds a palette from the given tokens. Duplicates are dropped.
func NewPalette(tokens ...Token) (Palette, error) {
	seen := make(map[Token]bool, len(tokens))
	unique := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t >= tokenCount {
			return Palette{}, fmt.Errorf("match3: unknown token %d", t)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		unique = append(unique, t)
	}
	if len(unique) < 2 {
		return Palette{}, ErrPaletteTooSmall
	}
	return Palette{tokens: unique}, nil
}

// ParsePalette builds a palette from color names.
func ParsePalette(names []string) (Palette, error) {
	tokens := make([]Token, 0, len(names))
	for _, name := range names {
		t, ok := ParseToken(name)
		if !ok {
			return Palette{}, fmt.Errorf("match3: unknown color %q", name)
		}
		tokens = append(tokens, t)
	}
	return NewPalette(tokens...)
}

// Len returns the number of tokens in the palette.
func (p Palette) Len() int {
	return len(p.tokens)
}

// Tokens returns a copy of the palette's tokens.
func (p Palette) Tokens() []Token {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Contains reports whether t belongs to the palette.
func (p Palette) Contains(t Token) bool {
	for _, pt := range p.tokens {
		if pt == t {
			return true
		}
	}
	return false
}

// Random draws a token uniformly from the palette.
func (p Palette) Random(src Source) Token {
	return p.tokens[src.Intn(len(p.tokens))]
}
