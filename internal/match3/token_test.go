package match3_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/one-more-match3/internal/match3"
)

func TestDefaultPaletteHasSevenColors(t *testing.T) {
	p := match3.DefaultPalette()
	assert.Equal(t, 7, p.Len())

	names := make([]string, 0, p.Len())
	for _, tok := range p.Tokens() {
		names = append(names, tok.String())
	}
	assert.Equal(t, []string{"blue", "green", "orange", "purple", "red", "yellow", "gray"}, names)
}

func TestParseTokenNamesAndChars(t *testing.T) {
	for _, tok := range match3.AllTokens() {
		byName, ok := match3.ParseToken(tok.String())
		require.True(t, ok, "ParseToken(%q)", tok.String())
		assert.Equal(t, tok, byName)

		byChar, ok := match3.ParseToken(string(tok.Char()))
		require.True(t, ok, "ParseToken(%q)", string(tok.Char()))
		assert.Equal(t, tok, byChar)
	}

	_, ok := match3.ParseToken("magenta")
	assert.False(t, ok)
}

func TestNewPaletteRejectsSingleToken(t *testing.T) {
	_, err := match3.NewPalette(match3.Red)
	assert.True(t, errors.Is(err, match3.ErrPaletteTooSmall))

	_, err = match3.NewPalette(match3.Red, match3.Red)
	assert.True(t, errors.Is(err, match3.ErrPaletteTooSmall), "duplicates do not count as distinct")
}

func TestParsePalette(t *testing.T) {
	p, err := match3.ParsePalette([]string{"red", "blue", "Grey"})
	require.NoError(t, err)
	assert.Equal(t, []match3.Token{match3.Red, match3.Blue, match3.Gray}, p.Tokens())
	assert.True(t, p.Contains(match3.Gray))
	assert.False(t, p.Contains(match3.Green))

	_, err = match3.ParsePalette([]string{"red", "teal"})
	assert.Error(t, err)
}

func TestPaletteRandomIsUniformEnough(t *testing.T) {
	e := match3.NewEngine(match3.WithSeed(42))
	counts := make(map[match3.Token]int)
	const draws = 7000
	for range draws {
		counts[e.RandomToken()]++
	}

	require.Len(t, counts, 7, "every palette color should be drawn")
	for tok, n := range counts {
		assert.InDelta(t, draws/7, n, 200, "token %v drawn %d times", tok, n)
	}
}
