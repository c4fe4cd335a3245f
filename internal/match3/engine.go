package match3

import (
	"math/rand"
	"time"
)

// Engine owns the palette and random source used by generation and cascades.
// An Engine is not safe for concurrent use; give each session its own.
type Engine struct {
	palette   Palette
	rng       Source
	maxPasses int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPalette sets the palette tokens are drawn from.
func WithPalette(p Palette) Option {
	return func(e *Engine) {
		if p.Len() > 0 {
			e.palette = p
		}
	}
}

// WithSource sets the random source.
func WithSource(src Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rng = src
		}
	}
}

// WithSeed uses a math/rand source seeded with seed. A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = newSeededSource(seed)
	}
}

// WithMaxPasses caps the number of cascade replacement passes. Zero means unbounded.
func WithMaxPasses(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxPasses = n
		}
	}
}

// NewEngine creates an engine with the default palette and a time-seeded source
// unless options say otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		palette: DefaultPalette(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = newSeededSource(0)
	}
	return e
}

func newSeededSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Palette returns the engine's palette.
func (e *Engine) Palette() Palette {
	return e.palette
}

// MaxPasses returns the cascade pass cap, zero when unbounded.
func (e *Engine) MaxPasses() int {
	return e.maxPasses
}

// RandomToken draws a token uniformly from the palette.
func (e *Engine) RandomToken() Token {
	return e.palette.Random(e.rng)
}

// randomTokenExcept redraws until the token differs from old.
// Terminates because palettes hold at least two distinct tokens.
func (e *Engine) randomTokenExcept(old Token) Token {
	t := e.RandomToken()
	for t == old {
		t = e.RandomToken()
	}
	return t
}
