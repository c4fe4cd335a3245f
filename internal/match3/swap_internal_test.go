package match3

import (
	"errors"
	"testing"
)

func TestInvalidSwapReturnsIndependentGrid(t *testing.T) {
	g := MustParseGrid("BGR\nOPY\nARB")
	e := NewEngine(WithSeed(1))

	res, err := e.Swap(g, P(0, 0), P(2, 2))
	if !errors.Is(err, ErrInvalidSwap) {
		t.Fatalf("err = %v, want ErrInvalidSwap", err)
	}
	if !res.Grid.Equal(g) {
		t.Fatalf("grid changed:\n%v", res.Grid)
	}

	res.Grid.set(P(0, 0), Gray)
	if got := g.Get(P(0, 0)); got != Blue {
		t.Errorf("writing the returned grid changed the input: (0,0) = %v", got)
	}
}
