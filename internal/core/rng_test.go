package core

import (
	"slices"
	"testing"
)

func TestFillBernoulliExtremes(t *testing.T) {
	buf := make([]uint8, 64)
	FillBernoulli(NewRNG(1).Source(), buf, 0)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("p=0 set cell %d", i)
		}
	}
	FillBernoulli(NewRNG(1).Source(), buf, 1)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("p=1 left cell %d dead", i)
		}
	}
}

func TestFillBernoulliDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillBernoulli(NewRNG(42).Source(), a, 0.35)
	FillBernoulli(NewRNG(42).Source(), b, 0.35)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}
	alive := 0
	for _, v := range a {
		alive += int(v)
	}
	if alive == 0 || alive == len(a) {
		t.Fatalf("p=0.35 produced %d/%d alive cells", alive, len(a))
	}
}
