package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 10; i++ {
		if !r.Chance(1) || !r.Chance(0) {
			t.Fatal("Chance(n<=1) must always succeed")
		}
	}
	hits := 0
	const trials = 20000
	for i := 0; i < trials; i++ {
		if r.Chance(10) {
			hits++
		}
	}
	if hits < 1700 || hits > 2300 {
		t.Fatalf("Chance(10) hit %d/%d times, expected about 2000", hits, trials)
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if r.IntN(0) != 0 || r.IntN(-5) != 0 {
		t.Fatal("expected zero for empty ranges")
	}
}
