package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sandmaker/internal/core"
)

func TestReactionTableIdentityOutsideCuratedPairs(t *testing.T) {
	rt := NewReactionTable(core.NewRNG(1))
	curated := map[[2]Kind]bool{}
	for _, p := range rt.Reactive() {
		curated[[2]Kind{p.Current, p.Other}] = true
	}
	for _, a := range Kinds() {
		for _, b := range Kinds() {
			if curated[[2]Kind{a, b}] {
				continue
			}
			assert.Equal(t, a, rt.Lookup(a, b), "%v touching %v", a, b)
		}
	}
}

func TestReactionTableRerollCoversBothOutcomes(t *testing.T) {
	rng := core.NewRNG(11)
	rt := NewReactionTable(rng)

	seen := map[ReactivePair]map[Kind]bool{}
	for i := 0; i < 200; i++ {
		rt.Reroll(rng)
		for _, p := range rt.Reactive() {
			got := rt.Lookup(p.Current, p.Other)
			assert.Contains(t, []Kind{p.Product, Empty}, got)
			if seen[p] == nil {
				seen[p] = map[Kind]bool{}
			}
			seen[p][got] = true
		}
	}
	for p, outcomes := range seen {
		assert.Len(t, outcomes, 2, "pair %v/%v should hit both outcomes", p.Current, p.Other)
	}
}

func TestReactionTableSetAndInvalid(t *testing.T) {
	rt := NewReactionTable(core.NewRNG(1))
	rt.Clear()
	rt.Set(Sand, Water, Rock)
	assert.Equal(t, Rock, rt.Lookup(Sand, Water))
	assert.Equal(t, Water, rt.Lookup(Water, Sand), "lookups are ordered")

	rt.Set(Sand, Kind(50), Rock)
	rt.Set(Sand, Rock, Kind(50))
	assert.Equal(t, Sand, rt.Lookup(Sand, Rock))
	assert.Equal(t, Kind(60), rt.Lookup(Kind(60), Sand))
}
