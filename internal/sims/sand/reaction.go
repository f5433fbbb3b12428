package sand

import "sandmaker/internal/core"

// ReactivePair is a curated reaction entry whose outcome is re-rolled between
// Product and Empty.
type ReactivePair struct {
	Current Kind
	Other   Kind
	Product Kind
}

var defaultReactivePairs = []ReactivePair{
	{Current: Sand, Other: Acid, Product: Acid},
	{Current: Water, Other: Acid, Product: Acid},
	{Current: Rock, Other: Acid, Product: Acid},
}

// ReactionTable maps (current, other) contacts to the state current turns
// into. Lookups are ordered: table[current][other].
type ReactionTable struct {
	t        [kindCount][kindCount]Kind
	reactive []ReactivePair
}

// NewReactionTable builds the identity table and rolls the curated entries once.
func NewReactionTable(rng *core.RNG) *ReactionTable {
	rt := &ReactionTable{reactive: append([]ReactivePair(nil), defaultReactivePairs...)}
	rt.Clear()
	rt.Reroll(rng)
	return rt
}

// Clear restores the identity mapping for every pair.
func (rt *ReactionTable) Clear() {
	for i := range rt.t {
		for j := range rt.t[i] {
			rt.t[i][j] = Kind(i)
		}
	}
}

// Lookup returns the state current becomes after touching other.
func (rt *ReactionTable) Lookup(current, other Kind) Kind {
	if !current.Valid() || !other.Valid() {
		return current
	}
	return rt.t[current][other]
}

// Set pins a single entry. Invalid kinds are ignored.
func (rt *ReactionTable) Set(current, other, result Kind) {
	if !current.Valid() || !other.Valid() || !result.Valid() {
		return
	}
	rt.t[current][other] = result
}

// Reactive returns the curated pairs that Reroll re-decides.
func (rt *ReactionTable) Reactive() []ReactivePair {
	return append([]ReactivePair(nil), rt.reactive...)
}

// Reroll re-decides every curated entry independently with a fair coin
// between its product and Empty. The outcome is shared by every contact of
// that pair until the next reroll.
func (rt *ReactionTable) Reroll(rng *core.RNG) {
	for _, p := range rt.reactive {
		if rng.Bool() {
			rt.t[p.Current][p.Other] = p.Product
		} else {
			rt.t[p.Current][p.Other] = Empty
		}
	}
}
