package sand

// Step advances the simulation by one tick: every interior cell, bottom row
// first and in a random direction per row, moves and then resolves contacts.
// After the pass the reaction table is occasionally re-rolled.
func (w *World) Step() {
	g := w.grid
	for y := g.H - 2; y >= 1; y-- {
		if w.scanLeftFirst() {
			for x := 1; x <= g.W-2; x++ {
				w.updateCell(x, y)
			}
		} else {
			for x := g.W - 2; x >= 1; x-- {
				w.updateCell(x, y)
			}
		}
	}
	if w.rng.Chance(w.cfg.Params.ReshuffleOdds) {
		w.reactions.Reroll(w.rng)
	}
	w.ticks++
}

func (w *World) scanLeftFirst() bool {
	if w.leftFirst != nil {
		return w.leftFirst()
	}
	return w.rng.Bool()
}

func (w *World) updateCell(x, y int) {
	c := w.grid.At(x, y)
	if c.ComboTimer > 0 {
		c.ComboTimer--
	}
	m := w.materials.Properties(c.State)
	if m.Mobile() {
		if m.Liquid {
			w.moveLiquid(x, y)
		} else {
			w.moveSolid(x, y)
		}
	}
	w.resolveContacts(x, y)
}

// sideOrder returns the two horizontal neighbors of x in a random order.
func (w *World) sideOrder(x int) (near, far int) {
	if w.rng.Bool() {
		return x + 1, x - 1
	}
	return x - 1, x + 1
}

// diagonalAllowed excludes diagonal targets on the border columns.
func (w *World) diagonalAllowed(x int) bool {
	return x >= 1 && x <= w.grid.W-2
}

func (w *World) moveSolid(x, y int) {
	g := w.grid
	cur := g.At(x, y)
	below := g.At(x, y+1)
	if below.State == Empty {
		w.tryMove(cur, below)
		return
	}
	near, far := w.sideOrder(x)
	for _, nx := range [2]int{near, far} {
		if w.diagonalAllowed(nx) && w.tryMove(cur, g.At(nx, y+1)) {
			return
		}
	}
	w.tryMove(cur, below)
}

func (w *World) moveLiquid(x, y int) {
	g := w.grid
	cur := g.At(x, y)
	below := g.At(x, y+1)
	if below.State == Empty {
		w.tryMove(cur, below)
		return
	}
	near, far := w.sideOrder(x)
	for _, nx := range [2]int{near, far} {
		if w.diagonalAllowed(nx) && w.tryMove(cur, g.At(nx, y+1)) {
			return
		}
	}
	for _, nx := range [2]int{near, far} {
		if w.tryMove(cur, g.At(nx, y)) {
			return
		}
	}
	w.tryMove(cur, below)
}

// tryMove attempts to move cur into target. An empty target is always taken.
// A denser submersible material sinks into a lighter liquid: usually the two
// swap, and once in SinkThroughOdds the liquid is displaced outright.
func (w *World) tryMove(cur, target *Cell) bool {
	if target.State == Empty {
		*target = *cur
		*cur = Cell{}
		return true
	}
	cm := w.materials.Properties(cur.State)
	tm := w.materials.Properties(target.State)
	if cm.Submersible && tm.Liquid && cm.Density > tm.Density {
		if w.rng.Chance(w.cfg.Params.SinkThroughOdds) {
			*target = *cur
			*cur = Cell{}
		} else {
			*cur, *target = *target, *cur
		}
		return true
	}
	return false
}

// contactOrder is up, down, right, left.
var contactOrder = [4][2]int{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

func (w *World) resolveContacts(x, y int) {
	cur := w.grid.At(x, y)
	if cur.ComboTimer > 0 {
		return
	}
	for _, d := range contactOrder {
		if w.react(cur, w.grid.At(x+d[0], y+d[1])) {
			return
		}
	}
}

// react exchanges moisture between cur and other and, when both are off
// cooldown, non-empty and different, applies the reaction table to cur.
// It reports whether a reaction fired.
func (w *World) react(cur, other *Cell) bool {
	w.exchangeMoisture(cur, other)

	if cur.ComboTimer > 0 || other.ComboTimer > 0 {
		return false
	}
	if cur.State == Empty || other.State == Empty || cur.State == other.State {
		return false
	}
	old := cur.State
	cur.State = w.reactions.Lookup(old, other.State)
	cur.ComboTimer = w.materials.delayTimer(old)
	other.ComboTimer = w.materials.delayTimer(cur.State)
	return true
}

func (w *World) exchangeMoisture(cur, other *Cell) {
	p := w.cfg.Params
	curLiquid := w.materials.Properties(cur.State).Liquid
	otherLiquid := w.materials.Properties(other.State).Liquid
	switch {
	case otherLiquid:
		cur.Wetness = addWetness(cur.Wetness, p.LiquidWetGain)
	case int(other.Wetness) > p.SpreadThreshold:
		cur.Wetness = addWetness(cur.Wetness, p.SpreadWetGain)
		if w.rng.Chance(p.GiveBackOdds) {
			other.Wetness = addWetness(other.Wetness, -p.GiveBackAmount)
		}
	case !curLiquid:
		if w.rng.Chance(p.DryOdds) {
			cur.Wetness = addWetness(cur.Wetness, -p.DryAmount)
		}
	}
}

func addWetness(v uint8, delta int) uint8 {
	n := int(v) + delta
	if n < 0 {
		return 0
	}
	if n > maxWetness {
		return maxWetness
	}
	return uint8(n)
}
