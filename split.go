package tile

// splitX performs the horizontal split (spec §4.1 "Horizontal split at
// x"): cuts t at the vertical line x into a left piece (t itself,
// shrunk in place) and a new right piece, producing tiles arranged
// side by side. x must satisfy t.xLo < x < t.xHi.
//
// This is the source's TISPLITX macro, translated to an ordinary
// method rather than inlined text per the Design Notes: "Re-express as
// a compiler-inlineable routine ... Do not translate as a text macro."
// It stays the hottest path in the package — no allocation beyond the
// one new tile, no interface dispatch — so the compiler has every
// opportunity to inline it at call sites within this package.
func (p *Plane) splitX(t *Tile, x int32) (left, right *Tile) {
	right = p.allocTile()
	right.yLo, right.yHi = t.yLo, t.yHi
	right.xLo, right.xHi = x, t.xHi
	right.body = t.body

	right.bl = t
	right.tr = t.tr
	right.rt = t.rt

	// Right edge of t: this entire chain now borders right instead,
	// unconditionally (the cut doesn't touch t's original right edge).
	for xp := t.tr; xp.bl == t; xp = xp.lb {
		xp.bl = right
	}
	t.tr = right

	// Top edge: partition by x. Walk from the rightmost neighbor
	// leftward, redirecting everyone still right of the cut to right.
	xp := t.rt
	for xp.xLo >= x {
		xp.lb = right
		xp = xp.bl
	}
	t.rt = xp

	// Bottom edge: partition by x. Walk from the leftmost neighbor to
	// find the first one that reaches across the cut, then redirect
	// everyone from there on to right.
	xp = t.lb
	for xp.xHi <= x {
		xp = xp.tr
	}
	right.lb = xp
	for xp.rt == t {
		xp.rt = right
		xp = xp.tr
	}

	t.xHi = x
	left = t
	return left, right
}

// splitY performs the vertical split (spec §4.1 "Vertical split at y"):
// cuts t at the horizontal line y into a bottom piece (t itself, shrunk
// in place) and a new top piece. y must satisfy t.yLo < y < t.yHi.
//
// Symmetric to splitX with the roles of x/y and the tr/rt, bl/lb
// pointer pairs swapped.
func (p *Plane) splitY(t *Tile, y int32) (bot, top *Tile) {
	top = p.allocTile()
	top.xLo, top.xHi = t.xLo, t.xHi
	top.yLo, top.yHi = y, t.yHi
	top.body = t.body

	top.lb = t
	top.rt = t.rt
	top.tr = t.tr

	// Top edge of t: wholesale transfer to top.
	for xp := t.rt; xp.lb == t; xp = xp.bl {
		xp.lb = top
	}
	t.rt = top

	// Right edge: partition by y.
	xp := t.tr
	for xp.yLo >= y {
		xp.bl = top
		xp = xp.lb
	}
	t.tr = xp

	// Left edge: partition by y.
	xp = t.bl
	for xp.yHi <= y {
		xp = xp.rt
	}
	top.bl = xp
	for xp.tr == t {
		xp.tr = top
		xp = xp.rt
	}

	t.yHi = y
	bot = t
	return bot, top
}
