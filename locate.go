package tile

// Locate walks corner-stitch neighbor pointers from start until it finds
// the tile containing pt. Spec §4.1 "Point location": "walk neighbor
// pointers (up/down then left/right...) until the tile containing the
// point is found. Guaranteed to terminate in O(√n) expected steps from
// a nearby hint; O(n) worst case."
//
// This is the source's GOTOPOINT macro, translated to a plain function
// rather than inlined text, per the Design Notes instruction that only
// the split primitive's inlining is performance-critical enough to earn
// special treatment.
func Locate(start *Tile, pt Point) *Tile {
	t := start
	for {
		for t.yHi <= pt.Y {
			t = t.rt
		}
		for t.yLo > pt.Y {
			t = t.lb
		}
		for t.xHi <= pt.X {
			t = t.tr
		}
		for t.xLo > pt.X {
			t = t.bl
		}
		if t.yLo <= pt.Y && pt.Y < t.yHi {
			return t
		}
	}
}

// Locate finds the tile containing pt, starting from the plane's hint,
// and updates the hint to the result. Spec §3 Plane: "hint ... Updated
// by every search."
func (p *Plane) Locate(pt Point) *Tile {
	t := Locate(p.hint, pt)
	p.setHint(t)
	return t
}
