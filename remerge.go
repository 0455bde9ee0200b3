package tile

// MergeNMTiles performs the non-Manhattan re-merge pass over area: a
// paint/erase sequence can leave the plane holding a diagonal smaller
// than necessary — split off from what should be one continuous strip
// of the same orientation and types, with only a uniform rectangle
// sitting between the two pieces. Spec §4.4 describes the test for
// when this collapses back: a same-oriented, same-typed "SW (or SE)
// partner" tile, aspect ratios that cross-multiply to equality (no
// geometry drift since the last paint), and everything between the two
// diagonals carrying the correct single type. When all three hold,
// this performs the join sequence the spec calls for and installs the
// one larger diagonal body.
//
// Not run automatically after every paint — like the source pass this
// is distilled from, it walks the whole area and is meant to be
// invoked periodically rather than inline (spec §4.4: "a periodic
// pass"). It is idempotent: a second call over an already-consolidated
// area finds nothing left to do. Returns the number of consolidations
// performed.
func MergeNMTiles(ctx *Context, plane *Plane, area Rect) int {
	merges := 0
	for {
		var rects []Rect
		walkRows(ctx, plane, area, func(t *Tile) {
			if t.body.IsSplit() {
				rects = append(rects, t.Rect())
			}
		})
		if ctx.cancelled() {
			return merges
		}

		progressed := false
		for _, r := range rects {
			if ctx.cancelled() {
				return merges
			}
			t := plane.Locate(Point{X: r.XLo, Y: r.YLo})
			if !t.body.IsSplit() || t.Rect() != r {
				continue // already absorbed by an earlier consolidation this pass
			}
			if plane.consolidateWithPartner(ctx, t) {
				merges++
				progressed = true
			}
		}
		if !progressed {
			return merges
		}
	}
}

// consolidateWithPartner walks down from t's bottom edge through any
// run of uniform-type rectangles sharing t's exact x-range, looking
// for a split tile (the SW/SE partner) with the same direction and
// types. If found and the aspect ratios cross-multiply to equality,
// it joins the whole run into one tile and rebuilds its body as the
// single larger diagonal.
func (p *Plane) consolidateWithPartner(ctx *Context, t *Tile) bool {
	left, right, dir := t.body.Left(), t.body.Right(), t.body.Direction()

	// The uniform strip between two stacked diagonals of the same
	// orientation always carries whichever side's type dominates near
	// the shared boundary: the far side from the corner the diagonal
	// leans toward.
	gapType := right
	if dir == DirBackslash {
		gapType = left
	}

	var gapTiles []*Tile
	cur := t.bl
	for cur.xLo == t.xLo && cur.xHi == t.xHi && !cur.body.IsSplit() && cur.body.Type() == gapType {
		gapTiles = append(gapTiles, cur)
		cur = cur.bl
	}

	partner := cur
	if !partner.body.IsSplit() || partner.xLo != t.xLo || partner.xHi != t.xHi {
		return false
	}
	if partner.body.Direction() != dir || partner.body.Left() != left || partner.body.Right() != right {
		return false
	}
	if int64(t.width())*int64(partner.height()) != int64(partner.width())*int64(t.height()) {
		return false // aspect ratios don't cross-multiply to equality
	}

	if sink := ctx.undo(); sink != nil {
		// partner, the gap run, and t all share t's x-range (the walk
		// above only follows cur.xLo==t.xLo && cur.xHi==t.xHi chains),
		// so there is no vertical boundary this join re-absorbs; t.xLo
		// anchors the record in real geometry the same way recordJoin's
		// joinY call sites do.
		sink.Join(SplitEvent{Point: Point{X: t.xLo, Y: t.yLo}, SplitX: t.xLo, Joined: true})
	}

	merged := partner
	for i := len(gapTiles) - 1; i >= 0; i-- {
		merged = p.joinY(merged, gapTiles[i])
	}
	merged = p.joinY(merged, t)
	merged.body = SplitBody(left, right, dir, t.body.SideFlag())
	return true
}
