package tile

// FracturePlane is the public form of fracture: it splits every tile
// overlapping area that crosses area's boundary and for which
// interactionTable would actually change the tile's type (spec §6
// "fracture_plane(plane, rect, interaction_table, ...)"). Tiles that
// interactionTable maps to themselves are left whole, even if they
// cross the boundary — splitting a tile the caller isn't going to
// repaint serves no purpose.
//
// PaintDiagonal's own fractureToArea is deliberately unconditional
// (simpler, and paint always changes something); this entry point is
// for callers — the channel package's one-channel-one-tile pass among
// them — that need fracture as a standalone step ahead of a later
// paint.
func FracturePlane(ctx *Context, plane *Plane, area Rect, interactionTable ResultTable) {
	if area.Empty() {
		return
	}
	interacts := func(t *Tile) bool {
		if t.body.IsSplit() {
			return interactionTable(t.body.Left()) != t.body.Left() ||
				interactionTable(t.body.Right()) != t.body.Right()
		}
		return interactionTable(t.body.Type()) != t.body.Type()
	}

	for x := area.XLo; x < area.XHi; {
		t := plane.Locate(Point{X: x, Y: area.YHi - 1})
		if t.yHi > area.YHi && interacts(t) {
			if t.body.IsSplit() {
				plane.splitDiagonalHoriz(ctx, t, area.YHi)
			} else {
				plane.splitY(t, area.YHi)
			}
			t = plane.Locate(Point{X: x, Y: area.YHi - 1})
		}
		x = t.xHi
	}
	for x := area.XLo; x < area.XHi; {
		t := plane.Locate(Point{X: x, Y: area.YLo})
		if t.yLo < area.YLo && interacts(t) {
			if t.body.IsSplit() {
				plane.splitDiagonalHoriz(ctx, t, area.YLo)
			} else {
				plane.splitY(t, area.YLo)
			}
			t = plane.Locate(Point{X: x, Y: area.YLo})
		}
		x = t.xHi
	}
	for y := area.YLo; y < area.YHi; {
		t := plane.Locate(Point{X: area.XHi - 1, Y: y})
		if t.xHi > area.XHi && interacts(t) {
			if t.body.IsSplit() {
				plane.splitDiagonalVert(ctx, t, area.XHi)
			} else {
				plane.splitX(t, area.XHi)
			}
			t = plane.Locate(Point{X: area.XHi - 1, Y: y})
		}
		y = t.yHi
	}
	for y := area.YLo; y < area.YHi; {
		t := plane.Locate(Point{X: area.XLo, Y: y})
		if t.xLo < area.XLo && interacts(t) {
			if t.body.IsSplit() {
				plane.splitDiagonalVert(ctx, t, area.XLo)
			} else {
				plane.splitX(t, area.XLo)
			}
			t = plane.Locate(Point{X: area.XLo, Y: y})
		}
		y = t.yHi
	}
}

// SearchPaintArea walks every tile overlapping area whose type (for a
// rectangular tile) or either half (for a split tile) intersects
// typeMask, calling callback on each. Spec §6: "search_paint_area
// (plane, rect, type_mask, callback) -> walk-abort value". If callback
// returns false the walk stops early and SearchPaintArea returns
// false; if the walk runs to completion it returns true.
func SearchPaintArea(ctx *Context, plane *Plane, area Rect, typeMask Type, callback func(*Tile) bool) bool {
	if area.Empty() {
		return true
	}
	matches := func(t *Tile) bool {
		if t.body.IsSplit() {
			return t.body.Left()&typeMask != 0 || t.body.Right()&typeMask != 0
		}
		return t.body.Type()&typeMask != 0
	}

	result := true
	walkRows(ctx, plane, area, func(t *Tile) {
		if !result || !matches(t) {
			return
		}
		if !callback(t) {
			result = false
		}
	})
	return result
}

// SplitTileAtPoint splits the tile containing point at the vertical
// line x = splitX (doing nothing unless splitX lies strictly inside
// that tile), used only by undo replay (spec §6:
// "split_tile_at_point(plane, point, split_x) — used only by undo
// replay"): a SplitEvent records the (point, split_x) pair that this
// reproduces when undone forward again.
func SplitTileAtPoint(plane *Plane, point Point, splitX int32) {
	t := plane.Locate(point)
	if splitX <= t.xLo || splitX >= t.xHi {
		return
	}
	if t.body.IsSplit() {
		plane.splitDiagonalVert(nil, t, splitX)
		return
	}
	plane.splitX(t, splitX)
}
