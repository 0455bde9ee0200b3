package tile

// Method selects how paint_plane treats a tile it enumerates. Spec
// §4.2: "one of {normal, xor, mark}."
type Method uint8

const (
	// MethodNormal applies table to each enumerated tile's current
	// body and commits the result.
	MethodNormal Method = iota
	// MethodXOR applies table's output unconditionally rather than
	// keying off each tile's old type; see ResultTable.
	MethodXOR
	// MethodMark visits every tile in the area once, stamping it with
	// the plane's current mark epoch so a tile met twice in one call
	// is handled once; no second clearing pass runs and the client
	// word is not touched. No body is changed. Spec §4.2: "required
	// by overlap-sensitive callers such as the DRC."
	MethodMark
)

// ResultTable maps an old type to a new type, encoding paint, erase,
// and write uniformly (spec §4.2). It must be pure and defined over
// every plain type the engine can pass it: the engine calls it once
// per half of a split tile (see ApplyTable), never on the composite
// encoding EncodeDiagonal produces for split bodies.
type ResultTable func(old Type) Type

// Write returns a ResultTable that maps every old type to newType
// unconditionally, independent of what was there before.
func Write(newType Type) ResultTable {
	return func(Type) Type { return newType }
}

// Paint returns a ResultTable implementing additive paint semantics:
// old -> old | addType. Meaningful when Type values are used as
// bitmasks over independent mask layers, as spec §4.2 assumes: "paint
// is {T -> T | new_type}".
func Paint(addType Type) ResultTable {
	return func(old Type) Type { return old | addType }
}

// Erase returns a ResultTable implementing subtractive erase
// semantics: old -> old &^ removeType. Spec §4.2: "erase is {T -> T \
// erased}".
func Erase(removeType Type) ResultTable {
	return func(old Type) Type { return old &^ removeType }
}

// mergeFlags tracks which sides of a tile being painted still need a
// merge attempt against neighbors, per spec §4.2 step 1.
type mergeFlags uint8

const (
	mfTop mergeFlags = 1 << iota
	mfLeft
	mfRight
	mfBottom
)

// PaintPlane paints area on plane according to table and method. Empty
// areas are a silent no-op (spec §6 "empty rect -> no-op"). See spec
// §4.2 for the full per-tile procedure this implements.
//
// This is the area-enumeration-plus-in-line-paint routine this
// package is distilled from, translated tile-field-by-tile-field: the
// non-recursive area enumeration (an outer loop walking down the left
// edge of area, an inner loop walking right along each row via
// corner-stitch pointers alone) plus the in-line per-tile paint
// procedure. Control flow the source expresses with forward gotos out
// of the enumeration body is expressed here with labeled
// continue/break, since Go has no equivalent of jumping into the
// middle of a loop body.
func PaintPlane(ctx *Context, plane *Plane, area Rect, table ResultTable, method Method) {
	if area.Empty() {
		return
	}
	if method == MethodMark {
		paintMark(ctx, plane, area, table)
		return
	}

	tileCur := plane.Locate(Point{X: area.XLo, Y: area.YHi - 1})
	if tileCur.yHi <= area.YLo {
		plane.setHint(tileCur)
		return
	}

Outer:
	for {
		if ctx.cancelled() {
			Logger().Warn("tile: paint interrupted", "area", area)
			plane.setHint(tileCur)
			return
		}

		clipTop := tileCur.yHi
		if clipTop > area.YHi {
			clipTop = area.YHi
		}

		tileCur = processOneTile(ctx, plane, tileCur, area, table, method)

		// Move right if possible.
		tpnew := tileCur.tr
		if tpnew.xLo < area.XHi {
			for tpnew.yLo >= clipTop {
				tpnew = tpnew.lb
			}
			if tpnew.yLo >= tileCur.yLo || tileCur.yLo <= area.YLo {
				tileCur = tpnew
				continue Outer
			}
		}

		// Otherwise return one tile further left, descending a row
		// whenever the left-edge chain runs out.
		for tileCur.xLo > area.XLo {
			if tileCur.yLo <= area.YLo {
				plane.setHint(tileCur)
				return
			}
			below := tileCur.lb
			tileCur = tileCur.bl
			if below.yLo >= tileCur.yLo || tileCur.yLo <= area.YLo {
				tileCur = below
				continue Outer
			}
		}
		for tileCur = tileCur.lb; tileCur.xHi <= area.XLo; tileCur = tileCur.tr {
		}

		if tileCur.yHi <= area.YLo {
			break Outer
		}
	}
	plane.setHint(tileCur)
}

// processOneTile runs the per-tile in-line procedure (spec §4.2 steps
// 1-7) on tile and returns the tile the outer enumeration should
// continue from.
func processOneTile(ctx *Context, plane *Plane, tile *Tile, area Rect, table ResultTable, method Method) *Tile {
	computeNew := func(b Body) Type {
		if method == MethodXOR {
			return table(0)
		}
		return ApplyTable(b, table)
	}

	flags := mfTop | mfLeft
	if tile.xHi >= area.XHi {
		flags |= mfRight
	}
	if tile.yLo <= area.YLo {
		flags |= mfBottom
	}

	oldType := tile.body.Composite()
	newType := computeNew(tile.body)
	if oldType == newType {
		return tile
	}

	// Clip up.
	if tile.yHi > area.YHi {
		if tile.body.IsSplit() {
			tile, _ = plane.splitDiagonalHoriz(ctx, tile, area.YHi)
		} else {
			inside, _ := plane.splitY(tile, area.YHi)
			tile = inside
		}
		flags &^= mfTop
		if tile.xHi <= area.XLo {
			return tile
		}
		oldType = tile.body.Composite()
		newType = computeNew(tile.body)
		if oldType == newType {
			return tile
		}
	}

	// Clip down.
	if tile.yLo < area.YLo {
		if tile.body.IsSplit() {
			_, above := plane.splitDiagonalHoriz(ctx, tile, area.YLo)
			tile = above
		} else {
			_, inside := plane.splitY(tile, area.YLo)
			// splitY(t, y) keeps the bottom piece in place and
			// returns the top piece as new; the bottom piece is
			// clipped away here, so the inside piece is the top
			// half.
			tile = inside
		}
		flags &^= mfBottom
		if tile.xHi <= area.XLo {
			return tile
		}
		oldType = tile.body.Composite()
		newType = computeNew(tile.body)
		if oldType == newType {
			return tile
		}
	}

	// Clip right.
	if tile.xHi > area.XHi {
		var outside *Tile
		if tile.body.IsSplit() {
			tile, outside = plane.splitDiagonalVert(ctx, tile, area.XHi)
		} else {
			inside, right := plane.splitX(tile, area.XHi)
			tile, outside = inside, right
		}
		if n := outside.rt; CanMergeY(outside, n) {
			ctx.recordJoin(Point{X: outside.xLo, Y: outside.yLo}, outside.xLo)
			plane.joinY(outside, n)
		}
		if n := outside.lb; CanMergeY(n, outside) {
			ctx.recordJoin(Point{X: n.xLo, Y: n.yLo}, n.xLo)
			plane.joinY(n, outside)
		}
		flags &^= mfRight
		if tile.yLo >= area.YHi || tile.xHi <= area.XLo {
			return tile
		}
		oldType = tile.body.Composite()
		newType = computeNew(tile.body)
		if oldType == newType {
			return tile
		}
	}

	// Clip left.
	if tile.xLo < area.XLo {
		var outside *Tile
		if tile.body.IsSplit() {
			outside, tile = plane.splitDiagonalVert(ctx, tile, area.XLo)
		} else {
			left, right := plane.splitX(tile, area.XLo)
			outside, tile = left, right
		}
		if n := outside.rt; CanMergeY(outside, n) {
			ctx.recordJoin(Point{X: outside.xLo, Y: outside.yLo}, outside.xLo)
			plane.joinY(outside, n)
		}
		if n := outside.lb; CanMergeY(n, outside) {
			ctx.recordJoin(Point{X: n.xLo, Y: n.yLo}, n.xLo)
			plane.joinY(n, outside)
		}
		flags &^= mfLeft
		if tile.yLo >= area.YHi {
			return tile
		}
		oldType = tile.body.Composite()
		newType = computeNew(tile.body)
		if oldType == newType {
			return tile
		}
	}

	// Collapse degenerate diagonal: table may have mapped a still-
	// split tile's two halves to the same value. Spec §4.2 step 4.
	if left, right, _, _, ok := DecodeDiagonal(newType); ok && left == right {
		newType = left
		flags |= mfLeft
		if tile.xHi >= area.XHi {
			flags |= mfRight
		}
	}

	// Cheap merge pre-scan: spec §4.2 step 5. A single match commits
	// to the slow path immediately, matching the source's control
	// flow exactly (a LEFT-side match never even looks at RIGHT).
	if flags&mfLeft != 0 {
		for tp := tile.bl; tp.yLo < tile.yHi; tp = tp.rt {
			if tp.body.Composite() == newType {
				return plane.slowMerge(ctx, tile, newType, flags)
			}
		}
		flags &^= mfLeft
	}
	if flags&mfRight != 0 {
		for tp := tile.tr; tp.yHi > tile.yLo; tp = tp.lb {
			if tp.body.Composite() == newType {
				return plane.slowMerge(ctx, tile, newType, flags)
			}
		}
		flags &^= mfRight
	}

	// Fast path: commit and cheap top/bottom join. Spec §4.2 step 6.
	if sink := ctx.undo(); sink != nil {
		sink.Paint(PaintEvent{Rect: tile.Rect(), OldType: oldType, NewType: newType})
	}
	tile.body = BodyFromType(newType)

	if flags&mfTop != 0 {
		if n := tile.rt; CanMergeY(tile, n) {
			ctx.recordJoin(Point{X: tile.xLo, Y: tile.yLo}, tile.xLo)
			tile = plane.joinY(tile, n)
		}
	}
	if flags&mfBottom != 0 {
		if n := tile.lb; CanMergeY(n, tile) {
			ctx.recordJoin(Point{X: n.xLo, Y: n.yLo}, n.xLo)
			tile = plane.joinY(n, tile)
		}
	}
	return tile
}

// paintMark implements method=mark: visit every tile overlapping area
// exactly once, running table's side effect on each. Tiles split
// during the enumeration (e.g. because they straddle area's boundary)
// would otherwise be visited twice by the corner-stitch walk; markEpoch
// makes the second visit a no-op without the source's separate
// clear-the-marks pass over an expanded area (spec §4.2, §5).
func paintMark(ctx *Context, plane *Plane, area Rect, table ResultTable) {
	epoch := plane.nextEpoch()
	walkRows(ctx, plane, area, func(t *Tile) {
		if t.markEpoch == epoch {
			return
		}
		t.markEpoch = epoch
		table(t.body.Type())
	})
}

// walkRows is the read-only area enumeration shared by paintMark and
// other callers that only need to visit tiles rather than mutate the
// plane. It is the same corner-stitch walk PaintPlane uses, without
// the in-line paint procedure.
func walkRows(ctx *Context, plane *Plane, area Rect, visit func(*Tile)) {
	if area.Empty() {
		return
	}
	tileCur := plane.Locate(Point{X: area.XLo, Y: area.YHi - 1})
	if tileCur.yHi <= area.YLo {
		return
	}
Outer:
	for {
		if ctx.cancelled() {
			return
		}
		clipTop := tileCur.yHi
		if clipTop > area.YHi {
			clipTop = area.YHi
		}
		visit(tileCur)

		tpnew := tileCur.tr
		if tpnew.xLo < area.XHi {
			for tpnew.yLo >= clipTop {
				tpnew = tpnew.lb
			}
			if tpnew.yLo >= tileCur.yLo || tileCur.yLo <= area.YLo {
				tileCur = tpnew
				continue Outer
			}
		}
		for tileCur.xLo > area.XLo {
			if tileCur.yLo <= area.YLo {
				return
			}
			below := tileCur.lb
			tileCur = tileCur.bl
			if below.yLo >= tileCur.yLo || tileCur.yLo <= area.YLo {
				tileCur = below
				continue Outer
			}
		}
		for tileCur = tileCur.lb; tileCur.xHi <= area.XLo; tileCur = tileCur.tr {
		}
		if tileCur.yHi <= area.YLo {
			return
		}
	}
}
