package tile

// DiagDescriptor names one triangle within an area passed to
// PaintDiagonal: a direction (which way the diagonal runs) and a side
// (which half of it is painted). Spec §4.3: "diag_descriptor names one
// triangle within area (direction slash/backslash, side left/right of
// the diagonal)."
//
// Side follows Body's left/right convention: SideLeft is the half on
// the smaller-x side of the diagonal at any given height, SideRight
// the larger-x side.
type DiagDescriptor struct {
	Dir  Direction
	Side Side
}

// PaintDiagonal paints the triangle diag describes within area,
// applying table only to that triangle; the rest of area is left
// untouched. See spec §4.3.
//
// This package's rectangular engine (PaintPlane) already does the hard
// part of clipping and merging Manhattan regions, so this operation is
// built on top of it rather than duplicating that machinery: fracture
// ensures no existing tile straddles area's boundary, then every tile
// area now tiles exactly is classified against the one global diagonal
// line and handled by whichever of three paths applies — left alone,
// handed to PaintPlane directly, or split down (by the same
// intercept-and-settle technique diagonal.go already provides for
// clipping) until each remaining straddling piece is an exact diagonal
// band that can be committed directly.
func PaintDiagonal(ctx *Context, plane *Plane, diag DiagDescriptor, area Rect, table ResultTable, method Method) {
	if area.Empty() || ctx.cancelled() {
		return
	}
	if method == MethodMark {
		paintMark(ctx, plane, area, table)
		return
	}

	plane.fractureToArea(ctx, area)

	var rects []Rect
	walkRows(ctx, plane, area, func(t *Tile) {
		rects = append(rects, t.Rect())
	})

	for _, r := range rects {
		if ctx.cancelled() {
			return
		}
		t := plane.Locate(Point{X: r.XLo, Y: r.YLo})
		plane.applyDiagonalToTile(ctx, area, diag.Dir, diag.Side, table, method, t)
	}
}

// fractureToArea splits any tile overlapping area that crosses one of
// area's four edges, so every tile touching area afterward lies
// entirely within it. Geometry only — no body changes — which makes it
// safe to run unconditionally rather than only for tiles result_table
// would actually change (spec §4.3 step 1's "non-interacting split
// tiles are left alone" refinement): splitting a tile without changing
// its type costs nothing beyond an extra tile that a later merge pass
// can always re-absorb.
func (p *Plane) fractureToArea(ctx *Context, area Rect) {
	for x := area.XLo; x < area.XHi; {
		t := p.Locate(Point{X: x, Y: area.YHi - 1})
		if t.yHi > area.YHi {
			if t.body.IsSplit() {
				p.splitDiagonalHoriz(ctx, t, area.YHi)
			} else {
				p.splitY(t, area.YHi)
			}
			t = p.Locate(Point{X: x, Y: area.YHi - 1})
		}
		x = t.xHi
	}
	for x := area.XLo; x < area.XHi; {
		t := p.Locate(Point{X: x, Y: area.YLo})
		if t.yLo < area.YLo {
			if t.body.IsSplit() {
				p.splitDiagonalHoriz(ctx, t, area.YLo)
			} else {
				p.splitY(t, area.YLo)
			}
			t = p.Locate(Point{X: x, Y: area.YLo})
		}
		x = t.xHi
	}
	for y := area.YLo; y < area.YHi; {
		t := p.Locate(Point{X: area.XHi - 1, Y: y})
		if t.xHi > area.XHi {
			if t.body.IsSplit() {
				p.splitDiagonalVert(ctx, t, area.XHi)
			} else {
				p.splitX(t, area.XHi)
			}
			t = p.Locate(Point{X: area.XHi - 1, Y: y})
		}
		y = t.yHi
	}
	for y := area.YLo; y < area.YHi; {
		t := p.Locate(Point{X: area.XLo, Y: y})
		if t.xLo < area.XLo {
			if t.body.IsSplit() {
				p.splitDiagonalVert(ctx, t, area.XLo)
			} else {
				p.splitX(t, area.XLo)
			}
			t = p.Locate(Point{X: area.XLo, Y: y})
		}
		y = t.yHi
	}
}

// applyDiagonalToTile is the case analysis of spec §4.3 step 3, run
// against one existing tile instead of an abstract sub-area: classify
// tile against the diagonal line areaBox/dir describes, and either
// leave it alone, hand it to the rectangular engine, or split it down
// until it does.
func (p *Plane) applyDiagonalToTile(ctx *Context, areaBox Rect, dir Direction, side Side, table ResultTable, method Method, tile *Tile) {
	xAtY0 := diagonalInterceptAtY(ctx, areaBox.XLo, areaBox.YLo, areaBox.XHi, areaBox.YHi, dir, tile.yLo)
	xAtY1 := diagonalInterceptAtY(ctx, areaBox.XLo, areaBox.YLo, areaBox.XHi, areaBox.YHi, dir, tile.yHi)
	loI, hiI := xAtY0, xAtY1
	if loI > hiI {
		loI, hiI = hiI, loI
	}

	var fullyPainted, fullyUnpainted bool
	if side == SideLeft {
		fullyPainted = tile.xHi <= loI
		fullyUnpainted = tile.xLo >= hiI
	} else {
		fullyPainted = tile.xLo >= hiI
		fullyUnpainted = tile.xHi <= loI
	}

	switch {
	case fullyUnpainted:
		return
	case fullyPainted:
		PaintPlane(ctx, p, tile.Rect(), table, method)
		return
	}

	// Spec §4.3 step 4's width/height-1 fallback: a degenerate sliver
	// can't usefully be split further, so paint it flat and accept the
	// one-unit precision loss rather than recurse forever chasing
	// rounding noise.
	if tile.width() <= 1 || tile.height() <= 1 {
		PaintPlane(ctx, p, tile.Rect(), table, method)
		return
	}

	yAtX0 := diagonalInterceptAtX(ctx, areaBox.XLo, areaBox.YLo, areaBox.XHi, areaBox.YHi, dir, tile.xLo)
	yAtX1 := diagonalInterceptAtX(ctx, areaBox.XLo, areaBox.YLo, areaBox.XHi, areaBox.YHi, dir, tile.xHi)
	yLow, yHigh := yAtX0, yAtX1
	if yLow > yHigh {
		yLow, yHigh = yHigh, yLow
	}
	if yLow < tile.yLo {
		yLow = tile.yLo
	}
	if yHigh > tile.yHi {
		yHigh = tile.yHi
	}
	if yHigh <= yLow {
		// Rounding drove the crossing band to nothing: the perturbed
		// intercept fell outside tile's span entirely. Spec §7 edge
		// case 3: fall back to rectangular paint of the sub-area and
		// record the geometry perturbation.
		ctx.recordPerturbation(Point{X: tile.xLo, Y: yLow}, tile.xLo)
		PaintPlane(ctx, p, tile.Rect(), table, method)
		return
	}

	if yLow > tile.yLo {
		bot, top := p.splitY(tile, yLow)
		p.applyDiagonalToTile(ctx, areaBox, dir, side, table, method, bot)
		tile = top
	}
	if yHigh < tile.yHi {
		bot, top := p.splitY(tile, yHigh)
		p.applyDiagonalToTile(ctx, areaBox, dir, side, table, method, top)
		tile = bot
	}

	p.commitDiagonalBand(ctx, areaBox, tile, dir, side, table, method)
}

// commitDiagonalBand handles a tile known to span exactly the band
// where the diagonal crosses its full width: build the new split body
// directly, applying table to whichever half side names and leaving
// the other as it was, then commit.
//
// A tile can arrive here already diagonal in a *different* direction
// than dir — two crossing diagonals painted over the same area, spec
// §4.3 step 4's "quartering fallback" — in which case no single split
// body can represent the result and quarterDiagonalTile takes over
// instead of committing directly.
func (p *Plane) commitDiagonalBand(ctx *Context, areaBox Rect, tile *Tile, dir Direction, side Side, table ResultTable, method Method) {
	if tile.body.IsSplit() && tile.body.Direction() != dir {
		p.quarterDiagonalTile(ctx, areaBox, tile, dir, side, table, method)
		return
	}

	oldComposite := tile.body.Composite()
	newLeft, newRight := tile.body.Left(), tile.body.Right()
	if side == SideLeft {
		newLeft = applyMethodTable(method, table, newLeft)
	} else {
		newRight = applyMethodTable(method, table, newRight)
	}

	var newBody Body
	if newLeft == newRight {
		newBody = RectBody(newLeft)
	} else {
		newBody = SplitBody(newLeft, newRight, dir, SideLeft)
	}
	newComposite := newBody.Composite()
	if newComposite == oldComposite {
		return
	}

	if sink := ctx.undo(); sink != nil {
		sink.Paint(PaintEvent{Rect: tile.Rect(), OldType: oldComposite, NewType: newComposite})
	}
	tile.body = newBody
	if !newBody.IsSplit() {
		p.mergeRectPieceAway(ctx, tile)
	}
}

// quarterDiagonalTile implements spec §4.3 step 4's fallback for a
// tile whose existing diagonal crosses dir's: subdivide tile at its
// own box's midpoint in both axes, producing (in the general case)
// four quadrant tiles, each either a plain rectangle or a smaller
// diagonal of tile's original direction, then reclassify every
// resulting quadrant against the new diagonal line by recursing back
// through applyDiagonalToTile. A sub-area too thin to quarter is
// painted flat instead, per the same rule applyDiagonalToTile already
// applies before ever reaching here.
//
// splitDiagonalHoriz alone does the full four-way split: cutting at
// the vertical midpoint first internally cuts each half again at the
// diagonal's own intercept (which lands at the horizontal midpoint
// too, since the diagonal spans tile's box corner to corner), leaving
// the rectangle halves already committed and merged by the time it
// returns. What's left is locating all four pieces and handing each to
// the ordinary single-diagonal path.
func (p *Plane) quarterDiagonalTile(ctx *Context, areaBox Rect, tile *Tile, dir Direction, side Side, table ResultTable, method Method) {
	if tile.width() <= 1 || tile.height() <= 1 {
		PaintPlane(ctx, p, tile.Rect(), table, method)
		return
	}

	xLo, yLo, xHi, yHi := tile.xLo, tile.yLo, tile.xHi, tile.yHi
	midY := yLo + (yHi-yLo)/2

	p.splitDiagonalHoriz(ctx, tile, midY)

	corners := [4]Point{
		{X: xLo, Y: yLo},
		{X: xHi - 1, Y: yLo},
		{X: xLo, Y: yHi - 1},
		{X: xHi - 1, Y: yHi - 1},
	}
	var quadrants []*Tile
	for _, c := range corners {
		q := p.Locate(c)
		fresh := true
		for _, seen := range quadrants {
			if seen == q {
				fresh = false
				break
			}
		}
		if fresh {
			quadrants = append(quadrants, q)
		}
	}

	for _, q := range quadrants {
		if ctx.cancelled() {
			return
		}
		p.applyDiagonalToTile(ctx, areaBox, dir, side, table, method, q)
	}
}

// applyMethodTable applies table the way method says to: keyed off old
// for normal paint/erase, or unconditionally for XOR. Shared with the
// rectangular engine's identical MethodXOR handling in paint.go.
func applyMethodTable(method Method, table ResultTable, old Type) Type {
	if method == MethodXOR {
		return table(0)
	}
	return table(old)
}
