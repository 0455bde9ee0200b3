package tile

// MergeLeftAcross attempts to fold t into its left (bl) neighbor along
// t's entire left edge, when that neighbor is a plain rectangle with
// the same body as t. Spec §4.2a names this operation for the
// diagonal-clip path, where a formerly-split tile can degenerate into
// a rectangle and suddenly become mergeable with neighbors that were
// never reachable while it was still diagonal.
func (p *Plane) MergeLeftAcross(ctx *Context, t *Tile) *Tile {
	if t.body.IsSplit() {
		return t
	}
	if n := t.bl; CanMergeX(n, t) {
		ctx.recordJoin(Point{X: n.xLo, Y: n.yLo}, t.xLo)
		return p.joinX(n, t)
	}
	return t
}

// MergeRightAcross is the mirror of MergeLeftAcross, folding t into
// its right (tr) neighbor.
func (p *Plane) MergeRightAcross(ctx *Context, t *Tile) *Tile {
	if t.body.IsSplit() {
		return t
	}
	if n := t.tr; CanMergeX(t, n) {
		ctx.recordJoin(Point{X: t.xLo, Y: t.yLo}, n.xLo)
		return p.joinX(t, n)
	}
	return t
}

// mergeRectPieceAway absorbs a rectangle freshly carved out of a
// diagonal tile (settleDiagonalPiece/settleDiagonalPieceVert's
// rectPiece) into whichever of its four neighbors it now matches. Such
// a piece has no significance of its own; it exists only because a cut
// landed exactly on the diagonal's intercept, and invariant 4 (maximal
// strips) requires it be folded back in wherever possible.
func (p *Plane) mergeRectPieceAway(ctx *Context, piece *Tile) *Tile {
	if piece.body.IsSplit() {
		return piece
	}
	if n := piece.bl; CanMergeX(n, piece) {
		ctx.recordJoin(Point{X: n.xLo, Y: n.yLo}, piece.xLo)
		piece = p.joinX(n, piece)
	}
	if n := piece.tr; CanMergeX(piece, n) {
		ctx.recordJoin(Point{X: piece.xLo, Y: piece.yLo}, n.xLo)
		piece = p.joinX(piece, n)
	}
	if n := piece.lb; CanMergeY(n, piece) {
		ctx.recordJoin(Point{X: n.xLo, Y: n.yLo}, n.xLo)
		piece = p.joinY(n, piece)
	}
	if n := piece.rt; CanMergeY(piece, n) {
		ctx.recordJoin(Point{X: piece.xLo, Y: piece.yLo}, piece.xLo)
		piece = p.joinY(piece, n)
	}
	return piece
}

// slowMerge installs newType on tile and merges it with same-type
// neighbors on every side that mergeFlags still marks as a candidate.
// Called once the cheap pre-scan (spec §4.2 step 5) has found at least
// one genuine match on the left or right side, meaning tile may need
// to absorb a same-type run of neighbors rather than simply take on
// the new type in place.
//
// This is the merge routine this package's paint procedure is
// distilled from, translated directly: find how far up tile's left
// and right neighbor chains the matching run extends (ysplit), split
// tile there if the run doesn't already cover it, commit the new type,
// then join left, right, top, and bottom in that order.
func (p *Plane) slowMerge(ctx *Context, tile *Tile, newType Type, flags mergeFlags) *Tile {
	Logger().Debug("tile: slow merge", "rect", tile.Rect(), "newType", newType, "flags", flags)
	ysplit := tile.yLo

	if flags&mfLeft != 0 {
		var lastMatch *Tile
		for tp := tile.bl; tp.yLo < tile.yHi; tp = tp.rt {
			if tp.body.Composite() == newType {
				lastMatch = tp
			}
		}
		switch {
		case lastMatch == nil:
			flags &^= mfLeft
		case lastMatch.yHi < tile.yHi:
			flags &^= mfLeft
			if lastMatch.yHi > ysplit {
				ysplit = lastMatch.yHi
			}
		default:
			if lastMatch.yLo > ysplit {
				ysplit = lastMatch.yLo
			}
		}
	}

	if flags&mfRight != 0 {
		tp := tile.tr
		if tp.body.Composite() == newType {
			if tp.yLo > ysplit {
				ysplit = tp.yLo
			}
		} else {
			for tp.body.Composite() != newType && tp.yHi > ysplit {
				tp = tp.lb
			}
			if tp.yHi > ysplit {
				ysplit = tp.yHi
			}
			flags &^= mfRight
		}
	}

	if ysplit > tile.yLo {
		flags &^= mfBottom
		_, top := p.splitY(tile, ysplit)
		tile = top
	}

	if sink := ctx.undo(); sink != nil {
		if old := tile.body.Composite(); old != newType {
			sink.Paint(PaintEvent{Rect: tile.Rect(), OldType: old, NewType: newType})
		}
	}
	tile.body = BodyFromType(newType)

	if flags&mfLeft != 0 {
		left := tile.bl
		if left.yHi > tile.yHi {
			// Keep only the part of left aligned with tile; splitY
			// shrinks left in place and returns the excess above as a
			// new tile we have no further use for.
			p.splitY(left, tile.yHi)
		}
		if left.yLo < tile.yLo {
			_, left = p.splitY(left, tile.yLo)
		}
		ctx.recordJoin(Point{X: left.xLo, Y: left.yLo}, tile.xLo)
		tile = p.joinX(left, tile)
	}

	if flags&mfRight != 0 {
		right := tile.tr
		if right.yHi > tile.yHi {
			p.splitY(right, tile.yHi)
		}
		if right.yLo < tile.yLo {
			_, right = p.splitY(right, tile.yLo)
		}
		ctx.recordJoin(Point{X: tile.xLo, Y: tile.yLo}, right.xLo)
		tile = p.joinX(tile, right)
	}

	if n := tile.rt; CanMergeY(tile, n) {
		ctx.recordJoin(Point{X: tile.xLo, Y: tile.yLo}, tile.xLo)
		tile = p.joinY(tile, n)
	}
	if n := tile.lb; CanMergeY(n, tile) {
		ctx.recordJoin(Point{X: n.xLo, Y: n.yLo}, n.xLo)
		tile = p.joinY(n, tile)
	}

	return tile
}
