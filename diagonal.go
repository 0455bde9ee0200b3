package tile

import "golang.org/x/image/math/fixed"

// diagonalInterceptAtY returns the x coordinate where the diagonal of a
// split tile spanning (xLo,yLo)-(xHi,yHi) with direction dir crosses
// the horizontal line y, rounded to the nearest integer. Spec §4.2a:
// "the engine rounds to the nearest integer and records a one-unit
// geometry perturbation on the undo log." The fractional remainder is
// carried through fixed.Int26_6 so the rounding matches the "half-
// denominator trick" spec §4.3 calls for (round half away from zero)
// without risking overflow on the full numerator for large tiles.
func diagonalInterceptAtY(ctx *Context, xLo, yLo, xHi, yHi int32, dir Direction, y int32) int32 {
	height := int64(yHi - yLo)
	if height <= 0 {
		return xLo
	}
	width := int64(xHi - xLo)
	var offset int64
	if dir == DirSlash {
		offset = int64(y - yLo)
	} else {
		offset = int64(yHi - y)
	}
	whole := offset * width / height
	rem := offset*width - whole*height
	frac := fixed.Int26_6((rem << 6) / height)
	x := xLo + int32(whole) + int32(frac.Round())
	if rem != 0 {
		ctx.recordPerturbation(Point{X: x, Y: y}, x)
	}
	return x
}

// diagonalInterceptAtX is the symmetric computation for a vertical cut:
// the y coordinate where the diagonal crosses the line x.
func diagonalInterceptAtX(ctx *Context, xLo, yLo, xHi, yHi int32, dir Direction, x int32) int32 {
	width := int64(xHi - xLo)
	if width <= 0 {
		return yLo
	}
	height := int64(yHi - yLo)
	offset := int64(x - xLo)
	whole := offset * height / width
	rem := offset*height - whole*width
	frac := fixed.Int26_6((rem << 6) / width)
	var y int32
	if dir == DirSlash {
		y = yLo + int32(whole) + int32(frac.Round())
	} else {
		y = yHi - int32(whole) - int32(frac.Round())
	}
	if rem != 0 {
		ctx.recordPerturbation(Point{X: x, Y: y}, x)
	}
	return y
}

// splitDiagonalHoriz cuts a split tile t at height y: the generic
// vertical split (splitY) separates "below the cut" from "above the
// cut", and each of those two pieces is then cut in x at the
// diagonal's intercept, isolating a plain rectangle beside the part
// that still carries the diagonal, so up to four tiles result. Each
// rectangle sub-piece is merged away immediately where it can be
// (mergeRectPieceAway); the sub-piece of each half that still carries
// the diagonal is what's returned for below/above respectively (the
// whole half, when the intercept falls on or past one of its edges).
func (p *Plane) splitDiagonalHoriz(ctx *Context, t *Tile, y int32) (below, above *Tile) {
	left, right, dir, side := t.body.Left(), t.body.Right(), t.body.Direction(), t.body.SideFlag()
	xi := diagonalInterceptAtY(ctx, t.xLo, t.yLo, t.xHi, t.yHi, dir, y)
	if xi < t.xLo {
		xi = t.xLo
	} else if xi > t.xHi {
		xi = t.xHi
	}

	below, above = p.splitY(t, y)

	if dir == DirSlash {
		below = p.settleDiagonalPiece(ctx, below, xi, false, left, right, dir, side)
		above = p.settleDiagonalPiece(ctx, above, xi, true, left, right, dir, side)
	} else {
		below = p.settleDiagonalPiece(ctx, below, xi, true, left, right, dir, side)
		above = p.settleDiagonalPiece(ctx, above, xi, false, left, right, dir, side)
	}
	return below, above
}

// splitDiagonalVert is the x-axis symmetric counterpart, used when
// clipping a split tile's left or right side.
func (p *Plane) splitDiagonalVert(ctx *Context, t *Tile, x int32) (left, right *Tile) {
	lt, rt, dir, side := t.body.Left(), t.body.Right(), t.body.Direction(), t.body.SideFlag()
	yi := diagonalInterceptAtX(ctx, t.xLo, t.yLo, t.xHi, t.yHi, dir, x)
	if yi < t.yLo {
		yi = t.yLo
	} else if yi > t.yHi {
		yi = t.yHi
	}

	left, right = p.splitX(t, x)

	// A slash's y-intercept rises with x, so the left piece keeps the
	// part of the diagonal nearer yLo (its upper part is a plain
	// rectangle) and the right piece keeps the part nearer yHi (its
	// lower part is a plain rectangle); a backslash's falls with x, so
	// the roles are reversed.
	if dir == DirSlash {
		left = p.settleDiagonalPieceVert(ctx, left, yi, false, lt, rt, dir, side)
		right = p.settleDiagonalPieceVert(ctx, right, yi, true, lt, rt, dir, side)
	} else {
		left = p.settleDiagonalPieceVert(ctx, left, yi, true, lt, rt, dir, side)
		right = p.settleDiagonalPieceVert(ctx, right, yi, false, lt, rt, dir, side)
	}
	return left, right
}

// settleDiagonalPiece repairs one y-band piece produced by
// splitDiagonalHoriz into its final body: either a smaller diagonal of
// the same direction, or — once xi falls at or past piece's edge, or
// after a secondary x split isolates it — a plain rectangle.
// rectIsLeftPart selects whether the rectangle (when one is produced)
// is the [xLo,xi) side or the [xi,xHi) side.
func (p *Plane) settleDiagonalPiece(ctx *Context, piece *Tile, xi int32, rectIsLeftPart bool, left, right Type, dir Direction, side Side) *Tile {
	rectType := right
	if rectIsLeftPart {
		rectType = left
	}

	if xi <= piece.xLo {
		if rectIsLeftPart {
			piece.body = SplitBody(left, right, dir, side)
		} else {
			piece.body = RectBody(rectType)
		}
		return piece
	}
	if xi >= piece.xHi {
		if rectIsLeftPart {
			piece.body = RectBody(rectType)
		} else {
			piece.body = SplitBody(left, right, dir, side)
		}
		return piece
	}

	var diagPiece, rectPiece *Tile
	if rectIsLeftPart {
		rectPiece, diagPiece = p.splitX(piece, xi)
	} else {
		diagPiece, rectPiece = p.splitX(piece, xi)
	}
	diagPiece.body = SplitBody(left, right, dir, side)
	rectPiece.body = RectBody(rectType)
	p.mergeRectPieceAway(ctx, rectPiece)
	return diagPiece
}

// settleDiagonalPieceVert is the x-axis symmetric counterpart for
// splitDiagonalVert, cutting in y instead of x.
func (p *Plane) settleDiagonalPieceVert(ctx *Context, piece *Tile, yi int32, rectIsBottomPart bool, left, right Type, dir Direction, side Side) *Tile {
	// The rectangle lies on the left type's side of the diagonal when it
	// is below a backslash or above a slash.
	rectType := right
	if rectIsBottomPart == (dir == DirBackslash) {
		rectType = left
	}

	if yi <= piece.yLo {
		if rectIsBottomPart {
			piece.body = SplitBody(left, right, dir, side)
		} else {
			piece.body = RectBody(rectType)
		}
		return piece
	}
	if yi >= piece.yHi {
		if rectIsBottomPart {
			piece.body = RectBody(rectType)
		} else {
			piece.body = SplitBody(left, right, dir, side)
		}
		return piece
	}

	var diagPiece, rectPiece *Tile
	if rectIsBottomPart {
		rectPiece, diagPiece = p.splitY(piece, yi)
	} else {
		diagPiece, rectPiece = p.splitY(piece, yi)
	}
	diagPiece.body = SplitBody(left, right, dir, side)
	rectPiece.body = RectBody(rectType)
	p.mergeRectPieceAway(ctx, rectPiece)
	return diagPiece
}
