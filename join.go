package tile

// CanMergeY reports whether a and b, assumed vertically stacked with a
// below b, can be joined into one tile. Spec §4.1 "can_merge_y(a, b):
// x_lo(a)==x_lo(b) && x_hi(a)==x_hi(b) && body(a)==body(b) &&
// !is_split(a)." Equal body already implies matching split status, so
// checking a alone is sufficient.
func CanMergeY(a, b *Tile) bool {
	return a.xLo == b.xLo && a.xHi == b.xHi && a.body.Equal(b.body) && !a.body.IsSplit()
}

// CanMergeX reports whether a and b, assumed side by side with a to the
// left of b, can be joined into one tile. Symmetric to CanMergeY.
func CanMergeX(a, b *Tile) bool {
	return a.yLo == b.yLo && a.yHi == b.yHi && a.body.Equal(b.body) && !a.body.IsSplit()
}

// joinX merges left and right, side by side tiles sharing a full
// height edge, into a single tile. Callers must have already verified
// CanMergeX(left, right). The merged tile is left, mutated in place;
// right is returned to the plane's pool.
//
// This is the inverse of splitX: every chain splitX partitioned by x is
// walked back together, and the one chain it transferred wholesale is
// walked back the same way.
func (p *Plane) joinX(left, right *Tile) *Tile {
	// Top edge: was partitioned between left and right; reabsorb
	// right's portion.
	for xp := right.rt; xp.lb == right; xp = xp.bl {
		xp.lb = left
	}
	left.rt = right.rt

	// Bottom edge: same partition, reabsorbed the same way.
	for xp := right.lb; xp.rt == right; xp = xp.tr {
		xp.rt = left
	}

	// Right edge: was transferred wholesale to right; give it back.
	for xp := right.tr; xp.bl == right; xp = xp.lb {
		xp.bl = left
	}
	left.tr = right.tr

	left.xHi = right.xHi
	p.freeTile(right)
	return left
}

// joinY merges bot and top, vertically stacked tiles sharing a full
// width edge, into a single tile. Callers must have already verified
// CanMergeY(bot, top). The merged tile is bot, mutated in place; top is
// returned to the plane's pool.
func (p *Plane) joinY(bot, top *Tile) *Tile {
	// Right edge: was partitioned between bot and top; reabsorb top's
	// portion.
	for xp := top.tr; xp.bl == top; xp = xp.lb {
		xp.bl = bot
	}
	bot.tr = top.tr

	// Left edge: same partition, reabsorbed the same way.
	for xp := top.bl; xp.tr == top; xp = xp.rt {
		xp.tr = bot
	}

	// Top edge: was transferred wholesale to top; give it back.
	for xp := top.rt; xp.lb == top; xp = xp.bl {
		xp.lb = bot
	}
	bot.rt = top.rt

	bot.yHi = top.yHi
	p.freeTile(top)
	return bot
}
