package tile

// Context threads the per-call state every core operation needs:
// cancellation and an optional undo sink. Design Notes reject the
// source's global mutable state ("dbUndoLastCell", the interrupt
// signal) in favor of exactly this: "Hoist into an explicit context
// struct threaded through every core operation. The tests rely on
// being able to construct a fresh context per scenario."
//
// A Context is cheap to construct and holds no plane-specific state, so
// callers are free to build a fresh one per call, per goroutine-free
// operation sequence, or per test.
type Context struct {
	Interrupt *Interrupt
	Undo      UndoSink
}

// NewContext creates a Context with a fresh Interrupt and no undo sink.
// Use NewContextWithUndo to also record undo events.
func NewContext() *Context {
	return &Context{Interrupt: NewInterrupt()}
}

// NewContextWithUndo creates a Context that appends undo events to sink.
func NewContextWithUndo(sink UndoSink) *Context {
	return &Context{Interrupt: NewInterrupt(), Undo: sink}
}

// cancelled reports whether the context's interrupt flag is set. A nil
// Context never cancels, so internal helpers that accept *Context from
// user code need not nil-check before calling this.
func (c *Context) cancelled() bool {
	return c != nil && c.Interrupt != nil && c.Interrupt.Pending()
}

func (c *Context) undo() UndoSink {
	if c == nil {
		return nil
	}
	return c.Undo
}

// recordJoin appends a join undo record anchored at corner, if ctx
// carries a sink. Spec §3: "Diagonal splits/joins emit {point, split_x,
// plane_id} pairs" — the same record shape covers an ordinary
// rectangular join, since both represent one structural tile
// consolidation the undo log must be able to replay as a split.
//
// splitX is the x coordinate of the vertical boundary the join
// re-absorbs: for a left/right (joinX) merge that is the exact
// interior point SplitTileAtPoint needs to peel the two pieces back
// apart (search.go:107-111). A top/bottom (joinY) merge has no
// vertical boundary of its own — both tiles already share the same
// x-range — so callers pass that shared xLo instead; it anchors the
// record in real tile geometry rather than a placeholder, but
// SplitTileAtPoint's own guard (splitX must be strictly interior)
// correctly treats it as a no-op, since replaying a stacked merge
// would require a horizontal split, which this engine's undo replay
// does not implement.
func (c *Context) recordJoin(corner Point, splitX int32) {
	if sink := c.undo(); sink != nil {
		sink.Join(SplitEvent{Point: corner, SplitX: splitX, Joined: true})
	}
}

// recordPerturbation appends a split undo record noting that rounding a
// diagonal intercept to the nearest integer moved point by up to one
// unit, if ctx carries a sink. Spec §4.2a/§9: "the engine rounds to the
// nearest integer and records a one-unit geometry perturbation on the
// undo log so the renderer can repaint the affected area"; §7 edge case
// 3 calls for the same record when a perturbed intercept still falls
// outside the sub-area's span and the engine falls back to rectangular
// paint.
func (c *Context) recordPerturbation(point Point, splitX int32) {
	if sink := c.undo(); sink != nil {
		sink.Split(SplitEvent{Point: point, SplitX: splitX})
	}
}
