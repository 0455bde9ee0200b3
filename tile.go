package tile

// Tile is one maximal rectangle of uniform content in a Plane, corner-
// stitched to its neighbors. See spec §3 "Tile" and the GLOSSARY entry
// for corner-stitching.
//
// The four neighbor pointers are named for the corner they are anchored
// at, exactly as in the source this was distilled from:
//
//	tr (top-right):    neighbor bordering the right edge, at its top
//	bl (bottom-left):  neighbor bordering the left edge, at its bottom
//	rt (right-top):    neighbor bordering the top edge, at its right
//	lb (left-bottom):  neighbor bordering the bottom edge, at its left
type Tile struct {
	xLo, yLo, xHi, yHi int32
	body               Body

	tr, bl, rt, lb *Tile

	// markEpoch replaces the source's ti_client visited bitmap (Design
	// Notes option (c)): a tile was visited by the current paint call
	// iff markEpoch equals the plane's current call epoch.
	markEpoch uint64

	// client is an algorithm-owned scratch slot, e.g. the channel
	// package's weak back-reference from a channel-map tile to its
	// Channel (spec §3 "Channel-map tile").
	client any
}

// XLo, YLo, XHi, YHi return t's bounding rectangle.
func (t *Tile) XLo() int32 { return t.xLo }
func (t *Tile) YLo() int32 { return t.yLo }
func (t *Tile) XHi() int32 { return t.xHi }
func (t *Tile) YHi() int32 { return t.yHi }

// Rect returns t's bounding rectangle.
func (t *Tile) Rect() Rect {
	return Rect{XLo: t.xLo, YLo: t.yLo, XHi: t.xHi, YHi: t.yHi}
}

// Body returns t's content.
func (t *Tile) Body() Body { return t.body }

// IsSplit reports whether t is a non-Manhattan split tile.
func (t *Tile) IsSplit() bool { return t.body.IsSplit() }

// Type returns t's plain type. Meaningless if t is split; see Body().
func (t *Tile) Type() Type { return t.body.Type() }

// Client returns the algorithm-owned scratch value attached to t.
func (t *Tile) Client() any { return t.client }

// SetClient attaches an algorithm-owned scratch value to t.
func (t *Tile) SetClient(v any) { t.client = v }

// TR, BL, RT, LB return t's corner-stitched neighbors.
func (t *Tile) TR() *Tile { return t.tr }
func (t *Tile) BL() *Tile { return t.bl }
func (t *Tile) RT() *Tile { return t.rt }
func (t *Tile) LB() *Tile { return t.lb }

func (t *Tile) width() int32  { return t.xHi - t.xLo }
func (t *Tile) height() int32 { return t.yHi - t.yLo }

func (t *Tile) reset() {
	*t = Tile{}
}
