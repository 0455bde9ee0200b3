package tile

import "github.com/RTimothyEdwards/magic-sub012/internal/pool"

// defaultSentinelMargin is how far the TypeOutside sentinel extends
// beyond a plane's bounded region by default (spec §3 Plane: "Sentinel
// tiles around the perimeter carrying a type 'outside' such that
// neighbor-walks terminate").
const defaultSentinelMargin int32 = 1_000_000

// Plane is a collection of tiles completely tiling a bounded rectangular
// region, surrounded by a TypeOutside sentinel so that corner-stitch
// neighbor walks always terminate. See spec §3 "Plane".
type Plane struct {
	mode   Mode
	bounds Rect // the region callers think of as "the plane"
	extent Rect // bounds grown by the sentinel margin; the actual tiled area

	hint *Tile // starting guess for point location, updated by every search

	epoch uint64 // current paint-call epoch, for the mark/visited scratch
	pool  *pool.Pool[Tile]
}

// NewPlane creates a plane whose bounded region is bounds, initially
// filled entirely with fillType. bounds must be non-empty.
func NewPlane(bounds Rect, fillType Type, opts ...PlaneOption) (*Plane, error) {
	if bounds.Empty() {
		return nil, ErrInvalidBounds
	}
	o := defaultPlaneOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Plane{
		mode:   o.mode,
		bounds: bounds,
		extent: bounds.Grow(o.sentinelExtra),
	}
	p.pool = pool.New(func() *Tile { return &Tile{} }, func(t *Tile) { t.reset() })
	for i := 0; i < o.initialPool; i++ {
		p.pool.Put(&Tile{})
	}

	p.bootstrap(fillType)

	return p, nil
}

// bootstrap builds the initial five-tile plane directly, rather than
// starting from one self-stitched sentinel tile and painting the
// bounded region over it: a single tile cannot stitch to itself on
// every side and still give splitX/splitY correct neighbor chains to
// walk, since those chains rely on distinguishing "this edge is
// shared with one neighbor" from "this edge borders the tile itself".
// Five tiles, wired up by hand, avoids that degenerate case entirely:
// one center tile holding fillType over exactly bounds, and four
// border strips of TypeOutside tiling the rest of extent. Ordinary
// paint calls only ever touch the center tile and its descendants,
// never the true self-referencing outward edges of the four borders,
// as long as painting stays within extent — true in practice given the
// default sentinel margin.
func (p *Plane) bootstrap(fillType Type) {
	e, b := p.extent, p.bounds

	bottom := p.allocTile()
	bottom.xLo, bottom.yLo, bottom.xHi, bottom.yHi = e.XLo, e.YLo, e.XHi, b.YLo
	bottom.body = RectBody(TypeOutside)

	top := p.allocTile()
	top.xLo, top.yLo, top.xHi, top.yHi = e.XLo, b.YHi, e.XHi, e.YHi
	top.body = RectBody(TypeOutside)

	left := p.allocTile()
	left.xLo, left.yLo, left.xHi, left.yHi = e.XLo, b.YLo, b.XLo, b.YHi
	left.body = RectBody(TypeOutside)

	right := p.allocTile()
	right.xLo, right.yLo, right.xHi, right.yHi = b.XHi, b.YLo, e.XHi, b.YHi
	right.body = RectBody(TypeOutside)

	center := p.allocTile()
	center.xLo, center.yLo, center.xHi, center.yHi = b.XLo, b.YLo, b.XHi, b.YHi
	center.body = RectBody(fillType)

	bottom.tr, bottom.bl, bottom.rt, bottom.lb = bottom, bottom, right, bottom
	top.tr, top.bl, top.rt, top.lb = top, top, top, left
	left.tr, left.bl, left.rt, left.lb = center, left, top, bottom
	right.tr, right.bl, right.rt, right.lb = right, center, top, bottom
	center.tr, center.bl, center.rt, center.lb = right, left, top, bottom

	p.hint = center
}

// Mode returns the strip invariant this plane maintains.
func (p *Plane) Mode() Mode { return p.mode }

// Bounds returns the plane's logical bounded region (not including the
// surrounding TypeOutside sentinel).
func (p *Plane) Bounds() Rect { return p.bounds }

// Hint returns the plane's current point-location hint tile.
func (p *Plane) Hint() *Tile { return p.hint }

func (p *Plane) setHint(t *Tile) { p.hint = t }

// nextEpoch advances and returns the plane's paint-call epoch, used by
// the PAINT_MARK method to avoid revisiting a tile within one call
// without a second "clear the marks" pass for any other method.
func (p *Plane) nextEpoch() uint64 {
	p.epoch++
	return p.epoch
}

func (p *Plane) allocTile() *Tile {
	return p.pool.Get()
}

func (p *Plane) freeTile(t *Tile) {
	p.pool.Put(t)
}
