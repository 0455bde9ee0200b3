package channel

import (
	"errors"
	"fmt"

	tile "github.com/RTimothyEdwards/magic-sub012"
)

// ErrDegenerateChannel is recorded (not returned) when a channel has
// zero width or height; spec §7 kind 6: "emit a feedback record and
// keep the channel out of the routable set; do not abort the build."
var ErrDegenerateChannel = errors.New("channel: degenerate channel (zero length or width)")

// ChannelMap is the tile-plane classification of a set of channels,
// built by Build per spec §4.5.
type ChannelMap struct {
	Plane    *tile.Plane
	Channels []*Channel
	Feedback []FeedbackRecord
}

// Build constructs a ChannelMap over bounds from channels, running the
// six steps of spec §4.5 in order. Degenerate channels are skipped (a
// FeedbackRecord is appended, the build continues) rather than
// aborting.
func Build(ctx *tile.Context, bounds tile.Rect, channels []*Channel, opts ...tile.PlaneOption) (*ChannelMap, error) {
	m := &ChannelMap{}

	var routable []*Channel
	for _, c := range channels {
		if c.Rect.Width() <= 0 || c.Rect.Height() <= 0 {
			m.Feedback = append(m.Feedback, FeedbackRecord{
				Message: fmt.Sprintf("degenerate channel %+v skipped: %v", c.Rect, ErrDegenerateChannel),
				Channel: c,
			})
			tile.Logger().Warn("channel: degenerate channel skipped", "rect", c.Rect)
			continue
		}
		routable = append(routable, c)
	}

	plane, err := tile.NewPlane(bounds, tile.Type(KindNormal), opts...)
	if err != nil {
		return nil, err
	}
	m.Plane = plane
	m.Channels = routable

	// Step 1: paint every channel's area with its type.
	for _, c := range routable {
		tile.PaintPlane(ctx, m.Plane, c.Rect, tile.Write(tile.Type(c.Kind)), tile.MethodNormal)
	}

	// Step 2: one-channel-one-tile enforcement and client assignment.
	for _, c := range routable {
		m.assignChannel(ctx, c)
	}

	// Step 3: density-driven blockage painting for normal channels.
	for _, c := range routable {
		if c.Kind == KindNormal {
			m.paintDensityBlockage(ctx, c)
		}
	}

	// Step 4: flood the blockage outward across river tiles.
	m.floodBlockages(ctx)

	// Step 5: split river tiles so no vertical boundary crosses a
	// river's usable pin side except at its ends.
	for _, c := range routable {
		m.splitRiverTiles(ctx, c)
	}

	// Step 6: river-completeness check.
	for _, c := range routable {
		m.checkRiverCompleteness(ctx, c)
	}

	tile.Logger().Info("channel: map built", "channels", len(routable), "skipped", len(channels)-len(routable))
	return m, nil
}

// assignChannel enforces spec §4.5 step 2: split every tile crossing
// c's boundary (forceFracture splits regardless of type, since two
// same-type neighboring channels must still end up as separate tiles),
// then set every tile now wholly inside c's client back-reference. Any
// tile pair wholly inside c sharing a body was already merged by step
// 1's paint, which runs the ordinary merge-on-paint path.
func (m *ChannelMap) assignChannel(ctx *tile.Context, c *Channel) {
	tile.FracturePlane(ctx, m.Plane, c.Rect, forceFracture)
	walkArea(m.Plane, c.Rect, func(t *tile.Tile) {
		t.SetClient(c)
	})
}

// paintDensityBlockage implements spec §4.5 step 3: wherever a column
// or row's density equals capacity, paint a river tile over the
// offending grid column/row (direction chosen by axis), then paint
// blocked over any grid cell where both axes are saturated at once —
// spec's "paint a river-channel ... or blocked tile" qualifier.
func (m *ChannelMap) paintDensityBlockage(ctx *tile.Context, c *Channel) {
	if c.GridWidth <= 0 || c.GridLength <= 0 {
		return
	}
	colW := c.Rect.Width() / c.GridWidth
	rowH := c.Rect.Height() / c.GridLength
	if colW <= 0 || rowH <= 0 {
		return
	}

	colRect := func(i int) tile.Rect {
		x0 := c.Rect.XLo + int32(i)*colW
		x1 := x0 + colW
		if i == len(c.ColDensity)-1 {
			x1 = c.Rect.XHi
		}
		return tile.Rect{XLo: x0, YLo: c.Rect.YLo, XHi: x1, YHi: c.Rect.YHi}
	}
	rowRect := func(j int) tile.Rect {
		y0 := c.Rect.YLo + int32(j)*rowH
		y1 := y0 + rowH
		if j == len(c.RowDensity)-1 {
			y1 = c.Rect.YHi
		}
		return tile.Rect{XLo: c.Rect.XLo, YLo: y0, XHi: c.Rect.XHi, YHi: y1}
	}

	for i, d := range c.ColDensity {
		if d < c.ColCapacity {
			continue
		}
		m.paintChannelArea(ctx, c, colRect(i), KindVRiver)
	}
	for j, d := range c.RowDensity {
		if d < c.RowCapacity {
			continue
		}
		m.paintChannelArea(ctx, c, rowRect(j), KindHRiver)
	}
	// Cells saturated on both axes become blocked outright, painted
	// last so it wins over the river passes above.
	for i, dc := range c.ColDensity {
		if dc < c.ColCapacity {
			continue
		}
		for j, dr := range c.RowDensity {
			if dr < c.RowCapacity {
				continue
			}
			cell := colRect(i).Intersection(rowRect(j))
			m.paintChannelArea(ctx, c, cell, KindBlocked)
		}
	}
}

func (m *ChannelMap) paintChannelArea(ctx *tile.Context, c *Channel, area tile.Rect, k Kind) {
	if area.Empty() {
		return
	}
	tile.PaintPlane(ctx, m.Plane, area, tile.Write(tile.Type(k)), tile.MethodNormal)
	walkArea(m.Plane, area, func(t *tile.Tile) {
		t.SetClient(c)
	})
}

// floodBlockages implements spec §4.5 step 4: repeatedly look just
// outside every blocked-or-river tile for river tiles whose usable pin
// side faces it, and paint the blockage through the whole of that
// river tile. Repeats until a pass makes no change.
//
// Simplified relative to the source's tile-by-tile flood: rather than
// partially blocking only the crossing sub-span, a facing river tile is
// blocked in its entirety. This is conservative (never under-blocks)
// and keeps the propagation a straightforward fixed-point loop over
// snapshot rects, matching this package's other multi-pass steps.
func (m *ChannelMap) floodBlockages(ctx *tile.Context) {
	for {
		progressed := false
		for _, c := range m.Channels {
			for _, r := range snapshotRects(m.Plane, c.Rect) {
				t := m.Plane.Locate(tile.Point{X: r.XLo, Y: r.YLo})
				if t.Rect() != r {
					continue
				}
				k := Kind(t.Type())
				if k != KindBlocked && k != KindHRiver && k != KindVRiver {
					continue
				}
				for _, n := range []*tile.Tile{t.TR(), t.BL(), t.RT(), t.LB()} {
					nc, ok := n.Client().(*Channel)
					if !ok || nc == c {
						continue
					}
					nk := Kind(n.Type())
					if nk == KindBlocked || (nk != KindHRiver && nk != KindVRiver) {
						continue
					}
					if !facesBlockage(n, t) {
						continue
					}
					tile.PaintPlane(ctx, m.Plane, n.Rect(), tile.Write(tile.Type(KindBlocked)), tile.MethodNormal)
					progressed = true
				}
			}
		}
		if !progressed {
			return
		}
		if ctx != nil && ctx.Interrupt.Pending() {
			return
		}
	}
}

// facesBlockage reports whether t touches river tile n along n's
// usable (pin-bearing) side: top/bottom for an h_river, left/right for
// a v_river (spec §4.5 step 4 "river tiles whose usable-pin side faces
// this blockage").
func facesBlockage(n, t *tile.Tile) bool {
	switch Kind(n.Type()) {
	case KindHRiver:
		return (t.YLo() == n.YHi() || t.YHi() == n.YLo()) && rangesOverlap(t.XLo(), t.XHi(), n.XLo(), n.XHi())
	case KindVRiver:
		return (t.XLo() == n.XHi() || t.XHi() == n.XLo()) && rangesOverlap(t.YLo(), t.YHi(), n.YLo(), n.YHi())
	default:
		return false
	}
}

func rangesOverlap(aLo, aHi, bLo, bHi int32) bool {
	return aLo < bHi && bLo < aHi
}

// splitRiverTiles implements spec §4.5 step 5: for every other channel
// sharing an edge with c, fracture the plane at the coordinate where
// that neighbor's boundary falls inside c, guaranteeing a distinct
// river sub-tile per neighboring channel rather than one river tile
// silently spanning several of them.
func (m *ChannelMap) splitRiverTiles(ctx *tile.Context, c *Channel) {
	for _, other := range m.Channels {
		if other == c {
			continue
		}
		if x, ok := verticalCut(c.Rect, other.Rect); ok {
			area := tile.Rect{XLo: x, YLo: c.Rect.YLo, XHi: c.Rect.XHi, YHi: c.Rect.YHi}
			tile.FracturePlane(ctx, m.Plane, area, forceFracture)
		}
		if y, ok := horizontalCut(c.Rect, other.Rect); ok {
			area := tile.Rect{XLo: c.Rect.XLo, YLo: y, XHi: c.Rect.XHi, YHi: c.Rect.YHi}
			tile.FracturePlane(ctx, m.Plane, area, forceFracture)
		}
	}
}

// verticalCut returns an x coordinate strictly inside c where other's
// left or right edge lands, when the two channels are row-adjacent
// (their y-spans overlap) — the boundary an h_river's usable top/bottom
// side must not cross uninterrupted.
func verticalCut(c, other tile.Rect) (int32, bool) {
	if !rangesOverlap(c.YLo, c.YHi, other.YLo, other.YHi) {
		return 0, false
	}
	if other.XLo > c.XLo && other.XLo < c.XHi {
		return other.XLo, true
	}
	if other.XHi > c.XLo && other.XHi < c.XHi {
		return other.XHi, true
	}
	return 0, false
}

// horizontalCut is verticalCut's transpose, for a v_river's usable
// left/right side.
func horizontalCut(c, other tile.Rect) (int32, bool) {
	if !rangesOverlap(c.XLo, c.XHi, other.XLo, other.XHi) {
		return 0, false
	}
	if other.YLo > c.YLo && other.YLo < c.YHi {
		return other.YLo, true
	}
	if other.YHi > c.YLo && other.YHi < c.YHi {
		return other.YHi, true
	}
	return 0, false
}

// checkRiverCompleteness implements spec §4.5 step 6: if every pin on a
// river's usable side is already committed, there is nothing left to
// route through it, so it converts to blocked. A river whose usable
// sides carry no pins at all is left as it is.
func (m *ChannelMap) checkRiverCompleteness(ctx *tile.Context, c *Channel) {
	hPins := len(c.Pins[SideTop]) + len(c.Pins[SideBottom])
	vPins := len(c.Pins[SideLeft]) + len(c.Pins[SideRight])
	hDone := hPins > 0 && allCommitted(c.Pins[SideTop]) && allCommitted(c.Pins[SideBottom])
	vDone := vPins > 0 && allCommitted(c.Pins[SideLeft]) && allCommitted(c.Pins[SideRight])
	if !hDone && !vDone {
		return
	}
	for _, r := range snapshotRects(m.Plane, c.Rect) {
		t := m.Plane.Locate(tile.Point{X: r.XLo, Y: r.YLo})
		if t.Rect() != r {
			continue
		}
		k := Kind(t.Type())
		if (k == KindHRiver && hDone) || (k == KindVRiver && vDone) {
			tile.PaintPlane(ctx, m.Plane, t.Rect(), tile.Write(tile.Type(KindBlocked)), tile.MethodNormal)
		}
	}
}
