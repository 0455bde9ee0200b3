// Package channel builds a channel-classified tile plane for the global
// router: it paints channel areas, enforces one-channel-per-tile
// ownership, propagates density-driven blockage, and prepares river
// tiles for the router's pin-crossing algorithm. See spec §3 "Channel"
// / "Channel-map tile" and §4.5.
package channel

import (
	tile "github.com/RTimothyEdwards/magic-sub012"
)

// Kind is a channel-map tile's classification: the four values a tile's
// body can hold once painted into a ChannelMap's plane (spec §3
// "Channel": "type ∈ {normal, h_river, v_river, blocked}").
type Kind tile.Type

const (
	KindNormal Kind = iota
	KindHRiver
	KindVRiver
	KindBlocked
)

func (k Kind) String() string {
	switch k {
	case KindHRiver:
		return "h_river"
	case KindVRiver:
		return "v_river"
	case KindBlocked:
		return "blocked"
	default:
		return "normal"
	}
}

// Side names one of the four edges of a Channel that a Pin sits on.
type Side uint8

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Pin is one terminal location along a channel's boundary (spec §3
// "Channel": "four arrays of pins ... each pin carrying (point, side,
// net_id_or_null, flags)").
type Pin struct {
	Point tile.Point
	Side  Side

	// NetID is the pin's assigned net, or -1 if unassigned.
	NetID int

	// Committed reports whether the router has already connected this
	// pin to its net, used by the river-completeness check (spec §4.5
	// step 6).
	Committed bool
}

// Channel describes one routable channel before it is classified into
// tile-plane form. Kind is the channel's own classification — most
// channels start KindNormal and may gain river/blocked sub-areas during
// ChannelMap construction, but a channel can also already be declared a
// river at construction time (e.g. a gap deliberately left between two
// stacked normal channels).
type Channel struct {
	Rect tile.Rect
	Kind Kind

	// GridWidth and GridLength are the channel's track-grid dimensions
	// (spec §3: "a width×length grid").
	GridWidth, GridLength int32

	// Pins holds the channel's terminals, indexed by Side.
	Pins [4][]Pin

	// ColDensity and RowDensity are the pre-computed per-column and
	// per-row net-crossing counts that step 3 of channel-map
	// construction compares against capacity (spec §4.5 step 3: "read
	// the pre-computed column and row densities"). Computing these is
	// net-assignment's job, upstream of this package; ChannelMap
	// construction only consumes them.
	ColDensity, RowDensity   []int
	ColCapacity, RowCapacity int

	// The tiles classified to this channel point back at it through
	// Tile.Client, set by ChannelMap construction via Tile.SetClient;
	// Channel itself keeps no list of them.
}

// PinsOn returns c's pins on the given side.
func (c *Channel) PinsOn(s Side) []Pin { return c.Pins[s] }

func allCommitted(pins []Pin) bool {
	for _, p := range pins {
		if !p.Committed {
			return false
		}
	}
	return true
}

// FeedbackRecord is a non-fatal diagnostic emitted during channel-map
// construction (spec §7 kind 6: "degenerate channel ... emit a feedback
// record and keep the channel out of the routable set").
type FeedbackRecord struct {
	Message string
	Channel *Channel
}

// walkArea visits every tile overlapping area at least once, via plain
// point-location rather than the tile package's internal corner-stitch
// row walk (which is not exported): correct for this package's
// build-time bookkeeping, where call volume is proportional to channel
// count rather than to the painting hot path.
func walkArea(plane *tile.Plane, area tile.Rect, visit func(*tile.Tile)) {
	if area.Empty() {
		return
	}
	for y := area.YLo; y < area.YHi; {
		rowYHi := area.YHi
		for x := area.XLo; x < area.XHi; {
			t := plane.Locate(tile.Point{X: x, Y: y})
			visit(t)
			if t.YHi() < rowYHi {
				rowYHi = t.YHi()
			}
			x = t.XHi()
		}
		y = rowYHi
	}
}

// snapshotRects captures the bounding rects of every tile walkArea
// would visit, so a caller can safely mutate the plane (paint, split)
// while iterating without invalidating the walk in progress — the same
// snapshot-then-act pattern PaintDiagonal and MergeNMTiles use in the
// tile package.
func snapshotRects(plane *tile.Plane, area tile.Rect) []tile.Rect {
	var rects []tile.Rect
	walkArea(plane, area, func(t *tile.Tile) {
		rects = append(rects, t.Rect())
	})
	return rects
}

// forceFracture is an interaction table that reports every type as
// changed, used to force tile.FracturePlane to split along a boundary
// regardless of whether the tiles on either side happen to share a
// type — necessary for one-channel-one-tile enforcement (spec §4.5
// step 2), since two same-type adjacent channels must still end up as
// distinct tiles.
func forceFracture(tile.Type) tile.Type { return tile.TypeOutside }
