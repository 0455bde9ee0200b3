package channel

import (
	"testing"

	tile "github.com/RTimothyEdwards/magic-sub012"
)

// TestBuildSimpleSplitsChannels checks spec §4.5 step 1-2: two
// side-by-side normal channels of the same Kind must end up as two
// distinct tiles, each client-tagged to its own Channel, even though
// painting each area alone would otherwise let the engine merge them
// into one strip.
func TestBuildSimpleSplitsChannels(t *testing.T) {
	bounds := tile.Rect{XLo: 0, YLo: 0, XHi: 200, YHi: 100}
	left := &Channel{Rect: tile.Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 100}, Kind: KindNormal}
	right := &Channel{Rect: tile.Rect{XLo: 100, YLo: 0, XHi: 200, YHi: 100}, Kind: KindNormal}

	ctx := tile.NewContext()
	m, err := Build(ctx, bounds, []*Channel{left, right})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	lt := m.Plane.Locate(tile.Point{X: 50, Y: 50})
	rt := m.Plane.Locate(tile.Point{X: 150, Y: 50})
	if lt == rt {
		t.Fatalf("left and right channel areas merged into one tile")
	}
	if lt.Client() != left {
		t.Errorf("left tile client = %v, want %v", lt.Client(), left)
	}
	if rt.Client() != right {
		t.Errorf("right tile client = %v, want %v", rt.Client(), right)
	}
	if lt.XHi() != 100 {
		t.Errorf("left tile XHi = %d, want 100 (split at channel boundary)", lt.XHi())
	}
}

// TestBuildDegenerateChannelSkipped checks spec §7 kind 6: a
// zero-width channel is recorded as feedback and excluded from the
// routable set, without aborting the rest of the build.
func TestBuildDegenerateChannelSkipped(t *testing.T) {
	bounds := tile.Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 100}
	good := &Channel{Rect: tile.Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 100}, Kind: KindNormal}
	bad := &Channel{Rect: tile.Rect{XLo: 10, YLo: 10, XHi: 10, YHi: 50}, Kind: KindNormal}

	ctx := tile.NewContext()
	m, err := Build(ctx, bounds, []*Channel{good, bad})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(m.Channels) != 1 || m.Channels[0] != good {
		t.Errorf("routable channels = %v, want only good", m.Channels)
	}
	if len(m.Feedback) != 1 || m.Feedback[0].Channel != bad {
		t.Errorf("feedback = %v, want one record for bad", m.Feedback)
	}
}

// TestDensityBlockagePaintsRiver checks spec §4.5 step 3: a column
// whose density equals capacity gets a v_river tile painted over it.
func TestDensityBlockagePaintsRiver(t *testing.T) {
	bounds := tile.Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 100}
	c := &Channel{
		Rect:        tile.Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 100},
		Kind:        KindNormal,
		GridWidth:   10,
		GridLength:  10,
		ColDensity:  []int{0, 0, 0, 4, 0, 0, 0, 0, 0, 0},
		ColCapacity: 4,
		RowDensity:  make([]int, 10),
		RowCapacity: 4,
	}

	ctx := tile.NewContext()
	m, err := Build(ctx, bounds, []*Channel{c})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := m.Plane.Locate(tile.Point{X: 35, Y: 50})
	if Kind(got.Type()) != KindVRiver {
		t.Errorf("tile at saturated column = %v, want v_river", Kind(got.Type()))
	}
	clean := m.Plane.Locate(tile.Point{X: 5, Y: 50})
	if Kind(clean.Type()) != KindNormal {
		t.Errorf("tile outside saturated column = %v, want normal", Kind(clean.Type()))
	}
}

// TestRiverCompletenessConvertsToBlocked checks spec §4.5 step 6: once
// every pin on a river's usable side is committed, the river converts
// to blocked since there is nothing left to route through it. Modeled
// on the h_river worked example from the original router source, where
// an h_river tile sits between two normal channels stacked vertically
// and is addressed by its top/bottom pins; the fixture keeps only the
// river channel itself.
func TestRiverCompletenessConvertsToBlocked(t *testing.T) {
	bounds := tile.Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 60}
	c := &Channel{
		Rect: tile.Rect{XLo: 0, YLo: 20, XHi: 100, YHi: 40},
		Kind: KindHRiver,
		Pins: [4][]Pin{
			SideTop:    {{Point: tile.Point{X: 10, Y: 40}, Side: SideTop, NetID: 1, Committed: true}},
			SideBottom: {{Point: tile.Point{X: 10, Y: 20}, Side: SideBottom, NetID: 1, Committed: true}},
		},
	}

	ctx := tile.NewContext()
	m, err := Build(ctx, bounds, []*Channel{c})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := m.Plane.Locate(tile.Point{X: 10, Y: 30})
	if Kind(got.Type()) != KindBlocked {
		t.Errorf("river with all pins committed = %v, want blocked", Kind(got.Type()))
	}
}

func TestVerticalCutDetectsInteriorBoundary(t *testing.T) {
	c := tile.Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 50}
	other := tile.Rect{XLo: 40, YLo: 0, XHi: 60, YHi: 50}
	x, ok := verticalCut(c, other)
	if !ok || x != 40 {
		t.Errorf("verticalCut = (%d, %v), want (40, true)", x, ok)
	}
	x, ok = verticalCut(c, tile.Rect{XLo: 100, YLo: 0, XHi: 150, YHi: 50})
	if ok {
		t.Errorf("verticalCut on non-interior edge = (%d, true), want ok=false", x)
	}
}
