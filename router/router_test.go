package router

import (
	"testing"

	tile "github.com/RTimothyEdwards/magic-sub012"
	"github.com/RTimothyEdwards/magic-sub012/channel"
)

// TestProcessTerminalFastPath checks spec §8 Scenario 5: on an open
// plane with no blockage, the returned path's cost equals the raw
// Manhattan distance between start and destination.
func TestProcessTerminalFastPath(t *testing.T) {
	bounds := tile.Rect{XLo: 0, YLo: 0, XHi: 200, YHi: 200}
	plane, err := tile.NewPlane(bounds, tile.Type(channel.KindNormal))
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}

	start := tile.Point{X: 10, Y: 10}
	dest := tile.Point{X: 10, Y: 190}

	ctx := tile.NewContext()
	path := ProcessTerminal(ctx, plane, []tile.Point{start}, dest, 1_000_000, nil, false)
	if path == nil {
		t.Fatal("ProcessTerminal returned nil, want a path")
	}
	want := manhattan(start, dest)
	if path.Cost != want {
		t.Errorf("path cost = %d, want %d (Manhattan distance)", path.Cost, want)
	}
}

// TestProcessTerminalBlockedDestination checks spec §8 Scenario 6 /
// §7 kind 5: a destination inside a blocked tile returns nil
// immediately.
func TestProcessTerminalBlockedDestination(t *testing.T) {
	bounds := tile.Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 100}
	plane, err := tile.NewPlane(bounds, tile.Type(channel.KindNormal))
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	tile.PaintPlane(tile.NewContext(), plane, tile.Rect{XLo: 40, YLo: 40, XHi: 60, YHi: 60}, tile.Write(tile.Type(channel.KindBlocked)), tile.MethodNormal)

	ctx := tile.NewContext()
	path := ProcessTerminal(ctx, plane, []tile.Point{{X: 10, Y: 10}}, tile.Point{X: 50, Y: 50}, 1_000_000, nil, false)
	if path != nil {
		t.Errorf("ProcessTerminal over blocked destination = %+v, want nil", path)
	}
}

func TestRouteChannelCountsUnmatchedNets(t *testing.T) {
	c := &channel.Channel{
		Rect:       tile.Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 40},
		GridWidth:  4,
		GridLength: 10,
		Pins: [4][]channel.Pin{
			channel.SideTop:    {{Point: tile.Point{X: 10, Y: 40}, NetID: 1}, {Point: tile.Point{X: 90, Y: 40}, NetID: 2}},
			channel.SideBottom: {{Point: tile.Point{X: 10, Y: 0}, NetID: 1}},
		},
	}
	errs := RouteChannel(c)
	if errs != 1 {
		t.Errorf("RouteChannel errors = %d, want 1 (net 2 has only one terminal)", errs)
	}
	if !c.Pins[channel.SideTop][0].Committed {
		t.Errorf("net 1's top pin should be committed after routing")
	}
	if c.Pins[channel.SideTop][1].Committed {
		t.Errorf("net 2's top pin should not be committed (only one terminal)")
	}
}
