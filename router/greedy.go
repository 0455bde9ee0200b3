package router

import (
	channelpkg "github.com/RTimothyEdwards/magic-sub012/channel"
)

// RouteChannel routes one channel and returns its error count: it runs
// greedyRouteChannel on the channel as given and, if that reports
// errors, on its left-right mirror, keeping whichever produced fewer
// errors (the first on a tie). No x/y-transposed orientation is tried.
// The detailed greedy algorithm is the black-box contract
// route_channel(c) -> error_count; this package's real (if simplified)
// implementation is greedyRouteChannel.
func RouteChannel(c *channelpkg.Channel) int {
	orientations := orientationsByAspectRatio(c)

	bestErrors := -1
	var bestNets []net
	for _, o := range orientations {
		nets, errs := greedyRouteChannel(o)
		if bestErrors < 0 || errs < bestErrors {
			bestErrors = errs
			bestNets = nets
		}
		if bestErrors == 0 {
			break
		}
	}
	applyNets(c, bestNets)
	return bestErrors
}

// orientationsByAspectRatio returns c followed by its left-right
// mirror, always in that order. Mirroring leaves the length-to-width
// ratio unchanged and no transposed orientation is produced, so the
// ratio plays no part in the order.
func orientationsByAspectRatio(c *channelpkg.Channel) []*channelpkg.Channel {
	mirrored := &channelpkg.Channel{
		Rect:        c.Rect,
		Kind:        c.Kind,
		GridWidth:   c.GridWidth,
		GridLength:  c.GridLength,
		ColDensity:  reverseInts(c.ColDensity),
		RowDensity:  c.RowDensity,
		ColCapacity: c.ColCapacity,
		RowCapacity: c.RowCapacity,
		Pins: [4][]channelpkg.Pin{
			channelpkg.SideTop:    mirrorPins(c.Pins[channelpkg.SideTop], c.GridWidth),
			channelpkg.SideBottom: mirrorPins(c.Pins[channelpkg.SideBottom], c.GridWidth),
			channelpkg.SideLeft:   c.Pins[channelpkg.SideRight],
			channelpkg.SideRight:  c.Pins[channelpkg.SideLeft],
		},
	}
	return []*channelpkg.Channel{c, mirrored}
}

func reverseInts(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func mirrorPins(in []channelpkg.Pin, width int32) []channelpkg.Pin {
	out := make([]channelpkg.Pin, len(in))
	for i, p := range in {
		mp := p
		mp.Point.X = width - p.Point.X
		out[i] = mp
	}
	return out
}

// net is one greedily-routed connection: a sequence of track/column
// crossings assigned to the same net ID, the simplified stand-in for
// the source's per-net GCRNet run (original_source/gcr/gcrRoute.c
// gcrBuildNets/gcrClassify/gcrMakeRuns).
type net struct {
	id     int
	track  int32 // assigned track row within the channel
	colLo  int32
	colHi  int32
}

// greedyRouteChannel implements a simplified but real single-channel
// greedy router, grounded on original_source/gcr/gcrRoute.c's overall
// shape (GCRroute -> gcrBuildNets -> column-by-column
// gcrRouteCol/gcrExtend): build one net per distinct net ID appearing
// on the channel's top/bottom pins, assign each to the lowest free
// track that does not conflict with a net already occupying that
// track's column span, and count one error for every net that has
// fewer than two terminals or finds no free track (spec §4.7's black-box contract
// only requires an error count and the side effect of a completed
// routing; gcrCollapse/gcrReduceRange's split-net slack handling is
// summarized rather than implemented, since this package has no
// per-column obstruction model to make that slack meaningful).
func greedyRouteChannel(c *channelpkg.Channel) ([]net, int) {
	type terminal struct {
		netID int
		col   int32
	}
	byNet := map[int][]terminal{}
	var netIDs []int
	addSide := func(pins []channelpkg.Pin) {
		for _, p := range pins {
			if p.NetID < 0 {
				continue
			}
			if _, seen := byNet[p.NetID]; !seen {
				netIDs = append(netIDs, p.NetID)
			}
			byNet[p.NetID] = append(byNet[p.NetID], terminal{netID: p.NetID, col: p.Point.X})
		}
	}
	addSide(c.Pins[channelpkg.SideTop])
	addSide(c.Pins[channelpkg.SideBottom])

	var nets []net
	errors := 0
	trackOccupied := map[int32][][2]int32{} // track -> [lo,hi) spans of every net placed on it
	trackFree := func(track int32, lo, hi int32) bool {
		for _, occ := range trackOccupied[track] {
			if hi > occ[0] && lo < occ[1] {
				return false
			}
		}
		return true
	}

	width := c.GridWidth
	if width <= 0 {
		width = 1
	}
	for _, id := range netIDs {
		terms := byNet[id]
		if len(terms) < 2 {
			errors++
			continue
		}
		lo, hi := terms[0].col, terms[0].col
		for _, t := range terms[1:] {
			if t.col < lo {
				lo = t.col
			}
			if t.col > hi {
				hi = t.col
			}
		}
		placed := false
		for track := int32(0); track < width; track++ {
			if trackFree(track, lo, hi+1) {
				trackOccupied[track] = append(trackOccupied[track], [2]int32{lo, hi + 1})
				nets = append(nets, net{id: id, track: track, colLo: lo, colHi: hi})
				placed = true
				break
			}
		}
		if !placed {
			errors++
		}
	}
	return nets, errors
}

func applyNets(c *channelpkg.Channel, nets []net) {
	// Recording the assigned tracks back onto c's pins as committed:
	// a pin whose net received a track is done contending for
	// river-completeness (spec §4.5 step 6) and the router's
	// bookkeeping, matching gcrExtend's "place contacts" side effect
	// in spirit without this package's own track/geometry model.
	routed := map[int]bool{}
	for _, n := range nets {
		routed[n.id] = true
	}
	for side := range c.Pins {
		for i := range c.Pins[side] {
			if routed[c.Pins[side][i].NetID] {
				c.Pins[side][i].Committed = true
			}
		}
	}
}
