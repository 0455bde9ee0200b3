// Package router implements the global router's path search and the
// per-channel routing wrapper (spec §4.6, §4.7) over a channel.ChannelMap.
package router

import (
	"container/heap"
	"errors"

	tile "github.com/RTimothyEdwards/magic-sub012"
	"github.com/RTimothyEdwards/magic-sub012/channel"
)

// ErrNoPath is returned (conceptually; ProcessTerminal itself returns
// nil per spec §6) when no path under best_cost exists. Exported so
// callers that want an error rather than a bare nil can wrap it.
var ErrNoPath = errors.New("router: no path within best cost")

// ErrDestinationBlocked corresponds to spec §7 kind 5: "destination
// tile is blocked -> return null immediately."
var ErrDestinationBlocked = errors.New("router: destination tile is blocked")

// CrossingPenaltyFunc scores the congestion cost of routing through a
// channel crossing at point p. Must be non-negative — spec §9 Open
// Question 3 resolves the ambiguity over negative penalties by making
// this an explicit precondition; CrossingAdjust clamps a negative value
// to zero.
type CrossingPenaltyFunc func(p tile.Point) int

// Path is a linked path from a destination back to a start point (spec
// §4.6: "returns a linked path from dest_loc back to some
// start_point"). Cost is the total accumulated cost at this point.
type Path struct {
	Point tile.Point
	Cost  int
	Next  *Path
}

// Len counts the points in p, including p itself.
func (p *Path) Len() int {
	n := 0
	for cur := p; cur != nil; cur = cur.Next {
		n++
	}
	return n
}

func manhattan(a, b tile.Point) int {
	return int(absInt32(a.X-b.X) + absInt32(a.Y-b.Y))
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// gridStep is the search's unit step size: the granularity at which
// process_terminal's pin-to-pin edges (spec §4.6: "computing edge cost
// as grid-Manhattan distance") are modeled when no caller-specific
// track pitch is known. The package doc simplification is the same one
// DESIGN.md records for CrossingAdjust: without a concrete per-channel
// track graph, a uniform grid step is the faithful general-purpose
// substitute, and it makes an unblocked search's cost exactly the
// Manhattan distance between start and destination, matching spec §8's
// "fast-path" testable property.
const gridStep int32 = 1

// searchPoint is one (channel-pin, cost, parent-pointer) triple, spec
// §4.6's literal unit of work for the frontier.
type searchPoint struct {
	pin    tile.Point
	cost   int
	bound  int
	parent *searchPoint
}

type pointHeap []*searchPoint

func (h pointHeap) Len() int            { return len(h) }
func (h pointHeap) Less(i, j int) bool  { return h[i].bound < h[j].bound }
func (h pointHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pointHeap) Push(x interface{}) { *h = append(*h, x.(*searchPoint)) }
func (h *pointHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

func blockedAt(plane *tile.Plane, p tile.Point) bool {
	return channel.Kind(plane.Locate(p).Type()) == channel.KindBlocked
}

func gridNeighbors(p tile.Point) [4]tile.Point {
	return [4]tile.Point{
		{X: p.X + gridStep, Y: p.Y},
		{X: p.X - gridStep, Y: p.Y},
		{X: p.X, Y: p.Y + gridStep},
		{X: p.X, Y: p.Y - gridStep},
	}
}

// ProcessTerminal runs the two-phase search of spec §4.6 from
// startPoints to destLoc over plane, returning a path of cost below
// bestCost or nil if none exists. penalty may be nil to skip Phase B
// and return the Phase A shortest-length path directly. fast restricts
// Phase B to the points Phase A's path already visited (spec §4.6
// "fast mode ... reuses only the channels on Phase A's shortest path").
func ProcessTerminal(ctx *tile.Context, plane *tile.Plane, startPoints []tile.Point, destLoc tile.Point, bestCost int, penalty CrossingPenaltyFunc, fast bool) *Path {
	if blockedAt(plane, destLoc) {
		return nil
	}

	shortest := shortestLengthPath(ctx, plane, startPoints, destLoc, bestCost)
	if shortest == nil {
		return nil
	}
	if penalty == nil {
		return shortest
	}

	var allowed map[tile.Point]bool
	if fast {
		allowed = map[tile.Point]bool{}
		for cur := shortest; cur != nil; cur = cur.Next {
			allowed[cur.Point] = true
		}
	}
	return minPenaltyPath(ctx, plane, startPoints, destLoc, penalty, allowed)
}

// shortestLengthPath is Phase A: a min-heap keyed on
// distance-so-far + Manhattan-lower-bound-remaining drives an
// A*-style exploration over unblocked grid points until destLoc is
// popped, or the heap empties below bestCost.
func shortestLengthPath(ctx *tile.Context, plane *tile.Plane, startPoints []tile.Point, destLoc tile.Point, bestCost int) *Path {
	best := map[tile.Point]int{}
	h := &pointHeap{}
	heap.Init(h)
	for _, sp := range startPoints {
		if blockedAt(plane, sp) {
			continue
		}
		if prev, ok := best[sp]; ok && prev <= 0 {
			continue
		}
		best[sp] = 0
		heap.Push(h, &searchPoint{pin: sp, cost: 0, bound: manhattan(sp, destLoc)})
	}

	for h.Len() > 0 {
		if ctx != nil && ctx.Interrupt.Pending() {
			return nil
		}
		cur := heap.Pop(h).(*searchPoint)
		if cur.cost > best[cur.pin] {
			continue // stale entry, a cheaper path already settled this point
		}
		if cur.cost >= bestCost {
			continue
		}
		if cur.pin == destLoc {
			return toPath(cur)
		}
		for _, np := range gridNeighbors(cur.pin) {
			if blockedAt(plane, np) {
				continue
			}
			newCost := cur.cost + int(gridStep)
			if prev, ok := best[np]; ok && prev <= newCost {
				continue
			}
			best[np] = newCost
			heap.Push(h, &searchPoint{
				pin: np, cost: newCost,
				bound: newCost + manhattan(np, destLoc), parent: cur,
			})
		}
	}
	return nil
}

// minPenaltyPath is Phase B: re-runs the same search, but each
// candidate reaching destLoc is scored by CrossingAdjust's
// penalty-adjusted cost instead of raw length; the search halts once
// the raw (unadjusted) frontier cost exceeds the best adjusted cost
// already observed (spec §4.6).
func minPenaltyPath(ctx *tile.Context, plane *tile.Plane, startPoints []tile.Point, destLoc tile.Point, penalty CrossingPenaltyFunc, allowed map[tile.Point]bool) *Path {
	best := map[tile.Point]int{}
	h := &pointHeap{}
	heap.Init(h)
	for _, sp := range startPoints {
		if blockedAt(plane, sp) || (allowed != nil && !allowed[sp]) {
			continue
		}
		best[sp] = 0
		heap.Push(h, &searchPoint{pin: sp, cost: 0, bound: manhattan(sp, destLoc)})
	}

	var bestPath *Path
	bestAdjusted := -1

	for h.Len() > 0 {
		if ctx != nil && ctx.Interrupt.Pending() {
			break
		}
		cur := heap.Pop(h).(*searchPoint)
		if cur.cost > best[cur.pin] {
			continue
		}
		if bestAdjusted >= 0 && cur.cost > bestAdjusted {
			break // raw length already exceeds the best adjusted cost found
		}
		if cur.pin == destLoc {
			candidate := toPath(cur)
			adjusted := CrossingAdjust(candidate, penalty)
			if bestAdjusted < 0 || adjusted < bestAdjusted {
				bestAdjusted = adjusted
				bestPath = candidate
			}
			continue
		}
		for _, np := range gridNeighbors(cur.pin) {
			if blockedAt(plane, np) || (allowed != nil && !allowed[np]) {
				continue
			}
			newCost := cur.cost + int(gridStep)
			if prev, ok := best[np]; ok && prev <= newCost {
				continue
			}
			best[np] = newCost
			heap.Push(h, &searchPoint{
				pin: np, cost: newCost,
				bound: newCost + manhattan(np, destLoc), parent: cur,
			})
		}
	}
	return bestPath
}

// toPath rebuilds sp's parent chain into a Path in dest-to-start order
// (spec §4.6: "a linked path from dest_loc back to some start_point").
func toPath(sp *searchPoint) *Path {
	var out *Path
	for cur := sp; cur != nil; cur = cur.parent {
		out = &Path{Point: cur.pin, Cost: cur.cost, Next: out}
	}
	// out is currently start-to-dest order (built by prepending each
	// point closer to the start last); reverse it into dest-to-start.
	var rev *Path
	for cur := out; cur != nil; cur = cur.Next {
		rev = &Path{Point: cur.Point, Cost: cur.Cost, Next: rev}
	}
	return rev
}

// CrossingAdjust walks path and re-seats each pin within the run of
// free pins available at its channel crossing to minimize the sum of
// penalty's per-crossing congestion cost (spec §4.6 Phase B). This
// package has no concrete per-crossing track-slot model (no real
// track-pitch graph — see gridStep's doc comment), so the adjustment
// degenerates to evaluating penalty at each point along the path as
// given; a caller with real track-slot data can supply a
// CrossingPenaltyFunc that itself searches nearby slots and folds the
// minimum into its return value. Returns the raw path cost plus the
// summed penalty.
func CrossingAdjust(path *Path, penalty CrossingPenaltyFunc) int {
	if path == nil {
		return 0
	}
	total := path.Cost
	for cur := path; cur != nil; cur = cur.Next {
		if penalty == nil {
			continue
		}
		p := penalty(cur.Point)
		if p < 0 {
			p = 0 // CrossingPenaltyFunc's documented precondition is non-negative
		}
		total += p
	}
	return total
}
