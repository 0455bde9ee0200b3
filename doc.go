// Package tile implements a corner-stitched tile plane and the paint
// engine that mutates it.
//
// # Overview
//
// A Plane partitions an axis-aligned coordinate space into Tiles: maximal
// rectangles of uniform content, corner-stitched to their neighbors so
// that point location and area enumeration can walk the plane without an
// auxiliary index. Adjacent tiles of equal content are kept merged into
// maximal horizontal strips; a tile may instead be a non-Manhattan
// "split" tile carrying two types on either side of a diagonal.
//
// # Quick start
//
//	p, err := tile.NewPlane(tile.Rect{XHi: 100, YHi: 100}, tile.Type(0))
//	ctx := tile.NewContext()
//	table := tile.Write(tile.Type(1))
//	tile.PaintPlane(ctx, p, tile.Rect{XLo: 10, YLo: 10, XHi: 20, YHi: 20}, table, tile.MethodNormal)
//
// # Architecture
//
//   - Tile plane primitives (tile.go, plane.go, locate.go, split.go, join.go):
//     the corner-stitch data structure, point location, and the split/join
//     operations the paint engine inlines.
//   - Paint engine (paint.go, merge.go): PaintPlane, the per-tile in-line
//     procedure, and the slow-merge fallback.
//   - Diagonal paint (diagonal.go, paint_diagonal.go, remerge.go):
//     fracture, quartering, and the non-Manhattan re-merge pass.
//   - Ambient stack (logger.go, errors.go, options.go, context.go,
//     interrupt.go, undo.go): logging, error sentinels, functional
//     options, the per-call Context, cancellation, and the undo sink
//     contract.
//
// The channel package builds a channel-classified tile plane on top of
// this package; the router package searches it.
//
// # Concurrency
//
// A Plane is not safe for concurrent mutation. Exactly one logical
// operation owns a plane at a time; see Context and Interrupt for how a
// long-running operation is cancelled cooperatively.
package tile
