package tile

// PlaneID identifies a plane for undo/event purposes. The tile package
// does not assign these itself (a plane does not know its own id);
// callers that maintain multiple planes pass one in via UndoSink
// implementations or a wrapping type, mirroring spec §3's "plane_id"
// field on every event.
type PlaneID int

// PaintEvent records one committed type change. Spec §3 "Paint Undo
// Event": "{rect, old_type, new_type, plane_id}".
type PaintEvent struct {
	Rect    Rect
	OldType Type
	NewType Type
	Plane   PlaneID
}

// SplitEvent records a split or a join, of rectangular and diagonal
// tiles alike (the paint engine's recordJoin emits one per join it
// makes). Spec §3: "Diagonal
// splits/joins emit {point, split_x, plane_id} pairs." SplitEvent is
// used for both shapes; Joined distinguishes which occurred, since a
// single sink typically wants to replay them as exact inverses of one
// another.
type SplitEvent struct {
	Point   Point
	SplitX  int32
	Plane   PlaneID
	Joined  bool // false: this was a split; true: this was a join
}

// UndoSink receives undo events as the core commits them. Spec §6:
// "the sink accepts one of three record shapes ... and never fails
// (failure is handled by dropping records, not by aborting the paint)."
// Implementations must not block or panic; if they cannot record an
// event (e.g. a full buffer), they drop it silently.
type UndoSink interface {
	Paint(PaintEvent)
	Split(SplitEvent)
	Join(SplitEvent)
}

// SliceUndoSink is a trivial UndoSink that appends every event to
// in-memory slices, useful for tests exercising the undo round-trip law
// (spec §8) and as a starting point for a real persistence layer, which
// spec §1 explicitly places outside the core's scope.
type SliceUndoSink struct {
	Paints []PaintEvent
	Splits []SplitEvent
	Joins  []SplitEvent
}

func (s *SliceUndoSink) Paint(e PaintEvent) { s.Paints = append(s.Paints, e) }
func (s *SliceUndoSink) Split(e SplitEvent) { s.Splits = append(s.Splits, e) }
func (s *SliceUndoSink) Join(e SplitEvent)  { s.Joins = append(s.Joins, e) }
