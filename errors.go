package tile

import "errors"

// Sentinel errors for the tile package's constructors. Per spec §7, the
// paint engine's own entry points (PaintPlane, PaintDiagonal, ...) never
// return an error — precondition violations there are silent no-ops at
// the call site. Constructors are a different surface: NewPlane reports
// a malformed bounds rectangle the same way gogpu-gg's NewImageBuf
// reports a malformed size, because a caller building a plane almost
// certainly wants to know immediately rather than silently get an
// unusable zero-area plane.
var (
	// ErrInvalidBounds is returned by NewPlane when bounds is empty.
	// NewPlane does not check whether bounds grown by the sentinel
	// margin overflows int32.
	ErrInvalidBounds = errors.New("tile: invalid plane bounds")
)
