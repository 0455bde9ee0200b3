package tile

// PlaneOption configures a Plane during construction. Grounded on
// gogpu-gg's ContextOption pattern (functional options over a
// telescoping constructor), applied in NewPlane.
type PlaneOption func(*planeOptions)

// planeOptions holds optional configuration for Plane creation.
type planeOptions struct {
	mode          Mode
	sentinelExtra int32
	initialPool   int
}

// defaultPlaneOptions returns the default plane options.
func defaultPlaneOptions() planeOptions {
	return planeOptions{
		mode:          ModeHorizontal,
		sentinelExtra: defaultSentinelMargin,
		initialPool:   0,
	}
}

// WithMode fixes the plane's strip invariant at construction. Per spec
// §9 Open Questions, the choice between maximal-horizontal-strip mode
// and the vertical-strip variant is treated as fixed at construction;
// mixing the two on one plane is not supported.
func WithMode(m Mode) PlaneOption {
	return func(o *planeOptions) { o.mode = m }
}

// WithSentinelMargin overrides how far the TypeOutside sentinel extends
// beyond a plane's bounded region on every side. The default is
// generous enough for any realistic layout; this option mainly exists
// for tests that want a small, easy-to-reason-about sentinel.
func WithSentinelMargin(margin int32) PlaneOption {
	return func(o *planeOptions) { o.sentinelExtra = margin }
}

// WithPreallocatedTiles sizes the plane's tile free list up front,
// avoiding allocator churn for callers that know roughly how many tiles
// a plane will hold.
func WithPreallocatedTiles(n int) PlaneOption {
	return func(o *planeOptions) { o.initialPool = n }
}

// Mode names a strip invariant, fixed for a Plane at construction (see
// ModeVertical for what it affects). Spec §3
// invariant 4: "a vertical-strip mode exists as an alternate invariant;
// both cannot be active on the same plane."
type Mode uint8

const (
	// ModeHorizontal maintains maximal horizontal strips. This is the
	// default, and the mode the fast/slow-merge paths in this package
	// are written for.
	ModeHorizontal Mode = iota
	// ModeVertical is recorded on the plane and reported by Mode. The
	// paint, merge and split routines in this package do not consult
	// the mode: they maintain maximal horizontal strips on every plane.
	ModeVertical
)

func (m Mode) String() string {
	if m == ModeVertical {
		return "vertical"
	}
	return "horizontal"
}
