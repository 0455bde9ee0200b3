// Command tileplanedemo exercises the tile plane, paint engine, and
// global router end to end: it paints two rectangles and one diagonal
// notch into a plane, builds a channel map over the same bounds on a
// plane of its own (the painted shapes do not feed into it), greedily
// routes every channel, and searches the channel map's plane for a path
// between two points, logging each stage.
package main

import (
	"flag"
	"log/slog"
	"os"

	tile "github.com/RTimothyEdwards/magic-sub012"
	"github.com/RTimothyEdwards/magic-sub012/channel"
	"github.com/RTimothyEdwards/magic-sub012/router"
)

func main() {
	var (
		width  = flag.Int("width", 400, "plane width")
		height = flag.Int("height", 300, "plane height")
		debug  = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	tile.SetLogger(logger)

	if err := run(*width, *height, logger); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(width, height int, logger *slog.Logger) error {
	bounds := tile.Rect{XLo: 0, YLo: 0, XHi: int32(width), YHi: int32(height)}
	plane, err := tile.NewPlane(bounds, tile.Type(channel.KindNormal))
	if err != nil {
		return err
	}

	ctx := tile.NewContext()
	paintDemoShapes(ctx, plane)
	logger.Info("painted demo shapes", "width", width, "height", height)

	left := &channel.Channel{
		Rect:        tile.Rect{XLo: 0, YLo: 0, XHi: int32(width) / 2, YHi: int32(height)},
		Kind:        channel.KindNormal,
		GridWidth:   8,
		GridLength:  8,
		ColCapacity: 4,
		RowCapacity: 4,
	}
	right := &channel.Channel{
		Rect:        tile.Rect{XLo: int32(width) / 2, YLo: 0, XHi: int32(width), YHi: int32(height)},
		Kind:        channel.KindNormal,
		GridWidth:   8,
		GridLength:  8,
		ColCapacity: 4,
		RowCapacity: 4,
	}

	cm, err := channel.Build(tile.NewContext(), bounds, []*channel.Channel{left, right})
	if err != nil {
		return err
	}
	logger.Info("built channel map", "channels", len(cm.Channels), "feedback", len(cm.Feedback))

	for _, c := range cm.Channels {
		errs := router.RouteChannel(c)
		logger.Info("routed channel", "rect", c.Rect, "errors", errs)
	}

	start := tile.Point{X: 5, Y: 5}
	dest := tile.Point{X: int32(width) - 5, Y: int32(height) - 5}
	path := router.ProcessTerminal(tile.NewContext(), cm.Plane, []tile.Point{start}, dest, 1_000_000, nil, false)
	if path == nil {
		logger.Warn("no path found", "start", start, "dest", dest)
		return nil
	}
	logger.Info("found path", "start", start, "dest", dest, "cost", path.Cost, "points", path.Len())
	return nil
}

// paintDemoShapes paints two overlapping rectangles and one diagonal
// notch, demonstrating the paint engine's in-line merge and the
// diagonal paint path in one pass.
func paintDemoShapes(ctx *tile.Context, plane *tile.Plane) {
	bounds := plane.Bounds()
	w, h := bounds.Width(), bounds.Height()

	tile.PaintPlane(ctx, plane,
		tile.Rect{XLo: w / 8, YLo: h / 8, XHi: w / 2, YHi: h / 2},
		tile.Write(tile.Type(channel.KindBlocked)), tile.MethodNormal)

	tile.PaintPlane(ctx, plane,
		tile.Rect{XLo: w / 3, YLo: h / 3, XHi: w - w/8, YHi: h - h/8},
		tile.Write(tile.Type(channel.KindBlocked)), tile.MethodNormal)

	notch := tile.Rect{XLo: w / 2, YLo: h / 2, XHi: w/2 + w/6, YHi: h/2 + h/6}
	tile.PaintDiagonal(ctx, plane, tile.DiagDescriptor{Dir: tile.DirSlash, Side: tile.SideRight}, notch,
		tile.Write(tile.Type(channel.KindHRiver)), tile.MethodNormal)
}
