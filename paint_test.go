package tile

import "testing"

// Test-local type codes. Callers of this package define their own; these
// stand in for a layout's mask layers across the scenarios below.
const (
	typeSpace Type = 1 << iota
	typeMetal
	typePoly
)

// collectTiles walks every tile touching area and returns them in
// enumeration order, for asserting a plane's exact tiling against an
// expected layout.
func collectTiles(t *testing.T, plane *Plane, area Rect) []*Tile {
	t.Helper()
	var out []*Tile
	walkCols(plane, area, func(tile *Tile) {
		out = append(out, tile)
	})
	return out
}

// walkCols enumerates every tile overlapping area, row by row then
// column by column within each row, by repeated Locate calls rather
// than the corner-stitch enumeration walkRows performs.
func walkCols(plane *Plane, area Rect, visit func(*Tile)) {
	for y := area.YLo; y < area.YHi; {
		rowTop := area.YHi
		for x := area.XLo; x < area.XHi; {
			tile := plane.Locate(Point{X: x, Y: y})
			visit(tile)
			if tile.yHi < rowTop {
				rowTop = tile.yHi
			}
			x = tile.xHi
		}
		y = rowTop
	}
}

func rectTile(t *testing.T, tiles []*Tile, r Rect) *Tile {
	t.Helper()
	for _, tile := range tiles {
		if tile.Rect() == r {
			return tile
		}
	}
	t.Fatalf("no tile found spanning %+v; got tiles %+v", r, tiles)
	return nil
}

// TestPaintPlaneSimplePaint is Scenario 1: paint a 10x10 hole into a
// single large space tile and check the five-tile maximal-strips
// decomposition of what's left around it.
func TestPaintPlaneSimplePaint(t *testing.T) {
	bounds := Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 100}
	plane, err := NewPlane(bounds, typeSpace)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	ctx := NewContext()

	PaintPlane(ctx, plane, Rect{XLo: 10, YLo: 10, XHi: 20, YHi: 20}, Write(typeMetal), MethodNormal)

	tiles := collectTiles(t, plane, bounds)
	if len(tiles) != 5 {
		t.Fatalf("want 5 tiles, got %d: %+v", len(tiles), tiles)
	}

	want := []struct {
		rect Rect
		typ  Type
	}{
		{Rect{XLo: 10, YLo: 10, XHi: 20, YHi: 20}, typeMetal},
		{Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 10}, typeSpace},
		{Rect{XLo: 0, YLo: 10, XHi: 10, YHi: 20}, typeSpace},
		{Rect{XLo: 20, YLo: 10, XHi: 100, YHi: 20}, typeSpace},
		{Rect{XLo: 0, YLo: 20, XHi: 100, YHi: 100}, typeSpace},
	}
	for _, w := range want {
		tile := rectTile(t, tiles, w.rect)
		if tile.IsSplit() {
			t.Errorf("tile %+v unexpectedly split", w.rect)
		}
		if tile.Type() != w.typ {
			t.Errorf("tile %+v: want type %d, got %d", w.rect, w.typ, tile.Type())
		}
	}
}

// TestPaintPlanePaintThenErase is Scenario 2: erasing Scenario 1's paint
// collapses the plane back to one tile, and merging five tiles into one
// takes exactly four pairwise joins regardless of merge order.
func TestPaintPlanePaintThenErase(t *testing.T) {
	bounds := Rect{XLo: 0, YLo: 0, XHi: 100, YHi: 100}
	plane, err := NewPlane(bounds, typeSpace)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}

	PaintPlane(NewContext(), plane, Rect{XLo: 10, YLo: 10, XHi: 20, YHi: 20}, Write(typeMetal), MethodNormal)

	var sink SliceUndoSink
	ctx := NewContextWithUndo(&sink)
	PaintPlane(ctx, plane, Rect{XLo: 10, YLo: 10, XHi: 20, YHi: 20}, Write(typeSpace), MethodNormal)

	tiles := collectTiles(t, plane, bounds)
	if len(tiles) != 1 {
		t.Fatalf("want 1 tile after erase, got %d: %+v", len(tiles), tiles)
	}
	tile := tiles[0]
	if tile.Rect() != bounds {
		t.Errorf("want single tile spanning %+v, got %+v", bounds, tile.Rect())
	}
	if tile.IsSplit() || tile.Type() != typeSpace {
		t.Errorf("want plain typeSpace tile, got split=%v type=%d", tile.IsSplit(), tile.Type())
	}

	if len(sink.Joins) != 4 {
		t.Errorf("want 4 joins collapsing 5 tiles into 1, got %d", len(sink.Joins))
	}
}

// TestPaintDiagonalSimple is Scenario 3: painting a slash triangle into
// an empty area produces one split tile with the painted half on the
// smaller-x side.
func TestPaintDiagonalSimple(t *testing.T) {
	area := Rect{XLo: 0, YLo: 0, XHi: 4, YHi: 4}
	plane, err := NewPlane(area, typeSpace)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	ctx := NewContext()

	PaintDiagonal(ctx, plane, DiagDescriptor{Dir: DirSlash, Side: SideLeft}, area, Write(typeMetal), MethodNormal)

	tiles := collectTiles(t, plane, area)
	if len(tiles) != 1 {
		t.Fatalf("want 1 tile, got %d: %+v", len(tiles), tiles)
	}
	tile := tiles[0]
	if tile.Rect() != area {
		t.Fatalf("want tile spanning %+v, got %+v", area, tile.Rect())
	}
	if !tile.IsSplit() {
		t.Fatalf("want a split tile, got a plain rectangle of type %d", tile.Type())
	}
	if tile.Body().Direction() != DirSlash {
		t.Errorf("want direction slash, got %v", tile.Body().Direction())
	}
	if got := tile.Body().Left(); got != typeMetal {
		t.Errorf("want left_type metal, got %d", got)
	}
	if got := tile.Body().Right(); got != typeSpace {
		t.Errorf("want right_type space, got %d", got)
	}
}

// TestPaintDiagonalQuarteringFallback is Scenario 4: painting a
// crossing backslash triangle over Scenario 3's slash tile can't be
// represented by a single split body, so the quartering fallback
// subdivides the area into four right-triangle quadrants.
func TestPaintDiagonalQuarteringFallback(t *testing.T) {
	area := Rect{XLo: 0, YLo: 0, XHi: 4, YHi: 4}
	plane, err := NewPlane(area, typeSpace)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	ctx := NewContext()

	PaintDiagonal(ctx, plane, DiagDescriptor{Dir: DirSlash, Side: SideLeft}, area, Write(typeMetal), MethodNormal)
	PaintDiagonal(ctx, plane, DiagDescriptor{Dir: DirBackslash, Side: SideLeft}, area, Paint(typePoly), MethodNormal)

	tiles := collectTiles(t, plane, area)
	if len(tiles) != 4 {
		t.Fatalf("want 4 quadrant tiles, got %d: %+v", len(tiles), tiles)
	}
	for _, tile := range tiles {
		if !tile.IsSplit() {
			t.Errorf("quadrant %+v: want a right-triangle, got a plain rectangle", tile.Rect())
		}
	}

	sw := rectTile(t, tiles, Rect{XLo: 0, YLo: 0, XHi: 2, YHi: 2})
	if got := sw.Body().Direction(); got != DirSlash {
		t.Errorf("SW quadrant: want slash (untouched orientation), got %v", got)
	}
	if got := sw.Body().Left(); got != typeMetal|typePoly {
		t.Errorf("SW quadrant: want left_type metal|poly, got %d", got)
	}
	if got := sw.Body().Right(); got != typeSpace|typePoly {
		t.Errorf("SW quadrant: want right_type space|poly, got %d", got)
	}

	ne := rectTile(t, tiles, Rect{XLo: 2, YLo: 2, XHi: 4, YHi: 4})
	if got := ne.Body().Direction(); got != DirSlash {
		t.Errorf("NE quadrant: want slash (untouched orientation), got %v", got)
	}
	if got := ne.Body().Left(); got != typeMetal {
		t.Errorf("NE quadrant: want left_type metal (untouched by crossing paint), got %d", got)
	}
	if got := ne.Body().Right(); got != typeSpace {
		t.Errorf("NE quadrant: want right_type space (untouched), got %d", got)
	}

	nw := rectTile(t, tiles, Rect{XLo: 0, YLo: 2, XHi: 2, YHi: 4})
	if got := nw.Body().Direction(); got != DirBackslash {
		t.Errorf("NW quadrant: want the new backslash orientation, got %v", got)
	}
	if got := nw.Body().Left(); got != typeMetal|typePoly {
		t.Errorf("NW quadrant: want left_type metal|poly, got %d", got)
	}
	if got := nw.Body().Right(); got != typeMetal {
		t.Errorf("NW quadrant: want right_type metal, got %d", got)
	}

	se := rectTile(t, tiles, Rect{XLo: 2, YLo: 0, XHi: 4, YHi: 2})
	if got := se.Body().Direction(); got != DirBackslash {
		t.Errorf("SE quadrant: want the new backslash orientation, got %v", got)
	}
	if got := se.Body().Left(); got != typeSpace|typePoly {
		t.Errorf("SE quadrant: want left_type space|poly, got %d", got)
	}
	if got := se.Body().Right(); got != typeSpace {
		t.Errorf("SE quadrant: want right_type space, got %d", got)
	}
}
