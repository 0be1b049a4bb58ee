package pathops

import "testing"

func straightPath(x0, y0, x1, y1 float64) *Path {
	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p
}

func TestGetIntersectionsCrossingLines(t *testing.T) {
	a := straightPath(0, 0, 100, 100)
	b := straightPath(0, 100, 100, 0)

	locs := a.GetIntersections(b)
	if len(locs) != 2 {
		t.Fatalf("got %d locations (one per operand side), want 2", len(locs))
	}
	for _, l := range locs {
		if l.Point().Distance(Pt(50, 50)) > 1e-5 {
			t.Errorf("intersection point = %+v, want (50,50)", l.Point())
		}
	}
}

func TestGetIntersectionsParallelLinesNone(t *testing.T) {
	a := straightPath(0, 0, 100, 0)
	b := straightPath(0, 10, 100, 10)

	if locs := a.GetIntersections(b); len(locs) != 0 {
		t.Errorf("parallel lines should not intersect, got %d locations", len(locs))
	}
}

func TestSelfIntersectionsSquareHasNone(t *testing.T) {
	square := Rectangle(0, 0, 100, 100)
	if locs := square.GetIntersections(nil); len(locs) != 0 {
		t.Errorf("a simple square should have no self-intersections, got %d", len(locs))
	}
}

func TestSelfIntersectionsBowtieHasOne(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 100)
	p.LineTo(0, 100)
	p.LineTo(100, 0)
	p.Close()

	locs := p.selfIntersections()
	if len(locs) != 2 {
		t.Fatalf("got %d self-intersection locations (one per crossing side), want 2", len(locs))
	}
	for _, l := range locs {
		if l.Point().Distance(Pt(50, 50)) > 1e-5 {
			t.Errorf("self-intersection point = %+v, want (50,50)", l.Point())
		}
	}
}

func TestCurveClassifyLoop(t *testing.T) {
	// A cubic whose control points wind back on themselves self-
	// intersects once, the Loop classification.
	c := CubicBez{P0: Pt(0, 0), P1: Pt(100, 100), P2: Pt(0, 100), P3: Pt(100, 0)}
	cls := c.Classify()
	if cls.Kind != KindLoop {
		t.Fatalf("Classify() kind = %v, want KindLoop", cls.Kind)
	}
	if cls.LoopT[0] == cls.LoopT[1] {
		t.Error("loop parameters should be distinct")
	}
	p1 := c.Eval(cls.LoopT[0])
	p2 := c.Eval(cls.LoopT[1])
	if p1.Distance(p2) > GeometricEpsilon*10 {
		t.Errorf("the two loop parameters should evaluate to the same point: %+v vs %+v", p1, p2)
	}
}

func TestGetIntersectionsSharedEdgeReportsOverlap(t *testing.T) {
	// Two rectangles stacked edge-to-edge share a full curve (in y-down
	// coordinates rectA's top edge at y=0 retraces rectB's bottom edge in
	// the opposite direction):
	// GetIntersections must flag those locations as an overlap, not an
	// ordinary crossing.
	rectA := Rectangle(0, 0, 100, 100)
	rectB := Rectangle(0, -100, 100, 100)

	locs := rectA.GetIntersections(rectB)
	if len(locs) == 0 {
		t.Fatal("expected locations for the shared edge, got none")
	}
	var overlapCount, crossingCount int
	for _, l := range locs {
		if l.IsOverlap() {
			overlapCount++
			if l.IsCrossing() {
				t.Error("a location should not be both an overlap and a crossing")
			}
		}
		if l.IsCrossing() {
			crossingCount++
		}
	}
	if overlapCount == 0 {
		t.Errorf("got %d overlap locations, want at least 2 (both endpoints of the shared edge)", overlapCount)
	}
	if crossingCount != 0 {
		t.Errorf("got %d ordinary crossings for a purely coincident edge, want 0", crossingCount)
	}
}

func TestCoincidentCurvesReportOverlap(t *testing.T) {
	// Two curves tracing the exact same path are a valid input and must
	// not panic; they're reported as an overlap (both endpoints tagged),
	// not a pair of ordinary crossings.
	a := CubicBez{P0: Pt(0, 0), P1: Pt(50, 0), P2: Pt(50, 100), P3: Pt(100, 100)}
	b := CubicBez{P0: Pt(0, 0), P1: Pt(50, 0), P2: Pt(50, 100), P3: Pt(100, 100)}

	crossings, overlaps := curveIntersections(a, b)
	if len(crossings) != 0 {
		t.Errorf("coincident curves reported %d crossings, want 0", len(crossings))
	}
	if len(overlaps) != 2 {
		t.Fatalf("coincident curves reported %d overlap pairs, want 2 (both endpoints)", len(overlaps))
	}
	if overlaps[0] != ([2]float64{0, 0}) || overlaps[1] != ([2]float64{1, 1}) {
		t.Errorf("overlap pairs = %v, want [[0 0] [1 1]] (same direction)", overlaps)
	}
}

func TestRecursionLimitExhaustionReturnsPartial(t *testing.T) {
	// Two tangent (but not coincident) curves that barely touch can stress
	// the clipping kernel's convergence without ever triggering the
	// whole-curve overlap shortcut; it must still terminate and return
	// without panicking, honoring RecursionLimit/CallLimit.
	a := CubicBez{P0: Pt(0, 0), P1: Pt(50, 0), P2: Pt(50, 100), P3: Pt(100, 100)}
	b := CubicBez{P0: Pt(0, 0), P1: Pt(50, 1), P2: Pt(50, 99), P3: Pt(100, 100)}

	crossings, overlaps := curveIntersections(a, b)
	_, _ = crossings, overlaps // must not panic regardless of how many points converge
}
