package pathops

import (
	"math"
	"testing"
)

// S2: intersecting two axis-aligned rectangles yields a single closed
// path with the expected area and bounds.
func TestBooleanRectIntersect(t *testing.T) {
	a := Rectangle(0, 0, 200, 200)
	b := Rectangle(50, 50, 100, 100)

	result := Intersect(a, b)
	p, ok := result.(*Path)
	if !ok {
		t.Fatalf("Intersect() = %T, want *Path", result)
	}
	if !almostEqual(p.Area(), 10000, 1) {
		t.Errorf("area = %v, want 10000", p.Area())
	}
	bounds := p.Bounds()
	want := NewRect(Pt(50, 50), Pt(150, 150))
	if !almostEqual(bounds.Min.X, want.Min.X, 1) || !almostEqual(bounds.Min.Y, want.Min.Y, 1) ||
		!almostEqual(bounds.Max.X, want.Max.X, 1) || !almostEqual(bounds.Max.Y, want.Max.Y, 1) {
		t.Errorf("bounds = %+v, want %+v", bounds, want)
	}
}

// S3: fully disjoint rectangles (neither bounds nor interiors overlap)
// unite into two disjoint children and intersect to nothing.
func TestBooleanRectsDisjoint(t *testing.T) {
	a := Rectangle(0, 0, 100, 100)
	b := Rectangle(200, 200, 100, 100)

	union := Unite(a, b)
	cp, ok := union.(*CompoundPath)
	if !ok {
		t.Fatalf("Unite() = %T, want *CompoundPath", union)
	}
	if cp.ChildCount() != 2 {
		t.Errorf("ChildCount() = %d, want 2", cp.ChildCount())
	}

	inter := Intersect(a, b)
	if !inter.IsEmptyItem() {
		t.Errorf("Intersect() of disjoint rects should be empty, got area %v", inter.Area())
	}
}

// S4: a nested rectangle pair under the default non-zero rule: subtract yields
// an outer-plus-hole compound, intersect yields the inner rectangle.
func TestBooleanNestedRectsEvenOdd(t *testing.T) {
	a := Rectangle(0, 0, 200, 200)
	b := Rectangle(50, 50, 100, 100)

	sub := Subtract(a, b)
	cp, ok := sub.(*CompoundPath)
	if !ok {
		t.Fatalf("Subtract() = %T, want *CompoundPath (outer + hole)", sub)
	}
	if cp.ChildCount() != 2 {
		t.Errorf("ChildCount() = %d, want 2", cp.ChildCount())
	}
	if !almostEqual(cp.Area(), 200*200-100*100, 1) {
		t.Errorf("area = %v, want %v", cp.Area(), 200*200-100*100)
	}

	inter := Intersect(a, b)
	if !almostEqual(inter.Area(), 100*100, 1) {
		t.Errorf("intersect area = %v, want %v", inter.Area(), 100*100)
	}
}

// S5: a bowtie built from four straight segments resolves its own
// self-crossing into two triangles meeting at the crossing point.
func TestResolveCrossingsBowtie(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 100)
	p.LineTo(0, 100)
	p.LineTo(100, 0)
	p.Close()

	result := ResolveCrossings(p)
	cp, ok := result.(*CompoundPath)
	if !ok {
		t.Fatalf("ResolveCrossings() = %T, want *CompoundPath", result)
	}
	if cp.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2", cp.ChildCount())
	}
	for _, child := range cp.Children() {
		if child.SegmentCount() != 3 {
			t.Errorf("triangle child has %d segments, want 3", child.SegmentCount())
		}
	}
}

// S8: a circle and a square overlapping at a corner cross at two points.
func TestBooleanCircleSquareIntersectionPoints(t *testing.T) {
	circle := Circle(110, 110, 80)
	square := Rectangle(110, 110, 100, 100)

	locs := circle.GetIntersections(square)
	if len(locs) != 2 {
		t.Fatalf("got %d intersection locations, want 2", len(locs))
	}
	want := []Point{{X: 190, Y: 110}, {X: 110, Y: 190}}
	for _, w := range want {
		found := false
		for _, l := range locs {
			if l.Point().Distance(w) < 1 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing expected intersection near %+v", w)
		}
	}
}

// Property 9: boolean idempotence.
func TestBooleanIdempotence(t *testing.T) {
	shapes := []PathItem{
		Rectangle(0, 0, 100, 100),
		Circle(50, 50, 40),
		Star(0, 0, 50, 20, 5),
	}
	for i, a := range shapes {
		if got := Unite(a, a).Area(); !almostEqual(got, math.Abs(a.Area()), 0.5) {
			t.Errorf("shape %d: unite(A,A) area = %v, want %v", i, got, a.Area())
		}
		if got := Intersect(a, a).Area(); !almostEqual(got, math.Abs(a.Area()), 0.5) {
			t.Errorf("shape %d: intersect(A,A) area = %v, want %v", i, got, a.Area())
		}
		if got := Subtract(a, a); !got.IsEmptyItem() {
			t.Errorf("shape %d: subtract(A,A) not empty, area = %v", i, got.Area())
		}
		if got := Exclude(a, a); !got.IsEmptyItem() {
			t.Errorf("shape %d: exclude(A,A) not empty, area = %v", i, got.Area())
		}
	}
}

// Property 10: boolean symmetry.
func TestBooleanSymmetry(t *testing.T) {
	a := Rectangle(0, 0, 150, 100)
	b := Circle(100, 50, 60)

	if !almostEqual(Unite(a, b).Area(), Unite(b, a).Area(), 0.5) {
		t.Error("unite(A,B) != unite(B,A)")
	}
	if !almostEqual(Intersect(a, b).Area(), Intersect(b, a).Area(), 0.5) {
		t.Error("intersect(A,B) != intersect(B,A)")
	}
	if !almostEqual(Exclude(a, b).Area(), Exclude(b, a).Area(), 0.5) {
		t.Error("exclude(A,B) != exclude(B,A)")
	}
}

// Property 11: De Morgan-like identity exclude(A,B) = subtract(unite(A,B), intersect(A,B)).
func TestBooleanDeMorgan(t *testing.T) {
	a := Rectangle(0, 0, 150, 100)
	b := Circle(100, 50, 60)

	lhs := Exclude(a, b)
	rhs := Subtract(Unite(a, b), Intersect(a, b))
	if !almostEqual(math.Abs(lhs.Area()), math.Abs(rhs.Area()), 1) {
		t.Errorf("exclude area %v, subtract(unite,intersect) area %v", lhs.Area(), rhs.Area())
	}
}

// Property 12: area monotonicity across intersect/unite.
func TestBooleanAreaMonotonicity(t *testing.T) {
	a := Rectangle(0, 0, 150, 100)
	b := Circle(100, 50, 60)

	interArea := math.Abs(Intersect(a, b).Area())
	unionArea := math.Abs(Unite(a, b).Area())
	aArea, bArea := math.Abs(a.Area()), math.Abs(b.Area())

	minAB := math.Min(aArea, bArea)
	maxAB := math.Max(aArea, bArea)

	if interArea > minAB+0.5 {
		t.Errorf("intersect area %v > min(|A|,|B|) %v", interArea, minAB)
	}
	if minAB > maxAB+0.5 {
		t.Errorf("min(|A|,|B|) %v > max(|A|,|B|) %v", minAB, maxAB)
	}
	if maxAB > unionArea+0.5 {
		t.Errorf("max(|A|,|B|) %v > union area %v", maxAB, unionArea)
	}
}

func TestDivideProducesThreeRegions(t *testing.T) {
	a := Rectangle(0, 0, 100, 100)
	b := Rectangle(50, 50, 100, 100)

	result := Divide(a, b)
	cp, ok := result.(*CompoundPath)
	if !ok {
		t.Fatalf("Divide() = %T, want *CompoundPath", result)
	}
	if cp.ChildCount() != 3 {
		t.Errorf("ChildCount() = %d, want 3 (a-only, intersection, b-only)", cp.ChildCount())
	}
	if !almostEqual(math.Abs(cp.Area()), math.Abs(Unite(a, b).Area()), 1) {
		t.Errorf("divide total area %v should equal union area %v", cp.Area(), Unite(a, b).Area())
	}
}

// TestBooleanEvenOddVsNonZeroDiverge builds one operand from two
// same-direction overlapping rectangles (so their shared region has a
// raw winding magnitude of 2) and checks that the overlap counts as
// inside under NonZero but as a hole under EvenOdd, both directly via
// ContainsRule and through an actual boolean operator, proving FillRule
// is consulted rather than silently treated as NonZero everywhere.
func TestBooleanEvenOddVsNonZeroDiverge(t *testing.T) {
	square1 := Rectangle(0, 0, 100, 100)
	square2 := Rectangle(40, 40, 100, 100)
	overlapPt := Point{X: 70, Y: 70}

	nonZero := NewCompoundPath(square1.Clone(), square2.Clone())
	nonZero.FillRule = NonZero
	if !nonZero.ContainsRule(overlapPt, NonZero) {
		t.Error("NonZero: overlap point should be inside (winding 2 != 0)")
	}

	evenOdd := NewCompoundPath(square1.Clone(), square2.Clone())
	evenOdd.FillRule = EvenOdd
	if evenOdd.ContainsRule(overlapPt, EvenOdd) {
		t.Error("EvenOdd: overlap point should be a hole (winding 2 is even)")
	}

	probe := Rectangle(60, 60, 20, 20)

	interNonZero := Intersect(probe, nonZero)
	if interNonZero.IsEmptyItem() {
		t.Error("Intersect(probe, NonZero overlap) should keep the probe, got empty")
	} else if !almostEqual(math.Abs(interNonZero.Area()), 400, 1) {
		t.Errorf("Intersect(probe, NonZero overlap) area = %v, want 400", interNonZero.Area())
	}

	interEvenOdd := Intersect(probe, evenOdd)
	if !interEvenOdd.IsEmptyItem() {
		t.Errorf("Intersect(probe, EvenOdd overlap) should be empty (hole), got area %v", interEvenOdd.Area())
	}
}

func TestBooleanEmptyOperand(t *testing.T) {
	a := Rectangle(0, 0, 100, 100)
	empty := NewPath()

	if got := Unite(a, empty).Area(); !almostEqual(got, a.Area(), 0.5) {
		t.Errorf("unite(A, empty) area = %v, want %v", got, a.Area())
	}
	if got := Intersect(a, empty); !got.IsEmptyItem() {
		t.Errorf("intersect(A, empty) should be empty, got area %v", got.Area())
	}
}
