package pathops

import (
	"math"
	"testing"
)

// TestPathArea tests the Area() method for various shapes.
func TestPathArea(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		wantArea  float64
		tolerance float64
	}{
		{
			name: "unit square clockwise",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(1, 0)
				p.LineTo(1, 1)
				p.LineTo(0, 1)
				p.Close()
				return p
			},
			wantArea:  1.0,
			tolerance: 0.001,
		},
		{
			name: "unit square counter-clockwise",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(0, 1)
				p.LineTo(1, 1)
				p.LineTo(1, 0)
				p.Close()
				return p
			},
			wantArea:  -1.0,
			tolerance: 0.001,
		},
		{
			name:      "10x10 square",
			buildPath: func() *Path { return Rectangle(0, 0, 10, 10) },
			wantArea:  100,
			tolerance: 0.1,
		},
		{
			name: "triangle",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(4, 0)
				p.LineTo(2, 3)
				p.Close()
				return p
			},
			wantArea:  6,
			tolerance: 0.1,
		},
		{
			name:      "circle radius 1",
			buildPath: func() *Path { return Circle(0, 0, 1) },
			wantArea:  math.Pi,
			tolerance: 0.5,
		},
		{
			name:      "empty path",
			buildPath: NewPath,
			wantArea:  0,
			tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.buildPath()
			got := p.Area()
			if math.Abs(math.Abs(got)-math.Abs(tt.wantArea)) > tt.tolerance {
				t.Errorf("Area() = %v, want approximately %v (tolerance %v)", got, tt.wantArea, tt.tolerance)
			}
		})
	}
}

// TestPathContainsRule tests the windingNumber-based ContainsRule method.
func TestPathContainsRule(t *testing.T) {
	square := NewPath()
	square.MoveTo(0, 0)
	square.LineTo(1, 0)
	square.LineTo(1, 1)
	square.LineTo(0, 1)
	square.Close()

	tests := []struct {
		name   string
		point  Point
		expect bool
	}{
		{"point inside square", Pt(0.5, 0.5), true},
		{"point outside square left", Pt(-1, 0.5), false},
		{"point outside square right", Pt(2, 0.5), false},
		{"point outside square above", Pt(0.5, 2), false},
		{"point outside square below", Pt(0.5, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := square.ContainsRule(tt.point, NonZero)
			if got != tt.expect {
				t.Errorf("ContainsRule(%v) = %v, want %v", tt.point, got, tt.expect)
			}
		})
	}
}

// TestPathContains tests the Contains() method.
func TestPathContains(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		point     Point
		want      bool
	}{
		{"inside square", func() *Path { return Rectangle(0, 0, 10, 10) }, Pt(5, 5), true},
		{"outside square", func() *Path { return Rectangle(0, 0, 10, 10) }, Pt(15, 5), false},
		{"inside circle", func() *Path { return Circle(5, 5, 3) }, Pt(5, 5), true},
		{"outside circle", func() *Path { return Circle(5, 5, 3) }, Pt(0, 0), false},
		{
			name: "inside triangle",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(10, 0)
				p.LineTo(5, 10)
				p.Close()
				return p
			},
			point: Pt(5, 3),
			want:  true,
		},
		{
			name: "outside triangle",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(10, 0)
				p.LineTo(5, 10)
				p.Close()
				return p
			},
			point: Pt(0, 10),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.buildPath()
			got := p.Contains(tt.point)
			if got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

// TestPathBounds tests the Bounds() method.
func TestPathBounds(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		wantMin   Point
		wantMax   Point
	}{
		{
			name:      "simple rectangle",
			buildPath: func() *Path { return Rectangle(10, 20, 30, 40) },
			wantMin:   Pt(10, 20),
			wantMax:   Pt(40, 60),
		},
		{
			name: "triangle",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(10, 0)
				p.LineTo(5, 8)
				p.Close()
				return p
			},
			wantMin: Pt(0, 0),
			wantMax: Pt(10, 8),
		},
		{
			name:      "circle at origin",
			buildPath: func() *Path { return Circle(0, 0, 5) },
			wantMin:   Pt(-5, -5),
			wantMax:   Pt(5, 5),
		},
		{
			name: "quadratic curve",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.QuadraticTo(5, 10, 10, 0)
				return p
			},
			wantMin: Pt(0, 0),
			wantMax: Pt(10, 5),
		},
		{
			name:      "empty path",
			buildPath: NewPath,
			wantMin:   Pt(0, 0),
			wantMax:   Pt(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.buildPath()
			bbox := p.Bounds()

			tolerance := 0.5

			if math.Abs(bbox.Min.X-tt.wantMin.X) > tolerance ||
				math.Abs(bbox.Min.Y-tt.wantMin.Y) > tolerance {
				t.Errorf("Bounds().Min = %v, want %v", bbox.Min, tt.wantMin)
			}
			if math.Abs(bbox.Max.X-tt.wantMax.X) > tolerance ||
				math.Abs(bbox.Max.Y-tt.wantMax.Y) > tolerance {
				t.Errorf("Bounds().Max = %v, want %v", bbox.Max, tt.wantMax)
			}
		})
	}
}

// TestPathFlatten tests the Flatten() method, which returns a polyline
// Path approximating the curves.
func TestPathFlatten(t *testing.T) {
	tests := []struct {
		name       string
		buildPath  func() *Path
		tolerance  float64
		minSegs    int
		checkFirst Point
		checkLast  Point
	}{
		{
			name: "simple line",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(10, 10)
				return p
			},
			tolerance:  1.0,
			minSegs:    2,
			checkFirst: Pt(0, 0),
			checkLast:  Pt(10, 10),
		},
		{
			name: "quadratic curve",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.QuadraticTo(5, 10, 10, 0)
				return p
			},
			tolerance:  0.5,
			minSegs:    3,
			checkFirst: Pt(0, 0),
			checkLast:  Pt(10, 0),
		},
		{
			name: "cubic curve",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.CubicTo(3, 10, 7, 10, 10, 0)
				return p
			},
			tolerance:  0.5,
			minSegs:    3,
			checkFirst: Pt(0, 0),
			checkLast:  Pt(10, 0),
		},
		{
			name: "high precision",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.QuadraticTo(5, 10, 10, 0)
				return p
			},
			tolerance:  0.01,
			minSegs:    5,
			checkFirst: Pt(0, 0),
			checkLast:  Pt(10, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.buildPath()
			flat := p.Flatten(tt.tolerance)

			if got := flat.SegmentCount(); got < tt.minSegs {
				t.Errorf("Flatten() produced %d segments, expected at least %d", got, tt.minSegs)
			}

			first := flat.FirstSegment().Point
			last := flat.LastSegment().Point

			if first.Distance(tt.checkFirst) > 0.01 {
				t.Errorf("First point = %v, want %v", first, tt.checkFirst)
			}
			if last.Distance(tt.checkLast) > 0.01 {
				t.Errorf("Last point = %v, want %v", last, tt.checkLast)
			}
		})
	}
}

// TestPathReversed tests the Reversed() method.
func TestPathReversed(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
	}{
		{
			name: "simple line path",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(10, 0)
				p.LineTo(10, 10)
				return p
			},
		},
		{
			name:      "closed rectangle",
			buildPath: func() *Path { return Rectangle(0, 0, 10, 10) },
		},
		{
			name: "path with quadratic",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.QuadraticTo(5, 10, 10, 0)
				return p
			},
		},
		{
			name: "path with cubic",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.CubicTo(3, 10, 7, 10, 10, 0)
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.buildPath()
			reversed := original.Reversed()

			if original.SegmentCount() != reversed.SegmentCount() {
				t.Errorf("reversed segment count = %d, want %d", reversed.SegmentCount(), original.SegmentCount())
			}
			if original.Closed() != reversed.Closed() {
				t.Errorf("reversed closed = %v, want %v", reversed.Closed(), original.Closed())
			}
			if original.SegmentCount() == 0 {
				return
			}

			if original.Closed() {
				// Reversing a closed path once flips its winding: the
				// area keeps its magnitude and changes sign.
				if math.Abs(original.Area()+reversed.Area()) > 1e-6 {
					t.Errorf("reversed area = %v, want %v", reversed.Area(), -original.Area())
				}
				return
			}

			// Open paths: endpoints swap.
			if original.FirstSegment().Point.Distance(reversed.LastSegment().Point) > 1e-9 {
				t.Error("original first point should match reversed last point")
			}
			if original.LastSegment().Point.Distance(reversed.FirstSegment().Point) > 1e-9 {
				t.Error("original last point should match reversed first point")
			}
		})
	}
}

// TestPathLength tests the Length() method.
func TestPathLength(t *testing.T) {
	tests := []struct {
		name       string
		buildPath  func() *Path
		wantLength float64
		tolerance  float64
	}{
		{
			name: "horizontal line",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(10, 0)
				return p
			},
			wantLength: 10,
			tolerance:  0.001,
		},
		{
			name: "diagonal line",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(3, 4)
				return p
			},
			wantLength: 5,
			tolerance:  0.001,
		},
		{
			name: "square perimeter",
			buildPath: func() *Path {
				return Rectangle(0, 0, 10, 10)
			},
			wantLength: 40,
			tolerance:  0.001,
		},
		{
			name:       "circle circumference",
			buildPath:  func() *Path { return Circle(0, 0, 1) },
			wantLength: 2 * math.Pi,
			tolerance:  0.1,
		},
		{
			name:       "empty path",
			buildPath:  NewPath,
			wantLength: 0,
			tolerance:  0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.buildPath()
			got := p.Length()
			if math.Abs(got-tt.wantLength) > tt.tolerance {
				t.Errorf("Length() = %v, want %v (tolerance %v)", got, tt.wantLength, tt.tolerance)
			}
		})
	}
}

// TestBoundsWithCurves tests that bounds correctly include curve extrema.
func TestBoundsWithCurves(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(5, 10, 10, 0)

	bbox := p.Bounds()

	if bbox.Max.Y < 4 {
		t.Errorf("Bounds max Y = %v, expected >= 4 (curve should bulge up)", bbox.Max.Y)
	}
}

// TestContainsWithCurves tests containment for paths with curves.
func TestContainsWithCurves(t *testing.T) {
	p := Circle(5, 5, 3)

	tests := []struct {
		point Point
		want  bool
	}{
		{Pt(5, 5), true},
		{Pt(5, 7), true},
		{Pt(5, 9), false},
		{Pt(0, 0), false},
		{Pt(5, 2.5), true},
	}

	for _, tt := range tests {
		got := p.Contains(tt.point)
		if got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

// TestEmptyPathOperations tests that empty paths handle all operations gracefully.
func TestEmptyPathOperations(t *testing.T) {
	p := NewPath()

	if area := p.Area(); area != 0 {
		t.Errorf("Empty path Area() = %v, want 0", area)
	}

	if c := p.Contains(Pt(0, 0)); c {
		t.Errorf("Empty path Contains() = %v, want false", c)
	}

	bbox := p.Bounds()
	if bbox.Width() != 0 || bbox.Height() != 0 {
		t.Errorf("Empty path Bounds() = %v, want zero rect", bbox)
	}

	flat := p.Flatten(1.0)
	if flat.SegmentCount() != 0 {
		t.Errorf("Empty path Flatten() has %d segments, want 0", flat.SegmentCount())
	}

	rev := p.Reversed()
	if rev.SegmentCount() != 0 {
		t.Errorf("Empty path Reversed() has %d segments, want 0", rev.SegmentCount())
	}

	if l := p.Length(); l != 0 {
		t.Errorf("Empty path Length() = %v, want 0", l)
	}
}
