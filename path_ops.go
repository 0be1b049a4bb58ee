package pathops

import "math"

// Path-level geometric queries: area, winding/containment, bounds,
// flattening and arc length. The underlying per-curve math (area,
// length, flatness) lives in curve_geometry.go and operates on the
// stateless CubicBez so it can be shared with the intersection and
// winding-propagation code.

// Area returns the signed area enclosed by the path, using Green's
// theorem (shoelace formula extended to curves): positive for clockwise
// paths in this library's y-down convention, negative for
// counter-clockwise. An open path is treated as implicitly closed by a
// straight line from its last point back to its first, matching the
// convention used throughout the boolean operators.
func (p *Path) Area() float64 {
	if p.areaValid {
		return p.area
	}
	n := len(p.segments)
	if n < 2 {
		p.area, p.areaValid = 0, true
		return 0
	}
	var area float64
	for _, c := range p.Curves() {
		area += c.Area()
	}
	if !p.closed {
		area += lineArea(p.segments[n-1].Point, p.segments[0].Point)
	}
	p.area, p.areaValid = area, true
	return area
}

// lineArea computes the signed-area contribution of a line segment via
// the shoelace formula.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// cubicArea computes the signed area contribution of a cubic Bezier
// relative to the origin (used both directly and via CubicBez.Area).
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// windingNumber computes the ray-casting winding number of pt against
// the path, treating an open path as implicitly closed. This is the
// query used by Contains/ContainsRule; the crossing-propagation winding
// used internally by the boolean operators lives in winding.go, which
// applies this same count to a point sampled just off each curve along
// its normal.
func (p *Path) windingNumber(pt Point) int {
	n := len(p.segments)
	if n < 2 {
		return 0
	}
	var w int
	for _, c := range p.Curves() {
		w += curveWinding(c.Bezier(), pt)
	}
	if !p.closed {
		w += lineWinding(p.segments[n-1].Point, p.segments[0].Point, pt)
	}
	return w
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// curveWinding computes the winding contribution of a cubic Bezier by
// adaptive flattening.
func curveWinding(c CubicBez, pt Point) int {
	minY := math.Min(math.Min(c.P0.Y, c.P1.Y), math.Min(c.P2.Y, c.P3.Y))
	maxY := math.Max(math.Max(c.P0.Y, c.P1.Y), math.Max(c.P2.Y, c.P3.Y))
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}
	maxX := math.Max(math.Max(c.P0.X, c.P1.X), math.Max(c.P2.X, c.P3.X))
	if pt.X > maxX {
		return 0
	}
	var winding int
	curveWindingRecursive(c, pt, 0.1, &winding, 0)
	return winding
}

func curveWindingRecursive(c CubicBez, pt Point, tolerance float64, winding *int, depth int) {
	if depth >= RecursionLimit || cubicFlatness(c) <= tolerance {
		*winding += lineWinding(c.P0, c.P3, pt)
		return
	}
	c1, c2 := c.Subdivide()
	curveWindingRecursive(c1, pt, tolerance, winding, depth+1)
	curveWindingRecursive(c2, pt, tolerance, winding, depth+1)
}

// cubicFlatness returns a (squared-scale) measure of how far the cubic's
// control points stray from its chord.
func cubicFlatness(c CubicBez) float64 {
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y
	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// ContainsRule tests pt against the path using the given fill rule.
func (p *Path) ContainsRule(pt Point, rule FillRule) bool {
	return windingInside(p.windingNumber(pt), rule)
}

// Contains tests pt against the path using its own FillRule (NonZero by default).
func (p *Path) Contains(pt Point) bool {
	return p.ContainsRule(pt, p.FillRule)
}

// Bounds returns the path's cached bounding box, covering every curve's
// tight extrema.
func (p *Path) Bounds() Rect {
	if p.boundsValid {
		return p.bounds
	}
	if len(p.segments) == 0 {
		p.bounds, p.boundsValid = Rect{}, true
		return p.bounds
	}
	b := NewRect(p.segments[0].Point, p.segments[0].Point)
	for _, c := range p.Curves() {
		b = b.Union(c.Bezier().BoundingBox())
	}
	if !p.closed && len(p.segments) > 0 {
		last := p.segments[len(p.segments)-1].Point
		b = b.Union(NewRect(last, last))
	}
	p.bounds, p.boundsValid = b, true
	return b
}

// StrokeBounds returns Bounds padded uniformly by half the given stroke
// width, a convenience for callers that need room for a stroked outline.
func (p *Path) StrokeBounds(strokeWidth float64) Rect {
	return p.Bounds().Pad(strokeWidth / 2)
}

// Flatten returns a new open-or-closed Path with every curve replaced by
// a polyline approximating it to within flatness.
func (p *Path) Flatten(flatness float64) *Path {
	if flatness <= 0 {
		flatness = 0.1
	}
	out := NewPath()
	if len(p.segments) == 0 {
		return out
	}
	out.MoveTo(p.segments[0].Point.X, p.segments[0].Point.Y)
	for _, c := range p.Curves() {
		if c.IsStraight() {
			pt := c.Point2()
			out.LineTo(pt.X, pt.Y)
			continue
		}
		flattenCubicRecursive(c.Bezier(), flatness*flatness, func(pt Point) {
			out.LineTo(pt.X, pt.Y)
		})
	}
	if p.closed {
		out.Close()
	}
	return out
}

func flattenCubicRecursive(c CubicBez, toleranceSq float64, fn func(pt Point)) {
	if cubicFlatness(c) <= toleranceSq*16 {
		fn(c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubicRecursive(c1, toleranceSq, fn)
	flattenCubicRecursive(c2, toleranceSq, fn)
}

// Length returns the path's cached total arc length.
func (p *Path) Length() float64 {
	if p.lengthValid {
		return p.length
	}
	var length float64
	for _, c := range p.Curves() {
		length += c.Length()
	}
	p.length, p.lengthValid = length, true
	return length
}

// cubicLengthRecursive recursively computes cubic arc length by
// comparing chord length against control-polygon length.
func cubicLengthRecursive(c CubicBez, accuracySq float64) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	diff := polygon - chord
	if diff*diff <= accuracySq {
		return (chord + polygon) / 2
	}
	c1, c2 := c.Subdivide()
	return cubicLengthRecursive(c1, accuracySq) + cubicLengthRecursive(c2, accuracySq)
}
