package pathops

// Curve is a view over a consecutive pair of segments belonging to the
// same Path: segments[index] and its successor (wrapping for the
// closing curve of a closed path). It never owns data; mutate the
// underlying Segments instead. Curve equality is identity-by-(path,
// index), matching the source library's convention.
type Curve struct {
	path  *Path
	index int
}

// NewCurve returns a view of the curve starting at segment index within
// path. Panics if index is out of range for path's curve count.
func NewCurve(path *Path, index int) Curve {
	if index < 0 || index >= path.CurveCount() {
		panic("pathops: curve index out of range")
	}
	return Curve{path: path, index: index}
}

// Path returns the owning path.
func (c Curve) Path() *Path { return c.path }

// Index returns the starting segment index.
func (c Curve) Index() int { return c.index }

// Segment1 returns the curve's starting segment.
func (c Curve) Segment1() *Segment { return c.path.segments[c.index] }

// Segment2 returns the curve's ending segment (wraps for a closed
// path's final curve).
func (c Curve) Segment2() *Segment {
	n := len(c.path.segments)
	j := c.index + 1
	if j == n {
		j = 0
	}
	return c.path.segments[j]
}

// Values returns the 8 scalar control-point coordinates of the curve, in
// the order [p1.x, p1.y, h1.x, h1.y, h2.x, h2.y, p2.x, p2.y].
func (c Curve) Values() [8]float64 {
	s1, s2 := c.Segment1(), c.Segment2()
	h1 := s1.HandleOutAbsolute()
	h2 := s2.HandleInAbsolute()
	return [8]float64{s1.Point.X, s1.Point.Y, h1.X, h1.Y, h2.X, h2.Y, s2.Point.X, s2.Point.Y}
}

// Bezier returns the curve as a CubicBez, the representation used by all
// stateless CurveGeometry operations.
func (c Curve) Bezier() CubicBez {
	s1, s2 := c.Segment1(), c.Segment2()
	return CubicBez{
		P0: s1.Point,
		P1: s1.HandleOutAbsolute(),
		P2: s2.HandleInAbsolute(),
		P3: s2.Point,
	}
}

// Point1 returns the curve's start point.
func (c Curve) Point1() Point { return c.Segment1().Point }

// Point2 returns the curve's end point.
func (c Curve) Point2() Point { return c.Segment2().Point }

// IsStraight reports whether both control points lie within
// GeometricEpsilon of the line through the endpoints (see
// CubicBez.IsStraight); collinear handles still count as straight.
func (c Curve) IsStraight() bool {
	return c.Bezier().IsStraight(GeometricEpsilon)
}

// HasLength reports whether the curve spans more than eps.
func (c Curve) HasLength(eps float64) bool {
	return c.Bezier().HasLength(eps)
}

// Bounds returns the curve's tight bounding box, padded by padding on
// all sides.
func (c Curve) Bounds(padding float64) Rect {
	b := c.Bezier().BoundingBox()
	if padding != 0 {
		b = b.Pad(padding)
	}
	return b
}

// Length returns the arc length of the curve, computed on each call.
func (c Curve) Length() float64 {
	return c.Bezier().Length(1e-5)
}

// Area returns the curve's signed area contribution (relative to the
// origin), as used by Path.Area.
func (c Curve) Area() float64 {
	return c.Bezier().Area()
}

// Classify returns the curve's self-intersection classification.
func (c Curve) Classify() Classification {
	return c.Bezier().Classify()
}

// Equals reports whether two curve views refer to the same (path,
// index) pair.
func (c Curve) Equals(other Curve) bool {
	return c.path == other.path && c.index == other.index
}

// IsLast reports whether this is the final curve of its path (the
// closing curve, for a closed path).
func (c Curve) IsLast() bool {
	return c.index == c.path.CurveCount()-1
}

// Next returns the following curve, or the zero Curve and false at the
// end of an open path.
func (c Curve) Next() (Curve, bool) {
	n := c.path.CurveCount()
	if c.index+1 >= n {
		if c.path.closed {
			return Curve{path: c.path, index: 0}, n > 0
		}
		return Curve{}, false
	}
	return Curve{path: c.path, index: c.index + 1}, true
}

// Previous returns the preceding curve, or the zero Curve and false at
// the start of an open path.
func (c Curve) Previous() (Curve, bool) {
	if c.index == 0 {
		if c.path.closed {
			n := c.path.CurveCount()
			return Curve{path: c.path, index: n - 1}, n > 0
		}
		return Curve{}, false
	}
	return Curve{path: c.path, index: c.index - 1}, true
}
