package pathops

// PathItem is implemented by both Path and CompoundPath: anything the
// boolean operators and the external SVG/constructor collaborators can
// produce or consume.
type PathItem interface {
	Bounds() Rect
	Area() float64
	IsEmptyItem() bool
	CloneItem() PathItem
	isPathItem()
}

// FillRule selects how Contains and the boolean winding classifier turn
// a winding number into an inside/outside decision.
type FillRule int

const (
	// NonZero treats any non-zero winding number as inside.
	NonZero FillRule = iota
	// EvenOdd treats an odd winding number as inside.
	EvenOdd
)

// windingInside applies rule to a winding number, the one place that
// decision is made so Path.ContainsRule, CompoundPath.ContainsRule,
// reorientPaths and the boolean operator winding combination all agree
// on it.
func windingInside(w int, rule FillRule) bool {
	if rule == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// Path is an ordered list of Segments plus a closed flag. A closed path
// of n segments has n curves; an open one has n-1. Paths own their
// Segments outright: removing a segment from a path detaches it.
type Path struct {
	segments []*Segment
	closed   bool
	version  int

	lengthValid bool
	length      float64
	areaValid   bool
	area        float64
	boundsValid bool
	bounds      Rect

	FillRule FillRule
}

func (*Path) isPathItem() {}

// NewPath creates an empty, open path.
func NewPath() *Path {
	return &Path{}
}

// NewPathFromSegments creates a path that takes ownership of clones of
// the given segments, with the given closed flag.
func NewPathFromSegments(segments []*Segment, closed bool) *Path {
	p := &Path{closed: closed}
	p.segments = make([]*Segment, len(segments))
	for i, s := range segments {
		p.segments[i] = s.Clone()
	}
	p.reindex(0)
	p.changed(changeSegments)
	return p
}

// changed invalidates whichever caches the given flags imply and, for
// changeSegments, bumps the version counter CurveLocation uses to detect
// staleness.
func (p *Path) changed(flags changeFlags) {
	p.lengthValid = false
	p.areaValid = false
	p.boundsValid = false
	if flags&changeSegments != 0 {
		p.version++
	}
}

// Version returns the path's segment-mutation counter.
func (p *Path) Version() int { return p.version }

// Closed reports whether the path is closed.
func (p *Path) Closed() bool { return p.closed }

// IsEmpty reports whether the path has zero segments.
func (p *Path) IsEmpty() bool { return len(p.segments) == 0 }

// IsEmptyItem implements PathItem.
func (p *Path) IsEmptyItem() bool { return p.IsEmpty() }

// Segments returns the path's segments. The returned slice aliases
// internal storage; callers must not retain it across mutations.
func (p *Path) Segments() []*Segment { return p.segments }

// SegmentCount returns the number of segments.
func (p *Path) SegmentCount() int { return len(p.segments) }

// CurveCount returns the number of curves: SegmentCount() for a closed
// path, SegmentCount()-1 for an open one (0 if fewer than 2 segments).
func (p *Path) CurveCount() int {
	n := len(p.segments)
	if n == 0 {
		return 0
	}
	if p.closed {
		return n
	}
	if n < 2 {
		return 0
	}
	return n - 1
}

// Curves returns views over all curves of the path in order.
func (p *Path) Curves() []Curve {
	n := p.CurveCount()
	out := make([]Curve, n)
	for i := 0; i < n; i++ {
		out[i] = Curve{path: p, index: i}
	}
	return out
}

// Curve returns the curve starting at segment index i.
func (p *Path) Curve(i int) Curve {
	return Curve{path: p, index: i}
}

// Segment returns the segment at index i.
func (p *Path) Segment(i int) *Segment { return p.segments[i] }

// FirstSegment returns the first segment, or nil if empty.
func (p *Path) FirstSegment() *Segment {
	if len(p.segments) == 0 {
		return nil
	}
	return p.segments[0]
}

// LastSegment returns the last segment, or nil if empty.
func (p *Path) LastSegment() *Segment {
	if len(p.segments) == 0 {
		return nil
	}
	return p.segments[len(p.segments)-1]
}

// reindex fixes the index and path back-pointer of every segment from
// `from` onward (call after any splice that may have shifted positions).
func (p *Path) reindex(from int) {
	for i := from; i < len(p.segments); i++ {
		p.segments[i].path = p
		p.segments[i].index = i
	}
}

// Add appends segments to the end of the path.
func (p *Path) Add(segments ...*Segment) {
	p.Insert(len(p.segments), segments...)
}

// Insert splices segments into the path starting at index at,
// re-indexing every segment from at onward and invalidating caches.
// Segments already owned by another path are cloned first.
func (p *Path) Insert(at int, segments ...*Segment) {
	if len(segments) == 0 {
		return
	}
	cloned := make([]*Segment, len(segments))
	for i, s := range segments {
		if s.path != nil {
			cloned[i] = s.Clone()
		} else {
			cloned[i] = s
		}
	}
	tail := append([]*Segment{}, p.segments[at:]...)
	p.segments = append(append(p.segments[:at], cloned...), tail...)
	p.reindex(at)
	p.changed(changeSegments)
}

// RemoveSegments removes the half-open range [start,end) of segments,
// detaching each one (nulling its back-pointer), and returns them.
func (p *Path) RemoveSegments(start, end int) []*Segment {
	if start < 0 {
		start = 0
	}
	if end > len(p.segments) {
		end = len(p.segments)
	}
	if start >= end {
		return nil
	}
	removed := make([]*Segment, end-start)
	copy(removed, p.segments[start:end])
	for _, s := range removed {
		s.path = nil
		s.index = -1
	}
	p.segments = append(p.segments[:start], p.segments[end:]...)
	p.reindex(start)
	p.changed(changeSegments)
	return removed
}

// RemoveSegment removes a single segment at index i.
func (p *Path) RemoveSegment(i int) *Segment {
	removed := p.RemoveSegments(i, i+1)
	if len(removed) == 0 {
		return nil
	}
	return removed[0]
}

// SetClosed opens or closes the path. Closing an open path creates an
// implicit closing curve between the last and first segment; opening a
// closed path simply drops that implicit curve (segments are unchanged
// either way).
func (p *Path) SetClosed(closed bool) {
	if p.closed == closed {
		return
	}
	p.closed = closed
	p.changed(changeSegments)
}

// Clone returns a deep copy of the path: new Segment values, independent
// of the original's mutations.
func (p *Path) Clone() *Path {
	out := NewPathFromSegments(p.segments, p.closed)
	out.FillRule = p.FillRule
	return out
}

// CloneItem implements PathItem.
func (p *Path) CloneItem() PathItem { return p.Clone() }

// Reverse reverses the segment order and swaps each segment's
// handleIn/handleOut so the path traces the same shape in the opposite
// direction.
func (p *Path) Reverse() {
	n := len(p.segments)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		p.segments[i], p.segments[j] = p.segments[j], p.segments[i]
	}
	for _, s := range p.segments {
		s.Reverse()
	}
	p.reindex(0)
	p.changed(changeSegments)
}

// Reversed returns a reversed copy, leaving the receiver untouched.
func (p *Path) Reversed() *Path {
	c := p.Clone()
	c.Reverse()
	return c
}

// Transform applies matrix to every segment's point and handles (handles
// are rotated/scaled but never translated, since they are relative
// vectors).
func (p *Path) Transform(m Matrix) {
	linear := Matrix{A: m.A, B: m.B, D: m.D, E: m.E}
	for _, s := range p.segments {
		s.Point = m.TransformPoint(s.Point)
		s.HandleIn = linear.TransformVector(s.HandleIn)
		s.HandleOut = linear.TransformVector(s.HandleOut)
	}
	p.changed(changeGeometry)
}

// Transformed returns a transformed copy, leaving the receiver untouched.
func (p *Path) Transformed(m Matrix) *Path {
	c := p.Clone()
	c.Transform(m)
	return c
}

// Translate, RotateAround and ScaleAround are Transform convenience
// wrappers for the common affine operations.
func (p *Path) Translate(dx, dy float64) { p.Transform(Translate(dx, dy)) }

func (p *Path) RotateAround(angle float64, center Point) {
	p.Transform(Translate(center.X, center.Y).Append(Rotate(angle)).Append(Translate(-center.X, -center.Y)))
}

func (p *Path) ScaleAround(sx, sy float64, center Point) {
	p.Transform(Translate(center.X, center.Y).Append(Scale(sx, sy)).Append(Translate(-center.X, -center.Y)))
}

// --- Fluent builder surface, mirroring the source library's immediate-
// mode drawing API but writing into the segment model instead of an
// element list. ---

// MoveTo starts the path at (x, y), discarding any existing segments.
func (p *Path) MoveTo(x, y float64) *Path {
	p.segments = []*Segment{NewSegment(Pt(x, y))}
	p.closed = false
	p.reindex(0)
	p.changed(changeSegments)
	return p
}

// noCurrentPointError is the caller-logic error raised by the drawing
// verbs below when called before MoveTo has established a starting
// segment.
type noCurrentPointError struct{}

func (noCurrentPointError) Error() string { return "pathops: no current point; call MoveTo first" }

// ErrNoCurrentPoint is the sentinel panicked by LineTo/CubicTo/QuadraticTo/
// Close when the path has no segments yet.
var ErrNoCurrentPoint error = noCurrentPointError{}

func (p *Path) requireCurrent() {
	if len(p.segments) == 0 {
		panic(ErrNoCurrentPoint)
	}
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.requireCurrent()
	p.segments = append(p.segments, NewSegment(Pt(x, y)))
	p.reindex(len(p.segments) - 1)
	p.changed(changeSegments)
	return p
}

// QuadraticTo appends a quadratic Bezier, elevated exactly to the
// equivalent cubic via C1 = P0 + 2/3(Q-P0), C2 = P1 + 2/3(Q-P1).
func (p *Path) QuadraticTo(cx, cy, x, y float64) *Path {
	p.requireCurrent()
	prev := p.LastSegment()
	q := Pt(cx, cy)
	end := Pt(x, y)
	c1 := prev.Point.Add(q.Sub(prev.Point).Mul(2.0 / 3.0))
	c2 := end.Add(q.Sub(end).Mul(2.0 / 3.0))
	return p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
}

// CubicTo appends a cubic Bezier with absolute control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.requireCurrent()
	prev := p.LastSegment()
	c1 := Pt(c1x, c1y)
	c2 := Pt(c2x, c2y)
	end := Pt(x, y)
	prev.SetHandleOut(c1.Sub(prev.Point))
	next := WithHandles(end, c2.Sub(end), Point{})
	p.segments = append(p.segments, next)
	p.reindex(len(p.segments) - 1)
	p.changed(changeSegments)
	return p
}

// Close marks the path closed, joining the last segment back to the
// first with an implicit curve.
func (p *Path) Close() *Path {
	p.requireCurrent()
	p.SetClosed(true)
	return p
}

// Clear empties the path back to its zero state.
func (p *Path) Clear() {
	for _, s := range p.segments {
		s.path = nil
		s.index = -1
	}
	p.segments = nil
	p.closed = false
	p.changed(changeSegments)
}

// DivideAtTime splits the curve at index curveIndex at parameter t,
// inserting a new segment and returning it.
func (p *Path) DivideAtTime(curveIndex int, t float64) *Segment {
	c := p.Curve(curveIndex)
	v := c.Bezier()
	left, right := v.GetPart(0, t), v.GetPart(t, 1)

	s1 := c.Segment1()
	s2 := c.Segment2()
	s1.SetHandleOut(left.P1.Sub(left.P0))
	newSeg := WithHandles(left.P3, left.P2.Sub(left.P3), right.P1.Sub(right.P0))
	s2.SetHandleIn(right.P2.Sub(right.P3))

	insertAt := curveIndex + 1
	if insertAt > len(p.segments) {
		insertAt = len(p.segments)
	}
	p.Insert(insertAt, newSeg)
	return p.segments[insertAt]
}

// interiorPoint returns a point guaranteed to lie inside the path (used
// by reorientPaths and winding propagation): the bounds center if it
// tests as inside, otherwise the midpoint of the first two crossings of
// a horizontal ray through the bounds center.
func (p *Path) interiorPoint() Point {
	b := p.Bounds()
	center := b.CenterPoint()
	if p.ContainsRule(center, NonZero) {
		return center
	}
	xs := p.rayCrossingsX(center.Y)
	if len(xs) >= 2 {
		return Point{X: (xs[0] + xs[1]) / 2, Y: center.Y}
	}
	return center
}

func (p *Path) rayCrossingsX(y float64) []float64 {
	var xs []float64
	for _, c := range p.Curves() {
		v := c.Bezier()
		roots := make([]float64, 4)
		a := -v.P0.Y + 3*v.P1.Y - 3*v.P2.Y + v.P3.Y
		b := 3*v.P0.Y - 6*v.P1.Y + 3*v.P2.Y
		cc := -3*v.P0.Y + 3*v.P1.Y
		d := v.P0.Y - y
		n := solveCubicClipped(a, b, cc, d, 0, 1, roots)
		for i := 0; i < n; i++ {
			xs = append(xs, v.Eval(roots[i]).X)
		}
	}
	insertionSortFloats(xs)
	return xs
}

func insertionSortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
