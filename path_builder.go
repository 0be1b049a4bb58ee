// path_builder.go

package pathops

// PathBuilder provides a fluent interface for path construction,
// chaining freely between raw drawing verbs (MoveTo/LineTo/...) and
// whole-shape helpers (Rect/Circle/...). Each call that starts a new
// subpath (MoveTo, or any shape helper) commits whatever was being built
// before it, so chaining shapes produces one contour per shape rather
// than silently discarding all but the last.
type PathBuilder struct {
	paths   []*Path
	current *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{current: NewPath()}
}

// commit moves a non-empty current path into the finished list and
// starts a fresh one.
func (b *PathBuilder) commit() {
	if !b.current.IsEmpty() {
		b.paths = append(b.paths, b.current)
	}
	b.current = NewPath()
}

// MoveTo starts a new subpath at (x, y), committing whatever subpath was
// under construction.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.commit()
	b.current.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.current.LineTo(x, y)
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.current.QuadraticTo(cx, cy, x, y)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.current.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.current.Close()
	return b
}

// appendShape commits the current subpath and adopts shape as the next
// one, so a shape helper behaves like MoveTo-then-draw for chaining
// purposes. An empty shape (e.g. a Polygon/Star call with too few
// vertices) commits as a no-op, matching the raw-verb builder's
// behavior of never emitting a degenerate subpath.
func (b *PathBuilder) appendShape(shape *Path) *PathBuilder {
	b.commit()
	b.current = shape
	return b
}

// Rect adds a rectangle as its own subpath.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	return b.appendShape(Rectangle(x, y, w, h))
}

// RoundRect adds a rounded rectangle as its own subpath.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	return b.appendShape(RoundedRectangle(x, y, w, h, r))
}

// Circle adds a circle as its own subpath.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.appendShape(Circle(cx, cy, r))
}

// Ellipse adds an ellipse as its own subpath.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	return b.appendShape(Ellipse(cx, cy, rx, ry))
}

// Polygon adds a regular polygon as its own subpath. Fewer than 3 sides
// is a no-op.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	return b.appendShape(RegularPolygon(cx, cy, radius, sides))
}

// Star adds a star shape as its own subpath. Fewer than 3 points is a
// no-op.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float64, points int) *PathBuilder {
	return b.appendShape(Star(cx, cy, outerRadius, innerRadius, points))
}

// Build commits any in-progress subpath and returns the result: a bare
// *Path when exactly one subpath was drawn, otherwise a *CompoundPath
// (empty when none was).
func (b *PathBuilder) Build() PathItem {
	b.commit()
	switch len(b.paths) {
	case 0:
		return NewPath()
	case 1:
		return b.paths[0]
	default:
		return NewCompoundPath(b.paths...)
	}
}

// Path returns the single subpath built so far as a bare *Path. It
// panics if the builder has produced more than one subpath; use Build
// for the general case.
func (b *PathBuilder) Path() *Path {
	b.commit()
	switch len(b.paths) {
	case 0:
		return NewPath()
	case 1:
		return b.paths[0]
	default:
		panic("pathops: PathBuilder.Path called with multiple subpaths; use Build")
	}
}
