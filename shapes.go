package pathops

import "math"

// Shape constructors build a fresh, closed Path in clockwise orientation
// under the library's y-down convention (so Area() > 0), mirroring the
// source library's Rectangle/Circle/Ellipse/Arc/Line/RegularPolygon/Star
// family as free functions over the segment-based Path rather than
// methods mutating an existing one.

// Rectangle returns a closed rectangular path with corner (x, y) and the
// given width and height.
func Rectangle(x, y, w, h float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// Ellipse returns a closed elliptical path centered at (cx, cy) with the
// given radii, built from four cubic arcs using the Kappa constant.
func Ellipse(cx, cy, rx, ry float64) *Path {
	kx := Kappa * rx
	ky := Kappa * ry

	p := NewPath()
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return p
}

// Circle returns a closed circular path centered at (cx, cy) with the
// given radius.
func Circle(cx, cy, r float64) *Path {
	return Ellipse(cx, cy, r, r)
}

// Arc returns a closed pie-slice path: the arc of the circle centered at
// (cx, cy) with the given radius from startAngle to endAngle (radians,
// clockwise in y-down screen space), plus the two radii closing it back
// to the center. A zero radius degrades to an empty path rather than a
// degenerate loop, per the library's degenerate-geometry fallback policy.
func Arc(cx, cy, r, startAngle, endAngle float64) *Path {
	if r <= 0 {
		return NewPath()
	}
	sweep := endAngle - startAngle
	if sweep == 0 {
		return NewPath()
	}
	segments := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := sweep / float64(segments)
	k := Kappa * r * (step / (math.Pi / 2))

	p := NewPath()
	p.MoveTo(cx, cy)
	start := Pt(cx+r*math.Cos(startAngle), cy+r*math.Sin(startAngle))
	p.LineTo(start.X, start.Y)

	for i := 0; i < segments; i++ {
		a0 := startAngle + float64(i)*step
		a1 := a0 + step
		p0 := Pt(cx+r*math.Cos(a0), cy+r*math.Sin(a0))
		p1 := Pt(cx+r*math.Cos(a1), cy+r*math.Sin(a1))
		t0 := Point{X: -math.Sin(a0), Y: math.Cos(a0)}
		t1 := Point{X: -math.Sin(a1), Y: math.Cos(a1)}
		c1 := p0.Add(t0.Mul(k))
		c2 := p1.Sub(t1.Mul(k))
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p1.X, p1.Y)
	}
	p.Close()
	return p
}

// Line returns an open two-segment path from (x0, y0) to (x1, y1). A
// straight line encloses no area, so unlike the other constructors it is
// left open rather than closed.
func Line(x0, y0, x1, y1 float64) *Path {
	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p
}

// RegularPolygon returns a closed regular polygon centered at (cx, cy)
// with the given circumradius and number of sides. Fewer than 3 sides
// degrades to an empty path.
func RegularPolygon(cx, cy, radius float64, sides int) *Path {
	p := NewPath()
	if sides < 3 {
		return p
	}
	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2
	for i := 0; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

// Star returns a closed alternating-radius star centered at (cx, cy).
// Fewer than 3 points degrades to an empty path.
func Star(cx, cy, outerRadius, innerRadius float64, points int) *Path {
	p := NewPath()
	if points < 3 {
		return p
	}
	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2
	for i := 0; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

// RoundedRectangle returns a closed rectangle with corners rounded to
// radius r, clamped to half the smaller dimension.
func RoundedRectangle(x, y, w, h, r float64) *Path {
	r = min(r, min(w, h)/2)
	k := Kappa * r

	p := NewPath()
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	p.Close()
	return p
}
