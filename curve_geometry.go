package pathops

import "math"

// CurveGeometry operations on the stateless 8-value cubic Bezier
// represented by CubicBez: evaluate, bounds, area, length, classify and
// time-of-point. These never reference a Path or Segment; they work on
// control points alone, so the intersection kernel and winding code can
// share them without depending on the mutable path graph.

// CurveKind classifies a cubic Bezier by the behaviour of its parametric
// curve (Loop,1987 / Feature-based classification used by fat-line
// clippers to detect self-intersection).
type CurveKind int

const (
	// KindLine is a degenerate curve collinear with its chord.
	KindLine CurveKind = iota
	// KindQuadratic behaves like a quadratic (one pair of control points
	// coincide with an endpoint).
	KindQuadratic
	// KindSerpentine has an S-shaped inflection, no loop.
	KindSerpentine
	// KindCusp has a single cusp point (zero-length tangent).
	KindCusp
	// KindLoop self-intersects once, at two distinct parameter values.
	KindLoop
	// KindArch is convex with no inflection or loop.
	KindArch
)

// Classification is the result of classifying a cubic Bezier's shape.
// LoopT is populated (two distinct values within [0,1]) and HasLoop is
// true only when Kind == KindLoop; LoopT holds the two parameter values
// of the self intersection.
type Classification struct {
	Kind  CurveKind
	LoopT [2]float64
	HasLoop bool
}

// Classify determines the shape category of the cubic using the
// canonical-form discriminant method (Loop & Blinn, "Resolution
// Independent Curve Rendering using Programmable Graphics Hardware").
// Only KindLoop yields a genuine self-intersection, at the two roots
// returned in Classification.LoopT.
func (c CubicBez) Classify() Classification {
	if c.IsStraight(GeometricEpsilon) {
		return Classification{Kind: KindLine}
	}

	// Work in the affine-invariant basis formed by successive
	// differences of the control polygon.
	a1 := c.P1.Sub(c.P0)
	a2 := c.P2.Sub(c.P1)
	a3 := c.P3.Sub(c.P2)

	// Cross products give the (signed) area coefficients used by the
	// classic cubic discriminant.
	a := a1.Cross(a2)
	b := a1.Cross(a3)
	cc := a2.Cross(a3)

	discriminant := b*b - 4*a*cc

	const tol = 1e-8
	switch {
	case math.Abs(a) < tol && math.Abs(b) < tol && math.Abs(cc) < tol:
		return Classification{Kind: KindLine}
	case math.Abs(a) < tol:
		return Classification{Kind: KindQuadratic}
	case discriminant > tol:
		// Loop: find the two self-intersection parameters by solving
		// for repeated chord crossings directly.
		if t1, t2, ok := cubicLoopParams(c); ok {
			return Classification{Kind: KindLoop, LoopT: [2]float64{t1, t2}, HasLoop: true}
		}
		return Classification{Kind: KindSerpentine}
	case discriminant < -tol:
		return Classification{Kind: KindSerpentine}
	default:
		if math.Abs(discriminant) <= tol {
			return Classification{Kind: KindCusp}
		}
		return Classification{Kind: KindArch}
	}
}

// cubicLoopParams attempts to locate the two curve-time parameters at
// which a self-intersecting cubic crosses itself, by solving for two
// distinct roots t1 != t2 in (0,1) such that Eval(t1) == Eval(t2). This
// reduces to intersecting the curve with itself via the same
// line-crossing technique used for two independent curves, restricted to
// non-adjacent parameter ranges.
func cubicLoopParams(c CubicBez) (float64, float64, bool) {
	const steps = 64
	type sample struct {
		t float64
		p Point
	}
	samples := make([]sample, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		samples[i] = sample{t: t, p: c.Eval(t)}
	}
	best := -1.0
	var bestT1, bestT2 float64
	found := false
	for i := 0; i < len(samples); i++ {
		for j := i + 2; j < len(samples); j++ {
			d := samples[i].p.Distance(samples[j].p)
			if d < GeometricEpsilon*50 {
				if !found || d < best {
					bestT1, bestT2 = samples[i].t, samples[j].t
					best = d
					found = true
				}
			}
		}
	}
	if !found {
		return 0, 0, false
	}
	// Refine with a few bisection steps on each side independently,
	// holding the other parameter fixed at its coarse estimate.
	t1, t2 := bestT1, bestT2
	for iter := 0; iter < 8; iter++ {
		lo, hi := math.Max(0, t1-1.0/steps), math.Min(1, t1+1.0/steps)
		t1 = refineLoopParam(c, lo, hi, t2)
		lo, hi = math.Max(0, t2-1.0/steps), math.Min(1, t2+1.0/steps)
		t2 = refineLoopParam(c, lo, hi, t1)
	}
	if math.Abs(t1-t2) < CurveTimeEpsilon {
		return 0, 0, false
	}
	return t1, t2, true
}

func refineLoopParam(c CubicBez, lo, hi, other float64) float64 {
	target := c.Eval(other)
	best := lo
	bestD := math.MaxFloat64
	const steps = 16
	for i := 0; i <= steps; i++ {
		t := lo + (hi-lo)*float64(i)/steps
		d := c.Eval(t).Distance(target)
		if d < bestD {
			bestD = d
			best = t
		}
	}
	return best
}

// IsStraight reports whether the curve is collinear with its chord
// within tolerance: both control points lie within tolerance of the
// line through the endpoints, and (for degenerate zero-length chords)
// the handles are themselves negligible.
func (c CubicBez) IsStraight(tolerance float64) bool {
	chord := c.P3.Sub(c.P0)
	chordLen := chord.Length()
	if chordLen < Epsilon {
		// Zero-length chord: straight iff handles are also negligible.
		return c.P1.Sub(c.P0).Length() < tolerance && c.P2.Sub(c.P3).Length() < tolerance
	}
	d1 := distanceToLine(c.P1, c.P0, c.P3, chordLen)
	d2 := distanceToLine(c.P2, c.P0, c.P3, chordLen)
	return math.Abs(d1) <= tolerance && math.Abs(d2) <= tolerance
}

// distanceToLine returns the signed perpendicular distance of p from the
// infinite line through a-b, given the precomputed length of (b-a).
func distanceToLine(p, a, b Point, abLen float64) float64 {
	if abLen < Epsilon {
		return p.Distance(a)
	}
	ab := b.Sub(a)
	ap := p.Sub(a)
	return ab.Cross(ap) / abLen
}

// GetTimeOf solves for the curve parameter t at which the curve passes
// through point, by solving the cubic in x and y independently and
// keeping the candidate whose evaluated distance to point is within
// GeometricEpsilon. Returns ok=false if no such t exists in [0,1].
func (c CubicBez) GetTimeOf(point Point) (float64, bool) {
	// Fast reject using the bounding box, padded by tolerance.
	bb := c.BoundingBox().Pad(GeometricEpsilon * 10)
	if !bb.Contains(point) {
		return 0, false
	}

	candidates := []float64{0, 1}
	candidates = append(candidates, solveAxisFor(c.P0.X, c.P1.X, c.P2.X, c.P3.X, point.X)...)
	candidates = append(candidates, solveAxisFor(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, point.Y)...)

	bestT, bestD := 0.0, math.MaxFloat64
	found := false
	for _, t := range candidates {
		if t < -Epsilon || t > 1+Epsilon {
			continue
		}
		t = clamp(t, 0, 1)
		d := c.Eval(t).Distance(point)
		if d <= GeometricEpsilon && d < bestD {
			bestD = d
			bestT = t
			found = true
		}
	}
	return bestT, found
}

// solveAxisFor solves p0 + 3t(1-t)^2 ... = value for t, returning all
// real roots in [0,1] (clamped) of the corresponding cubic in Bernstein
// form shifted by value.
func solveAxisFor(p0, p1, p2, p3, value float64) []float64 {
	// Bernstein-to-power-basis coefficients for (1-t)^3 p0 + 3t(1-t)^2 p1
	// + 3t^2(1-t) p2 + t^3 p3 - value = 0.
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 3*p0 - 6*p1 + 3*p2
	cc := -3*p0 + 3*p1
	d := p0 - value

	roots := make([]float64, 4)
	n := solveCubicClipped(a, b, cc, d, 0, 1, roots)
	return roots[:n]
}

// GetPart returns the portion of the curve between parameters t0 and t1
// (t0 <= t1), computed by Subsegment.
func (c CubicBez) GetPart(t0, t1 float64) CubicBez {
	if t0 <= 0 && t1 >= 1 {
		return c
	}
	return c.Subsegment(t0, t1)
}

// Area returns the signed area contribution of this curve plus its
// closing chord back to the origin, matching the convention used by
// Path.Area: positive for clockwise curves in a y-down coordinate
// system.
func (c CubicBez) Area() float64 {
	return cubicArea(c.P0, c.P1, c.P2, c.P3)
}

// Length returns the arc length of the curve to within accuracy,
// computed by adaptive subdivision comparing chord length against
// control-polygon length (the same termination test as Path.Length).
func (c CubicBez) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = 1e-5
	}
	return cubicLengthRecursive(c, accuracy*accuracy)
}

// EvaluateDerivative evaluates the curve (order 0) or one of its
// derivatives (order 1, 2 or 3) at parameter t. Higher orders degrade
// the degree via repeated finite differencing of the control polygon,
// matching de Casteljau's derivative construction.
func (c CubicBez) EvaluateDerivative(t float64, order int) Point {
	switch order {
	case 0:
		return c.Eval(t)
	case 1:
		d := c.Deriv()
		return d.Eval(t)
	case 2:
		d := c.Deriv()
		// Derivative of a quadratic is linear: constant acceleration.
		l := Line{
			P0: Point{X: 2 * (d.P1.X - d.P0.X), Y: 2 * (d.P1.Y - d.P0.Y)},
			P1: Point{X: 2 * (d.P2.X - d.P1.X), Y: 2 * (d.P2.Y - d.P1.Y)},
		}
		return l.Eval(t)
	case 3:
		d := c.Deriv()
		accelStart := Point{X: 2 * (d.P1.X - d.P0.X), Y: 2 * (d.P1.Y - d.P0.Y)}
		accelEnd := Point{X: 2 * (d.P2.X - d.P1.X), Y: 2 * (d.P2.Y - d.P1.Y)}
		return accelEnd.Sub(accelStart)
	default:
		return Point{}
	}
}

// HasLength reports whether the curve's endpoints or handle vectors span
// more than eps: a degenerate zero-length curve (all four control points
// coincident) returns false.
func (c CubicBez) HasLength(eps float64) bool {
	return c.P0.Distance(c.P3) > eps ||
		c.P0.Distance(c.P1) > eps ||
		c.P3.Distance(c.P2) > eps
}
