package pathops

import "math"

// Curve-curve intersection via fat-line clipping with convex-hull
// pruning (Sederberg & Nishita). Each step bounds one curve within a
// "fat line" around its chord, then clips the other curve's convex hull
// against that band to shrink its parameter interval; recursing on
// whichever curve has the larger remaining interval converges
// quadratically once both intervals are small.

// fatLine describes the band [dMin, dMax] of signed perpendicular
// distance from the chord p0-p3 that entirely contains a cubic.
type fatLine struct {
	p0, p3   Point
	nx, ny   float64 // unit normal of the chord
	dMin, dMax float64
}

func newFatLine(c CubicBez) fatLine {
	chord := c.P3.Sub(c.P0)
	length := chord.Length()
	var nx, ny float64
	if length < Epsilon {
		nx, ny = 0, 0
	} else {
		nx, ny = -chord.Y/length, chord.X/length
	}
	signedDist := func(p Point) float64 {
		return (p.X-c.P0.X)*nx + (p.Y-c.P0.Y)*ny
	}
	d1 := signedDist(c.P1)
	d2 := signedDist(c.P2)
	dMin, dMax := 0.0, 0.0
	// A cubic lies within 3/4 of the control-point distances from the
	// chord when both control points are on the same side, and within 4/9
	// of them otherwise (standard fat-line bound).
	factor := 3.0 / 4.0
	if d1*d2 <= 0 {
		factor = 4.0 / 9.0
	}
	candidates := []float64{0, d1 * factor, d2 * factor, 0}
	dMin, dMax = candidates[0], candidates[0]
	for _, d := range candidates {
		if d < dMin {
			dMin = d
		}
		if d > dMax {
			dMax = d
		}
	}
	return fatLine{p0: c.P0, p3: c.P3, nx: nx, ny: ny, dMin: dMin, dMax: dMax}
}

func (fl fatLine) distance(p Point) float64 {
	return (p.X-fl.p0.X)*fl.nx + (p.Y-fl.p0.Y)*fl.ny
}

// clipByFatLine clips curve's parameter domain [t0,t1] (curve already
// restricted to that sub-range) against fl, returning the new sub-range
// within [0,1] relative to the already-clipped curve, and whether any
// part of the curve survives.
func clipByFatLine(c CubicBez, fl fatLine) (float64, float64, bool) {
	d0 := fl.distance(c.P0)
	d1 := fl.distance(c.P1)
	d2 := fl.distance(c.P2)
	d3 := fl.distance(c.P3)

	type pt struct{ t, d float64 }
	pts := [4]pt{{0, d0}, {1.0 / 3.0, d1}, {2.0 / 3.0, d2}, {1, d3}}

	// Build the upper and lower convex hull chains of the distance
	// function's control polygon and intersect each edge against
	// [dMin, dMax].
	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	clipEdge := func(a, b pt) {
		if a.d == b.d {
			if a.d >= fl.dMin && a.d <= fl.dMax {
				lo = math.Min(lo, math.Min(a.t, b.t))
				hi = math.Max(hi, math.Max(a.t, b.t))
				found = true
			}
			return
		}
		tLowCross := a.t + (fl.dMin-a.d)*(b.t-a.t)/(b.d-a.d)
		tHighCross := a.t + (fl.dMax-a.d)*(b.t-a.t)/(b.d-a.d)
		tMin, tMax := math.Min(tLowCross, tHighCross), math.Max(tLowCross, tHighCross)
		segMin, segMax := math.Min(a.t, b.t), math.Max(a.t, b.t)
		lo2 := math.Max(tMin, segMin)
		hi2 := math.Min(tMax, segMax)
		if a.d >= fl.dMin && a.d <= fl.dMax {
			lo2 = math.Min(lo2, a.t)
			hi2 = math.Max(hi2, a.t)
		}
		if b.d >= fl.dMin && b.d <= fl.dMax {
			lo2 = math.Min(lo2, b.t)
			hi2 = math.Max(hi2, b.t)
		}
		if lo2 <= hi2 {
			lo = math.Min(lo, lo2)
			hi = math.Max(hi, hi2)
			found = true
		}
	}
	clipEdge(pts[0], pts[1])
	clipEdge(pts[1], pts[2])
	clipEdge(pts[2], pts[3])
	clipEdge(pts[0], pts[3])

	if !found {
		return 0, 0, false
	}
	return clamp(lo, 0, 1), clamp(hi, 0, 1), true
}

// curvesOverlap reports whether two curves are (within tolerance) the
// same curve traced over their full parameter range, by sampling a
// handful of points, and whether c2 runs in the opposite direction from
// c1 if so.
func curvesOverlap(c1, c2 CubicBez) (reversed, ok bool) {
	if c1.P0.Distance(c2.P0) > GeometricEpsilon*50 && c1.P0.Distance(c2.P3) > GeometricEpsilon*50 {
		return false, false
	}
	reversed = c1.P0.Distance(c2.P3) < c1.P0.Distance(c2.P0)
	other := c2
	if reversed {
		other = CubicBez{P0: c2.P3, P1: c2.P2, P2: c2.P1, P3: c2.P0}
	}
	for i := 0; i <= 4; i++ {
		t := float64(i) / 4
		p := c1.Eval(t)
		if _, ok := other.GetTimeOf(p); !ok {
			return false, false
		}
	}
	return reversed, true
}

// curveIntersections finds all (t1, t2) parameter pairs where c1 and c2
// cross, via recursive fat-line clipping, and separately the (t1, t2)
// pairs marking the endpoints of a run where c1 and c2 are coincident
// (the same curve retraced, rather than crossing at an isolated point).
// The two kinds are never mixed in one slice: a coincident pair needs a
// CurveLocation tagged overlap rather than crossing so winding
// propagation and tracing treat the shared span specially (spec'd
// handling: divide there, then collapse/straighten on the caller's
// side).
func curveIntersections(c1, c2 CubicBez) (crossings, overlaps [][2]float64) {
	if reversed, ok := curvesOverlap(c1, c2); ok {
		if reversed {
			return nil, [][2]float64{{0, 1}, {1, 0}}
		}
		return nil, [][2]float64{{0, 0}, {1, 1}}
	}
	var results [][2]float64
	calls := 0
	clipRecursive(c1, c2, 0, 1, 0, 1, 0, &calls, &results)
	return dedupeParamPairs(results), nil
}

// clipRecursive narrows [a0,a1]x[b0,b1] by alternating fat-line clips
// until both intervals collapse below ClippingEpsilon or one of two
// independent bounds trips: calls, a counter shared by pointer across
// the *entire* call tree (both branches of every split increment the
// same counter), bounds total work at CallLimit; depth, incremented
// once per level of nesting and passed unchanged to both branches of a
// split, bounds how deep that tree can go at RecursionLimit. Neither
// bound being hit is fatal — the function simply stops contributing
// more pairs, leaving whatever was already appended to out.
func clipRecursive(c1, c2 CubicBez, a0, a1, b0, b1 float64, depth int, calls *int, out *[][2]float64) {
	if depth > RecursionLimit {
		Logger().Warn("fat-line clipping hit recursion limit, returning partial result",
			"limit", RecursionLimit, "calls", *calls)
		return
	}
	*calls++
	if *calls > CallLimit {
		Logger().Warn("fat-line clipping hit call limit, returning partial result",
			"limit", CallLimit, "depth", depth)
		return
	}
	if a1-a0 < ClippingEpsilon && b1-b0 < ClippingEpsilon {
		Logger().Debug("fat-line clipping converged", "depth", depth, "calls", *calls)
		*out = append(*out, [2]float64{(a0 + a1) / 2, (b0 + b1) / 2})
		return
	}
	// One curve has collapsed to a point: locate it on the other directly.
	if b1-b0 < ClippingEpsilon {
		if t, ok := c1.GetTimeOf(c2.Eval(0.5)); ok {
			*out = append(*out, [2]float64{a0 + (a1-a0)*t, (b0 + b1) / 2})
		}
		return
	}
	if a1-a0 < ClippingEpsilon {
		if t, ok := c2.GetTimeOf(c1.Eval(0.5)); ok {
			*out = append(*out, [2]float64{(a0 + a1) / 2, b0 + (b1-b0)*t})
		}
		return
	}

	bb1 := c1.BoundingBox()
	bb2 := c2.BoundingBox()
	if !boxesOverlap(bb1, bb2, GeometricEpsilon) {
		return
	}

	fl1 := newFatLine(c1)
	nb0, nb1, ok := clipByFatLine(c2, fl1)
	if !ok {
		return
	}
	newB0 := b0 + (b1-b0)*nb0
	newB1 := b0 + (b1-b0)*nb1
	clippedC2 := c2.GetPart(nb0, nb1)

	fl2 := newFatLine(clippedC2)
	na0, na1, ok2 := clipByFatLine(c1, fl2)
	if !ok2 {
		return
	}
	newA0 := a0 + (a1-a0)*na0
	newA1 := a0 + (a1-a0)*na1
	clippedC1 := c1.GetPart(na0, na1)

	reductionA := (newA1 - newA0) / math.Max(a1-a0, Epsilon)
	reductionB := (newB1 - newB0) / math.Max(b1-b0, Epsilon)

	if reductionA > 0.8 && reductionB > 0.8 && (newA1-newA0) > ClippingEpsilon {
		// Slow convergence: split the wider curve and recurse on both
		// halves to guarantee progress.
		if newA1-newA0 > newB1-newB0 {
			midA := (newA0 + newA1) / 2
			left, right := clippedC1.GetPart(0, 0.5), clippedC1.GetPart(0.5, 1)
			clipRecursive(left, clippedC2, newA0, midA, newB0, newB1, depth+1, calls, out)
			clipRecursive(right, clippedC2, midA, newA1, newB0, newB1, depth+1, calls, out)
		} else {
			midB := (newB0 + newB1) / 2
			left, right := clippedC2.GetPart(0, 0.5), clippedC2.GetPart(0.5, 1)
			clipRecursive(clippedC1, left, newA0, newA1, newB0, midB, depth+1, calls, out)
			clipRecursive(clippedC1, right, newA0, newA1, midB, newB1, depth+1, calls, out)
		}
		return
	}

	clipRecursive(clippedC1, clippedC2, newA0, newA1, newB0, newB1, depth+1, calls, out)
}

func boxesOverlap(a, b Rect, tol float64) bool {
	a = a.Pad(tol)
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X && a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

func dedupeParamPairs(pairs [][2]float64) [][2]float64 {
	var out [][2]float64
	for _, p := range pairs {
		dup := false
		for _, q := range out {
			if math.Abs(p[0]-q[0]) < CurveTimeEpsilon*10 && math.Abs(p[1]-q[1]) < CurveTimeEpsilon*10 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// GetIntersections returns the locations at which path crosses other
// (or itself, if other is nil), as matched pairs of *CurveLocation: for
// every entry in the returned slice, Intersection() gives the
// corresponding location on the other path.
func (p *Path) GetIntersections(other *Path) []*CurveLocation {
	self := other == nil || other == p
	if self {
		return p.selfIntersections()
	}

	var locs []*CurveLocation
	collisions := findCurveBoundsCollisions(p, other, GeometricEpsilon*10)
	curves1 := p.Curves()
	curves2 := other.Curves()
	for i, hits := range collisions {
		for _, j := range hits {
			pairs, overlapPairs := curveIntersections(curves1[i].Bezier(), curves2[j].Bezier())
			for _, pair := range pairs {
				l1 := NewCurveLocation(p, i, pair[0])
				l2 := NewCurveLocation(other, j, pair[1])
				locs, l1 = insertLocation(locs, l1)
				locs, l2 = insertLocation(locs, l2)
				l1.intersection = l2
				l2.intersection = l1
				l1.crossing = true
				l2.crossing = true
			}
			for _, pair := range overlapPairs {
				l1 := NewCurveLocation(p, i, pair[0])
				l2 := NewCurveLocation(other, j, pair[1])
				locs, l1 = insertLocation(locs, l1)
				locs, l2 = insertLocation(locs, l2)
				l1.intersection = l2
				l2.intersection = l1
				l1.overlap = true
				l2.overlap = true
			}
		}
	}
	return locs
}

// selfIntersections finds locations where path crosses itself, combining
// the classification-based loop test (for a single curve looping back on
// itself) with pairwise fat-line clipping between non-adjacent curves.
func (p *Path) selfIntersections() []*CurveLocation {
	var locs []*CurveLocation
	curves := p.Curves()
	n := len(curves)

	for i, c := range curves {
		cls := c.Bezier().Classify()
		if cls.Kind == KindLoop {
			l1 := NewCurveLocation(p, i, cls.LoopT[0])
			l2 := NewCurveLocation(p, i, cls.LoopT[1])
			locs, l1 = insertLocation(locs, l1)
			locs, l2 = insertLocation(locs, l2)
			l1.intersection = l2
			l2.intersection = l1
			l1.crossing = true
			l2.crossing = true
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adjacentCurves(i, j, n, p.closed) {
				continue
			}
			bb1 := curves[i].Bezier().BoundingBox()
			bb2 := curves[j].Bezier().BoundingBox()
			if !boxesOverlap(bb1, bb2, GeometricEpsilon*10) {
				continue
			}
			pairs, overlapPairs := curveIntersections(curves[i].Bezier(), curves[j].Bezier())
			for _, pair := range pairs {
				l1 := NewCurveLocation(p, i, pair[0])
				l2 := NewCurveLocation(p, j, pair[1])
				locs, l1 = insertLocation(locs, l1)
				locs, l2 = insertLocation(locs, l2)
				l1.intersection = l2
				l2.intersection = l1
				l1.crossing = true
				l2.crossing = true
			}
			for _, pair := range overlapPairs {
				l1 := NewCurveLocation(p, i, pair[0])
				l2 := NewCurveLocation(p, j, pair[1])
				locs, l1 = insertLocation(locs, l1)
				locs, l2 = insertLocation(locs, l2)
				l1.intersection = l2
				l2.intersection = l1
				l1.overlap = true
				l2.overlap = true
			}
		}
	}
	return locs
}

func adjacentCurves(i, j, n int, closed bool) bool {
	if j == i+1 || i == j+1 {
		return true
	}
	if closed && ((i == 0 && j == n-1) || (j == 0 && i == n-1)) {
		return true
	}
	return false
}
