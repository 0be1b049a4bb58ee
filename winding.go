package pathops

// Winding propagation: after two prepared operands have been divided at
// their mutual intersections, every curve of operand A needs to know
// its winding number against operand B (and vice versa) to decide
// whether the boolean operator keeps it. A curve's own winding against
// its sibling children within the same operand is already baked into
// that operand's consistent orientation from reorientPaths, so only the
// cross-operand winding needs computing here.

// curveWindingAgainst returns the raw winding number of other at a point
// guaranteed to lie just off curve c's midpoint, along its normal.
// Sampling slightly off the curve rather than exactly on it sidesteps
// the boundary case (a point exactly on the boundary has an ambiguous
// winding number under pure ray casting); the offset is small enough to
// stay within the same topological region the curve bounds for any
// curve with non-negligible length. The raw number is turned into an
// inside/outside verdict by computeWindingMap, using other's own
// FillRule rather than assuming NonZero.
func curveWindingAgainst(c CubicBez, other *CompoundPath) int {
	t := 0.5
	p := c.Eval(t)
	tangent := c.Tangent(t)
	if tangent.X == 0 && tangent.Y == 0 {
		// Degenerate midpoint tangent (cusp): fall back to the chord
		// direction, which is never zero for a non-degenerate curve.
		tangent = c.P3.Sub(c.P0)
	}
	normal := tangent.Perp().Normalize()
	offset := GeometricEpsilon * 1000
	sample := Point{X: p.X + normal.X*offset, Y: p.Y + normal.Y*offset}

	var w int
	for _, child := range other.children {
		w += child.windingNumber(sample)
	}
	return w
}

// computeWindingMap computes, for every curve of cp, whether it lies
// inside other (per other's own FillRule), keyed by (child index, curve
// index).
type curveKey struct {
	child int
	curve int
}

func computeWindingMap(cp *CompoundPath, other *CompoundPath) map[curveKey]bool {
	out := make(map[curveKey]bool)
	for ci, child := range cp.children {
		for vi, c := range child.Curves() {
			if !c.HasLength(GeometricEpsilon) {
				continue
			}
			w := curveWindingAgainst(c.Bezier(), other)
			inside := windingInside(w, other.FillRule)
			Logger().Debug("winding propagation", "child", ci, "curve", vi, "winding", w,
				"rule", other.FillRule, "inside", inside)
			out[curveKey{ci, vi}] = inside
		}
	}
	return out
}
