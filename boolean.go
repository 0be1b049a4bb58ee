package pathops

// Boolean path operations: Unite, Intersect, Subtract, Exclude and
// Divide, each taking two PathItem operands (Path or CompoundPath) and
// returning a PathItem holding the result, reduced to a bare *Path when
// the result has exactly one contour.
//
// Every operator follows the same pipeline: prepare both operands
// (clone, close, resolve self-crossings, reorient), find and divide
// their mutual intersections, compute each remaining curve's winding
// number against the other operand, keep (and possibly reverse) curves
// per the operator's rule, and trace the kept curves back into closed
// contours.

// operatorRule decides, for a curve that started life on operand index
// 0 (A) or 1 (B), whether to keep it given whether it lies inside the
// *other* operand (per that operand's own FillRule — see
// computeWindingMap), and whether to reverse its direction in the
// result.
type operatorRule struct {
	keep    func(onA bool, insideOther bool) bool
	reverse func(onA bool, insideOther bool) bool
}

var (
	uniteRule = operatorRule{
		keep:    func(onA bool, inside bool) bool { return !inside },
		reverse: func(onA bool, inside bool) bool { return false },
	}
	intersectRule = operatorRule{
		keep:    func(onA bool, inside bool) bool { return inside },
		reverse: func(onA bool, inside bool) bool { return false },
	}
	subtractRule = operatorRule{
		keep: func(onA bool, inside bool) bool {
			if onA {
				return !inside
			}
			return inside
		},
		reverse: func(onA bool, inside bool) bool { return !onA },
	}
	excludeRule = operatorRule{
		keep:    func(onA bool, inside bool) bool { return true },
		reverse: func(onA bool, inside bool) bool { return inside },
	}
)

// Unite returns the union of a and b: every point inside either operand.
func Unite(a, b PathItem) PathItem {
	return runOperator(a, b, uniteRule)
}

// Intersect returns the intersection of a and b: every point inside both.
func Intersect(a, b PathItem) PathItem {
	return runOperator(a, b, intersectRule)
}

// Subtract returns a with b removed: every point inside a but not b.
func Subtract(a, b PathItem) PathItem {
	return runOperator(a, b, subtractRule)
}

// Exclude returns the symmetric difference of a and b: every point
// inside exactly one operand.
func Exclude(a, b PathItem) PathItem {
	return runOperator(a, b, excludeRule)
}

// Divide returns every maximal region formed by overlaying a and b: the
// parts of a outside b, the parts of b outside a, and their
// intersection, as separate contours of one CompoundPath (reduced to a
// bare *Path when only one contour remains).
func Divide(a, b PathItem) PathItem {
	aOnly := Subtract(a, b)
	inter := Intersect(a, b)
	bOnly := Subtract(b, a)

	out := &CompoundPath{}
	for _, item := range []PathItem{aOnly, inter, bOnly} {
		switch v := item.(type) {
		case *Path:
			if !v.IsEmpty() {
				out.children = append(out.children, v)
			}
		case *CompoundPath:
			out.children = append(out.children, v.children...)
		}
	}
	return out.reduce()
}

// fastPathDisjoint reports whether a and b's overall bounding boxes
// don't even overlap, the cheap short-circuit described for unite and
// intersect: a trivial union is just both operands concatenated, and a
// trivial intersection is empty.
func fastPathDisjoint(a, b Rect) bool {
	return !boxesOverlap(a, b, GeometricEpsilon)
}

func runOperator(a, b PathItem, rule operatorRule) PathItem {
	if a.IsEmptyItem() && b.IsEmptyItem() {
		return NewPath()
	}
	if a.IsEmptyItem() {
		return onlyOperand(b, rule, false)
	}
	if b.IsEmptyItem() {
		return onlyOperand(a, rule, true)
	}

	cpA := prepareItem(a)
	cpB := prepareItem(b)

	if fastPathDisjoint(cpA.Bounds(), cpB.Bounds()) {
		return fastPathResult(cpA, cpB, rule)
	}

	mutual := findMutualIntersections(cpA, cpB)
	if len(mutual) > 0 {
		divideLocations(mutual)
	}

	windingB := computeWindingMap(cpA, cpB)
	windingA := computeWindingMap(cpB, cpA)

	var edges []*keptEdge
	edges = append(edges, collectEdges(cpA, windingB, rule, true)...)
	edges = append(edges, collectEdges(cpB, windingA, rule, false)...)

	result := traceResult(edges)
	return result.reduce()
}

// onlyOperand handles the degenerate case where one operand is empty:
// the operator rule is evaluated with the other operand lying outside
// an empty set everywhere.
func onlyOperand(item PathItem, rule operatorRule, onA bool) PathItem {
	cp := prepareItem(item)
	var edges []*keptEdge
	for _, child := range cp.children {
		for _, c := range child.Curves() {
			if !c.HasLength(GeometricEpsilon) {
				continue
			}
			if !rule.keep(onA, false) {
				continue
			}
			edges = append(edges, edgeFromCurve(c, rule.reverse(onA, false)))
		}
	}
	result := traceResult(edges)
	return result.reduce()
}

// fastPathResult handles disjoint operands without running the
// intersection kernel at all: neither operand lies inside the other
// anywhere.
func fastPathResult(cpA, cpB *CompoundPath, rule operatorRule) PathItem {
	var edges []*keptEdge
	for _, child := range cpA.children {
		for _, c := range child.Curves() {
			if !c.HasLength(GeometricEpsilon) || !rule.keep(true, false) {
				continue
			}
			edges = append(edges, edgeFromCurve(c, rule.reverse(true, false)))
		}
	}
	for _, child := range cpB.children {
		for _, c := range child.Curves() {
			if !c.HasLength(GeometricEpsilon) || !rule.keep(false, false) {
				continue
			}
			edges = append(edges, edgeFromCurve(c, rule.reverse(false, false)))
		}
	}
	result := traceResult(edges)
	return result.reduce()
}

func edgeFromCurve(c Curve, reverse bool) *keptEdge {
	v := c.Values()
	start, hOut := Point{X: v[0], Y: v[1]}, Point{X: v[2] - v[0], Y: v[3] - v[1]}
	hIn, end := Point{X: v[4] - v[6], Y: v[5] - v[7]}, Point{X: v[6], Y: v[7]}
	if !reverse {
		return &keptEdge{start: start, end: end, startHandleOut: hOut, endHandleIn: hIn}
	}
	return &keptEdge{start: end, end: start, startHandleOut: hIn, endHandleIn: hOut}
}

func collectEdges(cp *CompoundPath, insideOther map[curveKey]bool, rule operatorRule, onA bool) []*keptEdge {
	var edges []*keptEdge
	for ci, child := range cp.children {
		for vi, c := range child.Curves() {
			if !c.HasLength(GeometricEpsilon) {
				continue
			}
			inside, ok := insideOther[curveKey{ci, vi}]
			if !ok {
				continue
			}
			if !rule.keep(onA, inside) {
				continue
			}
			edges = append(edges, edgeFromCurve(c, rule.reverse(onA, inside)))
		}
	}
	return edges
}

// findMutualIntersections finds every location at which a curve of cpA
// crosses a curve of cpB, across all children of both. Candidate child
// pairs are pruned first via the same bounds-sweep used to prune curve
// pairs within a single path.
func findMutualIntersections(cpA, cpB *CompoundPath) []*CurveLocation {
	boundsA := make([]Rect, len(cpA.children))
	for i, pa := range cpA.children {
		boundsA[i] = pa.Bounds()
	}
	boundsB := make([]Rect, len(cpB.children))
	for i, pb := range cpB.children {
		boundsB[i] = pb.Bounds()
	}
	collisions := findBoundsCollisions(boundsA, boundsB, GeometricEpsilon*10)

	var locs []*CurveLocation
	for i, pa := range cpA.children {
		for _, j := range collisions[i] {
			locs = append(locs, pa.GetIntersections(cpB.children[j])...)
		}
	}
	return locs
}

// ResolveCrossings returns item with its own self-intersections resolved
// into simple, consistently-wound contours, without combining it with
// any other operand.
func ResolveCrossings(item PathItem) PathItem {
	return prepareItem(item).reduce()
}
