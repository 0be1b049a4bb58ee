package pathops

// Preparation stages shared by every boolean operator: clone the
// operands so the originals are never mutated, close any open paths
// (the result of a boolean op is always closed), resolve each operand's
// own self-crossings, and reorient children so holes and islands wind
// consistently before the two operands are intersected against each
// other.

// preparePath clones p, closes it if open, and resolves its own self
// crossings so every subsequent stage can assume a simple (non-self-
// intersecting) set of closed contours.
func preparePath(p *Path) *CompoundPath {
	c := p.Clone()
	if !c.Closed() {
		c.SetClosed(true)
	}
	cp := NewCompoundPath(c)
	cp.FillRule = p.FillRule
	return resolveCrossings(cp)
}

// prepareCompound clones every child of cp, closes any that are open,
// and resolves self crossings across the whole set.
func prepareCompound(cp *CompoundPath) *CompoundPath {
	out := &CompoundPath{FillRule: cp.FillRule}
	for _, child := range cp.children {
		c := child.Clone()
		if !c.Closed() {
			c.SetClosed(true)
		}
		out.children = append(out.children, c)
	}
	return resolveCrossings(out)
}

// prepareItem normalizes either concrete PathItem kind to a prepared
// CompoundPath, the common representation the boolean pipeline works
// with internally.
func prepareItem(item PathItem) *CompoundPath {
	switch v := item.(type) {
	case *Path:
		return preparePath(v)
	case *CompoundPath:
		return prepareCompound(v)
	default:
		return NewCompoundPath()
	}
}

// resolveCrossings splits every self-intersection within cp (both within
// a single child and, via the loop classifier, within a single curve)
// and returns a new CompoundPath whose children are the resulting simple
// contours, each consistently wound (clockwise positive area, holes
// opposite their container).
func resolveCrossings(cp *CompoundPath) *CompoundPath {
	var allLocs []*CurveLocation
	for _, child := range cp.children {
		locs := child.selfIntersections()
		allLocs = append(allLocs, locs...)
	}
	if len(allLocs) == 0 {
		return reorientPaths(cp)
	}
	divideLocations(allLocs)

	var out []*Path
	for _, child := range cp.children {
		out = append(out, splitAtCrossings(child)...)
	}
	result := &CompoundPath{FillRule: cp.FillRule, children: out}
	return reorientPaths(result)
}

// splitAtCrossings walks a path that has had every self-crossing divided
// into a segment boundary, and breaks it into the maximal set of simple
// closed sub-loops implied by those crossings.
//
// Segments don't retain their originating CurveLocation, so this walks
// the already-divided path using coincident-point matching alone to find
// the jump segments: every
// self-intersection now lands exactly on a segment (since
// divideLocations made it one), so two segments at the same point but
// different indices mark a place the trace can choose to jump.
func splitAtCrossings(path *Path) []*Path {
	segs := path.segments
	n := len(segs)
	if n == 0 {
		return nil
	}

	// Group segment indices by (approximately) coincident point.
	groups := map[int][]int{}
	order := make([]int, 0, n)
	for i, s := range segs {
		key := -1
		for _, k := range order {
			if segs[k].Point.Distance(s.Point) < GeometricEpsilon*10 {
				key = k
				break
			}
		}
		if key == -1 {
			key = i
			order = append(order, i)
		}
		groups[key] = append(groups[key], i)
	}

	hasBranch := false
	for _, g := range groups {
		if len(g) > 1 {
			hasBranch = true
			break
		}
	}
	if !hasBranch {
		return []*Path{path}
	}

	visited := make([]bool, n)
	var loops []*Path
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var loopSegs []*Segment
		i := start
		for {
			if visited[i] {
				break
			}
			visited[i] = true
			loopSegs = append(loopSegs, segs[i])
			next := (i + 1) % n
			// Prefer jumping to an unvisited branch partner at the same
			// point, so distinct loops close instead of merging.
			if group := groups[groupKeyOf(groups, i)]; len(group) > 1 {
				for _, cand := range group {
					cn := (cand + 1) % n
					if cand != i && !visited[cn] {
						next = cn
						break
					}
				}
			}
			if next == start {
				break
			}
			i = next
		}
		if len(loopSegs) >= 3 {
			loops = append(loops, NewPathFromSegments(loopSegs, true))
		}
	}
	if len(loops) == 0 {
		return []*Path{path}
	}
	return loops
}

func groupKeyOf(groups map[int][]int, i int) int {
	for k, g := range groups {
		for _, idx := range g {
			if idx == i {
				return k
			}
		}
	}
	return i
}

// reorientPaths fixes the winding direction of every child so that: the
// outermost contours are wound clockwise (positive area) and each
// contour nested inside an odd number of others (a hole) is wound
// counter-clockwise, per the non-zero containment convention used by the
// rest of the pipeline.
func reorientPaths(cp *CompoundPath) *CompoundPath {
	n := len(cp.children)
	if n == 0 {
		return cp
	}
	items := make([]PathItem, n)
	for i, c := range cp.children {
		items[i] = c
	}
	// A child can only contain another child whose bounds it encloses;
	// skip the expensive winding-number containment test for any pair
	// whose bounding boxes don't even overlap.
	candidates := findItemBoundsCollisions(items, 0)

	depth := make([]int, n)
	for i, ci := range cp.children {
		pt := ci.interiorPoint()
		bi := ci.Bounds()
		for _, j := range candidates[i] {
			bj := cp.children[j].Bounds()
			if !bj.Contains(bi.Min) || !bj.Contains(bi.Max) {
				continue
			}
			if cp.children[j].ContainsRule(pt, cp.FillRule) {
				depth[i]++
			}
		}
	}
	for i, ci := range cp.children {
		area := ci.Area()
		wantClockwise := depth[i]%2 == 0
		isClockwise := area > 0
		if wantClockwise != isClockwise {
			ci.Reverse()
		}
	}
	return cp
}
