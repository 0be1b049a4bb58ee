package pathops

// CompoundPath groups several Paths (its children) that are rendered
// and filled together — holes and islands of a single logical shape.
// Containment and winding combine contributions from every child.
type CompoundPath struct {
	children []*Path
	FillRule FillRule
}

func (*CompoundPath) isPathItem() {}

// NewCompoundPath wraps the given paths (which it takes ownership of,
// unmodified) as a single compound item.
func NewCompoundPath(paths ...*Path) *CompoundPath {
	cp := &CompoundPath{}
	cp.children = append(cp.children, paths...)
	return cp
}

// Children returns the compound path's component paths.
func (cp *CompoundPath) Children() []*Path { return cp.children }

// ChildCount returns the number of component paths.
func (cp *CompoundPath) ChildCount() int { return len(cp.children) }

// AddChild appends a path to the compound path.
func (cp *CompoundPath) AddChild(p *Path) { cp.children = append(cp.children, p) }

// IsEmptyItem implements PathItem.
func (cp *CompoundPath) IsEmptyItem() bool {
	for _, c := range cp.children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Bounds returns the union of every child's bounding box.
func (cp *CompoundPath) Bounds() Rect {
	if len(cp.children) == 0 {
		return Rect{}
	}
	b := cp.children[0].Bounds()
	for _, c := range cp.children[1:] {
		b = b.Union(c.Bounds())
	}
	return b
}

// Area returns the sum of the children's signed areas: outer boundaries
// and holes cancel out correctly as long as holes are wound opposite to
// their containing boundary.
func (cp *CompoundPath) Area() float64 {
	var area float64
	for _, c := range cp.children {
		area += c.Area()
	}
	return area
}

// Clone returns a deep copy of the compound path and its children.
func (cp *CompoundPath) Clone() *CompoundPath {
	out := &CompoundPath{FillRule: cp.FillRule}
	for _, c := range cp.children {
		out.children = append(out.children, c.Clone())
	}
	return out
}

// CloneItem implements PathItem.
func (cp *CompoundPath) CloneItem() PathItem { return cp.Clone() }

// ContainsRule tests pt against every child, combining their winding
// numbers before applying rule — so overlapping holes and islands
// interact instead of being tested independently.
func (cp *CompoundPath) ContainsRule(pt Point, rule FillRule) bool {
	var w int
	for _, c := range cp.children {
		w += c.windingNumber(pt)
	}
	return windingInside(w, rule)
}

// Contains tests pt using the compound path's own FillRule.
func (cp *CompoundPath) Contains(pt Point) bool {
	return cp.ContainsRule(pt, cp.FillRule)
}

// Reverse reverses every child path in place.
func (cp *CompoundPath) Reverse() {
	for _, c := range cp.children {
		c.Reverse()
	}
}

// Transform applies matrix to every child path.
func (cp *CompoundPath) Transform(m Matrix) {
	for _, c := range cp.children {
		c.Transform(m)
	}
}

// Flatten returns a compound path with every child flattened to
// polylines.
func (cp *CompoundPath) Flatten(flatness float64) *CompoundPath {
	out := &CompoundPath{FillRule: cp.FillRule}
	for _, c := range cp.children {
		out.children = append(out.children, c.Flatten(flatness))
	}
	return out
}

// reduce collapses a single-child compound path down to a bare *Path,
// matching the source library's convention that boolean results never
// carry pointless one-element wrappers. Returns a new empty *Path when
// it holds zero children, and the CompoundPath itself (as a PathItem)
// when it holds more than one.
func (cp *CompoundPath) reduce() PathItem {
	switch len(cp.children) {
	case 0:
		return NewPath()
	case 1:
		return cp.children[0]
	default:
		return cp
	}
}
