package pathops

import "sort"

// CurveLocation is a weak reference to a point on a path: the (path,
// curve-index, t) triple plus the path's version at the time it was
// recorded. It does not hold a pointer into the segment graph, so it
// survives any mutation that doesn't change curve count or the
// particular curve's shape; Point() recomputes lazily and Valid()
// reports whether the owning path has since been edited in a way that
// would invalidate it.
type CurveLocation struct {
	path    *Path
	index   int
	time    float64
	version int

	point    Point
	hasPoint bool

	// Intersection links to the matching location on the other operand,
	// populated by the intersection kernel. overlap/crossing classify
	// the nature of the intersection for winding propagation and tracing.
	intersection *CurveLocation
	overlap      bool
	crossing     bool

	// next/previous are not set by insertLocation or by any other
	// function of this package; they are always nil.
	next     *CurveLocation
	previous *CurveLocation
}

// NewCurveLocation creates a location at parameter t along the curve
// starting at segment index within path.
func NewCurveLocation(path *Path, index int, t float64) *CurveLocation {
	return &CurveLocation{path: path, index: index, time: clamp(t, 0, 1), version: path.version}
}

// Path returns the owning path.
func (l *CurveLocation) Path() *Path { return l.path }

// Index returns the curve's starting segment index.
func (l *CurveLocation) Index() int { return l.index }

// Time returns the curve parameter, in [0,1].
func (l *CurveLocation) Time() float64 { return l.time }

// Valid reports whether the owning path's segments have not changed
// (in count or identity) since this location was recorded.
func (l *CurveLocation) Valid() bool {
	return l.path != nil && l.version == l.path.version
}

// Curve returns the curve view this location lies on. Panics if !Valid().
func (l *CurveLocation) Curve() Curve {
	if !l.Valid() {
		panic("pathops: stale CurveLocation")
	}
	return l.path.Curve(l.index)
}

// Point returns the absolute point this location refers to, computed
// lazily and cached.
func (l *CurveLocation) Point() Point {
	if l.hasPoint {
		return l.point
	}
	l.point = l.Curve().Bezier().Eval(l.time)
	l.hasPoint = true
	return l.point
}

// Intersection returns the matching location on the other path this
// location intersects, or nil if this location is not an intersection.
func (l *CurveLocation) Intersection() *CurveLocation { return l.intersection }

// IsOverlap reports whether this intersection is part of a segment where
// the two curves run collinear for a span rather than crossing at a
// point.
func (l *CurveLocation) IsOverlap() bool { return l.overlap }

// IsCrossing reports whether the two curves actually cross at this
// location (as opposed to merely touching tangentially).
func (l *CurveLocation) IsCrossing() bool { return l.crossing }

// equals reports whether two locations refer to the same (path, index,
// time) within CurveTimeEpsilon, used by insertLocation to dedupe.
func (l *CurveLocation) equals(other *CurveLocation) bool {
	if l.path != other.path {
		return false
	}
	if l.index == other.index {
		return abs(l.time-other.time) < CurveTimeEpsilon
	}
	// A location at t=1 on curve i is the same point as t=0 on curve i+1
	// (or curve 0, if i is the closing curve of a closed path).
	n := l.path.CurveCount()
	if l.index+1 == other.index || (l.path.closed && l.index == n-1 && other.index == 0) {
		return l.time > 1-CurveTimeEpsilon && other.time < CurveTimeEpsilon
	}
	if other.index+1 == l.index || (l.path.closed && other.index == n-1 && l.index == 0) {
		return other.time > 1-CurveTimeEpsilon && l.time < CurveTimeEpsilon
	}
	return false
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// insertLocation inserts loc into locs in increasing (index, time) order
// for its path, returning the (possibly deduplicated) updated slice and
// the location that ended up representing this point - either loc itself
// or a pre-existing duplicate.
func insertLocation(locs []*CurveLocation, loc *CurveLocation) ([]*CurveLocation, *CurveLocation) {
	for _, existing := range locs {
		if existing.path == loc.path && existing.equals(loc) {
			return locs, existing
		}
	}
	locs = append(locs, loc)
	sortLocations(locs)
	return locs, loc
}

// sortLocations orders locations by (path identity, index, time), the
// order divideLocations relies on to process splits from the end of the
// path backward (so earlier indices are unaffected by later insertions).
func sortLocations(locs []*CurveLocation) {
	sort.SliceStable(locs, func(i, j int) bool {
		a, b := locs[i], locs[j]
		if a.path != b.path {
			// Locations on different paths have no meaningful relative
			// order here; leave them in their existing relative order
			// (SliceStable preserves that when the less-func reports
			// false both ways).
			return false
		}
		if a.index != b.index {
			return a.index < b.index
		}
		return a.time < b.time
	})
}

// divideLocations splits every curve named by locs at its recorded
// parameter, inserting new segments so every location becomes an actual
// segment boundary. Locations on the same path are processed from the
// highest (index, time) to the lowest so that earlier insertions don't
// shift the indices later ones refer to. After a curve is split at t,
// the lower times still to be processed on that curve are rescaled by
// 1/t, since they now lie on the curve's first part.
func divideLocations(locs []*CurveLocation) {
	byPath := map[*Path][]*CurveLocation{}
	for _, l := range locs {
		byPath[l.path] = append(byPath[l.path], l)
	}
	for path, group := range byPath {
		sortLocations(group)
		prevIndex, prevTime := -1, 0.0
		for i := len(group) - 1; i >= 0; i-- {
			l := group[i]
			origIndex, origTime := l.index, l.time
			if l.index == prevIndex && prevTime > 0 {
				l.time /= prevTime
			}
			prevIndex = -1
			if l.time <= CurveTimeEpsilon || l.time >= 1-CurveTimeEpsilon {
				// Already coincides with an existing segment boundary;
				// normalize a near-1 time to the canonical (index+1, 0)
				// form when a following curve exists.
				n := path.CurveCount()
				if l.time >= 1-CurveTimeEpsilon && l.index+1 < n {
					l.index++
					l.time = 0
				} else if l.time >= 1-CurveTimeEpsilon && path.closed && l.index+1 == n {
					l.index = 0
					l.time = 0
				} else if l.time >= 1-CurveTimeEpsilon {
					l.time = 1
				} else {
					l.time = 0
				}
				l.version = path.version
				l.hasPoint = false
				continue
			}
			path.DivideAtTime(l.index, l.time)
			prevIndex, prevTime = origIndex, origTime
			l.index++
			l.time = 0
			l.version = path.version
			l.hasPoint = false
		}
	}
}
