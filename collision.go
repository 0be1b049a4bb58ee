package pathops

import "sort"

// Collision detection prunes the O(n*m) curve-pair search before the
// expensive fat-line clipping kernel runs, by finding which bounding
// boxes can possibly overlap using a 1-D sweep over one axis followed by
// a cheap AABB check on the other.

// boundsItem pairs an index with the bounds used to sweep it.
type boundsItem struct {
	index int
	bound Rect
}

// findBoundsCollisions returns, for each entry in bounds1, the indices
// of entries in bounds2 whose bounding box overlaps it (expanded by
// tolerance on all sides). When bounds2 is nil, bounds1 is swept against
// itself and an entry never reports a collision with itself.
func findBoundsCollisions(bounds1, bounds2 []Rect, tolerance float64) [][]int {
	self := bounds2 == nil
	if self {
		bounds2 = bounds1
	}

	items2 := make([]boundsItem, len(bounds2))
	for i, b := range bounds2 {
		items2[i] = boundsItem{index: i, bound: b.Pad(tolerance)}
	}
	// Sweep by X: sorting lets the inner loop stop as soon as a
	// candidate's interval starts past the current item's right edge,
	// which is the only pruning the spec requires (the Y check below is
	// a plain AABB test, not a second sweep axis).
	sort.Slice(items2, func(i, j int) bool { return items2[i].bound.Min.X < items2[j].bound.Min.X })

	result := make([][]int, len(bounds1))
	for i, b1 := range bounds1 {
		lo := b1.Min.X
		hi := b1.Max.X
		var hits []int
		for _, it := range items2 {
			if it.bound.Min.X > hi {
				break
			}
			if it.bound.Max.X < lo {
				continue
			}
			if self && it.index == i {
				continue
			}
			if b1.Max.Y < it.bound.Min.Y || b1.Min.Y > it.bound.Max.Y {
				continue
			}
			hits = append(hits, it.index)
		}
		if hits != nil {
			sort.Ints(hits)
		}
		result[i] = hits
	}
	return result
}

// findCurveBoundsCollisions finds candidate curve pairs between two
// paths (or within one path, when other is nil) by sweeping their
// per-curve bounding boxes.
func findCurveBoundsCollisions(path, other *Path, tolerance float64) [][]int {
	bounds1 := curveBoundsOf(path)
	var bounds2 []Rect
	if other != nil && other != path {
		bounds2 = curveBoundsOf(other)
	}
	return findBoundsCollisions(bounds1, bounds2, tolerance)
}

func curveBoundsOf(path *Path) []Rect {
	curves := path.Curves()
	out := make([]Rect, len(curves))
	for i, c := range curves {
		out[i] = c.Bezier().BoundingBox()
	}
	return out
}

// findItemBoundsCollisions finds which pairs of items (by their overall
// Bounds()) can possibly intersect, as a coarse first filter before
// descending to curve level.
func findItemBoundsCollisions(items []PathItem, tolerance float64) [][]int {
	bounds := make([]Rect, len(items))
	for i, it := range items {
		bounds[i] = it.Bounds()
	}
	return findBoundsCollisions(bounds, nil, tolerance)
}
