package pathops

// Tracing assembles the boolean result: given a set of kept, correctly
// oriented curve segments drawn from the two (already mutually divided)
// operands, it walks endpoint-to-endpoint to rebuild the maximal closed
// contours the kept segments imply. This mirrors the graph-walk
// "marching" step of the source algorithm, specialized to operate on
// concrete Segment chains rather than a generic doubly-linked curve
// graph, since Segment/Path already provide that chaining within a
// single operand.

// keptEdge is one directed curve to include in the result, carrying its
// own independent segment data (already reversed if the operator calls
// for it) so tracing never has to consult which operand or orientation
// it came from.
type keptEdge struct {
	start, end       Point
	startHandleOut   Point // relative to start
	endHandleIn      Point // relative to end
	used             bool
}

// traceResult chains kept edges into closed loops by matching each
// edge's end point to another (unused) edge's start point, within
// GeometricEpsilon. Edges that can't be closed into a loop (a malformed
// or degenerate input) are dropped rather than emitted as open paths,
// since every boolean result is a set of closed regions.
func traceResult(edges []*keptEdge) *CompoundPath {
	result := &CompoundPath{}
	n := len(edges)

	for i := 0; i < n; i++ {
		loopStart := edges[i]
		if loopStart.used {
			continue
		}
		loopStart.used = true

		segs := []*Segment{WithHandles(loopStart.start, Point{}, loopStart.startHandleOut)}
		cur := loopStart
		closed := false
		for steps := 0; steps < n+1; steps++ {
			if cur.end.Distance(loopStart.start) < GeometricEpsilon*10 {
				segs[0].HandleIn = cur.endHandleIn
				closed = true
				break
			}
			next := findEdgeFrom(edges, cur.end)
			if next == nil {
				break
			}
			next.used = true
			segs = append(segs, WithHandles(next.start, cur.endHandleIn, next.startHandleOut))
			cur = next
		}
		if !closed {
			Logger().Warn("trace loop could not close, dropping partial contour",
				"start", loopStart.start, "segments", len(segs))
			continue
		}
		if len(segs) >= 3 {
			result.children = append(result.children, NewPathFromSegments(segs, true))
		}
	}
	return result
}

func findEdgeFrom(edges []*keptEdge, point Point) *keptEdge {
	for _, e := range edges {
		if e.used {
			continue
		}
		if e.start.Distance(point) < GeometricEpsilon*10 {
			return e
		}
	}
	return nil
}
