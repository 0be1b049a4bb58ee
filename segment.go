package pathops

// Segment is a mutable path anchor: a point plus two handle vectors that
// are relative to that point (the zero vector means "no handle", i.e. a
// straight corner on that side). A Segment belongs to at most one Path
// (a free-standing one from NewSegment has none), tracked via
// back-pointer and index so neighbour lookups can
// honour the path's closedness.
type Segment struct {
	Point      Point
	HandleIn   Point
	HandleOut  Point
	path       *Path
	index      int
}

// NewSegment creates a free-standing segment with no handles.
func NewSegment(p Point) *Segment {
	return &Segment{Point: p}
}

// WithHandles returns a new segment at p with the given relative handle
// vectors, replacing the overloaded point-or-handles constructors of the
// source library with an explicit, single-purpose builder.
func WithHandles(p, handleIn, handleOut Point) *Segment {
	return &Segment{Point: p, HandleIn: handleIn, HandleOut: handleOut}
}

// Path returns the owning path, or nil if the segment has been removed
// or was never added to one.
func (s *Segment) Path() *Path { return s.path }

// Index returns the segment's position within its owning path's segment
// list. Undefined if Path() is nil.
func (s *Segment) Index() int { return s.index }

// SetHandleIn sets the incoming handle and invalidates the owning
// path's geometry caches. This is the only sanctioned way to dirty the
// curve built from this segment and its predecessor.
func (s *Segment) SetHandleIn(h Point) {
	s.HandleIn = h
	if s.path != nil {
		s.path.changed(changeGeometry)
	}
}

// SetHandleOut sets the outgoing handle and invalidates the owning
// path's geometry caches.
func (s *Segment) SetHandleOut(h Point) {
	s.HandleOut = h
	if s.path != nil {
		s.path.changed(changeGeometry)
	}
}

// SetPoint moves the anchor point (handles stay relative, so they move
// with it) and invalidates the owning path's geometry caches.
func (s *Segment) SetPoint(p Point) {
	s.Point = p
	if s.path != nil {
		s.path.changed(changeGeometry)
	}
}

// HandleInAbsolute returns the incoming handle in absolute coordinates.
func (s *Segment) HandleInAbsolute() Point { return s.Point.Add(s.HandleIn) }

// HandleOutAbsolute returns the outgoing handle in absolute coordinates.
func (s *Segment) HandleOutAbsolute() Point { return s.Point.Add(s.HandleOut) }

// HasHandleIn reports whether the incoming handle is non-zero.
func (s *Segment) HasHandleIn() bool { return s.HandleIn.X != 0 || s.HandleIn.Y != 0 }

// HasHandleOut reports whether the outgoing handle is non-zero.
func (s *Segment) HasHandleOut() bool { return s.HandleOut.X != 0 || s.HandleOut.Y != 0 }

// Previous returns the preceding segment, wrapping around on a closed
// path and returning nil at the start of an open one.
func (s *Segment) Previous() *Segment {
	if s.path == nil {
		return nil
	}
	segs := s.path.segments
	n := len(segs)
	if s.index == 0 {
		if s.path.closed && n > 0 {
			return segs[n-1]
		}
		return nil
	}
	return segs[s.index-1]
}

// Next returns the following segment, wrapping around on a closed path
// and returning nil at the end of an open one.
func (s *Segment) Next() *Segment {
	if s.path == nil {
		return nil
	}
	segs := s.path.segments
	n := len(segs)
	if s.index == n-1 {
		if s.path.closed && n > 0 {
			return segs[0]
		}
		return nil
	}
	return segs[s.index+1]
}

// Reverse swaps the incoming and outgoing handles in place, used by
// Path.Reverse to flip a segment's role without reallocating it.
func (s *Segment) Reverse() {
	s.HandleIn, s.HandleOut = s.HandleOut, s.HandleIn
}

// Clone returns a detached copy of the segment (no owning path).
func (s *Segment) Clone() *Segment {
	return &Segment{Point: s.Point, HandleIn: s.HandleIn, HandleOut: s.HandleOut}
}

// changeFlags describes what kind of mutation happened to a Path, so its
// caches can be invalidated precisely rather than unconditionally.
type changeFlags uint8

const (
	// changeGeometry invalidates cached length, area and bounds without
	// implying the segment count changed.
	changeGeometry changeFlags = 1 << iota
	// changeSegments additionally bumps the path's version counter, used
	// by CurveLocation to detect that its cached point may be stale.
	changeSegments
)
