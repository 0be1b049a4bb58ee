// Package pathops provides 2D Bezier path geometry and boolean path
// operations (union, intersection, subtraction, exclusion) for Go.
//
// # Overview
//
// pathops models paths as segment chains (a moveto point plus in/out
// handle vectors per segment, as in PostScript/PDF/SVG/Paper.js), with
// cubic Beziers as the single internal curve representation: lines and
// quadratics are represented as degenerate or elevated cubics so every
// downstream algorithm (intersection, winding, tracing) has one curve
// kind to reason about.
//
// # Quick Start
//
//	a := pathops.Circle(0, 0, 50)
//	b := pathops.Rectangle(-20, -20, 80, 80)
//
//	result := pathops.Unite(a, b)
//	data := pathops.WriteSVGPath(result, 3)
//
// # Boolean pipeline
//
// Unite, Intersect, Subtract and Exclude share one pipeline: prepare
// each operand (clone, close, resolve self-crossings, reorient so holes
// wind oppositely to their containers), divide both operands at their
// mutual intersections, compute each curve's winding number against the
// other operand, keep (and possibly reverse) curves per the operator's
// rule, then trace the kept curves back into closed contours.
//
// # Coordinate System
//
//   - X increases right, Y increases down (y-down, matching screen and
//     SVG conventions)
//   - Angles in radians, 0 along +X
//   - Constructors (Rectangle, Circle, Ellipse, ...) produce closed,
//     clockwise-wound paths, so Area() > 0 for an unmodified shape
package pathops
