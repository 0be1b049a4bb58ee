package pathops

// Error taxonomy.
//
// This package distinguishes two kinds of failure by how they propagate:
//
//   - Caller-logic errors are deterministic and always indicate a bug at
//     the call site (calling a drawing verb before MoveTo, or an
//     ill-formed constructor argument). These panic with a sentinel
//     error value rather than returning one, since there's no useful
//     recovery path short of fixing the call; ErrNoCurrentPoint is the
//     one sentinel this package currently panics with.
//
//   - Degenerate geometry is never an error: a singular matrix's Invert
//     returns the Identity matrix and InvertSafe returns the zero Matrix
//     and false, rather than panicking; a zero-radius Arc or a curve too short to have a
//     well-defined tangent degrades to a straight line or an empty path;
//     fat-line clipping that exhausts RecursionLimit/CallLimit returns
//     whatever intersections it has accumulated so far instead of
//     failing the whole boolean operation. An empty boolean result is
//     simply a *Path with zero segments — callers check IsEmpty/
//     IsEmptyItem rather than a distinguished error value.
//
// There is no global error state: every fallback is local to the call
// that hit the degenerate case, and every other call in the same
// pipeline proceeds normally.
