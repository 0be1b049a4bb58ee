package pathops

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Append composes m with other so that the result applies other first,
// then m: m.Append(other).TransformPoint(p) == m.TransformPoint(other.TransformPoint(p)).
// It is the right-multiplication `m * other` used to chain transforms in
// the order they are conceptually applied (innermost first).
func (m Matrix) Append(other Matrix) Matrix {
	return m.Multiply(other)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// InvertSafe returns the inverse matrix and true, or the zero Matrix and
// false when the matrix is singular (determinant within Epsilon of zero
// or non-finite). Use this instead of Invert when a singular matrix must
// be distinguished from a legitimately-identity one.
func (m Matrix) InvertSafe() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < Epsilon || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}
	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// Decomposition holds the CSS-2D-matrix-decomposition-compatible
// components of an affine Matrix: translation, rotation (radians),
// scaling along the (possibly skewed) axes, and the skew angle (radians)
// between them.
type Decomposition struct {
	Translation Point
	Rotation    float64
	Scaling     Point
	Skew        float64
}

// Decompose splits the matrix into translation, rotation, scaling and
// skew, following the same convention as the CSS Transforms spec's 2-D
// matrix decomposition. Returns false if the matrix is degenerate
// (zero scale on the first column), in which case Decomposition is the
// zero value.
func (m Matrix) Decompose() (Decomposition, bool) {
	// Column vectors of the linear part.
	col0 := Point{X: m.A, Y: m.D}
	col1 := Point{X: m.B, Y: m.E}

	scaleX := col0.Length()
	if scaleX < Epsilon {
		return Decomposition{}, false
	}
	col0 = col0.Div(scaleX)

	skewRaw := col0.Dot(col1)
	col1 = Point{X: col1.X - col0.X*skewRaw, Y: col1.Y - col0.Y*skewRaw}

	scaleY := col1.Length()
	if scaleY < Epsilon {
		return Decomposition{}, false
	}
	col1 = col1.Div(scaleY)
	skew := skewRaw / scaleY

	// Negative determinant means the basis is mirrored; fold the flip
	// into scaleX so rotation stays a pure rotation.
	if col0.X*col1.Y-col0.Y*col1.X < 0 {
		scaleX = -scaleX
		col0 = Point{X: -col0.X, Y: -col0.Y}
		skew = -skew
	}

	return Decomposition{
		Translation: Point{X: m.C, Y: m.F},
		Rotation:    math.Atan2(col0.Y, col0.X),
		Scaling:     Point{X: scaleX, Y: scaleY},
		Skew:        math.Atan(skew),
	}, true
}

// IsTranslationOnly reports whether the matrix has no rotation, scale or
// skew component, i.e. it is equivalent to IsTranslation. Kept as a
// separate, explicitly-named predicate for call sites that reason about
// matrix kind rather than just translation.
func (m Matrix) IsTranslationOnly() bool {
	return m.IsTranslation()
}

// IsScaleOnly reports whether the matrix has no rotation or skew: both
// off-diagonal entries of the linear part are zero. A uniform or
// non-uniform scale (and any translation on top of it) satisfies this.
func (m Matrix) IsScaleOnly() bool {
	return m.B == 0 && m.D == 0
}

// MaxScaleFactor returns the largest singular value of the matrix's
// linear (rotation/scale/skew) part: the greatest factor by which the
// matrix can stretch a unit vector. Used to size stroke and tolerance
// padding correctly under non-uniform transforms.
func (m Matrix) MaxScaleFactor() float64 {
	p := m.A*m.A + m.D*m.D
	r := m.B*m.B + m.E*m.E
	q := m.A*m.B + m.D*m.E

	sum := p + r
	diff := p - r
	disc := math.Sqrt(diff*diff + 4*q*q)
	maxEigen := (sum + disc) / 2
	if maxEigen < 0 {
		maxEigen = 0
	}
	return math.Sqrt(maxEigen)
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}
