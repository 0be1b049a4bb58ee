package pathops

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SVG path-data codec: an external collaborator converting between
// PathItem and the `d` attribute string format used by SVG and many
// vector-graphics tools. The writer only ever emits the absolute-moveto,
// line and cubic commands plus close (M/L/H/V/C/z); the reader accepts
// the fuller SVG command set (absolute and relative variants of
// m/l/h/v/c/s/q/t/a/z), converting everything down to the same cubic
// segment model the rest of the package uses.

// WriteSVGPath renders item as SVG path data, with coordinates rounded
// to precision fractional digits.
func WriteSVGPath(item PathItem, precision int) string {
	var b strings.Builder
	switch v := item.(type) {
	case *Path:
		writeSubpath(&b, v, precision)
	case *CompoundPath:
		for _, child := range v.Children() {
			writeSubpath(&b, child, precision)
		}
	}
	return b.String()
}

func writeSubpath(b *strings.Builder, p *Path, precision int) {
	n := p.SegmentCount()
	if n == 0 {
		return
	}
	fm := func(x float64) string { return strconv.FormatFloat(round(x, precision), 'f', -1, 64) }

	first := p.Segment(0)
	fmt.Fprintf(b, "M%s,%s", fm(first.Point.X), fm(first.Point.Y))

	for _, c := range p.Curves() {
		if c.IsStraight() {
			end := c.Point2()
			start := c.Point1()
			switch {
			case math.Abs(end.Y-start.Y) < GeometricEpsilon:
				fmt.Fprintf(b, "H%s", fm(end.X))
			case math.Abs(end.X-start.X) < GeometricEpsilon:
				fmt.Fprintf(b, "V%s", fm(end.Y))
			default:
				fmt.Fprintf(b, "L%s,%s", fm(end.X), fm(end.Y))
			}
			continue
		}
		v := c.Values()
		fmt.Fprintf(b, "C%s,%s %s,%s %s,%s",
			fm(v[2]), fm(v[3]), fm(v[4]), fm(v[5]), fm(v[6]), fm(v[7]))
	}
	if p.Closed() {
		b.WriteString("z")
	}
}

func round(x float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(x*scale) / scale
}

// ReadSVGPath parses SVG path data into a CompoundPath, one child per
// moveto-initiated subpath. Reading stops at the first unrecognized
// command or malformed argument list; the subpaths read before that
// point are kept.
func ReadSVGPath(d string) *CompoundPath {
	toks := tokenizeSVGPath(d)
	result := &CompoundPath{}

	var cur *Path
	var pos Point
	var startPos Point
	var lastCmd byte
	var lastCubicC2 Point
	var lastQuadC Point
	haveLastCubic := false
	haveLastQuad := false

	flushSubpath := func() {
		if cur != nil && cur.SegmentCount() > 0 {
			result.AddChild(cur)
		}
		cur = nil
	}

	i := 0
	for i < len(toks) {
		cmd := toks[i].cmd
		i++

		switch cmd {
		case 'M', 'm':
			x, y := toks[i-1].args[0], toks[i-1].args[1]
			if cmd == 'm' && cur != nil {
				x += pos.X
				y += pos.Y
			}
			flushSubpath()
			cur = NewPath()
			cur.MoveTo(x, y)
			pos = Pt(x, y)
			startPos = pos
			haveLastCubic, haveLastQuad = false, false

		case 'L', 'l':
			x, y := toks[i-1].args[0], toks[i-1].args[1]
			if cmd == 'l' {
				x += pos.X
				y += pos.Y
			}
			requireSubpath(&cur, pos)
			cur.LineTo(x, y)
			pos = Pt(x, y)
			haveLastCubic, haveLastQuad = false, false

		case 'H', 'h':
			x := toks[i-1].args[0]
			if cmd == 'h' {
				x += pos.X
			}
			requireSubpath(&cur, pos)
			cur.LineTo(x, pos.Y)
			pos = Pt(x, pos.Y)
			haveLastCubic, haveLastQuad = false, false

		case 'V', 'v':
			y := toks[i-1].args[0]
			if cmd == 'v' {
				y += pos.Y
			}
			requireSubpath(&cur, pos)
			cur.LineTo(pos.X, y)
			pos = Pt(pos.X, y)
			haveLastCubic, haveLastQuad = false, false

		case 'C', 'c':
			a := toks[i-1].args
			c1 := Pt(a[0], a[1])
			c2 := Pt(a[2], a[3])
			end := Pt(a[4], a[5])
			if cmd == 'c' {
				c1 = c1.Add(pos)
				c2 = c2.Add(pos)
				end = end.Add(pos)
			}
			requireSubpath(&cur, pos)
			cur.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			pos = end
			lastCubicC2, haveLastCubic = c2, true
			haveLastQuad = false

		case 'S', 's':
			a := toks[i-1].args
			c2 := Pt(a[0], a[1])
			end := Pt(a[2], a[3])
			if cmd == 's' {
				c2 = c2.Add(pos)
				end = end.Add(pos)
			}
			var c1 Point
			if haveLastCubic {
				c1 = pos.Add(pos.Sub(lastCubicC2))
			} else {
				c1 = pos
			}
			requireSubpath(&cur, pos)
			cur.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			pos = end
			lastCubicC2, haveLastCubic = c2, true
			haveLastQuad = false

		case 'Q', 'q':
			a := toks[i-1].args
			q := Pt(a[0], a[1])
			end := Pt(a[2], a[3])
			if cmd == 'q' {
				q = q.Add(pos)
				end = end.Add(pos)
			}
			requireSubpath(&cur, pos)
			cur.QuadraticTo(q.X, q.Y, end.X, end.Y)
			pos = end
			lastQuadC, haveLastQuad = q, true
			haveLastCubic = false

		case 'T', 't':
			a := toks[i-1].args
			end := Pt(a[0], a[1])
			if cmd == 't' {
				end = end.Add(pos)
			}
			var q Point
			if haveLastQuad {
				q = pos.Add(pos.Sub(lastQuadC))
			} else {
				q = pos
			}
			requireSubpath(&cur, pos)
			cur.QuadraticTo(q.X, q.Y, end.X, end.Y)
			pos = end
			lastQuadC, haveLastQuad = q, true
			haveLastCubic = false

		case 'A', 'a':
			a := toks[i-1].args
			rx, ry := a[0], a[1]
			xAxisRotation := a[2]
			largeArc := a[3] != 0
			sweep := a[4] != 0
			end := Pt(a[5], a[6])
			if cmd == 'a' {
				end = end.Add(pos)
			}
			requireSubpath(&cur, pos)
			appendEllipticalArc(cur, pos, rx, ry, xAxisRotation, largeArc, sweep, end)
			pos = end
			haveLastCubic, haveLastQuad = false, false

		case 'Z', 'z':
			if cur != nil {
				cur.Close()
				pos = startPos
			}
			haveLastCubic, haveLastQuad = false, false
		}
		lastCmd = cmd
	}
	_ = lastCmd
	flushSubpath()
	return result
}

func requireSubpath(cur **Path, pos Point) {
	if *cur == nil {
		*cur = NewPath()
		(*cur).MoveTo(pos.X, pos.Y)
	}
}

// svgToken is one parsed command letter plus its numeric arguments.
type svgToken struct {
	cmd  byte
	args []float64
}

var svgArgCounts = map[byte]int{
	'M': 2, 'm': 2,
	'L': 2, 'l': 2,
	'H': 1, 'h': 1,
	'V': 1, 'v': 1,
	'C': 6, 'c': 6,
	'S': 4, 's': 4,
	'Q': 4, 'q': 4,
	'T': 2, 't': 2,
	'A': 7, 'a': 7,
	'Z': 0, 'z': 0,
}

// tokenizeSVGPath splits d into commands, expanding repeated argument
// groups under an implicit-repeat command letter (e.g. "L10,10 20,20" is
// two lineto commands) the way the SVG grammar requires.
func tokenizeSVGPath(d string) []svgToken {
	var toks []svgToken
	nums := numberScanner{s: d}
	var cmd byte
	for nums.pos < len(d) {
		nums.skipSeparators()
		if nums.pos >= len(d) {
			break
		}
		c := d[nums.pos]
		if isCommandLetter(c) {
			cmd = c
			nums.pos++
			nums.skipSeparators()
		}
		if cmd == 0 {
			break
		}
		n := svgArgCounts[cmd]
		if n == 0 {
			toks = append(toks, svgToken{cmd: cmd})
			continue
		}
		args := make([]float64, 0, n)
		for len(args) < n {
			v, ok := nums.next()
			if !ok {
				break
			}
			args = append(args, v)
		}
		if len(args) < n {
			break
		}
		toks = append(toks, svgToken{cmd: cmd, args: args})
		// Subsequent bare argument groups repeat the same command,
		// except moveto which continues as lineto.
		if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
	}
	return toks
}

func isCommandLetter(c byte) bool {
	_, ok := svgArgCounts[c]
	return ok
}

type numberScanner struct {
	s   string
	pos int
}

func (n *numberScanner) skipSeparators() {
	for n.pos < len(n.s) {
		c := n.s[n.pos]
		if c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' {
			n.pos++
			continue
		}
		break
	}
}

func (n *numberScanner) next() (float64, bool) {
	n.skipSeparators()
	start := n.pos
	if n.pos >= len(n.s) {
		return 0, false
	}
	if n.s[n.pos] == '+' || n.s[n.pos] == '-' {
		n.pos++
	}
	sawDigit := false
	for n.pos < len(n.s) && n.s[n.pos] >= '0' && n.s[n.pos] <= '9' {
		n.pos++
		sawDigit = true
	}
	if n.pos < len(n.s) && n.s[n.pos] == '.' {
		n.pos++
		for n.pos < len(n.s) && n.s[n.pos] >= '0' && n.s[n.pos] <= '9' {
			n.pos++
			sawDigit = true
		}
	}
	if !sawDigit {
		n.pos = start
		return 0, false
	}
	if n.pos < len(n.s) && (n.s[n.pos] == 'e' || n.s[n.pos] == 'E') {
		save := n.pos
		n.pos++
		if n.pos < len(n.s) && (n.s[n.pos] == '+' || n.s[n.pos] == '-') {
			n.pos++
		}
		expDigit := false
		for n.pos < len(n.s) && n.s[n.pos] >= '0' && n.s[n.pos] <= '9' {
			n.pos++
			expDigit = true
		}
		if !expDigit {
			n.pos = save
		}
	}
	v, err := strconv.ParseFloat(n.s[start:n.pos], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// appendEllipticalArc converts an SVG elliptical arc to one or more
// cubic Beziers via the implementation notes' center parameterization,
// splitting into slices of at most 90 degrees and approximating each
// with the Kappa constant.
func appendEllipticalArc(p *Path, start Point, rx, ry, xAxisRotationDeg float64, largeArc, sweep bool, end Point) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx < Epsilon || ry < Epsilon || start.Distance(end) < Epsilon {
		p.LineTo(end.X, end.Y)
		return
	}

	phi := xAxisRotationDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx2 := (start.X - end.X) / 2
	dy2 := (start.Y - end.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if num > 0 && den > 0 {
		co = sign * math.Sqrt(num/den)
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * -(ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clamp(dot/lenProd, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	segments := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := dTheta / float64(segments)
	k := Kappa * (step / (math.Pi / 2))

	ellipsePoint := func(theta float64) Point {
		ex := rx * math.Cos(theta)
		ey := ry * math.Sin(theta)
		return Pt(cx+cosPhi*ex-sinPhi*ey, cy+sinPhi*ex+cosPhi*ey)
	}
	ellipseTangent := func(theta float64) Point {
		tx := -rx * math.Sin(theta)
		ty := ry * math.Cos(theta)
		return Point{X: cosPhi*tx - sinPhi*ty, Y: sinPhi*tx + cosPhi*ty}
	}

	for i := 0; i < segments; i++ {
		t0 := theta1 + float64(i)*step
		t1 := t0 + step
		p0 := ellipsePoint(t0)
		p1 := ellipsePoint(t1)
		tan0 := ellipseTangent(t0)
		tan1 := ellipseTangent(t1)
		c1 := p0.Add(tan0.Mul(k))
		c2 := p1.Sub(tan1.Mul(k))
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p1.X, p1.Y)
	}
}
