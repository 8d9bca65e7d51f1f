// Package svg reads the subset of SVG that matters for pen motion: path
// data, the basic shape elements with their stroke styling, and SVG fonts.
package svg

import (
	"fmt"
	"math"

	"github.com/penman/penman"
	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

type pathParser struct {
	path []byte
	i    int
	err  error
}

func (p *pathParser) num() float64 {
	if p.err != nil {
		return 0.0
	}
	p.i += skipCommaWhitespace(p.path[p.i:])
	f, n := strconv.ParseFloat(p.path[p.i:])
	if n == 0 {
		p.err = fmt.Errorf("bad number at position %d", p.i)
		return 0.0
	}
	p.i += n
	return f
}

func (p *pathParser) flag() bool {
	return p.num() == 1.0
}

// ParsePath interprets SVG path data, driving sink with the moves, lines
// and cubics it describes. Quadratics become equivalent cubics and arcs are
// decomposed into cubic segments. Implicit command repetition is honored,
// with M repeating as L per the SVG grammar.
func ParsePath(path []byte, sink penman.Drawer) error {
	p := &pathParser{path: path}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0       // last control point, for S/T reflection
	startX, startY := 0.0, 0.0 // subpath start, for Z

	for p.i < len(path) {
		p.i += skipCommaWhitespace(path[p.i:])
		if len(path) <= p.i {
			break
		}
		cmd := prevCmd
		if 'A' <= path[p.i] {
			cmd = path[p.i]
			p.i++
		} else if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		} else if cmd == 'Z' || cmd == 'z' {
			// Z takes no operands, so repeating it could never consume input.
			return fmt.Errorf("bad path command %q at position %d", path[p.i], p.i)
		}
		x, y := sink.Pos()
		switch cmd {
		case 'M', 'm':
			a, b := p.num(), p.num()
			if cmd == 'm' {
				a += x
				b += y
			}
			sink.MoveTo(a, b)
			startX, startY = a, b
		case 'Z', 'z':
			if x != startX || y != startY {
				sink.LineTo(startX, startY)
			}
		case 'L', 'l':
			a, b := p.num(), p.num()
			if cmd == 'l' {
				a += x
				b += y
			}
			sink.LineTo(a, b)
		case 'H', 'h':
			a := p.num()
			if cmd == 'h' {
				a += x
			}
			sink.LineTo(a, y)
		case 'V', 'v':
			b := p.num()
			if cmd == 'v' {
				b += y
			}
			sink.LineTo(x, b)
		case 'C', 'c':
			a, b := p.num(), p.num()
			c, d := p.num(), p.num()
			e, f := p.num(), p.num()
			if cmd == 'c' {
				a += x
				b += y
				c += x
				d += y
				e += x
				f += y
			}
			sink.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'S', 's':
			c, d := p.num(), p.num()
			e, f := p.num(), p.num()
			if cmd == 's' {
				c += x
				d += y
				e += x
				f += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			sink.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'Q', 'q':
			a, b := p.num(), p.num()
			c, d := p.num(), p.num()
			if cmd == 'q' {
				a += x
				b += y
				c += x
				d += y
			}
			penman.QuadTo(sink, a, b, c, d)
			cpx, cpy = a, b
		case 'T', 't':
			c, d := p.num(), p.num()
			if cmd == 't' {
				c += x
				d += y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			penman.QuadTo(sink, a, b, c, d)
			cpx, cpy = a, b
		case 'A', 'a':
			rx, ry := p.num(), p.num()
			rot := p.num()
			large, sweep := p.flag(), p.flag()
			e, f := p.num(), p.num()
			if cmd == 'a' {
				e += x
				f += y
			}
			arcTo(sink, rx, ry, rot, large, sweep, e, f)
		default:
			return fmt.Errorf("bad path command %q at position %d", cmd, p.i)
		}
		if p.err != nil {
			return p.err
		}
		prevCmd = cmd
	}
	return nil
}

// arcToCenter changes the SVG arc format to center and angles (in degrees),
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, 0.0, 0.0
	}

	rot *= math.Pi / 180.0
	x1p := math.Cos(rot)*(x1-x2)/2.0 + math.Sin(rot)*(y1-y2)/2.0
	y1p := -math.Sin(rot)*(x1-x2)/2.0 + math.Cos(rot)*(y1-y2)/2.0

	// reduce rounding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := math.Cos(rot)*cxp - math.Sin(rot)*cyp + (x1+x2)/2.0
	cy := math.Sin(rot)*cxp + math.Cos(rot)*cyp + (y1+y2)/2.0

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0.0 {
		theta = -theta
	}
	theta *= 180.0 / math.Pi

	delta := math.Acos((ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	delta *= 180.0 / math.Pi
	if !sweep && delta > 0.0 {
		delta -= 360.0
	} else if sweep && delta < 0.0 {
		delta += 360.0
	}
	return cx, cy, theta, theta + delta
}

// ellipsePoint returns the point and tangent of the ellipse centered at
// (cx,cy) with radii rx,ry rotated by phi, at parametric angle theta, both
// angles in radians.
func ellipsePoint(cx, cy, rx, ry, phi, theta float64) (penman.Point, penman.Point) {
	sint, cost := math.Sincos(theta)
	sinp, cosp := math.Sincos(phi)
	p := penman.Point{
		X: cx + rx*cosp*cost - ry*sinp*sint,
		Y: cy + rx*sinp*cost + ry*cosp*sint,
	}
	d := penman.Point{
		X: -rx*cosp*sint - ry*sinp*cost,
		Y: -rx*sinp*sint + ry*cosp*cost,
	}
	return p, d
}

// arcTo draws the SVG arc from the sink's current position to (x2,y2) as a
// run of cubic segments spanning at most a quarter turn each.
func arcTo(sink penman.Drawer, rx, ry, rot float64, large, sweep bool, x2, y2 float64) {
	x1, y1 := sink.Pos()
	if x1 == x2 && y1 == y2 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx < penman.Epsilon || ry < penman.Epsilon {
		sink.LineTo(x2, y2)
		return
	}

	cx, cy, theta1, theta2 := arcToCenter(x1, y1, rx, ry, rot, large, sweep, x2, y2)
	n := int(math.Ceil(math.Abs(theta2-theta1) / 90.0))
	if n == 0 {
		sink.LineTo(x2, y2)
		return
	}
	phi := rot * math.Pi / 180.0
	dtheta := (theta2 - theta1) / float64(n) * math.Pi / 180.0
	k := 4.0 / 3.0 * math.Tan(dtheta/4.0)
	for i := 0; i < n; i++ {
		ta := (theta1 * math.Pi / 180.0) + float64(i)*dtheta
		tb := ta + dtheta
		pa, da := ellipsePoint(cx, cy, rx, ry, phi, ta)
		pb, db := ellipsePoint(cx, cy, rx, ry, phi, tb)
		if i == n-1 {
			pb = penman.Point{X: x2, Y: y2}
		}
		sink.CubeTo(pa.X+k*da.X, pa.Y+k*da.Y, pb.X-k*db.X, pb.Y-k*db.Y, pb.X, pb.Y)
	}
}
