package penman

import "math"

// maxSplineDepth bounds the subdivision recursion. The error estimate of a
// finite curve shrinks by roughly a factor four per split, so this is only
// reached for non-finite or absurdly large control points.
const maxSplineDepth = 24

// Spline is a cubic Bezier with start point A, control points B and C, and
// end point D.
type Spline struct {
	A, B, C, D Point
}

// Split subdivides the curve at its parametric midpoint using de Casteljau's
// construction. The two halves cover the same shape exactly.
func (s Spline) Split() (Spline, Spline) {
	ab := s.A.Interpolate(s.B, 0.5)
	bc := s.B.Interpolate(s.C, 0.5)
	cd := s.C.Interpolate(s.D, 0.5)
	abbc := ab.Interpolate(bc, 0.5)
	bccd := bc.Interpolate(cd, 0.5)
	mid := abbc.Interpolate(bccd, 0.5)
	return Spline{s.A, ab, abbc, mid}, Spline{mid, bccd, cd, s.D}
}

// errorSquared returns an upper bound on the squared deviation that results
// from approximating the curve by the chord A-D. It is zero whenever the
// control polygon is collinear, and it never increases under Split.
func (s Spline) errorSquared() float64 {
	berr := s.B.distToLineSquared(s.A, s.D)
	cerr := s.C.distToLineSquared(s.A, s.D)
	return math.Max(berr, cerr)
}

// Decompose approximates the curve by an ordered, non-empty sequence of
// points, each within tolerance of the true curve. The start point A is not
// included since the caller already sits there; the last point is exactly D.
// Tolerances at or below zero are clamped to Epsilon.
func (s Spline) Decompose(tolerance float64) []Point {
	if tolerance < Epsilon {
		tolerance = Epsilon
	}
	return s.decompose(nil, tolerance*tolerance, 0)
}

func (s Spline) decompose(ps []Point, tolerance2 float64, depth int) []Point {
	err := s.errorSquared()
	if err <= tolerance2 || maxSplineDepth <= depth || math.IsNaN(err) {
		return append(ps, s.D)
	}
	s1, s2 := s.Split()
	ps = s1.decompose(ps, tolerance2, depth+1)
	return s2.decompose(ps, tolerance2, depth+1)
}
