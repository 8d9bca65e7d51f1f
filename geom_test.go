package penman

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point{3.0, 4.0}
	test.T(t, p.Add(Point{1.0, 1.0}), Point{4.0, 5.0})
	test.T(t, p.Sub(Point{1.0, 1.0}), Point{2.0, 3.0})
	test.T(t, p.Mul(2.0), Point{6.0, 8.0})
	test.T(t, Point{}.Interpolate(p, 0.5), Point{1.5, 2.0})
	test.That(t, Point{}.IsZero())
	test.That(t, !p.IsZero())
	test.That(t, p.Equals(Point{3.0 + 1e-12, 4.0}))
	test.Float(t, p.distSquared(Point{0.0, 0.0}), 25.0)
}

func TestPointDistToLine(t *testing.T) {
	// horizontal line through origin
	test.Float(t, Point{5.0, 3.0}.distToLineSquared(Point{0.0, 0.0}, Point{1.0, 0.0}), 9.0)
	// point on the line
	test.Float(t, Point{2.0, 2.0}.distToLineSquared(Point{0.0, 0.0}, Point{1.0, 1.0}), 0.0)
	// degenerate line falls back to point distance
	test.Float(t, Point{3.0, 4.0}.distToLineSquared(Point{0.0, 0.0}, Point{0.0, 0.0}), 25.0)
}

func TestRect(t *testing.T) {
	r := Rect{Point{0.0, 0.0}, Point{2.0, 3.0}}
	test.That(t, !r.Empty())
	test.Float(t, r.W(), 2.0)
	test.Float(t, r.H(), 3.0)
	test.That(t, Rect{}.Empty())
	test.That(t, Rect{Point{1.0, 0.0}, Point{1.0, 2.0}}.Empty())

	q := Rect{Point{-1.0, 1.0}, Point{1.0, 5.0}}
	test.T(t, r.Union(q), Rect{Point{-1.0, 0.0}, Point{2.0, 5.0}})
}

func TestMatrixIdentityLaws(t *testing.T) {
	m := Identity.Translate(3.0, -2.0).Rotate(30.0).Scale(2.0, 0.5).Shear(0.1, 0.0)
	test.That(t, m.Translate(0.0, 0.0).Equals(m))
	test.That(t, m.Scale(1.0, 1.0).Equals(m))
	test.That(t, m.Rotate(0.0).Equals(m))
	test.That(t, m.Shear(0.0, 0.0).Equals(m))
}

func TestMatrixDot(t *testing.T) {
	m := Identity.Translate(10.0, 0.0).Scale(2.0, 2.0)

	// the last builder call is applied first to points
	p := m.Dot(Point{1.0, 1.0})
	test.Float(t, p.X, 12.0)
	test.Float(t, p.Y, 2.0)

	// DotVector drops the translation
	q := m.Dot(Point{1.0, 1.0}).Sub(m.Dot(Point{}))
	test.That(t, q.Equals(m.DotVector(Point{1.0, 1.0})))
}

func TestMatrixRotate(t *testing.T) {
	p := Identity.Rotate(90.0).Dot(Point{1.0, 0.0})
	test.That(t, p.Equals(Point{0.0, 1.0}))
	test.Float(t, Identity.Rotate(90.0).Det(), 1.0)
	test.Float(t, Identity.Scale(2.0, 3.0).Det(), 6.0)
}

func TestMatrixMulOrder(t *testing.T) {
	// Mul applies the right-hand matrix first
	a := Identity.Translate(1.0, 0.0)
	b := Identity.Scale(2.0, 2.0)
	p := a.Mul(b).Dot(Point{1.0, 1.0})
	test.Float(t, p.X, 3.0)
	test.Float(t, p.Y, 2.0)
}
