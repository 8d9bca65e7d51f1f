package penman

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestOffset(t *testing.T) {
	b := NewBuilder()
	o := NewOffset(b)

	o.MoveTo(1.0, 1.0)
	o.Step(5.0, 0.0)
	o.MoveTo(0.0, 0.0)
	o.LineTo(1.0, 2.0)
	o.Step(5.0, 1.0)
	o.LineTo(0.0, 0.0)

	// deltas accumulate, the stage's own position does not include them
	dx, dy := o.Offset()
	test.Float(t, dx, 10.0)
	test.Float(t, dy, 1.0)
	x, y := o.Pos()
	test.Float(t, x, 0.0)
	test.Float(t, y, 0.0)

	test.T(t, b.Program(), Program{
		opMove, 1.0, 1.0,
		opMove, 5.0, 0.0,
		opLine, 6.0, 2.0,
		opLine, 10.0, 1.0,
		opEnd,
	})
}

func TestTransformer(t *testing.T) {
	b := NewBuilder()
	tr := NewTransformer(b, Identity.Translate(10.0, 0.0).Scale(2.0, 2.0))

	tr.MoveTo(1.0, 1.0)
	tr.LineTo(2.0, 0.0)
	tr.CubeTo(2.0, 1.0, 3.0, 1.0, 3.0, 0.0)

	// control points transform too; the stage's own position stays untransformed
	x, y := tr.Pos()
	test.Float(t, x, 3.0)
	test.Float(t, y, 0.0)

	test.T(t, b.Program(), Program{
		opMove, 12.0, 2.0,
		opLine, 14.0, 0.0,
		opCurve, 14.0, 2.0, 16.0, 2.0, 16.0, 0.0,
		opEnd,
	})
}

func TestFlattener(t *testing.T) {
	b := NewBuilder()
	f := NewFlattener(b, 0.01)

	f.MoveTo(0.0, 0.0)
	f.CubeTo(0.0, 1.0, 1.0, 1.0, 1.0, 0.0)

	prg := b.Program()
	test.T(t, prg[0], opMove)
	last := Point{}
	for i := 3; i < len(prg)-1; i += 3 {
		test.T(t, prg[i], opLine)
		last = Point{prg[i+1], prg[i+2]}
	}
	// polyline ends exactly at the curve's end point
	test.That(t, last.Equals(Point{1.0, 0.0}))
	// curve apex sampled within tolerance
	test.That(t, 6 < len(prg), "curve was subdivided")
}

func TestFlattenerPassThrough(t *testing.T) {
	b := NewBuilder()
	f := NewFlattener(b, 0.01)
	f.MoveTo(1.0, 2.0)
	f.LineTo(3.0, 4.0)
	test.T(t, b.Program(), Program{opMove, 1.0, 2.0, opLine, 3.0, 4.0, opEnd})
}

func TestMeasurer(t *testing.T) {
	m := NewMeasurer(0.001)
	m.MoveTo(1.0, 1.0)
	m.LineTo(3.0, 4.0)
	m.MoveTo(-2.0, 0.0)
	m.LineTo(0.0, 0.0)
	test.T(t, m.Bounds(), Rect{Point{-2.0, 0.0}, Point{3.0, 4.0}})
}

func TestMeasurerEmpty(t *testing.T) {
	// moves alone leave no ink
	m := NewMeasurer(0.001)
	test.T(t, m.Bounds(), Rect{})
	m.MoveTo(5.0, 5.0)
	m.MoveTo(-5.0, -5.0)
	test.T(t, m.Bounds(), Rect{})
}

func TestMeasurerCurve(t *testing.T) {
	m := NewMeasurer(0.0001)
	m.MoveTo(0.0, 0.0)
	m.CubeTo(0.0, 1.0, 1.0, 1.0, 1.0, 0.0)
	bounds := m.Bounds()
	test.Float(t, bounds.Min.X, 0.0)
	test.Float(t, bounds.Max.X, 1.0)
	test.Float(t, bounds.Min.Y, 0.0)
	// apex of this symmetric cubic is at 3/4 of the control height
	test.That(t, 0.7499 < bounds.Max.Y && bounds.Max.Y <= 0.75)
}

func TestQuadTo(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(0.0, 0.0)
	QuadTo(b, 3.0, 3.0, 6.0, 0.0)
	test.T(t, b.Program(), Program{
		opMove, 0.0, 0.0,
		opCurve, 2.0, 2.0, 4.0, 2.0, 6.0, 0.0,
		opEnd,
	})
}

func TestStrokeRect(t *testing.T) {
	b := NewBuilder()
	StrokeRect(b, Rect{Point{0.0, 0.0}, Point{2.0, 1.0}})
	test.T(t, b.Program(), Program{
		opMove, 0.0, 0.0,
		opLine, 2.0, 0.0,
		opLine, 2.0, 1.0,
		opLine, 0.0, 1.0,
		opLine, 0.0, 0.0,
		opEnd,
	})
}
