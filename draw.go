package penman

import "math"

// Drawer is the capability implemented by every stage of the drawing
// pipeline and by the final output sink: a pen-up move, a straight draw, and
// a cubic Bezier curve. Pos reports the stage's own current position, which
// every stage keeps up to date on every call whether or not it forwards.
type Drawer interface {
	Pos() (float64, float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(x1, y1, x2, y2, x, y float64)
}

// Pen tracks the current position of a pipeline stage. Embed it to satisfy
// the Pos method of Drawer.
type Pen struct {
	X, Y float64
}

// Pos returns the current position.
func (p *Pen) Pos() (float64, float64) {
	return p.X, p.Y
}

// QuadTo draws the quadratic Bezier with control point (cx,cy) and end point
// (x,y) on d as the equivalent cubic, starting from the sink's own current
// position so that there is a single source of truth for the pen location.
func QuadTo(d Drawer, cx, cy, x, y float64) {
	x0, y0 := d.Pos()
	x1 := x0 + 2.0*(cx-x0)/3.0
	y1 := y0 + 2.0*(cy-y0)/3.0
	x2 := x + 2.0*(cx-x)/3.0
	y2 := y + 2.0*(cy-y)/3.0
	d.CubeTo(x1, y1, x2, y2, x, y)
}

// StrokeRect outlines r on d as a move followed by four draws.
func StrokeRect(d Drawer, r Rect) {
	d.MoveTo(r.Min.X, r.Min.Y)
	d.LineTo(r.Max.X, r.Min.Y)
	d.LineTo(r.Max.X, r.Max.Y)
	d.LineTo(r.Min.X, r.Max.Y)
	d.LineTo(r.Min.X, r.Min.Y)
}

////////////////////////////////////////////////////////////////

// Offset shifts all coordinates by an accumulating offset before forwarding
// them. It advances glyphs along a text baseline.
type Offset struct {
	Pen
	dx, dy float64
	next   Drawer
}

// NewOffset returns an Offset stage with a zero offset that forwards to next.
func NewOffset(next Drawer) *Offset {
	return &Offset{next: next}
}

// Step advances the offset. Deltas accumulate over successive calls.
func (o *Offset) Step(dx, dy float64) {
	o.dx += dx
	o.dy += dy
}

// Offset returns the accumulated offset.
func (o *Offset) Offset() (float64, float64) {
	return o.dx, o.dy
}

func (o *Offset) MoveTo(x, y float64) {
	o.next.MoveTo(x+o.dx, y+o.dy)
	o.X, o.Y = x, y
}

func (o *Offset) LineTo(x, y float64) {
	o.next.LineTo(x+o.dx, y+o.dy)
	o.X, o.Y = x, y
}

func (o *Offset) CubeTo(x1, y1, x2, y2, x, y float64) {
	o.next.CubeTo(x1+o.dx, y1+o.dy, x2+o.dx, y2+o.dy, x+o.dx, y+o.dy)
	o.X, o.Y = x, y
}

////////////////////////////////////////////////////////////////

// Transformer applies an affine transformation to all coordinates, control
// points included, before forwarding them. Place it upstream of a Flattener
// so that the flattening tolerance is measured in output device units.
type Transformer struct {
	Pen
	m    Matrix
	next Drawer
}

// NewTransformer returns a Transformer stage applying m before forwarding to next.
func NewTransformer(next Drawer, m Matrix) *Transformer {
	return &Transformer{m: m, next: next}
}

func (t *Transformer) MoveTo(x, y float64) {
	p := t.m.Dot(Point{x, y})
	t.next.MoveTo(p.X, p.Y)
	t.X, t.Y = x, y
}

func (t *Transformer) LineTo(x, y float64) {
	p := t.m.Dot(Point{x, y})
	t.next.LineTo(p.X, p.Y)
	t.X, t.Y = x, y
}

func (t *Transformer) CubeTo(x1, y1, x2, y2, x, y float64) {
	p1 := t.m.Dot(Point{x1, y1})
	p2 := t.m.Dot(Point{x2, y2})
	p := t.m.Dot(Point{x, y})
	t.next.CubeTo(p1.X, p1.Y, p2.X, p2.Y, p.X, p.Y)
	t.X, t.Y = x, y
}

////////////////////////////////////////////////////////////////

// Flattener replaces curves by polylines within the given tolerance. Moves
// and draws pass through unchanged.
type Flattener struct {
	Pen
	tolerance float64
	next      Drawer
}

// NewFlattener returns a Flattener stage forwarding to next.
func NewFlattener(next Drawer, tolerance float64) *Flattener {
	return &Flattener{tolerance: tolerance, next: next}
}

func (f *Flattener) MoveTo(x, y float64) {
	f.next.MoveTo(x, y)
	f.X, f.Y = x, y
}

func (f *Flattener) LineTo(x, y float64) {
	f.next.LineTo(x, y)
	f.X, f.Y = x, y
}

func (f *Flattener) CubeTo(x1, y1, x2, y2, x, y float64) {
	s := Spline{Point{f.X, f.Y}, Point{x1, y1}, Point{x2, y2}, Point{x, y}}
	for _, p := range s.Decompose(f.tolerance) {
		f.LineTo(p.X, p.Y)
	}
}

////////////////////////////////////////////////////////////////

// Measurer is a terminal stage that accumulates the bounding box of
// everything drawn into it. Curves are flattened with the given tolerance
// and their polyline points sampled directly.
type Measurer struct {
	Pen
	tolerance              float64
	minX, minY, maxX, maxY float64
	any                    bool
}

// NewMeasurer returns an empty Measurer flattening curves within tolerance.
func NewMeasurer(tolerance float64) *Measurer {
	return &Measurer{
		tolerance: tolerance,
		minX:      math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
}

func (m *Measurer) sample(x, y float64) {
	m.minX = math.Min(m.minX, x)
	m.minY = math.Min(m.minY, y)
	m.maxX = math.Max(m.maxX, x)
	m.maxY = math.Max(m.maxY, y)
	m.any = true
}

func (m *Measurer) MoveTo(x, y float64) {
	m.X, m.Y = x, y
}

func (m *Measurer) LineTo(x, y float64) {
	m.sample(m.X, m.Y)
	m.sample(x, y)
	m.X, m.Y = x, y
}

func (m *Measurer) CubeTo(x1, y1, x2, y2, x, y float64) {
	s := Spline{Point{m.X, m.Y}, Point{x1, y1}, Point{x2, y2}, Point{x, y}}
	for _, p := range s.Decompose(m.tolerance) {
		m.LineTo(p.X, p.Y)
	}
}

// Bounds returns the accumulated ink box, or the zero Rect if nothing with
// extent was drawn.
func (m *Measurer) Bounds() Rect {
	if !m.any {
		return Rect{}
	}
	return Rect{Point{m.minX, m.minY}, Point{m.maxX, m.maxY}}
}
