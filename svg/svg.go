package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/penman/penman"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/xml"
)

// Shape is one drawable element: its outline recorded as a program, with
// the stroke color it inherited, used to select cut parameters.
type Shape struct {
	Stroke string
	Path   penman.Program
}

// Document is the drawable content of one SVG file.
type Document struct {
	Shapes []Shape
}

// Bounds returns the ink box of all shapes, flattening curves within
// tolerance.
func (doc *Document) Bounds(tolerance float64) penman.Rect {
	measurer := penman.NewMeasurer(tolerance)
	for _, shape := range doc.Shapes {
		shape.Path.MustReplay(measurer)
	}
	return measurer.Bounds()
}

// state is the inheritable part of the parse context, pushed per element.
type state struct {
	stroke string
	m      penman.Matrix
}

type docParser struct {
	z     *parse.Input
	stack []state
	err   error
}

func (svg *docParser) state() *state {
	return &svg.stack[len(svg.stack)-1]
}

func (svg *docParser) setErr(err error) {
	if svg.err == nil {
		svg.err = err
	}
}

func (svg *docParser) parseFloat(v string) float64 {
	if v == "" {
		return 0.0
	}
	// strip a trailing unit, user units only
	i := len(v)
	for 0 < i && (v[i-1] < '0' || '9' < v[i-1]) && v[i-1] != '.' {
		i--
	}
	var f float64
	if _, err := fmt.Sscanf(v[:i], "%g", &f); err != nil {
		svg.setErr(parse.NewErrorLexer(svg.z, "bad number: %w: %s", err, v))
		return 0.0
	}
	return f
}

func (svg *docParser) parseNumbers(v string) []float64 {
	v = strings.ReplaceAll(v, "\n", ",")
	v = strings.ReplaceAll(v, "\t", ",")
	v = strings.ReplaceAll(v, " ", ",")

	var vals []float64
	for _, item := range strings.Split(v, ",") {
		if 0 < len(item) {
			vals = append(vals, svg.parseFloat(item))
		}
	}
	return vals
}

func (svg *docParser) parseTransform(v string) penman.Matrix {
	i, j := 0, 0
	m := penman.Identity
	var fun string
	for i < len(v) {
		if v[i] == '(' {
			fun = strings.ToLower(strings.TrimSpace(v[j:i]))
			j = i + 1
		} else if v[i] == ')' {
			d := svg.parseNumbers(v[j:i])
			switch fun {
			case "matrix":
				if len(d) != 6 {
					svg.setErr(parse.NewErrorLexer(svg.z, "bad transform matrix"))
				} else {
					m = m.Mul(penman.Matrix{{d[0], d[2], d[4]}, {d[1], d[3], d[5]}})
				}
			case "translate":
				if len(d) != 1 && len(d) != 2 {
					svg.setErr(parse.NewErrorLexer(svg.z, "bad transform translate"))
				} else if len(d) == 1 {
					m = m.Translate(d[0], 0.0)
				} else {
					m = m.Translate(d[0], d[1])
				}
			case "scale":
				if len(d) != 1 && len(d) != 2 {
					svg.setErr(parse.NewErrorLexer(svg.z, "bad transform scale"))
				} else if len(d) == 1 {
					m = m.Scale(d[0], d[0])
				} else {
					m = m.Scale(d[0], d[1])
				}
			case "rotate":
				if len(d) != 1 && len(d) != 3 {
					svg.setErr(parse.NewErrorLexer(svg.z, "bad transform rotate"))
				} else if len(d) == 1 {
					m = m.Rotate(d[0])
				} else {
					m = m.Translate(d[1], d[2]).Rotate(d[0]).Translate(-d[1], -d[2])
				}
			}
			j = i + 1
		}
		i++
	}
	return m
}

func (svg *docParser) setAttribute(key, val string) {
	switch key {
	case "stroke":
		svg.state().stroke = val
	case "transform":
		svg.state().m = svg.state().m.Mul(svg.parseTransform(val))
	case "style":
		parser := css.NewParser(parse.NewInputString(val), true)
		for {
			gt, _, data := parser.Next()
			if gt == css.ErrorGrammar {
				break
			}
			if gt == css.DeclarationGrammar {
				value := ""
				for _, v := range parser.Values() {
					value += string(v.Data)
				}
				svg.setAttribute(string(data), strings.TrimSpace(value))
			}
		}
	}
}

// kappa scales a radius to the cubic control distance approximating a
// quarter circle.
const kappa = 0.5522847498307936

func strokeEllipse(sink penman.Drawer, cx, cy, rx, ry float64) {
	sink.MoveTo(cx+rx, cy)
	sink.CubeTo(cx+rx, cy+ry*kappa, cx+rx*kappa, cy+ry, cx, cy+ry)
	sink.CubeTo(cx-rx*kappa, cy+ry, cx-rx, cy+ry*kappa, cx-rx, cy)
	sink.CubeTo(cx-rx, cy-ry*kappa, cx-rx*kappa, cy-ry, cx, cy-ry)
	sink.CubeTo(cx+rx*kappa, cy-ry, cx+rx, cy-ry*kappa, cx+rx, cy)
}

// Parse reads the drawable elements of an SVG document: path, rect,
// circle, ellipse, line, polyline and polygon, honoring inherited stroke
// color, style attributes and nested transforms. Rendering concerns beyond
// pen motion (fill, markers, text spans) are ignored.
func Parse(r io.Reader) (*Document, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	svg := docParser{z: z, stack: []state{{m: penman.Identity}}}
	doc := &Document{}

	addShape := func(build func(sink penman.Drawer) error) {
		builder := penman.NewBuilder()
		sink := penman.NewTransformer(builder, svg.state().m)
		if err := build(sink); err != nil {
			svg.setErr(parse.NewErrorLexer(svg.z, "bad shape: %w", err))
			return
		}
		prg := builder.Program()
		if prg.Empty() {
			return
		}
		doc.Shapes = append(doc.Shapes, Shape{Stroke: svg.state().stroke, Path: prg})
	}

	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return doc, l.Err()
			}
			return doc, svg.err
		case xml.StartTagToken:
			attrs := map[string]string{}
			var attrNames []string
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				val = val[1 : len(val)-1]
				attrNames = append(attrNames, string(l.Text()))
				attrs[string(l.Text())] = string(val)
			}

			svg.stack = append(svg.stack, *svg.state())
			for _, key := range attrNames {
				svg.setAttribute(key, attrs[key])
			}

			tag := string(data[1:])
			switch tag {
			case "path":
				addShape(func(sink penman.Drawer) error {
					return ParsePath([]byte(attrs["d"]), sink)
				})
			case "rect":
				x := svg.parseFloat(attrs["x"])
				y := svg.parseFloat(attrs["y"])
				w := svg.parseFloat(attrs["width"])
				h := svg.parseFloat(attrs["height"])
				addShape(func(sink penman.Drawer) error {
					penman.StrokeRect(sink, penman.Rect{
						Min: penman.Point{X: x, Y: y},
						Max: penman.Point{X: x + w, Y: y + h},
					})
					return nil
				})
			case "circle":
				cx := svg.parseFloat(attrs["cx"])
				cy := svg.parseFloat(attrs["cy"])
				r := svg.parseFloat(attrs["r"])
				addShape(func(sink penman.Drawer) error {
					strokeEllipse(sink, cx, cy, r, r)
					return nil
				})
			case "ellipse":
				cx := svg.parseFloat(attrs["cx"])
				cy := svg.parseFloat(attrs["cy"])
				rx := svg.parseFloat(attrs["rx"])
				ry := svg.parseFloat(attrs["ry"])
				addShape(func(sink penman.Drawer) error {
					strokeEllipse(sink, cx, cy, rx, ry)
					return nil
				})
			case "line":
				x1 := svg.parseFloat(attrs["x1"])
				y1 := svg.parseFloat(attrs["y1"])
				x2 := svg.parseFloat(attrs["x2"])
				y2 := svg.parseFloat(attrs["y2"])
				addShape(func(sink penman.Drawer) error {
					sink.MoveTo(x1, y1)
					sink.LineTo(x2, y2)
					return nil
				})
			case "polygon", "polyline":
				points := svg.parseNumbers(attrs["points"])
				addShape(func(sink penman.Drawer) error {
					for i := 0; i+1 < len(points); i += 2 {
						if i == 0 {
							sink.MoveTo(points[0], points[1])
						} else {
							sink.LineTo(points[i], points[i+1])
						}
					}
					if tag == "polygon" && 4 <= len(points) {
						sink.LineTo(points[0], points[1])
					}
					return nil
				})
			}

			if tt == xml.StartTagCloseVoidToken {
				svg.stack = svg.stack[:len(svg.stack)-1]
			}
		case xml.EndTagToken:
			if 1 < len(svg.stack) {
				svg.stack = svg.stack[:len(svg.stack)-1]
			}
		}
	}
}
