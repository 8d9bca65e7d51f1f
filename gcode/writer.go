package gcode

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/penman/penman"
	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant decimals written for coordinates
// and rates.
var Precision = 6

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", Precision, f)
	s = string(minify.Decimal([]byte(s), Precision))
	// Controllers may reject a bare leading decimal point.
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	} else if strings.HasPrefix(s, "-.") {
		s = "-0" + s[1:]
	}
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}

// Writer is the terminal drawing sink that renders commands as G-code in a
// device's dialect. Feed and Speed may be changed between commands; they
// are appended to draw and curve lines when the device declares them.
// Write errors stick and are reported by Err, so a chain of drawing calls
// does not need per-call checks.
type Writer struct {
	penman.Pen
	w     io.Writer
	dev   Device
	Feed  float64
	Speed float64
	err   error
}

// NewWriter returns a Writer for dev emitting to w.
func NewWriter(w io.Writer, dev Device) *Writer {
	return &Writer{w: w, dev: dev, Feed: 100.0, Speed: 100.0}
}

// Device returns the device dialect in use.
func (g *Writer) Device() Device {
	return g.dev
}

// Err returns the first write error, if any.
func (g *Writer) Err() error {
	return g.err
}

func (g *Writer) printf(format string, args ...interface{}) {
	if g.err == nil && format != "" {
		_, g.err = fmt.Fprintf(g.w, format, args...)
	}
}

// Start writes the preamble: the start block, the settings block with the
// current setting values interpolated, and the millimeter or inch units
// directive.
func (g *Writer) Start(mm bool) {
	g.printf("%s", g.dev.Start)
	if g.dev.Settings != "" {
		args := make([]interface{}, len(g.dev.SettingValues))
		for i, value := range g.dev.SettingValues {
			args[i] = value
		}
		g.printf(g.dev.Settings, args...)
	}
	if mm {
		g.printf("%s", g.dev.MM)
	} else {
		g.printf("%s", g.dev.Inch)
	}
}

// Stop writes the trailer.
func (g *Writer) Stop() {
	g.printf("%s", g.dev.Stop)
}

func (g *Writer) extras() []interface{} {
	var extra []interface{}
	if g.dev.Feed {
		extra = append(extra, dec(g.Feed))
	}
	if g.dev.Speed {
		extra = append(extra, dec(g.Speed))
	}
	return extra
}

func (g *Writer) MoveTo(x, y float64) {
	g.printf(g.dev.Move, dec(x), dec(y))
	g.X, g.Y = x, y
}

func (g *Writer) LineTo(x, y float64) {
	args := append([]interface{}{dec(x), dec(y)}, g.extras()...)
	g.printf(g.dev.Draw, args...)
	g.X, g.Y = x, y
}

// CubeTo writes a native curve line. Use Drawer to route splines through a
// tesselation stage on devices without a curve template.
func (g *Writer) CubeTo(x1, y1, x2, y2, x, y float64) {
	args := append([]interface{}{dec(x1), dec(y1), dec(x2), dec(y2), dec(x), dec(y)}, g.extras()...)
	g.printf(g.dev.Curve, args...)
	g.X, g.Y = x, y
}

// Drawer returns the sink rendering should target: the writer itself when
// the device draws curves natively, otherwise a flattening stage with the
// given tolerance. Tesselation can be forced for devices whose native
// curves are untrusted.
func (g *Writer) Drawer(flatness float64, tesselate bool) penman.Drawer {
	if g.dev.Curve == "" || tesselate {
		return penman.NewFlattener(g, flatness)
	}
	return g
}
