package penman

import "fmt"

// Align selects the horizontal placement of text inside its rectangle.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign parses the textual alignment names used in configuration.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("bad alignment %q", s)
}

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// Fitter lays strings into rectangles. FontMetrics selects the font-wide
// vertical extent and advance box instead of the string's own ink, which
// keeps a column of differently shaped strings at a uniform size. YInvert
// mirrors the baseline for devices whose Y axis grows up the page.
type Fitter struct {
	Font        *Font
	Border      float64
	Align       Align
	Oblique     bool
	Shear       float64
	FontMetrics bool
	YInvert     bool
}

// Fit computes the transformation that places s inside r: uniformly scaled
// to the largest size that fits, aligned horizontally on its ink rather
// than its advance box, and centered vertically. It fails on a rectangle
// made degenerate by the border and on text without ink.
func (ft *Fitter) Fit(r Rect, s string) (Matrix, error) {
	availW := r.W() - 2.0*ft.Border
	availH := r.H() - 2.0*ft.Border
	if availW <= 0.0 {
		return Identity, fmt.Errorf("border %g too wide for rectangle %v", ft.Border, r)
	}
	if availH <= 0.0 {
		return Identity, fmt.Errorf("border %g too tall for rectangle %v", ft.Border, r)
	}

	metrics := ft.Font.TextMetrics(s)
	var ascent, descent, textX, textW float64
	if ft.FontMetrics {
		ascent = ft.Font.Ascent
		descent = ft.Font.Descent
		textW = metrics.Width
	} else {
		ascent = metrics.Ascent
		descent = metrics.Descent
		textX = metrics.LeftSideBearing
		textW = metrics.RightSideBearing - metrics.LeftSideBearing
	}
	textH := ascent + descent
	if textW <= 0.0 || textH <= 0.0 {
		return Identity, fmt.Errorf("text %q has no ink", s)
	}
	if ft.Oblique {
		textW += textH * ft.Shear
	}

	// Cross-multiplied aspect comparison, safe since all extents are positive.
	var scale float64
	if textW*availH > availW*textH {
		scale = availW / textW
	} else {
		scale = availH / textH
	}

	var offX float64
	switch ft.Align {
	case AlignCenter:
		offX = (availW - textW*scale) / 2.0
	case AlignRight:
		offX = availW - textW*scale
	}
	offX -= textX * scale
	if ft.Oblique {
		// Leaning shifts ink toward negative x, by up to textH past the
		// baseline translation, or up to ascent when the axis is mirrored.
		if ft.YInvert {
			offX += ft.Shear * ascent * scale
		} else {
			offX += ft.Shear * textH * scale
		}
	}
	offY := (availH - textH*scale) / 2.0

	m := Identity.Translate(r.Min.X+ft.Border+offX, r.Min.Y+ft.Border+offY)
	if ft.Oblique {
		m = m.Shear(-ft.Shear, 0.0)
	}
	m = m.Scale(scale, scale)
	if ft.YInvert {
		m = m.Scale(1.0, -1.0)
	} else {
		m = m.Translate(0.0, ascent)
	}
	return m, nil
}

// Draw fits s into r and renders it on d.
func (ft *Fitter) Draw(d Drawer, r Rect, s string) error {
	m, err := ft.Fit(r, s)
	if err != nil {
		return err
	}
	ft.Font.TextPath(s, NewTransformer(d, m))
	return nil
}
