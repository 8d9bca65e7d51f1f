package penman

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestDefaultFont(t *testing.T) {
	f := DefaultFont
	test.String(t, f.Name, "Default")
	test.String(t, f.Style, "Roman")
	test.Float(t, f.Ascent, 50.0)
	test.Float(t, f.Descent, 14.0)
	test.Float(t, f.UnitsPerEm, 64.0)
}

func TestDefaultFontMetricsRoundTrip(t *testing.T) {
	// recomputing any glyph's metrics through the interpreter must match the
	// metrics cached at load time exactly
	f := DefaultFont
	for r := rune(0x20); r < 0x7F; r++ {
		t.Run(fmt.Sprintf("%q", r), func(t *testing.T) {
			offset := f.glyphOffset(r)
			recomputed, err := f.measure(offset)
			test.Error(t, err)
			test.T(t, recomputed, f.metrics[offset])
		})
	}
}

func TestGlyphMetrics(t *testing.T) {
	f := DefaultFont

	// space advances without leaving ink
	space := f.GlyphMetrics(' ')
	test.That(t, 0.0 < space.Width)
	test.Float(t, space.Ascent, 0.0)
	test.Float(t, space.Descent, 0.0)
	test.Float(t, space.LeftSideBearing, 0.0)
	test.Float(t, space.RightSideBearing, 0.0)

	// 'A' rises above the baseline and does not descend below it
	a := f.GlyphMetrics('A')
	test.That(t, 0.0 < a.Ascent)
	test.Float(t, a.Descent, 0.0)
	test.That(t, 0.0 < a.Width)

	// 'y' descends below the baseline
	y := f.GlyphMetrics('y')
	test.That(t, 0.0 < y.Descent)
}

func TestGlyphFallback(t *testing.T) {
	f := DefaultFont
	notdef := f.metrics[0]

	// uncovered codepoints map to notdef, in and out of the ASCII page
	test.T(t, f.GlyphMetrics('\x01'), notdef)
	test.T(t, f.GlyphMetrics('€'), notdef)
	test.T(t, f.GlyphMetrics(0x7F), notdef)

	// notdef leaves visible ink
	test.That(t, 0.0 < notdef.Ascent)
	test.That(t, notdef.LeftSideBearing < notdef.RightSideBearing)
}

func TestGlyphPath(t *testing.T) {
	f := DefaultFont
	m := NewMeasurer(metricsTolerance(f.UnitsPerEm))
	advance := f.GlyphPath('A', m)

	gm := f.GlyphMetrics('A')
	test.Float(t, advance, gm.Width)
	bounds := m.Bounds()
	test.Float(t, bounds.Min.X, gm.LeftSideBearing)
	test.Float(t, bounds.Max.X, gm.RightSideBearing)
	test.Float(t, -bounds.Min.Y, gm.Ascent)
	test.Float(t, bounds.Max.Y, gm.Descent)
}

func TestTextPathAdvance(t *testing.T) {
	f := DefaultFont
	a := f.GlyphMetrics('A')
	y := f.GlyphMetrics('y')

	advance := f.TextPath("Ay", NewMeasurer(0.01))
	test.Float(t, advance, a.Width+y.Width)
	test.Float(t, f.TextPath("", NewMeasurer(0.01)), 0.0)
}

func TestTextPathOffsets(t *testing.T) {
	// the second glyph's ink is shifted by the first glyph's advance
	f := DefaultFont
	a := f.GlyphMetrics('A')
	y := f.GlyphMetrics('y')

	m := NewMeasurer(metricsTolerance(f.UnitsPerEm))
	f.TextPath("Ay", m)
	bounds := m.Bounds()
	test.Float(t, bounds.Min.X, a.LeftSideBearing)
	test.Float(t, bounds.Max.X, a.Width+y.RightSideBearing)
}

func TestTextMetrics(t *testing.T) {
	f := DefaultFont
	a := f.GlyphMetrics('A')
	y := f.GlyphMetrics('y')

	// a single glyph folds to its own metrics
	test.T(t, f.TextMetrics("A"), a)

	// ascent comes from 'A', descent from 'y', bearings follow the cursor
	tm := f.TextMetrics("Ay")
	test.Float(t, tm.LeftSideBearing, a.LeftSideBearing)
	test.Float(t, tm.RightSideBearing, a.Width+y.RightSideBearing)
	test.Float(t, tm.Ascent, a.Ascent)
	test.Float(t, tm.Descent, y.Descent)
	test.Float(t, tm.Width, a.Width+y.Width)

	test.T(t, f.TextMetrics(""), TextMetrics{})
}

func TestTextMetricsMatchesInk(t *testing.T) {
	// string metrics agree with measuring the laid-out ink directly
	f := DefaultFont
	for i, s := range []string{"A", "Ay", "Hello, World!", "0123456789"} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			m := NewMeasurer(metricsTolerance(f.UnitsPerEm))
			f.TextPath(s, m)
			bounds := m.Bounds()
			tm := f.TextMetrics(s)
			test.Float(t, bounds.Min.X, tm.LeftSideBearing)
			test.Float(t, bounds.Max.X, tm.RightSideBearing)
			test.Float(t, -bounds.Min.Y, tm.Ascent)
			test.Float(t, bounds.Max.Y, tm.Descent)
		})
	}
}

func TestFontBuilder(t *testing.T) {
	fb := NewFontBuilder()
	fb.Name = "Test"
	fb.Style = "Roman"
	fb.Ascent = 10.0
	fb.Descent = 2.0
	fb.UnitsPerEm = 16.0

	b := NewBuilder()
	b.MoveTo(0.0, 0.0)
	b.LineTo(4.0, -8.0)
	b.LineTo(8.0, 0.0)
	fb.AddGlyph('A', 9.0, b.Program())

	f, err := fb.Font()
	test.Error(t, err)

	a := f.GlyphMetrics('A')
	test.Float(t, a.Width, 9.0)
	test.Float(t, a.Ascent, 8.0)
	test.Float(t, a.Descent, 0.0)
	test.Float(t, a.LeftSideBearing, 0.0)
	test.Float(t, a.RightSideBearing, 8.0)

	// no notdef supplied: a box is synthesized for uncovered codepoints
	notdef := f.GlyphMetrics('B')
	test.Float(t, notdef.Width, 0.5625*16.0)
	test.Float(t, notdef.Ascent, 0.65625*16.0)
	test.Float(t, notdef.RightSideBearing, 0.375*16.0)
}

func TestFontBuilderPages(t *testing.T) {
	fb := NewFontBuilder()
	fb.Name = "Paged"
	fb.UnitsPerEm = 16.0

	line := func(w float64) Program {
		b := NewBuilder()
		b.MoveTo(0.0, 0.0)
		b.LineTo(w, -w)
		return b.Program()
	}
	fb.AddGlyph('A', 4.0, line(3.0))
	fb.AddGlyph('€', 5.0, line(4.0)) // page 0x20
	fb.AddGlyph('中', 6.0, line(5.0)) // page 0x4e

	f, err := fb.Font()
	test.Error(t, err)
	test.T(t, len(f.pages), 3)
	test.Float(t, f.GlyphMetrics('A').Width, 4.0)
	test.Float(t, f.GlyphMetrics('€').Width, 5.0)
	test.Float(t, f.GlyphMetrics('中').Width, 6.0)

	// neighbors on a covered page still fall back to notdef
	test.T(t, f.GlyphMetrics('₭'), f.metrics[0])
	test.T(t, f.GlyphMetrics('䀀'), f.metrics[0])
}

func TestFontBuilderReplacesGlyph(t *testing.T) {
	fb := NewFontBuilder()
	fb.Name = "Replace"
	fb.UnitsPerEm = 16.0

	b := NewBuilder()
	b.MoveTo(0.0, 0.0)
	b.LineTo(1.0, 0.0)
	fb.AddGlyph('A', 2.0, b.Program())
	fb.AddGlyph('A', 3.0, b.Program())

	f, err := fb.Font()
	test.Error(t, err)
	test.Float(t, f.GlyphMetrics('A').Width, 3.0)
}
