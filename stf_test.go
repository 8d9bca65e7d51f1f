package penman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestSTFRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, WriteSTF(buf, DefaultFont))

	f, err := ReadSTF(buf)
	test.Error(t, err)

	test.String(t, f.Name, DefaultFont.Name)
	test.String(t, f.Style, DefaultFont.Style)
	test.Float(t, f.Ascent, DefaultFont.Ascent)
	test.Float(t, f.Descent, DefaultFont.Descent)
	test.Float(t, f.UnitsPerEm, DefaultFont.UnitsPerEm)

	// every covered glyph survives with identical metrics, notdef included
	for r := rune(0); r < 0x80; r++ {
		test.T(t, f.GlyphMetrics(r), DefaultFont.GlyphMetrics(r))
	}
	test.T(t, f.TextMetrics("Hello, World!"), DefaultFont.TextMetrics("Hello, World!"))

	// and identical ink
	want := NewBuilder()
	DefaultFont.TextPath("Ay", want)
	got := NewBuilder()
	f.TextPath("Ay", got)
	test.T(t, got.Program(), want.Program())
}

func TestSTFRoundTripTrailingZero(t *testing.T) {
	// an outline ending on a zero coordinate must not be mistaken for a
	// terminated program when the dump is loaded back
	fb := NewFontBuilder()
	fb.Name = "Zero"
	fb.Ascent = 8.0
	fb.Descent = 2.0
	fb.UnitsPerEm = 16.0
	fb.AddGlyph('V', 10.0, Program{opMove, 4.0, -8.0, opLine, 2.0, 0.0, opLine, 0.0, 0.0})
	fb.AddGlyph('I', 4.0, Program{opMove, 1.0, -8.0, opLine, 1.0, 0.0, opEnd})
	f, err := fb.Font()
	test.Error(t, err)

	buf := &bytes.Buffer{}
	test.Error(t, WriteSTF(buf, f))
	g, err := ReadSTF(buf)
	test.Error(t, err)

	test.T(t, g.GlyphMetrics('V'), f.GlyphMetrics('V'))
	test.T(t, g.GlyphMetrics('I'), f.GlyphMetrics('I'))

	want := NewBuilder()
	f.TextPath("VI", want)
	got := NewBuilder()
	g.TextPath("VI", got)
	test.T(t, got.Program(), want.Program())
}

func TestReadSTFErrors(t *testing.T) {
	_, err := ReadSTF(strings.NewReader("not json"))
	test.That(t, err != nil, "must error")

	_, err = ReadSTF(strings.NewReader(`{"name":"x","glyphs":[]}`))
	test.That(t, err != nil, "missing units-per-em must error")

	_, err = ReadSTF(strings.NewReader(`{"name":"x","units-per-em":-1,"glyphs":[]}`))
	test.That(t, err != nil, "negative units-per-em must error")
}

func TestWriteSTFRejectsBadOutline(t *testing.T) {
	f := &Font{
		Name:       "Broken",
		UnitsPerEm: 16.0,
		outlines:   []float64{1.0, 99.0},
		metrics:    map[uint32]TextMetrics{},
	}
	test.That(t, WriteSTF(&bytes.Buffer{}, f) != nil, "must error")
}
