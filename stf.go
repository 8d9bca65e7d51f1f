package penman

import (
	"encoding/json"
	"fmt"
	"io"
)

// STF is the JSON dump of a loaded stroke font. Dumping a parsed SVG font
// once and loading the dump afterwards skips the XML parse on every run.
// Outlines are stored as raw opcode buffers without their terminator.

type stfGlyph struct {
	Code    rune      `json:"code"`
	Advance float64   `json:"advance"`
	Outline []float64 `json:"outline"`
}

type stfFont struct {
	Name       string     `json:"name"`
	Style      string     `json:"style"`
	Ascent     float64    `json:"ascent"`
	Descent    float64    `json:"descent"`
	UnitsPerEm float64    `json:"units-per-em"`
	Glyphs     []stfGlyph `json:"glyphs"`
}

// WriteSTF dumps f to w in STF form.
func WriteSTF(w io.Writer, f *Font) error {
	dump := stfFont{
		Name:       f.Name,
		Style:      f.Style,
		Ascent:     f.Ascent,
		Descent:    f.Descent,
		UnitsPerEm: f.UnitsPerEm,
	}
	appendGlyph := func(r rune, offset uint32) error {
		advance, prg, err := f.glyph(offset)
		if err != nil {
			return err
		}
		end, ok := prg.end()
		if !ok {
			if end < len(prg) {
				return fmt.Errorf("glyph %q: bad opcode %v", r, prg[end])
			}
			return fmt.Errorf("glyph %q: unterminated outline", r)
		}
		dump.Glyphs = append(dump.Glyphs, stfGlyph{
			Code:    r,
			Advance: advance,
			Outline: append([]float64{}, prg[:end]...),
		})
		return nil
	}
	if err := appendGlyph(0, 0); err != nil {
		return err
	}
	for _, page := range f.pages {
		for index, offset := range page.offsets {
			if offset == 0 {
				continue
			}
			r := rune(page.page<<8 | uint32(index))
			if err := appendGlyph(r, offset); err != nil {
				return err
			}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}

// ReadSTF loads an STF dump from r. Metrics are recomputed, which for an
// unmodified dump reproduces the original font exactly.
func ReadSTF(r io.Reader) (*Font, error) {
	var dump stfFont
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("bad STF font: %v", err)
	}
	if dump.UnitsPerEm <= 0.0 {
		return nil, fmt.Errorf("bad STF font: units-per-em %v", dump.UnitsPerEm)
	}
	fb := NewFontBuilder()
	fb.Name = dump.Name
	fb.Style = dump.Style
	fb.Ascent = dump.Ascent
	fb.Descent = dump.Descent
	fb.UnitsPerEm = dump.UnitsPerEm
	for _, glyph := range dump.Glyphs {
		fb.AddGlyph(glyph.Code, glyph.Advance, Program(glyph.Outline))
	}
	return fb.Font()
}
