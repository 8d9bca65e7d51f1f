package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/penman/penman"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// ParseFont reads a stroke font from an SVG <font> document. Glyph outlines
// use the SVG font convention of a Y axis growing up from the baseline, so
// they are mirrored into the ink-up-is-negative convention the drawing
// pipeline uses. A <missing-glyph> element becomes the notdef glyph.
func ParseFont(r io.Reader) (*penman.Font, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	fb := penman.NewFontBuilder()
	fb.UnitsPerEm = 1000.0 // SVG font default
	defaultAdvance := 0.0
	seenFont := false

	addGlyph := func(r rune, attrs map[string]string) error {
		advance := defaultAdvance
		if v, ok := attrs["horiz-adv-x"]; ok {
			var err error
			if advance, err = parseNumber(v); err != nil {
				return err
			}
		}
		builder := penman.NewBuilder()
		sink := penman.NewTransformer(builder, penman.Identity.Scale(1.0, -1.0))
		if d, ok := attrs["d"]; ok {
			if err := ParsePath([]byte(d), sink); err != nil {
				return err
			}
		}
		fb.AddGlyph(r, advance, builder.Program())
		return nil
	}

	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			}
			if !seenFont {
				return nil, fmt.Errorf("no font element")
			}
			return fb.Font()
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				val = val[1 : len(val)-1]
				attrs[string(l.Text())] = string(val)
			}

			tag := string(data[1:])
			var err error
			switch tag {
			case "font":
				seenFont = true
				if v, ok := attrs["horiz-adv-x"]; ok {
					defaultAdvance, err = parseNumber(v)
				}
			case "font-face":
				if v, ok := attrs["font-family"]; ok {
					fb.Name = v
				}
				if v, ok := attrs["font-style"]; ok {
					fb.Style = v
				}
				if v, ok := attrs["units-per-em"]; ok && err == nil {
					fb.UnitsPerEm, err = parseNumber(v)
				}
				if v, ok := attrs["ascent"]; ok && err == nil {
					fb.Ascent, err = parseNumber(v)
				}
				if v, ok := attrs["descent"]; ok && err == nil {
					// stored as a negative offset in SVG fonts
					if fb.Descent, err = parseNumber(v); err == nil && fb.Descent < 0.0 {
						fb.Descent = -fb.Descent
					}
				}
			case "missing-glyph":
				err = addGlyph(0, attrs)
			case "glyph":
				unicode, ok := attrs["unicode"]
				if !ok || unicode == "" {
					break // unnamed ligature or alternate, skip
				}
				err = addGlyph(firstRune(unicode), attrs)
			}
			if err != nil {
				return nil, parse.NewErrorLexer(z, "bad font: %w", err)
			}
		}
	}
}

// firstRune returns the first codepoint of a unicode attribute, decoding a
// numeric character reference since the lexer passes attribute values raw.
func firstRune(v string) rune {
	if strings.HasPrefix(v, "&#") && strings.HasSuffix(v, ";") {
		s := v[2 : len(v)-1]
		base := 10
		if s != "" && (s[0] == 'x' || s[0] == 'X') {
			s = s[1:]
			base = 16
		}
		if n, err := strconv.ParseUint(s, base, 21); err == nil {
			return rune(n)
		}
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r
}

func parseNumber(v string) (float64, error) {
	var f float64
	if _, err := fmt.Sscanf(v, "%g", &f); err != nil {
		return 0.0, fmt.Errorf("bad number %q", v)
	}
	return f, nil
}
