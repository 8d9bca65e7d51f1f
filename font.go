package penman

import (
	"fmt"
	"math"
	"sort"
)

// TextMetrics describes the ink extent of a glyph or a laid-out string.
// Ascent and Descent are stored positive: glyphs are drawn with the baseline
// at y=0 and ink rising to negative y, so Ascent is the negated ink top.
// Width is the cursor advance, independent of the ink extent.
type TextMetrics struct {
	LeftSideBearing  float64 `json:"left-side-bearing"`
	RightSideBearing float64 `json:"right-side-bearing"`
	Ascent           float64 `json:"ascent"`
	Descent          float64 `json:"descent"`
	Width            float64 `json:"width"`
}

// metricsTolerance returns the flattening tolerance used when measuring
// glyph ink, fine enough that cached metrics are stable for any em size.
func metricsTolerance(unitsPerEm float64) float64 {
	return unitsPerEm / 1.0e5
}

// charPage maps the low byte of a codepoint to a glyph offset in the
// outline buffer, for all codepoints sharing the same high bits. A zero
// slot means the codepoint is not covered and falls back to notdef, which
// itself always lives at offset 0.
type charPage struct {
	page    uint32 // codepoint >> 8
	offsets [256]uint32
}

// Font is an immutable stroke font: a flat outline buffer, a paged
// codepoint lookup and per-glyph metrics cached at load time. Glyphs start
// with their advance width followed by their outline program.
type Font struct {
	Name       string
	Style      string
	Ascent     float64
	Descent    float64
	UnitsPerEm float64

	outlines []float64
	pages    []charPage
	metrics  map[uint32]TextMetrics
}

// newFont validates every reachable glyph program and caches its metrics.
// Pages must be sorted by page number. A malformed outline is a load error,
// never a render-time surprise.
func newFont(name, style string, ascent, descent, unitsPerEm float64, outlines []float64, pages []charPage) (*Font, error) {
	f := &Font{
		Name:       name,
		Style:      style,
		Ascent:     ascent,
		Descent:    descent,
		UnitsPerEm: unitsPerEm,
		outlines:   outlines,
		pages:      pages,
		metrics:    map[uint32]TextMetrics{},
	}
	if len(outlines) == 0 {
		return nil, fmt.Errorf("font %s: empty outline buffer", name)
	}
	offsets := []uint32{0}
	for _, page := range pages {
		for _, offset := range page.offsets {
			if offset != 0 {
				offsets = append(offsets, offset)
			}
		}
	}
	for _, offset := range offsets {
		if _, ok := f.metrics[offset]; ok {
			continue
		}
		m, err := f.measure(offset)
		if err != nil {
			return nil, fmt.Errorf("font %s: %v", name, err)
		}
		f.metrics[offset] = m
	}
	return f, nil
}

func (f *Font) measure(offset uint32) (TextMetrics, error) {
	advance, prg, err := f.glyph(offset)
	if err != nil {
		return TextMetrics{}, err
	}
	measurer := NewMeasurer(metricsTolerance(f.UnitsPerEm))
	if err := prg.Replay(measurer); err != nil {
		return TextMetrics{}, fmt.Errorf("glyph at %d: %v", offset, err)
	}
	bounds := measurer.Bounds()
	return TextMetrics{
		LeftSideBearing:  bounds.Min.X,
		RightSideBearing: bounds.Max.X,
		Ascent:           -bounds.Min.Y,
		Descent:          bounds.Max.Y,
		Width:            advance,
	}, nil
}

// glyph returns the advance and outline program starting at offset.
func (f *Font) glyph(offset uint32) (float64, Program, error) {
	if len(f.outlines) <= int(offset) {
		return 0.0, nil, fmt.Errorf("glyph offset %d out of range", offset)
	}
	return f.outlines[offset], Program(f.outlines[offset+1:]), nil
}

// glyphOffset looks up the outline offset for r. Codepoints without a page
// or with an empty slot map to notdef at offset 0.
func (f *Font) glyphOffset(r rune) uint32 {
	page := uint32(r) >> 8
	i := sort.Search(len(f.pages), func(i int) bool {
		return page <= f.pages[i].page
	})
	if i == len(f.pages) || f.pages[i].page != page {
		return 0
	}
	return f.pages[i].offsets[uint32(r)&0xFF]
}

// GlyphMetrics returns the cached metrics for r, falling back to notdef for
// codepoints the font does not cover.
func (f *Font) GlyphMetrics(r rune) TextMetrics {
	return f.metrics[f.glyphOffset(r)]
}

// GlyphPath draws the outline of r on d and returns the glyph's advance.
// Programs were validated at load time.
func (f *Font) GlyphPath(r rune, d Drawer) float64 {
	advance, prg, err := f.glyph(f.glyphOffset(r))
	if err != nil {
		panic(err)
	}
	prg.MustReplay(d)
	return advance
}

// TextPath draws s on d, advancing along the baseline after each glyph, and
// returns the total advance in font units.
func (f *Font) TextPath(s string, d Drawer) float64 {
	offset := NewOffset(d)
	for _, r := range s {
		advance := f.GlyphPath(r, offset)
		offset.Step(advance, 0.0)
	}
	dx, _ := offset.Offset()
	return dx
}

// TextMetrics returns the ink extent and total advance of s as laid out by
// TextPath: per-glyph metrics shifted by the cumulative advance and folded
// into string-level extremes.
func (f *Font) TextMetrics(s string) TextMetrics {
	var tm TextMetrics
	x := 0.0
	first := true
	for _, r := range s {
		gm := f.GlyphMetrics(r)
		if first {
			tm.LeftSideBearing = x + gm.LeftSideBearing
			tm.RightSideBearing = x + gm.RightSideBearing
			tm.Ascent = gm.Ascent
			tm.Descent = gm.Descent
			first = false
		} else {
			tm.LeftSideBearing = math.Min(tm.LeftSideBearing, x+gm.LeftSideBearing)
			tm.RightSideBearing = math.Max(tm.RightSideBearing, x+gm.RightSideBearing)
			tm.Ascent = math.Max(tm.Ascent, gm.Ascent)
			tm.Descent = math.Max(tm.Descent, gm.Descent)
		}
		x += gm.Width
		tm.Width = math.Max(tm.Width, x)
	}
	return tm
}

////////////////////////////////////////////////////////////////

// FontBuilder assembles a Font from individual glyphs, in whatever order a
// parser encounters them. Codepoint zero holds the notdef outline; when no
// notdef is supplied, a plain box scaled to the em size is synthesized so
// that uncovered codepoints still leave visible ink.
type FontBuilder struct {
	Name       string
	Style      string
	Ascent     float64
	Descent    float64
	UnitsPerEm float64

	glyphs map[rune][]float64
}

// NewFontBuilder returns an empty builder.
func NewFontBuilder() *FontBuilder {
	return &FontBuilder{glyphs: map[rune][]float64{}}
}

// AddGlyph registers the outline program of r with the given advance,
// replacing any earlier registration for the same codepoint. The program is
// stored terminated; whether one already is gets decided by walking opcode
// arities, since a trailing zero coordinate looks like a terminator.
func (fb *FontBuilder) AddGlyph(r rune, advance float64, prg Program) {
	if end, ok := prg.end(); ok {
		prg = prg[:end]
	}
	glyph := make([]float64, 0, 2+len(prg))
	glyph = append(glyph, advance)
	glyph = append(glyph, prg...)
	glyph = append(glyph, opEnd)
	fb.glyphs[r] = glyph
}

func (fb *FontBuilder) notdef() []float64 {
	w := 0.375 * fb.UnitsPerEm
	h := 0.65625 * fb.UnitsPerEm
	return []float64{0.5625 * fb.UnitsPerEm,
		opMove, 0, 0,
		opLine, 0, -h,
		opLine, w, -h,
		opLine, w, 0,
		opLine, 0, 0,
		opEnd,
	}
}

// Font lays out the glyph buffer with notdef first, builds the page tables
// and returns the finished font.
func (fb *FontBuilder) Font() (*Font, error) {
	runes := make([]rune, 0, len(fb.glyphs))
	for r := range fb.glyphs {
		if r != 0 {
			runes = append(runes, r)
		}
	}
	sort.Slice(runes, func(i, j int) bool {
		return runes[i] < runes[j]
	})

	notdef, ok := fb.glyphs[0]
	if !ok {
		notdef = fb.notdef()
	}
	outlines := append([]float64{}, notdef...)

	offsets := map[uint32]map[uint32]uint32{}
	for _, r := range runes {
		page := uint32(r) >> 8
		if _, ok := offsets[page]; !ok {
			offsets[page] = map[uint32]uint32{}
		}
		offsets[page][uint32(r)&0xFF] = uint32(len(outlines))
		outlines = append(outlines, fb.glyphs[r]...)
	}

	pageNums := make([]uint32, 0, len(offsets))
	for page := range offsets {
		pageNums = append(pageNums, page)
	}
	sort.Slice(pageNums, func(i, j int) bool {
		return pageNums[i] < pageNums[j]
	})
	pages := make([]charPage, len(pageNums))
	for i, num := range pageNums {
		pages[i].page = num
		for index, offset := range offsets[num] {
			pages[i].offsets[index] = offset
		}
	}
	return newFont(fb.Name, fb.Style, fb.Ascent, fb.Descent, fb.UnitsPerEm, outlines, pages)
}

////////////////////////////////////////////////////////////////

// DefaultFont is the built-in single-stroke font, drawn on a 64 units/em
// grid with ascent 50 and descent 14. It covers ASCII.
var DefaultFont = mustDefaultFont()

func mustDefaultFont() *Font {
	var page charPage
	copy(page.offsets[:], defaultOffsets)
	f, err := newFont("Default", "Roman", 50.0, 14.0, 64.0, defaultOutlines, []charPage{page})
	if err != nil {
		panic(err)
	}
	return f
}
