package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/penman/penman"
	"github.com/penman/penman/config"
	"github.com/penman/penman/gcode"
	"github.com/penman/penman/svg"
	"github.com/tdewolff/argp"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type Text struct {
	Inch      bool     `short:"i" desc:"Use inch units"`
	MM        bool     `short:"m" desc:"Use millimeter units"`
	Flatness  float64  `short:"f" default:"0.001" desc:"Spline decomposition tolerance"`
	Tesselate bool     `desc:"Force tesselation of splines"`
	Feed      float64  `default:"100" desc:"Feed rate"`
	Speed     float64  `default:"100" desc:"Spindle speed"`
	Device    string   `short:"d" desc:"Device config file"`
	Settings  string   `short:"S" desc:"Device-specific settings values"`
	Output    string   `short:"o" default:"-" desc:"Output file name"`
	ConfigDir []string `short:"C" name:"config-dir" desc:"Directories containing configuration files"`

	Rect        bool     `short:"r" desc:"Draw bounding rectangles"`
	Oblique     bool     `short:"O" desc:"Draw the glyphs using a shear transform"`
	Shear       float64  `default:"0.1" desc:"Oblique shear amount"`
	Font        string   `desc:"Font file name, SVG font or STF dump"`
	Template    string   `short:"t" desc:"Rectangle template file name"`
	Border      float64  `short:"b" desc:"Border width"`
	StartX      float64  `short:"x" name:"start-x" desc:"Starting X for generated boxes"`
	StartY      float64  `short:"y" name:"start-y" desc:"Starting Y for generated boxes"`
	Width       float64  `short:"w" default:"4" desc:"Box width"`
	Height      float64  `default:"1" desc:"Box height"`
	DeltaX      float64  `short:"X" name:"delta-x" default:"4" desc:"X offset between boxes"`
	DeltaY      float64  `short:"Y" name:"delta-y" default:"1" desc:"Y offset between boxes"`
	Columns     int      `short:"c" default:"1" desc:"Number of columns of boxes"`
	Value       string   `short:"v" desc:"Initial numeric text value"`
	Number      int      `short:"n" default:"1" desc:"Count of numeric values"`
	Text        string   `short:"T" desc:"Text string"`
	Align       string   `short:"a" default:"center" desc:"Alignment: left, center or right"`
	FontMetrics bool     `name:"font-metrics" desc:"Use font metrics for strings instead of glyph ink metrics"`
	DumpSTF     string   `name:"dump-stf" desc:"Dump the loaded font in STF format and exit"`
	Files       []string `index:"*" desc:"Text source files"`
}

func main() {
	cmd := argp.NewCmd(&Text{}, "Render stroked text as G-code")
	cmd.Parse()
	cmd.PrintHelp()
}

// loadFont reads an SVG font or an STF dump, sniffing the format from the
// first byte. An empty name selects the built-in font.
func loadFont(dirs config.Dirs, name string) (*penman.Font, error) {
	if name == "" {
		return penman.DefaultFont, nil
	}
	f, err := dirs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	first, err := r.Peek(1)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	var font *penman.Font
	if first[0] == '{' {
		font, err = penman.ReadSTF(r)
	} else {
		font, err = svg.ParseFont(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return font, nil
}

// loadRects reads a rectangle template: either a bare JSON list of
// [x, y, width, height] entries or an object with a "rects" key.
func loadRects(r io.Reader) ([]penman.Rect, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var entries [][]float64
	if err := json.Unmarshal(data, &entries); err != nil {
		var obj struct {
			Rects [][]float64 `json:"rects"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("bad template: %v", err)
		}
		entries = obj.Rects
	}
	rects := make([]penman.Rect, 0, len(entries))
	for _, e := range entries {
		if len(e) != 4 {
			return nil, fmt.Errorf("bad template rect %v: need four values", e)
		}
		rects = append(rects, penman.Rect{
			Min: penman.Point{X: e[0], Y: e[1]},
			Max: penman.Point{X: e[0] + e[2], Y: e[1] + e[3]},
		})
	}
	return rects, nil
}

// rects yields target rectangles: the template list when one was given,
// otherwise an endless column-major grid from the box options.
func (cmd *Text) rects(template []penman.Rect) iter.Seq[penman.Rect] {
	if template != nil {
		return func(yield func(penman.Rect) bool) {
			for _, r := range template {
				if !yield(r) {
					return
				}
			}
		}
	}
	columns := cmd.Columns
	if columns < 1 {
		columns = 1
	}
	return func(yield func(penman.Rect) bool) {
		y := cmd.StartY
		for {
			x := cmd.StartX
			for c := 0; c < columns; c++ {
				r := penman.Rect{
					Min: penman.Point{X: x, Y: y},
					Max: penman.Point{X: x + cmd.Width, Y: y + cmd.Height},
				}
				if !yield(r) {
					return
				}
				x += cmd.DeltaX
			}
			y += cmd.DeltaY
		}
	}
}

// lines yields the text items to render: a generated numeric sequence,
// the lines of the literal text option, then the lines of each input
// file. A numeric sequence runs unbounded when a finite rectangle
// template drives the pairing. File read problems end the sequence and
// are reported through errp.
func (cmd *Text) lines(finiteRects bool, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		if cmd.Value != "" {
			var v float64
			if _, err := fmt.Sscanf(cmd.Value, "%g", &v); err != nil {
				*errp = fmt.Errorf("bad value %q: %v", cmd.Value, err)
				return
			}
			for n := cmd.Number; finiteRects || 0 < n; n-- {
				if !yield(fmt.Sprintf("%d", int64(v))) {
					return
				}
				v += 1.0
			}
		}
		if cmd.Text != "" {
			for _, line := range strings.Split(cmd.Text, "\n") {
				if !yield(line) {
					return
				}
			}
		}
		for _, name := range cmd.Files {
			f, err := os.Open(name)
			if err != nil {
				*errp = err
				return
			}
			// tolerate invalid UTF-8 in input files
			scanner := bufio.NewScanner(transform.NewReader(f, unicode.UTF8.NewDecoder()))
			for scanner.Scan() {
				if !yield(strings.TrimSpace(scanner.Text())) {
					f.Close()
					return
				}
			}
			f.Close()
			if err := scanner.Err(); err != nil {
				*errp = fmt.Errorf("%s: %v", name, err)
				return
			}
		}
	}
}

func (cmd *Text) Run() error {
	dirs := config.Dirs(cmd.ConfigDir)

	align, err := penman.ParseAlign(cmd.Align)
	if err != nil {
		return err
	}

	dev := gcode.DefaultDevice()
	if cmd.Device != "" {
		f, err := dirs.Open(cmd.Device)
		if err != nil {
			return err
		}
		dev, err = gcode.LoadDevice(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %v", cmd.Device, err)
		}
	}
	if cmd.Settings != "" {
		if err := dev.SetSettings(cmd.Settings); err != nil {
			return err
		}
	}

	font, err := loadFont(dirs, cmd.Font)
	if err != nil {
		return err
	}

	if cmd.DumpSTF != "" {
		f, err := os.Create(cmd.DumpSTF)
		if err != nil {
			return err
		}
		if err := penman.WriteSTF(f, font); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	var template []penman.Rect
	if cmd.Template != "" {
		f, err := dirs.Open(cmd.Template)
		if err != nil {
			return err
		}
		template, err = loadRects(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %v", cmd.Template, err)
		}
	}

	// all configuration is loaded, only now touch the output
	output := os.Stdout
	if cmd.Output != "-" {
		if output, err = os.Create(cmd.Output); err != nil {
			return err
		}
		defer output.Close()
	}

	w := gcode.NewWriter(output, dev)
	w.Feed = cmd.Feed
	w.Speed = cmd.Speed
	sink := w.Drawer(cmd.Flatness, cmd.Tesselate)

	fitter := &penman.Fitter{
		Font:        font,
		Border:      cmd.Border,
		Align:       align,
		Oblique:     cmd.Oblique,
		Shear:       cmd.Shear,
		FontMetrics: cmd.FontMetrics,
		YInvert:     dev.YInvert,
	}

	w.Start(cmd.MM)

	var lineErr error
	nextRect, stopRect := iter.Pull(cmd.rects(template))
	defer stopRect()
	for line := range cmd.lines(template != nil, &lineErr) {
		r, ok := nextRect()
		if !ok {
			break
		}
		if cmd.Rect {
			penman.StrokeRect(sink, r)
		}
		if err := fitter.Draw(sink, r, line); err != nil {
			slog.Warn("skipping text", "text", line, "reason", err)
		}
	}
	if lineErr != nil {
		return lineErr
	}

	w.Stop()
	return w.Err()
}
