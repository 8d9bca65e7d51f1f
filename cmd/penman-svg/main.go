package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/penman/penman"
	"github.com/penman/penman/config"
	"github.com/penman/penman/gcode"
	"github.com/penman/penman/svg"
	"github.com/tdewolff/argp"
)

type SVG struct {
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

	PPI    float64  `default:"96" desc:"SVG user units per inch"`
	Params string   `short:"p" desc:"Cut parameter file name"`
	Files  []string `index:"*" desc:"SVG input files"`
}

func main() {
	cmd := argp.NewCmd(&SVG{}, "Convert SVG to G-code")
	cmd.Parse()
	cmd.PrintHelp()
}

func (cmd *SVG) Run() error {
	if len(cmd.Files) == 0 {
		return argp.ShowUsage
	}
	dirs := config.Dirs(cmd.ConfigDir)

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

	params := svg.DefaultParams(svg.Param{Feed: cmd.Feed, Speed: cmd.Speed})
	if cmd.Params != "" {
		f, err := dirs.Open(cmd.Params)
		if err != nil {
			return err
		}
		params, err = svg.LoadParams(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %v", cmd.Params, err)
		}
	}

	var docs []*svg.Document
	for _, name := range cmd.Files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		doc, err := svg.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %v", name, err)
		}
		docs = append(docs, doc)
	}

	var bounds penman.Rect
	for i, doc := range docs {
		if i == 0 {
			bounds = doc.Bounds(cmd.Flatness)
		} else {
			bounds = bounds.Union(doc.Bounds(cmd.Flatness))
		}
	}
	slog.Info("document bounds", "min", bounds.Min, "max", bounds.Max)

	unitsPerInch := 1.0
	if cmd.MM {
		unitsPerInch = 25.4
	}
	m := penman.Identity.Scale(unitsPerInch/cmd.PPI, unitsPerInch/cmd.PPI)
	if dev.YInvert {
		m = m.Translate(0.0, bounds.Min.Y+bounds.Max.Y).Scale(1.0, -1.0)
	}

	type cut struct {
		shape svg.Shape
		param svg.Param
	}
	var cuts []cut
	for _, doc := range docs {
		for _, shape := range doc.Shapes {
			cuts = append(cuts, cut{shape: shape, param: params.Get(shape.Stroke)})
		}
	}
	sort.SliceStable(cuts, func(i, j int) bool {
		return cuts[i].param.Order < cuts[j].param.Order
	})

	output := os.Stdout
	if cmd.Output != "-" {
		var err error
		if output, err = os.Create(cmd.Output); err != nil {
			return err
		}
		defer output.Close()
	}

	w := gcode.NewWriter(output, dev)
	w.Start(cmd.MM)
	for _, c := range cuts {
		w.Feed = c.param.Feed
		w.Speed = c.param.Speed
		sink := penman.NewTransformer(w.Drawer(cmd.Flatness, cmd.Tesselate), m)
		for pass := 0; pass < c.param.Passes; pass++ {
			if err := c.shape.Path.Replay(sink); err != nil {
				return err
			}
		}
	}
	w.Stop()
	return w.Err()
}
