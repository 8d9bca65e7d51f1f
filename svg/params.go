package svg

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// Param holds the cut parameters selected by one stroke color: processing
// order, feed rate, spindle speed and how many passes to cut.
type Param struct {
	Order  int     `json:"order"`
	Color  string  `json:"color"`
	Feed   float64 `json:"feed"`
	Speed  float64 `json:"speed"`
	Passes int     `json:"passes"`
	Name   string  `json:"name"`
}

// Params maps stroke colors to cut parameters, with a default for colors
// the table does not name.
type Params struct {
	params map[string]Param
	def    Param
}

// LoadParams reads a JSON parameter table:
//
//	{"params": [{"order":1, "color":"#ff0000", "feed":20, "speed":80,
//	             "passes":2, "name":"cut"}, ...],
//	 "default": {"order":99, "feed":100, "speed":100}}
//
// A missing or zero pass count means one pass.
func LoadParams(r io.Reader) (*Params, error) {
	var table struct {
		Params  []Param `json:"params"`
		Default Param   `json:"default"`
	}
	if err := json.NewDecoder(r).Decode(&table); err != nil {
		return nil, fmt.Errorf("bad parameter file: %v", err)
	}
	ps := &Params{params: map[string]Param{}, def: table.Default}
	ps.def.Color = "default"
	if ps.def.Name == "" {
		ps.def.Name = "default"
	}
	if ps.def.Passes < 1 {
		ps.def.Passes = 1
	}
	for _, param := range table.Params {
		if param.Passes < 1 {
			param.Passes = 1
		}
		ps.params[param.Color] = param
	}
	return ps, nil
}

// DefaultParams returns a table with only the given fallback entry.
func DefaultParams(def Param) *Params {
	def.Color = "default"
	if def.Name == "" {
		def.Name = "default"
	}
	if def.Passes < 1 {
		def.Passes = 1
	}
	return &Params{params: map[string]Param{}, def: def}
}

// Get returns the parameters for a stroke color, falling back to the
// default entry with a warning for colors the table does not name.
func (ps *Params) Get(color string) Param {
	if param, ok := ps.params[color]; ok {
		return param
	}
	slog.Warn("unknown stroke color, using default cut parameters", "color", color)
	return ps.def
}
