// Package gcode writes pen and tool motion as G-code, using printf-style
// templates from a per-device configuration so that one driver serves
// plotters, engravers and vinyl cutters alike.
package gcode

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Device holds the G-code dialect of one output device. Move, Draw and
// Curve are printf templates receiving the coordinates in order, Draw and
// Curve additionally the feed rate and spindle speed when the Feed and
// Speed flags are set. An empty Curve template means the device has no
// native curve support and all splines must be tesselated first.
type Device struct {
	Start         string   `json:"start"`
	Settings      string   `json:"settings"`
	SettingValues []string `json:"setting-values"`
	Inch          string   `json:"inch"`
	MM            string   `json:"mm"`
	Move          string   `json:"move"`
	Feed          bool     `json:"feed"`
	Speed         bool     `json:"speed"`
	YInvert       bool     `json:"y-invert"`
	Draw          string   `json:"draw"`
	Curve         string   `json:"curve"`
	Stop          string   `json:"stop"`
}

// DefaultDevice returns the generic G-code dialect: absolute positioning in
// the XY plane, rapid moves, feed-controlled draws, no native curves.
func DefaultDevice() Device {
	return Device{
		Start:   "G90\nG17\n",
		Inch:    "G20\n",
		MM:      "G21\n",
		Move:    "G00 X%v Y%v\n",
		Feed:    true,
		YInvert: true,
		Draw:    "G01 X%v Y%v F%v\n",
		Stop:    "M30\n",
	}
}

// flag is a bool that also accepts the strings "true" and "false", which
// older device files use.
type flag bool

func (b *flag) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case bool:
		*b = flag(v)
	case string:
		switch v {
		case "true":
			*b = true
		case "false":
			*b = false
		default:
			return fmt.Errorf("bad flag %q", v)
		}
	default:
		return fmt.Errorf("bad flag %v", v)
	}
	return nil
}

// UnmarshalJSON overlays the keys present in data onto the current values,
// so a device file only needs to state what differs from the default.
func (dev *Device) UnmarshalJSON(data []byte) error {
	type device struct {
		Start         *string   `json:"start"`
		Settings      *string   `json:"settings"`
		SettingValues *[]string `json:"setting-values"`
		Inch          *string   `json:"inch"`
		MM            *string   `json:"mm"`
		Move          *string   `json:"move"`
		Feed          *flag     `json:"feed"`
		Speed         *flag     `json:"speed"`
		YInvert       *flag     `json:"y-invert"`
		Draw          *string   `json:"draw"`
		Curve         *string   `json:"curve"`
		Stop          *string   `json:"stop"`
	}
	var d device
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setFlag := func(dst *bool, src *flag) {
		if src != nil {
			*dst = bool(*src)
		}
	}
	set(&dev.Start, d.Start)
	set(&dev.Settings, d.Settings)
	if d.SettingValues != nil {
		dev.SettingValues = *d.SettingValues
	}
	set(&dev.Inch, d.Inch)
	set(&dev.MM, d.MM)
	set(&dev.Move, d.Move)
	setFlag(&dev.Feed, d.Feed)
	setFlag(&dev.Speed, d.Speed)
	setFlag(&dev.YInvert, d.YInvert)
	set(&dev.Draw, d.Draw)
	set(&dev.Curve, d.Curve)
	set(&dev.Stop, d.Stop)
	return nil
}

// LoadDevice reads a device file and overlays it onto the default dialect.
func LoadDevice(r io.Reader) (Device, error) {
	dev := DefaultDevice()
	if err := json.NewDecoder(r).Decode(&dev); err != nil {
		return Device{}, fmt.Errorf("bad device file: %v", err)
	}
	return dev, nil
}

// SetSettings overrides the leading setting values from a comma-separated
// list. Values beyond those the device declares are ignored.
func (dev *Device) SetSettings(settings string) error {
	cr := csv.NewReader(strings.NewReader(settings))
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("bad settings %q: %v", settings, err)
	}
	if len(rows) == 0 {
		return nil
	}
	row := rows[len(rows)-1]
	for i := 0; i < len(row) && i < len(dev.SettingValues); i++ {
		dev.SettingValues[i] = row[i]
	}
	return nil
}
