package gcode

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/penman/penman"
	"github.com/tdewolff/test"
)

func TestWriterDefaultDevice(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, DefaultDevice())

	w.Start(false)
	w.MoveTo(1.0, 2.0)
	w.LineTo(3.0, 4.5)
	w.Stop()
	test.Error(t, w.Err())

	test.String(t, buf.String(), "G90\nG17\nG20\nG00 X1 Y2\nG01 X3 Y4.5 F100\nM30\n")
}

func TestWriterMillimeters(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, DefaultDevice())
	w.Start(true)
	w.Stop()
	test.String(t, buf.String(), "G90\nG17\nG21\nM30\n")
}

func TestWriterFeedSpeed(t *testing.T) {
	dev := DefaultDevice()
	dev.Speed = true
	dev.Draw = "G01 X%v Y%v F%v S%v\n"

	buf := &bytes.Buffer{}
	w := NewWriter(buf, dev)
	w.Feed = 20.0
	w.Speed = 80.0
	w.LineTo(0.0, 0.0)
	w.Feed = 55.5
	w.LineTo(1.0, 0.0)

	test.String(t, buf.String(), "G01 X0 Y0 F20 S80\nG01 X1 Y0 F55.5 S80\n")
}

func TestWriterSettings(t *testing.T) {
	dev := DefaultDevice()
	dev.Settings = "M3 P%s Q%s\n"
	dev.SettingValues = []string{"5", "7"}

	buf := &bytes.Buffer{}
	w := NewWriter(buf, dev)
	w.Start(false)
	test.String(t, buf.String(), "G90\nG17\nM3 P5 Q7\nG20\n")
}

func TestWriterNativeCurve(t *testing.T) {
	dev := DefaultDevice()
	dev.Curve = "G05 I%v J%v P%v Q%v X%v Y%v F%v\n"

	buf := &bytes.Buffer{}
	w := NewWriter(buf, dev)

	// a device with a curve template receives splines untesselated
	d := w.Drawer(0.001, false)
	test.T(t, d, penman.Drawer(w))

	d.MoveTo(0.0, 0.0)
	d.CubeTo(0.25, 1.0, 0.75, 1.0, 1.0, 0.0)
	test.String(t, buf.String(), "G00 X0 Y0\nG05 I0.25 J1 P0.75 Q1 X1 Y0 F100\n")
}

func TestWriterTesselation(t *testing.T) {
	for i, dev := range []Device{DefaultDevice()} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := NewWriter(buf, dev)

			// no curve template, so splines are flattened to draws
			d := w.Drawer(0.01, false)
			d.MoveTo(0.0, 0.0)
			d.CubeTo(0.0, 1.0, 1.0, 1.0, 1.0, 0.0)
			test.Error(t, w.Err())

			out := buf.String()
			test.That(t, !bytes.Contains(buf.Bytes(), []byte("G05")), "no native curves")
			test.That(t, 2 < bytes.Count(buf.Bytes(), []byte("G01")), "curve subdivided")
			test.That(t, out[:len("G00 X0 Y0\n")] == "G00 X0 Y0\n")
		})
	}
}

func TestWriterForcedTesselation(t *testing.T) {
	dev := DefaultDevice()
	dev.Curve = "G05 I%v J%v P%v Q%v X%v Y%v F%v\n"

	w := NewWriter(&bytes.Buffer{}, dev)
	_, ok := w.Drawer(0.01, true).(*penman.Flattener)
	test.That(t, ok, "forced tesselation returns a flattening stage")
}

func TestWriterStickyError(t *testing.T) {
	w := NewWriter(failWriter{}, DefaultDevice())
	w.Start(false)
	err := w.Err()
	test.That(t, err != nil, "write failure surfaces")
	w.MoveTo(1.0, 1.0)
	w.Stop()
	test.T(t, w.Err(), err)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("device offline")
}

func TestDec(t *testing.T) {
	var tests = []struct {
		f float64
		s string
	}{
		{0.0, "0"},
		{1.0, "1"},
		{-2.5, "-2.5"},
		{1.0 / 3.0, "0.333333"},
		{0.25, "0.25"},
		{-0.5, "-0.5"},
		{100.125, "100.125"},
		{1.0e10, "10000000000.0"},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.String(t, dec(tt.f).String(), tt.s)
		})
	}
}
