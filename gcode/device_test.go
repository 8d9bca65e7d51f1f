package gcode

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLoadDeviceOverlay(t *testing.T) {
	// only the keys present override the default dialect
	dev, err := LoadDevice(strings.NewReader(`{
		"move": "PU %v,%v\n",
		"draw": "PD %v,%v\n",
		"feed": false,
		"y-invert": false
	}`))
	test.Error(t, err)

	test.String(t, dev.Move, "PU %v,%v\n")
	test.String(t, dev.Draw, "PD %v,%v\n")
	test.That(t, !dev.Feed)
	test.That(t, !dev.YInvert)
	// untouched keys keep their defaults
	def := DefaultDevice()
	test.String(t, dev.Start, def.Start)
	test.String(t, dev.Stop, def.Stop)
	test.String(t, dev.Inch, def.Inch)
}

func TestLoadDeviceStringFlags(t *testing.T) {
	// older device files spell booleans as strings
	dev, err := LoadDevice(strings.NewReader(`{"feed": "false", "speed": "true"}`))
	test.Error(t, err)
	test.That(t, !dev.Feed)
	test.That(t, dev.Speed)

	_, err = LoadDevice(strings.NewReader(`{"feed": "yes"}`))
	test.That(t, err != nil, "must error")
	_, err = LoadDevice(strings.NewReader(`{"feed": 1}`))
	test.That(t, err != nil, "must error")
}

func TestLoadDeviceSettings(t *testing.T) {
	dev, err := LoadDevice(strings.NewReader(`{
		"settings": "S1=%s\nS2=%s\n",
		"setting-values": ["10", "20"]
	}`))
	test.Error(t, err)
	test.String(t, dev.Settings, "S1=%s\nS2=%s\n")
	test.T(t, dev.SettingValues, []string{"10", "20"})
}

func TestLoadDeviceBadJSON(t *testing.T) {
	_, err := LoadDevice(strings.NewReader("not json"))
	test.That(t, err != nil, "must error")
}

func TestSetSettings(t *testing.T) {
	dev := DefaultDevice()
	dev.SettingValues = []string{"1", "2", "3"}

	// a short list overrides only the leading values
	test.Error(t, dev.SetSettings("9,8"))
	test.T(t, dev.SettingValues, []string{"9", "8", "3"})

	// extra values beyond the declared ones are ignored
	test.Error(t, dev.SetSettings("a,b,c,d,e"))
	test.T(t, dev.SettingValues, []string{"a", "b", "c"})

	// the last row of a multi-line value wins
	test.Error(t, dev.SetSettings("1,1,1\n7,7"))
	test.T(t, dev.SettingValues, []string{"7", "7", "c"})

	test.That(t, dev.SetSettings("\"unterminated") != nil, "must error")
}
