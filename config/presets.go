package config

import (
	"sort"

	"gatedrive-go/errcode"
)

// The Arduino wiring is the one the firmware builds against; the ATtiny45-20
// pin map is kept for the reduced pin-count target. Drive limits are shared.

const cfgArduino = `{
  "board": "arduino",
  "pins": {"inh": 2, "in1": 3, "in2": 4, "err": 5, "start_button": 6, "end_button": 7},
  "last_direction": {"address": 2, "bit": 0},
  "drive": {
    "recover_at_boot": true,
    "recover_to_close_at_boot": true,
    "max_drive_timeout_ms": 4000,
    "end_button_release_ms": 500,
    "max_tries_before_safety_stop": 2,
    "drive_cooldown_ms": 50
  },
  "start_button_deadlock_release_ms": 1000
}`

const cfgATtiny45 = `{
  "board": "attiny45",
  "pins": {"inh": 2, "in1": 4, "in2": 1, "err": 5, "start_button": 3, "end_button": 0},
  "last_direction": {"address": 2, "bit": 0},
  "drive": {
    "recover_at_boot": true,
    "recover_to_close_at_boot": true,
    "max_drive_timeout_ms": 4000,
    "end_button_release_ms": 500,
    "max_tries_before_safety_stop": 2,
    "drive_cooldown_ms": 50
  },
  "start_button_deadlock_release_ms": 1000
}`

// DefaultPreset is the preset returned by Default.
const DefaultPreset = "arduino"

var embeddedPresets = map[string][]byte{
	"arduino":  []byte(cfgArduino),
	"attiny45": []byte(cfgATtiny45),
}

// PresetLookup allows overriding how presets are resolved.
var PresetLookup = func(name string) ([]byte, bool) {
	b, ok := embeddedPresets[name]
	return b, ok
}

// Preset decodes the named preset.
func Preset(name string) (Config, error) {
	raw, ok := PresetLookup(name)
	if !ok || len(raw) == 0 {
		return Config{}, errcode.New(errcode.UnknownPreset, "config.preset", name)
	}
	c, err := Decode(raw)
	if err != nil {
		return Config{}, errcode.Wrap(errcode.InvalidConfig, "config.preset", err)
	}
	return c, nil
}

// Default returns the Arduino preset.
func Default() Config {
	c, err := Preset(DefaultPreset)
	if err != nil {
		panic(err)
	}
	return c
}

// PresetNames lists the embedded presets in order.
func PresetNames() []string {
	names := make([]string, 0, len(embeddedPresets))
	for n := range embeddedPresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
