package config

import (
	"strconv"

	"gatedrive-go/errcode"
)

// Validate checks the values the storage path depends on against a store of
// the given capacity, plus basic sanity of the pin map and limits.
func (c Config) Validate(capacity int) error {
	ld := c.LastDirection
	if ld.Bit > 7 {
		return errcode.New(errcode.InvalidConfig, "config.validate",
			"last_direction.bit "+strconv.Itoa(int(ld.Bit))+" not in 0..7")
	}
	if capacity > 0 && int(ld.Address) >= capacity {
		return errcode.New(errcode.InvalidConfig, "config.validate",
			"last_direction.address "+strconv.Itoa(int(ld.Address))+" beyond store capacity "+strconv.Itoa(capacity))
	}

	seen := map[int]string{}
	for _, p := range []struct {
		name string
		pin  int
	}{
		{"inh", c.Pins.INH},
		{"in1", c.Pins.IN1},
		{"in2", c.Pins.IN2},
		{"err", c.Pins.ERR},
		{"start_button", c.Pins.StartButton},
		{"end_button", c.Pins.EndButton},
	} {
		if p.pin < 0 {
			return errcode.New(errcode.InvalidConfig, "config.validate", "pins."+p.name+" negative")
		}
		if other, dup := seen[p.pin]; dup {
			return errcode.New(errcode.InvalidConfig, "config.validate",
				"pins."+p.name+" shares pin "+strconv.Itoa(p.pin)+" with pins."+other)
		}
		seen[p.pin] = p.name
	}

	d := c.Drive
	if d.MaxDriveTimeoutMS < 0 || d.EndButtonReleaseMS < 0 || d.DriveCooldownMS < 0 ||
		c.StartButtonDeadlockReleaseMS < 0 {
		return errcode.New(errcode.InvalidConfig, "config.validate", "negative duration")
	}
	if d.MaxTriesBeforeSafetyStop < 0 {
		return errcode.New(errcode.InvalidConfig, "config.validate", "negative retry limit")
	}
	return nil
}
