// Package direction persists the last drive direction of the actuator in the
// EEPROM bit reserved by the configuration.
package direction

import (
	"strings"

	"gatedrive-go/config"
	"gatedrive-go/eeprom"
	"gatedrive-go/errcode"
)

// Direction is the last commanded travel direction. It is stored as one bit:
// clear for Open, set for Close.
type Direction uint8

const (
	Open Direction = iota
	Close
)

func (d Direction) String() string {
	switch d {
	case Open:
		return "open"
	case Close:
		return "close"
	}
	return "unknown"
}

// Parse accepts "open"/"close" (any case) and "0"/"1".
func Parse(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open", "0":
		return Open, nil
	case "close", "closed", "1":
		return Close, nil
	}
	return 0, errcode.New(errcode.InvalidParams, "direction.parse", s)
}

// Recorder reads and writes the direction bit. Sibling bits in the same byte
// are left untouched.
type Recorder struct {
	store eeprom.ByteStore
	flag  eeprom.Flag
}

// NewRecorder binds a Recorder to the bit at in store.
func NewRecorder(store eeprom.ByteStore, at config.LastDirection) *Recorder {
	return &Recorder{store: store, flag: eeprom.Flag{Addr: at.Address, Bit: at.Bit}}
}

// Load returns the persisted direction; a set bit means Close.
func (r *Recorder) Load() Direction {
	if r.flag.Get(r.store) {
		return Close
	}
	return Open
}

// Save persists d, touching only the recorder's bit.
func (r *Recorder) Save(d Direction) { r.flag.Set(r.store, d == Close) }

// Flag returns the bit this recorder is bound to.
func (r *Recorder) Flag() eeprom.Flag { return r.flag }
