// Package eeprom provides single-bit access to byte-addressable persistent
// storage.
//
// The accessor keeps no state of its own. Each ReadBit issues one store read;
// each WriteBit issues one read followed by one write of the same address.
// The pair is not atomic: callers that let interrupts or other tasks touch the
// same byte must serialise around WriteBit themselves.
package eeprom

import "gatedrive-go/x/bitx"

// ByteStore is byte-level access to persistent storage. Implementations are
// expected to succeed; stores that can fail report it out of band.
type ByteStore interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

// Bits is a handle binding the bit operations to one store.
type Bits struct {
	store ByteStore
}

// New binds the bit operations to store.
func New(store ByteStore) Bits { return Bits{store: store} }

// ReadBit returns bit pos (0 = LSB) of the byte at addr as 0 or 1.
// pos is not validated; positions 8 and above read as 0.
func (b Bits) ReadBit(addr uint16, pos uint8) uint8 { return ReadBit(b.store, addr, pos) }

// WriteBit sets bit pos of the byte at addr when value is nonzero and clears
// it otherwise. All other bits are written back unchanged.
func (b Bits) WriteBit(addr uint16, pos uint8, value uint8) { WriteBit(b.store, addr, pos, value) }

// ReadBit is the free-function form of Bits.ReadBit.
func ReadBit(s ByteStore, addr uint16, pos uint8) uint8 {
	return bitx.Bit(s.Read(addr), pos)
}

// WriteBit is the free-function form of Bits.WriteBit.
func WriteBit(s ByteStore, addr uint16, pos uint8, value uint8) {
	v := s.Read(addr)
	s.Write(addr, bitx.With(v, pos, value))
}

// Flag names one persistent bit.
type Flag struct {
	Addr uint16
	Bit  uint8
}

// Get reports whether the flag bit is set.
func (f Flag) Get(s ByteStore) bool { return ReadBit(s, f.Addr, f.Bit) == 1 }

// Set sets the flag bit when on is true and clears it otherwise.
func (f Flag) Set(s ByteStore, on bool) {
	var v uint8
	if on {
		v = 1
	}
	WriteBit(s, f.Addr, f.Bit, v)
}
