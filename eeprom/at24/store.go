// Package at24 adapts an AT24Cxx I2C EEPROM to eeprom.ByteStore.
//
// The byte store contract has no error path, so bus failures are latched:
// the first failure is kept until Reset and can be read with Err. A failed
// read returns eeprom.Erased.
package at24

import (
	"gatedrive-go/eeprom"
	"gatedrive-go/errcode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/at24cx"
)

const (
	AddressDefault  = 0x50
	PageSizeDefault = 32
	SizeDefault     = 4096 // AT24C32
)

// Config selects the part. Zero fields take the defaults above.
type Config struct {
	Address  uint16
	PageSize uint16
	Size     int
}

type Store struct {
	dev  at24cx.Device
	size int
	err  error

	reads, writes int
}

var _ eeprom.ByteStore = (*Store)(nil)

// New binds a store to an already configured I2C bus. It does not touch the bus.
func New(bus drivers.I2C, cfg Config) *Store {
	if cfg.Address == 0 {
		cfg.Address = AddressDefault
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = PageSizeDefault
	}
	if cfg.Size <= 0 || cfg.Size > 1<<16 {
		cfg.Size = SizeDefault
	}
	dev := at24cx.New(bus)
	dev.Address = cfg.Address
	dev.Configure(at24cx.Config{
		PageSize:        cfg.PageSize,
		StartRAMAddress: 0,
		EndRAMAddress:   uint16(cfg.Size - 1),
	})
	return &Store{dev: dev, size: cfg.Size}
}

func (s *Store) Read(addr uint16) byte {
	s.reads++
	if int(addr) >= s.size {
		s.fail(errcode.New(errcode.InvalidAddress, "at24.read", "address past end of device"))
		return eeprom.Erased
	}
	v, err := s.dev.ReadByte(addr)
	if err != nil {
		s.fail(errcode.Wrap(errcode.BusFault, "at24.read", err))
		return eeprom.Erased
	}
	return v
}

func (s *Store) Write(addr uint16, v byte) {
	s.writes++
	if int(addr) >= s.size {
		s.fail(errcode.New(errcode.InvalidAddress, "at24.write", "address past end of device"))
		return
	}
	if err := s.dev.WriteByte(addr, v); err != nil {
		s.fail(errcode.Wrap(errcode.BusFault, "at24.write", err))
	}
}

func (s *Store) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Err returns the first failure since the last Reset.
func (s *Store) Err() error { return s.err }

// Reset clears the latched failure.
func (s *Store) Reset() { s.err = nil }

func (s *Store) Size() int   { return s.size }
func (s *Store) Reads() int  { return s.reads }
func (s *Store) Writes() int { return s.writes }
