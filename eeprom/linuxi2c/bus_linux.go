//go:build linux

package linuxi2c

import (
	"sync"

	"gatedrive-go/errcode"
	"gatedrive-go/internal/hostlog"

	i2c "github.com/d2r2/go-i2c"
	"tinygo.org/x/drivers"
)

// Bus adapts /dev/i2c-N to drivers.I2C. go-i2c binds a handle to one slave
// address, so one handle is opened per address on first use.
//
// A Tx with both w and r is issued as a write followed by a separate read,
// not a repeated start. That is enough for parts that keep an internal
// pointer between transfers, such as the AT24 family.
type Bus struct {
	num int

	mu    sync.Mutex
	conns map[uint16]*i2c.I2C
}

var _ drivers.I2C = (*Bus)(nil)

func Open(bus int) *Bus {
	if err := hostlog.QuietI2C(); err != nil {
		hostlog.Log.Debugf("i2c logger level: %v", err)
	}
	return &Bus{num: bus, conns: make(map[uint16]*i2c.I2C)}
}

func (b *Bus) conn(addr uint16) (*i2c.I2C, error) {
	if c, ok := b.conns[addr]; ok {
		return c, nil
	}
	if addr > 0x7F {
		return nil, errcode.New(errcode.InvalidAddress, "i2c.open", "10-bit addresses unsupported")
	}
	c, err := i2c.NewI2C(uint8(addr), b.num)
	if err != nil {
		return nil, errcode.Wrap(errcode.BusFault, "i2c.open", err)
	}
	hostlog.Log.Debugf("opened i2c-%d addr 0x%02x", b.num, addr)
	b.conns[addr] = c
	return c, nil
}

func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, err := b.conn(addr)
	if err != nil {
		return err
	}
	if len(w) > 0 {
		if _, err := c.WriteBytes(w); err != nil {
			return errcode.Wrap(errcode.BusFault, "i2c.write", err)
		}
	}
	if len(r) > 0 {
		if _, err := c.ReadBytes(r); err != nil {
			return errcode.Wrap(errcode.BusFault, "i2c.read", err)
		}
	}
	return nil
}

// Close releases every open handle. The first close failure is returned.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	var first error
	for a, c := range b.conns {
		if err := c.Close(); err != nil && first == nil {
			first = errcode.Wrap(errcode.BusFault, "i2c.close", err)
		}
		delete(b.conns, a)
	}
	return first
}
