package cli

import (
	"errors"
	"fmt"

	"gatedrive-go/eeprom"
	"gatedrive-go/eeprom/at24"
	"gatedrive-go/eeprom/image"
	"gatedrive-go/eeprom/linuxi2c"
	"gatedrive-go/errcode"
	"gatedrive-go/internal/hostlog"

	"github.com/spf13/viper"
)

var errNoStore = errors.New("no store selected: set --image or --i2c-bus")

// session is an opened store plus the hooks to finish with it.
type session struct {
	eeprom.ByteStore
	kind  string
	where string
	size  int

	flush func() error
	fault func() error
	close func() error
}

func openStore(vip *viper.Viper) (*session, error) {
	size := vip.GetInt(keySize)
	if path := vip.GetString(keyImage); path != "" {
		img, err := image.Open(path, size)
		if err != nil {
			return nil, err
		}
		if n := img.FileLen(); n >= 0 && n != img.Size() && !vip.GetBool(keySizeSet) {
			return nil, errcode.New(errcode.InvalidParams, "eepromctl",
				fmt.Sprintf("image %s is %d bytes but capacity is %d; pass --size to confirm", path, n, img.Size()))
		}
		hostlog.Log.Debugf("image %s opened (%d bytes)", img.Path(), img.Size())
		return &session{
			ByteStore: img,
			kind:      "image",
			where:     img.Path(),
			size:      img.Size(),
			flush:     img.Flush,
			fault:     func() error { return nil },
			close:     func() error { return nil },
		}, nil
	}

	busNum := vip.GetInt(keyI2CBus)
	if busNum < 0 {
		return nil, errNoStore
	}
	bus := linuxi2c.Open(busNum)
	addr := vip.GetInt(keyI2CAddr)
	if addr <= 0 || addr > 0x7F {
		bus.Close()
		return nil, errcode.New(errcode.InvalidAddress, "eepromctl", fmt.Sprintf("i2c address %#x", addr))
	}
	st := at24.New(bus, at24.Config{Address: uint16(addr), Size: size})
	hostlog.Log.Debugf("at24 on i2c-%d addr 0x%02x (%d bytes)", busNum, addr, st.Size())
	return &session{
		ByteStore: st,
		kind:      "at24",
		where:     fmt.Sprintf("i2c-%d@0x%02x", busNum, addr),
		size:      st.Size(),
		flush:     func() error { return nil },
		fault:     st.Err,
		close:     bus.Close,
	}, nil
}

// finish surfaces latched bus faults, persists image writes and releases the
// transport, in that order. The first failure wins.
func (s *session) finish() error {
	err := s.fault()
	if err == nil {
		err = s.flush()
	}
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}

// withStore opens the store, runs fn and finishes the session.
func withStore(vip *viper.Viper, fn func(*session) error) error {
	s, err := openStore(vip)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		s.close()
		return err
	}
	return s.finish()
}

func (s *session) checkAddr(addr uint16) error {
	if int(addr) >= s.size {
		return errcode.New(errcode.InvalidAddress, "eepromctl",
			fmt.Sprintf("address %d beyond capacity %d", addr, s.size))
	}
	return nil
}
