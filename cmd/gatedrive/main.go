//go:build rp2040

// gatedrive boots the actuator's storage side on an rp2040 board: it loads the
// drive configuration, binds the AT24 EEPROM on I2C0 and reports the persisted
// last drive direction on UART0.
package main

import (
	"machine"
	"time"

	"gatedrive-go/config"
	"gatedrive-go/direction"
	"gatedrive-go/eeprom/at24"
	"gatedrive-go/errcode"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

const (
	consoleBaud = 115200
	i2cHz       = 400 * machine.KHz
	eepromSize  = 4096
	reportEvery = 1 * time.Second
)

var (
	console = uartx.UART0
	i2c     = machine.I2C0
)

type out struct{ u *uartx.UART }

func (o out) println(parts ...string) {
	for i, p := range parts {
		if i > 0 {
			_, _ = o.u.Write([]byte{' '})
		}
		_, _ = o.u.Write([]byte(p))
	}
	_, _ = o.u.Write([]byte("\r\n"))
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	_ = console.Configure(uartx.UARTConfig{
		BaudRate: consoleBaud,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	log := out{u: console}
	log.println("boot")

	if err := i2c.Configure(machine.I2CConfig{
		Frequency: i2cHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	}); err != nil {
		log.println("i2c0:", err.Error())
	}

	cfg := config.Default()
	if err := cfg.Validate(eepromSize); err != nil {
		// Without a usable direction bit nothing can be persisted; stay up and report.
		for {
			log.println("config:", err.Error())
			time.Sleep(reportEvery)
		}
	}

	store := at24.New(i2c, at24.Config{Size: eepromSize})
	rec := direction.NewRecorder(store, cfg.LastDirection)

	tick := time.NewTicker(reportEvery)
	defer tick.Stop()

	for t := range tick.C {
		d := rec.Load()
		if err := store.Err(); err != nil {
			log.println(t.Format("15:04:05"), "eeprom", string(errcode.Of(err)), err.Error())
			store.Reset()
			continue
		}
		log.println(t.Format("15:04:05"), cfg.Board, "last direction", d.String())
	}
}
