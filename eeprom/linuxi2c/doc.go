// Package linuxi2c exposes a Linux i2c-dev bus as a tinygo drivers.I2C so the
// TinyGo device drivers, at24cx included, run unchanged on single-board
// computers.
package linuxi2c
