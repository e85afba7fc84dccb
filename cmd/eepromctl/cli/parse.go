package cli

import (
	"strconv"

	"gatedrive-go/errcode"
)

// Numbers accept Go literal prefixes: 0x10, 0b101, 0o17.

func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, errcode.New(errcode.InvalidAddress, "eepromctl", s)
	}
	return uint16(v), nil
}

func parsePos(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil || v > 7 {
		return 0, errcode.New(errcode.InvalidBit, "eepromctl", s+" not in 0..7")
	}
	return uint8(v), nil
}

func parseValue(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, errcode.New(errcode.InvalidParams, "eepromctl", s)
	}
	return uint8(v), nil
}
