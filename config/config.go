// Package config describes the actuator's build-time configuration as one
// structure with named fields.
//
// Values are carried as given. Nothing in the storage path checks them; call
// Validate where a bad address or bit should stop boot.
package config

import (
	"encoding/json"
	"time"
)

// Pins are board pin numbers for the H-bridge and the two end buttons.
type Pins struct {
	INH         int `json:"inh" mapstructure:"inh"`
	IN1         int `json:"in1" mapstructure:"in1"`
	IN2         int `json:"in2" mapstructure:"in2"`
	ERR         int `json:"err" mapstructure:"err"`
	StartButton int `json:"start_button" mapstructure:"start_button"`
	EndButton   int `json:"end_button" mapstructure:"end_button"`
}

// LastDirection is the EEPROM bit reserved for the last drive direction.
type LastDirection struct {
	Address uint16 `json:"address" mapstructure:"address"`
	Bit     uint8  `json:"bit" mapstructure:"bit"`
}

// Drive holds the limits of the drive controller.
type Drive struct {
	RecoverAtBoot            bool `json:"recover_at_boot" mapstructure:"recover_at_boot"`
	RecoverToCloseAtBoot     bool `json:"recover_to_close_at_boot" mapstructure:"recover_to_close_at_boot"`
	MaxDriveTimeoutMS        int  `json:"max_drive_timeout_ms" mapstructure:"max_drive_timeout_ms"`
	EndButtonReleaseMS       int  `json:"end_button_release_ms" mapstructure:"end_button_release_ms"`
	MaxTriesBeforeSafetyStop int  `json:"max_tries_before_safety_stop" mapstructure:"max_tries_before_safety_stop"`
	DriveCooldownMS          int  `json:"drive_cooldown_ms" mapstructure:"drive_cooldown_ms"`
}

type Config struct {
	Board         string        `json:"board" mapstructure:"board"`
	Pins          Pins          `json:"pins" mapstructure:"pins"`
	LastDirection LastDirection `json:"last_direction" mapstructure:"last_direction"`
	Drive         Drive         `json:"drive" mapstructure:"drive"`

	// StartButtonDeadlockReleaseMS releases a stuck start button automatically.
	StartButtonDeadlockReleaseMS int `json:"start_button_deadlock_release_ms" mapstructure:"start_button_deadlock_release_ms"`
}

func (d Drive) MaxDriveTimeout() time.Duration  { return ms(d.MaxDriveTimeoutMS) }
func (d Drive) EndButtonRelease() time.Duration { return ms(d.EndButtonReleaseMS) }
func (d Drive) Cooldown() time.Duration         { return ms(d.DriveCooldownMS) }

func (c Config) StartButtonDeadlockRelease() time.Duration {
	return ms(c.StartButtonDeadlockReleaseMS)
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// Decode reads a Config from JSON bytes, a JSON string, or any value that
// marshals to the same shape (e.g. a decoded map).
func Decode(src any) (Config, error) {
	var c Config
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return Config{}, err
		}
		raw = b
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
