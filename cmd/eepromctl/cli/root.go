// Package cli implements eepromctl, a host tool for inspecting and editing the
// actuator's EEPROM, either as an image file or live over Linux i2c-dev.
package cli

import (
	"fmt"
	"os"
	"strings"

	"gatedrive-go/config"
	"gatedrive-go/internal/hostlog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "gatedrive"
	defaultSize    = 4096
	defaultI2CAddr = 0x50
)

// Flag keys shared by pflag, viper and the environment (GATEDRIVE_I2C_BUS, ...).
const (
	keyImage   = "image"
	keySize    = "size"
	keyI2CBus  = "i2c-bus"
	keyI2CAddr = "i2c-addr"
	keyPreset  = "preset"
	keyConfig  = "config"
	keyDebug   = "debug"

	// keySizeSet records whether the capacity came from the flag or environment
	// rather than the default.
	keySizeSet = "size-set"
)

// NewRootCmd builds the command tree. Each call gets its own viper instance.
func NewRootCmd() *cobra.Command {
	vip := viper.New()

	root := &cobra.Command{
		Use:           "eepromctl",
		Short:         "Inspect and edit the gate drive EEPROM",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, env := os.LookupEnv(strings.ToUpper(envPrefix + "_" + keySize))
			vip.Set(keySizeSet, env || cmd.Flags().Changed(keySize))
			return hostlog.SetDebug(vip.GetBool(keyDebug))
		},
	}

	flags := root.PersistentFlags()
	addGlobalFlags(flags)

	if err := vip.BindPFlags(flags); err != nil {
		panic(err)
	}
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	root.AddCommand(
		newBitCmd(vip),
		newDumpCmd(vip),
		newDirectionCmd(vip),
		newConfigCmd(vip),
		newInfoCmd(vip),
	)
	return root
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String(keyImage, "", "EEPROM image file to operate on")
	flags.Int(keySize, defaultSize, "EEPROM capacity in bytes")
	flags.Int(keyI2CBus, -1, "Linux i2c bus number of a live AT24 EEPROM (used when --image is empty)")
	flags.Int(keyI2CAddr, defaultI2CAddr, "7-bit address of the live AT24 EEPROM")
	flags.String(keyPreset, config.DefaultPreset, "drive configuration preset ("+strings.Join(config.PresetNames(), ", ")+")")
	flags.String(keyConfig, "", "configuration file overriding preset values")
	flags.Bool(keyDebug, false, "enable debug logging")
}

// loadConfig resolves the preset and overlays the optional config file.
func loadConfig(vip *viper.Viper) (config.Config, error) {
	cfg, err := config.Preset(vip.GetString(keyPreset))
	if err != nil {
		return config.Config{}, err
	}
	path := vip.GetString(keyConfig)
	if path == "" {
		return cfg, nil
	}

	file := viper.New()
	file.SetConfigFile(path)
	if err := file.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := file.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	hostlog.Log.Debugf("config overlay %s applied", path)
	return cfg, nil
}
