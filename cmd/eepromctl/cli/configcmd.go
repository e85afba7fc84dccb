package cli

import (
	"fmt"
	"strconv"

	"gatedrive-go/config"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd(vip *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or check the drive configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(vip)
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"key", "value"})
			for _, row := range configRows(cfg) {
				table.Append(row)
			}
			table.Render()
			return nil
		},
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration against the store capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(vip)
			if err != nil {
				return err
			}
			if err := cfg.Validate(vip.GetInt(keySize)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.AddCommand(show, validate)
	return cmd
}

func configRows(c config.Config) [][]string {
	itoa := strconv.Itoa
	btoa := strconv.FormatBool
	return [][]string{
		{"board", c.Board},
		{"pins.inh", itoa(c.Pins.INH)},
		{"pins.in1", itoa(c.Pins.IN1)},
		{"pins.in2", itoa(c.Pins.IN2)},
		{"pins.err", itoa(c.Pins.ERR)},
		{"pins.start_button", itoa(c.Pins.StartButton)},
		{"pins.end_button", itoa(c.Pins.EndButton)},
		{"last_direction.address", itoa(int(c.LastDirection.Address))},
		{"last_direction.bit", itoa(int(c.LastDirection.Bit))},
		{"drive.recover_at_boot", btoa(c.Drive.RecoverAtBoot)},
		{"drive.recover_to_close_at_boot", btoa(c.Drive.RecoverToCloseAtBoot)},
		{"drive.max_drive_timeout", c.Drive.MaxDriveTimeout().String()},
		{"drive.end_button_release", c.Drive.EndButtonRelease().String()},
		{"drive.max_tries_before_safety_stop", itoa(c.Drive.MaxTriesBeforeSafetyStop)},
		{"drive.cooldown", c.Drive.Cooldown().String()},
		{"start_button_deadlock_release", c.StartButtonDeadlockRelease().String()},
	}
}
