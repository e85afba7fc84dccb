package cli

import (
	"fmt"

	"gatedrive-go/direction"
	"gatedrive-go/internal/hostlog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDirectionCmd(vip *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "direction",
		Short: "Read or write the persisted last drive direction",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the last drive direction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecorder(vip, func(r *direction.Recorder) error {
				fmt.Fprintln(cmd.OutOrStdout(), r.Load())
				return nil
			})
		},
	}

	set := &cobra.Command{
		Use:   "set open|close",
		Short: "Overwrite the last drive direction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := direction.Parse(args[0])
			if err != nil {
				return err
			}
			return withRecorder(vip, func(r *direction.Recorder) error {
				r.Save(d)
				hostlog.Log.Infof("last drive direction set to %s", d)
				fmt.Fprintln(cmd.OutOrStdout(), d)
				return nil
			})
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}

func withRecorder(vip *viper.Viper, fn func(*direction.Recorder) error) error {
	cfg, err := loadConfig(vip)
	if err != nil {
		return err
	}
	return withStore(vip, func(s *session) error {
		if err := cfg.Validate(s.size); err != nil {
			return err
		}
		return fn(direction.NewRecorder(s, cfg.LastDirection))
	})
}
