package cli

import (
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newInfoCmd(vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the selected store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(vip, func(s *session) error {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "kind:     %s\n", s.kind)
				fmt.Fprintf(out, "location: %s\n", s.where)
				fmt.Fprintf(out, "capacity: %s (%d bytes)\n", bytefmt.ByteSize(uint64(s.size)), s.size)
				return nil
			})
		},
	}
}
