package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDumpCmd(vip *viper.Viper) *cobra.Command {
	var from, length int

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print a range of bytes as hex and binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(vip, func(s *session) error {
				if from < 0 || from >= s.size {
					return fmt.Errorf("--from %d outside 0..%d", from, s.size-1)
				}
				end := from + length
				if length <= 0 || end > s.size {
					end = s.size
				}

				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.SetHeader([]string{"addr", "hex", "bits"})
				for a := from; a < end; a++ {
					v := s.Read(uint16(a))
					table.Append([]string{
						fmt.Sprintf("0x%04x", a),
						fmt.Sprintf("%02x", v),
						fmt.Sprintf("%08b", v),
					})
				}
				table.Render()
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "first address")
	cmd.Flags().IntVar(&length, "len", 16, "number of bytes (0 = to the end)")
	return cmd
}
