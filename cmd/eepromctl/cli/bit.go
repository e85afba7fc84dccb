package cli

import (
	"fmt"

	"gatedrive-go/eeprom"
	"gatedrive-go/internal/hostlog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newBitCmd(vip *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bit",
		Short: "Read or write a single EEPROM bit",
	}

	get := &cobra.Command{
		Use:   "get ADDR POS",
		Short: "Print bit POS (0 = LSB) of the byte at ADDR",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, pos, err := addrPos(args)
			if err != nil {
				return err
			}
			return withStore(vip, func(s *session) error {
				if err := s.checkAddr(addr); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), eeprom.New(s).ReadBit(addr, pos))
				return nil
			})
		},
	}

	set := &cobra.Command{
		Use:   "set ADDR POS VALUE",
		Short: "Set bit POS of the byte at ADDR (any nonzero VALUE sets it)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, pos, err := addrPos(args)
			if err != nil {
				return err
			}
			val, err := parseValue(args[2])
			if err != nil {
				return err
			}
			return withStore(vip, func(s *session) error {
				if err := s.checkAddr(addr); err != nil {
					return err
				}
				before := s.Read(addr)
				eeprom.New(s).WriteBit(addr, pos, val)
				after := s.Read(addr)
				hostlog.Log.Debugf("bit set %s addr=%d pos=%d value=%d", s.where, addr, pos, val)
				fmt.Fprintf(cmd.OutOrStdout(), "0x%04x: %08b -> %08b\n", addr, before, after)
				return nil
			})
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}

func addrPos(args []string) (uint16, uint8, error) {
	addr, err := parseAddr(args[0])
	if err != nil {
		return 0, 0, err
	}
	pos, err := parsePos(args[1])
	if err != nil {
		return 0, 0, err
	}
	return addr, pos, nil
}
