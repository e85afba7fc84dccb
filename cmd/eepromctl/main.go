package main

import (
	"fmt"
	"os"

	"gatedrive-go/cmd/eepromctl/cli"
	"gatedrive-go/internal/hostlog"
)

func main() {
	err := cli.NewRootCmd().Execute()
	hostlog.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "eepromctl:", err)
		os.Exit(1)
	}
}
