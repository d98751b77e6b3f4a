package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ternarybob/smarttravellers/internal/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		common.LoadVersionFromFile()
		fmt.Fprintf(cmd.OutOrStdout(), "Smart Travellers version %s\n", common.GetFullVersion())
	},
}
