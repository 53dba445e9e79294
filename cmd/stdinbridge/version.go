package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/stdinbridge"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stdinbridge",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stdinbridge version %s\n", strings.TrimSpace(stdinbridge.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
