package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stdinbridge",
	Short: "stdinbridge reads stdin on a dedicated worker and forwards each line",
	Long: `stdinbridge reads standard input line by line on its own thread and hands every line
to a consumer through a bounded queue: the terminal, JSON Lines, or a Redis list or stream.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML or JSON config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Log lifecycle events to stderr")
}
