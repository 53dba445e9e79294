package main

import (
	"context"
	"os"

	"github.com/aretw0/stdinbridge/internal/cli"
	"github.com/aretw0/stdinbridge/internal/config"
	"github.com/aretw0/stdinbridge/internal/logging"
	"github.com/spf13/cobra"
)

var echoCmd = &cobra.Command{
	Use:   "echo",
	Short: "Echo every line read from stdin",
	Long: `Starts a bridge over stdin and drains it into the selected output until stdin is
exhausted (piped input) or the process is interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := cli.ApplyFlags(cmd.Flags(), &cfg); err != nil {
			return err
		}

		sc := cli.NewSignalContext(context.Background())
		defer sc.Cancel()

		return cli.RunEcho(sc, cfg, os.Stdin, os.Stdout, logging.ForDebug(cfg.Debug))
	},
}

func init() {
	rootCmd.AddCommand(echoCmd)
	cli.RegisterEchoFlags(echoCmd.Flags())

	// 'echo' is what the binary does when no command is given.
	rootCmd.RunE = echoCmd.RunE
	cli.RegisterEchoFlags(rootCmd.Flags())
}
