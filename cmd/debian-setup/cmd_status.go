package main

import (
	"github.com/spf13/cobra"

	"github.com/dlanger/debian-setup/internal/cli"
	"github.com/dlanger/debian-setup/internal/config"
	"github.com/dlanger/debian-setup/internal/steps"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show live system status",
	Long:  `Display the current system configuration the way the end-of-run summary does.`,
	RunE:  showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// showStatus only queries live state, so it never needs root
func showStatus(cmd *cobra.Command, args []string) error {
	opts := config.Defaults()
	opts.DryRun = true // status must never mutate anything
	if logFile != "" {
		opts.LogFile = logFile
	}

	ctx := cli.NewSetupContext(opts)
	return steps.RunSummary(ctx.Steps)
}
