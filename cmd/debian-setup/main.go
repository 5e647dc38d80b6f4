package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dlanger/debian-setup/internal/cli"
	"github.com/dlanger/debian-setup/internal/config"
	"github.com/dlanger/debian-setup/internal/logging"
	"github.com/dlanger/debian-setup/internal/system"
	"github.com/dlanger/debian-setup/pkg/version"
)

var (
	dryRun  bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "debian-setup",
	Short: "Interactive Debian server setup tool",
	Long: `An interactive tool for configuring a fresh Debian server.

It walks through hostname, timezone, locale, and SSH port configuration,
and optionally installs an SSH honeypot, an essential package set, the
Docker engine, and a login status banner. Every mutated config file is
backed up first, and --dry-run reports every action without executing it.

Run without arguments to start the full guided setup.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runFullSetup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu to run individual setup steps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		return cli.NewMenu(ctx).Show()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Report mutating actions instead of executing them")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Execution log path (default /var/log/debian-setup.log)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

func runFullSetup(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}
	return ctx.RunAll()
}

// newContext builds the per-invocation context. Mutating runs require root;
// a dry-run may be performed by any user.
func newContext() (*cli.SetupContext, error) {
	if !dryRun {
		if err := system.RequireRoot(); err != nil {
			return nil, err
		}
	}

	opts := config.Defaults()
	opts.DryRun = dryRun
	if logFile != "" {
		opts.LogFile = logFile
	}

	return cli.NewSetupContext(opts), nil
}

func main() {
	// An interrupt terminates immediately; cleanup is limited to what was
	// already flushed.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "Interrupted")
		path := config.Defaults().LogFile
		if logFile != "" {
			path = logFile
		}
		logging.New(path, dryRun).Error("interrupted by signal")
		os.Exit(130)
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
