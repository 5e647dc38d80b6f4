package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [step|all]",
	Short: "Run setup steps",
	Long: `Run one or more setup steps.

Steps:
  all         - Run all setup steps in order
  update      - Refresh package index and upgrade packages
  hostname    - Set hostname and loopback alias
  timezone    - Pick a timezone from the system list
  locale      - Enable and default a UTF-8 locale
  ssh-install - Install and enable the OpenSSH server
  ssh-port    - Move the SSH daemon to a custom port
  honeypot    - Install the endlessh tarpit on port 22
  packages    - Install the essential package set
  docker      - Install the Docker engine
  motd        - Install a login status banner`,
	Args: cobra.ExactArgs(1),
	RunE: runStep,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runStep(cmd *cobra.Command, args []string) error {
	ctx, err := newContext()
	if err != nil {
		return err
	}

	step := args[0]
	if step == "all" {
		return ctx.RunAll()
	}

	if err := ctx.RunStep(step); err != nil {
		return fmt.Errorf("step %s failed: %w", step, err)
	}

	ctx.Steps.UI.Successf("Step %q completed", step)
	return nil
}
