// Package cli wires the setup steps together: dependency construction, the
// fixed-order orchestrator, and the interactive menu.
package cli

import (
	"fmt"

	"github.com/dlanger/debian-setup/internal/config"
	"github.com/dlanger/debian-setup/internal/logging"
	"github.com/dlanger/debian-setup/internal/steps"
	"github.com/dlanger/debian-setup/internal/system"
	"github.com/dlanger/debian-setup/internal/ui"
)

// SetupContext holds all dependencies needed for setup operations
type SetupContext struct {
	Steps *steps.Context
}

// NewSetupContext builds the dependency graph for one invocation
func NewSetupContext(opts config.Options) *SetupContext {
	uiInstance := ui.New()
	log := logging.New(opts.LogFile, opts.DryRun)
	runner := system.NewRunner(opts.DryRun, log, func(cmd string) {
		uiInstance.DryRun(cmd)
	})

	return &SetupContext{
		Steps: &steps.Context{
			Opts:            opts,
			UI:              uiInstance,
			Log:             log,
			Runner:          runner,
			Backups:         system.NewBackupManager(opts.BackupDir, opts.DryRun, log),
			Apt:             system.NewApt(runner),
			Systemd:         system.NewSystemd(runner),
			ConnectedViaSSH: system.ConnectedViaSSH(),
		},
	}
}

// StepInfo contains metadata about a setup step
type StepInfo struct {
	Name        string
	ShortName   string
	Description string
}

// AllSteps returns the steps in their fixed execution order
func AllSteps() []StepInfo {
	return []StepInfo{
		{Name: "System Update", ShortName: "update", Description: "Refresh package index and upgrade packages"},
		{Name: "Hostname", ShortName: "hostname", Description: "Set hostname and loopback alias"},
		{Name: "Timezone", ShortName: "timezone", Description: "Pick a timezone from the system list"},
		{Name: "Locale", ShortName: "locale", Description: "Enable and default a UTF-8 locale"},
		{Name: "SSH Server", ShortName: "ssh-install", Description: "Install and enable the OpenSSH server"},
		{Name: "SSH Port", ShortName: "ssh-port", Description: "Move the SSH daemon to a custom port"},
		{Name: "Honeypot", ShortName: "honeypot", Description: "Install the endlessh tarpit on port 22"},
		{Name: "Essential Packages", ShortName: "packages", Description: "Install the essential package set"},
		{Name: "Container Runtime", ShortName: "docker", Description: "Install the Docker engine"},
		{Name: "Status Banner", ShortName: "motd", Description: "Install a login status banner"},
	}
}

// RunStep executes a specific step by short name
func (s *SetupContext) RunStep(shortName string) error {
	switch shortName {
	case "update":
		return steps.RunSystemUpdate(s.Steps)
	case "hostname":
		return steps.RunHostname(s.Steps)
	case "timezone":
		return steps.RunTimezone(s.Steps)
	case "locale":
		return steps.RunLocale(s.Steps)
	case "ssh-install":
		return steps.RunSSHInstall(s.Steps)
	case "ssh-port":
		return steps.RunSSHConfigure(s.Steps)
	case "honeypot":
		return steps.RunHoneypot(s.Steps)
	case "packages":
		return steps.RunEssentialPackages(s.Steps)
	case "docker":
		return steps.RunDocker(s.Steps)
	case "motd":
		return steps.RunMOTD(s.Steps)
	default:
		return fmt.Errorf("unknown step: %s", shortName)
	}
}

// RunAll runs every step in the fixed order, then the summary and the
// reboot prompt. A failing step is logged and the sequence continues; the
// steps are deliberately best-effort, not transactional.
func (s *SetupContext) RunAll() error {
	if s.Steps.Opts.DryRun {
		s.Steps.UI.Warning("Dry-run mode: actions are reported, nothing is executed")
	}

	for _, step := range AllSteps() {
		if err := s.RunStep(step.ShortName); err != nil {
			s.Steps.UI.Errorf("Step %q failed: %v (continuing)", step.Name, err)
			s.Steps.Log.Errorw("step failed", "step", step.ShortName, "error", err)
		}
	}

	if err := steps.RunSummary(s.Steps); err != nil {
		return err
	}
	return steps.RunRebootPrompt(s.Steps)
}
