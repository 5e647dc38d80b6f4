package system

import (
	"fmt"
	"os/exec"
)

// Apt drives the Debian package manager through a Runner so dry-run mode
// reports instead of installing.
type Apt struct {
	runner  Runner
	updated bool
}

// NewApt creates an Apt manager using the given runner
func NewApt(runner Runner) *Apt {
	return &Apt{runner: runner}
}

// Update refreshes the package index. Repeated calls within one run are
// no-ops so a sequence of install steps shares a single index refresh.
func (a *Apt) Update() error {
	if a.updated {
		return nil
	}
	if output, err := a.runner.Run("apt-get", "update", "-qq"); err != nil {
		return fmt.Errorf("apt-get update failed (exit %d): %s", ExitCode(err), output)
	}
	a.updated = true
	return nil
}

// Invalidate forces the next Install or Upgrade to refresh the package
// index again, used after a new source list is added.
func (a *Apt) Invalidate() {
	a.updated = false
}

// Install installs packages non-interactively
func (a *Apt) Install(packages ...string) error {
	if err := a.Update(); err != nil {
		return err
	}
	args := append([]string{"install", "-y"}, packages...)
	if output, err := a.runner.Run("apt-get", args...); err != nil {
		return fmt.Errorf("apt-get install failed (exit %d): %s", ExitCode(err), output)
	}
	return nil
}

// Upgrade upgrades all installed packages
func (a *Apt) Upgrade() error {
	if err := a.Update(); err != nil {
		return err
	}
	if output, err := a.runner.Run("apt-get", "upgrade", "-y"); err != nil {
		return fmt.Errorf("apt-get upgrade failed (exit %d): %s", ExitCode(err), output)
	}
	return nil
}

// IsPackageInstalled checks the dpkg database for an installed package.
// Queries bypass the runner: they are side-effect free and must reflect the
// real system even in dry-run mode.
func IsPackageInstalled(packageName string) bool {
	return exec.Command("dpkg", "-s", packageName).Run() == nil
}

// CommandExists checks if a command is available in PATH
func CommandExists(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
