// Package steps implements the individual configuration and installer steps:
// hostname, timezone, locale, SSH, honeypot, packages, Docker, and the MOTD
// banner. Steps are independent; a failing step reports its error and the
// orchestrator moves on to the next one.
package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dlanger/debian-setup/internal/config"
	"github.com/dlanger/debian-setup/internal/editor"
	"github.com/dlanger/debian-setup/internal/system"
	"github.com/dlanger/debian-setup/internal/ui"
)

// Context bundles everything a step needs. It is built once per invocation
// and passed explicitly; steps keep no ambient state.
type Context struct {
	Opts    config.Options
	UI      *ui.UI
	Log     *zap.SugaredLogger
	Runner  system.Runner
	Backups *system.BackupManager
	Apt     *system.Apt
	Systemd *system.Systemd

	// ConnectedViaSSH is detected once at startup and never changes during
	// the run.
	ConnectedViaSSH bool

	// SSHPortChanged is set when a port change was written while connected
	// over SSH; the reboot prompt warns about it.
	SSHPortChanged bool
	NewSSHPort     string
}

// applyEdit runs a content transform against a config file, honoring
// dry-run mode.
func (c *Context) applyEdit(path, desc string, transform editor.Transform) error {
	if c.Opts.DryRun {
		c.UI.DryRun(fmt.Sprintf("would %s in %s", desc, path))
		return nil
	}
	if err := editor.Apply(path, transform); err != nil {
		return err
	}
	c.Log.Infow("updated", "file", path, "change", desc)
	return nil
}

// writeConfigFile creates or replaces a generated config file, honoring
// dry-run mode.
func (c *Context) writeConfigFile(path, desc, content string, mode os.FileMode) error {
	if c.Opts.DryRun {
		c.UI.DryRun(fmt.Sprintf("would write %s (%s)", path, desc))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	c.Log.Infow("wrote", "file", path, "desc", desc)
	return nil
}

// fail reports a step error on the console and in the log, then returns it
func (c *Context) fail(err error) error {
	c.UI.Errorf("%v", err)
	c.Log.Error(err)
	return err
}
