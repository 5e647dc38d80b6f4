package steps

import (
	"fmt"

	"github.com/dlanger/debian-setup/internal/common"
	"github.com/dlanger/debian-setup/internal/editor"
	"github.com/dlanger/debian-setup/internal/system"
	"github.com/dlanger/debian-setup/internal/ui"
)

// RunHostname configures the system hostname and keeps the loopback alias
// in the hosts file in sync.
func RunHostname(ctx *Context) error {
	ctx.UI.Step("Hostname")

	current := system.CurrentHostname()
	ctx.UI.Infof("Current hostname: %s", current)

	change, err := ctx.UI.PromptYesNo("Change the hostname?", false)
	if err != nil {
		return err
	}
	if !change {
		ctx.UI.Info("Keeping current hostname")
		return nil
	}

	hostname, err := ctx.UI.PromptInputWithValidation("New hostname", current, ui.Validator(common.ValidateHostname))
	if err != nil {
		return err
	}

	if _, err := ctx.Backups.Backup(ctx.Opts.HostsFile); err != nil {
		return ctx.fail(fmt.Errorf("hostname: %w", err))
	}

	if _, err := ctx.Runner.Run("hostnamectl", "set-hostname", hostname); err != nil {
		return ctx.fail(fmt.Errorf("hostname: hostnamectl failed (exit %d)", system.ExitCode(err)))
	}

	err = ctx.applyEdit(ctx.Opts.HostsFile, "update loopback alias to "+hostname, func(content string) string {
		return editor.SetHostsAlias(content, hostname)
	})
	if err != nil {
		return ctx.fail(fmt.Errorf("hostname: %w", err))
	}

	ctx.UI.Successf("Hostname set to %s", hostname)
	ctx.Log.Infow("hostname configured", "hostname", hostname)
	return nil
}
