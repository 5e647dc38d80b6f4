package steps

import (
	"fmt"
	"os"

	"github.com/dlanger/debian-setup/internal/common"
	"github.com/dlanger/debian-setup/internal/editor"
	"github.com/dlanger/debian-setup/internal/system"
	"github.com/dlanger/debian-setup/internal/ui"
)

// RunSSHInstall installs and enables the OpenSSH server if it is absent.
func RunSSHInstall(ctx *Context) error {
	ctx.UI.Step("SSH Server")

	if system.IsPackageInstalled("openssh-server") {
		ctx.UI.Info("OpenSSH server is already installed")
		return nil
	}

	install, err := ctx.UI.PromptYesNo("Install the OpenSSH server?", true)
	if err != nil {
		return err
	}
	if !install {
		ctx.UI.Info("Skipping SSH server installation")
		return nil
	}

	if err := ctx.Apt.Install("openssh-server"); err != nil {
		return ctx.fail(fmt.Errorf("ssh install: %w", err))
	}

	if err := ctx.Systemd.EnableNow("ssh"); err != nil {
		return ctx.fail(fmt.Errorf("ssh install: %w", err))
	}

	ctx.UI.Success("OpenSSH server installed and enabled")
	ctx.Log.Info("openssh-server installed")
	return nil
}

// RunSSHConfigure changes the SSH daemon port: backup, mutate, validate with
// the daemon's own syntax check, then restart — unless the operator is
// connected over SSH, in which case the change waits for a reboot.
func RunSSHConfigure(ctx *Context) error {
	ctx.UI.Step("SSH Port")

	data, err := os.ReadFile(ctx.Opts.SSHDConfig)
	if err != nil {
		ctx.UI.Warningf("Cannot read %s, skipping SSH configuration", ctx.Opts.SSHDConfig)
		return nil
	}

	current := editor.GetOption(string(data), "Port")
	if current == "" {
		current = "22"
	}
	ctx.UI.Infof("Current SSH port: %s", current)
	if ctx.ConnectedViaSSH {
		ctx.UI.Info("This session is connected over SSH")
	}

	change, err := ctx.UI.PromptYesNo("Change the SSH port?", false)
	if err != nil {
		return err
	}
	if !change {
		ctx.UI.Info("Keeping current SSH port")
		return nil
	}

	// Validated at the prompt: no file is touched until the port is in range
	port, err := ctx.UI.PromptInputWithValidation("New SSH port (1-65535)", current, ui.Validator(common.ValidatePort))
	if err != nil {
		return err
	}
	if port == current {
		ctx.UI.Info("Port unchanged")
		return nil
	}

	validate := func() error {
		if output, err := ctx.Runner.Run("sshd", "-t", "-f", ctx.Opts.SSHDConfig); err != nil {
			return fmt.Errorf("sshd config test failed (exit %d): %s", system.ExitCode(err), output)
		}
		return nil
	}

	if err := applySSHPort(ctx, port, validate); err != nil {
		return ctx.fail(fmt.Errorf("ssh configure: %w", err))
	}

	return restartSSHSafely(ctx, port)
}

// applySSHPort performs the backup-mutate-validate sequence. On validation
// failure the most recent backup is restored exactly and the error is
// returned.
func applySSHPort(ctx *Context, port string, validate func() error) error {
	backupPath, err := ctx.Backups.Backup(ctx.Opts.SSHDConfig)
	if err != nil {
		return err
	}

	err = ctx.applyEdit(ctx.Opts.SSHDConfig, "set Port "+port, func(content string) string {
		return editor.SetOption(content, "Port", port)
	})
	if err != nil {
		return err
	}

	if err := validate(); err != nil {
		if backupPath != "" {
			if restoreErr := ctx.Backups.Restore(backupPath, ctx.Opts.SSHDConfig); restoreErr != nil {
				return fmt.Errorf("%w (rollback also failed: %v)", err, restoreErr)
			}
			ctx.UI.Warning("Invalid SSH config rolled back from backup")
		}
		return err
	}

	return nil
}

// restartSSHSafely applies the restart policy for the detected session
// state and verifies the daemon picked up the new port.
func restartSSHSafely(ctx *Context, port string) error {
	if ctx.ConnectedViaSSH {
		ctx.SSHPortChanged = true
		ctx.NewSSHPort = port
		ctx.UI.Warning("Connected over SSH: the daemon will not be restarted now")
		ctx.UI.Warningf("The new port %s takes effect after a reboot", port)
		ctx.Log.Infow("ssh port staged", "port", port)
		return nil
	}

	if err := ctx.Systemd.Restart("ssh"); err != nil {
		return ctx.fail(fmt.Errorf("ssh configure: %w", err))
	}

	if !ctx.Opts.DryRun {
		if system.PortListening(port) {
			ctx.UI.Successf("SSH daemon is listening on port %s", port)
		} else {
			ctx.UI.Warningf("Port %s not observed in the socket table; check the daemon state", port)
			ctx.Log.Warnw("expected ssh port not listening", "port", port)
		}
	}

	ctx.Log.Infow("ssh port configured", "port", port)
	return nil
}
