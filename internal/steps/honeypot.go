package steps

import (
	"fmt"
	"os"

	"github.com/dlanger/debian-setup/internal/editor"
	"github.com/dlanger/debian-setup/internal/system"
)

// endlesshConfig keeps the tarpit on the standard SSH port with slow,
// unbounded banner output.
const endlesshConfig = `Port 22
Delay 10000
MaxLineLength 32
MaxClients 4096
LogLevel 0
BindFamily 0
`

// RunHoneypot installs the endlessh tarpit on port 22. Only offered once
// the real SSH daemon has moved off the standard port.
func RunHoneypot(ctx *Context) error {
	ctx.UI.Step("SSH Honeypot")

	if sshPortIs22(ctx) {
		ctx.UI.Info("SSH still listens on port 22; skipping honeypot (move SSH to another port first)")
		return nil
	}

	if system.IsPackageInstalled("endlessh") {
		ctx.UI.Info("endlessh is already installed")
		return nil
	}

	ctx.UI.Info("endlessh is a tarpit that keeps unauthorized SSH clients busy on port 22")
	install, err := ctx.UI.PromptYesNo("Install the endlessh honeypot on port 22?", false)
	if err != nil {
		return err
	}
	if !install {
		ctx.UI.Info("Skipping honeypot")
		return nil
	}

	if err := ctx.Apt.Install("endlessh"); err != nil {
		return ctx.fail(fmt.Errorf("honeypot: %w", err))
	}

	if err := ctx.writeConfigFile(ctx.Opts.EndlesshConfig, "endlessh tarpit config", endlesshConfig, 0644); err != nil {
		return ctx.fail(fmt.Errorf("honeypot: %w", err))
	}

	// Binding port 22 needs the capability override shipped disabled in the
	// Debian package
	if _, err := ctx.Runner.Run("sed", "-i", "s/^#AmbientCapabilities/AmbientCapabilities/", "/lib/systemd/system/endlessh.service"); err != nil {
		ctx.UI.Warning("Could not enable the port-22 capability override for endlessh")
	}
	if _, err := ctx.Runner.Run("systemctl", "daemon-reload"); err != nil {
		return ctx.fail(fmt.Errorf("honeypot: daemon-reload failed (exit %d)", system.ExitCode(err)))
	}

	if err := startHoneypotService(ctx); err != nil {
		return ctx.fail(fmt.Errorf("honeypot: %w", err))
	}

	ctx.Log.Info("endlessh installed and enabled")
	return nil
}

// startHoneypotService enables endlessh, starting it immediately unless the
// SSH port change is still staged and sshd holds port 22 until restart.
func startHoneypotService(ctx *Context) error {
	if ctx.SSHPortChanged {
		ctx.UI.Warning("sshd still holds port 22 until the restart; endlessh will start on the next boot")
		if err := ctx.Systemd.Enable("endlessh"); err != nil {
			return err
		}
		ctx.UI.Success("endlessh honeypot enabled for the next boot")
		return nil
	}

	if err := ctx.Systemd.EnableNow("endlessh"); err != nil {
		return err
	}
	ctx.UI.Success("endlessh honeypot active on port 22")
	return nil
}

// sshPortIs22 reads the live daemon config; staged-but-unapplied changes
// count as moved.
func sshPortIs22(ctx *Context) bool {
	if ctx.SSHPortChanged && ctx.NewSSHPort != "22" {
		return false
	}
	data, err := os.ReadFile(ctx.Opts.SSHDConfig)
	if err != nil {
		return true
	}
	port := editor.GetOption(string(data), "Port")
	return port == "" || port == "22"
}
