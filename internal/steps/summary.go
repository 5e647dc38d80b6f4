package steps

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/dlanger/debian-setup/internal/editor"
	"github.com/dlanger/debian-setup/internal/system"
)

// RunSummary prints the consolidated end-of-run summary. Every value is
// re-queried from the live system so the summary shows what actually took
// effect, not what was remembered along the way.
func RunSummary(ctx *Context) error {
	ctx.UI.Header("Setup Summary")

	ctx.UI.Printf("  Hostname:   %s", system.CurrentHostname())
	ctx.UI.Printf("  Timezone:   %s", system.CurrentTimezone())
	ctx.UI.Printf("  Locale:     %s", system.CurrentLocale(ctx.Opts.LocaleDefault))
	ctx.UI.Printf("  SSH port:   %s", liveSSHPort(ctx))

	for _, svc := range []string{"ssh", "endlessh", "docker", "unattended-upgrades"} {
		state := "inactive"
		if system.IsServiceActive(svc) {
			state = "active"
		}
		ctx.UI.Printf("  Service %-20s %s", svc+":", state)
	}

	if info, err := host.Info(); err == nil {
		ctx.UI.Printf("  OS:         %s %s (%s)", info.Platform, info.PlatformVersion, info.KernelArch)
		ctx.UI.Printf("  Uptime:     %s", (time.Duration(info.Uptime) * time.Second).String())
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		ctx.UI.Printf("  Memory:     %d MiB used / %d MiB total", vm.Used/1024/1024, vm.Total/1024/1024)
	}
	if du, err := disk.Usage("/"); err == nil {
		ctx.UI.Printf("  Disk /:     %.1f GiB used / %.1f GiB total (%.0f%%)",
			float64(du.Used)/1024/1024/1024, float64(du.Total)/1024/1024/1024, du.UsedPercent)
	}

	ctx.UI.Print("")
	ctx.Log.Info("setup summary printed")
	return nil
}

// RunRebootPrompt offers an optional reboot, with an extra warning when the
// SSH port changed during an SSH session.
func RunRebootPrompt(ctx *Context) error {
	ctx.UI.Step("Reboot")

	if ctx.SSHPortChanged {
		ctx.UI.Warningf("The SSH port was changed to %s while connected over SSH", ctx.NewSSHPort)
		ctx.UI.Warning("Reconnect on the new port after the reboot")
	}

	reboot, err := ctx.UI.PromptYesNo("Reboot now?", false)
	if err != nil {
		return err
	}
	if !reboot {
		ctx.UI.Info("No reboot; settings that require one apply on the next boot")
		return nil
	}

	ctx.Log.Info("reboot requested by operator")
	if _, err := ctx.Runner.Run("systemctl", "reboot"); err != nil {
		return ctx.fail(fmt.Errorf("reboot: %w", err))
	}
	return nil
}

// liveSSHPort reads the daemon config from disk rather than trusting the
// value applied earlier in the run.
func liveSSHPort(ctx *Context) string {
	data, err := os.ReadFile(ctx.Opts.SSHDConfig)
	if err != nil {
		return "unknown"
	}
	port := editor.GetOption(string(data), "Port")
	if port == "" {
		return "22"
	}
	if ctx.SSHPortChanged {
		return port + " (after reboot)"
	}
	return port
}
