package steps

import (
	"fmt"
	"os"
)

// motdScript prints a short live status banner at login. Installed as a
// profile hook so it runs for interactive shells.
const motdScript = `#!/bin/sh
# Status banner installed by debian-setup
printf '\n'
printf '  %s\n' "$(hostname) - $(. /etc/os-release && echo "$PRETTY_NAME")"
printf '  Uptime:  %s\n' "$(uptime -p)"
printf '  Load:    %s\n' "$(cut -d' ' -f1-3 /proc/loadavg)"
printf '  Memory:  %s\n' "$(free -h | awk '/^Mem/ {print $3 " / " $2}')"
printf '  Disk /:  %s\n' "$(df -h / | awk 'NR==2 {print $3 " / " $2 " (" $5 ")"}')"
printf '  IP:      %s\n' "$(hostname -I 2>/dev/null | cut -d' ' -f1)"
printf '\n'
`

// RunMOTD installs the status banner profile hook.
func RunMOTD(ctx *Context) error {
	ctx.UI.Step("Status Banner (MOTD)")

	if _, err := os.Stat(ctx.Opts.MOTDScript); err == nil {
		ctx.UI.Infof("Status banner already installed at %s", ctx.Opts.MOTDScript)
		replace, err := ctx.UI.PromptYesNo("Replace it?", false)
		if err != nil {
			return err
		}
		if !replace {
			return nil
		}
	} else {
		install, err := ctx.UI.PromptYesNo("Install a login status banner?", true)
		if err != nil {
			return err
		}
		if !install {
			ctx.UI.Info("Skipping status banner")
			return nil
		}
	}

	if err := ctx.writeConfigFile(ctx.Opts.MOTDScript, "login status banner", motdScript, 0755); err != nil {
		return ctx.fail(fmt.Errorf("motd: %w", err))
	}

	ctx.UI.Successf("Status banner installed at %s", ctx.Opts.MOTDScript)
	ctx.Log.Info("motd banner installed")
	return nil
}
