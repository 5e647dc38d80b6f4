package steps

import (
	"fmt"
	"strings"

	"github.com/dlanger/debian-setup/internal/system"
)

// EssentialPackages is the fixed package set offered by the essentials step
var EssentialPackages = []string{
	"curl",
	"wget",
	"git",
	"htop",
	"vim",
	"tmux",
	"ufw",
	"fail2ban",
	"unattended-upgrades",
	"ca-certificates",
	"gnupg",
}

// autoUpgradesPolicy enables the daily unattended-upgrade run
const autoUpgradesPolicy = `APT::Periodic::Update-Package-Lists "1";
APT::Periodic::Unattended-Upgrade "1";
`

// RunEssentialPackages installs the essential package set and writes the
// unattended-upgrade policy.
func RunEssentialPackages(ctx *Context) error {
	ctx.UI.Step("Essential Packages")

	var missing []string
	for _, pkg := range EssentialPackages {
		if !system.IsPackageInstalled(pkg) {
			missing = append(missing, pkg)
		}
	}

	if len(missing) == 0 {
		ctx.UI.Info("All essential packages are already installed")
	} else {
		ctx.UI.Infof("Missing packages: %s", strings.Join(missing, ", "))
		install, err := ctx.UI.PromptYesNo("Install the essential package set?", true)
		if err != nil {
			return err
		}
		if !install {
			ctx.UI.Info("Skipping essential packages")
			return nil
		}

		if err := ctx.Apt.Install(missing...); err != nil {
			return ctx.fail(fmt.Errorf("essential packages: %w", err))
		}
		ctx.UI.Success("Essential packages installed")
		ctx.Log.Infow("essential packages installed", "packages", missing)
	}

	err := ctx.writeConfigFile(ctx.Opts.AutoUpgradesFile, "unattended-upgrade policy", autoUpgradesPolicy, 0644)
	if err != nil {
		return ctx.fail(fmt.Errorf("essential packages: %w", err))
	}

	if err := ctx.Systemd.EnableNow("unattended-upgrades"); err != nil {
		ctx.UI.Warningf("Could not enable unattended-upgrades: %v", err)
	}

	ctx.UI.Success("Unattended security upgrades enabled")
	return nil
}
