package steps

import "fmt"

// RunSystemUpdate refreshes the package index and upgrades installed
// packages when the operator agrees.
func RunSystemUpdate(ctx *Context) error {
	ctx.UI.Step("System Update")

	upgrade, err := ctx.UI.PromptYesNo("Update package index and upgrade installed packages?", true)
	if err != nil {
		return err
	}
	if !upgrade {
		ctx.UI.Info("Skipping system update")
		return nil
	}

	ctx.UI.Info("Updating package index...")
	if err := ctx.Apt.Update(); err != nil {
		return ctx.fail(fmt.Errorf("system update: %w", err))
	}

	ctx.UI.Info("Upgrading installed packages (this may take a while)...")
	if err := ctx.Apt.Upgrade(); err != nil {
		return ctx.fail(fmt.Errorf("system upgrade: %w", err))
	}

	ctx.UI.Success("System is up to date")
	ctx.Log.Info("system update completed")
	return nil
}
