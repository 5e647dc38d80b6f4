package steps

import (
	"fmt"

	"github.com/dlanger/debian-setup/internal/common"
	"github.com/dlanger/debian-setup/internal/system"
	"github.com/dlanger/debian-setup/internal/ui"
)

// RunTimezone lets the operator search the system timezone list and applies
// the chosen zone via timedatectl.
func RunTimezone(ctx *Context) error {
	ctx.UI.Step("Timezone")

	ctx.UI.Infof("Current timezone: %s", system.CurrentTimezone())

	change, err := ctx.UI.PromptYesNo("Change the timezone?", false)
	if err != nil {
		return err
	}
	if !change {
		ctx.UI.Info("Keeping current timezone")
		return nil
	}

	selector := ui.NewSelector(ctx.UI, "Search timezones (e.g. berlin, europe)", system.ListTimezones)
	timezone, err := selector.Choose()
	if err != nil {
		return err
	}

	if err := common.ValidateTimezone(timezone); err != nil {
		return ctx.fail(fmt.Errorf("timezone: %w", err))
	}

	if _, err := ctx.Runner.Run("timedatectl", "set-timezone", timezone); err != nil {
		return ctx.fail(fmt.Errorf("timezone: timedatectl failed (exit %d)", system.ExitCode(err)))
	}

	ctx.UI.Successf("Timezone set to %s", timezone)
	ctx.Log.Infow("timezone configured", "timezone", timezone)
	return nil
}
