package steps

import (
	"fmt"
	"strings"

	"github.com/dlanger/debian-setup/internal/editor"
	"github.com/dlanger/debian-setup/internal/system"
	"github.com/dlanger/debian-setup/internal/ui"
)

// RunLocale lets the operator pick a UTF-8 locale, activates it in the
// locale-generation source file, regenerates locales, and sets the default
// language variable.
func RunLocale(ctx *Context) error {
	ctx.UI.Step("Locale")

	ctx.UI.Infof("Current default locale: %s", system.CurrentLocale(ctx.Opts.LocaleDefault))

	change, err := ctx.UI.PromptYesNo("Change the default locale?", false)
	if err != nil {
		return err
	}
	if !change {
		ctx.UI.Info("Keeping current locale")
		return nil
	}

	selector := ui.NewSelector(ctx.UI, "Search UTF-8 locales (e.g. en_us, de)", func() ([]string, error) {
		return system.SupportedLocales(ctx.Opts.LocaleSupportedFile)
	})
	selector.Filter = ui.FilterUTF8Locales

	// Selected entries look like "en_US.UTF-8 UTF-8": the whole line goes
	// into locale.gen, the first field becomes LANG.
	entry, err := selector.Choose()
	if err != nil {
		return err
	}
	lang := strings.Fields(entry)[0]

	if _, err := ctx.Backups.Backup(ctx.Opts.LocaleGenFile); err != nil {
		return ctx.fail(fmt.Errorf("locale: %w", err))
	}

	err = ctx.applyEdit(ctx.Opts.LocaleGenFile, "enable locale "+entry, func(content string) string {
		return editor.EnableLocale(content, entry)
	})
	if err != nil {
		return ctx.fail(fmt.Errorf("locale: %w", err))
	}

	if _, err := ctx.Runner.Run("locale-gen"); err != nil {
		return ctx.fail(fmt.Errorf("locale: locale-gen failed (exit %d)", system.ExitCode(err)))
	}

	if _, err := ctx.Runner.Run("update-locale", "LANG="+lang); err != nil {
		return ctx.fail(fmt.Errorf("locale: update-locale failed (exit %d)", system.ExitCode(err)))
	}

	ctx.UI.Successf("Default locale set to %s", lang)
	ctx.Log.Infow("locale configured", "locale", lang)
	return nil
}
