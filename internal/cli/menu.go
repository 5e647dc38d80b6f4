package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dlanger/debian-setup/internal/steps"
	"github.com/dlanger/debian-setup/internal/ui"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// Menu provides an interactive menu over the individual steps
type Menu struct {
	ctx *SetupContext
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *SetupContext) *Menu {
	return &Menu{ctx: ctx}
}

// Show displays the main menu and handles user input until exit
func (m *Menu) Show() error {
	for {
		m.displayMenu()

		choice, err := m.ctx.Steps.UI.PromptInput("Enter your choice", "")
		if err != nil {
			return err
		}

		if err := m.handleChoice(strings.ToUpper(strings.TrimSpace(choice))); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.Steps.UI.Errorf("%v", err)
		}
	}
}

func (m *Menu) displayMenu() {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	border := strings.Repeat("=", 70)
	cyan.Println(border)
	cyan.Println("  Debian Server Setup")
	cyan.Println(border)
	fmt.Println()

	bold.Print("  [A] ")
	fmt.Println("Run All Steps (full guided setup)")
	fmt.Println()

	for i, step := range AllSteps() {
		bold.Printf("  [%d] ", i+1)
		fmt.Printf("%s\n", step.Name)
		fmt.Printf("      %s\n", step.Description)
	}

	fmt.Println()
	bold.Print("  [S] ")
	fmt.Println("Show System Summary")
	bold.Print("  [X] ")
	fmt.Println("Exit")
	fmt.Println()
}

func (m *Menu) handleChoice(choice string) error {
	switch choice {
	case "A":
		return m.ctx.RunAll()
	case "S":
		return steps.RunSummary(m.ctx.Steps)
	case "X":
		return ErrExit
	case "":
		return fmt.Errorf("no choice entered")
	default:
		all := AllSteps()
		n, err := ui.ParseSelection(choice, len(all))
		if err != nil {
			return fmt.Errorf("invalid choice: %s", choice)
		}
		return m.ctx.RunStep(all[n-1].ShortName)
	}
}
