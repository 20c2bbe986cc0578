package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/render"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/tui"
)

var pickPlain bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive service browser",
	Long: `Opens an interactive TUI listing every service and its ports.

Use arrow keys or j/k to navigate, / to filter.

Actions:
  Enter  - Print export statements for the selected service
  c      - Print the launch command of the selected service
  q/Esc  - Quit`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().BoolVar(&pickPlain, "plain", false, "Print a plain list instead of the interactive browser")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	logging.Debug("picker mode started")

	plan, err := loadPlan(nil)
	if err != nil {
		return err
	}
	a, err := plan.Assign()
	if err != nil {
		return err
	}

	rows := render.Rows(a, plan.Workspace)
	title := fmt.Sprintf("forage-ports - %s", plan.Range)
	out := cmd.OutOrStdout()

	if pickPlain {
		fmt.Fprint(out, tui.SimpleList(rows, title))
		return nil
	}

	if len(rows) == 0 {
		logInfo("No services found. Declare them in forage-ports.toml")
		return nil
	}

	result, err := tui.RunPicker(rows, title)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	if result.Service == nil {
		return nil
	}
	p := render.Ports{Name: result.Service.Service, Port: result.Service.Port, TLSPort: result.Service.TLSPort}

	switch result.Action {
	case tui.ActionEnv:
		fmt.Fprint(out, render.ExportLines(render.Env(p, false)))

	case tui.ActionCommand:
		svc, err := plan.Service(p.Name)
		if err != nil {
			return err
		}
		line, err := commandLine(svc.Command, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)

	case tui.ActionQuit:
		// Just exit cleanly
	}

	return nil
}
