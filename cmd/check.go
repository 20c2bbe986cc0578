package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/port"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the workspace and range capacity",
	Long: `Loads the workspace file and verifies that every service fits in the port
range. Exits with code 4 when the range is too small.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan(nil)
	if err != nil {
		return err
	}

	if plan.Workspace != nil {
		logInfo("Workspace: %s", plan.Workspace.Path)
	}

	placements, err := plan.Explain()
	if err != nil {
		return err
	}

	keys := port.KeyCount(len(plan.Projects), plan.Secure)
	logSuccess("%d services fit in %s (%d of %d ports used)", len(plan.Projects), plan.Range, keys, plan.Range.Size())

	contested := 0
	for _, pl := range placements {
		if pl.Contested {
			contested++
		}
	}
	if contested > 0 {
		logWarning("%d keys share a preferred port; their ports depend on the service list", contested)
	}

	return nil
}
