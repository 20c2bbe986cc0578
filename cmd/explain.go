package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/render"
)

var explainCmd = &cobra.Command{
	Use:   "explain [service...]",
	Short: "Show preferred and assigned port per key",
	Long: `Shows, for every allocation key, the port its name hashes to and the port
it was given.

  solo                  the only key preferring that port; it always keeps it
  contested             shares its preferred port and still got it
  contested, probed +N  moved N ports forward, wrapping at the end of the range`,
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan(args)
	if err != nil {
		return err
	}

	placements, err := plan.Explain()
	if err != nil {
		return err
	}

	return render.Explain(cmd.OutOrStdout(), plan.Range, placements)
}
