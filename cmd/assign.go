package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/render"
)

var (
	assignOutput      string
	assignFingerprint bool
)

var assignCmd = &cobra.Command{
	Use:   "assign [service...]",
	Short: "Show the port of every service",
	Long: `Computes the port assignment for the workspace and prints it.

Service names given as arguments replace the workspace file entirely:

  forage-ports assign users orders --range 9000-9010 --secure`,
	RunE: runAssign,
}

func init() {
	assignCmd.Flags().StringVarP(&assignOutput, "output", "o", "table", "Output format: table or json")
	assignCmd.Flags().BoolVar(&assignFingerprint, "fingerprint", false, "Print only the assignment fingerprint")
	rootCmd.AddCommand(assignCmd)
}

func runAssign(cmd *cobra.Command, args []string) error {
	if assignOutput != "table" && assignOutput != "json" {
		return errors.ValidationError(fmt.Sprintf("unknown output format %q: expected table or json", assignOutput))
	}

	plan, err := loadPlan(args)
	if err != nil {
		return err
	}

	a, err := plan.Assign()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if assignFingerprint {
		fmt.Fprintln(out, a.Fingerprint())
		return nil
	}

	rows := render.Rows(a, plan.Workspace)
	if assignOutput == "json" {
		return render.JSON(out, a, rows)
	}

	if len(rows) == 0 {
		logInfo("No services found. Declare them in forage-ports.toml or pass names: forage-ports assign <service>...")
		return nil
	}
	return render.Table(out, rows, a.Secure)
}
