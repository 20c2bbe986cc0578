package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/render"
)

var (
	envGeneric bool
	envPlain   bool
)

var envCmd = &cobra.Command{
	Use:   "env <service>",
	Short: "Print port environment variables for a service",
	Long: `Prints shell export statements for a service's ports:

  eval "$(forage-ports env users)"

sets USERS_PORT (and USERS_TLS_PORT when secure ports are enabled).`,
	Args: cobra.ExactArgs(1),
	RunE: runEnv,
}

func init() {
	envCmd.Flags().BoolVar(&envGeneric, "generic", false, "Also set PORT and TLS_PORT")
	envCmd.Flags().BoolVar(&envPlain, "plain", false, "Print KEY=value lines without export")
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	_, p, err := loadServicePorts(args[0])
	if err != nil {
		return err
	}

	env := render.Env(p, envGeneric)
	out := cmd.OutOrStdout()
	if envPlain {
		fmt.Fprintln(out, strings.Join(env, "\n"))
		return nil
	}

	fmt.Fprint(out, render.ExportLines(env))
	return nil
}
