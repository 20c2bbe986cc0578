package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/render"
)

var commandCmd = &cobra.Command{
	Use:   "command <service>",
	Short: "Print the launch command of a service with its ports filled in",
	Long: `Expands {port}, {tls_port} and {name} in the service's command and prints
the result as a single shell-safe line.`,
	Args: cobra.ExactArgs(1),
	RunE: runCommand,
}

func init() {
	rootCmd.AddCommand(commandCmd)
}

func runCommand(cmd *cobra.Command, args []string) error {
	name := args[0]

	plan, p, err := loadServicePorts(name)
	if err != nil {
		return err
	}
	svc, err := plan.Service(name)
	if err != nil {
		return err
	}

	line, err := commandLine(svc.Command, p)
	if err != nil {
		return err
	}

	logging.Debug("rendered command", "service", name, "port", p.Port)
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}

func commandLine(template string, p render.Ports) (string, error) {
	argv, err := render.Command(template, p)
	if err != nil {
		return "", errors.ValidationError(err.Error())
	}
	return render.CommandLine(argv), nil
}
