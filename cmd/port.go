package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/errors"
)

var portTLS bool

var portCmd = &cobra.Command{
	Use:   "port <service>",
	Short: "Print the port of one service",
	Args:  cobra.ExactArgs(1),
	RunE:  runPort,
}

func init() {
	portCmd.Flags().BoolVar(&portTLS, "tls", false, "Print the TLS port instead")
	rootCmd.AddCommand(portCmd)
}

func runPort(cmd *cobra.Command, args []string) error {
	name := args[0]

	_, p, err := loadServicePorts(name)
	if err != nil {
		return err
	}

	if portTLS {
		if p.TLSPort == 0 {
			return errors.TLSDisabled(name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.TLSPort)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), p.Port)
	return nil
}
