package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string

	rangeFlag    string
	secureFlag   bool
	noSecureFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "forage-ports",
	Short: "Deterministic port assignment for workspace services",
	Long: `forage-ports gives every service of a workspace a stable local port.

Ports are derived from service names:
  - The same service list always yields the same ports
  - A service whose preferred port is uncontested always keeps it
  - No two services share a port
  - With secure ports enabled, every service also gets a TLS port

Services are read from forage-ports.toml (or .yaml) in the current
directory or any parent, or given directly as arguments.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		if configPath != "" {
			app.SetDefault(app.New(app.WithConfigPath(configPath)))
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Workspace file (default: nearest forage-ports.toml, or $FORAGE_PORTS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&rangeFlag, "range", "", "Port range to allocate from, e.g. 9000-9010")
	rootCmd.PersistentFlags().BoolVar(&secureFlag, "secure", false, "Also assign a TLS port to every service")
	rootCmd.PersistentFlags().BoolVar(&noSecureFlag, "no-secure", false, "Do not assign TLS ports")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
