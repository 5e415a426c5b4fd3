// The root command for the CLI.
// Running the binary with no subcommand performs a full inventory collection.
package cmd

import (
	collectcommand "github.com/redjax/collect-inventory/internal/commands/collectCommand"
	versioncommand "github.com/redjax/collect-inventory/internal/commands/versionCommand"
	"github.com/redjax/collect-inventory/internal/config"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use:   "collect-inventory",
	Short: "Snapshot OS & hardware facts into a timestamped text report.",
	Long: `Collects OS, hardware, CPU, memory, storage, GPU and network facts from the
current host (Linux or FreeBSD) and writes them to a timestamped report file
while streaming the same content to the terminal.

Missing helper tools can be installed on the fly through the system package
manager; declining (or --skip-install) degrades the affected sections instead
of aborting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return collectcommand.Run(config.Run())
	},
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(rootCmd.Execute())
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON, YAML, TOML or dotenv)")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	rootCmd.Flags().Bool("no-network", false, "Skip the network section and its tools")
	rootCmd.Flags().Bool("no-gpu", false, "Skip the GPU section and its tools")
	rootCmd.Flags().Bool("skip-install", false, "Never prompt to install missing tools; degrade instead")

	// Add other CLI subcommands
	rootCmd.AddCommand(versioncommand.NewVersionCommand())

	// Call the initConfig function when the root command is initialized
	cobra.OnInitialize(initConfig)
}

// Load configuration for CLI app
func initConfig() {
	config.LoadConfig(rootCmd.Flags(), cfgFile)
}
