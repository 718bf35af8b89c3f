package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/l3montree-dev/fixflow/config"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var cfgFile string

// v is shared by all sub commands. It is filled in PersistentPreRunE.
var v = config.NewViper()

var RootCmd = &cobra.Command{
	SilenceUsage:      true,
	Use:               "fixflow",
	Short:             "Error recovery and fix approval for generated code",
	Version:           config.Version,
	DisableAutoGenTag: true,
	Long: `Error recovery and fix approval for generated code

fixflow diagnoses failed generation attempts, proposes remediations and applies
them automatically or after a human review. Configuration can be provided via a
./.fixflow config file or environment variables (prefix FIXFLOW_).`,
	Example: `  # Start the review API and the escalation daemon
  fixflow serve --port 8080

  # Only apply the database migrations
  fixflow migrate`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a missing .env file is fine
		shared.LoadConfig() // nolint: errcheck

		if err := initializeConfig(cmd); err != nil {
			return err
		}
		shared.InitLogger(shared.ParseLogLevel(v.GetString("logLevel")))
		return nil
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fixflow\n")
			fmt.Printf("Version:    %s\n", config.Version)
			fmt.Printf("Commit:     %s\n", config.Commit)
			fmt.Printf("Branch:     %s\n", config.Branch)
			fmt.Printf("Built:      %s\n", config.BuildDate)
		},
	}

	RootCmd.AddCommand(
		versionCmd,
		NewServeCommand(),
		NewMigrateCommand(),
	)

	RootCmd.PersistentFlags().StringP("logLevel", "l", "info", "Set the log level. Options: debug, info, warn, error")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.fixflow.yaml or /etc/fixflow/.fixflow.yaml)")
}

func initializeConfig(cmd *cobra.Command) error {
	if err := config.ReadConfigFile(v, cfgFile); err != nil {
		return err
	}
	bindFlags(cmd)
	return nil
}

// bindFlags lets config file and environment values fill flags the user did not set,
// and makes set flags override both.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := f.Name
		if configName == "config" {
			return
		}

		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)) // nolint: errcheck
		}

		if err := v.BindPFlag(configName, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}

// loadConfig decodes and validates the merged configuration.
func loadConfig() (config.Config, error) {
	return config.Load(v)
}
