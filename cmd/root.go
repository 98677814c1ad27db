package cmd

import (
	"os"

	"github.com/nuts-foundation/nuts-pades/configuration"
	"github.com/nuts-foundation/nuts-pades/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const dotEnvFile = ".env"

func createRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "nuts-pades",
		Short:        "PAdES signatures with eID Easy",
		Long:         "Collects qualified electronic signatures for PDF documents at eID Easy.",
		SilenceUsage: true,
	}
	root.PersistentFlags().AddFlagSet(configuration.FlagSet())

	root.AddCommand(serveCommand())
	root.AddCommand(prepareCommand())
	root.AddCommand(fetchCommand())
	root.AddCommand(configCommand())
	return root
}

// loadConfig reads the configuration for the command and sets up logging accordingly.
func loadConfig(cmd *cobra.Command) (*configuration.Config, error) {
	if err := configuration.LoadDotEnv(dotEnvFile); err != nil {
		return nil, errors.Wrap(err, "unable to load .env file")
	}
	config, err := configuration.Load(cmd.Flags())
	if err != nil {
		return nil, errors.Wrap(err, "unable to load configuration")
	}
	if err := logging.Setup(config.LogLevel, config.LogFormat); err != nil {
		return nil, errors.Wrap(err, "invalid logging configuration")
	}
	return config, nil
}

// Execute runs the command given on the command line.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := createRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
