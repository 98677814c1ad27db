package cmd

import (
	"fmt"

	"github.com/nuts-foundation/nuts-pades/configuration"
	"github.com/spf13/cobra"
)

func configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			printConfig(cmd, config.Masked())
			return nil
		},
	}
}

func printConfig(cmd *cobra.Command, c configuration.Config) {
	values := []struct {
		key   string
		value interface{}
	}{
		{configuration.ConfAddress, c.Address},
		{configuration.ConfPublicURL, c.PublicURL},
		{configuration.ConfClientID, c.ClientID},
		{configuration.ConfClientSecret, c.ClientSecret},
		{configuration.ConfSandbox, c.Sandbox},
		{configuration.ConfAPIURL, c.APIURL},
		{configuration.ConfTimeout, c.Timeout},
		{configuration.ConfRetryMax, c.RetryMax},
		{configuration.ConfSessionTTL, c.SessionTTL},
		{configuration.ConfStateKey, c.StateKey},
		{configuration.ConfLanguage, c.Language},
		{configuration.ConfVerifyContainer, c.VerifyContainer},
		{configuration.ConfLogLevel, c.LogLevel},
		{configuration.ConfLogFormat, c.LogFormat},
	}
	out := cmd.OutOrStdout()
	for _, v := range values {
		fmt.Fprintf(out, "%-16s %v\n", v.key, v.value)
	}
}
