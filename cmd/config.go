package cmd

import (
	"fmt"

	settingsstore "github.com/bnema/fifochat/internal/adapters/settings/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd(configPath *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the fifochat config file",
	}

	configCmd.AddCommand(newConfigInitCmd(configPath))
	return configCmd
}

func newConfigInitCmd(configPath *string) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := settingsstore.NewStore(viper.New(), *configPath)
			if err != nil {
				return err
			}

			if err := store.WriteDefault(force); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", store.Path())
			return err
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return initCmd
}
