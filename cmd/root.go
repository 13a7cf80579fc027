package cmd

import "github.com/spf13/cobra"

const configFlag = "config"

func ExecuteServer() error {
	return newServerRootCmd().Execute()
}

func ExecuteClient() error {
	return newClientRootCmd().Execute()
}

func newServerRootCmd() *cobra.Command {
	opts := &serverOptions{}
	rootCmd := &cobra.Command{
		Use:           "fifochat-server",
		Short:         "Relay chat messages between local clients over named pipes",
		Long:          "fifochat-server owns the well-known server FIFO, keeps the list of connected clients and relays direct and global messages into each client's own FIFO.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, configFlag, "", "config file (default ~/.fifochat/config.toml)")
	rootCmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (overrides metrics.addr)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(&opts.configPath),
	)

	return rootCmd
}

func newClientRootCmd() *cobra.Command {
	opts := &clientOptions{}
	rootCmd := &cobra.Command{
		Use:           "fifochat-client",
		Short:         "Chat with other local users through fifochat-server",
		Long:          "fifochat-client connects to a running fifochat-server, then lets you read pending messages, send direct or global messages, and quit from an interactive menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClient(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, configFlag, "", "config file (default ~/.fifochat/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(&opts.configPath),
	)

	return rootCmd
}
