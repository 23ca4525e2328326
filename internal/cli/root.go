package cli

import (
	"fmt"
	"io"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/andyollylarkin/echo-net/internal/config"
	"github.com/spf13/cobra"
)

const flagConfig = "config"

// NewRootCommand builds the echo-net command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "echo-net",
		Short: "Concurrent TCP echo server and client",
		Long: `Concurrent TCP echo server and client.

The server writes back every byte a peer sends, in order, on the same connection.
Settings are read from flags, ECHONET_* environment variables and an optional YAML file.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String(flagConfig, "", "Path to a YAML configuration file")
	pf.String(config.KeyAddr, config.DefaultAddr, "Address to listen on or connect to (host:port)")
	pf.Duration(config.KeyTimeout, config.DefaultTimeout, "Client dial and echo timeout, 0 disables it")
	pf.Bool(config.KeyDebug, false, "Enable debug logs")
	pf.Bool(config.KeyTrace, false, "Enable trace logs")

	rootCmd.AddCommand(newServeCommand(), newClientCommand())

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}

	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}

	return config.Load(cmd.Flags(), configFile)
}

func newLogger(out io.Writer, cfg *config.Config) watermill.LoggerAdapter {
	return watermill.NewStdLoggerWithOut(out, cfg.Debug || cfg.Trace, cfg.Trace)
}
