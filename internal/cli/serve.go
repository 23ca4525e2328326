package cli

import (
	"time"

	echonet "github.com/andyollylarkin/echo-net"
	"github.com/andyollylarkin/echo-net/internal/config"
	"github.com/andyollylarkin/echo-net/pkg/connection"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the echo server",
		Long: `Bind the configured address and echo every accepted connection in its own goroutine.

The command only returns when binding or accepting fails. Accept failures are fatal unless
--accept-retries is set, in which case transient failures are retried with a constant delay.`,
		Example: `  # Listen on the default address
  echo-net serve

  # Listen on all interfaces with retries for transient accept failures
  echo-net serve --addr :7 --accept-retries 5 --accept-retry-delay 200ms`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().Int(config.KeyBufferSize, config.DefaultBufferSize, "Per-connection read buffer size in bytes")
	cmd.Flags().Uint64(config.KeyAcceptRetries, 0, "Retries for transient accept failures, 0 makes them fatal")
	cmd.Flags().Duration(config.KeyAcceptRetryDelay, config.DefaultAcceptRetryDelay, "Delay between accept retries")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)

	l, err := connection.Bind(cfg.Addr)
	if err != nil {
		return err
	}
	defer l.Close()

	s, err := echonet.NewServer(echonet.ServerConfig{
		BufferSize:    cfg.BufferSize,
		Logger:        logger,
		AcceptBackoff: acceptBackoff(cfg.AcceptRetries, cfg.AcceptRetryDelay),
	})
	if err != nil {
		return err
	}

	return s.Serve(l)
}

func acceptBackoff(retries uint64, delay time.Duration) echonet.BackoffFactory {
	if retries == 0 {
		return nil
	}

	return func() retry.Backoff {
		return retry.WithMaxRetries(retries, retry.NewConstant(delay))
	}
}
