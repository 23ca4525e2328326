package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/andyollylarkin/echo-net/internal"
	"github.com/andyollylarkin/echo-net/internal/config"
	"github.com/andyollylarkin/echo-net/pkg/connection"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/cobra"
)

func newClientCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Send stdin to an echo server line by line and print the echoes",
		Long: `Connect to an echo server, send every line read from stdin and print the bytes echoed back.

After stdin ends the client closes its writing side and waits for the server to close the
connection.`,
		Example: `  printf 'ping\n' | echo-net client --addr 127.0.0.1:8080`,
		Args:    cobra.NoArgs,
		RunE:    runClient,
	}

	cmd.Flags().Uint64(config.KeyDialRetries, 0, "Retries when the server is not reachable")
	cmd.Flags().Duration(config.KeyDialRetryDelay, config.DefaultDialRetryDelay, "Delay between dial retries")

	return cmd
}

func runClient(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)

	addr, err := net.ResolveTCPAddr("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", cfg.Addr, err)
	}

	conn := connection.NewTCPConnection(net.Dialer{Timeout: cfg.Timeout})

	err = connection.RetryConnect(cmd.Context(), conn, addr,
		retry.WithMaxRetries(cfg.DialRetries, retry.NewConstant(cfg.DialRetryDelay)),
		connection.DefaultErrorFilter, logger)
	if err != nil {
		return fmt.Errorf("connect %s: %w", cfg.Addr, err)
	}
	defer conn.Close()

	reader := internal.NewTimeoutReader(conn, cfg.Timeout)
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		line, rErr := in.ReadBytes('\n')

		if len(line) > 0 {
			if _, err = conn.Write(line); err != nil {
				return fmt.Errorf("send: %w", err)
			}

			echo := make([]byte, len(line))
			if _, err = reader.ReadFull(echo); err != nil {
				return fmt.Errorf("receive echo: %w", err)
			}

			if _, err = out.Write(echo); err != nil {
				return err
			}
		}

		if errors.Is(rErr, io.EOF) {
			break
		}

		if rErr != nil {
			return fmt.Errorf("read input: %w", rErr)
		}
	}

	if err = conn.CloseWrite(); err != nil {
		return fmt.Errorf("close write: %w", err)
	}

	// the server closes its side once it has read our EOF
	if _, err = reader.ReadFull(make([]byte, 1)); err == nil {
		return fmt.Errorf("unexpected data after echo")
	} else if !errors.Is(err, io.EOF) {
		return fmt.Errorf("wait for close: %w", err)
	}

	return nil
}
