package connection

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	echonet "github.com/andyollylarkin/echo-net"
	"github.com/andyollylarkin/echo-net/internal"
	"github.com/sethvargo/go-retry"
)

// RetryConnect connects conn to addr, retrying failures matched by efilter according to backoff.
// A nil backoff retries every second with exponential growth, a nil efilter means DefaultErrorFilter.
func RetryConnect(ctx context.Context, conn echonet.Connection, addr net.Addr, backoff retry.Backoff,
	efilter echonet.ErrorFilter, log watermill.LoggerAdapter) error { //nolint: gofumpt
	if backoff == nil {
		backoff = retry.NewExponential(time.Second * 1)
	}

	if efilter == nil {
		efilter = DefaultErrorFilter
	}

	if log == nil {
		log = watermill.NopLogger{}
	}

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		return connectContextAdapter(ctx, conn, addr, efilter, log)
	})
	if err != nil {
		return err
	}

	log.Debug("Connected", watermill.LogFields{"addr": addr.String()})

	return nil
}

func connectContextAdapter(ctx context.Context, conn echonet.Connection, addr net.Addr,
	efilter echonet.ErrorFilter, log watermill.LoggerAdapter) error {
	err := conn.Connect(ctx, addr)
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("abort connect: %w", ctx.Err())
	}

	log.Info("Error when connect. Retry connect.", watermill.LogFields{"error": err.Error(), "addr": addr.String()})

	return internal.RetryableErrorWrap(efilter, err)
}
