package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/quotient-io/quotient-client/pkg/listeners"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/spf13/cobra"
)

// NewListenCommand creates the listen command
func NewListenCommand() *cobra.Command {
	var (
		interval  time.Duration
		storePath string
		natsURL   string
		noOrders  bool
		noQuotes  bool
	)

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Poll for new orders and quotes",
		Long: `Poll the API for newly placed orders and newly sent quotes. Progress is
checkpointed to a local database so restarts resume where the previous run
stopped. With --nats, each new resource is published as an event; otherwise
it is logged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Listener polls fetch every order or quote the checkpoint has
			// not seen yet, which can be a lot after downtime.
			client, err := CreateLongRunningClient()
			if err != nil {
				return err
			}

			store, err := listeners.NewSQLiteStore(storePath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			logger := slog.Default()

			orderHandler, quoteHandler, cleanup, err := buildHandlers(natsURL, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			var ls []listeners.Listener

			if !noOrders {
				ls = append(ls, listeners.NewOrderListener(client, store, orderHandler))
			}

			if !noQuotes {
				ls = append(ls, listeners.NewQuoteListener(client, store, quoteHandler))
			}

			runner := listeners.NewRunner(logger, ls...)
			runner.SetInterval(interval)

			fmt.Fprintf(os.Stderr, "Listening (interval %s, checkpoint %s)...\n", interval, storePath)

			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", listeners.DefaultPollInterval, "poll interval")
	cmd.Flags().StringVar(&storePath, "store", "quotient-listeners.db", "checkpoint database path")
	cmd.Flags().StringVar(&natsURL, "nats", "", "NATS server URL to publish events to")
	cmd.Flags().BoolVar(&noOrders, "no-orders", false, "skip the order listener")
	cmd.Flags().BoolVar(&noQuotes, "no-quotes", false, "skip the quote listener")

	return cmd
}

func buildHandlers(natsURL string, logger *slog.Logger) (listeners.OrderHandler, listeners.QuoteHandler, func(), error) {
	if natsURL != "" {
		publisher, err := listeners.NewPublisher(natsURL)
		if err != nil {
			return nil, nil, nil, err
		}

		return publisher.OrderHandler(), publisher.QuoteHandler(), publisher.Close, nil
	}

	orderHandler := func(_ context.Context, order *quotient.Order) error {
		logger.Info("new order", "number", order.Number, "status", order.Status)

		return nil
	}

	quoteHandler := func(_ context.Context, quote *quotient.Quote) error {
		logger.Info("new quote", "number", quote.Number, "status", string(quote.Status))

		return nil
	}

	return orderHandler, quoteHandler, func() {}, nil
}
