// Package listeners polls the API for newly placed orders and newly sent
// quotes, hands each one to a handler, and checkpoints progress so a restart
// resumes where the previous run stopped.
package listeners

import (
	"context"
	"fmt"
	"time"

	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// DefaultPollInterval is how often a Runner polls its listeners.
const DefaultPollInterval = 15 * time.Minute

// Listener is one polled resource feed.
type Listener interface {
	Name() string

	// Poll fetches resources that appeared since the last checkpoint and
	// handles them in order. It returns how many were handled. A handler
	// error stops the poll; the failed resource is not checkpointed and is
	// retried on the next poll.
	Poll(ctx context.Context) (int, error)
}

// OrderHandler processes one newly placed order.
type OrderHandler func(ctx context.Context, order *quotient.Order) error

// OrderListener polls for new orders.
type OrderListener struct {
	client  quotient.Client
	store   Store
	handler OrderHandler
}

// NewOrderListener creates a listener that feeds new orders to the handler.
func NewOrderListener(client quotient.Client, store Store, handler OrderHandler) *OrderListener {
	return &OrderListener{client: client, store: store, handler: handler}
}

// Name implements Listener.Name.
func (l *OrderListener) Name() string { return "orders" }

// Poll implements Listener.Poll.
func (l *OrderListener) Poll(ctx context.Context) (int, error) {
	last, ok, err := l.store.Load(ctx, l.Name())
	if err != nil {
		return 0, err
	}

	var lastOrder *int
	if ok {
		lastOrder = &last
	}

	stubs, err := l.client.Orders().ListNew(ctx, lastOrder)
	if err != nil {
		return 0, fmt.Errorf("polling new orders: %w", err)
	}

	handled := 0

	for _, stub := range stubs {
		order, err := l.client.Orders().Get(ctx, stub.Number)
		if err != nil {
			return handled, fmt.Errorf("fetching order %d: %w", stub.Number, err)
		}

		if err := l.handler(ctx, order); err != nil {
			return handled, fmt.Errorf("handling order %d: %w", stub.Number, err)
		}

		if err := l.store.Save(ctx, l.Name(), stub.Number); err != nil {
			return handled, err
		}

		handled++
	}

	return handled, nil
}

// QuoteHandler processes one newly sent quote.
type QuoteHandler func(ctx context.Context, quote *quotient.Quote) error

// QuoteListener polls for new quotes.
type QuoteListener struct {
	client  quotient.Client
	store   Store
	handler QuoteHandler
}

// NewQuoteListener creates a listener that feeds new quotes to the handler.
func NewQuoteListener(client quotient.Client, store Store, handler QuoteHandler) *QuoteListener {
	return &QuoteListener{client: client, store: store, handler: handler}
}

// Name implements Listener.Name.
func (l *QuoteListener) Name() string { return "quotes" }

// Poll implements Listener.Poll.
func (l *QuoteListener) Poll(ctx context.Context) (int, error) {
	last, ok, err := l.store.Load(ctx, l.Name())
	if err != nil {
		return 0, err
	}

	var lastQuote *int
	if ok {
		lastQuote = &last
	}

	stubs, err := l.client.Quotes().ListNew(ctx, lastQuote, nil)
	if err != nil {
		return 0, fmt.Errorf("polling new quotes: %w", err)
	}

	handled := 0

	for _, stub := range stubs {
		quote, err := l.client.Quotes().Get(ctx, stub.Number, stub.Revision)
		if err != nil {
			return handled, fmt.Errorf("fetching quote %d: %w", stub.Number, err)
		}

		if err := l.handler(ctx, quote); err != nil {
			return handled, fmt.Errorf("handling quote %d: %w", stub.Number, err)
		}

		if err := l.store.Save(ctx, l.Name(), stub.Number); err != nil {
			return handled, err
		}

		handled++
	}

	return handled, nil
}

// Runner polls a set of listeners on a fixed interval until the context is
// cancelled. Each listener runs once immediately on start.
type Runner struct {
	listeners []Listener
	interval  time.Duration
	logger    quotient.Logger
}

// NewRunner creates a runner with the default poll interval.
func NewRunner(logger quotient.Logger, ls ...Listener) *Runner {
	return &Runner{listeners: ls, interval: DefaultPollInterval, logger: logger}
}

// SetInterval overrides the poll interval.
func (r *Runner) SetInterval(interval time.Duration) {
	r.interval = interval
}

// Run polls until the context is cancelled. Listener errors are logged and
// retried on the next tick rather than stopping the runner.
func (r *Runner) Run(ctx context.Context) error {
	r.pollAll(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.pollAll(ctx)
		}
	}
}

func (r *Runner) pollAll(ctx context.Context) {
	for _, l := range r.listeners {
		r.poll(ctx, l)
	}
}

// poll runs one listener iteration. A panicking handler must not take down
// the other listeners, so it is recovered and logged here.
func (r *Runner) poll(ctx context.Context, l Listener) {
	defer func() {
		if rec := recover(); rec != nil && r.logger != nil {
			r.logger.Error("listener poll panicked", "listener", l.Name(), "panic", rec)
		}
	}()

	handled, err := l.Poll(ctx)
	if err != nil {
		if r.logger != nil {
			r.logger.Error("listener poll failed", "listener", l.Name(), "error", err)
		}

		return
	}

	if r.logger != nil && handled > 0 {
		r.logger.Info("listener handled resources", "listener", l.Name(), "count", handled)
	}
}
