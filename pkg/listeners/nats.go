package listeners

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// NATS subjects for published resource events.
const (
	SubjectNewOrder = "quotient.orders.new"
	SubjectNewQuote = "quotient.quotes.new"
)

// Event is the message published for each new resource.
type Event struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Number     int       `json:"number"`
	Revision   *int      `json:"revision,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher forwards new orders and quotes to NATS, so downstream systems
// consume resource events without polling the API themselves.
type Publisher struct {
	conn *nats.Conn
}

// NewPublisher connects to the NATS server at url.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}

	return &Publisher{conn: conn}, nil
}

// NewPublisherWithConn wraps an existing connection. The caller retains
// ownership of the connection.
func NewPublisherWithConn(conn *nats.Conn) *Publisher {
	return &Publisher{conn: conn}
}

// OrderHandler returns a handler that publishes each new order.
func (p *Publisher) OrderHandler() OrderHandler {
	return func(_ context.Context, order *quotient.Order) error {
		return p.publish(SubjectNewOrder, Event{
			ID:         uuid.NewString(),
			Subject:    SubjectNewOrder,
			Number:     order.Number,
			OccurredAt: time.Now().UTC(),
		})
	}
}

// QuoteHandler returns a handler that publishes each new quote.
func (p *Publisher) QuoteHandler() QuoteHandler {
	return func(_ context.Context, quote *quotient.Quote) error {
		return p.publish(SubjectNewQuote, Event{
			ID:         uuid.NewString(),
			Subject:    SubjectNewQuote,
			Number:     quote.Number,
			Revision:   quote.RevisionNumber,
			OccurredAt: time.Now().UTC(),
		})
	}
}

func (p *Publisher) publish(subject string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	return nil
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Flush()
	p.conn.Close()
}
