package listeners_test

import (
	"context"
	"errors"
	"testing"

	"github.com/quotient-io/quotient-client/pkg/listeners"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errHandlerBoom = errors.New("handler boom")

// fakeOrders serves a fixed set of orders and records the last-order cursor
// it was asked for.
type fakeOrders struct {
	quotient.OrdersClient

	orders      []int
	lastSeen    []*int
	failNumbers map[int]bool
}

func (f *fakeOrders) ListNew(_ context.Context, lastOrder *int) ([]quotient.OrderMinimum, error) {
	f.lastSeen = append(f.lastSeen, lastOrder)

	var stubs []quotient.OrderMinimum

	for _, number := range f.orders {
		if lastOrder == nil || number > *lastOrder {
			stubs = append(stubs, quotient.OrderMinimum{Number: number})
		}
	}

	return stubs, nil
}

func (f *fakeOrders) Get(_ context.Context, number int) (*quotient.Order, error) {
	if f.failNumbers[number] {
		return nil, quotient.ErrNotFound
	}

	return &quotient.Order{Number: number}, nil
}

// fakeClient satisfies quotient.Client for the resource clients a test
// wires in; the rest stay nil.
type fakeClient struct {
	orders quotient.OrdersClient
	quotes quotient.QuotesClient
}

func (c *fakeClient) Quotes() quotient.QuotesClient                           { return c.quotes }
func (c *fakeClient) Orders() quotient.OrdersClient                           { return c.orders }
func (c *fakeClient) ManagedIntegrations() quotient.ManagedIntegrationsClient { return nil }
func (c *fakeClient) IntegrationActions() quotient.IntegrationActionsClient   { return nil }
func (c *fakeClient) PurchasedComponents() quotient.PurchasedComponentsClient { return nil }
func (c *fakeClient) PurchasedComponentColumns() quotient.PurchasedComponentColumnsClient {
	return nil
}
func (c *fakeClient) Accounts() quotient.AccountsClient                 { return nil }
func (c *fakeClient) Contacts() quotient.ContactsClient                 { return nil }
func (c *fakeClient) BillingAddresses() quotient.BillingAddressesClient { return nil }
func (c *fakeClient) Facilities() quotient.FacilitiesClient             { return nil }
func (c *fakeClient) PaymentTerms() quotient.PaymentTermsClient         { return nil }
func (c *fakeClient) CustomTables() quotient.CustomTablesClient         { return nil }

func TestOrderListener_Poll(t *testing.T) {
	t.Parallel()
	t.Run("handles everything on first run and checkpoints", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrders{orders: []int{201, 202, 203}}
		store := listeners.NewMemoryStore()

		var handled []int

		listener := listeners.NewOrderListener(
			&fakeClient{orders: orders},
			store,
			func(_ context.Context, order *quotient.Order) error {
				handled = append(handled, order.Number)

				return nil
			},
		)

		count, err := listener.Poll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.Equal(t, []int{201, 202, 203}, handled)

		// First run polls with no cursor.
		require.Len(t, orders.lastSeen, 1)
		assert.Nil(t, orders.lastSeen[0])

		last, ok, err := store.Load(context.Background(), listener.Name())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 203, last)
	})

	t.Run("resumes from the checkpoint", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrders{orders: []int{201, 202, 203}}
		store := listeners.NewMemoryStore()
		require.NoError(t, store.Save(context.Background(), "orders", 202))

		var handled []int

		listener := listeners.NewOrderListener(
			&fakeClient{orders: orders},
			store,
			func(_ context.Context, order *quotient.Order) error {
				handled = append(handled, order.Number)

				return nil
			},
		)

		count, err := listener.Poll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, []int{203}, handled)

		require.Len(t, orders.lastSeen, 1)
		require.NotNil(t, orders.lastSeen[0])
		assert.Equal(t, 202, *orders.lastSeen[0])
	})

	t.Run("a handler failure stops before checkpointing it", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrders{orders: []int{201, 202, 203}}
		store := listeners.NewMemoryStore()

		listener := listeners.NewOrderListener(
			&fakeClient{orders: orders},
			store,
			func(_ context.Context, order *quotient.Order) error {
				if order.Number == 202 {
					return errHandlerBoom
				}

				return nil
			},
		)

		count, err := listener.Poll(context.Background())
		require.ErrorIs(t, err, errHandlerBoom)
		assert.Equal(t, 1, count)

		// 201 is checkpointed; 202 is retried next poll.
		last, ok, err := store.Load(context.Background(), listener.Name())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 201, last)
	})

	t.Run("a fetch failure stops before checkpointing it", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrders{orders: []int{201, 202}, failNumbers: map[int]bool{202: true}}
		store := listeners.NewMemoryStore()

		listener := listeners.NewOrderListener(
			&fakeClient{orders: orders},
			store,
			func(_ context.Context, _ *quotient.Order) error { return nil },
		)

		count, err := listener.Poll(context.Background())
		require.Error(t, err)
		assert.True(t, quotient.IsNotFound(err))
		assert.Equal(t, 1, count)
	})
}

// fakeQuotes serves quote stubs, tracking which revisions were fetched.
type fakeQuotes struct {
	quotient.QuotesClient

	stubs   []quotient.QuoteMinimum
	fetched []quotient.QuoteMinimum
}

func (f *fakeQuotes) ListNew(_ context.Context, lastQuote *int, _ *int) ([]quotient.QuoteMinimum, error) {
	var out []quotient.QuoteMinimum

	for _, stub := range f.stubs {
		if lastQuote == nil || stub.Number > *lastQuote {
			out = append(out, stub)
		}
	}

	return out, nil
}

func (f *fakeQuotes) Get(_ context.Context, number int, revision *int) (*quotient.Quote, error) {
	f.fetched = append(f.fetched, quotient.QuoteMinimum{Number: number, Revision: revision})

	return &quotient.Quote{Number: number, RevisionNumber: revision}, nil
}

func TestQuoteListener_Poll(t *testing.T) {
	t.Parallel()

	revision := 2
	quotes := &fakeQuotes{stubs: []quotient.QuoteMinimum{
		{Number: 101},
		{Number: 102, Revision: &revision},
	}}
	store := listeners.NewMemoryStore()

	var handled []int

	listener := listeners.NewQuoteListener(
		&fakeClient{quotes: quotes},
		store,
		func(_ context.Context, quote *quotient.Quote) error {
			handled = append(handled, quote.Number)

			return nil
		},
	)

	count, err := listener.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []int{101, 102}, handled)

	// The revision from the stub is passed through to the fetch.
	require.Len(t, quotes.fetched, 2)
	assert.Nil(t, quotes.fetched[0].Revision)
	require.NotNil(t, quotes.fetched[1].Revision)
	assert.Equal(t, 2, *quotes.fetched[1].Revision)

	last, ok, err := store.Load(context.Background(), listener.Name())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 102, last)
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	store, err := listeners.NewSQLiteStore(t.TempDir() + "/checkpoints.db")
	require.NoError(t, err)

	defer func() { _ = store.Close() }()

	_, ok, err := store.Load(context.Background(), "orders")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(context.Background(), "orders", 201))
	require.NoError(t, store.Save(context.Background(), "orders", 205))

	last, ok, err := store.Load(context.Background(), "orders")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 205, last)
}
