package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/quotient-io/quotient-client/internal/constants"
	"github.com/quotient-io/quotient-client/internal/http"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// QuotesClient implements quotient.QuotesClient.
type QuotesClient struct {
	httpClient *http.Client
}

// NewQuotesClient creates a new quotes client.
func NewQuotesClient(httpClient *http.Client) *QuotesClient {
	return &QuotesClient{httpClient: httpClient}
}

// revisionQuery builds the query distinguishing a quote revision from the
// original. The original carries no revision parameter.
func revisionQuery(revision *int) url.Values {
	if revision == nil {
		return nil
	}

	return url.Values{"revision": []string{strconv.Itoa(*revision)}}
}

// Get implements quotient.QuotesClient.Get.
func (c *QuotesClient) Get(ctx context.Context, number int, revision *int) (*quotient.Quote, error) {
	path := fmt.Sprintf("%s/%d", constants.QuotesPath, number)

	return getResource[quotient.Quote](ctx, c.httpClient, path, revisionQuery(revision), "quote")
}

// ListNew implements quotient.QuotesClient.ListNew.
func (c *QuotesClient) ListNew(ctx context.Context, lastQuote *int, revision *int) ([]quotient.QuoteMinimum, error) {
	query := url.Values{}

	if lastQuote != nil {
		query.Set("last_quote", strconv.Itoa(*lastQuote))
	}

	if revision != nil {
		query.Set("revision", strconv.Itoa(*revision))
	}

	return listSlice[quotient.QuoteMinimum](ctx, c.httpClient, constants.QuotesPath+"/new", query, "new quotes")
}

// Update implements quotient.QuotesClient.Update.
func (c *QuotesClient) Update(ctx context.Context, quote *quotient.Quote) error {
	if err := quote.Validate(); err != nil {
		return fmt.Errorf("updating quote: %w", err)
	}

	path := fmt.Sprintf("%s/%d", constants.QuotesPath, quote.Number)

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PATCH",
		Path:   path,
		Query:  revisionQuery(quote.RevisionNumber),
		Body:   quote,
	})
	if err != nil {
		return fmt.Errorf("updating quote: %w", err)
	}

	return reconcile(quote, resp.Body, "quote")
}

// SetStatus implements quotient.QuotesClient.SetStatus.
func (c *QuotesClient) SetStatus(ctx context.Context, quote *quotient.Quote, status quotient.QuoteStatus) error {
	if err := quote.Validate(); err != nil {
		return fmt.Errorf("setting quote status: %w", err)
	}

	path := fmt.Sprintf("%s/%d/status_change", constants.QuotesPath, quote.Number)

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PATCH",
		Path:   path,
		Query:  revisionQuery(quote.RevisionNumber),
		Body:   map[string]quotient.QuoteStatus{"status": status},
	})
	if err != nil {
		return fmt.Errorf("setting quote status: %w", err)
	}

	return reconcile(quote, resp.Body, "quote")
}
