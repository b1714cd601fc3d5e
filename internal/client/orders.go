package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quotient-io/quotient-client/internal/constants"
	"github.com/quotient-io/quotient-client/internal/http"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// OrdersClient implements quotient.OrdersClient.
type OrdersClient struct {
	httpClient *http.Client
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(httpClient *http.Client) *OrdersClient {
	return &OrdersClient{httpClient: httpClient}
}

// Get implements quotient.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, number int) (*quotient.Order, error) {
	path := fmt.Sprintf("%s/%d", constants.OrdersPath, number)

	return getResource[quotient.Order](ctx, c.httpClient, path, nil, "order")
}

// ListNew implements quotient.OrdersClient.ListNew. The endpoint returns an
// envelope of stubs; full orders must be fetched individually.
func (c *OrdersClient) ListNew(ctx context.Context, lastOrder *int) ([]quotient.OrderMinimum, error) {
	params := quotient.NewQueryParams()

	if lastOrder != nil {
		params = params.WithFilter("last_order", strconv.Itoa(*lastOrder))
	}

	return listAllPages[quotient.OrderMinimum](ctx, c.httpClient, constants.OrdersPath+"/new", params, "new orders")
}

// Update implements quotient.OrdersClient.Update.
func (c *OrdersClient) Update(ctx context.Context, order *quotient.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	path := fmt.Sprintf("%s/%d", constants.OrdersPath, order.Number)

	return updateResource(ctx, c.httpClient, path, order, "order")
}
