package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/quotient-io/quotient-client/internal/constants"
	"github.com/quotient-io/quotient-client/internal/http"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// PurchasedComponentsClient implements quotient.PurchasedComponentsClient.
type PurchasedComponentsClient struct {
	httpClient *http.Client
}

// NewPurchasedComponentsClient creates a new purchased components client.
func NewPurchasedComponentsClient(httpClient *http.Client) *PurchasedComponentsClient {
	return &PurchasedComponentsClient{httpClient: httpClient}
}

// List implements quotient.PurchasedComponentsClient.List.
func (c *PurchasedComponentsClient) List(ctx context.Context, params *quotient.QueryParams) ([]quotient.PurchasedComponent, error) {
	return listAllPages[quotient.PurchasedComponent](ctx, c.httpClient, constants.PurchasedComponentsPath, params, "purchased components")
}

// Search implements quotient.PurchasedComponentsClient.Search.
func (c *PurchasedComponentsClient) Search(ctx context.Context, term string) ([]quotient.PurchasedComponent, error) {
	params := quotient.NewQueryParams().WithSearch(term)

	return listAllPages[quotient.PurchasedComponent](ctx, c.httpClient, constants.PurchasedComponentsPath+"/search", params, "purchased components")
}

// Get implements quotient.PurchasedComponentsClient.Get.
func (c *PurchasedComponentsClient) Get(ctx context.Context, id int) (*quotient.PurchasedComponent, error) {
	path := fmt.Sprintf("%s/%d", constants.PurchasedComponentsPath, id)

	return getResource[quotient.PurchasedComponent](ctx, c.httpClient, path, nil, "purchased component")
}

// Create implements quotient.PurchasedComponentsClient.Create.
func (c *PurchasedComponentsClient) Create(ctx context.Context, component *quotient.PurchasedComponent) error {
	return createResource(ctx, c.httpClient, constants.PurchasedComponentsPath, component, "purchased component")
}

// Update implements quotient.PurchasedComponentsClient.Update.
func (c *PurchasedComponentsClient) Update(ctx context.Context, component *quotient.PurchasedComponent) error {
	id, ok := component.ID.Value()
	if !ok {
		return fmt.Errorf("updating purchased component: %w", quotient.ErrPrimaryKeyUnset)
	}

	path := fmt.Sprintf("%s/%d", constants.PurchasedComponentsPath, id)

	return updateResource(ctx, c.httpClient, path, component, "purchased component")
}

// Delete implements quotient.PurchasedComponentsClient.Delete.
func (c *PurchasedComponentsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d", constants.PurchasedComponentsPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting purchased component: %w", err)
	}

	return nil
}

// BatchUpsert implements quotient.PurchasedComponentsClient.BatchUpsert.
func (c *PurchasedComponentsClient) BatchUpsert(ctx context.Context, components []quotient.PurchasedComponent) (*quotient.BatchResponse[quotient.PurchasedComponent], error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("upserting purchased components: %w", quotient.ErrEmptyBatch)
	}

	if len(components) > quotient.MaxBatchSize {
		return nil, fmt.Errorf("upserting purchased components: %w", &quotient.ValidationError{
			Field:  "components",
			Reason: "batch exceeds " + strconv.Itoa(quotient.MaxBatchSize) + " entries",
		})
	}

	for i := range components {
		if err := components[i].Validate(); err != nil {
			return nil, fmt.Errorf("upserting purchased components: %w", err)
		}
	}

	resp, err := c.httpClient.Post(ctx, constants.PurchasedComponentsPath+"/batch", components)
	if err != nil {
		return nil, fmt.Errorf("upserting purchased components: %w", err)
	}

	var batch quotient.BatchResponse[quotient.PurchasedComponent]

	err = json.Unmarshal(resp.Body, &batch)
	if err != nil {
		return nil, fmt.Errorf("parsing batch response: %w", err)
	}

	return &batch, nil
}

// PurchasedComponentColumnsClient implements
// quotient.PurchasedComponentColumnsClient.
type PurchasedComponentColumnsClient struct {
	httpClient *http.Client
}

// NewPurchasedComponentColumnsClient creates a new columns client.
func NewPurchasedComponentColumnsClient(httpClient *http.Client) *PurchasedComponentColumnsClient {
	return &PurchasedComponentColumnsClient{httpClient: httpClient}
}

// List implements quotient.PurchasedComponentColumnsClient.List.
func (c *PurchasedComponentColumnsClient) List(ctx context.Context) ([]quotient.PurchasedComponentColumn, error) {
	return listSlice[quotient.PurchasedComponentColumn](ctx, c.httpClient, constants.PurchasedComponentColumnsPath, nil, "purchased component columns")
}

// Create implements quotient.PurchasedComponentColumnsClient.Create.
func (c *PurchasedComponentColumnsClient) Create(ctx context.Context, column *quotient.PurchasedComponentColumn) error {
	return createResource(ctx, c.httpClient, constants.PurchasedComponentColumnsPath, column, "purchased component column")
}

// Update implements quotient.PurchasedComponentColumnsClient.Update.
func (c *PurchasedComponentColumnsClient) Update(ctx context.Context, column *quotient.PurchasedComponentColumn, updateExistingDefaults bool) error {
	id, ok := column.ID.Value()
	if !ok {
		return fmt.Errorf("updating purchased component column: %w", quotient.ErrPrimaryKeyUnset)
	}

	if err := column.Validate(); err != nil {
		return fmt.Errorf("updating purchased component column: %w", err)
	}

	path := fmt.Sprintf("%s/%d", constants.PurchasedComponentColumnsPath, id)

	body := struct {
		*quotient.PurchasedComponentColumn
		UpdateExistingDefaults bool `json:"update_existing_defaults"`
	}{column, updateExistingDefaults}

	resp, err := c.httpClient.Patch(ctx, path, body)
	if err != nil {
		return fmt.Errorf("updating purchased component column: %w", err)
	}

	return reconcile(column, resp.Body, "purchased component column")
}

// Delete implements quotient.PurchasedComponentColumnsClient.Delete.
func (c *PurchasedComponentColumnsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d", constants.PurchasedComponentColumnsPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting purchased component column: %w", err)
	}

	return nil
}
