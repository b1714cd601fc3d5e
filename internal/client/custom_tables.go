package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/quotient-io/quotient-client/internal/constants"
	"github.com/quotient-io/quotient-client/internal/http"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// CustomTablesClient implements quotient.CustomTablesClient. Custom tables
// are keyed by name, so paths embed the table name instead of a numeric id.
type CustomTablesClient struct {
	httpClient *http.Client
}

// NewCustomTablesClient creates a new custom tables client.
func NewCustomTablesClient(httpClient *http.Client) *CustomTablesClient {
	return &CustomTablesClient{httpClient: httpClient}
}

// List implements quotient.CustomTablesClient.List.
func (c *CustomTablesClient) List(ctx context.Context) ([]string, error) {
	resp, err := c.httpClient.Get(ctx, constants.CustomTablesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing custom tables: %w", err)
	}

	var names []string

	err = json.Unmarshal(resp.Body, &names)
	if err != nil {
		return nil, fmt.Errorf("parsing custom tables response: %w", asConversionError(err))
	}

	return names, nil
}

// Get implements quotient.CustomTablesClient.Get.
func (c *CustomTablesClient) Get(ctx context.Context, name string) (*quotient.CustomTable, error) {
	return getResource[quotient.CustomTable](ctx, c.httpClient, tablePath(name), nil, "custom table")
}

// Create implements quotient.CustomTablesClient.Create.
func (c *CustomTablesClient) Create(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("creating custom table: %w", &quotient.MissingFieldError{Field: "name"})
	}

	body := struct {
		Name string `json:"name"`
	}{name}

	_, err := c.httpClient.Post(ctx, constants.CustomTablesPath, body)
	if err != nil {
		return fmt.Errorf("creating custom table: %w", err)
	}

	return nil
}

// Update implements quotient.CustomTablesClient.Update.
func (c *CustomTablesClient) Update(ctx context.Context, name string, table *quotient.CustomTable) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("updating custom table: %w", err)
	}

	body := struct {
		Config []quotient.CustomTableColumn `json:"config"`
		Data   []map[string]any             `json:"data"`
	}{table.Config, table.Data}

	resp, err := c.httpClient.Patch(ctx, tablePath(name), body)
	if err != nil {
		return fmt.Errorf("updating custom table: %w", err)
	}

	return reconcile(table, resp.Body, "custom table")
}

// Delete implements quotient.CustomTablesClient.Delete.
func (c *CustomTablesClient) Delete(ctx context.Context, name string) error {
	_, err := c.httpClient.Delete(ctx, tablePath(name))
	if err != nil {
		return fmt.Errorf("deleting custom table: %w", err)
	}

	return nil
}

// DownloadCSV implements quotient.CustomTablesClient.DownloadCSV.
func (c *CustomTablesClient) DownloadCSV(ctx context.Context, name string, config bool) ([]byte, error) {
	path := constants.CustomTablesPath + "/csv_download/" + url.PathEscape(name)

	var query url.Values

	if config {
		query = url.Values{"config": {"true"}}
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("downloading custom table csv: %w", err)
	}

	return resp.Body, nil
}

func tablePath(name string) string {
	return constants.CustomTablesPath + "/" + url.PathEscape(name)
}
