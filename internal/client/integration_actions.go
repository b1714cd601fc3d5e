package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quotient-io/quotient-client/internal/constants"
	"github.com/quotient-io/quotient-client/internal/http"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// IntegrationActionsClient implements quotient.IntegrationActionsClient.
// Actions nest under their managed integration, so every call takes the
// integration UUID.
type IntegrationActionsClient struct {
	httpClient *http.Client
}

// NewIntegrationActionsClient creates a new integration actions client.
func NewIntegrationActionsClient(httpClient *http.Client) *IntegrationActionsClient {
	return &IntegrationActionsClient{httpClient: httpClient}
}

func actionsPath(integrationUUID string) string {
	return constants.ManagedIntegrationsPath + "/" + integrationUUID + "/integration_actions"
}

// List implements quotient.IntegrationActionsClient.List.
func (c *IntegrationActionsClient) List(ctx context.Context, integrationUUID string, params *quotient.QueryParams) ([]quotient.IntegrationAction, error) {
	return listAllPages[quotient.IntegrationAction](ctx, c.httpClient, actionsPath(integrationUUID), params, "integration actions")
}

// Get implements quotient.IntegrationActionsClient.Get.
func (c *IntegrationActionsClient) Get(ctx context.Context, integrationUUID, uuid string) (*quotient.IntegrationAction, error) {
	path := actionsPath(integrationUUID) + "/" + uuid

	return getResource[quotient.IntegrationAction](ctx, c.httpClient, path, nil, "integration action")
}

// Create implements quotient.IntegrationActionsClient.Create.
func (c *IntegrationActionsClient) Create(ctx context.Context, integrationUUID string, action *quotient.IntegrationAction) error {
	return createResource(ctx, c.httpClient, actionsPath(integrationUUID), action, "integration action")
}

// Update implements quotient.IntegrationActionsClient.Update.
func (c *IntegrationActionsClient) Update(ctx context.Context, integrationUUID string, action *quotient.IntegrationAction) error {
	uuid, ok := action.UUID.Value()
	if !ok {
		return fmt.Errorf("updating integration action: %w", quotient.ErrPrimaryKeyUnset)
	}

	path := actionsPath(integrationUUID) + "/" + uuid

	return updateResource(ctx, c.httpClient, path, action, "integration action")
}

// CreateMany implements quotient.IntegrationActionsClient.CreateMany.
func (c *IntegrationActionsClient) CreateMany(ctx context.Context, integrationUUID string, actions []quotient.IntegrationAction) ([]quotient.IntegrationAction, error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("creating integration actions: %w", quotient.ErrEmptyBatch)
	}

	for i := range actions {
		if err := actions[i].Validate(); err != nil {
			return nil, fmt.Errorf("creating integration actions: %w", err)
		}
	}

	resp, err := c.httpClient.Post(ctx, actionsPath(integrationUUID), actions)
	if err != nil {
		return nil, fmt.Errorf("creating integration actions: %w", err)
	}

	var created []quotient.IntegrationAction

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing integration actions response: %w", asConversionError(err))
	}

	if err := validateEach(created, "integration actions"); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateMany implements quotient.IntegrationActionsClient.UpdateMany.
func (c *IntegrationActionsClient) UpdateMany(ctx context.Context, integrationUUID string, actions []quotient.IntegrationAction) ([]quotient.IntegrationAction, error) {
	if len(actions) == 0 {
		return nil, fmt.Errorf("updating integration actions: %w", quotient.ErrEmptyBatch)
	}

	for i := range actions {
		if err := actions[i].Validate(); err != nil {
			return nil, fmt.Errorf("updating integration actions: %w", err)
		}

		if _, ok := actions[i].UUID.Value(); !ok {
			return nil, fmt.Errorf("updating integration actions: %w", quotient.ErrPrimaryKeyUnset)
		}
	}

	resp, err := c.httpClient.Patch(ctx, actionsPath(integrationUUID), actions)
	if err != nil {
		return nil, fmt.Errorf("updating integration actions: %w", err)
	}

	var updated []quotient.IntegrationAction

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, fmt.Errorf("parsing integration actions response: %w", asConversionError(err))
	}

	if err := validateEach(updated, "integration actions"); err != nil {
		return nil, err
	}

	return updated, nil
}

// ListDefinitions implements quotient.IntegrationActionsClient.ListDefinitions.
func (c *IntegrationActionsClient) ListDefinitions(ctx context.Context, integrationUUID string) ([]quotient.IntegrationActionDefinition, error) {
	path := constants.ManagedIntegrationsPath + "/" + integrationUUID + "/integration_action_definitions"

	return listSlice[quotient.IntegrationActionDefinition](ctx, c.httpClient, path, nil, "integration action definitions")
}
