package client

import (
	"context"
	"fmt"

	"github.com/quotient-io/quotient-client/internal/constants"
	"github.com/quotient-io/quotient-client/internal/http"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// ManagedIntegrationsClient implements quotient.ManagedIntegrationsClient.
type ManagedIntegrationsClient struct {
	httpClient *http.Client
}

// NewManagedIntegrationsClient creates a new managed integrations client.
func NewManagedIntegrationsClient(httpClient *http.Client) *ManagedIntegrationsClient {
	return &ManagedIntegrationsClient{httpClient: httpClient}
}

// List implements quotient.ManagedIntegrationsClient.List.
func (c *ManagedIntegrationsClient) List(ctx context.Context) ([]quotient.ManagedIntegration, error) {
	return listSlice[quotient.ManagedIntegration](ctx, c.httpClient, constants.ManagedIntegrationsPath, nil, "managed integrations")
}

// Get implements quotient.ManagedIntegrationsClient.Get.
func (c *ManagedIntegrationsClient) Get(ctx context.Context, uuid string) (*quotient.ManagedIntegration, error) {
	path := constants.ManagedIntegrationsPath + "/" + uuid

	return getResource[quotient.ManagedIntegration](ctx, c.httpClient, path, nil, "managed integration")
}

// Create implements quotient.ManagedIntegrationsClient.Create.
func (c *ManagedIntegrationsClient) Create(ctx context.Context, integration *quotient.ManagedIntegration) error {
	return createResource(ctx, c.httpClient, constants.ManagedIntegrationsPath, integration, "managed integration")
}

// Update implements quotient.ManagedIntegrationsClient.Update.
func (c *ManagedIntegrationsClient) Update(ctx context.Context, integration *quotient.ManagedIntegration) error {
	uuid, ok := integration.UUID.Value()
	if !ok {
		return fmt.Errorf("updating managed integration: %w", quotient.ErrPrimaryKeyUnset)
	}

	path := constants.ManagedIntegrationsPath + "/" + uuid

	return updateResource(ctx, c.httpClient, path, integration, "managed integration")
}

// Heartbeat implements quotient.ManagedIntegrationsClient.Heartbeat. The
// server replies with no body, so nothing reconciles.
func (c *ManagedIntegrationsClient) Heartbeat(ctx context.Context, uuid string, interval int) error {
	heartbeat := &quotient.IntegrationHeartbeat{Interval: interval}
	if err := heartbeat.Validate(); err != nil {
		return fmt.Errorf("sending heartbeat: %w", err)
	}

	path := constants.ManagedIntegrationsPath + "/" + uuid + "/heartbeat"

	_, err := c.httpClient.Post(ctx, path, heartbeat)
	if err != nil {
		return fmt.Errorf("sending heartbeat: %w", err)
	}

	return nil
}
