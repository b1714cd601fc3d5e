// Package qclient provides the main entry point for creating Quotient API
// clients.
package qclient

import (
	"fmt"
	"strings"

	"github.com/quotient-io/quotient-client/internal/client"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// DefaultEndpoint is the production API endpoint.
const DefaultEndpoint = "https://api.quotient-io.com"

// New creates a new API client from the config.
func New(config *quotient.Config) (quotient.Client, error) {
	if config == nil {
		return nil, quotient.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		config.APIEndpoint = DefaultEndpoint
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a new client for the default endpoint with an access
// token.
func NewWithToken(token string) (quotient.Client, error) {
	return New(&quotient.Config{
		AccessToken: token,
	})
}

// NewWithEndpoint creates a new client with an API endpoint and access
// token.
func NewWithEndpoint(endpoint, token string) (quotient.Client, error) {
	return New(&quotient.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}
