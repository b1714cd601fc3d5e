package qclient_test

import (
	"testing"

	"github.com/quotient-io/quotient-client/pkg/qclient"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		config       *quotient.Config
		wantErr      error
		wantEndpoint string
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: quotient.ErrConfigRequired,
		},
		{
			name:    "missing token",
			config:  &quotient.Config{APIEndpoint: "https://api.example.com"},
			wantErr: quotient.ErrAccessTokenRequired,
		},
		{
			name:         "defaults to the production endpoint",
			config:       &quotient.Config{AccessToken: "token"},
			wantEndpoint: qclient.DefaultEndpoint,
		},
		{
			name:         "trims trailing slash",
			config:       &quotient.Config{APIEndpoint: "https://api.example.com/", AccessToken: "token"},
			wantEndpoint: "https://api.example.com",
		},
		{
			name:         "adds https scheme",
			config:       &quotient.Config{APIEndpoint: "api.example.com", AccessToken: "token"},
			wantEndpoint: "https://api.example.com",
		},
		{
			name:         "keeps explicit http scheme",
			config:       &quotient.Config{APIEndpoint: "http://localhost:8080", AccessToken: "token"},
			wantEndpoint: "http://localhost:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			apiClient, err := qclient.New(tt.config)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, apiClient)
			assert.Equal(t, tt.wantEndpoint, tt.config.APIEndpoint)

			assert.NotNil(t, apiClient.Quotes())
			assert.NotNil(t, apiClient.Orders())
			assert.NotNil(t, apiClient.ManagedIntegrations())
			assert.NotNil(t, apiClient.IntegrationActions())
			assert.NotNil(t, apiClient.PurchasedComponents())
			assert.NotNil(t, apiClient.PurchasedComponentColumns())
			assert.NotNil(t, apiClient.Accounts())
			assert.NotNil(t, apiClient.Contacts())
			assert.NotNil(t, apiClient.BillingAddresses())
			assert.NotNil(t, apiClient.Facilities())
			assert.NotNil(t, apiClient.PaymentTerms())
			assert.NotNil(t, apiClient.CustomTables())
		})
	}
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	apiClient, err := qclient.NewWithToken("token")
	require.NoError(t, err)
	assert.NotNil(t, apiClient)
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	apiClient, err := qclient.NewWithEndpoint("https://api.example.com", "token")
	require.NoError(t, err)
	assert.NotNil(t, apiClient)
}
