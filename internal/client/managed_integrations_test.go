package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quotient-io/quotient-client/internal/client"
	qhttp "github.com/quotient-io/quotient-client/internal/http"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagedIntegrationsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/managed_integrations/public", request.URL.Path)

		_ = json.NewEncoder(writer).Encode([]map[string]any{
			{"uuid": "m1", "erp_name": "netsuite", "is_active": true},
			{"uuid": "m2", "erp_name": "sap", "is_active": false},
		})
	}))
	defer server.Close()

	integrations := client.NewManagedIntegrationsClient(qhttp.NewClient(server.URL, nil))

	got, err := integrations.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "netsuite", got[0].ERPName)
	assert.True(t, got[0].IsActive)
	assert.Equal(t, "m2", got[1].UUID.ValueOr(""))
}

func TestManagedIntegrationsClient_Create(t *testing.T) {
	t.Parallel()
	t.Run("reconciles the server-assigned uuid", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)

			var body map[string]any

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "netsuite", body["erp_name"])

			_, hasUUID := body["uuid"]
			assert.False(t, hasUUID)

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(map[string]any{
				"uuid":      "m1",
				"erp_name":  "netsuite",
				"is_active": true,
			})
		}))
		defer server.Close()

		integrations := client.NewManagedIntegrationsClient(qhttp.NewClient(server.URL, nil))

		mi := &quotient.ManagedIntegration{ERPName: "netsuite", IsActive: true}

		require.NoError(t, integrations.Create(context.Background(), mi))
		assert.Equal(t, "m1", mi.UUID.ValueOr(""))
	})

	t.Run("rejects a missing erp name", func(t *testing.T) {
		t.Parallel()

		integrations := client.NewManagedIntegrationsClient(qhttp.NewClient("http://unused.invalid", nil))

		err := integrations.Create(context.Background(), &quotient.ManagedIntegration{})
		require.Error(t, err)
		assert.True(t, quotient.IsValidation(err))
	})
}

func TestManagedIntegrationsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)
		assert.Equal(t, "/managed_integrations/public/m1", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(map[string]any{
			"uuid":        "m1",
			"erp_name":    "netsuite",
			"erp_version": "2026.1",
			"is_active":   true,
		})
	}))
	defer server.Close()

	integrations := client.NewManagedIntegrationsClient(qhttp.NewClient(server.URL, nil))

	mi := &quotient.ManagedIntegration{
		UUID:       quotient.Set("m1"),
		ERPName:    "netsuite",
		ERPVersion: quotient.Set("2026.1"),
	}

	require.NoError(t, integrations.Update(context.Background(), mi))
	assert.Equal(t, "2026.1", mi.ERPVersion.ValueOr(""))
	assert.True(t, mi.IsActive)
}

func TestManagedIntegrationsClient_Heartbeat(t *testing.T) {
	t.Parallel()
	t.Run("posts the interval", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/managed_integrations/public/m1/heartbeat", request.URL.Path)

			var body map[string]int

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, 900, body["interval"])

			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		integrations := client.NewManagedIntegrationsClient(qhttp.NewClient(server.URL, nil))

		require.NoError(t, integrations.Heartbeat(context.Background(), "m1", 900))
	})

	t.Run("rejects a non-positive interval", func(t *testing.T) {
		t.Parallel()

		integrations := client.NewManagedIntegrationsClient(qhttp.NewClient("http://unused.invalid", nil))

		err := integrations.Heartbeat(context.Background(), "m1", 0)
		require.Error(t, err)
		assert.True(t, quotient.IsValidation(err))
	})
}
