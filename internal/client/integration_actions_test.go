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

const testIntegrationUUID = "3f6f0dcc-52ba-4a13-a14e-bd7b414ad16f"

func TestIntegrationActionsClient_List(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/managed_integrations/public/"+testIntegrationUUID+"/integration_actions", request.URL.Path)
		// The status filter survives onto the second page.
		assert.Equal(t, "queued", request.URL.Query().Get("status"))

		if request.URL.Query().Get("page") == "2" {
			_ = json.NewEncoder(writer).Encode(map[string]any{
				"results": []map[string]any{
					{"uuid": "c3", "type": "export_order", "entity_id": "203", "status": "queued"},
				},
				"next": nil,
			})

			return
		}

		link := server.URL + "/managed_integrations/public/" + testIntegrationUUID + "/integration_actions?page=2"
		_ = json.NewEncoder(writer).Encode(map[string]any{
			"results": []map[string]any{
				{"uuid": "c1", "type": "export_order", "entity_id": "201", "status": "queued"},
				{"uuid": "c2", "type": "export_order", "entity_id": "202", "status": "queued"},
			},
			"next": link,
		})
	}))
	defer server.Close()

	actions := client.NewIntegrationActionsClient(qhttp.NewClient(server.URL, nil))

	params := quotient.NewQueryParams().WithFilter("status", "queued")

	got, err := actions.List(context.Background(), testIntegrationUUID, params)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "201", got[0].EntityID)
	assert.Equal(t, "c3", got[2].UUID.ValueOr(""))
}

func TestIntegrationActionsClient_Create(t *testing.T) {
	t.Parallel()
	t.Run("reconciles the server-assigned uuid", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)

			var body map[string]any

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "export_order", body["type"])
			assert.Equal(t, "205", body["entity_id"])

			_, hasUUID := body["uuid"]
			assert.False(t, hasUUID)

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(map[string]any{
				"uuid":      "a1",
				"type":      "export_order",
				"entity_id": "205",
				"status":    "queued",
				"created":   "2026-08-26T12:00:00Z",
			})
		}))
		defer server.Close()

		actions := client.NewIntegrationActionsClient(qhttp.NewClient(server.URL, nil))

		action := &quotient.IntegrationAction{Type: "export_order", EntityID: "205"}

		require.NoError(t, actions.Create(context.Background(), testIntegrationUUID, action))
		assert.Equal(t, "a1", action.UUID.ValueOr(""))
		assert.Equal(t, quotient.IntegrationActionStatusQueued, action.Status.ValueOr(""))

		created, err := action.CreatedTime()
		require.NoError(t, err)
		assert.Equal(t, 2026, created.Year())
	})

	t.Run("rejects an action without a type", func(t *testing.T) {
		t.Parallel()

		actions := client.NewIntegrationActionsClient(qhttp.NewClient("http://unused.invalid", nil))

		err := actions.Create(context.Background(), testIntegrationUUID, &quotient.IntegrationAction{EntityID: "205"})
		require.Error(t, err)
		assert.True(t, quotient.IsValidation(err))
	})
}

func TestIntegrationActionsClient_Update(t *testing.T) {
	t.Parallel()
	t.Run("patches by uuid", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PATCH", request.Method)
			assert.Equal(t, "/managed_integrations/public/"+testIntegrationUUID+"/integration_actions/a1", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(map[string]any{
				"uuid":      "a1",
				"type":      "export_order",
				"entity_id": "205",
				"status":    "completed",
			})
		}))
		defer server.Close()

		actions := client.NewIntegrationActionsClient(qhttp.NewClient(server.URL, nil))

		action := &quotient.IntegrationAction{
			Type:     "export_order",
			EntityID: "205",
			UUID:     quotient.Set("a1"),
			Status:   quotient.Set(quotient.IntegrationActionStatusCompleted),
		}

		require.NoError(t, actions.Update(context.Background(), testIntegrationUUID, action))
		assert.Equal(t, quotient.IntegrationActionStatusCompleted, action.Status.ValueOr(""))
	})

	t.Run("rejects an action without a uuid", func(t *testing.T) {
		t.Parallel()

		actions := client.NewIntegrationActionsClient(qhttp.NewClient("http://unused.invalid", nil))

		err := actions.Update(context.Background(), testIntegrationUUID, &quotient.IntegrationAction{
			Type:     "export_order",
			EntityID: "205",
		})
		require.ErrorIs(t, err, quotient.ErrPrimaryKeyUnset)
	})
}

func TestIntegrationActionsClient_CreateMany(t *testing.T) {
	t.Parallel()
	t.Run("posts the batch and returns the created actions", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)

			var body []map[string]any

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			require.Len(t, body, 2)

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode([]map[string]any{
				{"uuid": "a1", "type": "export_order", "entity_id": "201", "status": "queued"},
				{"uuid": "a2", "type": "export_order", "entity_id": "202", "status": "queued"},
			})
		}))
		defer server.Close()

		actions := client.NewIntegrationActionsClient(qhttp.NewClient(server.URL, nil))

		created, err := actions.CreateMany(context.Background(), testIntegrationUUID, []quotient.IntegrationAction{
			{Type: "export_order", EntityID: "201"},
			{Type: "export_order", EntityID: "202"},
		})
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, "a2", created[1].UUID.ValueOr(""))
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		t.Parallel()

		actions := client.NewIntegrationActionsClient(qhttp.NewClient("http://unused.invalid", nil))

		_, err := actions.CreateMany(context.Background(), testIntegrationUUID, nil)
		require.ErrorIs(t, err, quotient.ErrEmptyBatch)
	})
}

func TestIntegrationActionsClient_ListDefinitions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/managed_integrations/public/"+testIntegrationUUID+"/integration_action_definitions", request.URL.Path)

		_ = json.NewEncoder(writer).Encode([]map[string]any{
			{"uuid": "d1", "name": "Export Order", "type": "export_order", "related_object_type": "order"},
		})
	}))
	defer server.Close()

	actions := client.NewIntegrationActionsClient(qhttp.NewClient(server.URL, nil))

	definitions, err := actions.ListDefinitions(context.Background(), testIntegrationUUID)
	require.NoError(t, err)
	require.Len(t, definitions, 1)
	assert.Equal(t, "export_order", definitions[0].Type)
}
