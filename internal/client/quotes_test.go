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

func TestQuotesClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("fetches by number", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/quotes/public/101", request.URL.Path)
			assert.Empty(t, request.URL.Query().Get("revision"))

			_ = json.NewEncoder(writer).Encode(map[string]any{
				"id":     9,
				"number": 101,
				"status": "outstanding",
			})
		}))
		defer server.Close()

		quotes := client.NewQuotesClient(qhttp.NewClient(server.URL, nil))

		quote, err := quotes.Get(context.Background(), 101, nil)
		require.NoError(t, err)
		assert.Equal(t, 101, quote.Number)
		assert.Equal(t, quotient.QuoteStatusOutstanding, quote.Status)
	})

	t.Run("passes the revision parameter", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "2", request.URL.Query().Get("revision"))

			_ = json.NewEncoder(writer).Encode(map[string]any{
				"number":          101,
				"revision_number": 2,
			})
		}))
		defer server.Close()

		quotes := client.NewQuotesClient(qhttp.NewClient(server.URL, nil))

		revision := 2

		quote, err := quotes.Get(context.Background(), 101, &revision)
		require.NoError(t, err)
		require.NotNil(t, quote.RevisionNumber)
		assert.Equal(t, 2, *quote.RevisionNumber)
	})

	t.Run("missing quote", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]string{"message": "not found"})
		}))
		defer server.Close()

		quotes := client.NewQuotesClient(qhttp.NewClient(server.URL, nil))

		_, err := quotes.Get(context.Background(), 999, nil)
		require.Error(t, err)
		assert.True(t, quotient.IsNotFound(err))
	})

	t.Run("rejects a response without the quote number", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]any{"status": "outstanding"})
		}))
		defer server.Close()

		quotes := client.NewQuotesClient(qhttp.NewClient(server.URL, nil))

		_, err := quotes.Get(context.Background(), 101, nil)
		require.Error(t, err)
		assert.True(t, quotient.IsValidation(err))

		missingErr := &quotient.MissingFieldError{}
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "number", missingErr.Field)
	})

	t.Run("rejects a type-mismatched field", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]any{"number": "abc"})
		}))
		defer server.Close()

		quotes := client.NewQuotesClient(qhttp.NewClient(server.URL, nil))

		_, err := quotes.Get(context.Background(), 101, nil)
		require.Error(t, err)
		assert.True(t, quotient.IsValidation(err))

		convErr := &quotient.ConversionError{}
		require.ErrorAs(t, err, &convErr)
		assert.Equal(t, "number", convErr.Field)
		assert.Equal(t, "int", convErr.Expected)
	})
}

func TestQuotesClient_ListNew(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/quotes/public/new", request.URL.Path)
		assert.Equal(t, "100", request.URL.Query().Get("last_quote"))

		_ = json.NewEncoder(writer).Encode([]map[string]any{
			{"number": 101},
			{"number": 102, "revision_number": 1},
		})
	}))
	defer server.Close()

	quotes := client.NewQuotesClient(qhttp.NewClient(server.URL, nil))

	last := 100

	stubs, err := quotes.ListNew(context.Background(), &last, nil)
	require.NoError(t, err)
	require.Len(t, stubs, 2)
	assert.Equal(t, 101, stubs[0].Number)
	require.NotNil(t, stubs[1].Revision)
	assert.Equal(t, 1, *stubs[1].Revision)
}

func TestQuotesClient_Update(t *testing.T) {
	t.Parallel()
	t.Run("sends erp code and reconciles", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PATCH", request.Method)
			assert.Equal(t, "/quotes/public/101", request.URL.Path)

			var body map[string]any

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "ERP-7", body["erp_code"])

			// Server's canonical rendition wins, including fields the
			// client never set.
			_ = json.NewEncoder(writer).Encode(map[string]any{
				"id":       9,
				"number":   101,
				"status":   "accepted",
				"erp_code": "ERP-7",
			})
		}))
		defer server.Close()

		quotes := client.NewQuotesClient(qhttp.NewClient(server.URL, nil))

		quote := &quotient.Quote{Number: 101, ERPCode: quotient.Set("ERP-7")}

		require.NoError(t, quotes.Update(context.Background(), quote))
		assert.Equal(t, quotient.QuoteStatusAccepted, quote.Status)
		assert.Equal(t, "ERP-7", quote.ERPCode.ValueOr(""))
	})

	t.Run("unset erp code is omitted from the payload", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			var body map[string]any

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			_, present := body["erp_code"]
			assert.False(t, present)

			_ = json.NewEncoder(writer).Encode(map[string]any{"number": 101})
		}))
		defer server.Close()

		quotes := client.NewQuotesClient(qhttp.NewClient(server.URL, nil))

		require.NoError(t, quotes.Update(context.Background(), &quotient.Quote{Number: 101}))
	})

	t.Run("rejects a quote without a number", func(t *testing.T) {
		t.Parallel()

		quotes := client.NewQuotesClient(qhttp.NewClient("http://unused.invalid", nil))

		err := quotes.Update(context.Background(), &quotient.Quote{})
		require.Error(t, err)
		assert.True(t, quotient.IsValidation(err))
	})
}

func TestQuotesClient_SetStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PATCH", request.Method)
		assert.Equal(t, "/quotes/public/101/status_change", request.URL.Path)

		var body map[string]string

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "cancelled", body["status"])

		_ = json.NewEncoder(writer).Encode(map[string]any{
			"number": 101,
			"status": "cancelled",
		})
	}))
	defer server.Close()

	quotes := client.NewQuotesClient(qhttp.NewClient(server.URL, nil))

	quote := &quotient.Quote{Number: 101, Status: quotient.QuoteStatusOutstanding}

	require.NoError(t, quotes.SetStatus(context.Background(), quote, quotient.QuoteStatusCancelled))
	assert.Equal(t, quotient.QuoteStatusCancelled, quote.Status)
}
