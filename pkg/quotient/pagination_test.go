package quotient_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEnvelope_HasNext(t *testing.T) {
	t.Parallel()

	var envelope quotient.ListEnvelope[int]

	require.NoError(t, json.Unmarshal([]byte(`{"results": [1, 2], "next": null}`), &envelope))
	assert.False(t, envelope.HasNext())
	assert.Equal(t, []int{1, 2}, envelope.Results)

	require.NoError(t, json.Unmarshal([]byte(`{"results": [], "next": "https://api.example.com/x?page=2"}`), &envelope))
	assert.True(t, envelope.HasNext())
}

func TestNextPageValues(t *testing.T) {
	t.Parallel()
	t.Run("extracts the next link's query", func(t *testing.T) {
		t.Parallel()

		values, err := quotient.NextPageValues("https://api.example.com/items?page=2&per_page=50", nil)
		require.NoError(t, err)
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "50", values.Get("per_page"))
	})

	t.Run("caller params win on collision", func(t *testing.T) {
		t.Parallel()

		caller := url.Values{"per_page": []string{"10"}, "status": []string{"queued"}}

		values, err := quotient.NextPageValues("https://api.example.com/items?page=3&per_page=50", caller)
		require.NoError(t, err)
		assert.Equal(t, "3", values.Get("page"))
		assert.Equal(t, "10", values.Get("per_page"))
		assert.Equal(t, "queued", values.Get("status"))
	})

	t.Run("empty link is a pagination error", func(t *testing.T) {
		t.Parallel()

		_, err := quotient.NextPageValues("", nil)
		require.Error(t, err)

		pagErr := &quotient.PaginationError{}
		require.ErrorAs(t, err, &pagErr)
	})

	t.Run("malformed query is a pagination error", func(t *testing.T) {
		t.Parallel()

		_, err := quotient.NextPageValues("https://api.example.com/items?page=%zz", nil)
		require.Error(t, err)

		pagErr := &quotient.PaginationError{}
		require.ErrorAs(t, err, &pagErr)
	})
}

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()
	t.Run("nil params produce empty values", func(t *testing.T) {
		t.Parallel()

		var params *quotient.QueryParams

		assert.Empty(t, params.ToValues())
	})

	t.Run("builders accumulate", func(t *testing.T) {
		t.Parallel()

		values := quotient.NewQueryParams().
			WithPage(2).
			WithPerPage(25).
			WithOrderBy("-created").
			WithSearch("bracket").
			WithFilter("status", "queued").
			ToValues()

		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "25", values.Get("per_page"))
		assert.Equal(t, "-created", values.Get("o"))
		assert.Equal(t, "bracket", values.Get("search"))
		assert.Equal(t, "queued", values.Get("status"))
	})
}
