package quotient

import (
	"net/url"
	"strconv"
)

// QueryParams expresses the common list options the API understands:
// pagination, ordering, free-text search, and equality filters.
type QueryParams struct {
	Page    int
	PerPage int
	OrderBy string
	Search  string
	Filters map[string]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string]string),
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithPerPage sets the page size.
func (q *QueryParams) WithPerPage(perPage int) *QueryParams {
	q.PerPage = perPage

	return q
}

// WithOrderBy sets the sort field; prefix with "-" for descending order.
func (q *QueryParams) WithOrderBy(orderBy string) *QueryParams {
	q.OrderBy = orderBy

	return q
}

// WithSearch sets a free-text search term.
func (q *QueryParams) WithSearch(term string) *QueryParams {
	q.Search = term

	return q
}

// WithFilter sets a single-valued equality filter, replacing any previous
// value for the same key.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string]string)
	}

	q.Filters[key] = value

	return q
}

// ToValues converts the parameters to url.Values for the transport layer.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}

	if q.OrderBy != "" {
		values.Set("o", q.OrderBy)
	}

	if q.Search != "" {
		values.Set("search", q.Search)
	}

	for key, value := range q.Filters {
		values.Set(key, value)
	}

	return values
}
