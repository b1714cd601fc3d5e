package quotient

import (
	"errors"
	"net/url"
)

// MaxListPages caps how many pages a single list call will follow. A server
// that never returns a null next link would otherwise loop forever; hitting
// the ceiling fails the whole call with ErrTooManyPages.
const MaxListPages = 10000

// ListEnvelope is the paginated list response wrapper: the results for one
// page plus the URL of the next page, or null on the final page.
type ListEnvelope[T any] struct {
	Results []T     `json:"results"`
	Next    *string `json:"next"`
}

// HasNext reports whether another page follows this one.
func (e *ListEnvelope[T]) HasNext() bool {
	return e.Next != nil && *e.Next != ""
}

// NextPageValues derives the query parameters for the follow-up request
// from an envelope's next link, merging the caller-supplied params on top.
// Caller params win on key collision. A next link that is present but not
// parsable as a URL is a PaginationError.
func NextPageValues(next string, callerParams url.Values) (url.Values, error) {
	if next == "" {
		return nil, &PaginationError{Next: next, Cause: errors.New("empty next link")}
	}

	parsed, err := url.Parse(next)
	if err != nil {
		return nil, &PaginationError{Next: next, Cause: err}
	}

	values, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		return nil, &PaginationError{Next: next, Cause: err}
	}

	for key, vals := range callerParams {
		values[key] = vals
	}

	return values, nil
}
