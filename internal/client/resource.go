package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/quotient-io/quotient-client/internal/http"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// validator is implemented by resources that check their own required
// fields. The engine runs it on both directions: before a write, and after
// parsing a response, so callers never see a partially populated resource.
type validator interface {
	Validate() error
}

// decodeInto unmarshals a wire document into the resource and runs its field
// checks. Type-mismatched values surface as conversion errors naming the
// offending field.
func decodeInto[T any](body []byte, resource *T, what string) error {
	if err := json.Unmarshal(body, resource); err != nil {
		return fmt.Errorf("parsing %s response: %w", what, asConversionError(err))
	}

	if v, ok := any(resource).(validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("parsing %s response: %w", what, err)
		}
	}

	return nil
}

// asConversionError maps a decoder type mismatch to the conversion error
// callers match on, carrying the wire field name and the declared type.
func asConversionError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &quotient.ConversionError{
			Field:    typeErr.Field,
			Expected: typeErr.Type.String(),
			Value:    typeErr.Value,
			Cause:    err,
		}
	}

	return err
}

// validateEach runs every element's field checks after a list decode.
func validateEach[T any](resources []T, what string) error {
	for i := range resources {
		if v, ok := any(&resources[i]).(validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("parsing %s response: %w", what, err)
			}
		}
	}

	return nil
}

// reconcile replaces the local resource with the server's rendition of it.
// Whole-struct assignment keeps the copy-back explicit: only declared fields
// exist afterwards, and fields the response omits return to their zero
// values.
func reconcile[T any](resource *T, body []byte, what string) error {
	var parsed T

	if err := decodeInto(body, &parsed, what); err != nil {
		return err
	}

	*resource = parsed

	return nil
}

// getResource fetches and decodes a single resource.
func getResource[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values, what string) (*T, error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	var resource T

	if err := decodeInto(resp.Body, &resource, what); err != nil {
		return nil, err
	}

	return &resource, nil
}

// listSlice fetches an endpoint that returns its results as a bare JSON
// array with no pagination envelope.
func listSlice[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values, what string) ([]T, error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	var resources []T

	err = json.Unmarshal(resp.Body, &resources)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, asConversionError(err))
	}

	if err := validateEach(resources, what); err != nil {
		return nil, err
	}

	return resources, nil
}

// listAllPages fetches a paginated endpoint and follows its next links until
// the server reports no further page. Query parameters the caller supplied
// are re-applied to every page so they survive servers that drop them from
// the next link. The page ceiling turns a next-link loop into an error
// instead of an endless crawl.
func listAllPages[T any](ctx context.Context, httpClient *http.Client, path string, params *quotient.QueryParams, what string) ([]T, error) {
	callerValues := params.ToValues()

	var (
		all  []T
		next string
	)

	for page := 0; ; page++ {
		if page >= quotient.MaxListPages {
			return nil, fmt.Errorf("listing %s: %w", what, quotient.ErrTooManyPages)
		}

		var (
			resp *http.Response
			err  error
		)

		if page == 0 {
			resp, err = httpClient.Get(ctx, path, callerValues)
		} else {
			resp, err = httpClient.GetURL(ctx, next)
		}

		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", what, err)
		}

		var envelope quotient.ListEnvelope[T]

		err = json.Unmarshal(resp.Body, &envelope)
		if err != nil {
			return nil, fmt.Errorf("parsing %s response: %w", what, asConversionError(err))
		}

		if err := validateEach(envelope.Results, what); err != nil {
			return nil, err
		}

		all = append(all, envelope.Results...)

		if !envelope.HasNext() {
			return all, nil
		}

		next, err = nextPageURL(*envelope.Next, callerValues)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", what, err)
		}
	}
}

// nextPageURL re-applies the caller's parameters onto the server's next
// link, so the follow-up request keeps both the server's cursor and the
// caller's filters.
func nextPageURL(next string, callerValues url.Values) (string, error) {
	merged, err := quotient.NextPageValues(next, callerValues)
	if err != nil {
		return "", err
	}

	parsed, err := url.Parse(next)
	if err != nil {
		return "", &quotient.PaginationError{Next: next, Cause: err}
	}

	parsed.RawQuery = merged.Encode()

	return parsed.String(), nil
}

// createResource validates the resource, POSTs it, and reconciles it with
// the server's response.
func createResource[T any](ctx context.Context, httpClient *http.Client, path string, resource *T, what string) error {
	if v, ok := any(resource).(validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("creating %s: %w", what, err)
		}
	}

	resp, err := httpClient.Post(ctx, path, resource)
	if err != nil {
		return fmt.Errorf("creating %s: %w", what, err)
	}

	return reconcile(resource, resp.Body, what)
}

// updateResource validates the resource, PATCHes it, and reconciles it with
// the server's response.
func updateResource[T any](ctx context.Context, httpClient *http.Client, path string, resource *T, what string) error {
	if v, ok := any(resource).(validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("updating %s: %w", what, err)
		}
	}

	resp, err := httpClient.Patch(ctx, path, resource)
	if err != nil {
		return fmt.Errorf("updating %s: %w", what, err)
	}

	return reconcile(resource, resp.Body, what)
}
