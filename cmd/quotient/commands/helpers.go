package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/quotient-io/quotient-client/internal/constants"
	"github.com/quotient-io/quotient-client/pkg/qclient"
	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrTokenRequired    = errors.New("access token is required (use 'quotient login' or --token)")
	ErrInvalidNumber    = errors.New("argument must be a positive number")
	ErrERPNameRequired  = errors.New("ERP name is required (--erp-name)")
	ErrTypeRequired     = errors.New("action type is required")
	ErrEntityIDRequired = errors.New("entity id is required")
)

// CreateClient builds an API client from the effective flag and config
// values.
func CreateClient() (quotient.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	config := &quotient.Config{
		APIEndpoint: viper.GetString("api"),
		AccessToken: token,
		Debug:       viper.GetBool("verbose"),
	}

	return qclient.New(config)
}

// CreateLongRunningClient builds an API client with the extended request
// timeout, for commands that issue slow calls such as batch upserts or
// full-catalog listings.
func CreateLongRunningClient() (quotient.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	config := &quotient.Config{
		APIEndpoint: viper.GetString("api"),
		AccessToken: token,
		Debug:       viper.GetBool("verbose"),
		HTTPTimeout: constants.ExtendedHTTPTimeout,
	}

	return qclient.New(config)
}

// OutputStructured renders v as JSON or YAML when the output flag asks for
// it. handled reports whether rendering happened, so table fallbacks know
// when to run.
func OutputStructured(v any) (handled bool, err error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(v)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(v)
	default:
		return false, nil
	}
}

// parseNumber parses a positive integer CLI argument.
func parseNumber(arg string) (int, error) {
	number, err := strconv.Atoi(arg)
	if err != nil || number <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, arg)
	}

	return number, nil
}

// strOrNA renders an optional string for table cells.
func strOrNA(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}

	return *s
}

// intOrNA renders an optional int for table cells.
func intOrNA(i *int) string {
	if i == nil {
		return NotAvailable
	}

	return strconv.Itoa(*i)
}

// optOrNA renders an optional string field for table cells.
func optOrNA(o quotient.Optional[string]) string {
	if v, ok := o.Value(); ok {
		return v
	}

	return NotAvailable
}
