package quotient

import (
	"context"
	"time"
)

// Client is the top-level interface to the quoting API. Obtain one with
// qclient.New.
type Client interface {
	Quotes() QuotesClient
	Orders() OrdersClient
	ManagedIntegrations() ManagedIntegrationsClient
	IntegrationActions() IntegrationActionsClient
	PurchasedComponents() PurchasedComponentsClient
	PurchasedComponentColumns() PurchasedComponentColumnsClient
	Accounts() AccountsClient
	Contacts() ContactsClient
	BillingAddresses() BillingAddressesClient
	Facilities() FacilitiesClient
	PaymentTerms() PaymentTermsClient
	CustomTables() CustomTablesClient
}

// QuotesClient operates on quotes. Quotes are keyed by quote number, with an
// optional revision number distinguishing revised quotes from the original.
type QuotesClient interface {
	// Get fetches a quote by number. Pass a non-nil revision to fetch a
	// specific revision of the quote.
	Get(ctx context.Context, number int, revision *int) (*Quote, error)

	// ListNew returns minimal stubs for quotes sent after lastQuote. A nil
	// lastQuote returns all quotes not yet retrieved by this token.
	ListNew(ctx context.Context, lastQuote *int, revision *int) ([]QuoteMinimum, error)

	// Update writes the quote's mutable fields back to the server and
	// reconciles the local value with the server's response.
	Update(ctx context.Context, quote *Quote) error

	// SetStatus transitions the quote to the given status and reconciles
	// the local value with the server's response.
	SetStatus(ctx context.Context, quote *Quote, status QuoteStatus) error
}

// OrdersClient operates on orders. Orders are keyed by order number.
type OrdersClient interface {
	Get(ctx context.Context, number int) (*Order, error)

	// ListNew returns minimal stubs for orders placed after lastOrder. A
	// nil lastOrder returns all orders visible to this token.
	ListNew(ctx context.Context, lastOrder *int) ([]OrderMinimum, error)

	Update(ctx context.Context, order *Order) error
}

// ManagedIntegrationsClient operates on managed integration registrations.
type ManagedIntegrationsClient interface {
	List(ctx context.Context) ([]ManagedIntegration, error)
	Get(ctx context.Context, uuid string) (*ManagedIntegration, error)
	Create(ctx context.Context, integration *ManagedIntegration) error
	Update(ctx context.Context, integration *ManagedIntegration) error

	// Heartbeat reports liveness for the integration. Interval is the
	// number of seconds until the next expected heartbeat.
	Heartbeat(ctx context.Context, uuid string, interval int) error
}

// IntegrationActionsClient operates on the integration actions nested under
// a managed integration.
type IntegrationActionsClient interface {
	// List returns actions for the managed integration, following
	// pagination until exhausted. Params may narrow the result set.
	List(ctx context.Context, integrationUUID string, params *QueryParams) ([]IntegrationAction, error)

	Get(ctx context.Context, integrationUUID, uuid string) (*IntegrationAction, error)
	Create(ctx context.Context, integrationUUID string, action *IntegrationAction) error
	Update(ctx context.Context, integrationUUID string, action *IntegrationAction) error

	// CreateMany creates a batch of actions in one request and returns the
	// created resources as the server recorded them.
	CreateMany(ctx context.Context, integrationUUID string, actions []IntegrationAction) ([]IntegrationAction, error)

	// UpdateMany updates a batch of actions in one request and returns the
	// updated resources as the server recorded them.
	UpdateMany(ctx context.Context, integrationUUID string, actions []IntegrationAction) ([]IntegrationAction, error)

	// ListDefinitions returns the action types configured for the managed
	// integration.
	ListDefinitions(ctx context.Context, integrationUUID string) ([]IntegrationActionDefinition, error)
}

// PurchasedComponentsClient operates on the purchased component catalog.
type PurchasedComponentsClient interface {
	// List returns catalog entries, following pagination until exhausted.
	List(ctx context.Context, params *QueryParams) ([]PurchasedComponent, error)

	// Search returns catalog entries matching the search term.
	Search(ctx context.Context, term string) ([]PurchasedComponent, error)

	Get(ctx context.Context, id int) (*PurchasedComponent, error)
	Create(ctx context.Context, component *PurchasedComponent) error
	Update(ctx context.Context, component *PurchasedComponent) error
	Delete(ctx context.Context, id int) error

	// BatchUpsert creates or updates up to MaxBatchSize components in one
	// request, keyed by OEM part number. The response partitions the batch
	// into accepted and rejected entries.
	BatchUpsert(ctx context.Context, components []PurchasedComponent) (*BatchResponse[PurchasedComponent], error)
}

// PurchasedComponentColumnsClient operates on the custom column definitions
// of the purchased component catalog.
type PurchasedComponentColumnsClient interface {
	List(ctx context.Context) ([]PurchasedComponentColumn, error)
	Create(ctx context.Context, column *PurchasedComponentColumn) error

	// Update writes the column definition back. When updateExistingDefaults
	// is true the server rewrites stored values that still carry the old
	// default.
	Update(ctx context.Context, column *PurchasedComponentColumn, updateExistingDefaults bool) error

	Delete(ctx context.Context, id int) error
}

// AccountsClient operates on customer company records.
type AccountsClient interface {
	// List returns accounts, following pagination until exhausted. Params
	// may narrow the result set, e.g. WithFilter("erp_code", code).
	List(ctx context.Context, params *QueryParams) ([]Account, error)

	// Search returns accounts matching the search term.
	Search(ctx context.Context, term string) ([]Account, error)

	Get(ctx context.Context, id int) (*Account, error)
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id int) error
}

// ContactsClient operates on the people quotes are sent to.
type ContactsClient interface {
	// List returns contacts, following pagination until exhausted. Params
	// may narrow the result set, e.g. WithFilter("account_id", id).
	List(ctx context.Context, params *QueryParams) ([]Contact, error)

	// Search returns contacts matching the search term.
	Search(ctx context.Context, term string) ([]Contact, error)

	Get(ctx context.Context, id int) (*Contact, error)
	Create(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id int) error
}

// BillingAddressesClient operates on the invoicing addresses nested under an
// account. Creation and listing are scoped to an account; reads and writes of
// an existing address are keyed by its own id.
type BillingAddressesClient interface {
	List(ctx context.Context, accountID int) ([]BillingAddress, error)
	Get(ctx context.Context, id int) (*BillingAddress, error)
	Create(ctx context.Context, accountID int, address *BillingAddress) error
	Update(ctx context.Context, address *BillingAddress) error
	Delete(ctx context.Context, id int) error
}

// FacilitiesClient operates on the shipping destinations nested under an
// account, with the same nesting rules as BillingAddressesClient.
type FacilitiesClient interface {
	List(ctx context.Context, accountID int) ([]Facility, error)
	Get(ctx context.Context, id int) (*Facility, error)
	Create(ctx context.Context, accountID int, facility *Facility) error
	Update(ctx context.Context, facility *Facility) error
	Delete(ctx context.Context, id int) error
}

// PaymentTermsClient operates on the account-wide payment terms catalog.
type PaymentTermsClient interface {
	List(ctx context.Context) ([]PaymentTerms, error)
	Create(ctx context.Context, terms *PaymentTerms) error
	Update(ctx context.Context, terms *PaymentTerms) error
	Delete(ctx context.Context, id int) error
}

// CustomTablesClient operates on supplier custom tables, which are keyed by
// name rather than a numeric id.
type CustomTablesClient interface {
	// List returns the names of the tables defined for this supplier.
	List(ctx context.Context) ([]string, error)

	Get(ctx context.Context, name string) (*CustomTable, error)

	// Create registers an empty table under the given name. Populate it
	// with Update afterwards.
	Create(ctx context.Context, name string) error

	// Update replaces the table's config and rows.
	Update(ctx context.Context, name string, table *CustomTable) error

	Delete(ctx context.Context, name string) error

	// DownloadCSV returns the table's rows rendered as CSV. When config is
	// true it returns the column config instead.
	DownloadCSV(ctx context.Context, name string, config bool) ([]byte, error)
}

// Logger is the minimal logging interface the client writes to. It matches
// the methods of slog.Logger so one can be passed directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config carries everything needed to construct a Client.
type Config struct {
	// APIEndpoint is the base URL of the API, e.g.
	// "https://api.quotient.example.com". Required.
	APIEndpoint string

	// AccessToken authenticates every request. Required.
	AccessToken string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request and response logging.
	Debug bool

	// Logger receives client log output. Defaults to slog.Default.
	Logger Logger

	// RetryMax is the number of retries for retryable failures. Zero means
	// the default of 3.
	RetryMax int

	// RetryWaitMin and RetryWaitMax bound the backoff between retries.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// HTTPTimeout bounds each HTTP request. Zero means the default of 30s.
	HTTPTimeout time.Duration
}

// Validate reports whether the config can produce a working client.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}
	if c.APIEndpoint == "" {
		return ErrAPIEndpointRequired
	}
	if c.AccessToken == "" {
		return ErrAccessTokenRequired
	}
	return nil
}
