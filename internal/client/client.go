// Package client implements the quotient.Client interface on top of the
// shared transport.
package client

import (
	"github.com/quotient-io/quotient-client/internal/auth"
	"github.com/quotient-io/quotient-client/internal/http"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// Client implements the quotient.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       quotient.Logger

	// Resource clients
	quotes                    quotient.QuotesClient
	orders                    quotient.OrdersClient
	managedIntegrations       quotient.ManagedIntegrationsClient
	integrationActions        quotient.IntegrationActionsClient
	purchasedComponents       quotient.PurchasedComponentsClient
	purchasedComponentColumns quotient.PurchasedComponentColumnsClient
	accounts                  quotient.AccountsClient
	contacts                  quotient.ContactsClient
	billingAddresses          quotient.BillingAddressesClient
	facilities                quotient.FacilitiesClient
	paymentTerms              quotient.PaymentTermsClient
	customTables              quotient.CustomTablesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *quotient.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := config.RetryWaitMin
		retryWaitMax := config.RetryWaitMax

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client from the config.
func New(config *quotient.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tokenManager := auth.NewStaticTokenManager(config.AccessToken)
	httpClient := http.NewClient(config.APIEndpoint, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Quotes implements quotient.Client.Quotes.
func (c *Client) Quotes() quotient.QuotesClient {
	return c.quotes
}

// Orders implements quotient.Client.Orders.
func (c *Client) Orders() quotient.OrdersClient {
	return c.orders
}

// ManagedIntegrations implements quotient.Client.ManagedIntegrations.
func (c *Client) ManagedIntegrations() quotient.ManagedIntegrationsClient {
	return c.managedIntegrations
}

// IntegrationActions implements quotient.Client.IntegrationActions.
func (c *Client) IntegrationActions() quotient.IntegrationActionsClient {
	return c.integrationActions
}

// PurchasedComponents implements quotient.Client.PurchasedComponents.
func (c *Client) PurchasedComponents() quotient.PurchasedComponentsClient {
	return c.purchasedComponents
}

// PurchasedComponentColumns implements quotient.Client.PurchasedComponentColumns.
func (c *Client) PurchasedComponentColumns() quotient.PurchasedComponentColumnsClient {
	return c.purchasedComponentColumns
}

// Accounts implements quotient.Client.Accounts.
func (c *Client) Accounts() quotient.AccountsClient {
	return c.accounts
}

// Contacts implements quotient.Client.Contacts.
func (c *Client) Contacts() quotient.ContactsClient {
	return c.contacts
}

// BillingAddresses implements quotient.Client.BillingAddresses.
func (c *Client) BillingAddresses() quotient.BillingAddressesClient {
	return c.billingAddresses
}

// Facilities implements quotient.Client.Facilities.
func (c *Client) Facilities() quotient.FacilitiesClient {
	return c.facilities
}

// PaymentTerms implements quotient.Client.PaymentTerms.
func (c *Client) PaymentTerms() quotient.PaymentTermsClient {
	return c.paymentTerms
}

// CustomTables implements quotient.Client.CustomTables.
func (c *Client) CustomTables() quotient.CustomTablesClient {
	return c.customTables
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.quotes = NewQuotesClient(c.httpClient)
	c.orders = NewOrdersClient(c.httpClient)
	c.managedIntegrations = NewManagedIntegrationsClient(c.httpClient)
	c.integrationActions = NewIntegrationActionsClient(c.httpClient)
	c.purchasedComponents = NewPurchasedComponentsClient(c.httpClient)
	c.purchasedComponentColumns = NewPurchasedComponentColumnsClient(c.httpClient)
	c.accounts = NewAccountsClient(c.httpClient)
	c.contacts = NewContactsClient(c.httpClient)
	c.billingAddresses = NewBillingAddressesClient(c.httpClient)
	c.facilities = NewFacilitiesClient(c.httpClient)
	c.paymentTerms = NewPaymentTermsClient(c.httpClient)
	c.customTables = NewCustomTablesClient(c.httpClient)
}
