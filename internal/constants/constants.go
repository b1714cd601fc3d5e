package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for longer operations such as batch
	// upserts.
	ExtendedHTTPTimeout = 45 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API paths.
const (
	// QuotesPath is the base path for quote resources.
	QuotesPath = "quotes/public"

	// OrdersPath is the base path for order resources.
	OrdersPath = "orders/public"

	// ManagedIntegrationsPath is the base path for managed integration
	// resources. Integration actions nest under it.
	ManagedIntegrationsPath = "managed_integrations/public"

	// PurchasedComponentsPath is the base path for the purchased component
	// catalog.
	PurchasedComponentsPath = "suppliers/public/purchased_components"

	// PurchasedComponentColumnsPath is the base path for catalog column
	// definitions.
	PurchasedComponentColumnsPath = "suppliers/public/purchased_component_columns"

	// AccountsPath is the base path for customer account resources. Billing
	// addresses and facilities nest under it for creation and listing.
	AccountsPath = "accounts/public"

	// ContactsPath is the base path for contact resources.
	ContactsPath = "contacts/public"

	// BillingAddressesPath is the base path for reads and writes of existing
	// billing addresses.
	BillingAddressesPath = "billing_addresses/public"

	// FacilitiesPath is the base path for reads and writes of existing
	// facilities.
	FacilitiesPath = "facilities/public"

	// PaymentTermsPath is the base path for the payment terms catalog.
	PaymentTermsPath = "customers/public/payment_terms"

	// CustomTablesPath is the base path for supplier custom tables.
	CustomTablesPath = "suppliers/public/custom_tables"
)
