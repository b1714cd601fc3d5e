package client

import (
	"context"
	"fmt"

	"github.com/quotient-io/quotient-client/internal/constants"
	"github.com/quotient-io/quotient-client/internal/http"
	"github.com/quotient-io/quotient-client/pkg/quotient"
)

// AccountsClient implements quotient.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client) *AccountsClient {
	return &AccountsClient{httpClient: httpClient}
}

// List implements quotient.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, params *quotient.QueryParams) ([]quotient.Account, error) {
	return listAllPages[quotient.Account](ctx, c.httpClient, constants.AccountsPath, params, "accounts")
}

// Search implements quotient.AccountsClient.Search.
func (c *AccountsClient) Search(ctx context.Context, term string) ([]quotient.Account, error) {
	params := quotient.NewQueryParams().WithSearch(term)

	return listAllPages[quotient.Account](ctx, c.httpClient, constants.AccountsPath, params, "accounts")
}

// Get implements quotient.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, id int) (*quotient.Account, error) {
	path := fmt.Sprintf("%s/%d", constants.AccountsPath, id)

	return getResource[quotient.Account](ctx, c.httpClient, path, nil, "account")
}

// Create implements quotient.AccountsClient.Create.
func (c *AccountsClient) Create(ctx context.Context, account *quotient.Account) error {
	return createResource(ctx, c.httpClient, constants.AccountsPath, account, "account")
}

// Update implements quotient.AccountsClient.Update.
func (c *AccountsClient) Update(ctx context.Context, account *quotient.Account) error {
	id, ok := account.ID.Value()
	if !ok {
		return fmt.Errorf("updating account: %w", quotient.ErrPrimaryKeyUnset)
	}

	path := fmt.Sprintf("%s/%d", constants.AccountsPath, id)

	return updateResource(ctx, c.httpClient, path, account, "account")
}

// Delete implements quotient.AccountsClient.Delete.
func (c *AccountsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d", constants.AccountsPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}

// ContactsClient implements quotient.ContactsClient.
type ContactsClient struct {
	httpClient *http.Client
}

// NewContactsClient creates a new contacts client.
func NewContactsClient(httpClient *http.Client) *ContactsClient {
	return &ContactsClient{httpClient: httpClient}
}

// List implements quotient.ContactsClient.List.
func (c *ContactsClient) List(ctx context.Context, params *quotient.QueryParams) ([]quotient.Contact, error) {
	return listAllPages[quotient.Contact](ctx, c.httpClient, constants.ContactsPath, params, "contacts")
}

// Search implements quotient.ContactsClient.Search.
func (c *ContactsClient) Search(ctx context.Context, term string) ([]quotient.Contact, error) {
	params := quotient.NewQueryParams().WithSearch(term)

	return listAllPages[quotient.Contact](ctx, c.httpClient, constants.ContactsPath, params, "contacts")
}

// Get implements quotient.ContactsClient.Get.
func (c *ContactsClient) Get(ctx context.Context, id int) (*quotient.Contact, error) {
	path := fmt.Sprintf("%s/%d", constants.ContactsPath, id)

	return getResource[quotient.Contact](ctx, c.httpClient, path, nil, "contact")
}

// Create implements quotient.ContactsClient.Create.
func (c *ContactsClient) Create(ctx context.Context, contact *quotient.Contact) error {
	return createResource(ctx, c.httpClient, constants.ContactsPath, contact, "contact")
}

// Update implements quotient.ContactsClient.Update.
func (c *ContactsClient) Update(ctx context.Context, contact *quotient.Contact) error {
	id, ok := contact.ID.Value()
	if !ok {
		return fmt.Errorf("updating contact: %w", quotient.ErrPrimaryKeyUnset)
	}

	path := fmt.Sprintf("%s/%d", constants.ContactsPath, id)

	return updateResource(ctx, c.httpClient, path, contact, "contact")
}

// Delete implements quotient.ContactsClient.Delete.
func (c *ContactsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d", constants.ContactsPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}

	return nil
}

// BillingAddressesClient implements quotient.BillingAddressesClient.
type BillingAddressesClient struct {
	httpClient *http.Client
}

// NewBillingAddressesClient creates a new billing addresses client.
func NewBillingAddressesClient(httpClient *http.Client) *BillingAddressesClient {
	return &BillingAddressesClient{httpClient: httpClient}
}

// List implements quotient.BillingAddressesClient.List.
func (c *BillingAddressesClient) List(ctx context.Context, accountID int) ([]quotient.BillingAddress, error) {
	path := fmt.Sprintf("%s/%d/billing_addresses", constants.AccountsPath, accountID)

	return listSlice[quotient.BillingAddress](ctx, c.httpClient, path, nil, "billing addresses")
}

// Get implements quotient.BillingAddressesClient.Get.
func (c *BillingAddressesClient) Get(ctx context.Context, id int) (*quotient.BillingAddress, error) {
	path := fmt.Sprintf("%s/%d", constants.BillingAddressesPath, id)

	return getResource[quotient.BillingAddress](ctx, c.httpClient, path, nil, "billing address")
}

// Create implements quotient.BillingAddressesClient.Create.
func (c *BillingAddressesClient) Create(ctx context.Context, accountID int, address *quotient.BillingAddress) error {
	path := fmt.Sprintf("%s/%d/billing_addresses", constants.AccountsPath, accountID)

	return createResource(ctx, c.httpClient, path, address, "billing address")
}

// Update implements quotient.BillingAddressesClient.Update.
func (c *BillingAddressesClient) Update(ctx context.Context, address *quotient.BillingAddress) error {
	id, ok := address.ID.Value()
	if !ok {
		return fmt.Errorf("updating billing address: %w", quotient.ErrPrimaryKeyUnset)
	}

	path := fmt.Sprintf("%s/%d", constants.BillingAddressesPath, id)

	return updateResource(ctx, c.httpClient, path, address, "billing address")
}

// Delete implements quotient.BillingAddressesClient.Delete.
func (c *BillingAddressesClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d", constants.BillingAddressesPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting billing address: %w", err)
	}

	return nil
}

// FacilitiesClient implements quotient.FacilitiesClient.
type FacilitiesClient struct {
	httpClient *http.Client
}

// NewFacilitiesClient creates a new facilities client.
func NewFacilitiesClient(httpClient *http.Client) *FacilitiesClient {
	return &FacilitiesClient{httpClient: httpClient}
}

// List implements quotient.FacilitiesClient.List.
func (c *FacilitiesClient) List(ctx context.Context, accountID int) ([]quotient.Facility, error) {
	path := fmt.Sprintf("%s/%d/facilities", constants.AccountsPath, accountID)

	return listSlice[quotient.Facility](ctx, c.httpClient, path, nil, "facilities")
}

// Get implements quotient.FacilitiesClient.Get.
func (c *FacilitiesClient) Get(ctx context.Context, id int) (*quotient.Facility, error) {
	path := fmt.Sprintf("%s/%d", constants.FacilitiesPath, id)

	return getResource[quotient.Facility](ctx, c.httpClient, path, nil, "facility")
}

// Create implements quotient.FacilitiesClient.Create.
func (c *FacilitiesClient) Create(ctx context.Context, accountID int, facility *quotient.Facility) error {
	path := fmt.Sprintf("%s/%d/facilities", constants.AccountsPath, accountID)

	return createResource(ctx, c.httpClient, path, facility, "facility")
}

// Update implements quotient.FacilitiesClient.Update.
func (c *FacilitiesClient) Update(ctx context.Context, facility *quotient.Facility) error {
	id, ok := facility.ID.Value()
	if !ok {
		return fmt.Errorf("updating facility: %w", quotient.ErrPrimaryKeyUnset)
	}

	path := fmt.Sprintf("%s/%d", constants.FacilitiesPath, id)

	return updateResource(ctx, c.httpClient, path, facility, "facility")
}

// Delete implements quotient.FacilitiesClient.Delete.
func (c *FacilitiesClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d", constants.FacilitiesPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting facility: %w", err)
	}

	return nil
}

// PaymentTermsClient implements quotient.PaymentTermsClient.
type PaymentTermsClient struct {
	httpClient *http.Client
}

// NewPaymentTermsClient creates a new payment terms client.
func NewPaymentTermsClient(httpClient *http.Client) *PaymentTermsClient {
	return &PaymentTermsClient{httpClient: httpClient}
}

// List implements quotient.PaymentTermsClient.List.
func (c *PaymentTermsClient) List(ctx context.Context) ([]quotient.PaymentTerms, error) {
	return listSlice[quotient.PaymentTerms](ctx, c.httpClient, constants.PaymentTermsPath, nil, "payment terms")
}

// Create implements quotient.PaymentTermsClient.Create.
func (c *PaymentTermsClient) Create(ctx context.Context, terms *quotient.PaymentTerms) error {
	return createResource(ctx, c.httpClient, constants.PaymentTermsPath, terms, "payment terms")
}

// Update implements quotient.PaymentTermsClient.Update.
func (c *PaymentTermsClient) Update(ctx context.Context, terms *quotient.PaymentTerms) error {
	id, ok := terms.ID.Value()
	if !ok {
		return fmt.Errorf("updating payment terms: %w", quotient.ErrPrimaryKeyUnset)
	}

	path := fmt.Sprintf("%s/%d", constants.PaymentTermsPath, id)

	return updateResource(ctx, c.httpClient, path, terms, "payment terms")
}

// Delete implements quotient.PaymentTermsClient.Delete.
func (c *PaymentTermsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d", constants.PaymentTermsPath, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting payment terms: %w", err)
	}

	return nil
}
