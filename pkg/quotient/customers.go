package quotient

// BillingAddress is one invoicing address on an account. ID is assigned by
// the server; leave it unset when creating. ERPCode is written by the server
// and ignored on update.
type BillingAddress struct {
	ID         Optional[int] `json:"id,omitzero"`
	Address1   string        `json:"address1"`
	City       string        `json:"city"`
	Country    string        `json:"country"`
	PostalCode string        `json:"postal_code"`
	State      string        `json:"state"`

	Address2 Optional[string] `json:"address2,omitzero"`
	ERPCode  Optional[string] `json:"erp_code,omitzero"`
}

// Validate reports whether the address carries the fields every write
// operation requires.
func (b *BillingAddress) Validate() error {
	if b.Address1 == "" {
		return &MissingFieldError{Field: "address1"}
	}
	if b.City == "" {
		return &MissingFieldError{Field: "city"}
	}
	if b.Country == "" {
		return &MissingFieldError{Field: "country"}
	}
	if b.PostalCode == "" {
		return &MissingFieldError{Field: "postal_code"}
	}
	if b.State == "" {
		return &MissingFieldError{Field: "state"}
	}
	return nil
}

// Account is a customer company record. ID is assigned by the server; leave
// it unset when creating. Billing addresses are managed through their own
// client and ride along read-only here.
type Account struct {
	ID   Optional[int] `json:"id,omitzero"`
	Name string        `json:"name"`

	ERPCode               Optional[string]  `json:"erp_code,omitzero"`
	CreditLine            *Money            `json:"credit_line,omitempty"`
	Notes                 Optional[string]  `json:"notes,omitzero"`
	Phone                 Optional[string]  `json:"phone,omitzero"`
	PhoneExt              Optional[string]  `json:"phone_ext,omitzero"`
	PaymentTerms          Optional[string]  `json:"payment_terms,omitzero"`
	PaymentTermsPeriod    Optional[int]     `json:"payment_terms_period,omitzero"`
	PurchaseOrdersEnabled Optional[bool]    `json:"purchase_orders_enabled,omitzero"`
	Salesperson           Optional[string]  `json:"salesperson,omitzero"`
	SoldToAddress         *Address          `json:"sold_to_address,omitempty"`
	TaxExempt             Optional[bool]    `json:"tax_exempt,omitzero"`
	TaxRate               Optional[float64] `json:"tax_rate,omitzero"`
	Type                  Optional[string]  `json:"type,omitzero"`
	URL                   Optional[string]  `json:"url,omitzero"`
	Metadata              map[string]any    `json:"metadata,omitempty"`

	BillingAddresses []BillingAddress `json:"billing_addresses,omitempty"`
	Created          *string          `json:"created,omitempty"`
}

// Validate reports whether the account carries the fields every write
// operation requires.
func (a *Account) Validate() error {
	if a.Name == "" {
		return &MissingFieldError{Field: "name"}
	}
	return nil
}

// Contact is a person at an account that quotes can be sent to. ID is
// assigned by the server; leave it unset when creating.
type Contact struct {
	ID        Optional[int] `json:"id,omitzero"`
	AccountID int           `json:"account_id"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`

	Address     *Address         `json:"address,omitempty"`
	Notes       Optional[string] `json:"notes,omitzero"`
	Phone       Optional[string] `json:"phone,omitzero"`
	PhoneExt    Optional[string] `json:"phone_ext,omitzero"`
	Salesperson Optional[string] `json:"salesperson,omitzero"`
	Created     *string          `json:"created,omitempty"`
}

// Validate reports whether the contact carries the fields every write
// operation requires.
func (c *Contact) Validate() error {
	if c.AccountID <= 0 {
		return &MissingFieldError{Field: "account_id"}
	}
	if c.Email == "" {
		return &MissingFieldError{Field: "email"}
	}
	if c.FirstName == "" {
		return &MissingFieldError{Field: "first_name"}
	}
	if c.LastName == "" {
		return &MissingFieldError{Field: "last_name"}
	}
	return nil
}

// Facility is a shipping destination nested under an account. Every field is
// optional on the wire; the server fills in whatever a create leaves unset.
type Facility struct {
	ID        Optional[int]    `json:"id,omitzero"`
	AccountID Optional[int]    `json:"account_id,omitzero"`
	Name      Optional[string] `json:"name,omitzero"`

	Address     *Address         `json:"address,omitempty"`
	Attention   Optional[string] `json:"attention,omitzero"`
	Salesperson Optional[string] `json:"salesperson,omitzero"`
	Created     *string          `json:"created,omitempty"`
}

// PaymentTerms is one entry in the account-wide payment terms catalog. ID is
// assigned by the server; leave it unset when creating.
type PaymentTerms struct {
	ID     Optional[int] `json:"id,omitzero"`
	Label  string        `json:"label"`
	Period int           `json:"period"`

	ERPCode Optional[string] `json:"erp_code,omitzero"`
}

// Validate reports whether the terms carry the fields every write operation
// requires.
func (p *PaymentTerms) Validate() error {
	if p.Label == "" {
		return &MissingFieldError{Field: "label"}
	}
	if p.Period < 0 {
		return &ValidationError{Field: "period", Reason: "must not be negative"}
	}
	return nil
}
