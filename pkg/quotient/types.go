package quotient

// Salesperson identifies the sales or estimating contact attached to a
// quote or order.
type Salesperson struct {
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	ERPCode   *string `json:"erp_code"`
}

// Address is a full postal address as accepted by the API.
type Address struct {
	ID         int    `json:"id"`
	Address1   string `json:"address1"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`

	Address2     *string `json:"address2,omitempty"`
	BusinessName *string `json:"business_name,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	PhoneExt     *string `json:"phone_ext,omitempty"`
}

// AddressInfo is the address snapshot embedded in orders (billing and
// shipping blocks). Unlike Address it is never sent standalone.
type AddressInfo struct {
	Address1     *string `json:"address1"`
	Address2     *string `json:"address2"`
	BusinessName *string `json:"business_name"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Phone        *string `json:"phone"`
	PhoneExt     *string `json:"phone_ext"`
	PostalCode   *string `json:"postal_code"`
	State        *string `json:"state"`
}

// FailureResponse pairs a resource from a batch request with the error the
// server reported for it.
type FailureResponse[T any] struct {
	Resource T      `json:"resource"`
	Error    string `json:"error"`
}

// BatchResponse partitions a batch request into the resources the server
// accepted and the ones it rejected.
type BatchResponse[T any] struct {
	Successes []T                  `json:"successes"`
	Failures  []FailureResponse[T] `json:"failures"`
}
