package quotient

import "time"

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteStatusOutstanding       QuoteStatus = "outstanding"
	QuoteStatusExpired           QuoteStatus = "expired"
	QuoteStatusCancelled         QuoteStatus = "cancelled"
	QuoteStatusTrash             QuoteStatus = "trash"
	QuoteStatusLost              QuoteStatus = "lost"
	QuoteStatusPartiallyAccepted QuoteStatus = "partially_accepted"
	QuoteStatusAccepted          QuoteStatus = "accepted"
)

// QuoteMinimum is the stub returned by the new-quotes listing. Fetch the
// full quote with QuotesClient.Get.
type QuoteMinimum struct {
	Number   int  `json:"number"`
	Revision *int `json:"revision_number"`
}

// Metrics summarizes a company's quoting history.
type Metrics struct {
	OrderRevenueAllTime        Money `json:"order_revenue_all_time"`
	OrderRevenueLastThirtyDays Money `json:"order_revenue_last_thirty_days"`
	QuotesSentAllTime          int   `json:"quotes_sent_all_time"`
	QuotesSentLastThirtyDays   int   `json:"quotes_sent_last_thirty_days"`
}

// Company is the business a quote's customer belongs to.
type Company struct {
	ID           int      `json:"id"`
	BusinessName string   `json:"business_name"`
	ERPCode      *string  `json:"erp_code"`
	Notes        *string  `json:"notes"`
	Metrics      *Metrics `json:"metrics"`
}

// QuoteAccount is the business a quote's contact belongs to.
type QuoteAccount struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	ERPCode *string `json:"erp_code"`
	Notes   *string `json:"notes"`
}

// QuoteContact is the person a quote was sent to.
type QuoteContact struct {
	ID        int           `json:"id"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Notes     *string       `json:"notes"`
	Phone     *string       `json:"phone"`
	PhoneExt  *string       `json:"phone_ext"`
	Account   *QuoteAccount `json:"account"`
}

// Customer is the person a quote was prepared for.
type Customer struct {
	ID        int      `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Notes     *string  `json:"notes"`
	Company   *Company `json:"company"`
}

// RequestForQuote is the inbound request a quote was drafted from, when one
// exists.
type RequestForQuote struct {
	ID                    int     `json:"id"`
	Email                 string  `json:"email"`
	FirstName             string  `json:"first_name"`
	LastName              string  `json:"last_name"`
	BusinessName          *string `json:"business_name"`
	Phone                 *string `json:"phone"`
	PhoneExt              *string `json:"phone_ext"`
	RequestedDeliveryDate *string `json:"requested_delivery_date"`
}

// ParentQuote links a supplier quote back to the quote it was created from.
type ParentQuote struct {
	ID     int    `json:"id"`
	Number int    `json:"number"`
	Status string `json:"status"`
}

// ParentSupplierOrder links a quote back to the supplier order it was
// created from.
type ParentSupplierOrder struct {
	ID     int    `json:"id"`
	Number int    `json:"number"`
	Status string `json:"status"`
}

// Expedite is an expedited lead time option priced on a quantity break.
type Expedite struct {
	ID         int     `json:"id"`
	LeadTime   int     `json:"lead_time"`
	Markup     float64 `json:"markup"`
	UnitPrice  Money   `json:"unit_price"`
	TotalPrice Money   `json:"total_price"`
}

// Quantity is one quantity break on a quote component, carrying the pricing
// at that quantity.
type Quantity struct {
	ID                      int        `json:"id"`
	Quantity                int        `json:"quantity"`
	Markup1Price            *Money     `json:"markup_1_price"`
	Markup1Name             *string    `json:"markup_1_name"`
	Markup2Price            *Money     `json:"markup_2_price"`
	Markup2Name             *string    `json:"markup_2_name"`
	UnitPrice               Money      `json:"unit_price"`
	TotalPrice              Money      `json:"total_price"`
	TotalPriceWithExpedites Money      `json:"total_price_with_expedites"`
	LeadTime                *int       `json:"lead_time"`
	Expedites               []Expedite `json:"expedites"`
}

// AddOnQuantity prices an add-on at one quantity break.
type AddOnQuantity struct {
	Quantity    int    `json:"quantity"`
	Price       Money  `json:"price"`
	ManualPrice *Money `json:"manual_price"`
}

// AddOn is an optional line attached to a quote component, such as tooling
// or first article inspection.
type AddOn struct {
	IsRequired bool            `json:"is_required"`
	Name       string          `json:"name"`
	Notes      *string         `json:"notes"`
	Quantities []AddOnQuantity `json:"quantities"`
}

// QuoteComponent is one node of a quote item's assembly tree, with the
// pricing detail layered on top of the shared component fields.
type QuoteComponent struct {
	Component

	AddOns             []AddOn     `json:"add_ons"`
	MaterialOperations []Operation `json:"material_operations"`
	ShopOperations     []Operation `json:"shop_operations"`
	Quantities         []Quantity  `json:"quantities"`
}

// QuoteItem is one line of a quote. Its components form an assembly tree
// rooted at the component flagged as root.
type QuoteItem struct {
	ID               int              `json:"id"`
	Type             string           `json:"type"`
	Position         int              `json:"position"`
	ExportControlled bool             `json:"export_controlled"`
	ComponentIDs     []int            `json:"component_ids"`
	Components       []QuoteComponent `json:"components"`
	PrivateNotes     *string          `json:"private_notes"`
	PublicNotes      *string          `json:"public_notes"`
}

func quoteComponentBase(c *QuoteComponent) *Component { return &c.Component }

// RootComponent returns the root of the item's assembly tree.
func (qi *QuoteItem) RootComponent() (*QuoteComponent, error) {
	return rootComponent(qi.Components, quoteComponentBase)
}

// GetComponent returns the item's component with the given ID.
func (qi *QuoteItem) GetComponent(id int) (*QuoteComponent, error) {
	return componentByID(qi.Components, quoteComponentBase, id)
}

// IterateAssembly walks the assembly tree depth-first from the root,
// visiting repeated hardware only once. Use IterateAssemblyWithDuplicates to
// see every path.
func (qi *QuoteItem) IterateAssembly() ([]AssemblyNode[QuoteComponent], error) {
	return traverseAssembly(qi.Components, quoteComponentBase, true)
}

// IterateAssemblyWithDuplicates walks the assembly tree depth-first, visiting
// a component once per path that reaches it.
func (qi *QuoteItem) IterateAssemblyWithDuplicates() ([]AssemblyNode[QuoteComponent], error) {
	return traverseAssembly(qi.Components, quoteComponentBase, false)
}

// TotalChildQuantity returns how many units of the given component go into
// one unit of the item's root assembly.
func (qi *QuoteItem) TotalChildQuantity(componentID int) (int, error) {
	return totalChildQuantity(qi.Components, quoteComponentBase, componentID)
}

// Quote is a full quote as returned by the API. Number identifies the quote;
// RevisionNumber is nil for the original and set on revisions.
type Quote struct {
	ID                       int                  `json:"id"`
	Number                   int                  `json:"number"`
	RevisionNumber           *int                 `json:"revision_number"`
	Status                   QuoteStatus          `json:"status"`
	Salesperson              *Salesperson         `json:"salesperson"`
	Estimator                *Salesperson         `json:"estimator"`
	Contact                  *QuoteContact        `json:"contact"`
	Customer                 *Customer            `json:"customer"`
	TaxRate                  *float64             `json:"tax_rate"`
	TaxCost                  *Money               `json:"tax_cost"`
	PrivateNotes             *string              `json:"private_notes"`
	QuoteNotes               *string              `json:"quote_notes"`
	QuoteItems               []QuoteItem          `json:"quote_items"`
	SentDate                 *string              `json:"sent_date"`
	ExpiredDate              *string              `json:"expired_date"`
	Expired                  bool                 `json:"expired"`
	ExportControlled         bool                 `json:"export_controlled"`
	DigitalLastViewedOn      *string              `json:"digital_last_viewed_on"`
	AuthenticatedPDFQuoteURL *string              `json:"authenticated_pdf_quote_url"`
	IsUnviewedDraftedRFQ     bool                 `json:"is_unviewed_drafted_rfq"`
	RequestForQuote          *RequestForQuote     `json:"request_for_quote"`
	ParentQuote              *ParentQuote         `json:"parent_quote"`
	ParentSupplierOrder      *ParentSupplierOrder `json:"parent_supplier_order"`
	Created                  string               `json:"created"`

	// ERPCode is the only field the server accepts on update. Leave it
	// unset to keep the stored value.
	ERPCode Optional[string] `json:"erp_code,omitzero"`
}

// Validate reports whether the quote carries the fields every write
// operation requires.
func (q *Quote) Validate() error {
	if q.Number <= 0 {
		return &MissingFieldError{Field: "number"}
	}
	return nil
}

// CreatedTime parses the quote's creation timestamp.
func (q *Quote) CreatedTime() (time.Time, error) {
	return time.Parse(time.RFC3339, q.Created)
}

// SentTime parses the timestamp the quote was sent at. The zero time and a
// nil error mean the quote has not been sent.
func (q *Quote) SentTime() (time.Time, error) {
	if q.SentDate == nil {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, *q.SentDate)
}
