package quotient

import (
	"fmt"
	"time"
)

// dateLayout is the day-resolution format used by ships-on and deliver-by
// fields.
const dateLayout = "2006-01-02"

// OrderMinimum is the stub returned by the new-orders listing. Fetch the
// full order with OrdersClient.Get.
type OrderMinimum struct {
	Number int `json:"number"`
}

// OrderAccount is the account snapshot embedded in an order contact.
type OrderAccount struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	ERPCode            *string `json:"erp_code"`
	Notes              *string `json:"notes"`
	PaymentTerms       *string `json:"payment_terms"`
	PaymentTermsPeriod *int    `json:"payment_terms_period"`
}

// OrderCompany is the company snapshot embedded in an order customer.
type OrderCompany struct {
	ID           int     `json:"id"`
	BusinessName string  `json:"business_name"`
	ERPCode      *string `json:"erp_code"`
	Notes        *string `json:"notes"`
}

// OrderContact is the person the order was placed by.
type OrderContact struct {
	ID        int           `json:"id"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Notes     *string       `json:"notes"`
	Phone     *string       `json:"phone"`
	PhoneExt  *string       `json:"phone_ext"`
	Account   *OrderAccount `json:"account"`
}

// OrderCustomer is the person the order was placed for.
type OrderCustomer struct {
	ID        int           `json:"id"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Notes     *string       `json:"notes"`
	Phone     *string       `json:"phone"`
	PhoneExt  *string       `json:"phone_ext"`
	Company   *OrderCompany `json:"company"`
}

// PaymentDetails records how the order was paid for.
type PaymentDetails struct {
	CardBrand                  *string  `json:"card_brand"`
	CardLast4                  *string  `json:"card_last4"`
	NetPayout                  *Money   `json:"net_payout"`
	PaymentType                *string  `json:"payment_type"`
	PurchaseOrderNumber        *string  `json:"purchase_order_number"`
	PurchasingDeptContactEmail *string  `json:"purchasing_dept_contact_email"`
	PurchasingDeptContactName  *string  `json:"purchasing_dept_contact_name"`
	ShippingCost               *Money   `json:"shipping_cost"`
	Subtotal                   *Money   `json:"subtotal"`
	Tax                        *Money   `json:"tax_cost"`
	TaxRate                    *float64 `json:"tax_rate"`
	PaymentTerms               *string  `json:"payment_terms"`
	TotalPrice                 *Money   `json:"total_price"`
}

// Shipping option types.
const (
	ShippingOptionPickup           = "pickup"
	ShippingOptionCustomersAccount = "customers_shipping_account"
	ShippingOptionSuppliersAccount = "suppliers_shipping_account"
)

// ShippingOption records how the order ships.
type ShippingOption struct {
	CustomersAccountNumber *string `json:"customers_account_number"`
	CustomersCarrier       *string `json:"customers_carrier"`
	ShippingMethod         *string `json:"shipping_method"`
	Type                   string  `json:"type"`
}

// Summary renders the shipping option as a sentence for packing slips and
// confirmation emails.
func (s *ShippingOption) Summary(shipsOn time.Time, paymentType string) string {
	day := shipsOn.Format("Jan 2, 2006")
	switch s.Type {
	case ShippingOptionPickup:
		return fmt.Sprintf("Pickup by customer on %s.", day)
	case ShippingOptionCustomersAccount:
		carrier, account := "", ""
		if s.CustomersCarrier != nil {
			carrier = *s.CustomersCarrier
		}
		if s.CustomersAccountNumber != nil {
			account = *s.CustomersAccountNumber
		}
		return fmt.Sprintf("Ships on %s via %s using customer account %s.", day, carrier, account)
	default:
		if paymentType == "credit_card" {
			return fmt.Sprintf("Ships on %s. Shipping paid by credit card.", day)
		}
		return fmt.Sprintf("Ships on %s. Shipping added to invoice.", day)
	}
}

// OrderShipmentItem ties a shipped quantity back to an order item.
type OrderShipmentItem struct {
	ID          int `json:"id"`
	OrderItemID int `json:"order_item_id"`
	Quantity    int `json:"quantity"`
}

// OrderShipment is one recorded shipment against the order.
type OrderShipment struct {
	ID              int                 `json:"id"`
	PickupRecipient *string             `json:"pickup_recipient"`
	ShipmentDate    string              `json:"shipment_date"`
	ShipmentCost    *Money              `json:"shipment_cost"`
	ShippingItems   []OrderShipmentItem `json:"shipping_items"`
	TrackingNumber  *string             `json:"tracking_number"`
}

// OrderedAddOn is an add-on the customer accepted when placing the order.
type OrderedAddOn struct {
	IsRequired bool    `json:"is_required"`
	Name       string  `json:"name"`
	Notes      *string `json:"notes"`
	Price      Money   `json:"price"`
	Quantity   int     `json:"quantity"`
}

// OrderedPricingItem is a pricing adjustment applied to the order item's
// total.
type OrderedPricingItem struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CalculationType *string `json:"calculation_type"`
	Value           *Money  `json:"value"`
}

// OrderComponent is one node of an order item's assembly tree, carrying the
// quantities committed for production on top of the shared component fields.
type OrderComponent struct {
	Component

	DeliverQuantity    int         `json:"deliver_quantity"`
	MakeQuantity       int         `json:"make_quantity"`
	MaterialOperations []Operation `json:"material_operations"`
	ShopOperations     []Operation `json:"shop_operations"`
}

// OrderItem is one line of an order. Its components form an assembly tree
// rooted at the component flagged as root.
type OrderItem struct {
	ID                  int                  `json:"id"`
	Components          []OrderComponent     `json:"components"`
	Description         *string              `json:"description"`
	ExpediteRevenue     *Money               `json:"expedite_revenue"`
	ExportControlled    bool                 `json:"export_controlled"`
	Filename            *string              `json:"filename"`
	LeadDays            int                  `json:"lead_days"`
	Markup1Price        *Money               `json:"markup_1_price"`
	Markup1Name         *string              `json:"markup_1_name"`
	Markup2Price        *Money               `json:"markup_2_price"`
	Markup2Name         *string              `json:"markup_2_name"`
	PrivateNotes        *string              `json:"private_notes"`
	PublicNotes         *string              `json:"public_notes"`
	Quantity            int                  `json:"quantity"`
	QuantityOutstanding int                  `json:"quantity_outstanding"`
	QuoteItemID         int                  `json:"quote_item_id"`
	QuoteItemType       string               `json:"quote_item_type"`
	RootComponentID     int                  `json:"root_component_id"`
	ShipsOn             string               `json:"ships_on"`
	AddOnFees           *Money               `json:"add_on_fees"`
	BasePrice           Money                `json:"base_price"`
	UnitPrice           Money                `json:"unit_price"`
	TotalPrice          Money                `json:"total_price"`
	OrderedAddOns       []OrderedAddOn       `json:"ordered_add_ons"`
	PricingItems        []OrderedPricingItem `json:"pricing_items"`
}

func orderComponentBase(c *OrderComponent) *Component { return &c.Component }

// ShipsOnTime parses the item's ship date.
func (oi *OrderItem) ShipsOnTime() (time.Time, error) {
	return time.Parse(dateLayout, oi.ShipsOn)
}

// RootComponent returns the root of the item's assembly tree.
func (oi *OrderItem) RootComponent() (*OrderComponent, error) {
	return componentByID(oi.Components, orderComponentBase, oi.RootComponentID)
}

// GetComponent returns the item's component with the given ID.
func (oi *OrderItem) GetComponent(id int) (*OrderComponent, error) {
	return componentByID(oi.Components, orderComponentBase, id)
}

// IterateAssembly walks the assembly tree depth-first from the root,
// visiting repeated hardware only once. Use IterateAssemblyWithDuplicates to
// see every path.
func (oi *OrderItem) IterateAssembly() ([]AssemblyNode[OrderComponent], error) {
	return traverseAssembly(oi.Components, orderComponentBase, true)
}

// IterateAssemblyWithDuplicates walks the assembly tree depth-first, visiting
// a component once per path that reaches it.
func (oi *OrderItem) IterateAssemblyWithDuplicates() ([]AssemblyNode[OrderComponent], error) {
	return traverseAssembly(oi.Components, orderComponentBase, false)
}

// TotalChildQuantity returns how many units of the given component go into
// one unit of the item's root assembly.
func (oi *OrderItem) TotalChildQuantity(componentID int) (int, error) {
	return totalChildQuantity(oi.Components, orderComponentBase, componentID)
}

// Order is a full order as returned by the API, keyed by order number.
type Order struct {
	BillingInfo         *AddressInfo    `json:"billing_info"`
	Created             string          `json:"created"`
	Contact             *OrderContact   `json:"contact"`
	Customer            *OrderCustomer  `json:"customer"`
	DeliverBy           *string         `json:"deliver_by"`
	Estimator           *Salesperson    `json:"estimator"`
	Number              int             `json:"number"`
	OrderItems          []OrderItem     `json:"order_items"`
	PaymentDetails      *PaymentDetails `json:"payment_details"`
	PrivateNotes        *string         `json:"private_notes"`
	QuoteNumber         int             `json:"quote_number"`
	QuoteRevisionNumber *int            `json:"quote_revision_number"`
	Salesperson         *Salesperson    `json:"salesperson"`
	Shipments           []OrderShipment `json:"shipments"`
	ShippingInfo        *AddressInfo    `json:"shipping_info"`
	ShippingOption      *ShippingOption `json:"shipping_option"`
	ShipsOn             string          `json:"ships_on"`
	Status              string          `json:"status"`

	// ERPCode and QuoteERPCode are the only fields the server accepts on
	// update. Leave them unset to keep the stored values.
	ERPCode      Optional[string] `json:"erp_code,omitzero"`
	QuoteERPCode Optional[string] `json:"quote_erp_code,omitzero"`
}

// Validate reports whether the order carries the fields every write
// operation requires.
func (o *Order) Validate() error {
	if o.Number <= 0 {
		return &MissingFieldError{Field: "number"}
	}
	return nil
}

// CreatedTime parses the order's creation timestamp.
func (o *Order) CreatedTime() (time.Time, error) {
	return time.Parse(time.RFC3339, o.Created)
}

// ShipsOnTime parses the order's ship date.
func (o *Order) ShipsOnTime() (time.Time, error) {
	return time.Parse(dateLayout, o.ShipsOn)
}
