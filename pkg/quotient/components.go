package quotient

// ComponentType distinguishes the three kinds of nodes in an assembly tree.
type ComponentType string

const (
	ComponentTypeAssembled    ComponentType = "assembled"
	ComponentTypeManufactured ComponentType = "manufactured"
	ComponentTypePurchased    ComponentType = "purchased"
)

// Material describes the raw material assigned to a component.
type Material struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	DisplayName   *string `json:"display_name"`
	Family        *string `json:"family"`
	MaterialClass *string `json:"material_class"`
}

// Process describes the manufacturing process assigned to a component.
type Process struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	ExternalName *string `json:"external_name"`
}

// SupportingFile is a file attached to a component (drawings, models,
// documentation).
type SupportingFile struct {
	Filename string  `json:"filename"`
	URL      *string `json:"url"`
}

// ChildComponent links a parent component to one of its children together
// with the per-parent quantity.
type ChildComponent struct {
	ChildID  int `json:"child_id"`
	Quantity int `json:"quantity"`
}

// PurchasedComponentProperty is one custom property value carried on a
// purchased component snapshot. Value holds a string, bool, or number
// depending on the column's value type, or nil when unset.
type PurchasedComponentProperty struct {
	Name     string `json:"name"`
	CodeName string `json:"code_name"`
	Value    any    `json:"value"`
}

// ComponentPurchased is the catalog snapshot embedded in a purchased
// component node. It reflects the catalog entry at quoting time and does not
// track later catalog edits.
type ComponentPurchased struct {
	OEMPartNumber      string                       `json:"oem_part_number"`
	PiecePrice         Money                        `json:"piece_price"`
	InternalPartNumber *string                      `json:"internal_part_number"`
	Description        *string                      `json:"description"`
	Properties         []PurchasedComponentProperty `json:"properties"`
}

// GetProperty returns the value of the named custom property, or nil when
// the snapshot does not carry it.
func (p *ComponentPurchased) GetProperty(codeName string) any {
	for _, prop := range p.Properties {
		if prop.CodeName == codeName {
			return prop.Value
		}
	}
	return nil
}

// Component is the part shared by quote and order assembly nodes. IDs are
// unique within a single quote item or order item, not globally.
type Component struct {
	ID                 int                 `json:"id"`
	ChildIDs           []int               `json:"child_ids"`
	Children           []ChildComponent    `json:"children"`
	Description        *string             `json:"description"`
	ExportControlled   bool                `json:"export_controlled"`
	Finishes           []string            `json:"finishes"`
	InnateQuantity     int                 `json:"innate_quantity"`
	IsRootComponent    bool                `json:"is_root_component"`
	Material           *Material           `json:"material"`
	ParentIDs          []int               `json:"parent_ids"`
	PartCustomAttrs    []any               `json:"part_custom_attrs"`
	PartName           *string             `json:"part_name"`
	PartNumber         *string             `json:"part_number"`
	PartUUID           *string             `json:"part_uuid"`
	Process            *Process            `json:"process"`
	PurchasedComponent *ComponentPurchased `json:"purchased_component"`
	Revision           *string             `json:"revision"`
	SupportingFiles    []SupportingFile    `json:"supporting_files"`
	Type               ComponentType       `json:"type"`
	ThumbnailURL       *string             `json:"thumbnail_url"`
}

// IsHardware reports whether the component is a purchased part.
func (c *Component) IsHardware() bool {
	return c.Type == ComponentTypePurchased
}

// ChildQuantity returns the per-parent quantity for the given child, or
// zero when childID is not a child of this component.
func (c *Component) ChildQuantity(childID int) int {
	for _, child := range c.Children {
		if child.ChildID == childID {
			return child.Quantity
		}
	}
	return 0
}

// OperationQuantity is the cost breakdown of an operation at one quantity
// break.
type OperationQuantity struct {
	Price          *Money `json:"price"`
	ManualPrice    *Money `json:"manual_price"`
	LeadTime       *int   `json:"lead_time"`
	ManualLeadTime *int   `json:"manual_lead_time"`
	Quantity       int    `json:"quantity"`
}

// Operation is the part shared by quote and order operations, covering both
// shop operations and material operations.
type Operation struct {
	ID                         int                 `json:"id"`
	Category                   string              `json:"category"`
	Cost                       Money               `json:"cost"`
	CostingVariables           []CostingVariable   `json:"costing_variables"`
	IsFinish                   bool                `json:"is_finish"`
	IsOutsideService           bool                `json:"is_outside_service"`
	Name                       string              `json:"name"`
	Notes                      *string             `json:"notes"`
	OperationDefinitionName    *string             `json:"operation_definition_name"`
	OperationDefinitionERPCode *string             `json:"operation_definition_erp_code"`
	Position                   int                 `json:"position"`
	Quantities                 []OperationQuantity `json:"quantities"`
	Runtime                    *float64            `json:"runtime"`
	SetupTime                  *float64            `json:"setup_time"`
}

// GetVariable returns the value of the named costing variable, or nil when
// the operation does not carry it.
func (o *Operation) GetVariable(label string) any {
	for _, cv := range o.CostingVariables {
		if cv.Label == label {
			return cv.Value
		}
	}
	return nil
}

// FindCostingVariable returns the named costing variable itself, which also
// exposes row and quantity-specific data.
func (o *Operation) FindCostingVariable(label string) (*CostingVariable, bool) {
	for i := range o.CostingVariables {
		if o.CostingVariables[i].Label == label {
			return &o.CostingVariables[i], true
		}
	}
	return nil, false
}

// CostingVariablePayload is the per-quantity value of a quantity-specific
// costing variable. Row is set for table-type variables and Options for
// dropdowns.
type CostingVariablePayload struct {
	Value   any            `json:"value"`
	Row     map[string]any `json:"row,omitempty"`
	Options []any          `json:"options,omitempty"`
}

// CostingVariable is one input to an operation's pricing formula. For
// quantity-specific variables the effective value lives in Quantities keyed
// by quantity break; Value then holds the value at the default quantity.
type CostingVariable struct {
	Label            string                         `json:"label"`
	Value            any                            `json:"value"`
	Row              map[string]any                 `json:"row,omitempty"`
	Options          []any                          `json:"options,omitempty"`
	QuantitySpecific bool                           `json:"quantity_specific"`
	Quantities       map[int]CostingVariablePayload `json:"quantities,omitempty"`
	VariableClass    string                         `json:"variable_class"`
	ValueType        string                         `json:"value_type"`
}

// ValueForQuantity returns the variable's payload at the given quantity
// break. For variables that are not quantity specific it returns the flat
// value regardless of quantity.
func (v *CostingVariable) ValueForQuantity(qty int) (CostingVariablePayload, bool) {
	if !v.QuantitySpecific {
		return CostingVariablePayload{Value: v.Value, Row: v.Row, Options: v.Options}, true
	}
	payload, ok := v.Quantities[qty]
	return payload, ok
}
