package quotient

// MaxBatchSize is the largest batch the purchased component upsert endpoint
// accepts in one request.
const MaxBatchSize = 1000

// Column value types for purchased component custom columns.
const (
	ColumnValueTypeString  = "string"
	ColumnValueTypeBoolean = "boolean"
	ColumnValueTypeNumeric = "numeric"
)

// PurchasedComponent is a catalog entry for hardware and other bought parts,
// keyed by OEM part number. ID is assigned by the server; leave it unset
// when creating. Custom column values ride along in Properties.
type PurchasedComponent struct {
	ID            Optional[int] `json:"id,omitzero"`
	OEMPartNumber string        `json:"oem_part_number"`
	PiecePrice    Money         `json:"piece_price"`

	InternalPartNumber Optional[string] `json:"internal_part_number,omitzero"`
	Description        Optional[string] `json:"description,omitzero"`

	Properties []PurchasedComponentProperty `json:"properties,omitempty"`
}

// Validate reports whether the component carries the fields every write
// operation requires.
func (p *PurchasedComponent) Validate() error {
	if p.OEMPartNumber == "" {
		return &MissingFieldError{Field: "oem_part_number"}
	}
	return nil
}

// GetProperty returns the value of the named custom column, or nil when the
// component does not carry it.
func (p *PurchasedComponent) GetProperty(codeName string) any {
	for _, prop := range p.Properties {
		if prop.CodeName == codeName {
			return prop.Value
		}
	}
	return nil
}

// SetProperty sets the value of the named custom column, adding the property
// when the component does not yet carry it.
func (p *PurchasedComponent) SetProperty(codeName string, value any) {
	for i := range p.Properties {
		if p.Properties[i].CodeName == codeName {
			p.Properties[i].Value = value
			return
		}
	}
	p.Properties = append(p.Properties, PurchasedComponentProperty{
		CodeName: codeName,
		Value:    value,
	})
}

// PurchasedComponentColumn defines a custom column on the purchased
// component catalog. ID is assigned by the server; leave it unset when
// creating. Exactly one default applies, matching ValueType.
type PurchasedComponentColumn struct {
	ID        Optional[int] `json:"id,omitzero"`
	Name      string        `json:"name"`
	CodeName  string        `json:"code_name"`
	ValueType string        `json:"value_type"`
	Position  Optional[int] `json:"position,omitzero"`

	DefaultStringValue  *string  `json:"default_string_value"`
	DefaultBooleanValue bool     `json:"default_boolean_value"`
	DefaultNumericValue *float64 `json:"default_numeric_value"`
}

// Validate reports whether the column carries the fields every write
// operation requires.
func (c *PurchasedComponentColumn) Validate() error {
	if c.Name == "" {
		return &MissingFieldError{Field: "name"}
	}
	if c.CodeName == "" {
		return &MissingFieldError{Field: "code_name"}
	}
	switch c.ValueType {
	case ColumnValueTypeString, ColumnValueTypeBoolean, ColumnValueTypeNumeric:
		return nil
	default:
		return &ValidationError{Field: "value_type", Reason: "must be string, boolean, or numeric"}
	}
}
