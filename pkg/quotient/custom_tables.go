package quotient

// CustomTableColumn defines one column of a supplier custom table.
type CustomTableColumn struct {
	ColumnName string `json:"column_name"`
	ValueType  string `json:"value_type"`
}

// CustomTable is a supplier-defined lookup table: a column config plus rows
// keyed by column name. Name identifies the table on the server.
type CustomTable struct {
	Name   string              `json:"name,omitempty"`
	Config []CustomTableColumn `json:"config,omitempty"`
	Data   []map[string]any    `json:"data,omitempty"`
}

// Validate reports whether the table's config is well formed and every data
// row references only configured columns. Validation of a table without a
// config checks nothing.
func (t *CustomTable) Validate() error {
	columns := make(map[string]bool, len(t.Config))

	for _, col := range t.Config {
		if col.ColumnName == "" {
			return &MissingFieldError{Field: "column_name"}
		}
		if col.ValueType == "" {
			return &MissingFieldError{Field: "value_type"}
		}
		columns[col.ColumnName] = true
	}

	if len(t.Config) == 0 {
		return nil
	}

	for _, row := range t.Data {
		for key := range row {
			if !columns[key] {
				return &ValidationError{Field: key, Reason: "row key is not a configured column"}
			}
		}
	}

	return nil
}
