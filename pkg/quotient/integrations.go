package quotient

import "time"

// IntegrationActionStatus is the processing state of an integration action.
type IntegrationActionStatus string

const (
	IntegrationActionStatusQueued     IntegrationActionStatus = "queued"
	IntegrationActionStatusInProgress IntegrationActionStatus = "in_progress"
	IntegrationActionStatusCompleted  IntegrationActionStatus = "completed"
	IntegrationActionStatusFailed     IntegrationActionStatus = "failed"
	IntegrationActionStatusCancelled  IntegrationActionStatus = "cancelled"
)

// ManagedIntegration is an ERP integration registered against the account.
// UUID is assigned by the server; leave it unset when creating.
type ManagedIntegration struct {
	UUID     Optional[string] `json:"uuid,omitzero"`
	ERPName  string           `json:"erp_name"`
	IsActive bool             `json:"is_active"`

	ERPVersion                                   Optional[string] `json:"erp_version,omitzero"`
	IntegrationVersion                           Optional[string] `json:"integration_version,omitzero"`
	CreateIntegrationActionAfterCreatingNewOrder Optional[bool]   `json:"create_integration_action_after_creating_new_order,omitzero"`

	Created *string `json:"created,omitempty"`
	Updated *string `json:"updated,omitempty"`
}

// Validate reports whether the integration carries the fields every write
// operation requires.
func (m *ManagedIntegration) Validate() error {
	if m.ERPName == "" {
		return &MissingFieldError{Field: "erp_name"}
	}
	return nil
}

// IntegrationAction is one unit of work queued for an ERP integration to
// process, such as exporting a newly placed order. UUID is assigned by the
// server; leave it unset when creating.
type IntegrationAction struct {
	Type     string           `json:"type"`
	EntityID string           `json:"entity_id"`
	UUID     Optional[string] `json:"uuid,omitzero"`

	Status        Optional[IntegrationActionStatus] `json:"status,omitzero"`
	StatusMessage Optional[string]                  `json:"status_message,omitzero"`

	Created *string `json:"created,omitempty"`
	Updated *string `json:"updated,omitempty"`
}

// Validate reports whether the action carries the fields every write
// operation requires.
func (a *IntegrationAction) Validate() error {
	if a.Type == "" {
		return &MissingFieldError{Field: "type"}
	}
	if a.EntityID == "" {
		return &MissingFieldError{Field: "entity_id"}
	}
	return nil
}

// CreatedTime parses the action's creation timestamp. The zero time and a
// nil error mean the server has not reported one.
func (a *IntegrationAction) CreatedTime() (time.Time, error) {
	if a.Created == nil {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, *a.Created)
}

// UpdatedTime parses the action's last-updated timestamp. The zero time and
// a nil error mean the server has not reported one.
func (a *IntegrationAction) UpdatedTime() (time.Time, error) {
	if a.Updated == nil {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, *a.Updated)
}

// IntegrationActionDefinition describes one action type a managed
// integration is configured to handle.
type IntegrationActionDefinition struct {
	UUID              string  `json:"uuid"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	RelatedObjectType *string `json:"related_object_type"`
}

// IntegrationHeartbeat is the liveness report posted for a managed
// integration. Interval is the number of seconds until the next expected
// heartbeat.
type IntegrationHeartbeat struct {
	Interval int `json:"interval"`
}

// Validate reports whether the heartbeat carries a usable interval.
func (h *IntegrationHeartbeat) Validate() error {
	if h.Interval <= 0 {
		return &ValidationError{Field: "interval", Reason: "must be positive"}
	}
	return nil
}
