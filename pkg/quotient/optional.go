package quotient

import (
	"encoding/json"
	"fmt"
)

type optionalState uint8

const (
	// stateUnset is the zero value: the field was never supplied. Unset
	// fields are omitted from outgoing serialization entirely.
	stateUnset optionalState = iota
	stateNull
	stateSet
)

// Optional is a tri-state value for partial-update fields. The zero value is
// "unset" (field not supplied), which is distinct from an explicit JSON null
// and from any set value. Tag struct fields with `json:"...,omitzero"` so
// unset fields are dropped from request bodies while nulls are preserved.
type Optional[T any] struct {
	state optionalState
	value T
}

// Set returns an Optional holding v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{state: stateSet, value: v}
}

// Null returns an Optional representing an explicit JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{state: stateNull}
}

// IsUnset reports whether the field was never supplied.
func (o Optional[T]) IsUnset() bool {
	return o.state == stateUnset
}

// IsNull reports whether the field holds an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.state == stateNull
}

// IsSet reports whether the field holds a value.
func (o Optional[T]) IsSet() bool {
	return o.state == stateSet
}

// Value returns the held value and whether one is set.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.state == stateSet
}

// ValueOr returns the held value, or def when the field is unset or null.
func (o Optional[T]) ValueOr(def T) T {
	if o.state == stateSet {
		return o.value
	}

	return def
}

// IsZero reports the unset state. encoding/json consults this for the
// omitzero option, which is what keeps unset fields off the wire.
func (o Optional[T]) IsZero() bool {
	return o.state == stateUnset
}

// MarshalJSON implements json.Marshaler. Unset fields should be excluded by
// omitzero before this is ever called; if one is marshalled anyway it is
// indistinguishable from null on the wire.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.state != stateSet {
		return []byte("null"), nil
	}

	data, err := json.Marshal(o.value)
	if err != nil {
		return nil, fmt.Errorf("marshalling optional value: %w", err)
	}

	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler. JSON null produces the null
// state; any other value is decoded into the inner type, so converter
// composition (Money, nested structs, slices) applies transparently.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{state: stateNull}

		return nil
	}

	var v T

	err := json.Unmarshal(data, &v)
	if err != nil {
		return &ConversionError{Expected: fmt.Sprintf("%T", v), Value: string(data), Cause: err}
	}

	*o = Optional[T]{state: stateSet, value: v}

	return nil
}
