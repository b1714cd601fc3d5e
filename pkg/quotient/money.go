package quotient

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money represents a USD currency value. It keeps the raw decimal amount as
// delivered by the API and encapsulates rounding and conversion to cents.
// The zero value is zero dollars.
type Money struct {
	amount decimal.Decimal
}

// NewMoney builds a Money from a decimal amount. Negative amounts are
// rejected, matching the API contract for prices and costs.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, &ValidationError{Reason: "money amount must not be negative"}
	}

	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string (e.g. "2757.80") into Money.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, &ConversionError{Expected: "money", Value: s, Cause: err}
	}

	return NewMoney(d)
}

// Raw returns the unrounded decimal amount.
func (m Money) Raw() decimal.Decimal {
	return m.amount
}

// Dollars returns the amount rounded to two decimal places using banker's
// rounding.
func (m Money) Dollars() decimal.Decimal {
	return m.amount.RoundBank(2)
}

// Cents returns the rounded amount in cents.
func (m Money) Cents() int64 {
	return m.Dollars().Mul(decimal.NewFromInt(100)).IntPart()
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two Money values.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Equal compares by rounded numeric value, not representation.
func (m Money) Equal(other Money) bool {
	return m.Dollars().Equal(other.Dollars())
}

// IsZero reports whether the rounded amount is zero dollars.
func (m Money) IsZero() bool {
	return m.Dollars().IsZero()
}

// String returns the raw decimal amount.
func (m Money) String() string {
	return m.amount.String()
}

// MarshalJSON emits the amount as a bare JSON number so round-tripped
// documents stay numerically equivalent to what the API sent.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a numeric string, the two
// encodings the API uses for prices. Anything else is a conversion error.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := string(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &ConversionError{Expected: "money", Value: raw, Cause: err}
		}

		raw = s
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return &ConversionError{Expected: "money", Value: string(data), Cause: err}
	}

	if d.IsNegative() {
		return &ValidationError{Reason: "money amount must not be negative"}
	}

	m.amount = d

	return nil
}
