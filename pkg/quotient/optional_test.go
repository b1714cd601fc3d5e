package quotient_test

import (
	"encoding/json"
	"testing"

	"github.com/quotient-io/quotient-client/pkg/quotient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type erpPayload struct {
	Number  int                       `json:"number"`
	ERPCode quotient.Optional[string] `json:"erp_code,omitzero"`
}

func TestOptional_Marshal(t *testing.T) {
	t.Parallel()
	t.Run("unset field is omitted", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(erpPayload{Number: 42})
		require.NoError(t, err)
		assert.JSONEq(t, `{"number": 42}`, string(data))
	})

	t.Run("set field is emitted", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(erpPayload{Number: 42, ERPCode: quotient.Set("ERP-7")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"number": 42, "erp_code": "ERP-7"}`, string(data))
	})

	t.Run("set zero value is emitted", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(erpPayload{Number: 42, ERPCode: quotient.Set("")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"number": 42, "erp_code": ""}`, string(data))
	})

	t.Run("null field clears the stored value", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(erpPayload{Number: 42, ERPCode: quotient.Null[string]()})
		require.NoError(t, err)
		assert.JSONEq(t, `{"number": 42, "erp_code": null}`, string(data))
	})
}

func TestOptional_Unmarshal(t *testing.T) {
	t.Parallel()
	t.Run("absent field stays unset", func(t *testing.T) {
		t.Parallel()

		var payload erpPayload

		require.NoError(t, json.Unmarshal([]byte(`{"number": 42}`), &payload))
		assert.True(t, payload.ERPCode.IsUnset())
	})

	t.Run("null becomes null state", func(t *testing.T) {
		t.Parallel()

		var payload erpPayload

		require.NoError(t, json.Unmarshal([]byte(`{"number": 42, "erp_code": null}`), &payload))
		assert.True(t, payload.ERPCode.IsNull())
		assert.False(t, payload.ERPCode.IsSet())
	})

	t.Run("value becomes set state", func(t *testing.T) {
		t.Parallel()

		var payload erpPayload

		require.NoError(t, json.Unmarshal([]byte(`{"number": 42, "erp_code": "ERP-7"}`), &payload))

		value, ok := payload.ERPCode.Value()
		require.True(t, ok)
		assert.Equal(t, "ERP-7", value)
	})

	t.Run("wrong type reports a conversion error", func(t *testing.T) {
		t.Parallel()

		var payload erpPayload

		err := json.Unmarshal([]byte(`{"number": 42, "erp_code": 7}`), &payload)
		require.Error(t, err)
		assert.True(t, quotient.IsValidation(err))
	})
}

func TestOptional_ValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fallback", quotient.Optional[string]{}.ValueOr("fallback"))
	assert.Equal(t, "fallback", quotient.Null[string]().ValueOr("fallback"))
	assert.Equal(t, "value", quotient.Set("value").ValueOr("fallback"))
}
