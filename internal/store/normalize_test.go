package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/kitchenlist/internal/domain"
)

func decodeDraft(t *testing.T, body string) ItemDraft {
	t.Helper()
	var d ItemDraft
	require.NoError(t, json.Unmarshal([]byte(body), &d))
	return d
}

func TestItemDraftNormalize_Defaults(t *testing.T) {
	item := decodeDraft(t, `{"name":"  egg  ","quantity":3}`).Normalize()

	assert.Equal(t, "egg", item.Name)
	assert.Equal(t, 3.0, item.Quantity)
	assert.Equal(t, domain.DefaultUnit, item.Unit)
	assert.Equal(t, domain.DefaultCategory, item.Category)
	assert.False(t, item.Completed)
	assert.Nil(t, item.Importance)
}

func TestItemDraftNormalize_AllFields(t *testing.T) {
	item := decodeDraft(t, `{"name":"Milk","quantity":"1.5","massurment":"l","category":"  Meieri ","completed":true,"importance":{"level":2}}`).Normalize()

	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, 1.5, item.Quantity)
	assert.Equal(t, "l", item.Unit)
	assert.Equal(t, "Meieri", item.Category)
	assert.True(t, item.Completed)
	assert.JSONEq(t, `{"level":2}`, string(item.Importance))
}

func TestItemDraftNormalize_MissingName(t *testing.T) {
	item := decodeDraft(t, `{"quantity":1}`).Normalize()
	assert.Empty(t, item.Name)

	item = decodeDraft(t, `{"name":null,"quantity":1}`).Normalize()
	assert.Empty(t, item.Name)
}

func TestItemDraftNormalize_BlankCategoryUsesDefault(t *testing.T) {
	item := decodeDraft(t, `{"name":"salt","quantity":1,"category":"   "}`).Normalize()
	assert.Equal(t, domain.DefaultCategory, item.Category)
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{name: "number", in: 4.0, want: 4},
		{name: "negative number", in: -2.0, want: -2},
		{name: "decimal string", in: "2.25", want: 2.25},
		{name: "padded string", in: "  7 ", want: 7},
		{name: "leading number", in: "3 kg", want: 3},
		{name: "negative string", in: "-1", want: -1},
		{name: "not a number", in: "abc", want: 0},
		{name: "empty string", in: "", want: 0},
		{name: "NaN string", in: "NaN", want: 0},
		{name: "infinity string", in: "Inf", want: 0},
		{name: "missing", in: nil, want: 0},
		{name: "boolean", in: true, want: 0},
		{name: "object", in: map[string]any{"n": 1.0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseQuantity(tt.in))
		})
	}
}

func TestCoerceString(t *testing.T) {
	assert.Equal(t, "", coerceString(nil))
	assert.Equal(t, "", coerceString(false))
	assert.Equal(t, "", coerceString(0.0))
	assert.Equal(t, "42", coerceString(42.0))
	assert.Equal(t, "1.5", coerceString(1.5))
	assert.Equal(t, "true", coerceString(true))
	assert.Equal(t, "x", coerceString("x"))
}

func TestTruthy(t *testing.T) {
	assert.False(t, truthy(nil))
	assert.False(t, truthy(false))
	assert.False(t, truthy(""))
	assert.False(t, truthy(0.0))
	assert.True(t, truthy(true))
	assert.True(t, truthy("no"))
	assert.True(t, truthy(1.0))
	assert.True(t, truthy(map[string]any{}))
}

func TestDecodeDrafts(t *testing.T) {
	drafts, err := DecodeDrafts(json.RawMessage(`[{"name":"egg","quantity":2}, 5, "x"]`))
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assert.Equal(t, "egg", drafts[0].Name)
	assert.Nil(t, drafts[1].Name)
	assert.Nil(t, drafts[2].Name)
}

func TestDecodeDrafts_NotAnArray(t *testing.T) {
	for _, body := range []string{``, `null`, `{}`, `"egg"`, `12`, `[1,`} {
		_, err := DecodeDrafts(json.RawMessage(body))
		assert.ErrorIs(t, err, ErrInvalidInput, "body %q", body)
	}
}
