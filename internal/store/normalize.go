package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/vbonduro/kitchenlist/internal/domain"
)

// ItemDraft is a loosely typed item description as it arrives from a client.
// Fields hold whatever JSON value was sent and are coerced by Normalize.
type ItemDraft struct {
	Name       any             `json:"name"`
	Quantity   any             `json:"quantity"`
	Unit       any             `json:"massurment"`
	Category   any             `json:"category"`
	Completed  any             `json:"completed"`
	Importance json.RawMessage `json:"importance"`
}

// Normalize coerces a draft into a grocery item. Pantry callers use the
// embedded Item and ignore the list-only fields.
func (d ItemDraft) Normalize() domain.GroceryItem {
	unit := coerceString(d.Unit)
	if unit == "" {
		unit = domain.DefaultUnit
	}
	category := strings.TrimSpace(coerceString(d.Category))
	if category == "" {
		category = domain.DefaultCategory
	}
	item := domain.GroceryItem{
		Item: domain.Item{
			Name:     strings.TrimSpace(coerceString(d.Name)),
			Quantity: parseQuantity(d.Quantity),
			Unit:     unit,
			Category: category,
		},
		Completed: truthy(d.Completed),
	}
	if len(d.Importance) > 0 {
		item.Importance = append(json.RawMessage(nil), d.Importance...)
	}
	return item
}

// DecodeDrafts parses a JSON array of item descriptors. Anything other than an
// array is ErrInvalidInput; elements that are not objects become empty drafts
// and are dropped later by the name/quantity filter.
func DecodeDrafts(raw json.RawMessage) ([]ItemDraft, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("expected an array of items: %w", ErrInvalidInput)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("expected an array of items: %w", ErrInvalidInput)
	}
	drafts := make([]ItemDraft, len(elems))
	for i, elem := range elems {
		var d ItemDraft
		if err := json.Unmarshal(elem, &d); err == nil {
			drafts[i] = d
		}
	}
	return drafts, nil
}

// coerceString turns a decoded JSON value into a string. Falsy values
// (null, false, 0, "") become the empty string.
func coerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return ""
	case float64:
		if x == 0 || math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	default:
		return ""
	}
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseQuantity reads a decimal quantity. Unparseable input is 0.
func parseQuantity(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case json.Number:
		f, _ = x.Float64()
	case string:
		s := strings.TrimSpace(x)
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			parsed, err = strconv.ParseFloat(leadingNumber.FindString(s), 64)
			if err != nil {
				return 0
			}
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}
