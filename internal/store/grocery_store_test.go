package store

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/kitchenlist/internal/domain"
)

func newTestGroceries(initial ...domain.GroceryItem) *GroceryStore {
	return NewGroceryStore(initial, slog.Default())
}

func groceryEntry(name string, completed bool) domain.GroceryItem {
	return domain.GroceryItem{
		Item:      domain.Item{Name: name, Quantity: 1, Unit: domain.DefaultUnit, Category: domain.DefaultCategory},
		Completed: completed,
	}
}

func TestGroceryStoreUpsert_NewItemKeepsListFields(t *testing.T) {
	s := newTestGroceries()

	items := s.Upsert(ItemDraft{
		Name:       "bread",
		Quantity:   1.0,
		Completed:  true,
		Importance: json.RawMessage(`"high"`),
	})

	require.Len(t, items, 1)
	assert.True(t, items[0].Completed)
	assert.Equal(t, `"high"`, string(items[0].Importance))
}

func TestGroceryStoreUpsert_MergeOnlyTouchesQuantityAndCategory(t *testing.T) {
	s := newTestGroceries()
	s.Upsert(ItemDraft{Name: "bread", Quantity: 1.0, Category: "Bakst", Importance: json.RawMessage(`1`)})

	items := s.Upsert(ItemDraft{Name: "bread", Quantity: 2.0, Completed: true, Importance: json.RawMessage(`3`)})

	require.Len(t, items, 1)
	assert.Equal(t, 3.0, items[0].Quantity)
	assert.Equal(t, domain.DefaultCategory, items[0].Category)
	assert.False(t, items[0].Completed)
	assert.Equal(t, "1", string(items[0].Importance))
}

func TestGroceryStoreUpsert_RemovesAtZero(t *testing.T) {
	s := newTestGroceries()
	s.Upsert(draft("bread", 1.0))

	assert.Empty(t, s.Upsert(draft("bread", -1.0)))
}

func TestGroceryStoreReplace(t *testing.T) {
	s := newTestGroceries(groceryEntry("old", false))

	items := s.Replace([]ItemDraft{
		{Name: "apple", Quantity: 3.0, Completed: 1.0},
		{Name: "pear", Quantity: 0.0},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "apple", items[0].Name)
	assert.True(t, items[0].Completed)
}

func TestGroceryStoreSetCompleted(t *testing.T) {
	s := newTestGroceries(groceryEntry("a", false), groceryEntry("b", false))

	items, err := s.SetCompleted(" b ", true)
	require.NoError(t, err)
	assert.False(t, items[0].Completed)
	assert.True(t, items[1].Completed)
	assert.Equal(t, 1.0, items[1].Quantity)

	items, err = s.SetCompleted("b", false)
	require.NoError(t, err)
	assert.False(t, items[1].Completed)
}

func TestGroceryStoreSetCompleted_NotFound(t *testing.T) {
	s := newTestGroceries(groceryEntry("a", false))

	_, err := s.SetCompleted("missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.List(), 1)
}

func TestGroceryStoreRemove(t *testing.T) {
	s := newTestGroceries(groceryEntry("a", false), groceryEntry("b", true))

	items, err := s.Remove("a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Name)

	items, err = s.Remove("zzz")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = s.Remove("")
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestGroceryStorePurgeCompleted(t *testing.T) {
	s := newTestGroceries(groceryEntry("a", true), groceryEntry("b", false))

	removed, remaining := s.PurgeCompleted()

	assert.Equal(t, 1, removed)
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].Name)
}

func TestGroceryStorePurgeCompleted_PreservesOrder(t *testing.T) {
	s := newTestGroceries(
		groceryEntry("a", false),
		groceryEntry("b", true),
		groceryEntry("c", false),
		groceryEntry("d", true),
		groceryEntry("e", false),
	)

	removed, remaining := s.PurgeCompleted()

	assert.Equal(t, 2, removed)
	names := make([]string, 0, len(remaining))
	for _, it := range remaining {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"a", "c", "e"}, names)
}

func TestGroceryStorePurgeCompleted_Empty(t *testing.T) {
	removed, remaining := newTestGroceries().PurgeCompleted()

	assert.Zero(t, removed)
	assert.NotNil(t, remaining)
	assert.Empty(t, remaining)
}

func TestGroceryStoreUpsert_UpdatesEverySameNamedEntry(t *testing.T) {
	first := groceryEntry("a", false)
	second := groceryEntry("a", true)
	second.Quantity = 2
	s := newTestGroceries(first, second)

	items := s.Upsert(draft("a", -1.5))

	require.Len(t, items, 1)
	assert.Equal(t, 0.5, items[0].Quantity)
	assert.True(t, items[0].Completed)
}

func TestGroceryStoreUpsert_BlankNameIgnored(t *testing.T) {
	s := newTestGroceries()

	assert.Empty(t, s.Upsert(ItemDraft{Quantity: 1.0, Completed: true}))
}

func TestGroceryStoreReplace_KeepsFirstOfDuplicateNames(t *testing.T) {
	s := newTestGroceries()

	items := s.Replace([]ItemDraft{
		{Name: "milk", Quantity: 1.0, Completed: true},
		{Name: "milk", Quantity: 3.0},
	})

	require.Len(t, items, 1)
	assert.Equal(t, 1.0, items[0].Quantity)
	assert.True(t, items[0].Completed)
}
