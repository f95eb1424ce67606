package store

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/vbonduro/kitchenlist/internal/domain"
)

// upsert merges incoming into items by name. An existing entry gets the
// incoming quantity added and its category overwritten, and is dropped once
// its quantity reaches zero or below. An unknown name is appended only when
// its quantity is positive. A blank name changes nothing.
func upsert[T any](items []T, incoming T, base func(*T) *domain.Item, logger *slog.Logger) []T {
	in := base(&incoming)
	if in.Name == "" {
		logger.Debug("ignored item without a name", "quantity", in.Quantity)
		return items
	}
	matched := false
	for i := 0; i < len(items); {
		cur := base(&items[i])
		if cur.Name != in.Name {
			i++
			continue
		}
		matched = true
		cur.Quantity += in.Quantity
		cur.Category = in.Category
		if cur.Quantity <= 0 {
			logger.Debug("removed item, quantity reached zero", "name", cur.Name)
			items = slices.Delete(items, i, i+1)
			continue
		}
		logger.Debug("merged item", "name", cur.Name, "quantity", cur.Quantity)
		i++
	}
	if matched {
		return items
	}
	if in.Quantity > 0 {
		logger.Debug("added item", "name", in.Name, "quantity", in.Quantity)
		return append(items, incoming)
	}
	logger.Debug("ignored item with non-positive quantity", "name", in.Name, "quantity", in.Quantity)
	return items
}

// keepStocked drops entries without a name or with a non-positive quantity.
// Only the first entry for each name survives.
func keepStocked[T any](items []T, base func(*T) *domain.Item) []T {
	out := make([]T, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i := range items {
		it := base(&items[i])
		if it.Name == "" || it.Quantity <= 0 || seen[it.Name] {
			continue
		}
		seen[it.Name] = true
		out = append(out, items[i])
	}
	return out
}

// removeFirst deletes the first entry called name. A missing entry is not an error.
func removeFirst[T any](items []T, name string, base func(*T) *domain.Item) ([]T, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return items, ErrMissingName
	}
	for i := range items {
		if base(&items[i]).Name == name {
			return slices.Delete(items, i, i+1), nil
		}
	}
	return items, nil
}

// snapshot copies items into a non-nil slice so callers never share the
// store's backing array and empty collections encode as [].
func snapshot[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
