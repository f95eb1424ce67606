package store

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/vbonduro/kitchenlist/internal/domain"
)

// PantryStore holds the ingredients currently in stock, unique by name and
// kept in insertion order.
type PantryStore struct {
	mu     sync.Mutex
	items  []domain.Item
	logger *slog.Logger
}

func NewPantryStore(initial []domain.Item, logger *slog.Logger) *PantryStore {
	return &PantryStore{items: slices.Clone(initial), logger: logger}
}

func pantryItem(it *domain.Item) *domain.Item { return it }

// Upsert applies the merge-on-write rules and returns the resulting contents.
func (s *PantryStore) Upsert(d ItemDraft) []domain.Item {
	incoming := d.Normalize().Item
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = upsert(s.items, incoming, pantryItem, s.logger)
	return snapshot(s.items)
}

// Replace swaps the whole pantry for the normalized drafts that have a name
// and a positive quantity.
func (s *PantryStore) Replace(drafts []ItemDraft) []domain.Item {
	next := make([]domain.Item, 0, len(drafts))
	for _, d := range drafts {
		next = append(next, d.Normalize().Item)
	}
	next = keepStocked(next, pantryItem)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = next
	return snapshot(s.items)
}

func (s *PantryStore) Remove(name string) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := removeFirst(s.items, name, pantryItem)
	if err != nil {
		return nil, err
	}
	s.items = items
	return snapshot(s.items), nil
}

func (s *PantryStore) List() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.items)
}
