package store

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/vbonduro/kitchenlist/internal/domain"
)

// GroceryStore is the shopping list. It follows the pantry's merge rules and
// adds a completed flag and an opaque importance value per entry.
type GroceryStore struct {
	mu     sync.Mutex
	items  []domain.GroceryItem
	logger *slog.Logger
}

func NewGroceryStore(initial []domain.GroceryItem, logger *slog.Logger) *GroceryStore {
	return &GroceryStore{items: slices.Clone(initial), logger: logger}
}

func groceryItem(it *domain.GroceryItem) *domain.Item { return &it.Item }

// Upsert merges by name. Only quantity and category of an existing entry
// change; completed and importance are taken from the first insert.
func (s *GroceryStore) Upsert(d ItemDraft) []domain.GroceryItem {
	incoming := d.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = upsert(s.items, incoming, groceryItem, s.logger)
	return snapshot(s.items)
}

func (s *GroceryStore) Replace(drafts []ItemDraft) []domain.GroceryItem {
	next := make([]domain.GroceryItem, 0, len(drafts))
	for _, d := range drafts {
		next = append(next, d.Normalize())
	}
	next = keepStocked(next, groceryItem)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = next
	return snapshot(s.items)
}

// SetCompleted flips the completed flag of the named entry and nothing else.
func (s *GroceryStore) SetCompleted(name string, completed bool) ([]domain.GroceryItem, error) {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Name == name {
			s.items[i].Completed = completed
			return snapshot(s.items), nil
		}
	}
	return nil, fmt.Errorf("grocery item %q: %w", name, ErrNotFound)
}

func (s *GroceryStore) Remove(name string) ([]domain.GroceryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := removeFirst(s.items, name, groceryItem)
	if err != nil {
		return nil, err
	}
	s.items = items
	return snapshot(s.items), nil
}

// PurgeCompleted drops every completed entry, keeping the order of the rest.
func (s *GroceryStore) PurgeCompleted() (removed int, remaining []domain.GroceryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(it domain.GroceryItem) bool { return it.Completed })
	return before - len(s.items), snapshot(s.items)
}

func (s *GroceryStore) List() []domain.GroceryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.items)
}
