package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// ArchiveStore is an append-only record of completed shopping lists. Entries
// are kept exactly as the client sent them; an entry's index is its id.
type ArchiveStore struct {
	mu      sync.Mutex
	entries []json.RawMessage
}

func NewArchiveStore() *ArchiveStore {
	return &ArchiveStore{entries: []json.RawMessage{}}
}

// Append stores entry if it is a JSON object with a non-null "items" member.
// It returns the new entry's index and the total number of entries.
func (s *ArchiveStore) Append(entry json.RawMessage) (index, total int, err error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
		return 0, 0, fmt.Errorf("saved list must be an object: %w", ErrInvalidInput)
	}
	items, ok := fields["items"]
	if !ok || string(items) == "null" {
		return 0, 0, fmt.Errorf("saved list has no items: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, append(json.RawMessage(nil), entry...))
	return len(s.entries) - 1, len(s.entries), nil
}

func (s *ArchiveStore) List() ([]json.RawMessage, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.entries), len(s.entries)
}
