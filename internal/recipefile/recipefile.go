package recipefile

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing has been persisted yet.
var ErrNotFound = errors.New("recipe file not found")

// Persister reads and writes the serialized recipe collection as a whole.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
