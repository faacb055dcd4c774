// internal/store/store.go
package store

import (
	"context"
)

// Collection names understood by every Store implementation.
const (
	Products  = "products"
	Customers = "customers"
	Orders    = "orders"
)

// Store persists each collection as a single document. Every call moves the
// whole document: Load decodes it in full, Save rewrites it in full. There is
// no locking across a caller's load-mutate-save cycle, so two concurrent
// mutations of the same collection can lose one writer's changes.
type Store interface {
	// Load decodes the named collection document into out. Read and decode
	// failures are logged and swallowed, leaving out as the empty collection.
	Load(ctx context.Context, collection string, out any)

	// Save rewrites the named collection document. A non-nil error means the
	// document was not persisted; callers must surface it.
	Save(ctx context.Context, collection string, doc any) error
}
