// internal/store/memory.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-process Store for tests and throwaway deployments. Documents
// round-trip through JSON so it behaves like the durable backends.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Load decodes the stored document into out; unknown collections stay empty.
func (m *Memory) Load(_ context.Context, collection string, out any) {
	m.mu.RLock()
	data, ok := m.docs[collection]
	m.mu.RUnlock()
	if !ok {
		return
	}
	// Decode errors cannot happen for data written through Save, but keep the
	// swallow-and-stay-empty contract anyway.
	_ = json.Unmarshal(data, out)
}

// Save encodes and stores the document.
func (m *Memory) Save(_ context.Context, collection string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}
	m.mu.Lock()
	m.docs[collection] = data
	m.mu.Unlock()
	return nil
}
