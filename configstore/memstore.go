package configstore

import (
	"context"
	"sync"
)

// MemoryStore keeps the document in memory. Useful in tests and when the
// service is embedded without a data directory.
type MemoryStore struct {
	mu  sync.Mutex
	doc Document
}

// NewMemoryStore returns a store holding initial. A nil initial document
// behaves like a file that was never written.
func NewMemoryStore(initial Document) *MemoryStore {
	if initial == nil {
		return &MemoryStore{}
	}

	return &MemoryStore{doc: initial.Clone()}
}

func (m *MemoryStore) Load(ctx context.Context) (Document, LoadResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.doc == nil {
		return Document{}, LoadResult{Status: LoadMissing}
	}

	return m.doc.Clone(), LoadResult{Status: LoadOK}
}

func (m *MemoryStore) Save(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.doc = doc.Clone()
	return nil
}

// Reset forgets the stored document, as if it was never saved.
func (m *MemoryStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.doc = nil
}
