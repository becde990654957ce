package store

import (
	"context"
	"sync"

	"statement-engine/internal/model"
)

// MemoryStore implements Store with in-memory storage, for local development
// and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	txns map[string]model.Transaction
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{txns: make(map[string]model.Transaction)}
}

func (m *MemoryStore) SaveTransactions(ctx context.Context, txns []model.Transaction) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inserted := 0
	for _, t := range txns {
		if _, ok := m.txns[t.ID]; ok {
			continue
		}
		m.txns[t.ID] = t
		inserted++
	}
	return inserted, nil
}

func (m *MemoryStore) ListTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Transaction
	for _, t := range m.txns {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sortByDateDesc(out)
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }
