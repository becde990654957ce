// Package store persists accepted transactions. The extraction engine never
// writes here itself; callers (server, CLI) save results after a successful
// pipeline run.
package store

import (
	"context"
	"sort"

	"statement-engine/internal/model"
)

// Store defines the persistence operations used by the server and CLI.
// Saves are idempotent on transaction id: re-processing the same document
// must not create duplicate rows.
type Store interface {
	// SaveTransactions inserts transactions that are not already present,
	// returning how many were newly stored.
	SaveTransactions(ctx context.Context, txns []model.Transaction) (int, error)
	// ListTransactions returns a user's transactions, most recent first.
	ListTransactions(ctx context.Context, userID string) ([]model.Transaction, error)
	Close() error
}

// sortByDateDesc orders most recent first, breaking date ties by id so list
// results are deterministic.
func sortByDateDesc(txns []model.Transaction) {
	sort.Slice(txns, func(i, j int) bool {
		if txns[i].Date != txns[j].Date {
			return txns[i].Date > txns[j].Date
		}
		return txns[i].ID < txns[j].ID
	})
}
