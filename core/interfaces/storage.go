// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"moodboard-app-api/core/domain"
)

// HistoryStorage defines the interface for generation-history persistence
type HistoryStorage interface {
	// Save persists a history entry
	Save(ctx context.Context, entry *domain.HistoryEntry) error

	// Get retrieves a history entry by ID
	Get(ctx context.Context, id string) (*domain.HistoryEntry, error)

	// List returns up to limit entries, newest first
	List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error)
}
