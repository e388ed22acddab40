// ABOUTME: History service records and lists past moodboard generations
// ABOUTME: Provides business logic for the history strip shown in the front end

package history

import (
	"context"

	"moodboard-app-api/core/domain"
	coreerrors "moodboard-app-api/core/errors"
	"moodboard-app-api/core/interfaces"
	"github.com/google/uuid"
)

// DefaultListLimit bounds unpaginated history listings
const DefaultListLimit = 20

// Service handles generation-history operations
type Service struct {
	storage interfaces.HistoryStorage
	logger  interfaces.Logger
}

// NewService creates a new history service instance
func NewService(storage interfaces.HistoryStorage, logger interfaces.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Record stores a completed generation. Recording is best-effort from the
// caller's point of view; the generation result stands even if the entry
// cannot be written.
func (s *Service) Record(ctx context.Context, req domain.MoodboardRequest, board *domain.Moodboard) (*domain.HistoryEntry, error) {
	entry, err := domain.NewHistoryEntry(req, board)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Save(ctx, entry); err != nil {
		if s.logger != nil {
			s.logger.Warn("Failed to record history entry", map[string]interface{}{
				"entry_id": entry.ID,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	return entry, nil
}

// Get retrieves a history entry by ID
func (s *Service) Get(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "must be a valid UUID"}
	}

	entry, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, &coreerrors.NotFoundError{Resource: "history entry", ID: id}
	}

	return entry, nil
}

// List returns up to limit entries, newest first
func (s *Service) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultListLimit
	}

	return s.storage.List(ctx, limit)
}
