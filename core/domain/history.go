// ABOUTME: History domain model records past moodboard generations
// ABOUTME: Provides construction and validation for history entries

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records a single moodboard generation
type HistoryEntry struct {
	// ID is the unique identifier (UUID) for the entry
	ID string `json:"id"`

	// CreatedAt is when the generation completed
	CreatedAt time.Time `json:"created_at"`

	// Request holds the attributes the moodboard was generated from
	Request MoodboardRequest `json:"request"`

	// Prompt is the full prompt that produced the image
	Prompt string `json:"prompt"`

	// ImageDataURL is the generated image encoded as a data: URL
	ImageDataURL string `json:"image_data_url"`

	// CacheHit indicates the result was served from cache
	CacheHit bool `json:"cache_hit"`
}

// NewHistoryEntry creates a history entry for a completed generation
func NewHistoryEntry(req MoodboardRequest, board *Moodboard) (*HistoryEntry, error) {
	if board == nil {
		return nil, errors.New("moodboard cannot be nil")
	}
	if board.ImageDataURL == "" {
		return nil, errors.New("moodboard has no image")
	}

	return &HistoryEntry{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Request:      req,
		Prompt:       board.Prompt,
		ImageDataURL: board.ImageDataURL,
		CacheHit:     board.CacheHit,
	}, nil
}
