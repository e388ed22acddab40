// ABOUTME: SQLite-backed generation history storage
// ABOUTME: Persists moodboard history entries in a local database file

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moodboard-app-api/core/domain"
	_ "github.com/mattn/go-sqlite3"
)

// HistoryStore implements the HistoryStorage interface using SQLite
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore creates a new SQLite history store
func NewHistoryStore(filePath string) (*HistoryStore, error) {
	if filePath == "" {
		filePath = "moodboard-history.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &HistoryStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the history table if it doesn't exist
func (s *HistoryStore) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS history (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			mood TEXT NOT NULL,
			palette TEXT NOT NULL,
			layout TEXT NOT NULL,
			room TEXT NOT NULL DEFAULT '',
			venue_image_url TEXT NOT NULL DEFAULT '',
			av_equipment TEXT NOT NULL DEFAULT '',
			uplighting_colour TEXT NOT NULL DEFAULT '',
			prompt TEXT NOT NULL,
			image_data_url TEXT NOT NULL,
			cache_hit INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);
	`

	_, err := s.db.Exec(query)
	return err
}

// Save persists a history entry
func (s *HistoryStore) Save(ctx context.Context, entry *domain.HistoryEntry) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}
	if entry.ID == "" {
		return errors.New("entry ID cannot be empty")
	}

	query := `
		INSERT OR REPLACE INTO history
			(id, created_at, mood, palette, layout, room, venue_image_url,
			 av_equipment, uplighting_colour, prompt, image_data_url, cache_hit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	cacheHit := 0
	if entry.CacheHit {
		cacheHit = 1
	}

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.CreatedAt.UnixNano(),
		entry.Request.Mood,
		entry.Request.Palette,
		entry.Request.Layout,
		entry.Request.Room,
		entry.Request.VenueImageURL,
		entry.Request.AVEquipment,
		entry.Request.UplightingColour,
		entry.Prompt,
		entry.ImageDataURL,
		cacheHit,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	return nil
}

// Get retrieves a history entry by ID. A missing entry returns (nil, nil).
func (s *HistoryStore) Get(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	if id == "" {
		return nil, errors.New("id cannot be empty")
	}

	query := selectColumns + " FROM history WHERE id = ?"
	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get history entry: %w", err)
	}

	return entry, nil
}

// List returns up to limit entries, newest first
func (s *HistoryStore) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	query := selectColumns + " FROM history ORDER BY created_at DESC LIMIT ?"
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.HistoryEntry, 0, limit)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Close closes the database connection
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

const selectColumns = `SELECT id, created_at, mood, palette, layout, room,
	venue_image_url, av_equipment, uplighting_colour, prompt, image_data_url, cache_hit`

// rowScanner covers both sql.Row and sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.HistoryEntry, error) {
	var entry domain.HistoryEntry
	var createdAt int64
	var cacheHit int

	err := row.Scan(
		&entry.ID,
		&createdAt,
		&entry.Request.Mood,
		&entry.Request.Palette,
		&entry.Request.Layout,
		&entry.Request.Room,
		&entry.Request.VenueImageURL,
		&entry.Request.AVEquipment,
		&entry.Request.UplightingColour,
		&entry.Prompt,
		&entry.ImageDataURL,
		&cacheHit,
	)
	if err != nil {
		return nil, err
	}

	entry.CreatedAt = time.Unix(0, createdAt)
	entry.CacheHit = cacheHit != 0

	return &entry, nil
}
