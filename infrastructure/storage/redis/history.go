// ABOUTME: Redis-backed generation history storage using ReJSON documents
// ABOUTME: Stores entries as JSON with a list index for newest-first listing

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"moodboard-app-api/core/domain"
	"moodboard-app-api/pkg/config"
	"github.com/nitishm/go-rejson/v4"
	goredis "github.com/redis/go-redis/v9"
)

const (
	entryKeyPrefix = "history:entry:"
	indexKey       = "history:index"
)

// HistoryStore implements the HistoryStorage interface using Redis JSON
type HistoryStore struct {
	client  *goredis.Client
	handler *rejson.Handler
	ttl     time.Duration
}

// NewHistoryStore creates a new Redis history store. A zero TTL keeps
// entries until they fall off the index.
func NewHistoryStore(cfg config.RedisConfig, ttl time.Duration) (*HistoryStore, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClientWithContext(context.Background(), client)

	return &HistoryStore{
		client:  client,
		handler: handler,
		ttl:     ttl,
	}, nil
}

// Save persists a history entry and pushes it onto the index
func (s *HistoryStore) Save(ctx context.Context, entry *domain.HistoryEntry) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}
	if entry.ID == "" {
		return errors.New("entry ID cannot be empty")
	}

	key := entryKeyPrefix + entry.ID
	if _, err := s.handler.JSONSet(key, ".", entry); err != nil {
		return fmt.Errorf("failed to store history entry: %w", err)
	}

	if s.ttl > 0 {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			return fmt.Errorf("failed to set entry expiration: %w", err)
		}
	}

	if err := s.client.LPush(ctx, indexKey, entry.ID).Err(); err != nil {
		return fmt.Errorf("failed to index history entry: %w", err)
	}

	return nil
}

// Get retrieves a history entry by ID. A missing entry returns (nil, nil).
func (s *HistoryStore) Get(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	if id == "" {
		return nil, errors.New("id cannot be empty")
	}

	res, err := s.handler.JSONGet(entryKeyPrefix+id, ".")
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get history entry: %w", err)
	}

	data, err := rawBytes(res)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var entry domain.HistoryEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode history entry: %w", err)
	}

	return &entry, nil
}

// List returns up to limit entries, newest first. Entries that expired out
// from under the index are skipped.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	ids, err := s.client.LRange(ctx, indexKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history index: %w", err)
	}

	entries := make([]*domain.HistoryEntry, 0, len(ids))
	for _, id := range ids {
		entry, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// Close closes the Redis connection
func (s *HistoryStore) Close() error {
	return s.client.Close()
}

// rawBytes normalizes the ReJSON handler's result type
func rawBytes(res interface{}) ([]byte, error) {
	switch v := res.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unexpected ReJSON result type %T", res)
	}
}
