package history

import (
	"context"
	"errors"
	"testing"

	"moodboard-app-api/core/domain"
	coreerrors "moodboard-app-api/core/errors"
	"github.com/google/uuid"
)

// mockStorage is an in-memory HistoryStorage for tests
type mockStorage struct {
	entries []*domain.HistoryEntry
	saveErr error
}

func (m *mockStorage) Save(ctx context.Context, entry *domain.HistoryEntry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockStorage) Get(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockStorage) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]*domain.HistoryEntry, 0, limit)
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func testBoard() *domain.Moodboard {
	return &domain.Moodboard{
		ImageDataURL: "data:image/png;base64,AAAA",
		Prompt:       "Photoreal event styling moodboard.",
	}
}

func TestService_Record(t *testing.T) {
	storage := &mockStorage{}
	svc := NewService(storage, nil)

	req := domain.MoodboardRequest{Mood: "Luxe", Palette: "Champagne", Layout: "Banquet"}
	entry, err := svc.Record(context.Background(), req, testBoard())
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	if _, err := uuid.Parse(entry.ID); err != nil {
		t.Errorf("entry ID %q is not a UUID", entry.ID)
	}
	if entry.Request.Mood != "Luxe" {
		t.Errorf("entry mood = %q", entry.Request.Mood)
	}
	if len(storage.entries) != 1 {
		t.Errorf("storage holds %d entries, want 1", len(storage.entries))
	}
}

func TestService_Record_NilBoard(t *testing.T) {
	svc := NewService(&mockStorage{}, nil)

	_, err := svc.Record(context.Background(), domain.MoodboardRequest{}, nil)
	if err == nil {
		t.Error("Record should reject a nil moodboard")
	}
}

func TestService_Record_StorageError(t *testing.T) {
	storage := &mockStorage{saveErr: errors.New("disk full")}
	svc := NewService(storage, nil)

	_, err := svc.Record(context.Background(), domain.MoodboardRequest{Mood: "Luxe"}, testBoard())
	if err == nil {
		t.Error("Record should surface storage errors")
	}
}

func TestService_Get(t *testing.T) {
	storage := &mockStorage{}
	svc := NewService(storage, nil)

	entry, err := svc.Record(context.Background(), domain.MoodboardRequest{Mood: "Luxe"}, testBoard())
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	got, err := svc.Get(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.ID != entry.ID {
		t.Errorf("Get returned entry %q, want %q", got.ID, entry.ID)
	}
}

func TestService_Get_InvalidID(t *testing.T) {
	svc := NewService(&mockStorage{}, nil)

	for _, id := range []string{"", "not-a-uuid"} {
		if _, err := svc.Get(context.Background(), id); !coreerrors.IsValidation(err) {
			t.Errorf("Get(%q) error = %v, want validation error", id, err)
		}
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc := NewService(&mockStorage{}, nil)

	_, err := svc.Get(context.Background(), uuid.New().String())
	if !coreerrors.IsNotFound(err) {
		t.Errorf("Get error = %v, want not found", err)
	}
}

func TestService_List_NewestFirst(t *testing.T) {
	storage := &mockStorage{}
	svc := NewService(storage, nil)
	ctx := context.Background()

	first, _ := svc.Record(ctx, domain.MoodboardRequest{Mood: "Luxe"}, testBoard())
	second, _ := svc.Record(ctx, domain.MoodboardRequest{Mood: "Minimal"}, testBoard())

	entries, err := svc.List(ctx, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Error("List is not newest-first")
	}
}

func TestService_List_LimitClamped(t *testing.T) {
	storage := &mockStorage{}
	svc := NewService(storage, nil)
	ctx := context.Background()

	for i := 0; i < DefaultListLimit+5; i++ {
		if _, err := svc.Record(ctx, domain.MoodboardRequest{Mood: "Luxe"}, testBoard()); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	entries, err := svc.List(ctx, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != DefaultListLimit {
		t.Errorf("List returned %d entries, want %d", len(entries), DefaultListLimit)
	}
}
