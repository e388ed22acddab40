package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return client
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "moodboard:abc", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := client.Get(ctx, "moodboard:abc")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("Get returned %q, want %q", string(got), "payload")
	}
}

func TestSQLiteCache_Get_MissingKey(t *testing.T) {
	client := newTestClient(t)

	if _, err := client.Get(context.Background(), "missing"); err == nil {
		t.Error("Get should return error for missing key")
	}
}

func TestSQLiteCache_Get_ExpiredKey(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Expiry resolution is one second, so back-date the expiry directly.
	if err := client.Set(ctx, "stale", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, err := client.db.Exec("UPDATE cache SET expiry = ? WHERE key = ?", time.Now().Add(-time.Minute).Unix(), "stale"); err != nil {
		t.Fatalf("failed to back-date entry: %v", err)
	}

	if _, err := client.Get(ctx, "stale"); err == nil {
		t.Error("Get should return error for expired key")
	}

	client.cleanup()

	var count int
	if err := client.db.QueryRow("SELECT COUNT(*) FROM cache").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("cleanup left %d expired entries", count)
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := client.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if _, err := client.Get(ctx, "k"); err == nil {
		t.Error("Get should fail after Delete")
	}
}

func TestSQLiteCache_EmptyKeyRejected(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "", []byte("v"), time.Hour); err == nil {
		t.Error("Set should reject empty key")
	}
	if _, err := client.Get(ctx, ""); err == nil {
		t.Error("Get should reject empty key")
	}
	if err := client.Delete(ctx, ""); err == nil {
		t.Error("Delete should reject empty key")
	}
}

func TestSQLiteCache_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	if err := first.Set(ctx, "persist", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	first.Close()

	second, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "persist")
	if err != nil {
		t.Fatalf("Get after reopen returned error: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get returned %q after reopen", string(got))
	}
}
