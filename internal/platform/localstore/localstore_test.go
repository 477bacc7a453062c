package localstore

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	type snapshot struct {
		Names []string `json:"names"`
	}

	if err := store.Put("employees", snapshot{Names: []string{"a", "b"}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got snapshot
	found, err := store.Get("employees", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected snapshot to exist")
	}
	if len(got.Names) != 2 || got.Names[0] != "a" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("token", "first"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put("token", "second"); err != nil {
		t.Fatalf("put again: %v", err)
	}

	var got string
	if _, err := store.Get("token", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "second" {
		t.Fatalf("expected replacement, got %q", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := openTestStore(t)

	var got string
	found, err := store.Get("absent", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected missing key")
	}
}

func TestClearPurgesEverything(t *testing.T) {
	store := openTestStore(t)

	_ = store.Put("token", "abc")
	_ = store.Put("user", "someone")

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	var got string
	if found, _ := store.Get("token", &got); found {
		t.Fatal("expected token to be purged")
	}
	if found, _ := store.Get("user", &got); found {
		t.Fatal("expected user to be purged")
	}
}
