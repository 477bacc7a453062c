package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"erpdesk/internal/platform/localstore"
	"erpdesk/internal/transport/rest"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (w widget) EntityID() string { return w.ID }

func TestFetchReplacesCollection(t *testing.T) {
	s := New[widget]("widgets", nil)
	ctx := context.Background()

	err := s.Fetch(ctx, func(context.Context) ([]widget, error) {
		return []widget{{ID: "1"}, {ID: "2"}}, nil
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	err = s.Fetch(ctx, func(context.Context) ([]widget, error) {
		return []widget{{ID: "3"}}, nil
	})
	if err != nil {
		t.Fatalf("refetch: %v", err)
	}

	items := s.Items()
	if len(items) != 1 || items[0].ID != "3" {
		t.Fatalf("expected whole-collection replace, got %+v", items)
	}
}

func TestCreateThenFetchContainsEntityOnce(t *testing.T) {
	s := New[widget]("widgets", nil)
	ctx := context.Background()

	backend := []widget{{ID: "1"}}
	list := func(context.Context) ([]widget, error) {
		out := make([]widget, len(backend))
		copy(out, backend)
		return out, nil
	}

	if err := s.Fetch(ctx, list); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	created, err := s.Add(ctx, func(context.Context) (widget, error) {
		w := widget{ID: "2", Name: "new"}
		backend = append(backend, w)
		return w, nil
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != "2" {
		t.Fatalf("unexpected created entity: %+v", created)
	}

	if err := s.Fetch(ctx, list); err != nil {
		t.Fatalf("fetch after create: %v", err)
	}

	count := 0
	for _, item := range s.Items() {
		if item.ID == "2" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected entity exactly once, found %d", count)
	}
}

func TestApplyReplacesByID(t *testing.T) {
	s := New[widget]("widgets", nil)
	ctx := context.Background()

	_ = s.Fetch(ctx, func(context.Context) ([]widget, error) {
		return []widget{{ID: "1", Name: "old"}, {ID: "2"}}, nil
	})

	updated, err := s.Apply(ctx, func(context.Context) (widget, error) {
		return widget{ID: "1", Name: "new"}, nil
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if updated.Name != "new" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	items := s.Items()
	if len(items) != 2 || items[0].Name != "new" {
		t.Fatalf("expected in-place replace, got %+v", items)
	}
}

func TestRemoveNonexistentIsNoOp(t *testing.T) {
	s := New[widget]("widgets", nil)
	ctx := context.Background()

	_ = s.Fetch(ctx, func(context.Context) ([]widget, error) {
		return []widget{{ID: "1"}, {ID: "2"}}, nil
	})

	err := s.Remove(ctx, "missing", func(context.Context) error { return nil })
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(s.Items()) != 2 {
		t.Fatalf("expected collection unchanged, got %+v", s.Items())
	}
}

func TestRemoveKeepsEntityWhenServerFails(t *testing.T) {
	s := New[widget]("widgets", nil)
	ctx := context.Background()

	_ = s.Fetch(ctx, func(context.Context) ([]widget, error) {
		return []widget{{ID: "1"}}, nil
	})

	serverErr := &rest.APIError{Status: 500, Message: "boom"}
	err := s.Remove(ctx, "1", func(context.Context) error { return serverErr })
	if err == nil {
		t.Fatal("expected error")
	}
	if len(s.Items()) != 1 {
		t.Fatal("entity must stay until the server confirms the delete")
	}
	if s.ErrMessage() != "boom" {
		t.Fatalf("expected recorded server message, got %q", s.ErrMessage())
	}
}

func TestFailureRecordsMessageAndReturnsError(t *testing.T) {
	s := New[widget]("widgets", nil)
	ctx := context.Background()

	wantErr := errors.New("network down")
	err := s.Fetch(ctx, func(context.Context) ([]widget, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected error to propagate, got %v", err)
	}
	if s.ErrMessage() == "" {
		t.Fatal("expected fallback error message to be recorded")
	}
	if s.Loading() {
		t.Fatal("loading flag must be reset on failure")
	}
}

func TestUnauthorizedLeavesFlagsUntouched(t *testing.T) {
	s := New[widget]("widgets", nil)
	ctx := context.Background()

	err := s.Fetch(ctx, func(context.Context) ([]widget, error) {
		return nil, rest.ErrUnauthorized
	})
	if !errors.Is(err, rest.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if s.ErrMessage() != "" {
		t.Fatal("no store mutation may follow a session purge")
	}
}

func TestPersistAndLoadRoundTrip(t *testing.T) {
	local, err := localstore.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open localstore: %v", err)
	}
	defer local.Close()

	s := New[widget]("widgets", local)
	ctx := context.Background()

	_ = s.Fetch(ctx, func(context.Context) ([]widget, error) {
		return []widget{{ID: "1", Name: "persisted"}}, nil
	})

	rehydrated := New[widget]("widgets", local)
	if err := rehydrated.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	items := rehydrated.Items()
	if len(items) != 1 || items[0].Name != "persisted" {
		t.Fatalf("expected snapshot to rehydrate, got %+v", items)
	}

	rehydrated.Invalidate()
	empty := New[widget]("widgets", local)
	if err := empty.Load(); err != nil {
		t.Fatalf("load after invalidate: %v", err)
	}
	if len(empty.Items()) != 0 {
		t.Fatal("invalidate must drop the persisted snapshot")
	}
}
