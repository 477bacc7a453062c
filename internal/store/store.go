// Package store implements the domain-store pattern shared by every
// entity type: an in-memory collection with loading and error flags,
// persisted to local storage keyed by store name. The local state is a
// cache, never a source of truth; entities enter it on a successful
// create, change on a successful update, and leave only after the server
// confirms a delete.
package store

import (
	"context"
	"errors"
	"sync"

	"erpdesk/internal/platform/localstore"
	"erpdesk/internal/transport/rest"
)

// Entity is anything with a backend-assigned identifier.
type Entity interface {
	EntityID() string
}

type Store[T Entity] struct {
	mu       sync.Mutex
	name     string
	local    *localstore.Store
	items    []T
	selected *T
	loading  bool
	errMsg   string
}

// New creates a store persisted under name. local may be nil, in which
// case the store is memory-only (tests, short-lived commands).
func New[T Entity](name string, local *localstore.Store) *Store[T] {
	return &Store[T]{name: name, local: local}
}

func (s *Store[T]) Name() string { return s.name }

func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			item := s.items[i]
			s.selected = &item
			return true
		}
	}
	s.selected = nil
	return false
}

func (s *Store[T]) Selected() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ErrMessage returns the message recorded by the last failed action, or
// the empty string.
func (s *Store[T]) ErrMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Store[T]) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

// fail records the failure and returns the error unchanged so the caller
// can react too. Recording and returning is the one policy applied to
// every action. An unauthorized error is returned as-is without touching
// the flags: the session purge has already happened and nothing local
// may change after it.
func (s *Store[T]) fail(err error) error {
	s.mu.Lock()
	s.loading = false
	if !errors.Is(err, rest.ErrUnauthorized) {
		s.errMsg = errorMessage(err)
	}
	s.mu.Unlock()
	return err
}

func errorMessage(err error) string {
	var apiErr *rest.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "something went wrong, please try again"
}

// Fetch replaces the whole collection with the service result.
func (s *Store[T]) Fetch(ctx context.Context, list func(context.Context) ([]T, error)) error {
	s.begin()
	items, err := list(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()
	s.persist()
	return nil
}

// Add appends the entity returned by the service create call.
func (s *Store[T]) Add(ctx context.Context, create func(context.Context) (T, error)) (T, error) {
	s.begin()
	item, err := create(ctx)
	if err != nil {
		var zero T
		return zero, s.fail(err)
	}
	s.mu.Lock()
	s.items = append(s.items, item)
	s.loading = false
	s.mu.Unlock()
	s.persist()
	return item, nil
}

// Apply replaces the entity with the same identifier as the service
// update result. An unknown identifier is appended, so a store that was
// never fetched still ends up consistent.
func (s *Store[T]) Apply(ctx context.Context, update func(context.Context) (T, error)) (T, error) {
	s.begin()
	item, err := update(ctx)
	if err != nil {
		var zero T
		return zero, s.fail(err)
	}
	s.mu.Lock()
	replaced := false
	for i := range s.items {
		if s.items[i].EntityID() == item.EntityID() {
			s.items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		s.items = append(s.items, item)
	}
	if s.selected != nil && (*s.selected).EntityID() == item.EntityID() {
		s.selected = &item
	}
	s.loading = false
	s.mu.Unlock()
	s.persist()
	return item, nil
}

// Remove filters the entity out of the collection once the server has
// confirmed the delete. Filtering an id that is not present is a no-op.
func (s *Store[T]) Remove(ctx context.Context, id string, del func(context.Context) error) error {
	s.begin()
	if err := del(ctx); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	filtered := s.items[:0]
	for _, item := range s.items {
		if item.EntityID() != id {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered
	if s.selected != nil && (*s.selected).EntityID() == id {
		s.selected = nil
	}
	s.loading = false
	s.mu.Unlock()
	s.persist()
	return nil
}

// Invalidate drops the in-memory collection and its persisted snapshot.
func (s *Store[T]) Invalidate() {
	s.mu.Lock()
	s.items = nil
	s.selected = nil
	s.errMsg = ""
	s.mu.Unlock()
	if s.local != nil {
		_ = s.local.Delete(s.name)
	}
}

// Refetch is the explicit invalidate-then-fetch contract.
func (s *Store[T]) Refetch(ctx context.Context, list func(context.Context) ([]T, error)) error {
	s.Invalidate()
	return s.Fetch(ctx, list)
}

// Load rehydrates the collection from the persisted snapshot.
func (s *Store[T]) Load() error {
	if s.local == nil {
		return nil
	}
	var items []T
	found, err := s.local.Get(s.name, &items)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Store[T]) persist() {
	if s.local == nil {
		return
	}
	s.mu.Lock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()
	_ = s.local.Put(s.name, items)
}
