// Package memory holds the in-process mock implementation of the data
// access contract: an ordered, mutex-guarded entity list seeded at
// construction. It exists as a development fallback and as the backing store
// of the mock backend; data lives only for the lifetime of the process.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AssoGestion/asso_gestion_app/internal/apperrors"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
	"github.com/google/uuid"
)

// Store is a generic in-memory DataService. PT is the pointer type of T and
// carries the identity mutators; instantiate as NewStore[domain.Student,
// *domain.Student](seed).
type Store[T any, PT interface {
	ports.Mutable
	*T
}] struct {
	mu    sync.RWMutex
	items []T
	now   func() time.Time
	newID func() string
}

// NewStore seeds a store. IDs are uuids: unlike a short random identifier,
// collisions do not have to be checked.
func NewStore[T any, PT interface {
	ports.Mutable
	*T
}](seed []T) *Store[T, PT] {
	s := &Store[T, PT]{
		items: make([]T, len(seed)),
		now:   time.Now,
		newID: uuid.NewString,
	}
	copy(s.items, seed)
	return s
}

// GetAll returns a copy of the current snapshot in insertion order.
func (s *Store[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

// GetByID reports (zero, false, nil) when no entity matches: absence is a
// valid outcome, not an error.
func (s *Store[T, PT]) GetByID(ctx context.Context, id string) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(id); i >= 0 {
		return s.items[i], true, nil
	}
	var zero T
	return zero, false, nil
}

// Create assigns a fresh id and sets CreatedAt == UpdatedAt.
func (s *Store[T, PT]) Create(ctx context.Context, item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	PT(&item).SetIdentity(s.newID(), s.now())
	s.items = append(s.items, item)
	return item, nil
}

// Update shallow-merges via mutate and refreshes UpdatedAt, even for an
// empty mutation.
func (s *Store[T, PT]) Update(ctx context.Context, id string, mutate func(*T)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("update %q: %w", id, apperrors.ErrNotFound)
	}
	item := s.items[i]
	if mutate != nil {
		mutate(&item)
	}
	PT(&item).Touch(s.now())
	s.items[i] = item
	return item, nil
}

// Delete reports whether an entity was removed; a second call with the same
// id returns false without error.
func (s *Store[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true, nil
}

// Reset replaces the whole dataset. Test helper, mirrors seeding.
func (s *Store[T, PT]) Reset(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]T, len(items))
	copy(s.items, items)
}

func (s *Store[T, PT]) index(id string) int {
	for i := range s.items {
		if PT(&s.items[i]).EntityID() == id {
			return i
		}
	}
	return -1
}
