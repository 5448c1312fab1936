package ports

import (
	"context"
	"time"
)

// Record is any persisted entity carrying an opaque unique identifier.
type Record interface {
	EntityID() string
}

// Mutable is implemented by pointers to domain entities and lets a store
// assign identity at creation and refresh UpdatedAt on mutation.
type Mutable interface {
	Record
	SetIdentity(id string, now time.Time)
	Touch(now time.Time)
}

// DataService is the generic CRUD contract over an entity type. The
// in-memory store implements it directly; REST-backed services expose the
// same verbs through domain-specific methods. Callers stay
// implementation-agnostic: every method is asynchronous-safe and
// context-aware regardless of whether the backing store ever blocks.
type DataService[T Record] interface {
	// GetAll returns a snapshot of every entity.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID returns the entity with the given id. A missing id is a valid
	// non-error outcome reported through the boolean.
	GetByID(ctx context.Context, id string) (T, bool, error)

	// Create persists item with a store-assigned id; CreatedAt and UpdatedAt
	// are both set to the current time.
	Create(ctx context.Context, item T) (T, error)

	// Update applies mutate to the stored entity and refreshes UpdatedAt.
	// Returns apperrors.ErrNotFound when no entity has that id. An empty
	// mutation still refreshes UpdatedAt.
	Update(ctx context.Context, id string, mutate func(*T)) (T, error)

	// Delete removes the entity. Returns true if something was removed,
	// false (not an error) if no entity matched.
	Delete(ctx context.Context, id string) (bool, error)
}
