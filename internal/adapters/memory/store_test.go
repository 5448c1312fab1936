package memory_test

import (
	"context"
	"testing"

	"github.com/AssoGestion/asso_gestion_app/internal/adapters/memory"
	"github.com/AssoGestion/asso_gestion_app/internal/apperrors"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuarterStore() *memory.Store[domain.Quarter, *domain.Quarter] {
	return memory.NewStore[domain.Quarter, *domain.Quarter](memory.QuarterFixtures())
}

func TestGetByID_AbsentIsNotAnError(t *testing.T) {
	s := newQuarterStore()

	_, found, err := s.GetByID(context.Background(), "does-not-exist")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreate_AssignsIdentity(t *testing.T) {
	s := newQuarterStore()

	created, err := s.Create(context.Background(), domain.Quarter{Name: "Quartier Talangaï", City: "Brazzaville"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	// The id must be previously unused.
	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	seen := map[string]int{}
	for _, q := range all {
		seen[q.ID]++
	}
	assert.Equal(t, 1, seen[created.ID])
}

func TestUpdate_EmptyPatchOnlyTouchesUpdatedAt(t *testing.T) {
	s := newQuarterStore()
	before, found, err := s.GetByID(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, found)

	after, err := s.Update(context.Background(), "1", func(q *domain.Quarter) {})
	require.NoError(t, err)

	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.City, after.City)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestUpdate_MergesProvidedFields(t *testing.T) {
	s := newQuarterStore()

	updated, err := s.Update(context.Background(), "2", func(q *domain.Quarter) {
		q.Description = "rénové"
	})
	require.NoError(t, err)

	assert.Equal(t, "rénové", updated.Description)
	assert.Equal(t, "Quartier Poto-Poto", updated.Name)
}

func TestUpdate_UnknownIDFails(t *testing.T) {
	s := newQuarterStore()

	_, err := s.Update(context.Background(), "nope", func(q *domain.Quarter) {})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete_IdempotentInEffect(t *testing.T) {
	s := newQuarterStore()

	removed, err := s.Delete(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Delete(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, removed)

	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	for _, q := range all {
		assert.NotEqual(t, "1", q.ID)
	}
}

func TestGetAll_ReturnsIsolatedCopy(t *testing.T) {
	s := newQuarterStore()

	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	all[0].Name = "mutated"

	again, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Quartier Bacongo", again[0].Name)
}
