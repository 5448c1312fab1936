package session

import (
	"context"
	"fmt"

	"github.com/AssoGestion/asso_gestion_app/internal/apperrors"
)

// RequireAuth is the guard in front of protected operations: it rehydrates
// the session, validates the token with the server when one is held, and
// fails closed. The returned state is always the post-check state.
func RequireAuth(ctx context.Context, m *Manager) (State, error) {
	if err := m.Init(); err != nil {
		return m.State(), fmt.Errorf("restore session: %w", err)
	}
	if m.State().Token != "" {
		if err := m.CheckAuth(ctx); err != nil {
			return m.State(), fmt.Errorf("%w: session expired, log in again", apperrors.ErrUnauthorized)
		}
	}
	state := m.State()
	if !state.IsAuthenticated {
		return state, fmt.Errorf("%w: not logged in", apperrors.ErrUnauthorized)
	}
	return state, nil
}
