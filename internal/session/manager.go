// Package session owns the client-side authentication lifecycle: a single
// Manager holds the current user, token and loading state, persists them
// through a Store, and mirrors the token into the HTTP client's token slot.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/AssoGestion/asso_gestion_app/internal/apiclient"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

// State is a snapshot of the session. Err carries the last login/signup
// failure message for display; it never affects control flow.
type State struct {
	User            *domain.User
	Token           string
	RefreshToken    string
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// snapshot is the persisted shape under SnapshotKey.
type snapshot struct {
	User            *domain.User `json:"user"`
	Token           string       `json:"token"`
	RefreshToken    string       `json:"refreshToken,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// Manager drives the auth state machine. All lifecycle calls serialize on an
// internal mutex: one login/signup/checkAuth runs at a time, and a caller
// observing State sees the result of the last completed transition.
type Manager struct {
	mu     sync.Mutex
	auth   ports.AuthSvc
	store  Store
	tokens *apiclient.TokenHolder
	logger *slog.Logger

	state       State
	initialized bool
}

// NewManager wires the auth service, persistence store and the token holder
// shared with the HTTP client. logger may be nil.
func NewManager(auth ports.AuthSvc, store Store, tokens *apiclient.TokenHolder, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{auth: auth, store: store, tokens: tokens, logger: logger}
}

// State returns a copy of the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ClearError resets the displayed error message.
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Err = ""
}

// Init rehydrates the persisted snapshot so a restart does not force a fresh
// login before the first request. Safe to call more than once; only the
// first call reads the store.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}
	m.initialized = true

	raw, err := m.store.Get(SnapshotKey)
	if err != nil {
		return err
	}
	if raw != "" {
		var snap snapshot
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			// A corrupt snapshot is discarded, not fatal.
			m.logger.Warn("discarding unreadable session snapshot", "error", err)
			_ = m.store.Delete(SnapshotKey)
		} else {
			m.state.User = snap.User
			m.state.Token = snap.Token
			m.state.RefreshToken = snap.RefreshToken
			m.state.IsAuthenticated = snap.IsAuthenticated
		}
	}

	// The token key is authoritative for the HTTP client; it may exist even
	// when the snapshot does not.
	if token, err := m.store.Get(TokenKey); err == nil && token != "" {
		m.state.Token = token
	}
	if rt, err := m.store.Get(RefreshTokenKey); err == nil && rt != "" {
		m.state.RefreshToken = rt
	}
	m.tokens.Set(m.state.Token)
	return nil
}

// Login authenticates and, on success, marks the session authenticated and
// persists the token and snapshot. On failure the session stays
// unauthenticated and the message is kept in State().Err for display.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setLoading()
	defer m.clearLoading()

	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		m.state.Err = errorMessage(err)
		m.state.IsAuthenticated = false
		return err
	}
	m.adopt(resp)
	return nil
}

// Signup registers a new account and logs it in. The confirm-password echo
// and the default "student" role are applied by the auth service.
func (m *Manager) Signup(ctx context.Context, name, email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setLoading()
	defer m.clearLoading()

	resp, err := m.auth.Signup(ctx, dto.SignupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		m.state.Err = errorMessage(err)
		m.state.IsAuthenticated = false
		return err
	}
	m.adopt(resp)
	return nil
}

// Logout tells the server best-effort and unconditionally clears local state
// and every persisted key. It never fails from the caller's point of view.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.auth.Logout(ctx); err != nil {
		m.logger.Warn("server logout failed, clearing local session anyway", "error", err)
	}
	m.teardown()
}

// CheckAuth validates the held token against the server. Without a token it
// resolves to unauthenticated without a network call. Any failure is a hard
// logout: an expired token must never leave a half-authenticated session.
func (m *Manager) CheckAuth(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Token == "" {
		m.state.IsAuthenticated = false
		m.state.User = nil
		return nil
	}

	m.setLoading()
	defer m.clearLoading()

	user, err := m.auth.CurrentUser(ctx)
	if err != nil {
		m.teardown()
		return err
	}
	if user.Role == "" {
		user.Role = domain.RoleStudent
	}
	m.state.User = &user
	m.state.IsAuthenticated = true
	m.persistSnapshot()
	return nil
}

// adopt installs a successful auth response. Caller holds the lock.
func (m *Manager) adopt(resp dto.AuthResponse) {
	role := domain.UserRole(resp.User.Role)
	if role == "" {
		role = domain.RoleStudent
	}
	user := &domain.User{
		Entity: domain.Entity{ID: resp.User.ID},
		Name:   resp.User.Name,
		Email:  resp.User.Email,
		Role:   role,
	}

	m.state.User = user
	m.state.Token = resp.AccessToken
	m.state.IsAuthenticated = true
	m.state.Err = ""

	m.tokens.Set(resp.AccessToken)
	if err := m.store.Set(TokenKey, resp.AccessToken); err != nil {
		m.logger.Warn("persisting token failed", "error", err)
	}
	// Persist the full snapshot too, so a restart before the next checkAuth
	// still restores the user.
	m.persistSnapshot()
}

// teardown clears state, the shared token and every persisted key. Caller
// holds the lock.
func (m *Manager) teardown() {
	m.state = State{}
	m.tokens.Clear()
	for _, key := range []string{TokenKey, RefreshTokenKey, SnapshotKey} {
		if err := m.store.Delete(key); err != nil {
			m.logger.Warn("removing session key failed", "key", key, "error", err)
		}
	}
}

func (m *Manager) persistSnapshot() {
	snap := snapshot{
		User:            m.state.User,
		Token:           m.state.Token,
		RefreshToken:    m.state.RefreshToken,
		IsAuthenticated: m.state.IsAuthenticated,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		m.logger.Warn("encoding session snapshot failed", "error", err)
		return
	}
	if err := m.store.Set(SnapshotKey, string(data)); err != nil {
		m.logger.Warn("persisting session snapshot failed", "error", err)
	}
}

func (m *Manager) setLoading() {
	m.state.IsLoading = true
	m.state.Err = ""
}

func (m *Manager) clearLoading() {
	m.state.IsLoading = false
}

// errorMessage extracts the display message of an auth failure.
func errorMessage(err error) string {
	if apiErr, ok := err.(*apiclient.Error); ok {
		return apiErr.Message
	}
	return err.Error()
}
