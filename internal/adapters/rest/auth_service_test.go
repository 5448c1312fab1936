package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AssoGestion/asso_gestion_app/internal/apiclient"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

func TestLogin_PostsCredentialsAndDecodesToken(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK,
		`{"access_token":"jwt-abc","user":{"id":"u1","email":"alice@example.com","role":"admin"}}`)

	svc := NewAuthService(newTestClient(srv))
	resp, err := svc.Login(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/auth/login", rec.Path)
	body := decodeBody(t, rec.Body)
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Equal(t, "secret", body["password"])
	assert.Equal(t, "jwt-abc", resp.AccessToken)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestLogin_InvalidEmailFailsBeforeRequest(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{}`)

	svc := NewAuthService(newTestClient(srv))
	_, err := svc.Login(context.Background(), "not-an-email", "secret")

	require.Error(t, err)
	assert.Empty(t, rec.Method)
}

func TestLogin_BadCredentialsSurfaceMessage(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusUnauthorized, `{"message":"invalid credentials"}`)

	svc := NewAuthService(newTestClient(srv))
	_, err := svc.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestSignup_DefaultsRoleAndEchoesPassword(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusCreated,
		`{"access_token":"jwt-new","user":{"id":"u2","email":"bob@example.com"}}`)

	svc := NewAuthService(newTestClient(srv))
	resp, err := svc.Signup(context.Background(), dto.SignupRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "/auth/register", rec.Path)
	body := decodeBody(t, rec.Body)
	assert.Equal(t, "student", body["role"])
	assert.Equal(t, "hunter22", body["confirmPassword"])
	assert.Equal(t, "jwt-new", resp.AccessToken)
}

func TestSignup_ExplicitRoleIsKept(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusCreated,
		`{"access_token":"t","user":{"id":"u3","email":"carol@example.com"}}`)

	svc := NewAuthService(newTestClient(srv))
	_, err := svc.Signup(context.Background(), dto.SignupRequest{
		Name:     "Carol",
		Email:    "carol@example.com",
		Password: "hunter22",
		Role:     "tresorier",
	})

	require.NoError(t, err)
	body := decodeBody(t, rec.Body)
	assert.Equal(t, "tresorier", body["role"])
}

func TestLogout_PostsWithoutBody(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusNoContent, ``)

	svc := NewAuthService(newTestClient(srv))
	err := svc.Logout(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/auth/logout", rec.Path)
	assert.Empty(t, rec.Body)
}

func TestLogout_ServerErrorIsReturned(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusInternalServerError, `{"message":"boom"}`)

	svc := NewAuthService(newTestClient(srv))
	err := svc.Logout(context.Background())

	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusInternalServerError))
}

func TestCurrentUser_DecodesProfile(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK,
		`{"id":"u1","name":"Alice","email":"alice@example.com","role":"president","isActive":true}`)

	svc := NewAuthService(newTestClient(srv))
	user, err := svc.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/auth/profile", rec.Path)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "president", string(user.Role))
	assert.True(t, user.IsActive)
}

func TestRefresh_SendsRefreshToken(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK,
		`{"access_token":"jwt-next","user":{"id":"u1","email":"alice@example.com"}}`)

	svc := NewAuthService(newTestClient(srv))
	resp, err := svc.Refresh(context.Background(), "refresh-123")

	require.NoError(t, err)
	assert.Equal(t, "/auth/refresh", rec.Path)
	body := decodeBody(t, rec.Body)
	assert.Equal(t, "refresh-123", body["refreshToken"])
	assert.Equal(t, "jwt-next", resp.AccessToken)
}

func TestForgotPassword_ReturnsMessage(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"message":"reset link sent"}`)

	svc := NewAuthService(newTestClient(srv))
	msg, err := svc.ForgotPassword(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "/auth/forgot-password", rec.Path)
	assert.Equal(t, "reset link sent", msg)
}

func TestResetPassword_ShortPasswordFailsBeforeRequest(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{}`)

	svc := NewAuthService(newTestClient(srv))
	_, err := svc.ResetPassword(context.Background(), "tok", "abc")

	require.Error(t, err)
	assert.Empty(t, rec.Method)
}
