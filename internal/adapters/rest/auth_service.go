package rest

import (
	"context"

	"github.com/AssoGestion/asso_gestion_app/internal/apiclient"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
	"github.com/AssoGestion/asso_gestion_app/internal/utils"
)

// AuthService implements the authentication port over the /auth endpoints.
// It never stores tokens itself; the session manager owns token lifecycle
// and feeds the shared TokenHolder the client reads from.
type AuthService struct {
	client *apiclient.Client
}

var _ ports.AuthSvc = (*AuthService)(nil)

func NewAuthService(client *apiclient.Client) *AuthService {
	return &AuthService{client: client}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (dto.AuthResponse, error) {
	req := dto.LoginRequest{Email: email, Password: password}
	if err := utils.ValidateStruct(req); err != nil {
		return dto.AuthResponse{}, err
	}
	var resp dto.AuthResponse
	if err := s.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		return dto.AuthResponse{}, err
	}
	return resp, nil
}

func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (dto.AuthResponse, error) {
	if req.Role == "" {
		req.Role = string(domain.RoleStudent)
	}
	req.ConfirmPassword = req.Password
	if err := utils.ValidateStruct(req); err != nil {
		return dto.AuthResponse{}, err
	}
	var resp dto.AuthResponse
	if err := s.client.Post(ctx, "/auth/register", req, &resp); err != nil {
		return dto.AuthResponse{}, err
	}
	return resp, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.Post(ctx, "/auth/logout", nil, nil)
}

func (s *AuthService) CurrentUser(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := s.client.Get(ctx, "/auth/profile", &user)
	return user, err
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (dto.AuthResponse, error) {
	var resp dto.AuthResponse
	err := s.client.Post(ctx, "/auth/refresh", dto.RefreshRequest{RefreshToken: refreshToken}, &resp)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return resp, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	req := dto.ForgotPasswordRequest{Email: email}
	if err := utils.ValidateStruct(req); err != nil {
		return "", err
	}
	var resp dto.MessageResponse
	if err := s.client.Post(ctx, "/auth/forgot-password", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) (string, error) {
	req := dto.ResetPasswordRequest{Token: token, Password: password}
	if err := utils.ValidateStruct(req); err != nil {
		return "", err
	}
	var resp dto.MessageResponse
	if err := s.client.Post(ctx, "/auth/reset-password", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
