package mockapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
	"github.com/AssoGestion/asso_gestion_app/internal/utils"
)

func hashSeedPassword() (string, error) {
	return utils.HashPassword(seedPassword)
}

func (s *Server) issueToken(c *gin.Context, user domain.User) (string, bool) {
	token, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role),
		s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		LoggerFrom(c).Error("Token generation failed", "error", err)
		respondError(c, http.StatusInternalServerError, "could not issue token", nil)
		return "", false
	}
	return token, true
}

func (s *Server) findUserByEmail(c *gin.Context, email string) (domain.User, bool) {
	users, err := s.users.GetAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return domain.User{}, false
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return domain.User{}, false
}

func authUser(u domain.User) dto.AuthUser {
	return dto.AuthUser{ID: u.ID, Email: u.Email, Role: string(u.Role), Name: u.Name}
}

func (s *Server) handleLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, found := s.findUserByEmail(c, req.Email)
	if c.IsAborted() {
		return
	}
	s.credMu.RLock()
	hash, hasCreds := s.credentials[user.Email]
	s.credMu.RUnlock()
	if !found || !hasCreds || !utils.CheckPasswordHash(req.Password, hash) {
		respondError(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	if !user.IsActive {
		respondError(c, http.StatusUnauthorized, "account is disabled", nil)
		return
	}

	token, ok := s.issueToken(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{AccessToken: token, User: authUser(user)})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		respondError(c, http.StatusBadRequest, "passwords do not match",
			map[string][]string{"confirmPassword": {"must match password"}})
		return
	}

	if _, exists := s.findUserByEmail(c, req.Email); exists {
		respondError(c, http.StatusConflict, "email already registered", nil)
		return
	}
	if c.IsAborted() {
		return
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleStudent
	}
	if !role.IsValid() {
		respondError(c, http.StatusBadRequest, "unknown role",
			map[string][]string{"role": {"unknown role " + req.Role}})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	user, err := s.users.Create(c.Request.Context(), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		Avatar:   req.Avatar,
		IsActive: true,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.credMu.Lock()
	s.credentials[user.Email] = hash
	s.credMu.Unlock()

	token, ok := s.issueToken(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, dto.AuthResponse{AccessToken: token, User: authUser(user)})
}

// handleLogout is intentionally stateless: access tokens simply expire.
func (s *Server) handleLogout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (s *Server) handleProfile(c *gin.Context) {
	claims := ClaimsFrom(c)
	user, found, err := s.users.GetByID(c.Request.Context(), claims.Subject)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusUnauthorized, "account no longer exists", nil)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleRefresh(c *gin.Context) {
	claims := ClaimsFrom(c)
	user, found, err := s.users.GetByID(c.Request.Context(), claims.Subject)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusUnauthorized, "account no longer exists", nil)
		return
	}
	token, ok := s.issueToken(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{AccessToken: token, User: authUser(user)})
}

func (s *Server) handleForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	// Always answer the same way so the endpoint does not leak which emails
	// exist; the token is logged instead of mailed.
	if _, found := s.findUserByEmail(c, req.Email); found {
		token := uuid.NewString()
		s.credMu.Lock()
		s.resetTokens[token] = req.Email
		s.credMu.Unlock()
		LoggerFrom(c).Info("Password reset token issued", "email", req.Email, "token", token)
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "if the account exists, a reset link has been sent"})
}

func (s *Server) handleResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	s.credMu.Lock()
	email, ok := s.resetTokens[req.Token]
	if ok {
		delete(s.resetTokens, req.Token)
	}
	s.credMu.Unlock()
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid or expired reset token", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	s.credMu.Lock()
	s.credentials[email] = hash
	s.credMu.Unlock()
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password updated"})
}
