package dto

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" binding:"required,email"`
	Password string `json:"password" validate:"required" binding:"required"`
}

// SignupRequest is the body of POST /auth/register. ConfirmPassword is always
// submitted equal to Password; Role defaults to "student" when empty.
type SignupRequest struct {
	Name            string `json:"name" validate:"required" binding:"required"`
	Email           string `json:"email" validate:"required,email" binding:"required,email"`
	Password        string `json:"password" validate:"required,min=6" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	Number          string `json:"number,omitempty"`
	Role            string `json:"role,omitempty"`
	Avatar          string `json:"avatar,omitempty"`
	IsActive        *bool  `json:"isActive,omitempty"`
}

// AuthUser is the abbreviated user shape the backend returns on login/signup.
// Role and Name may be absent.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	Name  string `json:"name,omitempty"`
}

// AuthResponse is the success body of login, signup and refresh.
type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	User        AuthUser `json:"user"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email" binding:"required,email"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required" binding:"required"`
	Password string `json:"password" validate:"required,min=6" binding:"required,min=6"`
}

// MessageResponse is the generic `{message}` body used by several endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
