package api

import (
	"context"
	"net/http"

	"pse_restaurant_admin/internal/models"
)

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest DTO
type RegisterRequest struct {
	Username string          `json:"username" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"omitempty,oneof=user admin"`
}

// AuthResponse carries the token and user the backend issues on login/register.
type AuthResponse struct {
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token"`
	User    *models.User `json:"user,omitempty"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/users/login", req, &out)
	return out, err
}

// Register creates a new account. The backend may or may not log the account
// in immediately, so Token can be empty.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/users/register", req, &out)
	return out, err
}

// Me fetches the profile behind the current bearer token.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var out models.User
	err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, &out)
	return out, err
}
