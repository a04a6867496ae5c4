package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/api"
	"pse_restaurant_admin/internal/session"
	"pse_restaurant_admin/pkg/utils"
)

// AuthHandler manages the operator's session lifecycle against the backend:
// login installs the token and user, logout tears them down.
type AuthHandler struct {
	client  *api.Client
	session *session.Session
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(client *api.Client, sess *session.Session) *AuthHandler {
	return &AuthHandler{client: client, session: sess}
}

// Login exchanges credentials for a backend token and persists the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid login payload.", err.Error()))
		return
	}

	resp, err := h.client.Login(c.Request.Context(), req)
	if err != nil {
		respondActionError(c, err)
		return
	}
	if err := h.session.SetAuth(resp.Token, resp.User); err != nil {
		utils.LogError(err, "login: failed to persist session")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError,
			utils.ErrCodeInternalServerError, "Failed to persist session.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register creates a new account. When the backend logs the account in
// immediately (token present), the session is installed as on login.
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid registration payload.", err.Error()))
		return
	}

	resp, err := h.client.Register(c.Request.Context(), req)
	if err != nil {
		respondActionError(c, err)
		return
	}
	if resp.Token != "" {
		if err := h.session.SetAuth(resp.Token, resp.User); err != nil {
			utils.LogError(err, "register: failed to persist session")
		}
	}
	c.JSON(http.StatusCreated, resp)
}

// Logout clears the persisted session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.session.Clear(); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError,
			utils.ErrCodeInternalServerError, "Failed to clear session.", err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the profile behind the current token, refreshed from the
// backend once per request rather than once per dashboard page.
func (h *AuthHandler) Me(c *gin.Context) {
	if h.session.Token() == "" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized,
			utils.ErrCodeUnauthorized, session.ErrNotAuthenticated.Error(), "").
			WithRedirect("/login"))
		return
	}
	user, err := h.client.Me(c.Request.Context())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
