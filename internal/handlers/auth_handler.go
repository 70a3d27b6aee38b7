package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoledger/internal/auth"
	apperrors "autoledger/internal/errors"
	"autoledger/internal/models"
	"autoledger/internal/services"
)

const stateCookie = "oidc_state"

// TokenIssuer issues bearer tokens for signed-in users.
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

// ExternalProvider is an external identity provider used for sign-in.
type ExternalProvider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.ExternalProfile, error)
}

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
	tokens      TokenIssuer
	provider    ExternalProvider
	secure      bool
}

// NewAuthHandler creates a new AuthHandler. provider may be nil when external
// sign-in is not configured.
func NewAuthHandler(userService services.UserServicer, tokens TokenIssuer, provider ExternalProvider, secureCookies bool) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens, provider: provider, secure: secureCookies}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with email and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} AuthResponse "User registered and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, successEnvelope, apperrors.WithMessage(apperrors.ErrInvalidInput, invalidField(err)))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondWithError(c, successEnvelope, err)
		return
	}
	h.respondWithToken(c, http.StatusCreated, user)
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, successEnvelope, apperrors.WithMessage(apperrors.ErrInvalidInput, invalidField(err)))
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, successEnvelope, err)
		return
	}
	h.respondWithToken(c, http.StatusOK, user)
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity, ok := requireIdentity(c, successEnvelope)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), identity.UserID)
	if err != nil {
		respondWithError(c, successEnvelope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// ExternalLogin redirects to the external identity provider
// @Summary     Start external sign-in
// @Tags        auth
// @Success     302 "Redirect to the identity provider"
// @Failure     404 {object} ErrorResponse "External sign-in is not configured"
// @Router      /auth/oidc/login [get]
func (h *AuthHandler) ExternalLogin(c *gin.Context) {
	if h.provider == nil {
		respondWithError(c, successEnvelope, apperrors.WithMessage(apperrors.ErrNotFound, "External sign-in is not configured"))
		return
	}

	state, err := auth.NewState()
	if err != nil {
		respondWithError(c, successEnvelope, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/", "", h.secure, true)
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// ExternalCallback completes external sign-in and issues a token
// @Summary     Complete external sign-in
// @Tags        auth
// @Produce     json
// @Param       state query string true "OAuth state"
// @Param       code  query string true "Authorization code"
// @Success     200 {object} AuthResponse "Signed in"
// @Failure     400 {object} ErrorResponse "Invalid sign-in state"
// @Failure     401 {object} ErrorResponse "External sign-in failed"
// @Router      /auth/oidc/callback [get]
func (h *AuthHandler) ExternalCallback(c *gin.Context) {
	if h.provider == nil {
		respondWithError(c, successEnvelope, apperrors.WithMessage(apperrors.ErrNotFound, "External sign-in is not configured"))
		return
	}

	expected, err := c.Cookie(stateCookie)
	state := c.Query("state")
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(state)) != 1 {
		respondWithError(c, successEnvelope, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid sign-in state"))
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.secure, true)

	code := c.Query("code")
	if code == "" {
		respondWithError(c, successEnvelope, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing authorization code"))
		return
	}

	profile, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, successEnvelope,
			apperrors.Wrap(apperrors.WithMessage(apperrors.ErrUnauthorized, "External sign-in failed"), err))
		return
	}

	user, err := h.userService.FindOrCreateExternal(c.Request.Context(), h.provider.Name(), *profile)
	if err != nil {
		respondWithError(c, successEnvelope, err)
		return
	}
	h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		respondWithError(c, successEnvelope, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.JSON(status, AuthResponse{Success: true, Token: token, User: user})
}
