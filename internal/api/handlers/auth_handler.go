package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"wardrobe-api/internal/apperrors"
	"wardrobe-api/internal/auth"
	"wardrobe-api/internal/models"
	"wardrobe-api/internal/services"
)

// AuthHandler handles HTTP requests for signup, signin and the example
// bearer-gated secret route.
type AuthHandler struct {
	users  services.UserServiceProvider
	events services.EventServiceProvider
	tokens *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, events services.EventServiceProvider, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, events: events, tokens: tokens}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SignupResponse wraps the created user. The password field of the user holds
// the bcrypt digest, included by contract.
type SignupResponse struct {
	User models.User `json:"user"`
}

// SigninResponse carries the authenticated user and a freshly minted bearer
// token for subsequent gated calls.
type SigninResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondError(w, fmt.Errorf("%w: malformed request body", apperrors.ErrValidation))
		return
	}

	user, err := h.users.CreateUser(payload.Username, payload.Password, payload.Role)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		RespondError(w, err)
		return
	}

	h.audit("auth.signup", "info", fmt.Sprintf("user %s signed up", user.Username), &user.Username)
	RespondJSON(w, http.StatusCreated, SignupResponse{User: user})
}

// Signin handles basic-auth authentication and issues a bearer token.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		h.audit("auth.signin", "warn", "signin with missing or malformed basic credentials", nil)
		RespondError(w, fmt.Errorf("%w: missing basic credentials", apperrors.ErrAuthentication))
		return
	}

	user, err := h.users.AuthenticateUser(username, password)
	if err != nil {
		log.Warn().Str("username", username).Msg("Failed authentication attempt")
		h.audit("auth.signin", "warn", fmt.Sprintf("failed signin for %s", username), nil)
		RespondError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("Failed to issue token")
		RespondError(w, fmt.Errorf("failed to issue token"))
		return
	}

	h.audit("auth.signin", "info", fmt.Sprintf("user %s signed in", user.Username), &user.Username)
	RespondJSON(w, http.StatusOK, SigninResponse{User: user, Token: token})
}

// Secret handles the example gated route. The bearer guard has already
// verified the token by the time this runs.
func (h *AuthHandler) Secret(w http.ResponseWriter, r *http.Request) {
	msg := "Welcome to the secret area"
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		msg = fmt.Sprintf("Welcome to the secret area, %s", claims.Username)
	}
	RespondJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// audit records an audit-trail entry; failures are logged and never fail the
// request.
func (h *AuthHandler) audit(eventType, level, message string, actor *string) {
	if err := h.events.RecordEvent(eventType, level, message, actor); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("Failed to record audit event")
	}
}
