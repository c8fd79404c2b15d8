package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mohitkumar/harvin/internal/auth"
	"github.com/mohitkumar/harvin/internal/httpx"
)

// AuthService handles the login, logout and auth-state endpoints.
type AuthService struct {
	guests   *auth.GuestAuthenticator
	admins   *auth.PasswordAuthenticator
	jwt      *auth.JWTManager
	resolver *auth.Resolver
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(guests *auth.GuestAuthenticator, admins *auth.PasswordAuthenticator, jwt *auth.JWTManager, resolver *auth.Resolver, logger *slog.Logger) *AuthService {
	return &AuthService{
		guests:   guests,
		admins:   admins,
		jwt:      jwt,
		resolver: resolver,
		logger:   logger,
	}
}

// authState mirrors the snapshot shape the frontend consumes.
type authState struct {
	CurrentUserID *string `json:"currentUserId"`
	IsAdmin       bool    `json:"isAdmin"`
}

// GuestLogin validates a guest ID against the registry and, on success,
// persists it as the guest token. An active admin session is left untouched.
func (s *AuthService) GuestLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	id, err := s.guests.Verify(r.Context(), input.ID)
	if err != nil {
		s.logger.Warn("Guest login failed", "error", err)
		switch {
		case errors.Is(err, auth.ErrEmptyGuestID):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrGuestNotFound):
			httpx.WriteError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, auth.ErrGuestDisabled):
			httpx.WriteError(w, http.StatusForbidden, err.Error())
		default:
			httpx.WriteError(w, http.StatusBadGateway, auth.ErrRegistryLookup.Error())
		}
		return
	}

	auth.SetGuestCookie(w, id)
	s.logger.Info("Guest logged in", "guest_id", id)
	httpx.WriteJSON(w, http.StatusOK, authState{CurrentUserID: &id, IsAdmin: false})
}

// AdminLogin verifies admin credentials and issues a session token.
// The guest token is cleared: admin identity takes precedence from here on.
func (s *AuthService) AdminLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	admin, err := s.admins.Authenticate(r.Context(), input.Email, input.Password)
	if err != nil {
		s.logger.Warn("Admin login failed", "email", input.Email)
		// The authenticator's message is surfaced verbatim.
		httpx.WriteError(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := s.jwt.Generate(admin)
	if err != nil {
		s.logger.Error("Failed to generate token", "admin_id", admin.ID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	auth.SetAdminCookie(w, token, s.jwt.TokenDuration())
	auth.ClearGuestCookie(w)
	s.logger.Info("Admin logged in", "admin_id", admin.ID, "email", admin.Email)
	httpx.WriteJSON(w, http.StatusOK, authState{IsAdmin: true})
}

// Logout clears both identity channels unconditionally, regardless of which
// one was active.
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	auth.ClearGuestCookie(w)
	auth.ClearAdminCookie(w)
	s.logger.Info("Logout request")
	httpx.WriteJSON(w, http.StatusOK, authState{})
}

// State reports the current identity snapshot. The guest channel is reported
// as held by the client; it is not re-validated against the registry here.
func (s *AuthService) State(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	identity := s.resolver.Resolve(r)

	state := authState{IsAdmin: identity.IsAdmin()}
	if identity.GuestID != "" {
		state.CurrentUserID = &identity.GuestID
	}
	httpx.WriteJSON(w, http.StatusOK, state)
}
