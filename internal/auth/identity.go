package auth

import (
	"net/http"
	"time"
)

// Cookie names for the two identity channels. The guest cookie holds the
// allow-listed ID string as-is; the admin cookie holds a signed session token.
const (
	GuestCookie = "harvin_guest"
	AdminCookie = "harvin_admin"
)

// Kind classifies the caller for authorization decisions.
type Kind int

const (
	// Anonymous is a visitor with neither identity channel present.
	Anonymous Kind = iota
	// Guest is a visitor holding a guest ID token.
	Guest
	// Admin is a visitor holding a valid admin session token.
	// Admin takes precedence over Guest when both channels are present.
	Admin
)

// Identity is the per-request snapshot of both identity channels.
//
// Kind drives authorization (admin precedence applies). GuestID carries the
// raw guest channel regardless of Kind so the auth-state endpoint can report
// both channels independently, matching the two-cookie model.
type Identity struct {
	Kind    Kind
	GuestID string
	Claims  *Claims
}

// IsAdmin reports whether the caller holds a valid admin session.
func (i Identity) IsAdmin() bool {
	return i.Kind == Admin
}

// LoggedIn reports whether the caller may see gated gallery content.
func (i Identity) LoggedIn() bool {
	return i.Kind == Guest || i.Kind == Admin
}

// Resolver produces an Identity snapshot from an incoming request.
type Resolver struct {
	jwt *JWTManager
}

// NewResolver creates a resolver that validates admin tokens with the given manager.
func NewResolver(jwt *JWTManager) *Resolver {
	return &Resolver{jwt: jwt}
}

// Resolve reads both identity channels from the request cookies.
//
// The guest cookie is taken at face value: it is not re-checked against the
// registry, so a guest whose ID was disabled or removed after login keeps
// access until logout clears the cookie. The admin token is fully validated
// on every call and wins over any guest cookie.
func (r *Resolver) Resolve(req *http.Request) Identity {
	identity := Identity{Kind: Anonymous}

	if c, err := req.Cookie(GuestCookie); err == nil && c.Value != "" {
		identity.GuestID = c.Value
		identity.Kind = Guest
	}

	if c, err := req.Cookie(AdminCookie); err == nil && c.Value != "" {
		if claims, err := r.jwt.Validate(c.Value); err == nil {
			identity.Claims = claims
			identity.Kind = Admin
		}
	}

	return identity
}

// SetGuestCookie persists the guest ID token, overwriting any previous value.
func SetGuestCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     GuestCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
	})
}

// ClearGuestCookie removes the guest ID token.
func ClearGuestCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     GuestCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// SetAdminCookie persists the admin session token.
func SetAdminCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

// ClearAdminCookie removes the admin session token.
func ClearAdminCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
