package middleware

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mohitkumar/harvin/internal/auth"
	"github.com/mohitkumar/harvin/internal/httpx"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const identityKey contextKey = "identity"

// GetIdentity extracts the resolved identity from the context.
// Returns an anonymous identity if none was stored.
func GetIdentity(ctx context.Context) auth.Identity {
	identity, _ := ctx.Value(identityKey).(auth.Identity)
	return identity
}

// WithIdentity resolves the caller's identity on every request and stores it
// in the context. Gating decisions downstream read this single snapshot, so
// a session revoked mid-visit is only enforced on the next request.
func WithIdentity(resolver *auth.Resolver, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		identity := resolver.Resolve(r)
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireLogin gates a route to guests and admins. Anonymous callers get 401.
//
// The guest channel is trusted as-is here: possession of a guest cookie is
// enough, even if the ID has since been disabled or removed from the registry.
func RequireLogin(resolver *auth.Resolver, next httprouter.Handle) httprouter.Handle {
	return WithIdentity(resolver, func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !GetIdentity(r.Context()).LoggedIn() {
			httpx.WriteError(w, http.StatusUnauthorized, "login required")
			return
		}
		next(w, r, ps)
	})
}

// RequireAdmin gates a route to admins only. Anonymous and guest callers get
// 401 with a pointer to the login entry point.
func RequireAdmin(resolver *auth.Resolver, next httprouter.Handle) httprouter.Handle {
	return WithIdentity(resolver, func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !GetIdentity(r.Context()).IsAdmin() {
			w.Header().Set("Location", "/login")
			httpx.WriteError(w, http.StatusUnauthorized, "admin login required")
			return
		}
		next(w, r, ps)
	})
}
