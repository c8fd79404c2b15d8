package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mohitkumar/harvin/internal/models"
)

func newRequest(t *testing.T, cookies ...*http.Cookie) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestResolve(t *testing.T) {
	jwtManager := NewJWTManager("test-secret-key", time.Hour)
	resolver := NewResolver(jwtManager)

	adminToken, err := jwtManager.Generate(&models.Admin{ID: "admin-1", Email: "admin@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("no cookies means anonymous", func(t *testing.T) {
		identity := resolver.Resolve(newRequest(t))
		if identity.Kind != Anonymous {
			t.Errorf("Kind = %v, want Anonymous", identity.Kind)
		}
		if identity.LoggedIn() {
			t.Error("anonymous identity reports logged in")
		}
	})

	t.Run("guest cookie alone", func(t *testing.T) {
		identity := resolver.Resolve(newRequest(t, &http.Cookie{Name: GuestCookie, Value: "fam1"}))
		if identity.Kind != Guest {
			t.Errorf("Kind = %v, want Guest", identity.Kind)
		}
		if identity.GuestID != "fam1" {
			t.Errorf("GuestID = %q, want %q", identity.GuestID, "fam1")
		}
		if identity.IsAdmin() {
			t.Error("guest identity reports admin")
		}
	})

	t.Run("valid admin token alone", func(t *testing.T) {
		identity := resolver.Resolve(newRequest(t, &http.Cookie{Name: AdminCookie, Value: adminToken}))
		if identity.Kind != Admin {
			t.Errorf("Kind = %v, want Admin", identity.Kind)
		}
		if identity.Claims == nil || identity.Claims.AdminID != "admin-1" {
			t.Errorf("Claims = %+v, want AdminID admin-1", identity.Claims)
		}
	})

	t.Run("admin takes precedence over guest", func(t *testing.T) {
		identity := resolver.Resolve(newRequest(t,
			&http.Cookie{Name: GuestCookie, Value: "fam1"},
			&http.Cookie{Name: AdminCookie, Value: adminToken},
		))
		if identity.Kind != Admin {
			t.Errorf("Kind = %v, want Admin", identity.Kind)
		}
		// Both channels stay visible for the auth-state snapshot.
		if identity.GuestID != "fam1" {
			t.Errorf("GuestID = %q, want %q", identity.GuestID, "fam1")
		}
	})

	t.Run("invalid admin token falls back to guest", func(t *testing.T) {
		identity := resolver.Resolve(newRequest(t,
			&http.Cookie{Name: GuestCookie, Value: "fam1"},
			&http.Cookie{Name: AdminCookie, Value: "garbage"},
		))
		if identity.Kind != Guest {
			t.Errorf("Kind = %v, want Guest", identity.Kind)
		}
	})
}
