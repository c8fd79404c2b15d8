package service

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mohitkumar/harvin/internal/auth"
	"github.com/mohitkumar/harvin/internal/storage/sqlite"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct-horse"
)

// testEnv wires the services against a throwaway SQLite database, the same
// way cmd/server does at startup.
type testEnv struct {
	store    *sqlite.SQLiteStore
	jwt      *auth.JWTManager
	resolver *auth.Resolver
	auth     *AuthService
	registry *RegistryService
	ledger   *LedgerService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "harvin-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret-key", time.Hour)
	resolver := auth.NewResolver(jwtManager)
	guests := auth.NewGuestAuthenticator(store)
	admins := auth.NewPasswordAuthenticator(store)

	if _, err := admins.Bootstrap(t.Context(), testAdminEmail, testAdminPassword); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	start := time.Date(2026, time.January, 22, 0, 0, 0, 0, time.UTC)
	return &testEnv{
		store:    store,
		jwt:      jwtManager,
		resolver: resolver,
		auth:     NewAuthService(guests, admins, jwtManager, resolver, slog.Default()),
		registry: NewRegistryService(store),
		ledger:   NewLedgerService(store, start, 7500),
	}
}

func jsonRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	r.Header.Set("Content-Type", "application/json")
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return out
}

func responseCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
