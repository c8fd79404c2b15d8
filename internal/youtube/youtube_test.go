package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch URL with extra params", "https://www.youtube.com/watch?v=abc123&t=42s", "abc123", false},
		{"bare host", "https://youtube.com/watch?v=abc123", "abc123", false},
		{"mobile host", "https://m.youtube.com/watch?v=abc123", "abc123", false},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"short URL with trailing slash", "https://youtu.be/abc123/", "abc123", false},
		{"surrounding whitespace", "  https://youtu.be/abc123  ", "abc123", false},
		{"watch URL without v param", "https://www.youtube.com/watch", "", true},
		{"short URL without path", "https://youtu.be/", "", true},
		{"other site", "https://vimeo.com/12345", "", true},
		{"not a URL at all", "first steps video", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoID(tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Errorf("ParseVideoID(%q) error = %v, want ErrInvalidURL", tt.url, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVideoID(%q) failed: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("ParseVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestFetchTitle(t *testing.T) {
	t.Run("decodes the title", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("format"); got != "json" {
				t.Errorf("format = %q, want json", got)
			}
			w.Write([]byte(`{"title": "First Steps", "author_name": "someone"}`))
		}))
		defer srv.Close()

		c := NewClient()
		c.BaseURL = srv.URL

		title, err := c.FetchTitle(context.Background(), "abc123")
		if err != nil {
			t.Fatalf("FetchTitle failed: %v", err)
		}
		if title != "First Steps" {
			t.Errorf("title = %q, want %q", title, "First Steps")
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewClient()
		c.BaseURL = srv.URL

		if _, err := c.FetchTitle(context.Background(), "gone"); err == nil {
			t.Error("Expected error for 404 response")
		}
	})
}
