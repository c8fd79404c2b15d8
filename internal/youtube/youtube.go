// Package youtube resolves video IDs and display titles from YouTube URLs.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrInvalidURL = errors.New("not a recognized YouTube URL")

// ParseVideoID extracts the video identifier from the two supported URL
// shapes: youtube.com/watch?v=ID and youtu.be/ID.
func ParseVideoID(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidURL
	}

	host := u.Hostname()
	if strings.Contains(host, "youtube.com") {
		if v := u.Query().Get("v"); v != "" {
			return v, nil
		}
		return "", ErrInvalidURL
	}
	if host == "youtu.be" {
		if id := strings.Trim(u.Path, "/"); id != "" {
			return id, nil
		}
	}
	return "", ErrInvalidURL
}

// Client fetches video titles from the public oEmbed endpoint.
// No API key is needed.
type Client struct {
	// BaseURL of the oEmbed host. Overridable so tests can point at a stub.
	BaseURL string

	http *http.Client
}

// NewClient creates a client with a short request timeout.
func NewClient() *Client {
	return &Client{
		BaseURL: "https://www.youtube.com",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchTitle looks up the display title for a video ID.
// Callers treat failures as non-fatal: a video without a title is fine.
func (c *Client) FetchTitle(ctx context.Context, videoID string) (string, error) {
	watchURL := fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
	oembedURL := fmt.Sprintf("%s/oembed?url=%s&format=json", c.BaseURL, url.QueryEscape(watchURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, oembedURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build oembed request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("oembed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oembed returned status %d", resp.StatusCode)
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode oembed response: %w", err)
	}

	return body.Title, nil
}
