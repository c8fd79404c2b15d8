package models

// VideoLink represents a YouTube video shown in the gallery.
type VideoLink struct {
	// ID is the unique identifier for the row (UUID format).
	ID string

	// VideoID is the YouTube video identifier parsed from the pasted URL.
	VideoID string

	// Title is the display title fetched from the oEmbed endpoint.
	// Empty when the lookup failed or was skipped (stored as NULL).
	Title string

	// CreatedAt is the Unix timestamp when the link was added.
	CreatedAt int64
}
