package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mohitkumar/harvin/internal/models"
)

// CreateVideoLink persists a new video link to the database.
func (s *SQLiteStore) CreateVideoLink(ctx context.Context, link *models.VideoLink) error {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	if link.CreatedAt == 0 {
		link.CreatedAt = time.Now().Unix()
	}

	var title interface{} = nil
	if link.Title != "" {
		title = link.Title
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO video_links (id, video_id, title, created_at) VALUES (?, ?, ?, ?)",
		link.ID, link.VideoID, title, link.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert video link: %w", err)
	}

	return nil
}

// ListVideoLinks returns all video links, newest first.
func (s *SQLiteStore) ListVideoLinks(ctx context.Context) ([]*models.VideoLink, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, video_id, title, created_at FROM video_links ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list video links: %w", err)
	}
	defer rows.Close()

	var links []*models.VideoLink
	for rows.Next() {
		link := &models.VideoLink{}
		var title sql.NullString
		if err := rows.Scan(&link.ID, &link.VideoID, &title, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan video link: %w", err)
		}
		if title.Valid {
			link.Title = title.String
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate video links: %w", err)
	}

	return links, nil
}

// DeleteVideoLink removes a video link by ID.
func (s *SQLiteStore) DeleteVideoLink(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM video_links WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete video link: %w", err)
	}
	return nil
}
