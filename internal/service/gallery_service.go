package service

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"sort"

	"github.com/julienschmidt/httprouter"

	"github.com/mohitkumar/harvin/internal/httpx"
	"github.com/mohitkumar/harvin/internal/middleware"
	"github.com/mohitkumar/harvin/internal/models"
	"github.com/mohitkumar/harvin/internal/storage"
	"github.com/mohitkumar/harvin/internal/youtube"
)

// GalleryService handles the photo/video listing endpoints.
//
// The gate controls what is listed, not how files are fetched: image bytes
// are served from a plain static route, mirroring the public object URLs of
// the hosted blob store this replaced.
type GalleryService struct {
	store        storage.Store
	galleryDir   string
	publicPhotos []string
	yt           *youtube.Client
}

// NewGalleryService creates a new GalleryService.
// publicPhotos is the fixed preview subset shown to anonymous visitors.
func NewGalleryService(store storage.Store, galleryDir string, publicPhotos []string, yt *youtube.Client) *GalleryService {
	return &GalleryService{
		store:        store,
		galleryDir:   galleryDir,
		publicPhotos: publicPhotos,
		yt:           yt,
	}
}

type videoRow struct {
	ID        string  `json:"id"`
	VideoID   string  `json:"video_id"`
	Title     *string `json:"title"`
	CreatedAt int64   `json:"created_at"`
}

func toVideoRow(v *models.VideoLink) videoRow {
	row := videoRow{ID: v.ID, VideoID: v.VideoID, CreatedAt: v.CreatedAt}
	if v.Title != "" {
		title := v.Title
		row.Title = &title
	}
	return row
}

// Preview returns the fixed public photo subset. Visible to everyone.
func (s *GalleryService) Preview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"photos": s.publicPhotos})
}

// List returns the full gallery: public photos, the protected file set, and
// the video links, newest first. Mounted behind the guest-or-admin gate.
func (s *GalleryService) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	files, err := s.listFiles()
	if err != nil {
		slog.Error("Gallery listing failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	videos, err := s.store.ListVideoLinks(r.Context())
	if err != nil {
		slog.Error("ListVideoLinks failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	videoRows := make([]videoRow, len(videos))
	for i, v := range videos {
		videoRows[i] = toVideoRow(v)
	}

	identity := middleware.GetIdentity(r.Context())
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"photos":  s.publicPhotos,
		"files":   files,
		"videos":  videoRows,
		"isAdmin": identity.IsAdmin(),
	})
}

// listFiles enumerates the protected gallery directory. A missing directory
// is treated as an empty gallery, not an error.
func (s *GalleryService) listFiles() ([]string, error) {
	entries, err := os.ReadDir(s.galleryDir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// ListVideos returns all video links, newest first.
// Mounted behind the guest-or-admin gate.
func (s *GalleryService) ListVideos(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	videos, err := s.store.ListVideoLinks(r.Context())
	if err != nil {
		slog.Error("ListVideoLinks failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([]videoRow, len(videos))
	for i, v := range videos {
		rows[i] = toVideoRow(v)
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"videos": rows})
}

// AddVideo parses a pasted YouTube URL, best-effort fetches the title from
// the oEmbed endpoint, and stores the link. Admin only.
func (s *GalleryService) AddVideo(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	videoID, err := youtube.ParseVideoID(input.URL)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Please paste a valid YouTube URL")
		return
	}

	// A failed title lookup never blocks the insert.
	title, err := s.yt.FetchTitle(r.Context(), videoID)
	if err != nil {
		slog.Warn("Title lookup failed", "video_id", videoID, "error", err)
		title = ""
	}

	link := &models.VideoLink{VideoID: videoID, Title: title}
	if err := s.store.CreateVideoLink(r.Context(), link); err != nil {
		slog.Error("CreateVideoLink failed", "video_id", videoID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Video link added", "video_id", videoID, "title", title)
	httpx.WriteJSON(w, http.StatusCreated, toVideoRow(link))
}

// RemoveVideo deletes a video link by row ID. Admin only.
func (s *GalleryService) RemoveVideo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if err := s.store.DeleteVideoLink(r.Context(), id); err != nil {
		slog.Error("DeleteVideoLink failed", "link_id", id, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Video link removed", "link_id", id)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
}
