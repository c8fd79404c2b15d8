package service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/mohitkumar/harvin/internal/auth"
	"github.com/mohitkumar/harvin/internal/httpx"
	"github.com/mohitkumar/harvin/internal/models"
	"github.com/mohitkumar/harvin/internal/storage"
)

// RegistryService handles admin management of the guest allow-list.
type RegistryService struct {
	store storage.Store
}

// NewRegistryService creates a new RegistryService with the given storage backend.
func NewRegistryService(store storage.Store) *RegistryService {
	return &RegistryService{store: store}
}

type guestRow struct {
	ID        string `json:"id"`
	Disabled  bool   `json:"disabled"`
	CreatedAt int64  `json:"created_at"`
}

func toGuestRow(g *models.Guest) guestRow {
	return guestRow{ID: g.ID, Disabled: g.Disabled, CreatedAt: g.CreatedAt}
}

// List returns all registry entries, newest first. Disabled entries are
// included so admins can review and re-enable them.
func (s *RegistryService) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	guests, err := s.store.ListGuests(r.Context())
	if err != nil {
		slog.Error("ListGuests failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([]guestRow, len(guests))
	for i, g := range guests {
		rows[i] = toGuestRow(g)
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"guests": rows})
}

// Add registers a new guest ID, enabled by default.
func (s *RegistryService) Add(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	trimmed := strings.TrimSpace(input.ID)
	if trimmed == "" {
		httpx.WriteError(w, http.StatusBadRequest, auth.ErrEmptyGuestID.Error())
		return
	}

	guest := &models.Guest{ID: trimmed}
	if err := s.store.CreateGuest(r.Context(), guest); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			httpx.WriteError(w, http.StatusConflict, err.Error())
			return
		}
		slog.Error("CreateGuest failed", "guest_id", trimmed, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Guest added", "guest_id", guest.ID)
	httpx.WriteJSON(w, http.StatusCreated, toGuestRow(guest))
}

// Remove deletes a guest ID. Removing an unknown ID succeeds silently.
func (s *RegistryService) Remove(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if err := s.store.DeleteGuest(r.Context(), id); err != nil {
		slog.Error("DeleteGuest failed", "guest_id", id, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Guest removed", "guest_id", id)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
}

// SetDisabled toggles the disabled flag on an entry. Disabled IDs reject new
// logins but already-issued guest tokens keep working until logout.
func (s *RegistryService) SetDisabled(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var input struct {
		Disabled bool `json:"disabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := s.store.SetGuestDisabled(r.Context(), id, input.Disabled); err != nil {
		slog.Error("SetGuestDisabled failed", "guest_id", id, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Guest flag updated", "guest_id", id, "disabled", input.Disabled)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "disabled": input.Disabled})
}
