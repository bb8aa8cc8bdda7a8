package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/labsample-backend/internal/domain"
)

type tagService interface {
	List(ctx context.Context, limit, offset int) ([]domain.RFIDTag, error)
	Create(ctx context.Context, uid string) (*domain.RFIDTag, error)
	SetActive(ctx context.Context, uid string, active bool) (*domain.RFIDTag, error)
	Delete(ctx context.Context, uid string) error
}

// TagHandler serves the RFID tag registry.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tags")}
}

type createTagRequest struct {
	UID string `json:"uid"`
}

type patchTagRequest struct {
	IsActive *bool `json:"is_active"`
}

// List handles GET /api/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.List(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]tagResponse, len(tags))
	for i := range tags {
		out[i] = toTagResponse(&tags[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Create handles POST /api/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Create(r.Context(), req.UID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTagResponse(t))
}

// Patch handles PATCH /api/tags/{uid}.
func (h *TagHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req patchTagRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if req.IsActive == nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("is_active", "required"))
		return
	}

	t, err := h.svc.SetActive(r.Context(), chi.URLParam(r, "uid"), *req.IsActive)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponse(t))
}

// Delete handles DELETE /api/tags/{uid}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "uid")); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
