package handler

import (
	"net/http"

	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/middleware"
	"northlinktelecom.com/cmd/server/models"
	"northlinktelecom.com/cmd/server/slug"
)

// MediaGateway is the data-access contract the media endpoints need.
// Satisfied by database.MediaRepository.
type MediaGateway interface {
	GetAll(actor *auth.Identity) ([]models.Media, error)
	GetPublished() ([]models.Media, error)
	GetByID(id string) (*models.Media, error)
	GetBySlugPublished(slug string) (*models.Media, error)
	Create(actor *auth.Identity, fields map[string]interface{}) (*models.Media, error)
	Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Media, error)
	SetPublished(actor *auth.Identity, id string, published bool) (*models.Media, error)
	Delete(actor *auth.Identity, id string) error
}

// MediaHandler serves the /api/media routes
type MediaHandler struct {
	gateway MediaGateway
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(gateway MediaGateway) *MediaHandler {
	return &MediaHandler{gateway: gateway}
}

// ListPublished handles GET /api/media, the public listing of published
// items only
func (h *MediaHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	media, err := h.gateway.GetPublished()
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve media")
		return
	}
	respondJSON(w, http.StatusOK, media)
}

// ListAll handles GET /api/media/all, the admin listing with drafts.
// The route is wrapped in RequireRole.
func (h *MediaHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	media, err := h.gateway.GetAll(middleware.IdentityFrom(r.Context()))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve media")
		return
	}
	respondJSON(w, http.StatusOK, media)
}

// Get handles GET /api/media/{id}
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.gateway.GetByID(r.PathValue("id"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve media item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// GetBySlug handles GET /api/media/slug/{slug}; drafts resolve to 404
func (h *MediaHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	item, err := h.gateway.GetBySlugPublished(r.PathValue("slug"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve media item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

type mediaRequest struct {
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	Summary       *string             `json:"summary"`
	Content       string              `json:"content"`
	FeaturedImage *string             `json:"featured_image"`
	Attachments   []models.Attachment `json:"attachments"`
}

// Create handles POST /api/media. New items always start as drafts;
// publishing is a separate step.
func (h *MediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req mediaRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Title == "" || req.Content == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "title and content are required")
		return
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Title)
	}
	if req.Attachments == nil {
		req.Attachments = []models.Attachment{}
	}

	fields := map[string]interface{}{
		"title":       req.Title,
		"slug":        req.Slug,
		"content":     req.Content,
		"attachments": req.Attachments,
	}
	if req.Summary != nil {
		fields["summary"] = *req.Summary
	}
	if req.FeaturedImage != nil {
		fields["featured_image"] = *req.FeaturedImage
	}

	item, err := h.gateway.Create(middleware.IdentityFrom(r.Context()), fields)
	if err != nil {
		respondRepoError(w, err, "Failed to create media item")
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/media/{id}
func (h *MediaHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if !decodeBody(w, r, &body) {
		return
	}

	fields := filterFields(body, "title", "slug", "summary", "content", "featured_image", "attachments")
	if len(fields) == 0 {
		respondError(w, http.StatusBadRequest, "missing_fields", "No updatable fields in request body")
		return
	}

	item, err := h.gateway.Update(middleware.IdentityFrom(r.Context()), r.PathValue("id"), fields)
	if err != nil {
		respondRepoError(w, err, "Failed to update media item")
		return
	}

	respondJSON(w, http.StatusOK, item)
}

type publishRequest struct {
	Published *bool `json:"published"`
}

// Publish handles PATCH /api/media/{id}/publish, flipping the publish flag
// and stamping updated_at
func (h *MediaHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Published == nil {
		respondError(w, http.StatusBadRequest, "missing_fields", "published is required")
		return
	}

	item, err := h.gateway.SetPublished(middleware.IdentityFrom(r.Context()), r.PathValue("id"), *req.Published)
	if err != nil {
		respondRepoError(w, err, "Failed to update publish state")
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/media/{id}
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gateway.Delete(middleware.IdentityFrom(r.Context()), r.PathValue("id")); err != nil {
		respondRepoError(w, err, "Failed to delete media item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
