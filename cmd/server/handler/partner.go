package handler

import (
	"net/http"

	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/middleware"
	"northlinktelecom.com/cmd/server/models"
	"northlinktelecom.com/cmd/server/slug"
)

// PartnerGateway is the data-access contract the partner endpoints need.
// Satisfied by database.PartnerRepository.
type PartnerGateway interface {
	GetAll() ([]models.Partner, error)
	GetByID(id string) (*models.Partner, error)
	GetBySlug(slug string) (*models.Partner, error)
	Create(actor *auth.Identity, fields map[string]interface{}) (*models.Partner, error)
	Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Partner, error)
	Delete(actor *auth.Identity, id string) error
}

// PartnerHandler serves the /api/partners routes
type PartnerHandler struct {
	gateway PartnerGateway
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(gateway PartnerGateway) *PartnerHandler {
	return &PartnerHandler{gateway: gateway}
}

// List handles GET /api/partners, returned in display order
func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	partners, err := h.gateway.GetAll()
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve partners")
		return
	}
	respondJSON(w, http.StatusOK, partners)
}

// Get handles GET /api/partners/{id}
func (h *PartnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	partner, err := h.gateway.GetByID(r.PathValue("id"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve partner")
		return
	}
	respondJSON(w, http.StatusOK, partner)
}

// GetBySlug handles GET /api/partners/slug/{slug}
func (h *PartnerHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	partner, err := h.gateway.GetBySlug(r.PathValue("slug"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve partner")
		return
	}
	respondJSON(w, http.StatusOK, partner)
}

type partnerRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Rank        int    `json:"rank"`
}

// Create handles POST /api/partners
func (h *PartnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req partnerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Name == "" || req.Image == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "name and image are required")
		return
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Name)
	}

	partner, err := h.gateway.Create(middleware.IdentityFrom(r.Context()), map[string]interface{}{
		"name":        req.Name,
		"slug":        req.Slug,
		"image":       req.Image,
		"description": req.Description,
		"link":        req.Link,
		"rank":        req.Rank,
	})
	if err != nil {
		respondRepoError(w, err, "Failed to create partner")
		return
	}

	respondJSON(w, http.StatusCreated, partner)
}

// Update handles PUT /api/partners/{id}
func (h *PartnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if !decodeBody(w, r, &body) {
		return
	}

	fields := filterFields(body, "name", "slug", "image", "description", "link", "rank")
	if len(fields) == 0 {
		respondError(w, http.StatusBadRequest, "missing_fields", "No updatable fields in request body")
		return
	}

	partner, err := h.gateway.Update(middleware.IdentityFrom(r.Context()), r.PathValue("id"), fields)
	if err != nil {
		respondRepoError(w, err, "Failed to update partner")
		return
	}

	respondJSON(w, http.StatusOK, partner)
}

// Delete handles DELETE /api/partners/{id}
func (h *PartnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gateway.Delete(middleware.IdentityFrom(r.Context()), r.PathValue("id")); err != nil {
		respondRepoError(w, err, "Failed to delete partner")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
