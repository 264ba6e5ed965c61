package handler

import (
	"net/http"

	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/middleware"
	"northlinktelecom.com/cmd/server/models"
	"northlinktelecom.com/cmd/server/slug"
)

// DivisionGateway is the data-access contract the division endpoints need.
// Satisfied by database.DivisionRepository.
type DivisionGateway interface {
	GetAll() ([]models.Division, error)
	GetByID(id string) (*models.Division, error)
	GetBySlug(slug string) (*models.Division, error)
	Create(actor *auth.Identity, fields map[string]interface{}) (*models.Division, error)
	Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Division, error)
	Delete(actor *auth.Identity, id string) error
}

// DivisionHandler serves the /api/divisions routes
type DivisionHandler struct {
	gateway DivisionGateway
}

// NewDivisionHandler creates a new DivisionHandler
func NewDivisionHandler(gateway DivisionGateway) *DivisionHandler {
	return &DivisionHandler{gateway: gateway}
}

// List handles GET /api/divisions
func (h *DivisionHandler) List(w http.ResponseWriter, r *http.Request) {
	divisions, err := h.gateway.GetAll()
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve divisions")
		return
	}
	respondJSON(w, http.StatusOK, divisions)
}

// Get handles GET /api/divisions/{id}
func (h *DivisionHandler) Get(w http.ResponseWriter, r *http.Request) {
	division, err := h.gateway.GetByID(r.PathValue("id"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve division")
		return
	}
	respondJSON(w, http.StatusOK, division)
}

// GetBySlug handles GET /api/divisions/slug/{slug}
func (h *DivisionHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	division, err := h.gateway.GetBySlug(r.PathValue("slug"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve division")
		return
	}
	respondJSON(w, http.StatusOK, division)
}

type divisionRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Create handles POST /api/divisions
func (h *DivisionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req divisionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Name == "" || req.Description == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "name and description are required")
		return
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Name)
	}

	division, err := h.gateway.Create(middleware.IdentityFrom(r.Context()), map[string]interface{}{
		"name":        req.Name,
		"slug":        req.Slug,
		"description": req.Description,
	})
	if err != nil {
		respondRepoError(w, err, "Failed to create division")
		return
	}

	respondJSON(w, http.StatusCreated, division)
}

// Update handles PUT /api/divisions/{id}
func (h *DivisionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if !decodeBody(w, r, &body) {
		return
	}

	fields := filterFields(body, "name", "slug", "description")
	if len(fields) == 0 {
		respondError(w, http.StatusBadRequest, "missing_fields", "No updatable fields in request body")
		return
	}

	division, err := h.gateway.Update(middleware.IdentityFrom(r.Context()), r.PathValue("id"), fields)
	if err != nil {
		respondRepoError(w, err, "Failed to update division")
		return
	}

	respondJSON(w, http.StatusOK, division)
}

// Delete handles DELETE /api/divisions/{id}
func (h *DivisionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gateway.Delete(middleware.IdentityFrom(r.Context()), r.PathValue("id")); err != nil {
		respondRepoError(w, err, "Failed to delete division")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
