package handler

import (
	"net/http"

	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/middleware"
	"northlinktelecom.com/cmd/server/models"
	"northlinktelecom.com/cmd/server/slug"
)

// CategoryGateway is the data-access contract the category endpoints need.
// Satisfied by database.CategoryRepository.
type CategoryGateway interface {
	GetAll(divisionID string) ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	GetBySlug(slug, divisionID string) (*models.Category, error)
	Create(actor *auth.Identity, fields map[string]interface{}) (*models.Category, error)
	Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Category, error)
	Delete(actor *auth.Identity, id string) error
}

// CategoryHandler serves the /api/categories routes
type CategoryHandler struct {
	gateway CategoryGateway
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(gateway CategoryGateway) *CategoryHandler {
	return &CategoryHandler{gateway: gateway}
}

// List handles GET /api/categories with an optional ?division= filter
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.gateway.GetAll(r.URL.Query().Get("division"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// Get handles GET /api/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.gateway.GetByID(r.PathValue("id"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve category")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// GetBySlug handles GET /api/categories/slug/{slug}. Category slugs are
// only unique within a division, so the ?division= scope is mandatory.
func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	divisionID := r.URL.Query().Get("division")
	if divisionID == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "division query parameter is required")
		return
	}

	category, err := h.gateway.GetBySlug(r.PathValue("slug"), divisionID)
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve category")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

type categoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	DivisionID  string  `json:"division_id"`
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Name == "" || req.DivisionID == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "name and division_id are required")
		return
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Name)
	}

	fields := map[string]interface{}{
		"name":        req.Name,
		"slug":        req.Slug,
		"division_id": req.DivisionID,
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	category, err := h.gateway.Create(middleware.IdentityFrom(r.Context()), fields)
	if err != nil {
		respondRepoError(w, err, "Failed to create category")
		return
	}

	respondJSON(w, http.StatusCreated, category)
}

// Update handles PUT /api/categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if !decodeBody(w, r, &body) {
		return
	}

	fields := filterFields(body, "name", "slug", "description", "division_id")
	if len(fields) == 0 {
		respondError(w, http.StatusBadRequest, "missing_fields", "No updatable fields in request body")
		return
	}

	category, err := h.gateway.Update(middleware.IdentityFrom(r.Context()), r.PathValue("id"), fields)
	if err != nil {
		respondRepoError(w, err, "Failed to update category")
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// Delete handles DELETE /api/categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gateway.Delete(middleware.IdentityFrom(r.Context()), r.PathValue("id")); err != nil {
		respondRepoError(w, err, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
