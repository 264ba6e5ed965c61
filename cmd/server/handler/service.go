package handler

import (
	"net/http"

	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/middleware"
	"northlinktelecom.com/cmd/server/models"
	"northlinktelecom.com/cmd/server/slug"
)

// ServiceGateway is the data-access contract the service endpoints need.
// Satisfied by database.ServiceRepository.
type ServiceGateway interface {
	GetAll(divisionID string) ([]models.Service, error)
	GetByCategory(categoryID string) ([]models.Service, error)
	GetByID(id string) (*models.Service, error)
	GetBySlug(slug string) (*models.Service, error)
	Create(actor *auth.Identity, fields map[string]interface{}) (*models.Service, error)
	Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Service, error)
	Delete(actor *auth.Identity, id string) error
}

// ServiceHandler serves the /api/services routes
type ServiceHandler struct {
	gateway ServiceGateway
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(gateway ServiceGateway) *ServiceHandler {
	return &ServiceHandler{gateway: gateway}
}

// List handles GET /api/services with an optional ?division= filter
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.gateway.GetAll(r.URL.Query().Get("division"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve services")
		return
	}
	respondJSON(w, http.StatusOK, services)
}

// ListByCategory handles GET /api/services/category/{categoryId}
func (h *ServiceHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	services, err := h.gateway.GetByCategory(r.PathValue("categoryId"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve services")
		return
	}
	respondJSON(w, http.StatusOK, services)
}

// Get handles GET /api/services/{id}
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	service, err := h.gateway.GetByID(r.PathValue("id"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve service")
		return
	}
	respondJSON(w, http.StatusOK, service)
}

// GetBySlug handles GET /api/services/slug/{slug}
func (h *ServiceHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	service, err := h.gateway.GetBySlug(r.PathValue("slug"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve service")
		return
	}
	respondJSON(w, http.StatusOK, service)
}

type serviceRequest struct {
	DivisionID  string   `json:"division_id"`
	CategoryID  *string  `json:"category_id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
	Images      []string `json:"images"`
}

// Create handles POST /api/services
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Title == "" || req.Description == "" || req.DivisionID == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "title, description and division_id are required")
		return
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Title)
	}
	if req.Details == nil {
		req.Details = []string{}
	}
	if req.Images == nil {
		req.Images = []string{}
	}

	fields := map[string]interface{}{
		"division_id": req.DivisionID,
		"title":       req.Title,
		"slug":        req.Slug,
		"description": req.Description,
		"details":     req.Details,
		"images":      req.Images,
	}
	if req.CategoryID != nil && *req.CategoryID != "" {
		fields["category_id"] = *req.CategoryID
	}

	service, err := h.gateway.Create(middleware.IdentityFrom(r.Context()), fields)
	if err != nil {
		respondRepoError(w, err, "Failed to create service")
		return
	}

	respondJSON(w, http.StatusCreated, service)
}

// Update handles PUT /api/services/{id}
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if !decodeBody(w, r, &body) {
		return
	}

	fields := filterFields(body, "division_id", "category_id", "title", "slug", "description", "details", "images")
	if len(fields) == 0 {
		respondError(w, http.StatusBadRequest, "missing_fields", "No updatable fields in request body")
		return
	}

	service, err := h.gateway.Update(middleware.IdentityFrom(r.Context()), r.PathValue("id"), fields)
	if err != nil {
		respondRepoError(w, err, "Failed to update service")
		return
	}

	respondJSON(w, http.StatusOK, service)
}

// Delete handles DELETE /api/services/{id}
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gateway.Delete(middleware.IdentityFrom(r.Context()), r.PathValue("id")); err != nil {
		respondRepoError(w, err, "Failed to delete service")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
