package handler

import (
	"net/http"
	"strconv"
	"time"

	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/database"
	"northlinktelecom.com/cmd/server/middleware"
	"northlinktelecom.com/cmd/server/models"
)

// JobGateway is the data-access contract the job endpoints need.
// Satisfied by database.JobRepository.
type JobGateway interface {
	GetAll(filter database.JobFilter) ([]models.Job, error)
	GetByID(id string) (*models.Job, error)
	Create(actor *auth.Identity, fields map[string]interface{}) (*models.Job, error)
	Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Job, error)
	Delete(actor *auth.Identity, id string) error
}

// JobHandler serves the /api/jobs and /api/careers routes
type JobHandler struct {
	gateway JobGateway
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(gateway JobGateway) *JobHandler {
	return &JobHandler{gateway: gateway}
}

// List handles GET /api/jobs
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.gateway.GetAll(database.JobFilter{})
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve jobs")
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

// Search handles GET /api/careers, the public job search with query
// filters: location, department, type, remote
func (h *JobHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := database.JobFilter{
		Location:       q.Get("location"),
		Department:     q.Get("department"),
		EmploymentType: q.Get("type"),
	}
	if remote := q.Get("remote"); remote != "" {
		value, err := strconv.ParseBool(remote)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_filter", "remote must be true or false")
			return
		}
		filter.Remote = &value
	}

	jobs, err := h.gateway.GetAll(filter)
	if err != nil {
		respondRepoError(w, err, "Failed to search jobs")
		return
	}
	respondJSON(w, http.StatusOK, jobs)
}

// Get handles GET /api/jobs/{id}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.gateway.GetByID(r.PathValue("id"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve job")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

type jobRequest struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Location            string   `json:"location"`
	Department          string   `json:"department"`
	EmploymentType      string   `json:"employment_type"`
	IsRemote            bool     `json:"is_remote"`
	Requirements        []string `json:"requirements"`
	Benefits            []string `json:"benefits"`
	ExperienceLevel     *string  `json:"experience_level"`
	SalaryMin           *int     `json:"salary_min"`
	SalaryMax           *int     `json:"salary_max"`
	ApplicationDeadline *string  `json:"application_deadline"`
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Title == "" || req.Description == "" || req.Location == "" || req.Department == "" {
		respondError(w, http.StatusBadRequest, "missing_fields",
			"title, description, location and department are required")
		return
	}
	if !models.ValidEmploymentType(req.EmploymentType) {
		respondError(w, http.StatusBadRequest, "invalid_employment_type",
			"employment_type must be one of: full-time, part-time, contract, internship")
		return
	}
	if req.ExperienceLevel != nil && !models.ValidExperienceLevel(*req.ExperienceLevel) {
		respondError(w, http.StatusBadRequest, "invalid_experience_level",
			"experience_level must be one of: entry, mid, senior, executive")
		return
	}

	if req.Requirements == nil {
		req.Requirements = []string{}
	}
	if req.Benefits == nil {
		req.Benefits = []string{}
	}

	fields := map[string]interface{}{
		"title":           req.Title,
		"description":     req.Description,
		"location":        req.Location,
		"department":      req.Department,
		"employment_type": req.EmploymentType,
		"is_remote":       req.IsRemote,
		"requirements":    req.Requirements,
		"benefits":        req.Benefits,
		"posted_at":       time.Now().UTC().Format(time.RFC3339),
	}
	if req.ExperienceLevel != nil {
		fields["experience_level"] = *req.ExperienceLevel
	}
	if req.SalaryMin != nil {
		fields["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		fields["salary_max"] = *req.SalaryMax
	}
	if req.ApplicationDeadline != nil {
		fields["application_deadline"] = *req.ApplicationDeadline
	}

	job, err := h.gateway.Create(middleware.IdentityFrom(r.Context()), fields)
	if err != nil {
		respondRepoError(w, err, "Failed to create job")
		return
	}

	respondJSON(w, http.StatusCreated, job)
}

// Update handles PUT /api/jobs/{id}
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if !decodeBody(w, r, &body) {
		return
	}

	if raw, ok := body["employment_type"].(string); ok && !models.ValidEmploymentType(raw) {
		respondError(w, http.StatusBadRequest, "invalid_employment_type",
			"employment_type must be one of: full-time, part-time, contract, internship")
		return
	}
	if raw, ok := body["experience_level"].(string); ok && !models.ValidExperienceLevel(raw) {
		respondError(w, http.StatusBadRequest, "invalid_experience_level",
			"experience_level must be one of: entry, mid, senior, executive")
		return
	}

	fields := filterFields(body,
		"title", "description", "location", "department", "employment_type",
		"is_remote", "requirements", "benefits", "experience_level",
		"salary_min", "salary_max", "application_deadline")
	if len(fields) == 0 {
		respondError(w, http.StatusBadRequest, "missing_fields", "No updatable fields in request body")
		return
	}

	job, err := h.gateway.Update(middleware.IdentityFrom(r.Context()), r.PathValue("id"), fields)
	if err != nil {
		respondRepoError(w, err, "Failed to update job")
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/{id}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gateway.Delete(middleware.IdentityFrom(r.Context()), r.PathValue("id")); err != nil {
		respondRepoError(w, err, "Failed to delete job")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
