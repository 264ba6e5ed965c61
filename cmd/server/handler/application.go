package handler

import (
	"encoding/base64"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/database"
	"northlinktelecom.com/cmd/server/middleware"
	"northlinktelecom.com/cmd/server/models"
	"northlinktelecom.com/cmd/server/slug"
	"northlinktelecom.com/cmd/server/storage"
)

// ApplicationGateway is the data-access contract the application endpoints
// need. Satisfied by database.ApplicationRepository.
type ApplicationGateway interface {
	GetAll(actor *auth.Identity, jobID string) ([]models.Application, error)
	GetByID(actor *auth.Identity, id string) (*models.Application, error)
	Create(fields map[string]interface{}) (*models.Application, error)
	UpdateStatus(actor *auth.Identity, id, status string) (*models.Application, error)
}

// ResumeStore uploads resume files and resolves their public URL.
// Satisfied by storage.Uploader.
type ResumeStore interface {
	Upload(bucket, objectPath string, data []byte, contentType string) (string, error)
}

// ResumeArchiver keeps an off-platform copy of resumes.
// Satisfied by storage.S3Archiver; may be nil when archival is not
// configured.
type ResumeArchiver interface {
	ArchiveResume(data []byte, applicantSlug, fileName, contentType string) (string, error)
}

// ApplicationNotifier emails the careers mailbox about new applications.
// Satisfied by mailer.Mailer.
type ApplicationNotifier interface {
	NotifyApplication(app *models.Application, job *models.Job) error
}

// ApplicationHandler serves the /api/applications routes
type ApplicationHandler struct {
	gateway  ApplicationGateway
	jobs     JobGateway
	files    ResumeStore
	archiver ResumeArchiver
	notifier ApplicationNotifier
}

// NewApplicationHandler creates a new ApplicationHandler. archiver and
// notifier may be nil; both side effects are best-effort anyway.
func NewApplicationHandler(gateway ApplicationGateway, jobs JobGateway, files ResumeStore, archiver ResumeArchiver, notifier ApplicationNotifier) *ApplicationHandler {
	return &ApplicationHandler{
		gateway:  gateway,
		jobs:     jobs,
		files:    files,
		archiver: archiver,
		notifier: notifier,
	}
}

// List handles GET /api/applications with an optional ?job= filter.
// Admin console only; the route is wrapped in RequireRole.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	applications, err := h.gateway.GetAll(middleware.IdentityFrom(r.Context()), r.URL.Query().Get("job"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve applications")
		return
	}
	respondJSON(w, http.StatusOK, applications)
}

// Get handles GET /api/applications/{id}
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	application, err := h.gateway.GetByID(middleware.IdentityFrom(r.Context()), r.PathValue("id"))
	if err != nil {
		respondRepoError(w, err, "Failed to retrieve application")
		return
	}
	respondJSON(w, http.StatusOK, application)
}

type resumeUpload struct {
	FileName   string `json:"fileName"`
	FileType   string `json:"fileType"`
	FileBase64 string `json:"fileBase64"`
}

type applicationRequest struct {
	JobID          string       `json:"job_id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          *string      `json:"phone"`
	Resume         resumeUpload `json:"resume"`
	CoverLetter    *string      `json:"cover_letter"`
	LinkedInURL    *string      `json:"linkedin_url"`
	PortfolioURL   *string      `json:"portfolio_url"`
	ReferralSource *string      `json:"referral_source"`
	Skills         []string     `json:"skills"`
	Notes          *string      `json:"notes"`
}

// Create handles POST /api/applications, the public application intake.
// The resume arrives base64-encoded, is decoded and uploaded to the
// resumes bucket under a sanitized timestamped name, and the row stores
// the resulting public URL. The notification email and S3 archival are
// best-effort: their failure is logged and never fails the request.
// Status is always "applied" on the created row no matter what the
// request carried.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.JobID == "" || req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "job_id, name and email are required")
		return
	}
	if req.Resume.FileName == "" || req.Resume.FileBase64 == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "resume fileName and fileBase64 are required")
		return
	}
	if _, err := uuid.Parse(req.JobID); err != nil {
		respondError(w, http.StatusBadRequest, "unknown_job", "job_id does not reference an open position")
		return
	}

	job, err := h.jobs.GetByID(req.JobID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusBadRequest, "unknown_job", "job_id does not reference an open position")
			return
		}
		respondRepoError(w, err, "Failed to verify job")
		return
	}

	resumeData, err := base64.StdEncoding.DecodeString(req.Resume.FileBase64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_resume", "fileBase64 is not valid base64")
		return
	}

	objectName := storage.ObjectName(req.Resume.FileName)
	resumeURL, err := h.files.Upload(storage.BucketResumes, objectName, resumeData, req.Resume.FileType)
	if err != nil {
		log.Printf("ERROR: failed to upload resume: %v\n", err)
		respondError(w, http.StatusInternalServerError, "internal_server_error", "Failed to store resume")
		return
	}

	fields := map[string]interface{}{
		"job_id": req.JobID,
		"name":   req.Name,
		"email":  req.Email,
		"resume": resumeURL,
	}
	if req.Skills == nil {
		fields["skills"] = []string{}
	} else {
		fields["skills"] = req.Skills
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.CoverLetter != nil {
		fields["cover_letter"] = *req.CoverLetter
	}
	if req.LinkedInURL != nil {
		fields["linkedin_url"] = *req.LinkedInURL
	}
	if req.PortfolioURL != nil {
		fields["portfolio_url"] = *req.PortfolioURL
	}
	if req.ReferralSource != nil {
		fields["referral_source"] = *req.ReferralSource
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	application, err := h.gateway.Create(fields)
	if err != nil {
		respondRepoError(w, err, "Failed to save application")
		return
	}

	if h.archiver != nil {
		if _, err := h.archiver.ArchiveResume(resumeData, slug.Make(req.Name), req.Resume.FileName, req.Resume.FileType); err != nil {
			log.Printf("WARNING: failed to archive resume for application %s: %v\n", application.ID, err)
		}
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyApplication(application, job); err != nil {
			log.Printf("WARNING: failed to send application notification for %s: %v\n", application.ID, err)
		}
	}

	respondJSON(w, http.StatusOK, application)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/applications/{id}/status. The new status
// is validated against the enum before any write; nothing else on an
// application is ever mutable.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if !models.ValidStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "invalid_status",
			"status must be one of: applied, screening, interview, offer, rejected, withdrawn")
		return
	}

	application, err := h.gateway.UpdateStatus(middleware.IdentityFrom(r.Context()), r.PathValue("id"), req.Status)
	if err != nil {
		respondRepoError(w, err, "Failed to update application status")
		return
	}

	respondJSON(w, http.StatusOK, application)
}
