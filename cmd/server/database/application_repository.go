package database

import (
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/models"
)

// ApplicationRepository handles job-application database operations.
// Reads go through the service client: application rows carry personal
// data and are never exposed on the public read path.
type ApplicationRepository struct {
	clients *Clients
}

// NewApplicationRepository creates a new ApplicationRepository instance
func NewApplicationRepository(clients *Clients) *ApplicationRepository {
	return &ApplicationRepository{clients: clients}
}

// GetAll retrieves applications, optionally filtered by job, newest first.
// Requires an admin or editor role.
func (r *ApplicationRepository) GetAll(actor *auth.Identity, jobID string) ([]models.Application, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	query := r.clients.Service.
		From("applications").
		Select("*", "", false)

	if jobID != "" {
		query = query.Eq("job_id", jobID)
	}

	var applications []models.Application
	_, err := query.
		Order("applied_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&applications)

	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}

	return applications, nil
}

// GetByID retrieves a single application by id.
// Requires an admin or editor role.
func (r *ApplicationRepository) GetByID(actor *auth.Identity, id string) (*models.Application, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	return r.getByID(id)
}

func (r *ApplicationRepository) getByID(id string) (*models.Application, error) {
	var applications []models.Application

	_, err := r.clients.Service.
		From("applications").
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&applications)

	if err != nil {
		return nil, fmt.Errorf("failed to query application: %w", err)
	}

	if len(applications) == 0 {
		return nil, ErrNotFound
	}

	return &applications[0], nil
}

// Create inserts a new application and returns the created row. This is
// the public intake path, so no role is required. Status is always forced
// to "applied" and the applied_at timestamp is stamped here; whatever the
// request carried for either field is discarded.
func (r *ApplicationRepository) Create(fields map[string]interface{}) (*models.Application, error) {
	fields["status"] = models.StatusApplied
	fields["applied_at"] = time.Now().UTC().Format(time.RFC3339)

	var result []models.Application

	_, err := r.clients.Service.
		From("applications").
		Insert(fields, false, "", "", "").
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to insert application: %w", err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("insert succeeded but no application was returned")
	}

	return &result[0], nil
}

// UpdateStatus moves an application to a new status. Requires an admin or
// editor role. The status value must already be validated against the
// enum; the transition policy is checked here against the current row.
// No other application field is ever updated after creation.
func (r *ApplicationRepository) UpdateStatus(actor *auth.Identity, id, status string) (*models.Application, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	existing, err := r.getByID(id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(existing.Status, status) {
		return nil, fmt.Errorf("transition %s -> %s is not allowed", existing.Status, status)
	}

	var result []models.Application

	_, err = r.clients.Service.
		From("applications").
		Update(map[string]interface{}{"status": status}, "", "").
		Eq("id", id).
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return &result[0], nil
}
