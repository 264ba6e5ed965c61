package database

import (
	"fmt"
	"strconv"

	"github.com/supabase-community/postgrest-go"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/models"
)

// JobFilter narrows a job listing query. Zero values mean "no filter".
type JobFilter struct {
	Location       string
	Department     string
	EmploymentType string
	Remote         *bool
}

// JobRepository handles job-related database operations
type JobRepository struct {
	clients *Clients
}

// NewJobRepository creates a new JobRepository instance
func NewJobRepository(clients *Clients) *JobRepository {
	return &JobRepository{clients: clients}
}

// GetAll retrieves jobs matching the filter, newest first
func (r *JobRepository) GetAll(filter JobFilter) ([]models.Job, error) {
	query := r.clients.Anon.
		From("jobs").
		Select("*", "", false)

	if filter.Location != "" {
		query = query.Eq("location", filter.Location)
	}
	if filter.Department != "" {
		query = query.Eq("department", filter.Department)
	}
	if filter.EmploymentType != "" {
		query = query.Eq("employment_type", filter.EmploymentType)
	}
	if filter.Remote != nil {
		query = query.Eq("is_remote", strconv.FormatBool(*filter.Remote))
	}

	var jobs []models.Job
	_, err := query.
		Order("posted_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&jobs)

	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	return jobs, nil
}

// GetByID retrieves a single job by id
func (r *JobRepository) GetByID(id string) (*models.Job, error) {
	var jobs []models.Job

	_, err := r.clients.Anon.
		From("jobs").
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&jobs)

	if err != nil {
		return nil, fmt.Errorf("failed to query job: %w", err)
	}

	if len(jobs) == 0 {
		return nil, ErrNotFound
	}

	return &jobs[0], nil
}

// Create inserts a new job posting and returns the created row.
// Requires an admin or editor role.
func (r *JobRepository) Create(actor *auth.Identity, fields map[string]interface{}) (*models.Job, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	var result []models.Job

	_, err := r.clients.Service.
		From("jobs").
		Insert(fields, false, "", "", "").
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to insert job: %w", err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("insert succeeded but no job was returned")
	}

	return &result[0], nil
}

// Update applies a partial update and returns the updated row.
// Requires an admin or editor role.
func (r *JobRepository) Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Job, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	var result []models.Job

	_, err := r.clients.Service.
		From("jobs").
		Update(fields, "", "").
		Eq("id", id).
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return &result[0], nil
}

// Delete removes a job posting. Requires the admin role.
func (r *JobRepository) Delete(actor *auth.Identity, id string) error {
	if !actor.Allowed(models.RoleAdmin) {
		return ErrNotAuthorized
	}

	var deleted []models.Job
	_, err := r.clients.Service.
		From("jobs").
		Delete("", "").
		Eq("id", id).
		ExecuteTo(&deleted)

	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	if len(deleted) == 0 {
		return ErrNotFound
	}

	return nil
}
