package database

import (
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/models"
)

// DivisionRepository handles division-related database operations
type DivisionRepository struct {
	clients *Clients
}

// NewDivisionRepository creates a new DivisionRepository instance
func NewDivisionRepository(clients *Clients) *DivisionRepository {
	return &DivisionRepository{clients: clients}
}

// GetAll retrieves all divisions, ordered by name
func (r *DivisionRepository) GetAll() ([]models.Division, error) {
	var divisions []models.Division

	_, err := r.clients.Anon.
		From("divisions").
		Select("*", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&divisions)

	if err != nil {
		return nil, fmt.Errorf("failed to query divisions: %w", err)
	}

	return divisions, nil
}

// GetByID retrieves a single division by id
func (r *DivisionRepository) GetByID(id string) (*models.Division, error) {
	var divisions []models.Division

	_, err := r.clients.Anon.
		From("divisions").
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&divisions)

	if err != nil {
		return nil, fmt.Errorf("failed to query division: %w", err)
	}

	if len(divisions) == 0 {
		return nil, ErrNotFound
	}

	return &divisions[0], nil
}

// GetBySlug retrieves a single division by slug
func (r *DivisionRepository) GetBySlug(slug string) (*models.Division, error) {
	var divisions []models.Division

	_, err := r.clients.Anon.
		From("divisions").
		Select("*", "", false).
		Eq("slug", slug).
		Limit(1, "").
		ExecuteTo(&divisions)

	if err != nil {
		return nil, fmt.Errorf("failed to query division: %w", err)
	}

	if len(divisions) == 0 {
		return nil, ErrNotFound
	}

	return &divisions[0], nil
}

// Create inserts a new division and returns the created row.
// Requires an admin or editor role.
func (r *DivisionRepository) Create(actor *auth.Identity, fields map[string]interface{}) (*models.Division, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	var result []models.Division

	_, err := r.clients.Service.
		From("divisions").
		Insert(fields, false, "", "", "").
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to insert division: %w", err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("insert succeeded but no division was returned")
	}

	return &result[0], nil
}

// Update applies a partial update and returns the updated row.
// Requires an admin or editor role.
func (r *DivisionRepository) Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Division, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	var result []models.Division

	_, err := r.clients.Service.
		From("divisions").
		Update(fields, "", "").
		Eq("id", id).
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to update division: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return &result[0], nil
}

// Delete removes a division. Requires the admin role, and is refused with
// ErrDivisionInUse while any service still references the division.
func (r *DivisionRepository) Delete(actor *auth.Identity, id string) error {
	if !actor.Allowed(models.RoleAdmin) {
		return ErrNotAuthorized
	}

	// Referential guard: the store has no restrict constraint here, so the
	// gateway is the single place this rule lives.
	var services []models.Service
	_, err := r.clients.Service.
		From("services").
		Select("id", "", false).
		Eq("division_id", id).
		Limit(1, "").
		ExecuteTo(&services)

	if err != nil {
		return fmt.Errorf("failed to check services for division: %w", err)
	}

	if len(services) > 0 {
		return ErrDivisionInUse
	}

	var deleted []models.Division
	_, err = r.clients.Service.
		From("divisions").
		Delete("", "").
		Eq("id", id).
		ExecuteTo(&deleted)

	if err != nil {
		return fmt.Errorf("failed to delete division: %w", err)
	}

	if len(deleted) == 0 {
		return ErrNotFound
	}

	return nil
}
