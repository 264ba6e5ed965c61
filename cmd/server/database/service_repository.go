package database

import (
	"fmt"
	"log"

	"github.com/supabase-community/postgrest-go"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/models"
	"northlinktelecom.com/cmd/server/storage"
)

// ServiceRepository handles service-related database operations
type ServiceRepository struct {
	clients *Clients
	files   FileRemover
}

// NewServiceRepository creates a new ServiceRepository instance.
// files may be nil, in which case deletes skip storage cleanup.
func NewServiceRepository(clients *Clients, files FileRemover) *ServiceRepository {
	return &ServiceRepository{clients: clients, files: files}
}

// GetAll retrieves all services, optionally filtered by division
func (r *ServiceRepository) GetAll(divisionID string) ([]models.Service, error) {
	query := r.clients.Anon.
		From("services").
		Select("*", "", false)

	if divisionID != "" {
		query = query.Eq("division_id", divisionID)
	}

	var services []models.Service
	_, err := query.Order("title", &postgrest.OrderOpts{Ascending: true}).ExecuteTo(&services)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}

	return services, nil
}

// GetByCategory retrieves all services belonging to a category
func (r *ServiceRepository) GetByCategory(categoryID string) ([]models.Service, error) {
	var services []models.Service

	_, err := r.clients.Anon.
		From("services").
		Select("*", "", false).
		Eq("category_id", categoryID).
		Order("title", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&services)

	if err != nil {
		return nil, fmt.Errorf("failed to query services by category: %w", err)
	}

	return services, nil
}

// GetByID retrieves a single service by id
func (r *ServiceRepository) GetByID(id string) (*models.Service, error) {
	var services []models.Service

	_, err := r.clients.Anon.
		From("services").
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&services)

	if err != nil {
		return nil, fmt.Errorf("failed to query service: %w", err)
	}

	if len(services) == 0 {
		return nil, ErrNotFound
	}

	return &services[0], nil
}

// GetBySlug retrieves a single service by slug
func (r *ServiceRepository) GetBySlug(slug string) (*models.Service, error) {
	var services []models.Service

	_, err := r.clients.Anon.
		From("services").
		Select("*", "", false).
		Eq("slug", slug).
		Limit(1, "").
		ExecuteTo(&services)

	if err != nil {
		return nil, fmt.Errorf("failed to query service: %w", err)
	}

	if len(services) == 0 {
		return nil, ErrNotFound
	}

	return &services[0], nil
}

// Create inserts a new service and returns the created row.
// Requires an admin or editor role. When a category id is present it must
// reference a category of the same division.
func (r *ServiceRepository) Create(actor *auth.Identity, fields map[string]interface{}) (*models.Service, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	if err := r.checkCategoryDivision(fields); err != nil {
		return nil, err
	}

	var result []models.Service

	_, err := r.clients.Service.
		From("services").
		Insert(fields, false, "", "", "").
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to insert service: %w", err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("insert succeeded but no service was returned")
	}

	return &result[0], nil
}

// Update applies a partial update and returns the updated row.
// Requires an admin or editor role. Updates touching category_id or
// division_id are validated against the category/division rule.
func (r *ServiceRepository) Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Service, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	_, touchesCategory := fields["category_id"]
	_, touchesDivision := fields["division_id"]
	if touchesCategory || touchesDivision {
		existing, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}

		merged := map[string]interface{}{
			"division_id": existing.DivisionID,
		}
		if existing.CategoryID != nil {
			merged["category_id"] = *existing.CategoryID
		}
		for k, v := range fields {
			merged[k] = v
		}

		if err := r.checkCategoryDivision(merged); err != nil {
			return nil, err
		}
	}

	var result []models.Service

	_, err := r.clients.Service.
		From("services").
		Update(fields, "", "").
		Eq("id", id).
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return &result[0], nil
}

// Delete removes a service. Requires the admin role. Stored images are
// removed best-effort after the row delete; a failed cleanup is logged and
// never fails the delete.
func (r *ServiceRepository) Delete(actor *auth.Identity, id string) error {
	if !actor.Allowed(models.RoleAdmin) {
		return ErrNotAuthorized
	}

	service, err := r.GetByID(id)
	if err != nil {
		return err
	}

	var deleted []models.Service
	_, err = r.clients.Service.
		From("services").
		Delete("", "").
		Eq("id", id).
		ExecuteTo(&deleted)

	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	if len(deleted) == 0 {
		return ErrNotFound
	}

	if r.files != nil && len(service.Images) > 0 {
		if err := r.files.Remove(storage.BucketServices, service.Images); err != nil {
			log.Printf("WARNING: failed to remove images for deleted service %s: %v\n", id, err)
		}
	}

	return nil
}

// checkCategoryDivision enforces that a service's category, when set,
// belongs to the service's division
func (r *ServiceRepository) checkCategoryDivision(fields map[string]interface{}) error {
	categoryID, ok := fields["category_id"].(string)
	if !ok || categoryID == "" {
		return nil
	}

	divisionID, _ := fields["division_id"].(string)

	var categories []models.Category
	_, err := r.clients.Service.
		From("categories").
		Select("*", "", false).
		Eq("id", categoryID).
		Limit(1, "").
		ExecuteTo(&categories)

	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}

	if len(categories) == 0 {
		return fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}

	if categories[0].DivisionID != divisionID {
		return ErrCategoryDivisionMismatch
	}

	return nil
}
