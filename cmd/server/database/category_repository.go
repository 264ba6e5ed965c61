package database

import (
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/models"
)

// CategoryRepository handles category-related database operations
type CategoryRepository struct {
	clients *Clients
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(clients *Clients) *CategoryRepository {
	return &CategoryRepository{clients: clients}
}

// GetAll retrieves all categories, optionally filtered by division
func (r *CategoryRepository) GetAll(divisionID string) ([]models.Category, error) {
	query := r.clients.Anon.
		From("categories").
		Select("*", "", false)

	if divisionID != "" {
		query = query.Eq("division_id", divisionID)
	}

	var categories []models.Category
	_, err := query.Order("name", &postgrest.OrderOpts{Ascending: true}).ExecuteTo(&categories)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a single category by id
func (r *CategoryRepository) GetByID(id string) (*models.Category, error) {
	var categories []models.Category

	_, err := r.clients.Anon.
		From("categories").
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&categories)

	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	if len(categories) == 0 {
		return nil, ErrNotFound
	}

	return &categories[0], nil
}

// GetBySlug retrieves a category by slug within a division. Category slugs
// are unique per division, so the division id is part of the lookup key.
func (r *CategoryRepository) GetBySlug(slug, divisionID string) (*models.Category, error) {
	var categories []models.Category

	_, err := r.clients.Anon.
		From("categories").
		Select("*", "", false).
		Eq("slug", slug).
		Eq("division_id", divisionID).
		Limit(1, "").
		ExecuteTo(&categories)

	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	if len(categories) == 0 {
		return nil, ErrNotFound
	}

	return &categories[0], nil
}

// Create inserts a new category and returns the created row.
// Requires an admin or editor role.
func (r *CategoryRepository) Create(actor *auth.Identity, fields map[string]interface{}) (*models.Category, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	var result []models.Category

	_, err := r.clients.Service.
		From("categories").
		Insert(fields, false, "", "", "").
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("insert succeeded but no category was returned")
	}

	return &result[0], nil
}

// Update applies a partial update and returns the updated row.
// Requires an admin or editor role.
func (r *CategoryRepository) Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Category, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	var result []models.Category

	_, err := r.clients.Service.
		From("categories").
		Update(fields, "", "").
		Eq("id", id).
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return &result[0], nil
}

// Delete removes a category. Requires the admin role.
func (r *CategoryRepository) Delete(actor *auth.Identity, id string) error {
	if !actor.Allowed(models.RoleAdmin) {
		return ErrNotAuthorized
	}

	var deleted []models.Category
	_, err := r.clients.Service.
		From("categories").
		Delete("", "").
		Eq("id", id).
		ExecuteTo(&deleted)

	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if len(deleted) == 0 {
		return ErrNotFound
	}

	return nil
}
