package database

import (
	"fmt"
	"log"

	"github.com/supabase-community/postgrest-go"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/models"
	"northlinktelecom.com/cmd/server/storage"
)

// PartnerRepository handles partner-related database operations
type PartnerRepository struct {
	clients *Clients
	files   FileRemover
}

// NewPartnerRepository creates a new PartnerRepository instance.
// files may be nil, in which case deletes skip storage cleanup.
func NewPartnerRepository(clients *Clients, files FileRemover) *PartnerRepository {
	return &PartnerRepository{clients: clients, files: files}
}

// GetAll retrieves all partners in display order (rank ascending)
func (r *PartnerRepository) GetAll() ([]models.Partner, error) {
	var partners []models.Partner

	_, err := r.clients.Anon.
		From("partners").
		Select("*", "", false).
		Order("rank", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&partners)

	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}

	return partners, nil
}

// GetByID retrieves a single partner by id
func (r *PartnerRepository) GetByID(id string) (*models.Partner, error) {
	var partners []models.Partner

	_, err := r.clients.Anon.
		From("partners").
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&partners)

	if err != nil {
		return nil, fmt.Errorf("failed to query partner: %w", err)
	}

	if len(partners) == 0 {
		return nil, ErrNotFound
	}

	return &partners[0], nil
}

// GetBySlug retrieves a single partner by slug
func (r *PartnerRepository) GetBySlug(slug string) (*models.Partner, error) {
	var partners []models.Partner

	_, err := r.clients.Anon.
		From("partners").
		Select("*", "", false).
		Eq("slug", slug).
		Limit(1, "").
		ExecuteTo(&partners)

	if err != nil {
		return nil, fmt.Errorf("failed to query partner: %w", err)
	}

	if len(partners) == 0 {
		return nil, ErrNotFound
	}

	return &partners[0], nil
}

// Create inserts a new partner and returns the created row.
// Requires an admin or editor role.
func (r *PartnerRepository) Create(actor *auth.Identity, fields map[string]interface{}) (*models.Partner, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	var result []models.Partner

	_, err := r.clients.Service.
		From("partners").
		Insert(fields, false, "", "", "").
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to insert partner: %w", err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("insert succeeded but no partner was returned")
	}

	return &result[0], nil
}

// Update applies a partial update and returns the updated row.
// Requires an admin or editor role.
func (r *PartnerRepository) Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Partner, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	var result []models.Partner

	_, err := r.clients.Service.
		From("partners").
		Update(fields, "", "").
		Eq("id", id).
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return &result[0], nil
}

// Delete removes a partner. Requires the admin role. The stored logo is
// removed best-effort after the row delete.
func (r *PartnerRepository) Delete(actor *auth.Identity, id string) error {
	if !actor.Allowed(models.RoleAdmin) {
		return ErrNotAuthorized
	}

	partner, err := r.GetByID(id)
	if err != nil {
		return err
	}

	var deleted []models.Partner
	_, err = r.clients.Service.
		From("partners").
		Delete("", "").
		Eq("id", id).
		ExecuteTo(&deleted)

	if err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
	}

	if len(deleted) == 0 {
		return ErrNotFound
	}

	if r.files != nil && partner.Image != "" {
		if err := r.files.Remove(storage.BucketPartners, []string{partner.Image}); err != nil {
			log.Printf("WARNING: failed to remove image for deleted partner %s: %v\n", id, err)
		}
	}

	return nil
}
