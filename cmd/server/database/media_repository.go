package database

import (
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/models"
)

// MediaRepository handles blog/article database operations. Public reads
// see published items only, over the anon client; the admin listing
// includes drafts and goes through the service client.
type MediaRepository struct {
	clients *Clients
}

// NewMediaRepository creates a new MediaRepository instance
func NewMediaRepository(clients *Clients) *MediaRepository {
	return &MediaRepository{clients: clients}
}

// GetAll retrieves every media item including drafts, newest first.
// Requires an admin or editor role.
func (r *MediaRepository) GetAll(actor *auth.Identity) ([]models.Media, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	var media []models.Media

	_, err := r.clients.Service.
		From("media").
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&media)

	if err != nil {
		return nil, fmt.Errorf("failed to query media: %w", err)
	}

	return media, nil
}

// GetPublished retrieves published media over the no-auth path, newest
// published first. Used by public pages and static generation, so it must
// not depend on any session state.
func (r *MediaRepository) GetPublished() ([]models.Media, error) {
	var media []models.Media

	_, err := r.clients.Anon.
		From("media").
		Select("*", "", false).
		Eq("published", "true").
		Order("published_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&media)

	if err != nil {
		return nil, fmt.Errorf("failed to query published media: %w", err)
	}

	return media, nil
}

// GetByID retrieves a single media item by id, drafts included
func (r *MediaRepository) GetByID(id string) (*models.Media, error) {
	var media []models.Media

	_, err := r.clients.Service.
		From("media").
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&media)

	if err != nil {
		return nil, fmt.Errorf("failed to query media item: %w", err)
	}

	if len(media) == 0 {
		return nil, ErrNotFound
	}

	return &media[0], nil
}

// GetBySlugPublished retrieves a published media item by slug over the
// no-auth path. Drafts resolve to ErrNotFound.
func (r *MediaRepository) GetBySlugPublished(slug string) (*models.Media, error) {
	var media []models.Media

	_, err := r.clients.Anon.
		From("media").
		Select("*", "", false).
		Eq("slug", slug).
		Eq("published", "true").
		Limit(1, "").
		ExecuteTo(&media)

	if err != nil {
		return nil, fmt.Errorf("failed to query media item: %w", err)
	}

	if len(media) == 0 {
		return nil, ErrNotFound
	}

	return &media[0], nil
}

// Create inserts a new media item and returns the created row.
// Requires an admin or editor role. New items start unpublished.
func (r *MediaRepository) Create(actor *auth.Identity, fields map[string]interface{}) (*models.Media, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	fields["published"] = false

	var result []models.Media

	_, err := r.clients.Service.
		From("media").
		Insert(fields, false, "", "", "").
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to insert media item: %w", err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("insert succeeded but no media item was returned")
	}

	return &result[0], nil
}

// Update applies a partial update, stamps updated_at, and returns the
// updated row. Requires an admin or editor role.
func (r *MediaRepository) Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Media, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	fields["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	var result []models.Media

	_, err := r.clients.Service.
		From("media").
		Update(fields, "", "").
		Eq("id", id).
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to update media item: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return &result[0], nil
}

// SetPublished flips the publish flag, stamping updated_at always and
// published_at the first time an item is published.
// Requires an admin or editor role.
func (r *MediaRepository) SetPublished(actor *auth.Identity, id string, published bool) (*models.Media, error) {
	if !actor.Allowed(models.RoleAdmin, models.RoleEditor) {
		return nil, ErrNotAuthorized
	}

	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"published":  published,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if published && existing.PublishedAt == nil {
		fields["published_at"] = time.Now().UTC().Format(time.RFC3339)
	}

	var result []models.Media

	_, err = r.clients.Service.
		From("media").
		Update(fields, "", "").
		Eq("id", id).
		ExecuteTo(&result)

	if err != nil {
		return nil, fmt.Errorf("failed to update publish state: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return &result[0], nil
}

// Delete removes a media item. Requires the admin role.
func (r *MediaRepository) Delete(actor *auth.Identity, id string) error {
	if !actor.Allowed(models.RoleAdmin) {
		return ErrNotAuthorized
	}

	var deleted []models.Media
	_, err := r.clients.Service.
		From("media").
		Delete("", "").
		Eq("id", id).
		ExecuteTo(&deleted)

	if err != nil {
		return fmt.Errorf("failed to delete media item: %w", err)
	}

	if len(deleted) == 0 {
		return ErrNotFound
	}

	return nil
}
