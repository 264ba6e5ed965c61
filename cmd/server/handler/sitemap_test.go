package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/database"
	"northlinktelecom.com/cmd/server/models"
)

type fakeServiceGateway struct {
	services []models.Service
}

func (f *fakeServiceGateway) GetAll(divisionID string) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeServiceGateway) GetByCategory(categoryID string) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeServiceGateway) GetByID(id string) (*models.Service, error) {
	return nil, database.ErrNotFound
}

func (f *fakeServiceGateway) GetBySlug(slug string) (*models.Service, error) {
	return nil, database.ErrNotFound
}

func (f *fakeServiceGateway) Create(actor *auth.Identity, fields map[string]interface{}) (*models.Service, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeServiceGateway) Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Service, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeServiceGateway) Delete(actor *auth.Identity, id string) error {
	return errors.New("not implemented")
}

type fakePartnerGateway struct {
	partners []models.Partner
}

func (f *fakePartnerGateway) GetAll() ([]models.Partner, error) {
	return f.partners, nil
}

func (f *fakePartnerGateway) GetByID(id string) (*models.Partner, error) {
	return nil, database.ErrNotFound
}

func (f *fakePartnerGateway) GetBySlug(slug string) (*models.Partner, error) {
	return nil, database.ErrNotFound
}

func (f *fakePartnerGateway) Create(actor *auth.Identity, fields map[string]interface{}) (*models.Partner, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePartnerGateway) Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Partner, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePartnerGateway) Delete(actor *auth.Identity, id string) error {
	return errors.New("not implemented")
}

func TestSitemap(t *testing.T) {
	h := NewSitemapHandler(
		&fakeDivisionGateway{divisions: []models.Division{{ID: "d1", Slug: "enterprise-solutions"}}},
		&fakeServiceGateway{services: []models.Service{{ID: "s1", Slug: "dark-fiber"}}},
		&fakePartnerGateway{partners: []models.Partner{{ID: "p1", Slug: "nokia"}}},
		&fakeJobGateway{jobs: []models.Job{{ID: "j1", Title: "Field Engineer"}}},
		&fakeMediaGateway{media: []models.Media{
			{ID: "m1", Slug: "fiber-rollout", Published: true},
			{ID: "m2", Slug: "unfinished-draft", Published: false},
		}},
	)

	rec := doRequest(t, h.Get, http.MethodGet, "/api/sitemap", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sitemap Sitemap
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sitemap))

	assert.Equal(t, []string{"enterprise-solutions"}, sitemap.Divisions)
	assert.Equal(t, []string{"dark-fiber"}, sitemap.Services)
	assert.Equal(t, []string{"nokia"}, sitemap.Partners)
	assert.Equal(t, []string{"j1"}, sitemap.Jobs)
	assert.Equal(t, []string{"fiber-rollout"}, sitemap.Media, "drafts stay out of the sitemap")
}

func TestSitemapEmptyStores(t *testing.T) {
	h := NewSitemapHandler(
		&fakeDivisionGateway{},
		&fakeServiceGateway{},
		&fakePartnerGateway{},
		&fakeJobGateway{},
		&fakeMediaGateway{},
	)

	rec := doRequest(t, h.Get, http.MethodGet, "/api/sitemap", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Empty stores serialize as [] rather than null so static generation
	// can iterate without nil checks.
	assert.NotContains(t, rec.Body.String(), "null")
}
