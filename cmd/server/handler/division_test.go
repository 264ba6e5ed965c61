package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/database"
	"northlinktelecom.com/cmd/server/models"
)

type fakeDivisionGateway struct {
	divisions []models.Division

	createCalls int
	updateCalls int
	deleteCalls int

	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeDivisionGateway) GetAll() ([]models.Division, error) {
	return f.divisions, nil
}

func (f *fakeDivisionGateway) GetByID(id string) (*models.Division, error) {
	for i := range f.divisions {
		if f.divisions[i].ID == id {
			return &f.divisions[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeDivisionGateway) GetBySlug(slug string) (*models.Division, error) {
	for i := range f.divisions {
		if f.divisions[i].Slug == slug {
			return &f.divisions[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeDivisionGateway) Create(actor *auth.Identity, fields map[string]interface{}) (*models.Division, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Division{
		ID:          "d-new",
		Name:        fields["name"].(string),
		Slug:        fields["slug"].(string),
		Description: fields["description"].(string),
	}, nil
}

func (f *fakeDivisionGateway) Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Division, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	division, err := f.GetByID(id)
	if err != nil {
		return nil, err
	}
	updated := *division
	if name, ok := fields["name"].(string); ok {
		updated.Name = name
	}
	return &updated, nil
}

func (f *fakeDivisionGateway) Delete(actor *auth.Identity, id string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, err := f.GetByID(id); err != nil {
		return err
	}
	return nil
}

func doRequest(t *testing.T, handlerFn http.HandlerFunc, method, target, body string, pathValues map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for key, value := range pathValues {
		req.SetPathValue(key, value)
	}

	rec := httptest.NewRecorder()
	handlerFn(rec, req)
	return rec
}

func TestDivisionCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		gateway := &fakeDivisionGateway{}
		h := NewDivisionHandler(gateway)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/divisions",
			`{"name":"Enterprise Solutions","slug":"enterprise-solutions","description":"B2B connectivity"}`, nil)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"id":"d-new"`)
		assert.Equal(t, 1, gateway.createCalls)
	})

	t.Run("slug derived from name when omitted", func(t *testing.T) {
		gateway := &fakeDivisionGateway{}
		h := NewDivisionHandler(gateway)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/divisions",
			`{"name":"Network  Solutions & Co.","description":"infra"}`, nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"slug":"network-solutions-co"`)
	})

	t.Run("missing fields is 400 with no gateway write", func(t *testing.T) {
		gateway := &fakeDivisionGateway{}
		h := NewDivisionHandler(gateway)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/divisions", `{"name":"Enterprise Solutions"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, gateway.createCalls)
	})

	t.Run("invalid json is 400", func(t *testing.T) {
		gateway := &fakeDivisionGateway{}
		h := NewDivisionHandler(gateway)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/divisions", `{"name":`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, gateway.createCalls)
	})

	t.Run("gateway authorization failure maps to 403", func(t *testing.T) {
		gateway := &fakeDivisionGateway{createErr: database.ErrNotAuthorized}
		h := NewDivisionHandler(gateway)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/divisions",
			`{"name":"Enterprise Solutions","description":"B2B"}`, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDivisionGet(t *testing.T) {
	gateway := &fakeDivisionGateway{divisions: []models.Division{
		{ID: "d1", Name: "Enterprise Solutions", Slug: "enterprise-solutions"},
	}}
	h := NewDivisionHandler(gateway)

	t.Run("found by id", func(t *testing.T) {
		rec := doRequest(t, h.Get, http.MethodGet, "/api/divisions/d1", "", map[string]string{"id": "d1"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Enterprise Solutions")
	})

	t.Run("found by slug", func(t *testing.T) {
		rec := doRequest(t, h.GetBySlug, http.MethodGet, "/api/divisions/slug/enterprise-solutions", "",
			map[string]string{"slug": "enterprise-solutions"})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing is 404", func(t *testing.T) {
		rec := doRequest(t, h.Get, http.MethodGet, "/api/divisions/nope", "", map[string]string{"id": "nope"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDivisionUpdate(t *testing.T) {
	t.Run("updates named fields only", func(t *testing.T) {
		gateway := &fakeDivisionGateway{divisions: []models.Division{{ID: "d1", Name: "Old"}}}
		h := NewDivisionHandler(gateway)

		rec := doRequest(t, h.Update, http.MethodPut, "/api/divisions/d1",
			`{"name":"New Name","id":"hax"}`, map[string]string{"id": "d1"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "New Name")
	})

	t.Run("empty patch is 400 with no gateway write", func(t *testing.T) {
		gateway := &fakeDivisionGateway{divisions: []models.Division{{ID: "d1"}}}
		h := NewDivisionHandler(gateway)

		rec := doRequest(t, h.Update, http.MethodPut, "/api/divisions/d1",
			`{"unknown_column":"x"}`, map[string]string{"id": "d1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, gateway.updateCalls)
	})
}

func TestDivisionDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		gateway := &fakeDivisionGateway{divisions: []models.Division{{ID: "d1"}}}
		h := NewDivisionHandler(gateway)

		rec := doRequest(t, h.Delete, http.MethodDelete, "/api/divisions/d1", "", map[string]string{"id": "d1"})
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("division with services is 409 and row remains", func(t *testing.T) {
		gateway := &fakeDivisionGateway{
			divisions: []models.Division{{ID: "d1"}},
			deleteErr: database.ErrDivisionInUse,
		}
		h := NewDivisionHandler(gateway)

		rec := doRequest(t, h.Delete, http.MethodDelete, "/api/divisions/d1", "", map[string]string{"id": "d1"})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "services")
	})
}
