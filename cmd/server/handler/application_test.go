package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"northlinktelecom.com/cmd/server/auth"
	"northlinktelecom.com/cmd/server/database"
	"northlinktelecom.com/cmd/server/models"
)

type fakeApplicationGateway struct {
	createdFields map[string]interface{}
	createErr     error

	statusCalls int
	lastStatus  string
}

func (f *fakeApplicationGateway) GetAll(actor *auth.Identity, jobID string) ([]models.Application, error) {
	return nil, nil
}

func (f *fakeApplicationGateway) GetByID(actor *auth.Identity, id string) (*models.Application, error) {
	return nil, database.ErrNotFound
}

func (f *fakeApplicationGateway) Create(fields map[string]interface{}) (*models.Application, error) {
	f.createdFields = fields
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Application{
		ID:     "a1",
		JobID:  fields["job_id"].(string),
		Name:   fields["name"].(string),
		Email:  fields["email"].(string),
		Status: models.StatusApplied,
	}, nil
}

func (f *fakeApplicationGateway) UpdateStatus(actor *auth.Identity, id, status string) (*models.Application, error) {
	f.statusCalls++
	f.lastStatus = status
	return &models.Application{ID: id, Status: status}, nil
}

type fakeJobGateway struct {
	jobs []models.Job
}

func (f *fakeJobGateway) GetAll(filter database.JobFilter) ([]models.Job, error) {
	return f.jobs, nil
}

func (f *fakeJobGateway) GetByID(id string) (*models.Job, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeJobGateway) Create(actor *auth.Identity, fields map[string]interface{}) (*models.Job, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeJobGateway) Update(actor *auth.Identity, id string, fields map[string]interface{}) (*models.Job, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeJobGateway) Delete(actor *auth.Identity, id string) error {
	return errors.New("not implemented")
}

type fakeResumeStore struct {
	bucket      string
	objectPath  string
	data        []byte
	contentType string
	err         error
}

func (f *fakeResumeStore) Upload(bucket, objectPath string, data []byte, contentType string) (string, error) {
	f.bucket = bucket
	f.objectPath = objectPath
	f.data = data
	f.contentType = contentType
	if f.err != nil {
		return "", f.err
	}
	return "https://files.example.com/" + bucket + "/" + objectPath, nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) NotifyApplication(app *models.Application, job *models.Job) error {
	f.calls++
	return f.err
}

const testJobID = "6f1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"

func applicationBody(extra string) string {
	resume := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake resume"))
	body := `{"job_id":"` + testJobID + `","name":"Dana Reyes","email":"dana@example.com",` +
		`"resume":{"fileName":"dana resume.pdf","fileType":"application/pdf","fileBase64":"` + resume + `"}`
	if extra != "" {
		body += "," + extra
	}
	return body + "}"
}

func newApplicationHandler(gateway *fakeApplicationGateway, store *fakeResumeStore, notifier *fakeNotifier) *ApplicationHandler {
	jobs := &fakeJobGateway{jobs: []models.Job{{ID: testJobID, Title: "Field Engineer"}}}
	var n ApplicationNotifier
	if notifier != nil {
		n = notifier
	}
	return NewApplicationHandler(gateway, jobs, store, nil, n)
}

func TestApplicationCreate(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		gateway := &fakeApplicationGateway{}
		store := &fakeResumeStore{}
		notifier := &fakeNotifier{}
		h := newApplicationHandler(gateway, store, notifier)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/applications", applicationBody(""), nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "resumes", store.bucket)
		assert.True(t, strings.HasPrefix(store.objectPath, "dana_resume-"), store.objectPath)
		assert.True(t, strings.HasSuffix(store.objectPath, ".pdf"), store.objectPath)
		assert.Equal(t, []byte("%PDF-1.4 fake resume"), store.data)
		assert.Equal(t, 1, notifier.calls)
		assert.Contains(t, gateway.createdFields["resume"], "/resumes/")
	})

	t.Run("status in the body is ignored", func(t *testing.T) {
		gateway := &fakeApplicationGateway{}
		h := newApplicationHandler(gateway, &fakeResumeStore{}, nil)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/applications", applicationBody(`"status":"offer"`), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		_, hasStatus := gateway.createdFields["status"]
		assert.False(t, hasStatus, "status must never pass through from the request")
		assert.Contains(t, rec.Body.String(), `"status":"applied"`)
	})

	t.Run("missing required fields is 400 before any upload", func(t *testing.T) {
		gateway := &fakeApplicationGateway{}
		store := &fakeResumeStore{}
		h := newApplicationHandler(gateway, store, nil)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/applications",
			`{"job_id":"j1","name":"Dana Reyes"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, store.bucket)
		assert.Nil(t, gateway.createdFields)
	})

	t.Run("unknown job is 400", func(t *testing.T) {
		gateway := &fakeApplicationGateway{}
		h := NewApplicationHandler(gateway, &fakeJobGateway{}, &fakeResumeStore{}, nil, nil)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/applications", applicationBody(""), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown_job")
	})

	t.Run("malformed job id is 400", func(t *testing.T) {
		gateway := &fakeApplicationGateway{}
		h := newApplicationHandler(gateway, &fakeResumeStore{}, nil)

		body := strings.Replace(applicationBody(""), testJobID, "not-a-uuid", 1)
		rec := doRequest(t, h.Create, http.MethodPost, "/api/applications", body, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown_job")
	})

	t.Run("invalid base64 is 400", func(t *testing.T) {
		gateway := &fakeApplicationGateway{}
		h := newApplicationHandler(gateway, &fakeResumeStore{}, nil)

		body := `{"job_id":"j1","name":"Dana Reyes","email":"dana@example.com",` +
			`"resume":{"fileName":"cv.pdf","fileType":"application/pdf","fileBase64":"not!!base64"}}`
		rec := doRequest(t, h.Create, http.MethodPost, "/api/applications", body, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_resume")
	})

	t.Run("upload failure is 500 and no row is written", func(t *testing.T) {
		gateway := &fakeApplicationGateway{}
		store := &fakeResumeStore{err: errors.New("bucket unavailable")}
		h := newApplicationHandler(gateway, store, nil)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/applications", applicationBody(""), nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Nil(t, gateway.createdFields)
	})

	t.Run("notification failure does not fail the request", func(t *testing.T) {
		gateway := &fakeApplicationGateway{}
		notifier := &fakeNotifier{err: errors.New("smtp down")}
		h := newApplicationHandler(gateway, &fakeResumeStore{}, notifier)

		rec := doRequest(t, h.Create, http.MethodPost, "/api/applications", applicationBody(""), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, notifier.calls)
	})
}

func TestApplicationUpdateStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		gateway := &fakeApplicationGateway{}
		h := newApplicationHandler(gateway, &fakeResumeStore{}, nil)

		rec := doRequest(t, h.UpdateStatus, http.MethodPatch, "/api/applications/a1/status",
			`{"status":"interview"}`, map[string]string{"id": "a1"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "interview", gateway.lastStatus)
	})

	t.Run("unknown status is 400 with no gateway call", func(t *testing.T) {
		gateway := &fakeApplicationGateway{}
		h := newApplicationHandler(gateway, &fakeResumeStore{}, nil)

		rec := doRequest(t, h.UpdateStatus, http.MethodPatch, "/api/applications/a1/status",
			`{"status":"ghosted"}`, map[string]string{"id": "a1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_status")
		assert.Equal(t, 0, gateway.statusCalls)
	})
}
