package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"northlinktelecom.com/cmd/server/models"
)

type fakePartnerAPI struct {
	created   *models.Partner
	updated   *models.Partner
	deleted   []string
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakePartnerAPI) Create(ctx context.Context, draft models.Partner) (models.Partner, error) {
	if f.createErr != nil {
		return models.Partner{}, f.createErr
	}
	draft.ID = "new-id"
	f.created = &draft
	return draft, nil
}

func (f *fakePartnerAPI) Update(ctx context.Context, id string, draft models.Partner) (models.Partner, error) {
	if f.updateErr != nil {
		return models.Partner{}, f.updateErr
	}
	f.updated = &draft
	return draft, nil
}

func (f *fakePartnerAPI) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func partnerID(p models.Partner) string { return p.ID }

func seedPartners() []models.Partner {
	return []models.Partner{
		{ID: "p1", Name: "Cisco", Rank: 1},
		{ID: "p2", Name: "Nokia", Rank: 2},
	}
}

func TestManagerModes(t *testing.T) {
	m := NewManager[models.Partner](&fakePartnerAPI{}, partnerID, seedPartners())
	assert.Equal(t, ModeListing, m.Mode())

	m.Add()
	assert.Equal(t, ModeAdding, m.Mode())

	m.Cancel()
	assert.Equal(t, ModeListing, m.Mode())

	m.Edit(m.Items()[0])
	assert.Equal(t, ModeEditing, m.Mode())
	assert.Equal(t, "p1", m.Editing().ID)
}

func TestSubmitCreateAppendsOnSuccess(t *testing.T) {
	api := &fakePartnerAPI{}
	m := NewManager[models.Partner](api, partnerID, seedPartners())
	m.Add()

	created, err := m.SubmitCreate(context.Background(), models.Partner{Name: "Ericsson", Rank: 3})
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)

	require.Len(t, m.Items(), 3)
	assert.Equal(t, "new-id", m.Items()[2].ID, "created row appended from the server response")
	assert.Equal(t, ModeListing, m.Mode())
}

func TestSubmitCreateFailureLeavesListUntouched(t *testing.T) {
	api := &fakePartnerAPI{createErr: errors.New("500")}
	m := NewManager[models.Partner](api, partnerID, seedPartners())
	m.Add()

	_, err := m.SubmitCreate(context.Background(), models.Partner{Name: "Ericsson"})
	require.Error(t, err)

	assert.Len(t, m.Items(), 2, "no optimistic insert, nothing to roll back")
	assert.Equal(t, ModeAdding, m.Mode(), "stay on the form so the draft is not lost")
}

func TestSubmitUpdateReplacesByID(t *testing.T) {
	api := &fakePartnerAPI{}
	m := NewManager[models.Partner](api, partnerID, seedPartners())

	updated, err := m.SubmitUpdate(context.Background(), models.Partner{ID: "p2", Name: "Nokia Networks", Rank: 2})
	require.NoError(t, err)
	assert.Equal(t, "Nokia Networks", updated.Name)

	require.Len(t, m.Items(), 2)
	assert.Equal(t, "Cisco", m.Items()[0].Name)
	assert.Equal(t, "Nokia Networks", m.Items()[1].Name)
}

func TestRemoveFiltersAfterConfirmation(t *testing.T) {
	api := &fakePartnerAPI{}
	confirmed := []string{}
	m := NewManager[models.Partner](api, partnerID, seedPartners()).
		WithConfirm(func(p models.Partner) bool {
			confirmed = append(confirmed, p.ID)
			return true
		})

	require.NoError(t, m.Remove(context.Background(), "p1"))

	assert.Equal(t, []string{"p1"}, confirmed)
	assert.Equal(t, []string{"p1"}, api.deleted)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, "p2", m.Items()[0].ID)
}

func TestRemoveDeclinedFiresNoRequest(t *testing.T) {
	api := &fakePartnerAPI{}
	m := NewManager[models.Partner](api, partnerID, seedPartners()).
		WithConfirm(func(models.Partner) bool { return false })

	require.NoError(t, m.Remove(context.Background(), "p1"))

	assert.Empty(t, api.deleted, "declined confirmation must not fire the delete")
	assert.Len(t, m.Items(), 2)
}

func TestRemoveFailureKeepsRow(t *testing.T) {
	api := &fakePartnerAPI{deleteErr: errors.New("403")}
	m := NewManager[models.Partner](api, partnerID, seedPartners())

	require.Error(t, m.Remove(context.Background(), "p1"))
	assert.Len(t, m.Items(), 2)
}
