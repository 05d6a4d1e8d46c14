package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type fakeGateway struct {
	profiles  []models.BarberProfile
	listErr   error
	updateErr error

	updates []models.ScheduleUpdate
	ids     []int
}

func (f *fakeGateway) ListBarbers(context.Context, string) ([]models.BarberProfile, error) {
	return f.profiles, f.listErr
}

func (f *fakeGateway) UpdateSchedule(_ context.Context, _ string, id int, upd models.ScheduleUpdate) error {
	f.ids = append(f.ids, id)
	f.updates = append(f.updates, upd)
	return f.updateErr
}

func barberSession() *session.Session {
	return session.New("sid", map[string]string{
		session.KeyAccessToken: "acc",
		session.KeyUserID:      "9",
		session.KeyUserRole:    "barbero",
	})
}

func TestLoad_FindsOwnProfile(t *testing.T) {
	gw := &fakeGateway{profiles: []models.BarberProfile{
		{ID: 1, User: json.RawMessage(`{"id":8}`)},
		{ID: 2, User: json.RawMessage(`{"id":9}`), HorarioInicio: "08:30:00", HorarioFin: "17:00:00", DiasLaborales: json.RawMessage(`"[1,2,3]"`)},
	}}

	d, found, err := NewLoadSchedule(gw).Execute(context.Background(), barberSession())

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.Data{ProfileID: 2, Start: "08:30", End: "17:00", WorkingDays: []string{"1", "2", "3"}}, d)
}

func TestLoad_NoProfileGivesDefaults(t *testing.T) {
	gw := &fakeGateway{profiles: []models.BarberProfile{{ID: 1, UserID: json.RawMessage(`3`)}}}

	d, found, err := NewLoadSchedule(gw).Execute(context.Background(), barberSession())

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, domain.Default(), d)
}

func TestSave_EmptyDaysMakesNoCall(t *testing.T) {
	gw := &fakeGateway{}

	err := NewSaveSchedule(gw, nil).Execute(context.Background(), barberSession(), domain.Data{ProfileID: 2, Start: "09:00", End: "18:00"})

	assert.ErrorIs(t, err, domain.ErrNoWorkingDays)
	assert.Empty(t, gw.updates)
}

func TestSave_WithoutProfileMakesNoCall(t *testing.T) {
	gw := &fakeGateway{}

	err := NewSaveSchedule(gw, nil).Execute(context.Background(), barberSession(), domain.Default())

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Empty(t, gw.updates)
}

func TestSave_PatchesTemplate(t *testing.T) {
	gw := &fakeGateway{}
	d := domain.Data{ProfileID: 2, Start: "10:00", End: "19:00", WorkingDays: []string{"5", "1"}}

	require.NoError(t, NewSaveSchedule(gw, nil).Execute(context.Background(), barberSession(), d))

	assert.Equal(t, []int{2}, gw.ids)
	assert.Equal(t, models.ScheduleUpdate{HorarioInicio: "10:00", HorarioFin: "19:00", DiasLaborales: []string{"5", "1"}}, gw.updates[0])
}

func TestSave_SurfacesBackendDetail(t *testing.T) {
	gw := &fakeGateway{updateErr: httperr.NewStatusError(http.StatusBadRequest, "Formato de hora inválido")}

	err := NewSaveSchedule(gw, nil).Execute(context.Background(), barberSession(), domain.Data{ProfileID: 2, WorkingDays: []string{"1"}})

	assert.Equal(t, "Formato de hora inválido", httperr.MessageOr(err, ""))
}

func TestDraftRoundTrip(t *testing.T) {
	sess := barberSession()
	_, ok := LoadDraft(sess)
	assert.False(t, ok)

	d := domain.Default()
	d.ProfileID = 2
	require.NoError(t, d.Toggle("6"))
	require.NoError(t, StoreDraft(sess, d))

	got, ok := LoadDraft(sess)
	require.True(t, ok)
	assert.Equal(t, d, got)

	DropDraft(sess)
	_, ok = LoadDraft(sess)
	assert.False(t, ok)
}
