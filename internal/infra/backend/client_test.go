package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "https://media.example.com/", 2*time.Second)
}

func TestLogin_SendsCredentialsWithoutBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jdoe", body.Username)
		assert.Equal(t, "secret", body.Password)

		_, _ = w.Write([]byte(`{"access":"a","refresh":"r","user":{"id":7,"rol":"cliente","username":"jdoe"}}`))
	})

	res, err := c.Login(context.Background(), "jdoe", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a", res.Access)
	assert.Equal(t, 7, res.User.ID)
	assert.Equal(t, "cliente", res.User.Rol)
}

func TestDo_ClassifiesStatuses(t *testing.T) {
	cases := []struct {
		status int
		body   string
		check  func(error) bool
		msg    string
	}{
		{http.StatusUnauthorized, `{"detail":"Token inválido"}`, httperr.IsUnauthorized, "Token inválido"},
		{http.StatusNotFound, `{"error":"No hay citas pendientes"}`, httperr.IsNotFound, "No hay citas pendientes"},
		{http.StatusBadRequest, `{"error":"Calificación inválida"}`, func(err error) bool {
			return !httperr.IsNotFound(err) && !httperr.IsUnauthorized(err) && !httperr.IsTransport(err)
		}, "Calificación inválida"},
	}

	for _, tc := range cases {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		})

		_, err := c.GetQRPendingSurvey(context.Background(), "tok", "qr")
		require.Error(t, err)
		assert.True(t, tc.check(err), "status %d", tc.status)
		assert.Equal(t, tc.msg, httperr.MessageOr(err, ""))
	}
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, "", time.Second)
	_, err := c.ListAlerts(context.Background(), "tok")
	assert.True(t, httperr.IsTransport(err))
}

func TestDo_ForwardsRequestID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListAlerts(WithRequestID(context.Background(), "req-1"), "tok")
	assert.NoError(t, err)
}

func TestListBarbers_AcceptsPaginatedEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":1,"results":[{"id":3,"user":{"id":9},"dias_laborales":"[\"1\",\"2\"]"}]}`))
	})

	list, err := c.ListBarbers(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].ID)
	assert.JSONEq(t, `{"id":9}`, string(list[0].User))
}

func TestListSurveysForAppointment_QueriesByCita(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/encuestas/", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("cita"))
		_, _ = w.Write([]byte(`[{"id":1,"cita":12,"survey_token":"abc"}]`))
	})

	list, err := c.ListSurveysForAppointment(context.Background(), "tok", "12")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "abc", list[0].SurveyToken)
}

func TestUpdateSchedule_PatchesFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/barberos/5/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "10:00", body["horario_inicio"])
		assert.Equal(t, "19:00", body["horario_fin"])
		assert.Equal(t, []any{"1", "3"}, body["dias_laborales"])
		_, _ = w.Write([]byte(`{}`))
	})

	err := c.UpdateSchedule(context.Background(), "tok", 5, models.ScheduleUpdate{
		HorarioInicio: "10:00",
		HorarioFin:    "19:00",
		DiasLaborales: []string{"1", "3"},
	})
	assert.NoError(t, err)
}

func TestListGallery_ResolvesMedia(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"imagen":"/media/galeria/a.jpg","activo":true},
			{"id":2,"imagen":"https://cdn.example.com/b.jpg","activo":true},
			{"id":3,"video_url":"https://youtu.be/dQw4w9WgXcQ","es_video":true,"activo":true}
		]`))
	})

	items, err := c.ListGallery(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "https://media.example.com/media/galeria/a.jpg", items[0].Imagen)
	assert.Equal(t, "https://cdn.example.com/b.jpg", items[1].Imagen)
	assert.Equal(t, "", items[2].Imagen)
}

func TestListServices_DecodesStringPrices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"id":1,"nombre":"Corte","precio":"15.50","duracion":30,"activo":true}]}`))
	})

	items, err := c.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.InDelta(t, 15.5, items[0].Precio.Float(), 0.001)
}

func TestResolveMedia(t *testing.T) {
	assert.Equal(t, "", ResolveMedia("https://m", ""))
	assert.Equal(t, "https://m/a.jpg", ResolveMedia("https://m/", "a.jpg"))
	assert.Equal(t, "//cdn/a.jpg", ResolveMedia("https://m", "//cdn/a.jpg"))
	assert.Equal(t, "HTTPS://x/a.jpg", ResolveMedia("https://m", "HTTPS://x/a.jpg"))
}

func TestRegister_ReportsRejectedFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/usuarios/", r.URL.Path)

		var body models.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cliente", body.Rol)

		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"telefono":["ya existe"],"email":["ya existe"],"detail":"x"}`))
	})

	err := c.Register(context.Background(), models.Registration{Email: "ana@example.com", Rol: "cliente"})

	var apiErr *httperr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"email", "telefono"}, apiErr.Fields)
	assert.Equal(t, "x", apiErr.Message)
}
