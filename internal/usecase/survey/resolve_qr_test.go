package survey

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/survey"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

func TestQR_AnonymousGetsGate(t *testing.T) {
	gw := newFakeGateway()
	gw.qrInfo["qr1"] = &models.QRPublicInfo{Barbero: models.QRBarber{ID: 3, Nombre: "Carlos"}}

	out := NewResolveQR(gw).Execute(context.Background(), session.New("sid", nil), "qr1")

	assert.Equal(t, domain.QRGate, out.Kind)
	require.NotNil(t, out.Barber)
	assert.Equal(t, "Carlos", out.Barber.Nombre)
	assert.Equal(t, "/login?redirect=%2Fencuesta%2Fqr%2Fqr1", out.LoginURL)
	assert.Equal(t, "/registro?redirect=%2Fencuesta%2Fqr%2Fqr1", out.RegisterURL)
}

func TestQR_AnonymousInvalidToken(t *testing.T) {
	out := NewResolveQR(newFakeGateway()).Execute(context.Background(), session.New("sid", nil), "bad")

	assert.Equal(t, domain.QRInvalid, out.Kind)
	assert.Equal(t, domain.MsgInvalidQR, out.Message)
}

func TestQR_PendingPrefersSurveyToken(t *testing.T) {
	gw := newFakeGateway()
	gw.qrPending = &models.QRPendingSurvey{
		TieneCitaPendiente: true,
		Cita:               &models.QRPendingAppointment{ID: 12, EncuestaToken: "tok12"},
	}

	out := NewResolveQR(gw).Execute(context.Background(), loggedIn(), "qr1")

	assert.Equal(t, domain.QRRedirect, out.Kind)
	assert.Equal(t, "/encuesta/tok12", out.Location)
}

func TestQR_PendingWithoutTokenUsesAppointmentID(t *testing.T) {
	gw := newFakeGateway()
	gw.qrPending = &models.QRPendingSurvey{
		TieneCitaPendiente: true,
		Cita:               &models.QRPendingAppointment{ID: 12},
	}

	out := NewResolveQR(gw).Execute(context.Background(), loggedIn(), "qr1")

	assert.Equal(t, "/encuesta/12", out.Location)
}

func TestQR_NotFoundIsNonFatal(t *testing.T) {
	gw := newFakeGateway()
	gw.qrPendingErr = httperr.NewStatusError(http.StatusNotFound, "")

	out := NewResolveQR(gw).Execute(context.Background(), loggedIn(), "qr1")

	assert.Equal(t, domain.QRNoPending, out.Kind)
	assert.Equal(t, domain.MsgNoPendingWithBarber, out.Message)
}

func TestQR_NotFoundPrefersBackendMessage(t *testing.T) {
	gw := newFakeGateway()
	gw.qrPendingErr = httperr.NewStatusError(http.StatusNotFound, "Ya calificaste tu última cita")

	out := NewResolveQR(gw).Execute(context.Background(), loggedIn(), "qr1")

	assert.Equal(t, "Ya calificaste tu última cita", out.Message)
}

func TestQR_ExpiredSessionGoesBackToLogin(t *testing.T) {
	gw := newFakeGateway()
	gw.qrPendingErr = httperr.NewStatusError(http.StatusUnauthorized, "")
	sess := loggedIn()

	out := NewResolveQR(gw).Execute(context.Background(), sess, "qr1")

	assert.Equal(t, domain.QRRedirect, out.Kind)
	assert.Equal(t, "/login?redirect=%2Fencuesta%2Fqr%2Fqr1", out.Location)
	assert.False(t, sess.IsAuthenticated())
}

func TestQR_OtherErrorIsGeneric(t *testing.T) {
	gw := newFakeGateway()
	gw.qrPendingErr = httperr.NewStatusError(http.StatusInternalServerError, "")

	out := NewResolveQR(gw).Execute(context.Background(), loggedIn(), "qr1")

	assert.Equal(t, domain.QRFailed, out.Kind)
	assert.Equal(t, domain.MsgLoadFailed, out.Message)
}

func TestQR_NothingPending(t *testing.T) {
	gw := newFakeGateway()
	gw.qrPending = &models.QRPendingSurvey{}

	out := NewResolveQR(gw).Execute(context.Background(), loggedIn(), "qr1")

	assert.Equal(t, domain.QRNoPending, out.Kind)
}
