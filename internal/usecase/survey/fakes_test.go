package survey

import (
	"context"
	"net/http"
	"sync"

	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

// fakeGateway is an in-memory API. Submitted answers are returned by later
// info lookups of the same token.
type fakeGateway struct {
	mu    sync.Mutex
	calls []string

	appointments map[string]*models.Appointment
	appointErr   error
	surveys      map[string][]models.Survey
	infos        map[string]*models.SurveyInfo
	submitErr    error

	qrInfo       map[string]*models.QRPublicInfo
	qrPending    *models.QRPendingSurvey
	qrPendingErr error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		appointments: map[string]*models.Appointment{},
		surveys:      map[string][]models.Survey{},
		infos:        map[string]*models.SurveyInfo{},
		qrInfo:       map[string]*models.QRPublicInfo{},
	}
}

func (f *fakeGateway) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeGateway) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeGateway) GetAppointment(_ context.Context, _, id string) (*models.Appointment, error) {
	f.record("appointment:" + id)
	if f.appointErr != nil {
		return nil, f.appointErr
	}
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.NewStatusError(http.StatusNotFound, "")
	}
	return ap, nil
}

func (f *fakeGateway) ListSurveysForAppointment(_ context.Context, _, id string) ([]models.Survey, error) {
	f.record("surveys:" + id)
	return f.surveys[id], nil
}

func (f *fakeGateway) GetSurveyInfo(_ context.Context, token string) (*models.SurveyInfo, error) {
	f.record("info:" + token)
	f.mu.Lock()
	defer f.mu.Unlock()
	info, ok := f.infos[token]
	if !ok {
		return nil, httperr.NewStatusError(http.StatusNotFound, "Token inválido")
	}
	cp := *info
	return &cp, nil
}

func (f *fakeGateway) SubmitSurvey(_ context.Context, sub models.SurveySubmission) error {
	f.record("submit:" + sub.Token)
	if f.submitErr != nil {
		return f.submitErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	info, ok := f.infos[sub.Token]
	if !ok {
		return httperr.NewStatusError(http.StatusNotFound, "Token inválido")
	}
	answers := sub.SurveyAnswers
	info.Encuesta = &answers
	info.TieneEncuesta = true
	return nil
}

func (f *fakeGateway) GetQRInfo(_ context.Context, qr string) (*models.QRPublicInfo, error) {
	f.record("qr:" + qr)
	info, ok := f.qrInfo[qr]
	if !ok {
		return nil, httperr.NewStatusError(http.StatusNotFound, "QR no encontrado")
	}
	return info, nil
}

func (f *fakeGateway) GetQRPendingSurvey(_ context.Context, _, qr string) (*models.QRPendingSurvey, error) {
	f.record("qr_pending:" + qr)
	if f.qrPendingErr != nil {
		return nil, f.qrPendingErr
	}
	return f.qrPending, nil
}
