package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

// ======================================================
// APPOINTMENT → SURVEY LOOKUP (authenticated)
// ======================================================

func (c *Client) GetAppointment(ctx context.Context, token, id string) (*models.Appointment, error) {
	var out models.Appointment
	if err := c.do(ctx, http.MethodGet, "/api/citas/"+url.PathEscape(id)+"/", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSurveysForAppointment(ctx context.Context, token, appointmentID string) ([]models.Survey, error) {
	q := url.Values{"cita": {appointmentID}}
	return getList[models.Survey](ctx, c, "/api/encuestas/?"+q.Encode(), token)
}

// ======================================================
// SURVEY BY TOKEN (public)
// ======================================================

func (c *Client) GetSurveyInfo(ctx context.Context, surveyToken string) (*models.SurveyInfo, error) {
	q := url.Values{"token": {surveyToken}}
	var out models.SurveyInfo
	if err := c.do(ctx, http.MethodGet, "/api/encuestas/info/?"+q.Encode(), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitSurvey(ctx context.Context, sub models.SurveySubmission) error {
	return c.do(ctx, http.MethodPost, "/api/encuestas/enviar/", "", sub, nil)
}

// ======================================================
// QR ENTRY POINT
// ======================================================

func (c *Client) GetQRInfo(ctx context.Context, qrToken string) (*models.QRPublicInfo, error) {
	var out models.QRPublicInfo
	if err := c.do(ctx, http.MethodGet, "/api/qr/"+url.PathEscape(qrToken)+"/", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetQRPendingSurvey(ctx context.Context, token, qrToken string) (*models.QRPendingSurvey, error) {
	var out models.QRPendingSurvey
	if err := c.do(ctx, http.MethodGet, "/api/qr/"+url.PathEscape(qrToken)+"/encuesta/", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
