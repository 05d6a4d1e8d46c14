package survey

import (
	"context"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

// Gateway is the part of the REST API the survey flow depends on.
type Gateway interface {
	GetAppointment(ctx context.Context, token, id string) (*models.Appointment, error)
	ListSurveysForAppointment(ctx context.Context, token, appointmentID string) ([]models.Survey, error)
	GetSurveyInfo(ctx context.Context, surveyToken string) (*models.SurveyInfo, error)
	SubmitSurvey(ctx context.Context, sub models.SurveySubmission) error
	GetQRInfo(ctx context.Context, qrToken string) (*models.QRPublicInfo, error)
	GetQRPendingSurvey(ctx context.Context, token, qrToken string) (*models.QRPendingSurvey, error)
}
