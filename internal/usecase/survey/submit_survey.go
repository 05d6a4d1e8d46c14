package survey

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/barberrock-web/internal/audit"
	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/survey"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type SubmitSurvey struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewSubmitSurvey(
	gw domain.Gateway,
	audit *audit.Dispatcher,
) *SubmitSurvey {
	return &SubmitSurvey{
		gw:    gw,
		audit: audit,
	}
}

// Execute creates or updates the survey behind token. Sending the same
// token again edits the existing answers.
func (uc *SubmitSurvey) Execute(
	ctx context.Context,
	sess *session.Session,
	token string,
	appointmentID int,
	form domain.Form,
) error {

	if err := form.Validate(); err != nil {
		return err
	}

	if err := uc.gw.SubmitSurvey(ctx, models.SurveySubmission{
		Token:         token,
		AppointmentID: appointmentID,
		SurveyAnswers: form.Answers(),
	}); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID(),
		UserID:    sess.UserID(),
		Action:    "survey_submitted",
		Entity:    "appointment",
		EntityID:  strconv.Itoa(appointmentID),
		Metadata:  map[string]int{"calificacion": form.Overall},
	})

	return nil
}
