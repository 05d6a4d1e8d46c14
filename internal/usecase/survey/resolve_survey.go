package survey

import (
	"context"

	"github.com/BruksfildServices01/barberrock-web/internal/audit"
	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/survey"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type ResolveSurvey struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewResolveSurvey(
	gw domain.Gateway,
	audit *audit.Dispatcher,
) *ResolveSurvey {
	return &ResolveSurvey{
		gw:    gw,
		audit: audit,
	}
}

// Execute turns a /encuesta/<segment> path into a form, a redirect or an
// error.
func (uc *ResolveSurvey) Execute(
	ctx context.Context,
	sess *session.Session,
	segment string,
) domain.Outcome {

	switch target := domain.Classify(segment).(type) {
	case domain.AppointmentID:
		return uc.byAppointment(ctx, sess, segment, target)
	case domain.SurveyToken:
		return uc.byToken(ctx, target)
	}
	return domain.Failure(domain.MsgSurveyNotFound)
}

// ======================================================
// NUMERIC APPOINTMENT ID
// ======================================================

func (uc *ResolveSurvey) byAppointment(
	ctx context.Context,
	sess *session.Session,
	segment string,
	id domain.AppointmentID,
) domain.Outcome {

	// Each segment is resolved once per session. Replaying a redirect to the
	// QR entry point would close the QR → appointment → QR cycle.
	if marker, ok := sess.SurveyMarker(segment); ok {
		if cached, ok := domain.ParseMarker(marker); ok {
			if cached.Kind == domain.OutcomeRedirect && domain.IsQRPath(cached.Location) {
				return domain.Failure(domain.MsgCannotAccess)
			}
			return cached
		}
	}

	token := sess.AccessToken()
	if token == "" {
		return domain.Redirect(domain.LoginPath("/encuesta/" + segment))
	}

	out, expired := uc.lookup(ctx, token, string(id))
	if expired {
		sess.Clear()
		return domain.Redirect(domain.LoginPath("/encuesta/" + segment))
	}

	sess.MarkSurvey(segment, out.Marker())

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID(),
		UserID:    sess.UserID(),
		Action:    "survey_appointment_resolved",
		Entity:    "appointment",
		EntityID:  segment,
		Metadata:  map[string]string{"outcome": string(out.Kind), "location": out.Location},
	})

	return out
}

// lookup walks appointment → survey token → barber QR token, stopping at
// the first that yields a destination.
func (uc *ResolveSurvey) lookup(ctx context.Context, token, id string) (domain.Outcome, bool) {
	ap, err := uc.gw.GetAppointment(ctx, token, id)
	if err != nil {
		if httperr.IsUnauthorized(err) {
			return domain.Outcome{}, true
		}
		return domain.Failure(domain.MsgAppointmentNotFound), false
	}

	if surveys, err := uc.gw.ListSurveysForAppointment(ctx, token, id); err == nil {
		for _, s := range surveys {
			if s.SurveyToken != "" {
				return domain.Redirect(domain.TokenPath(s.SurveyToken)), false
			}
		}
	}

	if ap.Barbero != nil && ap.Barbero.QRToken != "" {
		return domain.Redirect(domain.QRPath(ap.Barbero.QRToken)), false
	}

	return domain.Failure(domain.MsgCannotAccess), false
}

// ======================================================
// SURVEY TOKEN
// ======================================================

func (uc *ResolveSurvey) byToken(ctx context.Context, token domain.SurveyToken) domain.Outcome {
	info, err := uc.gw.GetSurveyInfo(ctx, string(token))
	if err != nil {
		if httperr.IsTransport(err) {
			return domain.Failure(httperr.MsgCouldNotLoad)
		}
		return domain.Failure(domain.MsgSurveyNotFound)
	}
	return domain.ShowForm(info)
}
