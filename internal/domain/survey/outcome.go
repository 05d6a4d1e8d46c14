package survey

import (
	"net/url"
	"strings"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

// User-facing messages of the resolution flow.
const (
	MsgAppointmentNotFound = "No se encontró la cita"
	MsgCannotAccess        = "No se puede acceder a la encuesta. Contacta al administrador."
	MsgSurveyNotFound      = "No se encontró la encuesta solicitada"
	MsgSubmitFailed        = "No se pudo registrar la encuesta"
	MsgInvalidQR           = "Código QR inválido"
	MsgNoPendingWithBarber = "No tienes citas pendientes de calificación con este barbero"
	MsgLoadFailed          = "Error al cargar la información"
)

type OutcomeKind string

const (
	OutcomeForm     OutcomeKind = "form"
	OutcomeRedirect OutcomeKind = "redirect"
	OutcomeError    OutcomeKind = "error"
)

// Outcome is the result of resolving one path segment. Exactly one of
// Location (redirect), Message (error) or Info (form) is meaningful.
type Outcome struct {
	Kind      OutcomeKind
	Location  string
	Message   string
	Info      *models.SurveyInfo
	Form      Form
	Submitted bool
}

func Redirect(location string) Outcome {
	return Outcome{Kind: OutcomeRedirect, Location: location}
}

func Failure(message string) Outcome {
	return Outcome{Kind: OutcomeError, Message: message}
}

// ShowForm builds the form outcome, pre-filled when the survey was already
// answered.
func ShowForm(info *models.SurveyInfo) Outcome {
	o := Outcome{Kind: OutcomeForm, Info: info, Form: DefaultForm()}
	if info != nil && info.Encuesta != nil {
		o.Form = FormFromAnswers(*info.Encuesta)
		o.Submitted = true
	}
	return o
}

// Marker encodes a redirect or error outcome for the session cache.
func (o Outcome) Marker() string {
	switch o.Kind {
	case OutcomeRedirect:
		return string(OutcomeRedirect) + ":" + o.Location
	case OutcomeError:
		return string(OutcomeError) + ":" + o.Message
	}
	return ""
}

func ParseMarker(marker string) (Outcome, bool) {
	kind, rest, ok := strings.Cut(marker, ":")
	if !ok {
		return Outcome{}, false
	}
	switch OutcomeKind(kind) {
	case OutcomeRedirect:
		return Redirect(rest), true
	case OutcomeError:
		return Failure(rest), true
	}
	return Outcome{}, false
}

// ======================================================
// PATHS
// ======================================================

func TokenPath(token string) string {
	return "/encuesta/" + url.PathEscape(token)
}

func QRPath(qrToken string) string {
	return "/encuesta/qr/" + url.PathEscape(qrToken)
}

func IsQRPath(p string) bool {
	return strings.HasPrefix(p, "/encuesta/qr/")
}

func LoginPath(returnTo string) string {
	return "/login?redirect=" + url.QueryEscape(returnTo)
}
