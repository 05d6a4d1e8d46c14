package survey

import (
	"net/url"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

type QRKind string

const (
	// QRGate asks an anonymous visitor to log in or register.
	QRGate QRKind = "gate"
	// QRRedirect sends the client on to the survey.
	QRRedirect QRKind = "redirect"
	// QRInvalid is terminal and offers a link home.
	QRInvalid QRKind = "invalid"
	// QRNoPending is informative and offers a link to the dashboard.
	QRNoPending QRKind = "no_pending"
	// QRFailed is a generic load error.
	QRFailed QRKind = "failed"
)

type QROutcome struct {
	Kind        QRKind
	Barber      *models.QRBarber
	Message     string
	Location    string
	LoginURL    string
	RegisterURL string
}

const RegisterPath = "/registro"

// RegisterURL sends a new client to registration and brings them back to
// returnTo once the account exists.
func RegisterURL(returnTo string) string {
	return RegisterPath + "?redirect=" + url.QueryEscape(returnTo)
}
