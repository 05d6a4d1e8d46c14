package alerts

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/barberrock-web/internal/audit"
	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/alerts"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type DispatchAlert struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewDispatchAlert(
	gw domain.Gateway,
	audit *audit.Dispatcher,
) *DispatchAlert {
	return &DispatchAlert{
		gw:    gw,
		audit: audit,
	}
}

// Execute returns the WhatsApp URL to open and marks the alert as sent.
// The URL is returned even when marking fails, since the chat is opened
// first; the alert then stays in the list.
func (uc *DispatchAlert) Execute(
	ctx context.Context,
	sess *session.Session,
	feed *domain.Feed,
	alertID int,
) (string, error) {

	alert, ok := feed.Find(alertID)
	if !ok {
		return "", domain.ErrAlertNotFound
	}
	if alert.WhatsappURL == "" {
		return "", domain.ErrNoPhone
	}

	if err := uc.gw.MarkAlertSent(ctx, sess.AccessToken(), alertID); err != nil {
		return alert.WhatsappURL, err
	}

	feed.Remove(alertID)

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID(),
		UserID:    sess.UserID(),
		Action:    "alert_sent",
		Entity:    "alert",
		EntityID:  strconv.Itoa(alertID),
		Metadata:  map[string]int{"appointment_id": alert.AppointmentID},
	})

	return alert.WhatsappURL, nil
}
