package auth

import (
	"github.com/BruksfildServices01/barberrock-web/internal/audit"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type Logout struct {
	audit *audit.Dispatcher
}

func NewLogout(audit *audit.Dispatcher) *Logout {
	return &Logout{audit: audit}
}

func (uc *Logout) Execute(sess *session.Session) {
	userID := sess.UserID()
	sess.Clear()

	if userID == "" {
		return
	}
	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID(),
		UserID:    userID,
		Action:    "logout",
		Entity:    "user",
		EntityID:  userID,
	})
}
