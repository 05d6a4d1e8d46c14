package audit

import (
	"github.com/rs/zerolog"
)

// Logger writes activity events as structured log lines. The backend owns
// the real audit trail; these lines tie web actions to a session.
type Logger struct {
	log zerolog.Logger
}

func New(base zerolog.Logger) *Logger {
	return &Logger{log: base.With().Str("component", "audit").Logger()}
}

func (l *Logger) Log(ev Event) error {
	e := l.log.Info().
		Str("action", ev.Action).
		Str("entity", ev.Entity)

	if ev.EntityID != "" {
		e = e.Str("entity_id", ev.EntityID)
	}
	if ev.UserID != "" {
		e = e.Str("user_id", ev.UserID)
	}
	if ev.SessionID != "" {
		e = e.Str("session_id", ev.SessionID)
	}
	if ev.Metadata != nil {
		e = e.Interface("metadata", ev.Metadata)
	}

	e.Msg("activity")
	return nil
}
