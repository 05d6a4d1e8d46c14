package schedule

import (
	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

// The template being edited survives between requests in the session.

func LoadDraft(sess *session.Session) (domain.Data, bool) {
	var d domain.Data
	if !sess.GetJSON(session.KeyScheduleDraft, &d) {
		return domain.Data{}, false
	}
	return d, true
}

func StoreDraft(sess *session.Session, d domain.Data) error {
	return sess.SetJSON(session.KeyScheduleDraft, d)
}

func DropDraft(sess *session.Session) {
	sess.Delete(session.KeyScheduleDraft)
}
