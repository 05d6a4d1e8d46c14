package schedule

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/barberrock-web/internal/audit"
	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type SaveSchedule struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewSaveSchedule(
	gw domain.Gateway,
	audit *audit.Dispatcher,
) *SaveSchedule {
	return &SaveSchedule{
		gw:    gw,
		audit: audit,
	}
}

func (uc *SaveSchedule) Execute(
	ctx context.Context,
	sess *session.Session,
	data domain.Data,
) error {

	if err := data.CheckSave(); err != nil {
		return err
	}

	if err := uc.gw.UpdateSchedule(ctx, sess.AccessToken(), data.ProfileID, data.Update()); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID(),
		UserID:    sess.UserID(),
		Action:    "schedule_updated",
		Entity:    "barber_profile",
		EntityID:  strconv.Itoa(data.ProfileID),
		Metadata:  data.Update(),
	})

	return nil
}
