package schedule

import (
	"context"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type LoadSchedule struct {
	gw domain.Gateway
}

func NewLoadSchedule(gw domain.Gateway) *LoadSchedule {
	return &LoadSchedule{gw: gw}
}

// Execute returns the barber's template. When the profile can not be found
// the defaults are returned with ProfileID 0 and found=false; err is only
// set when the list could not be fetched.
func (uc *LoadSchedule) Execute(
	ctx context.Context,
	sess *session.Session,
) (data domain.Data, found bool, err error) {

	profiles, err := uc.gw.ListBarbers(ctx, sess.AccessToken())
	if err != nil {
		return domain.Default(), false, err
	}

	p, ok := domain.FindProfile(profiles, sess.UserID())
	if !ok {
		return domain.Default(), false, nil
	}
	return domain.FromProfile(p), true, nil
}
