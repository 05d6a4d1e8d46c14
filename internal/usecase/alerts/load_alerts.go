package alerts

import (
	"context"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/alerts"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
)

type LoadAlerts struct {
	gw domain.Gateway
}

func NewLoadAlerts(gw domain.Gateway) *LoadAlerts {
	return &LoadAlerts{gw: gw}
}

// Execute refreshes feed. On failure the previous list stays in place.
func (uc *LoadAlerts) Execute(
	ctx context.Context,
	token string,
	feed *domain.Feed,
) error {

	list, err := uc.gw.ListAlerts(ctx, token)
	if err != nil {
		if httperr.IsUnauthorized(err) {
			feed.Fail(httperr.MsgSessionExpired, true)
			return err
		}
		feed.Fail(domain.MsgLoadFailed, false)
		return err
	}

	feed.Replace(list)
	return nil
}
