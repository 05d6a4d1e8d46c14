package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

func (c *Client) ListBarbers(ctx context.Context, token string) ([]models.BarberProfile, error) {
	return getList[models.BarberProfile](ctx, c, "/api/barberos/", token)
}

func (c *Client) UpdateSchedule(ctx context.Context, token string, profileID int, upd models.ScheduleUpdate) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/barberos/%d/", profileID), token, upd, nil)
}
