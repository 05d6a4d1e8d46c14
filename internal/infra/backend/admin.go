package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

func (c *Client) ListAlerts(ctx context.Context, token string) ([]models.Alert, error) {
	return getList[models.Alert](ctx, c, "/api/admin/alertas/", token)
}

func (c *Client) MarkAlertSent(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/admin/alertas/%d/enviar/", id), token, nil, nil)
}

func (c *Client) GetGeneralStats(ctx context.Context, token string) (*models.GeneralStats, error) {
	var out models.GeneralStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/estadisticas-generales/", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
