package schedule

import (
	"context"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

type Gateway interface {
	ListBarbers(ctx context.Context, token string) ([]models.BarberProfile, error)
	UpdateSchedule(ctx context.Context, token string, profileID int, upd models.ScheduleUpdate) error
}
