package stats

import (
	"context"
	"math"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type Gateway interface {
	GetGeneralStats(ctx context.Context, token string) (*models.GeneralStats, error)
}

type Result struct {
	Stats          models.GeneralStats
	CompletionRate float64
}

type GetStats struct {
	gw Gateway
}

func NewGetStats(gw Gateway) *GetStats {
	return &GetStats{gw: gw}
}

func (uc *GetStats) Execute(ctx context.Context, sess *session.Session) (*Result, error) {
	s, err := uc.gw.GetGeneralStats(ctx, sess.AccessToken())
	if err != nil {
		return nil, err
	}
	return &Result{
		Stats:          *s,
		CompletionRate: CompletionRate(s.CompletedAppointments, s.TotalAppointments),
	}, nil
}

// CompletionRate is completed/total as a percentage with one decimal.
func CompletionRate(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
