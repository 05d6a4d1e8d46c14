package catalog

import (
	"context"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

type Gateway interface {
	ListServices(ctx context.Context) ([]models.Service, error)
}

type ListServices struct {
	gw Gateway
}

func NewListServices(gw Gateway) *ListServices {
	return &ListServices{gw: gw}
}

// Execute returns the active services in backend order.
func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	all, err := uc.gw.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Service, 0, len(all))
	for _, s := range all {
		if s.Activo {
			out = append(out, s)
		}
	}
	return out, nil
}
