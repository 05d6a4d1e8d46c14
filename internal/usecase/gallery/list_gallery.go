package gallery

import (
	"context"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/gallery"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

type ListGallery struct {
	gw domain.Gateway
}

func NewListGallery(gw domain.Gateway) *ListGallery {
	return &ListGallery{gw: gw}
}

// Execute returns the items to display, in display order.
func (uc *ListGallery) Execute(ctx context.Context) ([]models.GalleryItem, error) {
	items, err := uc.gw.ListGallery(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Visible(items), nil
}
