package gallery

import (
	"context"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

type Gateway interface {
	ListGallery(ctx context.Context) ([]models.GalleryItem, error)
}
