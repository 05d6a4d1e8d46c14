package backend

import (
	"context"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

// ListGallery returns the raw gallery with media paths already absolute.
func (c *Client) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	items, err := getList[models.GalleryItem](ctx, c, "/api/galeria/", "")
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Imagen = c.MediaURL(items[i].Imagen)
	}
	return items, nil
}

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	items, err := getList[models.Service](ctx, c, "/api/servicios/", "")
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Imagen = c.MediaURL(items[i].Imagen)
	}
	return items, nil
}
