package gallery

import (
	"sort"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

// Visible keeps active items and orders them by orden. Items sharing an
// orden keep the backend order.
func Visible(items []models.GalleryItem) []models.GalleryItem {
	out := make([]models.GalleryItem, 0, len(items))
	for _, it := range items {
		if it.Activo {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Orden < out[j].Orden
	})
	return out
}
