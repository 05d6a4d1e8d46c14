package dto

import (
	"github.com/BruksfildServices01/barberrock-web/internal/domain/gallery"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

type GalleryItemDTO struct {
	Index       int    `json:"index"`
	ID          int    `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	ImageURL    string `json:"imagen,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	EmbedURL    string `json:"embed_url,omitempty"`
	IsVideo     bool   `json:"es_video"`
}

func NewGalleryItems(items []models.GalleryItem) []GalleryItemDTO {
	out := make([]GalleryItemDTO, len(items))
	for i, it := range items {
		out[i] = GalleryItemDTO{
			Index:       i,
			ID:          it.ID,
			Title:       it.Titulo,
			Description: it.Descripcion,
			ImageURL:    it.Imagen,
			VideoURL:    it.VideoURL,
			IsVideo:     it.EsVideo,
		}
		if it.EsVideo && it.VideoURL != "" {
			out[i].EmbedURL = gallery.EmbedURL(it.VideoURL)
		}
	}
	return out
}

// LightboxDTO is the open modal with its neighbour links.
type LightboxDTO struct {
	Item  GalleryItemDTO `json:"item"`
	Prev  int            `json:"prev"`
	Next  int            `json:"next"`
	Total int            `json:"total"`
	Nav   bool           `json:"nav"`
}

// NewLightbox opens index over items. ok is false when index is out of
// range.
func NewLightbox(items []GalleryItemDTO, index int) (LightboxDTO, bool) {
	lb := gallery.NewLightbox(len(items))
	if !lb.Open(index) {
		return LightboxDTO{}, false
	}
	prev, next := lb.Neighbours()
	return LightboxDTO{
		Item:  items[lb.Index()],
		Prev:  prev,
		Next:  next,
		Total: lb.Len(),
		Nav:   lb.Len() > 1,
	}, true
}
