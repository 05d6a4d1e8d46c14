package dto

import (
	"fmt"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

type ServiceDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	PriceLabel  string  `json:"precio_texto"`
	Duration    int     `json:"duracion"`
	ImageURL    string  `json:"imagen,omitempty"`
}

// PriceLabel renders a price the way the booking page prints it:
// "$15.00", or "Desde $15.00" for services priced from a minimum.
func PriceLabel(price float64, from bool) string {
	label := fmt.Sprintf("$%.2f", price)
	if from {
		return "Desde " + label
	}
	return label
}

func NewServices(list []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, len(list))
	for i, s := range list {
		out[i] = ServiceDTO{
			ID:          s.ID,
			Name:        s.Nombre,
			Description: s.Descripcion,
			Price:       s.Precio.Float(),
			PriceLabel:  PriceLabel(s.Precio.Float(), s.PrecioDesde),
			Duration:    s.Duracion,
			ImageURL:    s.Imagen,
		}
	}
	return out
}
