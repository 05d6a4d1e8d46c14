package catalog

import (
	"sort"
	"strings"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

// Sort keys accepted by the services page.
const (
	SortPriceAsc     = "price_asc"
	SortPriceDesc    = "price_desc"
	SortDurationAsc  = "duration_asc"
	SortDurationDesc = "duration_desc"
)

type Filter struct {
	Query string
	Sort  string
}

// NewFilter normalizes raw query parameters. Unknown sort keys keep the
// backend order.
func NewFilter(query, sortKey string) Filter {
	f := Filter{
		Query: strings.ToLower(strings.TrimSpace(query)),
		Sort:  strings.ToLower(strings.TrimSpace(sortKey)),
	}
	switch f.Sort {
	case SortPriceAsc, SortPriceDesc, SortDurationAsc, SortDurationDesc:
	default:
		f.Sort = ""
	}
	return f
}

// Apply returns the matching services. The input is not modified.
func (f Filter) Apply(list []models.Service) []models.Service {
	out := make([]models.Service, 0, len(list))
	for _, s := range list {
		if f.Query != "" &&
			!strings.Contains(strings.ToLower(s.Nombre), f.Query) &&
			!strings.Contains(strings.ToLower(s.Descripcion), f.Query) {
			continue
		}
		out = append(out, s)
	}

	var less func(a, b models.Service) bool
	switch f.Sort {
	case SortPriceAsc:
		less = func(a, b models.Service) bool { return a.Precio < b.Precio }
	case SortPriceDesc:
		less = func(a, b models.Service) bool { return a.Precio > b.Precio }
	case SortDurationAsc:
		less = func(a, b models.Service) bool { return a.Duracion < b.Duracion }
	case SortDurationDesc:
		less = func(a, b models.Service) bool { return a.Duracion > b.Duracion }
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}
