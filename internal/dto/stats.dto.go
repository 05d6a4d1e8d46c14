package dto

import (
	"github.com/BruksfildServices01/barberrock-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barberrock-web/internal/timezone"
	"github.com/BruksfildServices01/barberrock-web/internal/usecase/stats"
)

type RecentAppointmentDTO struct {
	ID          int      `json:"id"`
	Client      string   `json:"cliente"`
	Barber      string   `json:"barbero"`
	Service     string   `json:"servicio"`
	When        string   `json:"fecha_hora"`
	Status      string   `json:"estado"`
	StatusLabel string   `json:"estado_texto"`
	StatusBadge string   `json:"-"`
	Price       float64  `json:"precio"`
	Products    []string `json:"productos"`
}

type StatsDTO struct {
	TotalUsers            int                    `json:"total_users"`
	TotalClients          int                    `json:"total_clients"`
	TotalBarbers          int                    `json:"total_barbers"`
	TotalServices         int                    `json:"total_services"`
	TotalAppointments     int                    `json:"total_appointments"`
	CompletedAppointments int                    `json:"completed_appointments"`
	AppointmentsThisMonth int                    `json:"appointments_this_month"`
	AverageRating         float64                `json:"average_rating"`
	CompletionRate        float64                `json:"completion_rate"`
	Recent                []RecentAppointmentDTO `json:"recent_appointments"`
}

func NewStats(r *stats.Result, tz string) StatsDTO {
	s := r.Stats
	out := StatsDTO{
		TotalUsers:            s.TotalUsers,
		TotalClients:          s.TotalClients,
		TotalBarbers:          s.TotalBarbers,
		TotalServices:         s.TotalServices,
		TotalAppointments:     s.TotalAppointments,
		CompletedAppointments: s.CompletedAppointments,
		AppointmentsThisMonth: s.AppointmentsThisMonth,
		AverageRating:         s.AverageRating,
		CompletionRate:        r.CompletionRate,
		Recent:                make([]RecentAppointmentDTO, 0, len(s.RecentAppointments)),
	}
	for _, a := range s.RecentAppointments {
		products := make([]string, 0, len(a.Productos))
		for _, p := range a.Productos {
			products = append(products, p.Nombre)
		}
		out.Recent = append(out.Recent, RecentAppointmentDTO{
			ID:          a.ID,
			Client:      a.Cliente,
			Barber:      a.Barbero,
			Service:     a.Servicio,
			When:        timezone.Format(a.FechaHora, tz),
			Status:      a.Estado,
			StatusLabel: appointment.Status(a.Estado).Label(),
			StatusBadge: appointment.Status(a.Estado).Badge(),
			Price:       a.Precio.Float(),
			Products:    products,
		})
	}
	return out
}
