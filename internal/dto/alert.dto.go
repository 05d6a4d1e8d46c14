package dto

import (
	"github.com/BruksfildServices01/barberrock-web/internal/domain/alerts"
	"github.com/BruksfildServices01/barberrock-web/internal/timezone"
)

type AlertDTO struct {
	ID            int    `json:"id"`
	AppointmentID int    `json:"appointment_id"`
	ClientName    string `json:"cliente_nombre"`
	ClientPhone   string `json:"cliente_telefono"`
	BarberName    string `json:"barbero"`
	ServiceName   string `json:"servicio"`
	ScheduledAt   string `json:"fecha_hora"`
	CreatedAt     string `json:"fecha_creacion"`
	HasWhatsapp   bool   `json:"tiene_whatsapp"`
}

type AlertFeedDTO struct {
	Type           string     `json:"type"`
	Loading        bool       `json:"loading"`
	Alerts         []AlertDTO `json:"alerts"`
	Error          string     `json:"error,omitempty"`
	SessionExpired bool       `json:"session_expired,omitempty"`
}

// NewAlertFeed renders a snapshot with times in the shop timezone. The
// WhatsApp URL itself is only handed out on dispatch.
func NewAlertFeed(s alerts.Snapshot, tz string) AlertFeedDTO {
	out := AlertFeedDTO{
		Type:           "alerts",
		Loading:        s.Loading,
		Alerts:         make([]AlertDTO, len(s.Alerts)),
		Error:          s.Error,
		SessionExpired: s.Expired,
	}
	for i, a := range s.Alerts {
		out.Alerts[i] = AlertDTO{
			ID:            a.ID,
			AppointmentID: a.AppointmentID,
			ClientName:    a.ClienteNombre,
			ClientPhone:   a.ClienteTelefono,
			BarberName:    a.Barbero,
			ServiceName:   a.Servicio,
			ScheduledAt:   timezone.Format(a.FechaHora, tz),
			CreatedAt:     timezone.Format(a.FechaCreacion, tz),
			HasWhatsapp:   a.WhatsappURL != "",
		}
	}
	return out
}
