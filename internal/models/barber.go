package models

import "encoding/json"

// BarberProfile mirrors /api/barberos/. user, user_id and dias_laborales
// come in more than one shape and are normalized by the schedule domain.
type BarberProfile struct {
	ID            int             `json:"id"`
	User          json.RawMessage `json:"user,omitempty"`
	UserID        json.RawMessage `json:"user_id,omitempty"`
	Especialidad  string          `json:"especialidad"`
	Descripcion   string          `json:"descripcion"`
	HorarioInicio string          `json:"horario_inicio"`
	HorarioFin    string          `json:"horario_fin"`
	DiasLaborales json.RawMessage `json:"dias_laborales,omitempty"`
	Activo        bool            `json:"activo"`
	QRToken       string          `json:"qr_token"`
	QRURL         string          `json:"qr_url"`
}

type ScheduleUpdate struct {
	HorarioInicio string   `json:"horario_inicio"`
	HorarioFin    string   `json:"horario_fin"`
	DiasLaborales []string `json:"dias_laborales"`
}
