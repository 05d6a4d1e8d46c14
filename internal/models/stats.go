package models

type ProductLine struct {
	ID     int     `json:"id"`
	Nombre string  `json:"nombre"`
	Precio Decimal `json:"precio"`
}

type RecentAppointment struct {
	ID        int           `json:"id"`
	Cliente   string        `json:"cliente"`
	Barbero   string        `json:"barbero"`
	Servicio  string        `json:"servicio"`
	FechaHora string        `json:"fecha_hora"`
	Estado    string        `json:"estado"`
	Precio    Decimal       `json:"precio"`
	Productos []ProductLine `json:"productos"`
}

// GeneralStats is returned by GET /api/admin/estadisticas-generales/.
type GeneralStats struct {
	TotalUsers            int                 `json:"total_users"`
	TotalClients          int                 `json:"total_clients"`
	TotalBarbers          int                 `json:"total_barbers"`
	TotalServices         int                 `json:"total_services"`
	TotalAppointments     int                 `json:"total_appointments"`
	CompletedAppointments int                 `json:"completed_appointments"`
	AppointmentsThisMonth int                 `json:"appointments_this_month"`
	AverageRating         float64             `json:"average_rating"`
	RecentAppointments    []RecentAppointment `json:"recent_appointments"`
}
