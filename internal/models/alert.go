package models

// Alert is one pending new-appointment notification.
type Alert struct {
	ID              int    `json:"id"`
	AppointmentID   int    `json:"appointment_id"`
	ClienteNombre   string `json:"cliente_nombre"`
	ClienteTelefono string `json:"cliente_telefono"`
	Barbero         string `json:"barbero"`
	Servicio        string `json:"servicio"`
	FechaHora       string `json:"fecha_hora"`
	WhatsappURL     string `json:"whatsapp_url"`
	FechaCreacion   string `json:"fecha_creacion"`
}
