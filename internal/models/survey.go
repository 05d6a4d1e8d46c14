package models

type SurveyBarber struct {
	Nombre string `json:"nombre"`
}

type SurveyService struct {
	Nombre   string `json:"nombre"`
	Duracion int    `json:"duracion"`
}

// SurveyAnswers holds the rating fields shared by the info payload and the
// submit body.
type SurveyAnswers struct {
	Calificacion            int    `json:"calificacion"`
	LimpiezaCalificacion    int    `json:"limpieza_calificacion"`
	PuntualidadCalificacion int    `json:"puntualidad_calificacion"`
	TratoCalificacion       int    `json:"trato_calificacion"`
	Recomendaria            bool   `json:"recomendaria"`
	Comentarios             string `json:"comentarios"`
}

// SurveyInfo is returned by GET /api/encuestas/info/?token=.
type SurveyInfo struct {
	CitaID        int            `json:"cita_id"`
	Token         string         `json:"token"`
	TieneEncuesta bool           `json:"tiene_encuesta"`
	ClienteNombre string         `json:"cliente_nombre"`
	ClienteEmail  string         `json:"cliente_email"`
	Barbero       SurveyBarber   `json:"barbero"`
	Servicio      SurveyService  `json:"servicio"`
	FechaHora     string         `json:"fecha_hora"`
	Encuesta      *SurveyAnswers `json:"encuesta"`
}

type SurveySubmission struct {
	Token         string `json:"token"`
	AppointmentID int    `json:"appointment_id"`
	SurveyAnswers
}

type QRBarber struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// QRPublicInfo is returned by GET /api/qr/{token}/.
type QRPublicInfo struct {
	Barbero QRBarber `json:"barbero"`
	Mensaje string   `json:"mensaje"`
}

type QRPendingAppointment struct {
	ID            int    `json:"id"`
	FechaHora     string `json:"fecha_hora"`
	Servicio      string `json:"servicio"`
	Barbero       string `json:"barbero"`
	EncuestaToken string `json:"encuesta_token"`
	SurveyToken   string `json:"survey_token"`
}

// QRPendingSurvey is returned by GET /api/qr/{token}/encuesta/.
type QRPendingSurvey struct {
	TieneCitaPendiente bool                  `json:"tiene_cita_pendiente"`
	Cita               *QRPendingAppointment `json:"cita"`
}
