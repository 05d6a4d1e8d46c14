package models

// Appointment is the subset of /api/citas/{id}/ the web front end reads.
type Appointment struct {
	ID            int            `json:"id"`
	FechaHora     string         `json:"fecha_hora"`
	Estado        string         `json:"estado"`
	Barbero       *BarberProfile `json:"barbero"`
	SurveyToken   string         `json:"survey_token"`
	EncuestaToken string         `json:"encuesta_token"`
	TieneEncuesta bool           `json:"tiene_encuesta"`
}

// Survey is one entry of /api/encuestas/?cita={id}.
type Survey struct {
	ID          int    `json:"id"`
	Cita        int    `json:"cita"`
	SurveyToken string `json:"survey_token"`
}
