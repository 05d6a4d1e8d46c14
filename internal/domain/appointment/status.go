package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "agendada"
	StatusConfirmed  Status = "confirmada"
	StatusInProgress Status = "en_progreso"
	StatusCompleted  Status = "completada"
	StatusCancelled  Status = "cancelada"
	StatusNoShow     Status = "no_show"
)

var labels = map[Status]string{
	StatusScheduled:  "Agendada",
	StatusConfirmed:  "Confirmada",
	StatusInProgress: "En progreso",
	StatusCompleted:  "Completada",
	StatusCancelled:  "Cancelada",
	StatusNoShow:     "No se presentó",
}

// Label is the display name of s. Unknown values are shown as sent.
func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// Badge picks the colour class of the status pill.
func (s Status) Badge() string {
	switch s {
	case StatusCompleted:
		return "badge-done"
	case StatusConfirmed:
		return "badge-confirmed"
	}
	return "badge-neutral"
}

// IsPending reports whether the appointment still lies ahead.
func (s Status) IsPending() bool {
	return s == StatusScheduled || s == StatusConfirmed
}
