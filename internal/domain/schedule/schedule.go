package schedule

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

const (
	DefaultStart = "09:00"
	DefaultEnd   = "18:00"
)

var (
	ErrNoWorkingDays   = httperr.ErrBusinessMsg("no_working_days", "Debes seleccionar al menos un día laboral")
	ErrProfileNotFound = httperr.ErrBusinessMsg("profile_not_found", "Error: No se encontró el perfil del barbero")
	ErrInvalidDay      = httperr.ErrBusinessMsg("invalid_day", "Día inválido")
	ErrInvalidTime     = httperr.ErrBusinessMsg("invalid_time", "La hora debe tener el formato HH:MM")
)

// Weekday ids are "0".."6", 0 being Sunday.
type Weekday struct {
	ID   string
	Name string
}

var Weekdays = []Weekday{
	{"0", "Domingo"},
	{"1", "Lunes"},
	{"2", "Martes"},
	{"3", "Miércoles"},
	{"4", "Jueves"},
	{"5", "Viernes"},
	{"6", "Sábado"},
}

func DefaultDays() []string {
	return []string{"1", "2", "3", "4", "5", "6"}
}

// Data is the editable weekly template. ProfileID is 0 when the barber
// profile could not be located.
type Data struct {
	ProfileID   int      `json:"profile_id"`
	Start       string   `json:"horario_inicio"`
	End         string   `json:"horario_fin"`
	WorkingDays []string `json:"dias_laborales"`
}

func Default() Data {
	return Data{Start: DefaultStart, End: DefaultEnd, WorkingDays: DefaultDays()}
}

// ======================================================
// PROFILE LOOKUP
// ======================================================

// FindProfile scans the list for the profile owned by userID. The owner may
// be given as user.id, user_id or a bare user value.
func FindProfile(profiles []models.BarberProfile, userID string) (*models.BarberProfile, bool) {
	want, err := strconv.Atoi(strings.TrimSpace(userID))
	if err != nil {
		return nil, false
	}
	for i := range profiles {
		if id, ok := ownerID(profiles[i]); ok && id == want {
			return &profiles[i], true
		}
	}
	return nil, false
}

func ownerID(p models.BarberProfile) (int, bool) {
	var nested struct {
		ID json.RawMessage `json:"id"`
	}
	if isObject(p.User) && json.Unmarshal(p.User, &nested) == nil {
		if id, ok := asInt(nested.ID); ok {
			return id, true
		}
	}
	if id, ok := asInt(p.UserID); ok {
		return id, true
	}
	return asInt(p.User)
}

func isObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}

func asInt(raw json.RawMessage) (int, bool) {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return 0, false
	}
	var n int
	if json.Unmarshal(t, &n) == nil {
		return n, true
	}
	var s string
	if json.Unmarshal(t, &s) == nil {
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
	}
	return 0, false
}

// ======================================================
// NORMALIZATION
// ======================================================

// FromProfile builds the editable template from a profile, falling back to
// the defaults for missing fields.
func FromProfile(p *models.BarberProfile) Data {
	d := Default()
	if p == nil {
		return d
	}
	d.ProfileID = p.ID
	if s := trimTime(p.HorarioInicio); s != "" {
		d.Start = s
	}
	if s := trimTime(p.HorarioFin); s != "" {
		d.End = s
	}
	d.WorkingDays = NormalizeDays(p.DiasLaborales)
	return d
}

// trimTime drops the seconds the API adds to TimeField values.
func trimTime(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == len("09:00:00") && s[2] == ':' && s[5] == ':' {
		return s[:5]
	}
	return s
}

// NormalizeDays accepts a list of numbers or strings, or a string holding
// such a list as JSON. Missing or unparsable input gives the default days.
func NormalizeDays(raw json.RawMessage) []string {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return DefaultDays()
	}

	if t[0] == '"' {
		var encoded string
		if err := json.Unmarshal(t, &encoded); err != nil {
			return DefaultDays()
		}
		t = bytes.TrimSpace([]byte(encoded))
		if len(t) == 0 || t[0] != '[' {
			return DefaultDays()
		}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(t, &elems); err != nil {
		return DefaultDays()
	}

	out := make([]string, 0, len(elems))
	for _, e := range elems {
		var s string
		if json.Unmarshal(e, &s) == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(bytes.TrimSpace(e)))
	}
	return out
}

// ======================================================
// EDITING
// ======================================================

func validDay(id string) bool {
	return len(id) == 1 && id[0] >= '0' && id[0] <= '6'
}

// Toggle flips the membership of day.
func (d *Data) Toggle(day string) error {
	if !validDay(day) {
		return ErrInvalidDay
	}
	for i, cur := range d.WorkingDays {
		if cur == day {
			d.WorkingDays = append(d.WorkingDays[:i:i], d.WorkingDays[i+1:]...)
			return nil
		}
	}
	d.WorkingDays = append(d.WorkingDays, day)
	return nil
}

func (d Data) Has(day string) bool {
	for _, cur := range d.WorkingDays {
		if cur == day {
			return true
		}
	}
	return false
}

// SortedDays returns the working days in ascending weekday order.
func (d Data) SortedDays() []string {
	out := append([]string(nil), d.WorkingDays...)
	sort.SliceStable(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i])
		b, errB := strconv.Atoi(out[j])
		if errA != nil || errB != nil {
			return out[i] < out[j]
		}
		return a < b
	})
	return out
}

// ValidTime reports whether s is a 24h HH:MM clock time.
func ValidTime(s string) bool {
	if len(s) != len("15:04") {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// CheckInput validates what the barber typed. It needs no profile.
func (d Data) CheckInput() error {
	if len(d.WorkingDays) == 0 {
		return ErrNoWorkingDays
	}
	if !ValidTime(d.Start) || !ValidTime(d.End) {
		return ErrInvalidTime
	}
	return nil
}

// CheckSave runs the local checks that must pass before any call is made.
func (d Data) CheckSave() error {
	if err := d.CheckInput(); err != nil {
		return err
	}
	if d.ProfileID == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (d Data) Update() models.ScheduleUpdate {
	return models.ScheduleUpdate{
		HorarioInicio: d.Start,
		HorarioFin:    d.End,
		DiasLaborales: append([]string(nil), d.WorkingDays...),
	}
}
