package account

import (
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
	"github.com/BruksfildServices01/barberrock-web/internal/validators"
)

const (
	MinPasswordLength = 8
	phoneDigits       = 10
	birthDateLayout   = "2006-01-02"
)

// Registration is what a visitor fills in on the sign-up page.
type Registration struct {
	FirstName       string
	LastName        string
	Email           string
	Telefono        string
	FechaNacimiento string
	Password        string
	Confirm         string
}

// FieldErrors maps a form field to the message shown under it. The key
// "general" holds errors not tied to one field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "invalid registration: " + strings.Join(parts, "; ")
}

func (r Registration) Normalize() Registration {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Telefono = strings.TrimSpace(r.Telefono)
	r.FechaNacimiento = strings.TrimSpace(r.FechaNacimiento)
	return r
}

// Validate checks the form as typed. today is the caller's current date;
// a birth date after it is rejected.
func (r Registration) Validate(today time.Time) FieldErrors {
	errs := FieldErrors{}

	if r.FirstName == "" {
		errs["first_name"] = "El nombre es requerido"
	}
	if r.LastName == "" {
		errs["last_name"] = "Los apellidos son requeridos"
	}

	switch {
	case r.Email == "":
		errs["email"] = "El correo electrónico es requerido"
	case !validators.IsEmail(r.Email):
		errs["email"] = "Ingresa un correo electrónico válido"
	}

	switch {
	case r.Telefono == "":
		errs["telefono"] = "El teléfono es requerido"
	case len(digits(r.Telefono)) != phoneDigits:
		errs["telefono"] = "Ingresa un teléfono válido de 10 dígitos"
	}

	if r.FechaNacimiento == "" {
		errs["fecha_nacimiento"] = "La fecha de nacimiento es requerida"
	} else if born, err := time.Parse(birthDateLayout, r.FechaNacimiento); err != nil {
		errs["fecha_nacimiento"] = "Ingresa una fecha válida"
	} else {
		y, m, d := today.Date()
		if born.After(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
			errs["fecha_nacimiento"] = "La fecha no puede ser futura"
		}
	}

	switch {
	case r.Password == "":
		errs["password"] = "La contraseña es requerida"
	case len(r.Password) < MinPasswordLength:
		errs["password"] = "La contraseña debe tener al menos 8 caracteres"
	}

	switch {
	case r.Confirm == "":
		errs["confirm_password"] = "Confirma tu contraseña"
	case r.Password != r.Confirm:
		errs["confirm_password"] = "Las contraseñas no coinciden"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Username is derived from the local part of the email.
func (r Registration) Username() string {
	if at := strings.Index(r.Email, "@"); at > 0 {
		return r.Email[:at]
	}
	return r.Email
}

func (r Registration) Payload() models.Registration {
	return models.Registration{
		Username:        r.Username(),
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Password:        r.Password,
		Telefono:        r.Telefono,
		FechaNacimiento: r.FechaNacimiento,
		Rol:             RoleCliente,
	}
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
