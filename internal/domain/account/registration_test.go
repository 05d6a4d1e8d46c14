package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

func validRegistration() Registration {
	return Registration{
		FirstName:       "Ana",
		LastName:        "Ruiz",
		Email:           "ana.ruiz@example.com",
		Telefono:        "600 123 4567",
		FechaNacimiento: "1990-02-01",
		Password:        "secreto123",
		Confirm:         "secreto123",
	}
}

func TestRegistration_ValidPasses(t *testing.T) {
	assert.Nil(t, validRegistration().Validate(today))
}

func TestRegistration_FieldMessages(t *testing.T) {
	r := Registration{Email: "ana", Telefono: "12345", FechaNacimiento: "2024-05-11", Password: "corta", Confirm: "otra"}

	errs := r.Validate(today)

	assert.Equal(t, "El nombre es requerido", errs["first_name"])
	assert.Equal(t, "Los apellidos son requeridos", errs["last_name"])
	assert.Equal(t, "Ingresa un correo electrónico válido", errs["email"])
	assert.Equal(t, "Ingresa un teléfono válido de 10 dígitos", errs["telefono"])
	assert.Equal(t, "La fecha no puede ser futura", errs["fecha_nacimiento"])
	assert.Equal(t, "La contraseña debe tener al menos 8 caracteres", errs["password"])
	assert.Equal(t, "Las contraseñas no coinciden", errs["confirm_password"])
}

func TestRegistration_BirthDateToday(t *testing.T) {
	r := validRegistration()
	r.FechaNacimiento = "2024-05-10"
	assert.Nil(t, r.Validate(today))

	r.FechaNacimiento = "10/05/1990"
	assert.Equal(t, "Ingresa una fecha válida", r.Validate(today)["fecha_nacimiento"])
}

func TestRegistration_Payload(t *testing.T) {
	p := validRegistration().Payload()

	assert.Equal(t, "ana.ruiz", p.Username)
	assert.Equal(t, RoleCliente, p.Rol)
	assert.Equal(t, "600 123 4567", p.Telefono)
}

func TestFieldErrors_Error(t *testing.T) {
	err := FieldErrors{"email": "x", "first_name": "y"}
	assert.Equal(t, "invalid registration: email: x; first_name: y", err.Error())
}
