package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirectFor(t *testing.T) {
	assert.Equal(t, "/cita", RedirectFor(RoleCliente, "/cita"))
	assert.Equal(t, "/dashboard", RedirectFor(RoleCliente, ""))
	assert.Equal(t, "/admin", RedirectFor(RoleAdmin, "/cita"))
	assert.Equal(t, "/admin", RedirectFor(RoleAdmin, ""))
	assert.Equal(t, "/barbero", RedirectFor(RoleBarbero, "/cita"))
	assert.Equal(t, "/dashboard", RedirectFor("recepcion", "/cita"))
	assert.Equal(t, "/dashboard", RedirectFor("", ""))
}
