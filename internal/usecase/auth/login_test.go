package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type fakeGateway struct {
	res *models.LoginResponse
	err error
}

func (f fakeGateway) Login(context.Context, string, string) (*models.LoginResponse, error) {
	return f.res, f.err
}

func loginAs(rol string) fakeGateway {
	return fakeGateway{res: &models.LoginResponse{
		Access: "acc",
		User:   models.User{ID: 1, Username: "u", Rol: rol},
	}}
}

func TestLogin_RoleRedirects(t *testing.T) {
	cases := []struct {
		rol, stored, want string
	}{
		{"cliente", "/cita", "/cita"},
		{"cliente", "", "/dashboard"},
		{"admin", "/cita", "/admin"},
		{"admin", "", "/admin"},
		{"barbero", "/cita", "/barbero"},
		{"otro", "/cita", "/dashboard"},
	}

	for _, tc := range cases {
		sess := session.New("sid", nil)
		if tc.stored != "" {
			sess.SetLoginRedirect(tc.stored)
		}

		got, err := NewLogin(loginAs(tc.rol), nil).Execute(context.Background(), sess, "u", "p")

		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s with %q", tc.rol, tc.stored)
		assert.Empty(t, sess.Get(session.KeyLoginRedirect), "redirect consumed for %s", tc.rol)
		assert.Equal(t, "acc", sess.AccessToken())
	}
}

func TestLogin_FailureKeepsSessionAnonymous(t *testing.T) {
	gw := fakeGateway{err: httperr.NewStatusError(http.StatusBadRequest, "Credenciales inválidas")}
	sess := session.New("sid", nil)
	sess.SetLoginRedirect("/cita")

	_, err := NewLogin(gw, nil).Execute(context.Background(), sess, "u", "bad")

	assert.Equal(t, "Credenciales inválidas", httperr.MessageOr(err, MsgBadCredentials))
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, "/cita", sess.Get(session.KeyLoginRedirect))
}

func TestLogout_ClearsEverything(t *testing.T) {
	sess := session.New("sid", map[string]string{session.KeyAccessToken: "acc", session.KeyUserID: "1"})
	sess.MarkSurvey("12", "redirect:/encuesta/x")

	NewLogout(nil).Execute(sess)

	assert.Empty(t, sess.Values())
}
