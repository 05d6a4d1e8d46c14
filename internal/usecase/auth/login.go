package auth

import (
	"context"

	"github.com/BruksfildServices01/barberrock-web/internal/audit"
	"github.com/BruksfildServices01/barberrock-web/internal/domain/account"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

const MsgBadCredentials = "Credenciales incorrectas"

type Gateway interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
}

type Login struct {
	gw    Gateway
	audit *audit.Dispatcher
}

func NewLogin(
	gw Gateway,
	audit *audit.Dispatcher,
) *Login {
	return &Login{
		gw:    gw,
		audit: audit,
	}
}

// Execute signs the user in and returns where to send them next. The
// stored return path is consumed whatever the role.
func (uc *Login) Execute(
	ctx context.Context,
	sess *session.Session,
	username string,
	password string,
) (string, error) {

	res, err := uc.gw.Login(ctx, username, password)
	if err != nil {
		return "", err
	}

	sess.SaveLogin(*res)
	stored := sess.TakeLoginRedirect()

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID(),
		UserID:    sess.UserID(),
		Action:    "login",
		Entity:    "user",
		EntityID:  sess.UserID(),
		Metadata:  map[string]string{"rol": res.User.Rol},
	})

	return account.RedirectFor(res.User.Rol, stored), nil
}
