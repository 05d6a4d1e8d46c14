package auth

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barberrock-web/internal/audit"
	"github.com/BruksfildServices01/barberrock-web/internal/domain/account"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

const (
	MsgRegisterFailed  = "Error al crear la cuenta. Verifica tus datos e inténtalo de nuevo."
	MsgRegisterNetwork = "Error de conexión. Por favor, verifica tu conexión a internet e inténtalo de nuevo."
	MsgRegisteredLogin = "Cuenta creada exitosamente. Por favor inicia sesión."
)

// ErrLoginAfterRegister means the account exists but signing in with it
// failed; the visitor has to log in by hand.
var ErrLoginAfterRegister = httperr.ErrBusinessMsg("login_after_register", MsgRegisteredLogin)

type RegisterGateway interface {
	Register(ctx context.Context, reg models.Registration) error
}

type Register struct {
	gw    RegisterGateway
	login *Login
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewRegister(
	gw RegisterGateway,
	login *Login,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		gw:    gw,
		login: login,
		audit: audit,
		now:   time.Now,
	}
}

// Execute creates a client account and signs it in. On success it returns
// where to go next, honouring the stored return path like a normal login.
// Form problems come back as account.FieldErrors.
func (uc *Register) Execute(
	ctx context.Context,
	sess *session.Session,
	form account.Registration,
) (string, error) {

	form = form.Normalize()
	if errs := form.Validate(uc.now()); errs != nil {
		return "", errs
	}

	payload := form.Payload()
	if err := uc.gw.Register(ctx, payload); err != nil {
		if httperr.IsTransport(err) {
			return "", err
		}
		return "", rejected(err)
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID(),
		Action:    "register",
		Entity:    "user",
		EntityID:  payload.Username,
	})

	next, err := uc.login.Execute(ctx, sess, payload.Username, form.Password)
	if err != nil {
		return "", errors.Join(ErrLoginAfterRegister, err)
	}
	return next, nil
}

// rejected turns the backend's field complaints into form messages.
func rejected(err error) account.FieldErrors {
	errs := account.FieldErrors{}
	if httperr.HasField(err, "email") {
		errs["email"] = "Este correo electrónico ya está registrado"
	}
	if httperr.HasField(err, "username") {
		errs["email"] = "Este correo electrónico ya está en uso"
	}
	if httperr.HasField(err, "telefono") {
		errs["telefono"] = "Este teléfono ya está registrado"
	}
	if len(errs) == 0 {
		errs["general"] = MsgRegisterFailed
	}
	return errs
}
