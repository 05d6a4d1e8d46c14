package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberrock-web/internal/domain/account"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/httpresp"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
	ucAuth "github.com/BruksfildServices01/barberrock-web/internal/usecase/auth"
	"github.com/BruksfildServices01/barberrock-web/internal/validators"
)

type AuthHandler struct {
	login    *ucAuth.Login
	register *ucAuth.Register
	logout   *ucAuth.Logout
}

func NewAuthHandler(
	login *ucAuth.Login,
	register *ucAuth.Register,
	logout *ucAuth.Logout,
) *AuthHandler {
	return &AuthHandler{login: login, register: register, logout: logout}
}

type loginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// LoginPage remembers ?redirect= for after the login succeeds.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	sess := session.From(c)

	rememberRedirect(c, sess)

	if sess.IsAuthenticated() && c.Query("redirect") == "" {
		c.Redirect(http.StatusFound, account.HomeFor(sess.Role()))
		return
	}

	render(c, http.StatusOK, "login", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login", gin.H{"Error": ucAuth.MsgBadCredentials})
		return
	}
	form.Username = strings.TrimSpace(form.Username)

	next, err := h.login.Execute(c.Request.Context(), session.From(c), form.Username, form.Password)
	if err != nil {
		status := http.StatusUnauthorized
		msg := httperr.MessageOr(err, ucAuth.MsgBadCredentials)
		if httperr.IsTransport(err) {
			status = http.StatusBadGateway
			msg = httperr.MsgCouldNotLoad
		}
		render(c, status, "login", gin.H{"Error": msg, "Username": form.Username})
		return
	}

	c.Redirect(http.StatusSeeOther, next)
}

// LoginJSON is the scripted variant used by the QR gate.
func (h *AuthHandler) LoginJSON(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		httperr.BadRequest(c, "invalid_json", "JSON inválido")
		return
	}

	next, err := h.login.Execute(c.Request.Context(), session.From(c), strings.TrimSpace(form.Username), form.Password)
	if err != nil {
		if httperr.IsTransport(err) {
			httperr.BadGateway(c, "backend_unavailable", httperr.MsgCouldNotLoad)
			return
		}
		httperr.Unauthorized(c, "invalid_credentials", httperr.MessageOr(err, ucAuth.MsgBadCredentials))
		return
	}

	httpresp.Redirect(c, next)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.logout.Execute(session.From(c))
	c.Redirect(http.StatusSeeOther, "/")
}

// rememberRedirect keeps a local ?redirect= for after the sign-in.
func rememberRedirect(c *gin.Context, sess *session.Session) {
	if next := validators.SafeRedirectOr(c.Query("redirect"), ""); next != "" {
		sess.SetLoginRedirect(next)
	}
}

// ======================================================
// GET /registro
// ======================================================

type registerForm struct {
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	Email           string `form:"email"`
	Telefono        string `form:"telefono"`
	FechaNacimiento string `form:"fecha_nacimiento"`
	Password        string `form:"password"`
	Confirm         string `form:"confirm_password"`
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	sess := session.From(c)
	rememberRedirect(c, sess)

	if sess.IsAuthenticated() {
		c.Redirect(http.StatusFound, account.HomeFor(sess.Role()))
		return
	}

	render(c, http.StatusOK, "register", gin.H{
		"Form":   registerForm{},
		"Errors": account.FieldErrors{},
	})
}

// ======================================================
// POST /registro
// ======================================================

func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	_ = c.ShouldBind(&form)

	sess := session.From(c)
	next, err := h.register.Execute(c.Request.Context(), sess, account.Registration{
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Email:           form.Email,
		Telefono:        form.Telefono,
		FechaNacimiento: form.FechaNacimiento,
		Password:        form.Password,
		Confirm:         form.Confirm,
	})
	if err == nil {
		c.Redirect(http.StatusSeeOther, next)
		return
	}

	if errors.Is(err, ucAuth.ErrLoginAfterRegister) {
		sess.SetFlash(ucAuth.MsgRegisteredLogin)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	form.Password, form.Confirm = "", ""
	status := http.StatusBadRequest
	errs := account.FieldErrors{"general": ucAuth.MsgRegisterFailed}
	var fieldErrs account.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		errs = fieldErrs
	case httperr.IsTransport(err):
		status = http.StatusBadGateway
		errs = account.FieldErrors{"general": ucAuth.MsgRegisterNetwork}
	}
	render(c, status, "register", gin.H{"Form": form, "Errors": errs})
}
