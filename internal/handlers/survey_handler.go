package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/survey"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
	"github.com/BruksfildServices01/barberrock-web/internal/timezone"
	ucSurvey "github.com/BruksfildServices01/barberrock-web/internal/usecase/survey"
)

const MsgSurveyThanks = "¡Gracias! Tu opinión fue registrada."

type SurveyHandler struct {
	resolve   *ucSurvey.ResolveSurvey
	submit    *ucSurvey.SubmitSurvey
	resolveQR *ucSurvey.ResolveQR
	tz        string
}

func NewSurveyHandler(
	resolve *ucSurvey.ResolveSurvey,
	submit *ucSurvey.SubmitSurvey,
	resolveQR *ucSurvey.ResolveQR,
	tz string,
) *SurveyHandler {
	return &SurveyHandler{
		resolve:   resolve,
		submit:    submit,
		resolveQR: resolveQR,
		tz:        tz,
	}
}

// ======================================================
// GET /encuesta/:token
// ======================================================

func (h *SurveyHandler) Show(c *gin.Context) {
	segment := c.Param("token")
	out := h.resolve.Execute(c.Request.Context(), session.From(c), segment)

	if out.Kind == domain.OutcomeRedirect {
		c.Redirect(http.StatusFound, out.Location)
		return
	}
	h.renderOutcome(c, segment, out, "")
}

// ======================================================
// POST /encuesta/:token
// ======================================================

func (h *SurveyHandler) Submit(c *gin.Context) {
	segment := c.Param("token")
	sess := session.From(c)

	form, appointmentID, err := parseSurveyForm(c)
	if err == nil {
		err = h.submit.Execute(c.Request.Context(), sess, segment, appointmentID, form)
		if err == nil {
			sess.SetFlash(MsgSurveyThanks)
			c.Redirect(http.StatusSeeOther, domain.TokenPath(segment))
			return
		}
	}

	// Show the posted answers again next to the error.
	out := h.resolve.Execute(c.Request.Context(), sess, segment)
	switch out.Kind {
	case domain.OutcomeRedirect:
		c.Redirect(http.StatusSeeOther, out.Location)
		return
	case domain.OutcomeError:
		h.renderOutcome(c, segment, out, "")
		return
	}
	out.Form = form
	h.renderOutcome(c, segment, out, httperr.MessageOr(err, domain.MsgSubmitFailed))
}

func (h *SurveyHandler) renderOutcome(c *gin.Context, segment string, out domain.Outcome, formErr string) {
	data := gin.H{
		"Token":     segment,
		"Submitted": out.Submitted,
		"Form":      out.Form,
		"FormError": formErr,
		"Ratings":   []int{1, 2, 3, 4, 5},
	}
	if out.Kind == domain.OutcomeError {
		data["Error"] = out.Message
	}
	if out.Info != nil {
		data["Info"] = out.Info
		data["When"] = timezone.Format(out.Info.FechaHora, h.tz)
	}
	render(c, http.StatusOK, "survey", data)
}

var errInvalidForm = httperr.ErrBusinessMsg("invalid_form", "Formulario inválido")

func parseSurveyForm(c *gin.Context) (domain.Form, int, error) {
	ratings := make([]int, 4)
	for i, field := range []string{"calificacion", "limpieza_calificacion", "puntualidad_calificacion", "trato_calificacion"} {
		n, err := strconv.Atoi(c.PostForm(field))
		if err != nil {
			return domain.DefaultForm(), 0, errInvalidForm
		}
		ratings[i] = n
	}

	form := domain.Form{
		Overall:        ratings[0],
		Cleanliness:    ratings[1],
		Punctuality:    ratings[2],
		Treatment:      ratings[3],
		WouldRecommend: c.PostForm("recomendaria") != "false",
		Comments:       c.PostForm("comentarios"),
	}

	appointmentID, err := strconv.Atoi(c.PostForm("cita_id"))
	if err != nil {
		return form, 0, errInvalidForm
	}
	return form, appointmentID, nil
}

// ======================================================
// GET /encuesta/qr/:qrToken
// ======================================================

func (h *SurveyHandler) ShowQR(c *gin.Context) {
	sess := session.From(c)
	out := h.resolveQR.Execute(c.Request.Context(), sess, c.Param("qrToken"))

	if out.Kind == domain.QRRedirect {
		if out.Message != "" {
			sess.SetFlash(out.Message)
		}
		c.Redirect(http.StatusFound, out.Location)
		return
	}

	render(c, http.StatusOK, "survey_qr", gin.H{
		"Kind":        string(out.Kind),
		"Barber":      out.Barber,
		"Message":     out.Message,
		"LoginURL":    out.LoginURL,
		"RegisterURL": out.RegisterURL,
	})
}
