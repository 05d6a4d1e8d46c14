package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barberrock-web/internal/dto"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
	ucSchedule "github.com/BruksfildServices01/barberrock-web/internal/usecase/schedule"
)

const (
	schedulePath = "/barbero/horario"

	MsgScheduleSaved      = "Horario actualizado correctamente"
	MsgScheduleSaveFailed = "Error al actualizar el horario: "
	MsgScheduleUnknown    = "Error desconocido"
	MsgScheduleNetwork    = "Error al guardar el horario"
)

type ScheduleHandler struct {
	load *ucSchedule.LoadSchedule
	save *ucSchedule.SaveSchedule
}

func NewScheduleHandler(
	load *ucSchedule.LoadSchedule,
	save *ucSchedule.SaveSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		load: load,
		save: save,
	}
}

// draft returns the template being edited, loading it from the API the
// first time.
func (h *ScheduleHandler) draft(c *gin.Context) (domain.Data, bool) {
	sess := session.From(c)
	if d, ok := ucSchedule.LoadDraft(sess); ok {
		return d, true
	}

	d, _, err := h.load.Execute(c.Request.Context(), sess)
	if err != nil {
		if sessionExpired(c, err) {
			return domain.Data{}, false
		}
		log.Warn().Err(err).Msg("load schedule")
		sess.SetFlash(httperr.MsgCouldNotLoad)
		return d, true
	}

	if err := ucSchedule.StoreDraft(sess, d); err != nil {
		log.Error().Err(err).Msg("store schedule draft")
	}
	return d, true
}

// ======================================================
// GET /barbero/horario
// ======================================================

func (h *ScheduleHandler) Page(c *gin.Context) {
	d, ok := h.draft(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "schedule", gin.H{
		"Schedule": dto.NewSchedule(d),
	})
}

// ======================================================
// POST /barbero/horario/dias/:day
// ======================================================

func (h *ScheduleHandler) ToggleDay(c *gin.Context) {
	d, ok := h.draft(c)
	if !ok {
		return
	}

	sess := session.From(c)
	keepTimes(c, &d)
	if err := d.Toggle(c.Param("day")); err != nil {
		sess.SetFlash(httperr.MessageOr(err, MsgScheduleUnknown))
		back(c, schedulePath)
		return
	}
	if err := ucSchedule.StoreDraft(sess, d); err != nil {
		log.Error().Err(err).Msg("store schedule draft")
	}
	back(c, schedulePath)
}

// ======================================================
// POST /barbero/horario
// ======================================================

func (h *ScheduleHandler) Save(c *gin.Context) {
	d, ok := h.draft(c)
	if !ok {
		return
	}

	sess := session.From(c)
	keepTimes(c, &d)
	_ = ucSchedule.StoreDraft(sess, d)

	err := h.save.Execute(c.Request.Context(), sess, d)
	switch {
	case err == nil:
		ucSchedule.DropDraft(sess)
		sess.SetFlash(MsgScheduleSaved)
	case sessionExpired(c, err):
		return
	case httperr.IsTransport(err):
		sess.SetFlash(MsgScheduleNetwork)
	case httperr.IsBusiness(err, "no_working_days"),
		httperr.IsBusiness(err, "profile_not_found"),
		httperr.IsBusiness(err, "invalid_time"):
		sess.SetFlash(httperr.MessageOr(err, MsgScheduleUnknown))
	default:
		sess.SetFlash(MsgScheduleSaveFailed + httperr.MessageOr(err, MsgScheduleUnknown))
	}
	back(c, schedulePath)
}

// keepTimes copies the time inputs posted along with any button so the
// draft does not lose them.
func keepTimes(c *gin.Context, d *domain.Data) {
	if v := c.PostForm("horario_inicio"); v != "" {
		d.Start = v
	}
	if v := c.PostForm("horario_fin"); v != "" {
		d.End = v
	}
}
