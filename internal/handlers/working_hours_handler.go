package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/httpresp"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
	ucSchedule "github.com/BruksfildServices01/barberrock-web/internal/usecase/schedule"
)

// WorkingHoursHandler is the JSON side of the schedule editor.
type WorkingHoursHandler struct {
	load *ucSchedule.LoadSchedule
	save *ucSchedule.SaveSchedule
}

func NewWorkingHoursHandler(
	load *ucSchedule.LoadSchedule,
	save *ucSchedule.SaveSchedule,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{load: load, save: save}
}

type WorkingHoursResponse struct {
	ProfileFound  bool     `json:"profile_found"`
	HorarioInicio string   `json:"horario_inicio"`
	HorarioFin    string   `json:"horario_fin"`
	DiasLaborales []string `json:"dias_laborales"`
}

type WorkingHoursUpdateRequest struct {
	HorarioInicio string   `json:"horario_inicio" binding:"required"`
	HorarioFin    string   `json:"horario_fin" binding:"required"`
	DiasLaborales []string `json:"dias_laborales"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	sess := session.From(c)
	d, found, err := h.load.Execute(c.Request.Context(), sess)
	if err != nil {
		if httperr.IsUnauthorized(err) {
			sess.Clear()
		}
		httperr.FromError(c, err, httperr.MsgCouldNotLoad)
		return
	}

	httpresp.OK(c, WorkingHoursResponse{
		ProfileFound:  found,
		HorarioInicio: d.Start,
		HorarioFin:    d.End,
		DiasLaborales: d.SortedDays(),
	})
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	d := domain.Data{
		Start:       req.HorarioInicio,
		End:         req.HorarioFin,
		WorkingDays: []string{},
	}
	for _, day := range req.DiasLaborales {
		if d.Has(day) {
			continue
		}
		if err := d.Toggle(day); err != nil {
			httperr.FromError(c, err, MsgScheduleUnknown)
			return
		}
	}
	// Input errors are answered before the profile lookup.
	if err := d.CheckInput(); err != nil {
		httperr.FromError(c, err, MsgScheduleUnknown)
		return
	}

	sess := session.From(c)
	current, _, err := h.load.Execute(c.Request.Context(), sess)
	if err != nil {
		if httperr.IsUnauthorized(err) {
			sess.Clear()
		}
		httperr.FromError(c, err, httperr.MsgCouldNotLoad)
		return
	}
	d.ProfileID = current.ProfileID

	if err := h.save.Execute(c.Request.Context(), sess, d); err != nil {
		if httperr.IsUnauthorized(err) {
			sess.Clear()
		}
		httperr.FromError(c, err, MsgScheduleNetwork)
		return
	}

	ucSchedule.DropDraft(sess)
	httpresp.OK(c, WorkingHoursResponse{
		ProfileFound:  true,
		HorarioInicio: d.Start,
		HorarioFin:    d.End,
		DiasLaborales: d.SortedDays(),
	})
}
