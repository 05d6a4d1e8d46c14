package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barberrock-web/internal/dto"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/httpresp"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
	"github.com/BruksfildServices01/barberrock-web/internal/usecase/stats"
)

// AppWebHandler renders the signed-in home pages of each role.
type AppWebHandler struct {
	stats *stats.GetStats
	tz    string
}

func NewAppWebHandler(getStats *stats.GetStats, tz string) *AppWebHandler {
	return &AppWebHandler{stats: getStats, tz: tz}
}

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	sess := session.From(c)
	render(c, http.StatusOK, "dashboard", gin.H{
		"Email": sess.Email(),
		"Phone": sess.Phone(),
	})
}

func (h *AppWebHandler) Barber(c *gin.Context) {
	render(c, http.StatusOK, "barber", gin.H{
		"SchedulePath": schedulePath,
	})
}

// ======================================================
// GET /admin
// ======================================================

func (h *AppWebHandler) Admin(c *gin.Context) {
	res, err := h.stats.Execute(c.Request.Context(), session.From(c))
	if err != nil {
		if sessionExpired(c, err) {
			return
		}
		log.Warn().Err(err).Msg("load general stats")
		render(c, http.StatusOK, "admin", gin.H{
			"Error":      httperr.MsgCouldNotLoad,
			"AlertsPath": alertsPath,
		})
		return
	}

	render(c, http.StatusOK, "admin", gin.H{
		"Stats":      dto.NewStats(res, h.tz),
		"AlertsPath": alertsPath,
	})
}

// ======================================================
// GET /web/api/admin/estadisticas
// ======================================================

func (h *AppWebHandler) StatsJSON(c *gin.Context) {
	sess := session.From(c)
	res, err := h.stats.Execute(c.Request.Context(), sess)
	if err != nil {
		if httperr.IsUnauthorized(err) {
			sess.Clear()
		}
		httperr.FromError(c, err, httperr.MsgCouldNotLoad)
		return
	}
	httpresp.OK(c, dto.NewStats(res, h.tz))
}
