package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/alerts"
	"github.com/BruksfildServices01/barberrock-web/internal/dto"
	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/httpresp"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
	ucAlerts "github.com/BruksfildServices01/barberrock-web/internal/usecase/alerts"
)

const alertsPath = "/admin/alertas"

type AlertsHandler struct {
	load     *ucAlerts.LoadAlerts
	dispatch *ucAlerts.DispatchAlert
	watcher  *ucAlerts.Watcher
	tz       string
	origins  []string
}

func NewAlertsHandler(
	load *ucAlerts.LoadAlerts,
	dispatch *ucAlerts.DispatchAlert,
	watcher *ucAlerts.Watcher,
	tz string,
	origins []string,
) *AlertsHandler {
	return &AlertsHandler{
		load:     load,
		dispatch: dispatch,
		watcher:  watcher,
		tz:       tz,
		origins:  origins,
	}
}

// loadFeed fills a fresh feed for this request. An expired session has
// already been answered with a redirect when ok is false.
func (h *AlertsHandler) loadFeed(c *gin.Context) (*domain.Feed, bool) {
	feed := domain.NewFeed()
	err := h.load.Execute(c.Request.Context(), session.From(c).AccessToken(), feed)
	if err != nil && sessionExpired(c, err) {
		return nil, false
	}
	return feed, true
}

// shownFeed rebuilds the list the admin was looking at when it still holds
// id. Otherwise the feed is loaded again.
func (h *AlertsHandler) shownFeed(c *gin.Context, id int) (*domain.Feed, bool) {
	if list, ok := session.From(c).RememberedAlerts(); ok {
		feed := domain.NewFeed()
		feed.Replace(list)
		if _, found := feed.Find(id); found {
			return feed, true
		}
	}
	return h.loadFeed(c)
}

// ======================================================
// GET /admin/alertas
// ======================================================

func (h *AlertsHandler) Page(c *gin.Context) {
	feed, ok := h.loadFeed(c)
	if !ok {
		return
	}

	snap := feed.Snapshot()
	if snap.Error == "" {
		session.From(c).RememberAlerts(snap.Alerts)
	}

	render(c, http.StatusOK, "alerts", gin.H{
		"Feed":         dto.NewAlertFeed(snap, h.tz),
		"PollSeconds":  int(h.watcher.Interval().Seconds()),
		"SocketPath":   alertsPath + "/ws",
		"DispatchBase": alertsPath,
	})
}

// ======================================================
// POST /admin/alertas/:id/enviar
// ======================================================

func (h *AlertsHandler) Dispatch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		back(c, alertsPath)
		return
	}

	feed, ok := h.shownFeed(c, id)
	if !ok {
		return
	}

	sess := session.From(c)
	url, err := h.dispatch.Execute(c.Request.Context(), sess, feed, id)
	switch {
	case err == nil:
		sess.RememberAlerts(feed.Snapshot().Alerts)
		c.Redirect(http.StatusSeeOther, url)
	case sessionExpired(c, err):
	case url != "":
		// The chat still opens; the alert stays pending.
		sess.SetFlash(domain.MsgDispatchFailed)
		c.Redirect(http.StatusSeeOther, url)
	default:
		sess.SetFlash(httperr.MessageOr(err, domain.MsgDispatchFailed))
		back(c, alertsPath)
	}
}

// ======================================================
// GET /web/api/alertas
// ======================================================

func (h *AlertsHandler) JSON(c *gin.Context) {
	sess := session.From(c)
	feed := domain.NewFeed()
	if err := h.load.Execute(c.Request.Context(), sess.AccessToken(), feed); err != nil {
		if httperr.IsUnauthorized(err) {
			sess.Clear()
		}
		httperr.FromError(c, err, domain.MsgLoadFailed)
		return
	}
	httpresp.OK(c, dto.NewAlertFeed(feed.Snapshot(), h.tz))
}

// ======================================================
// GET /admin/alertas/ws
// ======================================================

// Socket keeps one feed alive per connection. The watcher reloads it on
// the poll interval and the page may ask for a refresh or a dispatch.
func (h *AlertsHandler) Socket(c *gin.Context) {
	conn, err := newUpgrader(h.origins).Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	sess := session.From(c)
	token := sess.AccessToken()
	feed := domain.NewFeed()

	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	client := newSocketClient(conn, cancel)

	push := func(s domain.Snapshot) {
		client.SendJSON(dto.NewAlertFeed(s, h.tz))
	}

	go client.WritePump(ctx)

	_ = h.load.Execute(ctx, token, feed)
	push(feed.Snapshot())

	go func() {
		if err := h.watcher.Watch(ctx, token, feed, push); err != nil {
			client.SendError("watch_failed", domain.MsgLoadFailed)
		}
	}()

	client.ReadPump(ctx, func(msg socketRequest) {
		switch msg.Action {
		case "refresh":
			if feed.Expired() {
				push(feed.Snapshot())
				return
			}
			_ = h.load.Execute(ctx, token, feed)
			push(feed.Snapshot())

		case "dispatch":
			url, err := h.dispatch.Execute(ctx, sess, feed, msg.ID)
			reply := dispatchReply{Type: "dispatch", ID: msg.ID, OpenURL: url}
			switch {
			case err == nil:
			case url != "":
				reply.Error = domain.MsgDispatchFailed
			default:
				reply.Error = httperr.MessageOr(err, domain.MsgDispatchFailed)
			}
			client.SendJSON(reply)
			push(feed.Snapshot())

		default:
			client.SendError("unknown_action", "Acción desconocida")
		}
	})
}

type dispatchReply struct {
	Type    string `json:"type"`
	ID      int    `json:"id"`
	OpenURL string `json:"open_url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ======================================================
// POST /admin/alertas/refresh
// ======================================================

func (h *AlertsHandler) Refresh(c *gin.Context) {
	back(c, alertsPath)
}
