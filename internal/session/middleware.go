package session

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	CookieName = "barberrock_session"
	contextKey = "session"
)

type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

// Middleware loads the session named by the cookie, or starts a new one,
// and persists it after the handler chain when it changed.
func Middleware(store Store, opts CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			sess   *Session
			values map[string]string
		)

		if id, err := c.Cookie(CookieName); err == nil {
			if _, perr := uuid.Parse(id); perr == nil {
				values, err = store.Load(ctx, id)
				if err != nil {
					log.Warn().Err(err).Msg("session load failed, starting a new one")
					values = nil
				}
				if values != nil {
					sess = New(id, values)
				}
			}
		}

		if sess == nil {
			sess = New(uuid.NewString(), nil)
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, sess.ID(), int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
		}

		Attach(c, sess)
		c.Next()

		if !sess.Dirty() {
			return
		}
		if err := store.Save(context.WithoutCancel(ctx), sess.ID(), sess.Values()); err != nil {
			log.Error().Err(err).Str("session_id", sess.ID()).Msg("session save failed")
		}
	}
}

// Attach binds s to the request.
func Attach(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

// From returns the session attached by Middleware.
func From(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return New(uuid.NewString(), nil)
}
