package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	domain "github.com/BruksfildServices01/barberrock-web/internal/domain/alerts"
)

// Watcher reloads a feed on a fixed interval for as long as its context
// lives. Cancelling the context is the view being torn down.
type Watcher struct {
	load     *LoadAlerts
	interval time.Duration
}

func NewWatcher(load *LoadAlerts, interval time.Duration) *Watcher {
	if interval < time.Second {
		interval = time.Second
	}
	return &Watcher{load: load, interval: interval}
}

func (w *Watcher) Interval() time.Duration { return w.interval }

// Watch blocks until ctx is done. onUpdate receives the snapshot after
// every load attempt. Once the session is known to be expired the feed is
// no longer polled.
func (w *Watcher) Watch(
	ctx context.Context,
	token string,
	feed *domain.Feed,
	onUpdate func(domain.Snapshot),
) error {

	c := cron.New()
	_, err := c.AddFunc(fmt.Sprintf("@every %s", w.interval), func() {
		if ctx.Err() != nil || feed.Expired() {
			return
		}
		if err := w.load.Execute(ctx, token, feed); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("alert poll failed")
		}
		if ctx.Err() == nil && onUpdate != nil {
			onUpdate(feed.Snapshot())
		}
	})
	if err != nil {
		return fmt.Errorf("schedule alert poll: %w", err)
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
