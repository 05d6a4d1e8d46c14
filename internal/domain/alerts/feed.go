package alerts

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

const (
	MsgNoPhone        = "No hay número de teléfono disponible para este cliente"
	MsgLoadFailed     = "Error al cargar las alertas"
	MsgDispatchFailed = "Error al marcar la alerta como enviada"
)

var (
	ErrNoPhone       = httperr.ErrBusinessMsg("no_phone", MsgNoPhone)
	ErrAlertNotFound = httperr.ErrBusinessMsg("alert_not_found", "La alerta ya no está pendiente")
)

type Gateway interface {
	ListAlerts(ctx context.Context, token string) ([]models.Alert, error)
	MarkAlertSent(ctx context.Context, token string, id int) error
}

// Snapshot is a copy of the feed state safe to hand to a renderer.
type Snapshot struct {
	Loading bool           `json:"loading"`
	Alerts  []models.Alert `json:"alerts"`
	Error   string         `json:"error,omitempty"`
	Expired bool           `json:"session_expired,omitempty"`
}

// Feed holds the working set of one admin view. The poller and the
// websocket reader share it, hence the lock.
type Feed struct {
	mu      sync.Mutex
	loading bool
	alerts  []models.Alert
	err     string
	expired bool
}

func NewFeed() *Feed {
	return &Feed{loading: true}
}

func (f *Feed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Loading: f.loading,
		Alerts:  append([]models.Alert{}, f.alerts...),
		Error:   f.err,
		Expired: f.expired,
	}
}

// Replace installs a fresh list in backend order and clears the error.
func (f *Feed) Replace(list []models.Alert) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	f.alerts = append([]models.Alert{}, list...)
	f.err = ""
	f.expired = false
}

// Fail records a load error and keeps the stale list.
func (f *Feed) Fail(msg string, expired bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	f.err = msg
	f.expired = f.expired || expired
}

func (f *Feed) Expired() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.expired
}

func (f *Feed) Find(id int) (models.Alert, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.alerts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Alert{}, false
}

// Remove drops the alert with id and reports whether it was present.
func (f *Feed) Remove(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, a := range f.alerts {
		if a.ID == id {
			f.alerts = append(f.alerts[:i:i], f.alerts[i+1:]...)
			return true
		}
	}
	return false
}
