package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// newUpgrader accepts same-host pages and the configured origins.
func newUpgrader(origins []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(r, origins)
		},
	}
}

func originAllowed(r *http.Request, origins []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if u, err := url.Parse(origin); err == nil && u.Host == r.Host {
		return true
	}
	for _, o := range origins {
		if o == origin {
			return true
		}
	}
	log.Warn().Str("origin", origin).Msg("websocket origin rejected")
	return false
}

type socketRequest struct {
	Action string `json:"action"`
	ID     int    `json:"id"`
}

type socketError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// socketClient is one websocket connection. Writes go through send so
// only WritePump touches the connection for writing.
type socketClient struct {
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	cancel context.CancelFunc
}

func newSocketClient(conn *websocket.Conn, cancel context.CancelFunc) *socketClient {
	return &socketClient{
		conn:   conn,
		send:   make(chan []byte, 16),
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// SendJSON queues v. Messages sent after the connection closed are dropped.
func (s *socketClient) SendJSON(v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("websocket encode")
		return
	}
	select {
	case s.send <- raw:
	case <-s.done:
	}
}

func (s *socketClient) SendError(code, message string) {
	s.SendJSON(socketError{Type: "error", Code: code, Message: message})
}

// ReadPump blocks until the peer goes away, then tears the connection down.
func (s *socketClient) ReadPump(ctx context.Context, handle func(socketRequest)) {
	defer func() {
		s.cancel()
		close(s.done)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Msg("websocket closed unexpectedly")
			}
			return
		}
		if ctx.Err() != nil {
			return
		}

		var req socketRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			s.SendError("invalid_message", "Mensaje inválido")
			continue
		}
		handle(req)
	}
}

// WritePump drains send and keeps the connection alive with pings.
func (s *socketClient) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case msg := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-ctx.Done():
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
