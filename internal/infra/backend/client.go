package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
)

const maxErrorBody = 64 << 10

// Client talks to the BarberRock REST API. One value is shared by every
// request; the caller passes the session's access token per call.
type Client struct {
	baseURL    string
	mediaURL   string
	httpClient *http.Client
}

func NewClient(baseURL, mediaURL string, timeout time.Duration) *Client {
	base := strings.TrimRight(baseURL, "/")
	media := strings.TrimRight(mediaURL, "/")
	if media == "" {
		media = base
	}
	return &Client{
		baseURL:  base,
		mediaURL: media,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type requestIDKey struct{}

// WithRequestID makes the outgoing calls made with ctx carry id in
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// do sends one request. token may be empty for public endpoints. out may
// be nil when the response body is not needed.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend call failed")
		return httperr.NewTransportError(err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := httperr.NewStatusError(resp.StatusCode, errorMessage(raw))
		apiErr.Fields = errorFields(raw)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return httperr.NewTransportError(fmt.Errorf("decode %s %s: %w", method, path, err))
	}
	return nil
}

// errorMessage pulls the human message out of an error body. The API uses
// "error" in its own views and "detail" in the generic REST ones.
func errorMessage(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	for _, key := range []string{"error", "detail", "mensaje", "message"} {
		if s, ok := body[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// errorFields lists the keys of a validation error body, the ones that map
// to a list of messages. Order follows the field names.
func errorFields(raw []byte) []string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	var fields []string
	for key, v := range body {
		if t := bytes.TrimSpace(v); len(t) > 0 && t[0] == '[' {
			fields = append(fields, key)
		}
	}
	sort.Strings(fields)
	return fields
}

// decodeList accepts either a bare JSON array or a paginated
// {"results": [...]} envelope.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func getList[T any](ctx context.Context, c *Client, path, token string) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, err
	}
	items, err := decodeList[T](raw)
	if err != nil {
		return nil, httperr.NewTransportError(fmt.Errorf("decode list %s: %w", path, err))
	}
	return items, nil
}
