package session

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/BruksfildServices01/barberrock-web/internal/models"
)

// Keys written at login. They match the names the browser front end used
// for local storage, so a session dump reads the same.
const (
	KeyAccessToken     = "access_token"
	KeyRefreshToken    = "refresh_token"
	KeyUserRole        = "user_role"
	KeyUserID          = "user_id"
	KeyUserUsername    = "user_username"
	KeyUserFirstName   = "user_first_name"
	KeyUserLastName    = "user_last_name"
	KeyUserDisplayName = "user_display_name"
	KeyUserEmail       = "user_email"
	KeyUserPhone       = "user_phone"

	KeyLoginRedirect = "login_redirect"
	KeyScheduleDraft = "schedule_draft"
	KeyAlertFeed     = "alert_feed"
	KeyFlash         = "flash"

	surveyMarkerPrefix = "survey_processed_"
)

// Session is the per-browser state bag. It is created by the middleware
// and passed explicitly to every operation that needs the user's token.
type Session struct {
	mu     sync.Mutex
	id     string
	values map[string]string
	dirty  bool
}

func New(id string, values map[string]string) *Session {
	v := make(map[string]string, len(values))
	for k, val := range values {
		v[k] = val
	}
	return &Session{id: id, values: v}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *Session) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.values[key]; ok && cur == value {
		return
	}
	s.values[key] = value
	s.dirty = true
}

func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.dirty = true
}

// Clear drops every key, including survey markers.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return
	}
	s.values = map[string]string{}
	s.dirty = true
}

// Values returns a copy of the current key set.
func (s *Session) Values() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Session) SetJSON(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.Set(key, string(b))
	return nil
}

// GetJSON decodes key into v. It reports false when the key is missing or
// holds something that does not decode.
func (s *Session) GetJSON(key string, v any) bool {
	raw := s.Get(key)
	if raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}

// ======================================================
// LOGIN STATE
// ======================================================

func (s *Session) AccessToken() string  { return s.Get(KeyAccessToken) }
func (s *Session) RefreshToken() string { return s.Get(KeyRefreshToken) }
func (s *Session) Role() string         { return s.Get(KeyUserRole) }
func (s *Session) UserID() string       { return s.Get(KeyUserID) }
func (s *Session) Username() string     { return s.Get(KeyUserUsername) }
func (s *Session) DisplayName() string  { return s.Get(KeyUserDisplayName) }
func (s *Session) Email() string        { return s.Get(KeyUserEmail) }
func (s *Session) Phone() string        { return s.Get(KeyUserPhone) }

func (s *Session) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

// SaveLogin writes every user field returned by the login endpoint.
func (s *Session) SaveLogin(res models.LoginResponse) {
	u := res.User
	s.Set(KeyAccessToken, res.Access)
	s.Set(KeyRefreshToken, res.Refresh)
	s.Set(KeyUserRole, u.Rol)
	s.Set(KeyUserID, strconv.Itoa(u.ID))
	s.Set(KeyUserUsername, u.Username)
	s.Set(KeyUserFirstName, u.FirstName)
	s.Set(KeyUserLastName, u.LastName)
	s.Set(KeyUserDisplayName, DisplayNameOf(u))
	s.Set(KeyUserEmail, u.Email)
	s.Set(KeyUserPhone, u.Telefono)
}

// DisplayNameOf is "first last", or the username when both are blank.
func DisplayNameOf(u models.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func (s *Session) SetLoginRedirect(path string) {
	s.Set(KeyLoginRedirect, path)
}

// TakeLoginRedirect returns the stored return path and forgets it.
func (s *Session) TakeLoginRedirect() string {
	p := s.Get(KeyLoginRedirect)
	s.Delete(KeyLoginRedirect)
	return p
}

// ======================================================
// SURVEY MARKERS
// ======================================================

func (s *Session) SurveyMarker(segment string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[surveyMarkerPrefix+segment]
	return v, ok
}

func (s *Session) MarkSurvey(segment, outcome string) {
	s.Set(surveyMarkerPrefix+segment, outcome)
}

// ======================================================
// ALERTS SHOWN
// ======================================================

// RememberAlerts keeps the list last rendered to the admin, so a dispatch
// from that page can be checked without fetching it again.
func (s *Session) RememberAlerts(list []models.Alert) {
	if err := s.SetJSON(KeyAlertFeed, list); err != nil {
		s.Delete(KeyAlertFeed)
	}
}

func (s *Session) RememberedAlerts() ([]models.Alert, bool) {
	var list []models.Alert
	if !s.GetJSON(KeyAlertFeed, &list) {
		return nil, false
	}
	return list, true
}

// ======================================================
// FLASH
// ======================================================

func (s *Session) SetFlash(msg string) { s.Set(KeyFlash, msg) }

func (s *Session) TakeFlash() string {
	msg := s.Get(KeyFlash)
	s.Delete(KeyFlash)
	return msg
}
