package validators

import (
	"net/url"
	"strings"
)

// IsSafeRedirect accepts only local absolute paths, so a login link can not
// bounce the user to another host.
func IsSafeRedirect(p string) bool {
	if p == "" || !strings.HasPrefix(p, "/") {
		return false
	}
	if strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") || strings.ContainsAny(p, "\r\n") {
		return false
	}
	u, err := url.Parse(p)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// SafeRedirectOr returns p when it is a safe local path, else fallback.
func SafeRedirectOr(p, fallback string) string {
	if IsSafeRedirect(p) {
		return p
	}
	return fallback
}
