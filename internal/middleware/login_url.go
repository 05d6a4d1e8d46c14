package middleware

import "net/url"

func LoginURL(returnTo string) string {
	if returnTo == "" || returnTo == "/" {
		return "/login"
	}
	return "/login?redirect=" + url.QueryEscape(returnTo)
}
