package backend

import "strings"

// MediaURL resolves a media path returned by the API. Absolute URLs pass
// through untouched.
func (c *Client) MediaURL(path string) string {
	return ResolveMedia(c.mediaURL, path)
}

func ResolveMedia(mediaBase, path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return ""
	}
	lower := strings.ToLower(p)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(p, "//") {
		return p
	}
	return strings.TrimRight(mediaBase, "/") + "/" + strings.TrimLeft(p, "/")
}
