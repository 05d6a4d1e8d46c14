package gallery

import (
	"regexp"
	"strings"
)

var (
	youtubePattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)
	vimeoPattern   = regexp.MustCompile(`vimeo\.com/(?:.*/)?(\d+)`)
)

const youtubeIDLength = 11

// EmbedURL rewrites YouTube and Vimeo links to their embeddable form.
// Anything else, including YouTube links without a usable id, is returned
// as is.
func EmbedURL(raw string) string {
	if strings.Contains(raw, "youtube.com") || strings.Contains(raw, "youtu.be") {
		if m := youtubePattern.FindStringSubmatch(raw); m != nil && len(m[2]) == youtubeIDLength {
			return "https://www.youtube.com/embed/" + m[2]
		}
		return raw
	}
	if strings.Contains(raw, "vimeo.com") {
		if m := vimeoPattern.FindStringSubmatch(raw); m != nil {
			return "https://player.vimeo.com/video/" + m[1]
		}
	}
	return raw
}
