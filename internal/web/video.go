package web

import (
	"net/url"
	"strings"
)

const (
	youTubeEmbedPrefix = "https://www.youtube.com/embed/"
	vimeoEmbedPrefix   = "https://player.vimeo.com/video/"
)

// embedURL returns the player URL for YouTube and Vimeo links, or "" when
// the link can't be embedded.
func embedURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path := strings.Trim(u.Path, "/")

	var id, prefix string

	switch host {
	case "youtube.com", "m.youtube.com":
		if path == "watch" {
			id = u.Query().Get("v")
		}
		prefix = youTubeEmbedPrefix
	case "youtu.be":
		id = path
		prefix = youTubeEmbedPrefix
	case "vimeo.com":
		// vimeo.com/<id> and vimeo.com/channels/<name>/<id>
		id = path[strings.LastIndex(path, "/")+1:]
		prefix = vimeoEmbedPrefix
	}

	if id == "" {
		return ""
	}

	return prefix + url.PathEscape(id)
}
