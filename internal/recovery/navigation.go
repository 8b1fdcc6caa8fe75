package recovery

import (
	"net/url"
	"strings"
)

type Action string

const (
	ActionDeepLink Action = "deep_link"
	ActionRedirect Action = "redirect"
	ActionBack     Action = "back"
)

// AppRedirect is the redirect value that sends the user back to the mobile app.
const AppRedirect = "app"

type Navigation struct {
	Action Action `json:"action"`
	URL    string `json:"url,omitempty"`
}

// ResolveReturn picks where "back" leads, based on the redirect parameter the
// page was opened with.
func ResolveReturn(redirect, deepLink string) Navigation {
	switch {
	case redirect == AppRedirect:
		return Navigation{Action: ActionDeepLink, URL: deepLink}
	case isNavigable(redirect):
		return Navigation{Action: ActionRedirect, URL: redirect}
	default:
		return Navigation{Action: ActionBack}
	}
}

// isNavigable accepts http(s) URLs and paths rooted on the current site.
// "//host/..." is another host, so it needs an explicit scheme.
func isNavigable(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "":
		return u.Host == "" && strings.HasPrefix(u.Path, "/") && !strings.HasPrefix(raw, "//")
	default:
		return false
	}
}
