package app

import (
	"net/url"
	"strings"
)

// allowOrigins builds the admin CORS origin check. Patterns are hosts such as
// "admin.example.com", "*.example.com" or "localhost:*"; an empty list allows any origin.
func allowOrigins(patterns []string) func(origin string) bool {
	if len(patterns) == 0 {
		return func(string) bool { return true }
	}
	return func(origin string) bool {
		host := originHost(origin)
		for _, p := range patterns {
			if matchOriginPattern(p, host) {
				return true
			}
		}
		return false
	}
}

func originHost(origin string) string {
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		return u.Host
	}
	return origin
}

func matchOriginPattern(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, strings.TrimSuffix(pattern, "*"))
	}
	return false
}
