// Package urlutil keeps request and redirect URLs pointed at the configured
// backend. Call sites and server redirects occasionally carry absolute URLs
// baked against the development origin; everything here exists to neutralize
// those before a request leaves the process.
package urlutil

import (
	"net/url"
	"strings"
)

// Join resolves a request path against a base origin, collapsing duplicate
// slashes at the seam. The path may carry a query string.
func Join(base, path string) string {
	base = strings.TrimRight(base, "/")
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// RewriteOrigin maps raw onto base when raw is an absolute URL rooted at one
// of the given stale origins, preserving path and query. It reports whether a
// rewrite happened; any other raw value is returned unchanged.
func RewriteOrigin(raw string, origins []string, base string) (string, bool) {
	for _, origin := range origins {
		origin = strings.TrimRight(origin, "/")
		if origin == "" || !strings.HasPrefix(raw, origin) {
			continue
		}

		rest := raw[len(origin):]
		if rest != "" && !strings.HasPrefix(rest, "/") && !strings.HasPrefix(rest, "?") {
			// Origin prefix match in the middle of a hostname
			// (e.g. http://localhost:80001); not actually the dev origin.
			continue
		}

		if u, err := url.Parse(raw); err == nil {
			target := u.Path
			if u.RawQuery != "" {
				target += "?" + u.RawQuery
			}
			return Join(base, target), true
		}
		return Join(base, rest), true
	}
	return raw, false
}

// IsAbsolute reports whether raw carries an explicit scheme and host.
func IsAbsolute(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}
