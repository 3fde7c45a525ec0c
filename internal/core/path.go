package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// JoinRoute joins URL path segments into a single normalized route.
func JoinRoute(parts ...string) string {
	joined := path.Join(append([]string{"/"}, parts...)...)
	return NormalizePath(joined)
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(p, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	return nil
}

// ResolveLink resolves href as seen from the page at route. It reports false
// for links that leave the site: absolute URLs, mailto: and friends, and
// bare fragments.
func ResolveLink(route, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}
	if strings.HasPrefix(href, "//") || strings.Contains(href, ":") {
		return "", false
	}

	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	if href == "" {
		return "", false
	}

	if strings.HasPrefix(href, "/") {
		return NormalizePath(path.Clean(href)), true
	}

	dir := path.Dir(NormalizePath(route))
	if strings.HasSuffix(route, "/") {
		dir = NormalizePath(route)
	}
	return NormalizePath(path.Join(dir, href)), true
}

func trimRightSlash(s string) string {
	return strings.TrimRight(s, "/")
}
