package core

import (
	"path"
	"strings"
)

// OutputFile maps a route to the file it is exported to, relative to the
// output directory. The base URL is stripped because the output directory is
// what gets served at the base URL.
func OutputFile(route, baseURL string, trailingSlash bool) string {
	rel := strings.TrimPrefix(NormalizePath(route), JoinRoute(baseURL))
	rel = strings.Trim(rel, "/")

	if rel == "" {
		return "index.html"
	}
	if path.Ext(rel) != "" {
		return rel
	}
	if trailingSlash {
		return rel + "/index.html"
	}
	return rel + ".html"
}

// CanonicalRoute applies the trailing slash setting to a route for use in
// hrefs and the sitemap. The home route always keeps its slash.
func CanonicalRoute(route string, trailingSlash bool) string {
	if strings.HasSuffix(route, "/") {
		return route
	}
	if trailingSlash && path.Ext(route) == "" {
		return route + "/"
	}
	return route
}
