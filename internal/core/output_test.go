package core

import "testing"

func TestOutputFile(t *testing.T) {
	tests := []struct {
		name          string
		route         string
		baseURL       string
		trailingSlash bool
		want          string
	}{
		{"home", "/docs/", "/docs", false, "index.html"},
		{"home without slash", "/docs", "/docs", false, "index.html"},
		{"doc", "/docs/intro", "/docs", false, "intro.html"},
		{"nested doc", "/docs/guides/rollouts", "/docs", false, "guides/rollouts.html"},
		{"doc with trailing slash", "/docs/intro", "/docs", true, "intro/index.html"},
		{"file", "/docs/sitemap.xml", "/docs", false, "sitemap.xml"},
		{"root base", "/intro", "/", false, "intro.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputFile(tt.route, tt.baseURL, tt.trailingSlash)
			if got != tt.want {
				t.Errorf("OutputFile(%q, %q, %v) = %q, want %q", tt.route, tt.baseURL, tt.trailingSlash, got, tt.want)
			}
		})
	}
}

func TestCanonicalRoute(t *testing.T) {
	tests := []struct {
		route         string
		trailingSlash bool
		want          string
	}{
		{"/docs/", false, "/docs/"},
		{"/docs/intro", false, "/docs/intro"},
		{"/docs/intro", true, "/docs/intro/"},
		{"/docs/sitemap.xml", true, "/docs/sitemap.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			got := CanonicalRoute(tt.route, tt.trailingSlash)
			if got != tt.want {
				t.Errorf("CanonicalRoute(%q, %v) = %q, want %q", tt.route, tt.trailingSlash, got, tt.want)
			}
		})
	}
}
