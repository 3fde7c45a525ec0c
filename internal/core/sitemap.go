package core

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// SitemapIgnored reports whether a route matches one of the ignore globs.
// Globs are matched against the full route, base URL included.
func SitemapIgnored(route string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, route)
		if err != nil {
			return false, fmt.Errorf("invalid sitemap ignore pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// BuildSitemap renders sitemap.xml for the given routes in order.
func BuildSitemap(site SiteConfig, routes []string) ([]byte, error) {
	set := urlSet{Xmlns: sitemapNamespace}

	for _, route := range routes {
		canonical := CanonicalRoute(route, site.TrailingSlash)
		ignored, err := SitemapIgnored(canonical, site.Sitemap.IgnorePatterns)
		if err != nil {
			return nil, err
		}
		if ignored {
			continue
		}

		// Zero is a valid priority, so it is always written.
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        site.AbsoluteURL(canonical),
			ChangeFreq: site.Sitemap.ChangeFreq,
			Priority:   strconv.FormatFloat(site.Sitemap.Priority, 'f', -1, 64),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("failed to encode sitemap: %w", err)
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}
