package view

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/pipeguru/docsite/internal/core"
)

func TestHomepageHeader(t *testing.T) {
	html := renderString(t, HomepageHeader())

	if got := strings.Count(html, "<a "); got != 1 {
		t.Errorf("got %d links in the hero, want 1", got)
	}
	if !strings.Contains(html, `href="/docs/intro"`) {
		t.Errorf("call to action does not point at /docs/intro: %s", html)
	}
	if !strings.Contains(html, "Getting Started - 10 mins ⏱️") {
		t.Error("missing call to action label")
	}
	if !strings.Contains(html, "New to pipeguru?") {
		t.Error("missing hero title")
	}

	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, html)
}

func TestHome(t *testing.T) {
	html := renderString(t, Home(testLayout(), core.FeatureList()))

	if !strings.Contains(html, "<title>Pipeguru Docs</title>") {
		t.Error("homepage title should be the site title alone")
	}
	if !strings.Contains(html, `data-theme="light"`) {
		t.Error("missing default color mode")
	}
	if strings.Index(html, "heroContainer") > strings.Index(html, `class="features"`) {
		t.Error("hero must come before the features")
	}
	if got := strings.Count(html, `href="/docs/intro"`); got != 2 {
		t.Errorf("got %d links to /docs/intro, want the navbar item and the call to action", got)
	}
}

func TestHomeWithoutFeatures(t *testing.T) {
	html := renderString(t, Home(testLayout(), nil))

	if !strings.Contains(html, "New to pipeguru?") {
		t.Error("hero missing")
	}
	if strings.Contains(html, "featureVideo") {
		t.Error("expected no feature cards")
	}
}
