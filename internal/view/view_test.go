package view

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	g "maragu.dev/gomponents"

	"github.com/pipeguru/docsite/internal/core"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	out, err := Render(n)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return string(out)
}

func testLayout() LayoutProps {
	return LayoutProps{
		Site: core.DefaultSite(),
		NavLinks: []NavLink{
			{Label: "Getting Started", Href: "/docs/intro", Position: "left"},
			{Label: "GitHub", Href: "https://github.com/pipeguru/docsite", Target: "_self", Position: "right"},
		},
		Stylesheets: []string{"/docs/css/custom.css", "/docs/css/highlight.css?v=1"},
	}
}
