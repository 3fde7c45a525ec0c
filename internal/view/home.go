package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pipeguru/docsite/internal/core"
)

// GettingStartedHref is where the homepage call to action points.
const GettingStartedHref = "/docs/intro"

func HomepageHeader() g.Node {
	return Div(
		Class("heroContainer"),
		Header(
			Class("hero"),
			Div(
				Class("container"),
				H1(Class("hero__title"), g.Text("New to pipeguru?")),
				P(
					Class("hero__subtitle"),
					g.Text("Our getting started guide covers installing your app SDK, setting up your first experiment and start monitoring results."),
				),
				Div(
					Class("buttons"),
					A(
						Class("button button--primary button--lg"),
						Href(GettingStartedHref),
						g.Text("Getting Started - 10 mins ⏱️"),
					),
				),
			),
		),
	)
}

// Home is the landing page: the hero header followed by the feature grid.
func Home(layout LayoutProps, features []core.FeatureItem) g.Node {
	layout.Title = layout.Site.Title
	layout.Description = layout.Site.Tagline

	return Layout(layout,
		HomepageHeader(),
		Main(HomepageFeatures(features)),
	)
}
