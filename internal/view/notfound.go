package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func NotFound(layout LayoutProps) g.Node {
	layout.Title = "Page Not Found"

	return Layout(layout,
		Main(
			Class("container margin-vert--xl"),
			Div(
				Class("row"),
				Div(
					Class("col col--6 col--offset-3"),
					H1(Class("hero__title"), g.Text("Page Not Found")),
					P(g.Text("We could not find what you were looking for.")),
					P(
						g.Text("Head back to the "),
						A(Href(layout.Site.HomePath()), g.Text("documentation home")),
						g.Text("."),
					),
				),
			),
		),
	)
}
