package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pipeguru/docsite/internal/docs"
)

// PageLink points at another page of the site.
type PageLink struct {
	Label string
	Href  string
}

type DocProps struct {
	Doc     docs.Doc
	Sidebar docs.Sidebar

	// Hrefs maps doc ids to their routes.
	Hrefs   map[string]string
	Prev    *PageLink
	Next    *PageLink
	EditURL string
}

func DocPage(layout LayoutProps, props DocProps) g.Node {
	doc := props.Doc
	layout.Title = doc.Title
	if doc.Description != "" {
		layout.Description = doc.Description
	}

	return Layout(layout,
		Div(
			Class("main-wrapper docsWrapper"),
			Div(
				Class("docRoot"),
				Aside(
					Class("theme-doc-sidebar-container"),
					Nav(
						Class("menu"),
						Aria("label", "Docs sidebar"),
						sidebarList(props, props.Sidebar.Items),
					),
				),
				Main(
					Class("docMainContainer"),
					Article(
						Div(
							Class("theme-doc-markdown markdown"),
							g.If(!doc.HasTitleHeading, Header(H1(g.Text(doc.Title)))),
							g.Raw(doc.HTML),
						),
						g.If(props.EditURL != "", Div(
							Class("theme-doc-footer-edit-meta-row"),
							A(
								Class("theme-edit-this-page"),
								Href(props.EditURL),
								Target("_blank"),
								Rel("noopener noreferrer"),
								g.Text("Edit this page"),
							),
						)),
					),
					paginator(props.Prev, props.Next),
				),
			),
		),
	)
}

func sidebarList(props DocProps, items []docs.SidebarItem) g.Node {
	return Ul(
		Class("menu__list"),
		g.Map(items, func(item docs.SidebarItem) g.Node {
			if item.IsCategory() {
				return Li(
					Class("menu__list-item"),
					Div(Class("menu__list-item-collapsible"), Span(Class("menu__link menu__link--sublist"), g.Text(item.Label))),
					sidebarList(props, item.Items),
				)
			}

			class := "menu__link"
			if item.DocID == props.Doc.ID {
				class += " menu__link--active"
			}
			return Li(
				Class("menu__list-item"),
				A(
					Class(class),
					Href(props.Hrefs[item.DocID]),
					g.If(item.DocID == props.Doc.ID, Aria("current", "page")),
					g.Text(item.Label),
				),
			)
		}),
	)
}

func paginator(prev, next *PageLink) g.Node {
	if prev == nil && next == nil {
		return nil
	}

	return Nav(
		Class("pagination-nav"),
		Aria("label", "Docs pages"),
		g.Iff(prev != nil, func() g.Node {
			return A(Class("pagination-nav__link pagination-nav__link--prev"), Href(prev.Href),
				Div(Class("pagination-nav__sublabel"), g.Text("Previous")),
				Div(Class("pagination-nav__label"), g.Text(prev.Label)),
			)
		}),
		g.Iff(next != nil, func() g.Node {
			return A(Class("pagination-nav__link pagination-nav__link--next"), Href(next.Href),
				Div(Class("pagination-nav__sublabel"), g.Text("Next")),
				Div(Class("pagination-nav__label"), g.Text(next.Label)),
			)
		}),
	)
}
