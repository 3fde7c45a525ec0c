package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pipeguru/docsite/internal/core"
)

// NavLink is a navbar item with its destination already resolved.
type NavLink struct {
	Label    string
	Href     string
	Target   string
	Position string
	Active   bool
}

func Navbar(site core.SiteConfig, links []NavLink) g.Node {
	nav := site.ThemeConfig.Navbar

	var left, right []NavLink
	for _, link := range links {
		if link.Position == "right" {
			right = append(right, link)
		} else {
			left = append(left, link)
		}
	}

	return Nav(
		Class("navbar navbar--fixed-top"),
		Aria("label", "Main"),
		Div(
			Class("navbar__inner"),
			Div(
				Class("navbar__items"),
				brand(site, nav),
				g.Map(left, navItem),
			),
			Div(
				Class("navbar__items navbar__items--right"),
				g.Map(right, navItem),
				Button(
					Class("colorModeToggle"),
					Type("button"),
					Aria("label", "Switch between dark and light mode"),
					g.Attr("onclick", `var r=document.documentElement,t=r.getAttribute("data-theme")==="dark"?"light":"dark";r.setAttribute("data-theme",t);try{localStorage.setItem("theme",t)}catch(e){}`),
				),
			),
		),
	)
}

func brand(site core.SiteConfig, nav core.Navbar) g.Node {
	logo := nav.Logo
	href := logo.Href
	if href == "" {
		href = site.HomePath()
	}

	return A(
		Class("navbar__brand"),
		Href(href),
		g.If(logo.Target != "", Target(logo.Target)),
		g.If(logo.Src != "", Div(
			Class("navbar__logo"),
			logoImg(site, logo, logo.Src, "themedImage themedImage--light"),
			g.If(logo.SrcDark != "", logoImg(site, logo, logo.SrcDark, "themedImage themedImage--dark")),
		)),
		g.If(nav.Title != "", B(Class("navbar__title text--truncate"), g.Text(nav.Title))),
	)
}

func logoImg(site core.SiteConfig, logo core.Logo, src, class string) g.Node {
	return Img(
		Class(class),
		Src(site.AssetPath(src)),
		Alt(logo.Alt),
		g.If(logo.Width > 0, Width(strconv.Itoa(logo.Width))),
		g.If(logo.Height > 0, Height(strconv.Itoa(logo.Height))),
	)
}

func navItem(link NavLink) g.Node {
	class := "navbar__item navbar__link"
	if link.Active {
		class += " navbar__link--active"
	}

	return A(
		Class(class),
		Href(link.Href),
		g.If(link.Target != "", Target(link.Target)),
		g.If(link.Target == "_blank", Rel("noopener noreferrer")),
		g.Text(link.Label),
	)
}
