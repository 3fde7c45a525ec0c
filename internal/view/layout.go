package view

import (
	"fmt"

	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/pipeguru/docsite/internal/core"
)

// LayoutProps carries everything the page shell needs besides the body.
type LayoutProps struct {
	Site        core.SiteConfig
	Title       string
	Description string
	NavLinks    []NavLink
	Stylesheets []string

	// ReloadURL enables live reload against the given event stream.
	ReloadURL string
}

// Layout wraps page content in the HTML document shared by every page.
func Layout(props LayoutProps, children ...g.Node) g.Node {
	site := props.Site

	description := props.Description
	if description == "" {
		description = site.Tagline
	}

	head := []g.Node{
		Meta(Name("generator"), Content(site.ProjectName)),
		g.If(site.Favicon != "", Link(Rel("icon"), Href(site.AssetPath(site.Favicon)))),
		Meta(g.Attr("property", "og:title"), Content(pageTitle(site.Title, props.Title))),
		Meta(g.Attr("property", "og:description"), Content(description)),
		g.If(site.ThemeConfig.Image != "", Meta(g.Attr("property", "og:image"), Content(site.ThemeConfig.Image))),
		Meta(Name("twitter:card"), Content("summary_large_image")),
		g.Map(props.Stylesheets, func(href string) g.Node {
			return Link(Rel("stylesheet"), Href(href))
		}),
		Script(g.Raw(colorModeScript(site.ThemeConfig.ColorMode))),
	}

	body := []g.Node{
		Navbar(site, props.NavLinks),
		g.Group(children),
		g.If(props.ReloadURL != "", Script(g.Raw(reloadScript(props.ReloadURL)))),
	}

	return c.HTML5(c.HTML5Props{
		Title:       pageTitle(site.Title, props.Title),
		Description: description,
		Language:    htmlLang(site.I18n.DefaultLocale),
		Head:        head,
		Body:        body,
		HTMLAttrs:   []g.Node{Data("theme", site.ThemeConfig.ColorMode.DefaultMode)},
	})
}

func pageTitle(siteTitle, title string) string {
	if title == "" || title == siteTitle {
		return siteTitle
	}
	return title + " | " + siteTitle
}

func htmlLang(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	return tag.String()
}

func colorModeScript(mode core.ColorMode) string {
	return fmt.Sprintf(`(function(){var t=null;try{t=localStorage.getItem("theme")}catch(e){}`+
		`if(!t&&%t&&window.matchMedia&&window.matchMedia("(prefers-color-scheme: dark)").matches){t="dark"}`+
		`document.documentElement.setAttribute("data-theme",t||%q)})();`,
		mode.RespectPrefersColorScheme, mode.DefaultMode)
}

func reloadScript(url string) string {
	return fmt.Sprintf(`(function(){var __docs_reload=new EventSource(%q);`+
		`__docs_reload.addEventListener("reload",function(){location.reload()})})();`, url)
}
