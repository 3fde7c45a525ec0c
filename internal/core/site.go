package core

// SiteConfig is the declarative description of the documentation site.
// It is read once when the site is built or served.
type SiteConfig struct {
	Title            string      `mapstructure:"title" validate:"required"`
	Tagline          string      `mapstructure:"tagline"`
	Favicon          string      `mapstructure:"favicon"`
	URL              string      `mapstructure:"url" validate:"required,url"`
	BaseURL          string      `mapstructure:"base_url" validate:"required,startswith=/"`
	OrganizationName string      `mapstructure:"organization_name"`
	ProjectName      string      `mapstructure:"project_name"`
	OnBrokenLinks    LinkPolicy  `mapstructure:"on_broken_links" validate:"required,oneof=ignore log warn throw"`
	TrailingSlash    bool        `mapstructure:"trailing_slash"`
	I18n             I18nConfig  `mapstructure:"i18n"`
	Docs             DocsConfig  `mapstructure:"docs"`
	Theme            ThemeConfig `mapstructure:"theme"`
	Sitemap          Sitemap     `mapstructure:"sitemap"`
	ThemeConfig      Appearance  `mapstructure:"theme_config"`
}

type I18nConfig struct {
	DefaultLocale string   `mapstructure:"default_locale" validate:"required,bcp47_language_tag"`
	Locales       []string `mapstructure:"locales" validate:"required,min=1,dive,bcp47_language_tag"`
}

type DocsConfig struct {
	Path          string `mapstructure:"path" validate:"required"`
	RouteBasePath string `mapstructure:"route_base_path" validate:"required,startswith=/"`
	SidebarID     string `mapstructure:"sidebar_id" validate:"required"`
	EditURL       string `mapstructure:"edit_url" validate:"omitempty,url"`
}

type ThemeConfig struct {
	CustomCSS string `mapstructure:"custom_css"`
}

type Sitemap struct {
	ChangeFreq     string   `mapstructure:"changefreq" validate:"oneof=always hourly daily weekly monthly yearly never"`
	Priority       float64  `mapstructure:"priority" validate:"gte=0,lte=1"`
	IgnorePatterns []string `mapstructure:"ignore_patterns"`
	Filename       string   `mapstructure:"filename" validate:"required"`
}

// Appearance holds what the original framework called themeConfig.
type Appearance struct {
	Image     string     `mapstructure:"image" validate:"omitempty,url"`
	ColorMode ColorMode  `mapstructure:"color_mode"`
	Navbar    Navbar     `mapstructure:"navbar"`
	Prism     PrismTheme `mapstructure:"prism"`
}

type ColorMode struct {
	DefaultMode               string `mapstructure:"default_mode" validate:"oneof=light dark"`
	RespectPrefersColorScheme bool   `mapstructure:"respect_prefers_color_scheme"`
}

type Navbar struct {
	Title string    `mapstructure:"title"`
	Logo  Logo      `mapstructure:"logo"`
	Items []NavItem `mapstructure:"items" validate:"dive"`
}

type Logo struct {
	Alt     string `mapstructure:"alt"`
	Src     string `mapstructure:"src"`
	SrcDark string `mapstructure:"src_dark"`
	Width   int    `mapstructure:"width" validate:"gte=0"`
	Height  int    `mapstructure:"height" validate:"gte=0"`
	Href    string `mapstructure:"href"`
	Target  string `mapstructure:"target"`
}

const (
	NavItemLink       = "link"
	NavItemDocSidebar = "docSidebar"
)

type NavItem struct {
	Type      string `mapstructure:"type" validate:"omitempty,oneof=link docSidebar"`
	Label     string `mapstructure:"label" validate:"required"`
	Href      string `mapstructure:"href" validate:"required_without=SidebarID"`
	SidebarID string `mapstructure:"sidebar_id" validate:"required_if=Type docSidebar"`
	Position  string `mapstructure:"position" validate:"omitempty,oneof=left right"`
	Target    string `mapstructure:"target"`
}

// Kind reports the effective item type; an item without a type is a link.
func (n NavItem) Kind() string {
	if n.Type == "" {
		return NavItemLink
	}
	return n.Type
}

type PrismTheme struct {
	Theme     string `mapstructure:"theme" validate:"required"`
	DarkTheme string `mapstructure:"dark_theme" validate:"required"`
}

// DefaultSite returns the configuration the Pipeguru docs ship with.
func DefaultSite() SiteConfig {
	return SiteConfig{
		Title:            "Pipeguru Docs",
		Tagline:          "PipeGuru empowers your product, marketing, and sales teams to launch mobile A/B tests and feature rollouts in minutes, without writing any code.",
		Favicon:          "img/favicon.svg",
		URL:              "https://pipeguru.ai",
		BaseURL:          "/docs",
		OrganizationName: "pipeguru.ai",
		ProjectName:      "documentation",
		OnBrokenLinks:    LinkPolicyWarn,
		TrailingSlash:    false,
		I18n: I18nConfig{
			DefaultLocale: "en",
			Locales:       []string{"en"},
		},
		Docs: DocsConfig{
			Path:          "docs",
			RouteBasePath: "/",
			SidebarID:     "tutorialSidebar",
			EditURL:       "https://github.com/pipeguru/docsite/tree/main/",
		},
		Theme: ThemeConfig{
			CustomCSS: "css/custom.css",
		},
		Sitemap: Sitemap{
			ChangeFreq:     "weekly",
			Priority:       0.5,
			IgnorePatterns: []string{"/tags/**", "/docs/"},
			Filename:       "sitemap.xml",
		},
		ThemeConfig: Appearance{
			Image: "https://wafrow.com/i/9f38e617-fdc9-43e2-81ee-89d90fe4ad6c?title[text]=Pipeguru%20Docs",
			ColorMode: ColorMode{
				DefaultMode:               "light",
				RespectPrefersColorScheme: true,
			},
			Navbar: Navbar{
				Title: "Docs",
				Logo: Logo{
					Alt:     "pipeguru.ai logo",
					Src:     "img/logo.svg",
					SrcDark: "img/logo_white.svg",
					Width:   149,
					Height:  32,
					Href:    "https://pipeguru.ai/docs",
					Target:  "_self",
				},
				Items: []NavItem{
					{
						Type:      NavItemDocSidebar,
						SidebarID: "tutorialSidebar",
						Position:  "left",
						Label:     "Getting Started",
					},
					{
						Href:     "https://github.com/pipeguru/docsite",
						Label:    "GitHub",
						Target:   "_self",
						Position: "right",
					},
				},
			},
			Prism: PrismTheme{
				Theme:     "github",
				DarkTheme: "dracula",
			},
		},
	}
}

// HomePath is the route of the site's landing page.
func (c SiteConfig) HomePath() string {
	base := JoinRoute(c.BaseURL)
	if base == "/" {
		return base
	}
	return base + "/"
}

// DocPath is the route a document with the given id is served at.
func (c SiteConfig) DocPath(id string) string {
	return JoinRoute(c.BaseURL, c.Docs.RouteBasePath, id)
}

// AssetPath is the URL a static asset relative to the site root is served at.
func (c SiteConfig) AssetPath(rel string) string {
	return JoinRoute(c.BaseURL, rel)
}

// AbsoluteURL joins the production origin with a route.
func (c SiteConfig) AbsoluteURL(route string) string {
	return trimRightSlash(c.URL) + route
}
