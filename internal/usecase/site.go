package usecase

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	g "maragu.dev/gomponents"

	"github.com/pipeguru/docsite/internal/core"
	"github.com/pipeguru/docsite/internal/docs"
	"github.com/pipeguru/docsite/internal/view"
)

// StaticDir is the directory of the content filesystem holding files that are
// served as they are.
const StaticDir = "static"

// HighlightCSSPath is where the generated code highlighting stylesheet lives,
// relative to the base URL.
const HighlightCSSPath = "css/highlight.css"

var (
	ErrPageNotFound   = errors.New("page not found")
	ErrDuplicateRoute = errors.New("duplicate route")
)

type PageKind int

const (
	PageHome PageKind = iota
	PageDoc
)

// Page is an entry of the route table.
type Page struct {
	Route string
	Kind  PageKind
	DocID string
}

type SiteInput struct {
	Site     core.SiteConfig
	Content  fs.FS
	Features []core.FeatureItem
	Logger   *slog.Logger
	CacheTTL time.Duration

	// ReloadURL is embedded into pages so they reload when content changes.
	ReloadURL string
}

// SiteService owns the loaded content of the site and renders its pages.
type SiteService struct {
	site      core.SiteConfig
	content   fs.FS
	features  []core.FeatureItem
	logger    *slog.Logger
	markdown  *docs.Markdown
	cache     *renderCache
	reloadURL string

	mu        sync.RWMutex
	docs      *docs.Collection
	pages     map[string]Page
	routes    []string
	navLinks  []view.NavLink
	highlight []byte
}

func NewSiteService(in SiteInput) (*SiteService, error) {
	if in.Content == nil {
		return nil, fmt.Errorf("content filesystem is required")
	}

	logger := in.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &SiteService{
		site:      in.Site,
		content:   in.Content,
		features:  in.Features,
		logger:    logger,
		markdown:  docs.NewMarkdown(in.Site.ThemeConfig.Prism.Theme),
		cache:     newRenderCache(in.CacheTTL),
		reloadURL: in.ReloadURL,
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SiteService) Config() core.SiteConfig {
	return s.site
}

// Reload reads the docs again and rebuilds the route table. The previous
// state stays in place if loading fails.
func (s *SiteService) Reload() error {
	loaded, err := docs.Load(s.content, s.site.Docs.Path, s.markdown)
	if err != nil {
		return err
	}
	collection := docs.NewCollection(s.site.Docs.SidebarID, loaded)

	pages, routes, err := s.buildRoutes(collection)
	if err != nil {
		return err
	}

	navLinks, err := s.resolveNavbar(collection)
	if err != nil {
		return err
	}

	highlight, err := docs.HighlightCSS(s.site.ThemeConfig.Prism.Theme, s.site.ThemeConfig.Prism.DarkTheme)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.docs = collection
	s.pages = pages
	s.routes = routes
	s.navLinks = navLinks
	s.highlight = highlight
	s.mu.Unlock()

	s.cache.clear()
	s.logger.Debug("site content loaded", "docs", len(loaded), "routes", len(routes))
	return nil
}

func (s *SiteService) buildRoutes(collection *docs.Collection) (map[string]Page, []string, error) {
	home := s.site.HomePath()
	pages := map[string]Page{
		home: {Route: home, Kind: PageHome},
	}
	routes := []string{home}

	for _, doc := range collection.Docs {
		route := s.docRoute(doc)
		if err := core.ValidateRoutePath(route); err != nil {
			return nil, nil, fmt.Errorf("doc %s: %w", doc.ID, err)
		}
		if existing, ok := pages[route]; ok || core.NormalizePath(route) == core.NormalizePath(home) {
			return nil, nil, fmt.Errorf("%w: %s is used by %s and %s", ErrDuplicateRoute, route, describe(existing), doc.ID)
		}
		pages[route] = Page{Route: route, Kind: PageDoc, DocID: doc.ID}
		routes = append(routes, route)
	}

	sort.Strings(routes[1:])
	return pages, routes, nil
}

func describe(p Page) string {
	if p.Kind == PageHome {
		return "the homepage"
	}
	return p.DocID
}

func (s *SiteService) docRoute(doc docs.Doc) string {
	return s.site.DocPath(doc.Route())
}

func (s *SiteService) href(route string) string {
	return core.CanonicalRoute(route, s.site.TrailingSlash)
}

func (s *SiteService) resolveNavbar(collection *docs.Collection) ([]view.NavLink, error) {
	items := s.site.ThemeConfig.Navbar.Items
	links := make([]view.NavLink, 0, len(items))

	for _, item := range items {
		link := view.NavLink{
			Label:    item.Label,
			Href:     item.Href,
			Target:   item.Target,
			Position: item.Position,
		}

		if item.Kind() == core.NavItemDocSidebar {
			sidebar, err := collection.Sidebars.Get(item.SidebarID)
			if err != nil {
				return nil, fmt.Errorf("navbar item %q: %w", item.Label, err)
			}
			id, ok := sidebar.FirstDoc()
			if !ok {
				return nil, fmt.Errorf("navbar item %q: sidebar %s has no docs", item.Label, item.SidebarID)
			}
			doc, _ := collection.ByID(id)
			link.Href = s.href(s.docRoute(doc))
		}

		links = append(links, link)
	}

	return links, nil
}

// Routes lists every page route: the homepage first, then docs in order.
func (s *SiteService) Routes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.routes...)
}

func (s *SiteService) HasRoute(route string) bool {
	_, ok := s.lookup(route)
	return ok
}

func (s *SiteService) lookup(route string) (Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.pages[route]; ok {
		return p, true
	}
	home := s.site.HomePath()
	if core.NormalizePath(route) == core.NormalizePath(home) {
		return s.pages[home], true
	}
	p, ok := s.pages[core.NormalizePath(route)]
	return p, ok
}

// Render returns the html of the page at route.
func (s *SiteService) Render(route string) ([]byte, error) {
	page, ok := s.lookup(route)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, route)
	}

	if html, ok := s.cache.get(page.Route); ok {
		return html, nil
	}

	html, err := view.Render(s.pageNode(page))
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", page.Route, err)
	}

	s.cache.set(page.Route, html)
	return html, nil
}

// RenderNotFound returns the html of the not found page.
func (s *SiteService) RenderNotFound() ([]byte, error) {
	return view.Render(view.NotFound(s.layout(false)))
}

func (s *SiteService) pageNode(page Page) g.Node {
	switch page.Kind {
	case PageDoc:
		return view.DocPage(s.layout(true), s.docProps(page.DocID))
	default:
		return view.Home(s.layout(false), s.features)
	}
}

func (s *SiteService) layout(inDocs bool) view.LayoutProps {
	s.mu.RLock()
	navLinks := make([]view.NavLink, len(s.navLinks))
	copy(navLinks, s.navLinks)
	highlight := s.highlight
	s.mu.RUnlock()

	for i, item := range s.site.ThemeConfig.Navbar.Items {
		if i < len(navLinks) && item.Kind() == core.NavItemDocSidebar {
			navLinks[i].Active = inDocs
		}
	}

	var stylesheets []string
	if s.site.Theme.CustomCSS != "" {
		stylesheets = append(stylesheets, s.site.AssetPath(s.site.Theme.CustomCSS))
	}
	stylesheets = append(stylesheets, s.site.AssetPath(HighlightCSSPath)+"?v="+core.HashContent(highlight))

	return view.LayoutProps{
		Site:        s.site,
		NavLinks:    navLinks,
		Stylesheets: stylesheets,
		ReloadURL:   s.reloadURL,
	}
}

func (s *SiteService) docProps(id string) view.DocProps {
	s.mu.RLock()
	collection := s.docs
	s.mu.RUnlock()

	doc, _ := collection.ByID(id)
	sidebar, _ := collection.Sidebars.Get(s.site.Docs.SidebarID)

	hrefs := make(map[string]string, len(collection.Docs))
	for _, d := range collection.Docs {
		hrefs[d.ID] = s.href(s.docRoute(d))
	}

	props := view.DocProps{
		Doc:     doc,
		Sidebar: sidebar,
		Hrefs:   hrefs,
		EditURL: s.editURL(doc),
	}

	prev, next := sidebar.Neighbors(doc.ID)
	if d, ok := collection.ByID(prev); ok {
		props.Prev = &view.PageLink{Label: d.Label(), Href: hrefs[d.ID]}
	}
	if d, ok := collection.ByID(next); ok {
		props.Next = &view.PageLink{Label: d.Label(), Href: hrefs[d.ID]}
	}

	return props
}

func (s *SiteService) editURL(doc docs.Doc) string {
	if s.site.Docs.EditURL == "" {
		return ""
	}
	base := s.site.Docs.EditURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + path.Join(s.site.Docs.Path, doc.Source)
}

// HighlightCSS returns the generated code highlighting stylesheet.
func (s *SiteService) HighlightCSS() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.highlight
}

// Asset returns a static file or a generated stylesheet by its path relative
// to the base URL.
func (s *SiteService) Asset(rel string) ([]byte, bool) {
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if rel == HighlightCSSPath {
		return s.HighlightCSS(), true
	}

	data, err := fs.ReadFile(s.content, path.Join(StaticDir, rel))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *SiteService) HasAsset(rel string) bool {
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if rel == HighlightCSSPath {
		return true
	}
	info, err := fs.Stat(s.content, path.Join(StaticDir, rel))
	return err == nil && !info.IsDir()
}

// AssetPaths lists the static files relative to the static directory.
func (s *SiteService) AssetPaths() ([]string, error) {
	var paths []string

	err := fs.WalkDir(s.content, StaticDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == StaticDir {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		paths = append(paths, strings.TrimPrefix(p, StaticDir+"/"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list static files: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}
