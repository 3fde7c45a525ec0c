package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pipeguru/docsite/internal/core"
	"github.com/pipeguru/docsite/internal/links"
)

var ErrBrokenLinks = errors.New("broken links found")

type BuildInput struct {
	OutDir      string
	Concurrency int
	Clean       bool
}

type BuildOutput struct {
	Pages int
	Files []string

	// Unchanged lists files left in place because their content matched.
	// It is only filled when the build does not clean first.
	Unchanged []string

	BrokenLinks []core.BrokenLink
	Error       error
}

type BuildService struct {
	site     *SiteService
	fs       FileSystem
	reporter BuildReporter
	logger   *slog.Logger
}

func NewBuildService(site *SiteService, fs FileSystem, reporter BuildReporter, logger *slog.Logger) *BuildService {
	if reporter == nil {
		reporter = nopReporter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildService{
		site:     site,
		fs:       fs,
		reporter: reporter,
		logger:   logger,
	}
}

// BuildSite renders every page and writes the static site to input.OutDir.
func (s *BuildService) BuildSite(ctx context.Context, input BuildInput) BuildOutput {
	if input.OutDir == "" {
		return BuildOutput{Error: fmt.Errorf("output directory is required")}
	}
	if input.Concurrency < 1 {
		input.Concurrency = 1
	}

	site := s.site.Config()
	routes := s.site.Routes()
	s.reporter.SetPageCount(len(routes))

	if input.Clean {
		done := s.reporter.Track("Clean output directory")
		err := s.fs.RemoveAll(input.OutDir)
		done(err)
		if err != nil {
			return BuildOutput{Error: fmt.Errorf("failed to clean %s: %w", input.OutDir, err)}
		}
	}

	done := s.reporter.Track("Render pages")
	pages, err := s.renderPages(ctx, routes, input.Concurrency)
	done(err)
	if err != nil {
		return BuildOutput{Error: err}
	}

	assets, err := s.site.AssetPaths()
	if err != nil {
		return BuildOutput{Error: err}
	}

	done = s.reporter.Track("Check links")
	broken, err := s.checkLinks(site, pages, routes, assets)
	done(err)
	output := BuildOutput{Pages: len(pages), BrokenLinks: broken}
	if err != nil {
		output.Error = err
		return output
	}

	files := make(map[string][]byte, len(pages)+len(assets)+3)
	for route, html := range pages {
		files[core.OutputFile(route, site.BaseURL, site.TrailingSlash)] = html
	}

	notFound, err := s.site.RenderNotFound()
	if err != nil {
		output.Error = fmt.Errorf("failed to render 404 page: %w", err)
		return output
	}
	files["404.html"] = notFound

	sitemap, err := core.BuildSitemap(site, routes)
	if err != nil {
		output.Error = err
		return output
	}
	files[site.Sitemap.Filename] = sitemap
	files[HighlightCSSPath] = s.site.HighlightCSS()

	for _, rel := range assets {
		data, ok := s.site.Asset(rel)
		if !ok {
			output.Error = fmt.Errorf("failed to read static file %s", rel)
			return output
		}
		files[rel] = data
	}

	done = s.reporter.Track("Write files")
	written, unchanged, err := s.writeFiles(ctx, input.OutDir, files, input.Concurrency, !input.Clean)
	done(err)
	output.Files = written
	output.Unchanged = unchanged
	if err != nil {
		output.Error = err
		return output
	}

	s.logger.Info("site built", "out_dir", input.OutDir, "pages", len(pages), "files", len(written), "unchanged", len(unchanged))
	return output
}

func (s *BuildService) renderPages(ctx context.Context, routes []string, concurrency int) (map[string][]byte, error) {
	var mu sync.Mutex
	pages := make(map[string][]byte, len(routes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, route := range routes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			html, err := s.site.Render(route)
			if err != nil {
				return err
			}
			mu.Lock()
			pages[route] = html
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

func (s *BuildService) checkLinks(site core.SiteConfig, pages map[string][]byte, routes, assets []string) ([]core.BrokenLink, error) {
	targets := make([]string, 0, len(routes)+len(assets)+2)
	targets = append(targets, routes...)
	for _, rel := range assets {
		targets = append(targets, site.AssetPath(rel))
	}
	targets = append(targets, site.AssetPath(site.Sitemap.Filename), site.AssetPath(HighlightCSSPath))

	broken, err := links.NewChecker(targets).Check(pages)
	if err != nil {
		return nil, err
	}

	switch core.DecideBrokenLinks(site.OnBrokenLinks, len(broken)) {
	case core.LinkActionLog:
		for _, b := range broken {
			s.logger.Info("broken link", "page", b.Page, "href", b.Href, "target", b.Target)
		}
	case core.LinkActionWarn:
		for _, group := range groupBroken(broken) {
			s.reporter.AddWarning(group.page, "Broken links", group.details)
		}
	case core.LinkActionFail:
		for _, group := range groupBroken(broken) {
			s.reporter.AddError(group.page, "Broken links", group.details)
		}
		return broken, fmt.Errorf("%w: %d", ErrBrokenLinks, len(broken))
	}

	return broken, nil
}

type pageLinks struct {
	page    string
	details []string
}

// groupBroken keeps the order of broken, which is sorted by page.
func groupBroken(broken []core.BrokenLink) []pageLinks {
	var groups []pageLinks
	for _, b := range broken {
		detail := fmt.Sprintf("%s (resolved to %s)", b.Href, b.Target)
		if n := len(groups); n > 0 && groups[n-1].page == b.Page {
			groups[n-1].details = append(groups[n-1].details, detail)
			continue
		}
		groups = append(groups, pageLinks{page: b.Page, details: []string{detail}})
	}
	return groups
}

// writeFiles writes every file under outDir. With skipSame, files whose
// content already matches are left untouched.
func (s *BuildService) writeFiles(ctx context.Context, outDir string, files map[string][]byte, concurrency int, skipSame bool) ([]string, []string, error) {
	if err := s.fs.MkdirAll(outDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	var mu sync.Mutex
	var written, unchanged []string

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for rel, data := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dest := filepath.Join(outDir, filepath.FromSlash(rel))
			if skipSame && s.sameContent(dest, data) {
				mu.Lock()
				unchanged = append(unchanged, rel)
				mu.Unlock()
				return nil
			}
			if err := s.fs.WriteFile(dest, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", dest, err)
			}
			mu.Lock()
			written = append(written, rel)
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	sort.Strings(written)
	sort.Strings(unchanged)
	return written, unchanged, err
}

func (s *BuildService) sameContent(dest string, data []byte) bool {
	if !s.fs.FileExists(dest) {
		return false
	}
	current, err := s.fs.ReadFile(dest)
	if err != nil {
		return false
	}
	return bytes.Equal(current, data)
}
