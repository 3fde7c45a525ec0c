// Package docsite builds and serves the Pipeguru documentation site.
package docsite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/pipeguru/docsite/internal/adapters/cli"
	fsadapter "github.com/pipeguru/docsite/internal/adapters/fs"
	httpadapter "github.com/pipeguru/docsite/internal/adapters/http"
	"github.com/pipeguru/docsite/internal/adapters/watch"
	"github.com/pipeguru/docsite/internal/config"
	"github.com/pipeguru/docsite/internal/core"
	"github.com/pipeguru/docsite/internal/usecase"
)

// ErrNoContentDir is returned by Watch when the site renders from embedded content.
var ErrNoContentDir = errors.New("watching needs a content directory")

// Option configures a Site.
type Option func(*Site)

// WithContent renders from fsys instead of the embedded content.
func WithContent(fsys fs.FS) Option {
	return func(s *Site) {
		s.content = fsys
		s.contentDir = ""
	}
}

// WithContentDir renders from a directory on disk, which also makes the
// site watchable.
func WithContentDir(dir string) Option {
	return func(s *Site) {
		s.content = os.DirFS(dir)
		s.contentDir = dir
	}
}

// WithLogger sets the logger used by the site and its server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Site) {
		s.logger = logger
	}
}

// WithFeatures replaces the homepage feature cards.
func WithFeatures(items []core.FeatureItem) Option {
	return func(s *Site) {
		s.features = items
	}
}

// WithFileSystem replaces where Build writes its output.
func WithFileSystem(fsys usecase.FileSystem) Option {
	return func(s *Site) {
		s.output = fsys
	}
}

// Site is the loaded documentation site.
type Site struct {
	cfg        *config.Config
	content    fs.FS
	contentDir string
	features   []core.FeatureItem
	logger     *slog.Logger
	output     usecase.FileSystem

	service *usecase.SiteService
	reload  *httpadapter.Reload
}

// New loads the content and prepares the site. A nil cfg uses the defaults.
func New(cfg *config.Config, opts ...Option) (*Site, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Site{
		cfg:      cfg,
		content:  ContentFS,
		features: core.FeatureList(),
		logger:   slog.Default(),
		output:   fsadapter.NewOSFileSystem(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var reloadURL string
	if cfg.Server.Dev {
		s.reload = httpadapter.NewReload()
		reloadURL = httpadapter.ReloadPath
	}

	service, err := usecase.NewSiteService(usecase.SiteInput{
		Site:      cfg.Site,
		Content:   s.content,
		Features:  s.features,
		Logger:    s.logger,
		CacheTTL:  s.cacheTTL(),
		ReloadURL: reloadURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load site: %w", err)
	}
	s.service = service

	return s, nil
}

// cacheTTL is zero in dev mode so edits show up on the next request.
func (s *Site) cacheTTL() time.Duration {
	if s.cfg.Server.Dev {
		return 0
	}
	return s.cfg.Server.CacheTTL
}

// Routes lists every page of the site.
func (s *Site) Routes() []string {
	return s.service.Routes()
}

// Handler serves the site the way the static export lays it out.
func (s *Site) Handler() http.Handler {
	return httpadapter.NewRouter(s.service, httpadapter.RouterOptions{
		Logger: s.logger,
		IsDev:  s.cfg.Server.Dev,
		Reload: s.reload,
	})
}

// Build exports the site into the configured output directory. The report
// may be nil.
func (s *Site) Build(ctx context.Context, report *cli.BuildReport) usecase.BuildOutput {
	var reporter usecase.BuildReporter
	if report != nil {
		reporter = report
	}

	builder := usecase.NewBuildService(s.service, s.output, reporter, s.logger)
	return builder.BuildSite(ctx, usecase.BuildInput{
		OutDir:      s.cfg.Build.OutDir,
		Concurrency: s.cfg.Build.Concurrency,
		Clean:       s.cfg.Build.Clean,
	})
}

// Watch reloads the content whenever it changes on disk and tells open
// browsers to refresh. It blocks until ctx is done.
func (s *Site) Watch(ctx context.Context) error {
	if s.contentDir == "" {
		return ErrNoContentDir
	}

	w, err := watch.New(s.contentDir, watch.DefaultDebounce, s.logger)
	if err != nil {
		return err
	}

	return w.Run(ctx, func() {
		if err := s.service.Reload(); err != nil {
			s.logger.Error("failed to reload content", "error", err)
			return
		}
		s.logger.Info("content reloaded")
		if s.reload != nil {
			s.reload.Notify()
		}
	})
}
