package http

import (
	"bytes"
	"errors"
	"html"
	"log/slog"
	"net/http"

	"github.com/pipeguru/docsite/internal/core"
	"github.com/pipeguru/docsite/internal/usecase"
)

// Site is what the handlers need from the site service.
type Site interface {
	Config() core.SiteConfig
	HasRoute(route string) bool
	Render(route string) ([]byte, error)
	RenderNotFound() ([]byte, error)
	HasAsset(rel string) bool
	Asset(rel string) ([]byte, bool)
}

type SiteHandler struct {
	site   Site
	logger *slog.Logger
	isDev  bool
}

func NewSiteHandler(site Site, logger *slog.Logger, isDev bool) *SiteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SiteHandler{
		site:   site,
		logger: logger,
		isDev:  isDev,
	}
}

func (h *SiteHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	cfg := h.site.Config()
	decision := core.DecideRequest(core.RequestInput{
		Path:          req.URL.Path,
		BaseURL:       cfg.BaseURL,
		TrailingSlash: cfg.TrailingSlash,
		HasRoute:      h.site.HasRoute,
		HasAsset:      h.site.HasAsset,
	})

	switch decision.Action {
	case core.ActionRedirect:
		location := decision.Location
		if req.URL.RawQuery != "" {
			location += "?" + req.URL.RawQuery
		}
		http.Redirect(w, req, location, http.StatusMovedPermanently)

	case core.ActionRenderPage:
		h.servePage(w, req, decision.Route)

	case core.ActionServeAsset:
		h.serveAsset(w, req, decision.AssetRel)

	default:
		h.serveNotFound(w, req)
	}
}

func (h *SiteHandler) servePage(w http.ResponseWriter, req *http.Request, route string) {
	page, err := h.site.Render(route)
	if errors.Is(err, usecase.ErrPageNotFound) {
		h.serveNotFound(w, req)
		return
	}
	if err != nil {
		h.logger.Error("failed to render page", "route", route, "error", err)
		h.serveError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if h.isDev {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.WriteHeader(http.StatusOK)
	if req.Method != http.MethodHead {
		_, _ = w.Write(page)
	}
}

func (h *SiteHandler) serveNotFound(w http.ResponseWriter, req *http.Request) {
	page, err := h.site.RenderNotFound()
	if err != nil {
		h.logger.Error("failed to render not found page", "error", err)
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if req.Method != http.MethodHead {
		_, _ = w.Write(page)
	}
}

func (h *SiteHandler) serveError(w http.ResponseWriter, err error) {
	data := core.ErrorData{
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
