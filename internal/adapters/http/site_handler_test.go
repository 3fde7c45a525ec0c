package http

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/pipeguru/docsite/internal/core"
	"github.com/pipeguru/docsite/internal/platform/logger"
	"github.com/pipeguru/docsite/internal/usecase"
)

func newTestSite(t *testing.T) *usecase.SiteService {
	t.Helper()

	site, err := usecase.NewSiteService(usecase.SiteInput{
		Site: core.DefaultSite(),
		Content: fstest.MapFS{
			"docs/intro.md":         {Data: []byte("---\nsidebar_position: 1\n---\n\n# Introduction\n")},
			"docs/installation.md":  {Data: []byte("# Installation\n")},
			"static/css/custom.css": {Data: []byte(":root{}")},
			"static/img/logo.svg":   {Data: []byte("<svg/>")},
		},
		Features: core.FeatureList(),
		Logger:   logger.Discard(),
	})
	if err != nil {
		t.Fatalf("NewSiteService() error = %v", err)
	}
	return site
}

func TestRouter(t *testing.T) {
	router := NewRouter(newTestSite(t), RouterOptions{Logger: logger.Discard()})

	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantLocation string
		wantType     string
		wantBody     string
	}{
		{name: "home", path: "/docs/", wantStatus: http.StatusOK, wantType: "text/html; charset=utf-8", wantBody: "New to pipeguru?"},
		{name: "home without slash", path: "/docs", wantStatus: http.StatusMovedPermanently, wantLocation: "/docs/"},
		{name: "root", path: "/", wantStatus: http.StatusFound, wantLocation: "/docs/"},
		{name: "doc", path: "/docs/intro", wantStatus: http.StatusOK, wantBody: "Introduction | Pipeguru Docs"},
		{name: "doc with slash", path: "/docs/intro/", wantStatus: http.StatusMovedPermanently, wantLocation: "/docs/intro"},
		{name: "asset", path: "/docs/css/custom.css", wantStatus: http.StatusOK, wantType: "text/css; charset=utf-8", wantBody: ":root{}"},
		{name: "highlight css", path: "/docs/css/highlight.css", wantStatus: http.StatusOK, wantBody: ".chroma"},
		{name: "missing page", path: "/docs/nope", wantStatus: http.StatusNotFound, wantBody: "Page Not Found"},
		{name: "outside base", path: "/blog", wantStatus: http.StatusNotFound},
		{name: "health", path: "/healthz", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "post", method: http.MethodPost, path: "/docs/intro", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" && rec.Header().Get("Location") != tt.wantLocation {
				t.Errorf("Location = %q, want %q", rec.Header().Get("Location"), tt.wantLocation)
			}
			if tt.wantType != "" && rec.Header().Get("Content-Type") != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", rec.Header().Get("Content-Type"), tt.wantType)
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body does not contain %q", tt.wantBody)
			}
		})
	}
}

func TestAssetETag(t *testing.T) {
	router := NewRouter(newTestSite(t), RouterOptions{Logger: logger.Discard()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/img/logo.svg", nil))
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	if rec.Header().Get("Content-Type") != "image/svg+xml" {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}

	req := httptest.NewRequest(http.MethodGet, "/docs/img/logo.svg", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Error("304 response has a body")
	}
}

func TestDevModeDisablesCaching(t *testing.T) {
	router := NewRouter(newTestSite(t), RouterOptions{Logger: logger.Discard(), IsDev: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/css/custom.css", nil))

	if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", got)
	}
}

type failingSite struct {
	*usecase.SiteService
}

func (failingSite) Render(string) ([]byte, error) {
	return nil, errors.New("template exploded")
}

func TestRenderError(t *testing.T) {
	site := failingSite{newTestSite(t)}

	t.Run("dev shows the message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewSiteHandler(site, logger.Discard(), true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/intro", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "template exploded") {
			t.Error("dev error page hides the message")
		}
	})

	t.Run("production hides the message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewSiteHandler(site, logger.Discard(), false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/intro", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "template exploded") {
			t.Error("production error page leaks the message")
		}
	})
}

func TestReloadStream(t *testing.T) {
	reload := NewReload()
	server := httptest.NewServer(NewRouter(newTestSite(t), RouterOptions{Logger: logger.Discard(), IsDev: true, Reload: reload}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+ReloadPath, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if got := resp.Header.Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("Content-Type = %q", got)
	}

	lines := bufio.NewScanner(resp.Body)
	waitFor := func(want string) {
		t.Helper()
		for lines.Scan() {
			if lines.Text() == want {
				return
			}
		}
		t.Fatalf("stream ended before %q: %v", want, lines.Err())
	}

	waitFor("event: ready")
	for reload.Subscribers() == 0 {
		time.Sleep(10 * time.Millisecond)
	}
	reload.Notify()
	waitFor("event: reload")
}
