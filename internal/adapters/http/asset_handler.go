package http

import (
	"net/http"
	"strconv"

	"github.com/pipeguru/docsite/internal/core"
)

func (h *SiteHandler) serveAsset(w http.ResponseWriter, req *http.Request, rel string) {
	data, ok := h.site.Asset(rel)
	if !ok {
		h.serveNotFound(w, req)
		return
	}

	etag := `"` + core.HashContent(data) + `"`
	w.Header().Set("ETag", etag)
	if h.isDev {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}

	if match := req.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(rel))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if req.Method != http.MethodHead {
		_, _ = w.Write(data)
	}
}
