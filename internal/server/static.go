package server

import (
	"net/http"
	"path"
	"strings"
)

// contentTypes maps asset extensions to MIME types. Unknown extensions are
// served as text/plain.
var contentTypes = map[string]string{
	".css":   "text/css",
	".js":    "application/javascript",
	".json":  "application/json",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".svg":   "image/svg+xml",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
}

// handleStatic serves assets embedded in the binary.
func (a *App) handleStatic(w http.ResponseWriter, r *http.Request) {
	p := r.PathValue("path")
	if p == "" || strings.Contains(p, "..") {
		http.NotFound(w, r)
		return
	}

	b, err := staticFS.ReadFile("static/" + p)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ct := contentTypes[strings.ToLower(path.Ext(p))]
	if ct == "" {
		ct = "text/plain"
	}
	w.Header().Set("Content-Type", ct)
	_, _ = w.Write(b)
}
