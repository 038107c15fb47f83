package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// handleFrontend serves the static frontend from disk. The root path maps to
// index.html, a missing extension falls back to the matching .html file, and
// anything under /api is never treated as a page.
func (s *Server) handleFrontend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	clean := path.Clean("/" + r.URL.Path)
	if clean == "/api" || strings.HasPrefix(clean, "/api/") {
		writeError(w, http.StatusNotFound, "Not found", "")
		return
	}

	if clean == "/" {
		clean = "/index.html"
	}

	// The leading-slash Clean above pins the path inside the frontend dir.
	target := filepath.Join(s.frontendDir, filepath.FromSlash(clean))

	if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
		http.ServeFile(w, r, target)
		return
	}

	// Extensionless page names resolve to their .html file.
	if filepath.Ext(target) == "" {
		if info, err := os.Stat(target + ".html"); err == nil && info.Mode().IsRegular() {
			http.ServeFile(w, r, target+".html")
			return
		}
	}

	writeError(w, http.StatusNotFound, "Page not found", "")
}
