package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// HandleStatic serves files from the public directory and falls back to
// index.html for any unmatched GET path so client-side routing works.
func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.writeError(w, "Not found", http.StatusNotFound)
		return
	}

	// Prevent directory traversal attacks
	if strings.Contains(r.URL.Path, "..") {
		h.writeError(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" {
		path = "index.html"
	}

	fullPath := filepath.Join(h.publicDir, path)
	if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
		http.ServeFile(w, r, fullPath)
		return
	}

	// SPA fallback
	http.ServeFile(w, r, filepath.Join(h.publicDir, "index.html"))
}
