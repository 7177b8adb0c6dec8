package handlers

import "net/http"

// HandleHealth is the liveness probe; it never touches external services
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]bool{"ok": true})
}
