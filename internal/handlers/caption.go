package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/quickagent/quickagent/internal/caption"
	"github.com/quickagent/quickagent/internal/models"
)

// maxCaptionBody caps the JSON request body at 2 MiB
const maxCaptionBody = 2 << 20

// HandleCaption generates a marketing caption for the posted product fields
func (h *Handler) HandleCaption(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCaptionBody)

	// An empty body is treated as an empty request; every field has a default
	var req models.CaptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	text, err := h.captioner.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, caption.ErrNotConfigured) {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeError(w, errorMessage(err, "Caption failed"), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, models.CaptionResponse{Caption: text})
}
