package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/quickagent/quickagent/internal/models"
)

// Scanner runs a visual search over raw image bytes
type Scanner interface {
	Scan(ctx context.Context, image []byte) (*models.ScanResponse, error)
}

// Captioner generates a marketing caption from product fields
type Captioner interface {
	Generate(ctx context.Context, req models.CaptionRequest) (string, error)
}

type Handler struct {
	scanner   Scanner
	captioner Captioner
	publicDir string
}

func New(scanner Scanner, captioner Captioner, publicDir string) *Handler {
	return &Handler{
		scanner:   scanner,
		captioner: captioner,
		publicDir: publicDir,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		slog.Error("Unable to encode JSON error response", "err", err)
	}
}

// errorMessage returns the error's message, or fallback when it is empty
func errorMessage(err error, fallback string) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
