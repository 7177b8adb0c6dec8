package handlers

import (
	"io"
	"net/http"
)

// maxUploadBytes caps the uploaded image at 10 MiB
const maxUploadBytes = 10 << 20

// multipartSlack allows for multipart framing overhead around the file
const multipartSlack = 1 << 20

// HandleScan accepts a single image in the "file" multipart field and
// returns the reshaped web detection result.
func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+multipartSlack)

	file, _, err := r.FormFile("file")
	if err != nil {
		// The web client historically posted the field as "files"
		file, _, err = r.FormFile("files")
		if err != nil {
			h.writeError(w, "No image uploaded", http.StatusBadRequest)
			return
		}
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(data) > maxUploadBytes {
		h.writeError(w, "File too large (max 10MB)", http.StatusBadRequest)
		return
	}

	result, err := h.scanner.Scan(r.Context(), data)
	if err != nil {
		h.writeError(w, errorMessage(err, "Scan failed"), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, result)
}
