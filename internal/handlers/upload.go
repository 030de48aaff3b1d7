package handlers

import (
	"net/http"

	"github.com/shamiohaque/ueldo-backend/internal/services"
)

// UploadHandler accepts a competition image and returns its hosted URL, for
// the admin panel to place in the image field. Registered only when
// Cloudinary credentials are configured.
type UploadHandler struct {
	cloudinary *services.CloudinaryService
}

func NewUploadHandler(cloudinary *services.CloudinaryService) *UploadHandler {
	return &UploadHandler{cloudinary: cloudinary}
}

// Upload handles POST /admin/upload (multipart, field "file").
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to parse form: " + err.Error()})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file provided"})
		return
	}
	defer file.Close()

	url, err := h.cloudinary.UploadImage(r.Context(), file, "ueldo")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to upload file"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url, "message": "File uploaded successfully"})
}
