package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog/log"
)

// uploadService is the subset of the upload service the handler needs
type uploadService interface {
	SaveImage(file multipart.File, header *multipart.FileHeader) (string, error)
}

// UploadHandler handles image upload HTTP requests
type UploadHandler struct {
	uploadService uploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService uploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// UploadImage handles POST /api/upload-image
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageURL, err := h.uploadService.SaveImage(file, header)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to store image")
		respondError(w, "Failed to store image", http.StatusInternalServerError)
		return
	}

	log.Info().Str("filename", header.Filename).Str("image_url", imageURL).Msg("Image uploaded")

	respondJSON(w, map[string]interface{}{
		"success":   true,
		"image_url": imageURL,
	}, http.StatusOK)
}
