package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"shop-catalog/internal/model"
	"shop-catalog/internal/service"

	"github.com/rs/zerolog"
)

// maxUploadBytes caps the in-memory size of a multipart upload (32 MiB).
const maxUploadBytes = 32 << 20

// ImageHandler handles image-related HTTP requests.
type ImageHandler struct {
	service service.ImageService
	logger  zerolog.Logger
}

// NewImageHandler creates a new image handler.
func NewImageHandler(service service.ImageService, logger zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		service: service,
		logger:  logger.With().Str("handler", "image").Logger(),
	}
}

// Upload handles POST /api/v1/images/upload requests. The multipart form
// carries one or more "files" parts and a "productId" field.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form", h.logger)
		return
	}

	productID, err := strconv.ParseInt(r.FormValue("productId"), 10, 64)
	if err != nil || productID < 1 {
		writeError(w, http.StatusBadRequest, "valid productId form field is required", h.logger)
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		writeError(w, http.StatusBadRequest, "at least one file is required", h.logger)
		return
	}

	uploads := make([]model.ImageUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		upload, err := readUpload(fh)
		if err != nil {
			h.logger.Error().Err(err).Str("file_name", fh.Filename).Msg("failed to read uploaded file")
			writeError(w, http.StatusInternalServerError, "failed to read uploaded file", h.logger)
			return
		}
		uploads = append(uploads, *upload)
	}

	descriptors, err := h.service.Save(r.Context(), uploads, productID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusCreated, "Images saved successfully", descriptors)
}

// GetByID handles GET /api/v1/images/{id} requests, returning metadata only.
func (h *ImageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	image, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Image retrieved successfully", image)
}

// Download handles GET /api/v1/images/download/{id} requests, streaming the
// stored bytes with the original content type and file name.
func (h *ImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	image, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", image.FileType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", image.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(image.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image.Data); err != nil {
		h.logger.Error().Err(err).Int64("image_id", id).Msg("failed to write image bytes")
	}
}

// Update handles PUT /api/v1/images/{id} requests. The multipart form
// carries a single "file" part replacing the stored image.
func (h *ImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form", h.logger)
		return
	}

	fileHeaders := r.MultipartForm.File["file"]
	if len(fileHeaders) != 1 {
		writeError(w, http.StatusBadRequest, "exactly one file is required", h.logger)
		return
	}

	upload, err := readUpload(fileHeaders[0])
	if err != nil {
		h.logger.Error().Err(err).Str("file_name", fileHeaders[0].Filename).Msg("failed to read uploaded file")
		writeError(w, http.StatusInternalServerError, "failed to read uploaded file", h.logger)
		return
	}

	if err := h.service.Update(r.Context(), upload, id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Image updated successfully", nil)
}

// Delete handles DELETE /api/v1/images/{id} requests.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Image deleted successfully", nil)
}

// readUpload reads one multipart file part into an ImageUpload.
func readUpload(fh *multipart.FileHeader) (*model.ImageUpload, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &model.ImageUpload{
		FileName:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
