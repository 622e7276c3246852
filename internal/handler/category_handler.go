package handler

import (
	"encoding/json"
	"net/http"

	"shop-catalog/internal/model"
	"shop-catalog/internal/service"

	"github.com/rs/zerolog"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// GetAll handles GET /api/v1/categories requests.
func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetByID handles GET /api/v1/categories/{id} requests.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	category, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Category retrieved successfully", category)
}

// GetByName handles GET /api/v1/categories/name/{name} requests.
func (h *CategoryHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Category retrieved successfully", category)
}

// Add handles POST /api/v1/categories requests.
func (h *CategoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	category, err := h.service.Add(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusCreated, "Category added successfully", category)
}

// Update handles PUT /api/v1/categories/{id} requests.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	category, err := h.service.Update(r.Context(), &req, id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Category updated successfully", category)
}

// Delete handles DELETE /api/v1/categories/{id} requests.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Category deleted successfully", nil)
}
