package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-catalog/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	matches := []model.Product{
		{ID: 1, Name: "Air", Brand: "X", Category: model.Category{ID: 1, Name: "Shoes"}},
	}

	tests := []struct {
		name       string
		query      string
		mockMethod string
		mockArgs   []interface{}
	}{
		{
			name:       "No filters lists all",
			query:      "",
			mockMethod: "GetAll",
			mockArgs:   []interface{}{mock.Anything},
		},
		{
			name:       "Category filter",
			query:      "?category=Shoes",
			mockMethod: "GetByCategory",
			mockArgs:   []interface{}{mock.Anything, "Shoes"},
		},
		{
			name:       "Brand filter",
			query:      "?brand=X",
			mockMethod: "GetByBrand",
			mockArgs:   []interface{}{mock.Anything, "X"},
		},
		{
			name:       "Name filter",
			query:      "?name=Air",
			mockMethod: "GetByName",
			mockArgs:   []interface{}{mock.Anything, "Air"},
		},
		{
			name:       "Category and brand filter",
			query:      "?category=Shoes&brand=X",
			mockMethod: "GetByCategoryAndBrand",
			mockArgs:   []interface{}{mock.Anything, "Shoes", "X"},
		},
		{
			name:       "Brand and name filter",
			query:      "?brand=X&name=Air",
			mockMethod: "GetByBrandAndName",
			mockArgs:   []interface{}{mock.Anything, "X", "Air"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			h := NewProductHandler(mockService, logger)

			mockService.On(tt.mockMethod, tt.mockArgs...).Return(matches, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/products"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			mockService.AssertExpectations(t)
		})
	}

	t.Run("No match yields empty list, not error", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)

		mockService.On("GetByBrand", mock.Anything, "Nope").Return([]model.Product{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products?brand=Nope", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Message string          `json:"message"`
			Data    []model.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.NotNil(t, envelope.Data)
		assert.Empty(t, envelope.Data)
	})
}

func TestProductHandler_Count(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)

		mockService.On("CountByBrandAndName", mock.Anything, "X", "Air").Return(int64(2), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/count?brand=X&name=Air", nil)
		rec := httptest.NewRecorder()

		h.Count(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Data int64 `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, int64(2), envelope.Data)
	})

	t.Run("Missing parameters map to 400", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/count?brand=X", nil)
		rec := httptest.NewRecorder()

		h.Count(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CountByBrandAndName", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)

		mockService.On("GetByID", mock.Anything, int64(1)).
			Return(&model.Product{ID: 1, Name: "Air"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not found maps to 404", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)

		mockService.On("GetByID", mock.Anything, int64(99)).
			Return(nil, model.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()

		h.GetByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductHandler_Add(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)

		req := model.ProductRequest{
			Name:     "Air",
			Brand:    "X",
			Price:    10.00,
			Category: model.CategoryRequest{Name: "Shoes"},
		}
		mockService.On("Add", mock.Anything, &req).
			Return(&model.Product{ID: 1, Name: "Air", Category: model.Category{ID: 1, Name: "Shoes"}}, nil)

		body, _ := json.Marshal(req)
		httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.Add(rec, httpReq)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Malformed body maps to 400", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)

		httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader([]byte("nope")))
		rec := httptest.NewRecorder()

		h.Add(rec, httpReq)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Unknown category maps to 404", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)

		mockService.On("Update", mock.Anything, mock.Anything, int64(1)).
			Return(nil, model.ErrCategoryNotFound)

		body, _ := json.Marshal(model.ProductRequest{
			Name:     "Air",
			Category: model.CategoryRequest{Name: "Ghost"},
		})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/1", bytes.NewReader(body))
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		h.Update(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)

		mockService.On("DeleteByID", mock.Anything, int64(1)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/1", nil)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		h.Delete(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not found maps to 404", func(t *testing.T) {
		mockService := new(MockProductService)
		h := NewProductHandler(mockService, logger)

		mockService.On("DeleteByID", mock.Anything, int64(99)).
			Return(model.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()

		h.Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
