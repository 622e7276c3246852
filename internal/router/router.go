package router

import (
	"net/http"

	"shop-catalog/internal/handler"
	"shop-catalog/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	imageHandler *handler.ImageHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Category routes
	mux.HandleFunc("GET /api/v1/categories", categoryHandler.GetAll)
	mux.HandleFunc("POST /api/v1/categories", categoryHandler.Add)
	mux.HandleFunc("GET /api/v1/categories/name/{name}", categoryHandler.GetByName)
	mux.HandleFunc("GET /api/v1/categories/{id}", categoryHandler.GetByID)
	mux.HandleFunc("PUT /api/v1/categories/{id}", categoryHandler.Update)
	mux.HandleFunc("DELETE /api/v1/categories/{id}", categoryHandler.Delete)

	// Product routes
	mux.HandleFunc("GET /api/v1/products", productHandler.List)
	mux.HandleFunc("POST /api/v1/products", productHandler.Add)
	mux.HandleFunc("GET /api/v1/products/count", productHandler.Count)
	mux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetByID)
	mux.HandleFunc("PUT /api/v1/products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /api/v1/products/{id}", productHandler.Delete)

	// Image routes
	mux.HandleFunc("POST /api/v1/images/upload", imageHandler.Upload)
	mux.HandleFunc("GET /api/v1/images/download/{id}", imageHandler.Download)
	mux.HandleFunc("GET /api/v1/images/{id}", imageHandler.GetByID)
	mux.HandleFunc("PUT /api/v1/images/{id}", imageHandler.Update)
	mux.HandleFunc("DELETE /api/v1/images/{id}", imageHandler.Delete)

	// Apply middleware in order: Recovery -> CorrelationID -> Logging -> CORS -> APIKeyAuth.
	// CorrelationID must sit outside Logging so the logged request context
	// already carries the id.
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.CorrelationID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
