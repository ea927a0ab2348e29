// Package router assembles the HTTP routes and middleware of the catalog API.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/product-catalog/internal/catalog"
	"github.com/Lixing-Zhang/product-catalog/internal/handlers"
	"github.com/Lixing-Zhang/product-catalog/internal/middleware"
	"github.com/Lixing-Zhang/product-catalog/internal/repository"
	"github.com/Lixing-Zhang/product-catalog/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options tunes the transport around the query handlers
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// New builds the router serving queries over the given catalog
func New(c *catalog.Catalog, log *slog.Logger, opts Options) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	productRepo := repository.NewCatalogProductRepository(c)
	productService := service.NewProductService(productRepo)

	healthHandler := handlers.NewHealthHandler(c, log)
	homeHandler := handlers.NewHomeHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	// Read-only API: only GET needs to be allowed cross-origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(handlers.NotFound(log))
	r.MethodNotAllowed(handlers.MethodNotAllowed(log))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Get("/", homeHandler.Home)
	r.Get("/greet/{name}", homeHandler.Greet)

	r.Get("/search", productHandler.Search)
	r.Get("/products", productHandler.ListProducts)
	r.Get("/products/{productId}", productHandler.GetProduct)
	r.Get("/filter", productHandler.Filter)
	r.Get("/filter_by_category", productHandler.Filter)

	return r
}
