package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/product-catalog/internal/version"
)

// catalogInfo is the part of a loaded catalog the health check reports on
type catalogInfo interface {
	ID() string
	Len() int
	Source() string
	LoadedAt() time.Time
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	catalog catalogInfo
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(catalog catalogInfo, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Version   string        `json:"version"`
	Catalog   CatalogHealth `json:"catalog"`
}

// CatalogHealth describes the catalog snapshot being served
type CatalogHealth struct {
	ID       string    `json:"id"`
	Source   string    `json:"source,omitempty"`
	Products int       `json:"products"`
	LoadedAt time.Time `json:"loaded_at"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   version.Version,
		Catalog: CatalogHealth{
			ID:       h.catalog.ID(),
			Source:   h.catalog.Source(),
			Products: h.catalog.Len(),
			LoadedAt: h.catalog.LoadedAt(),
		},
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
