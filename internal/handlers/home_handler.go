package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/product-catalog/internal/models"
)

const welcomeMessage = "Welcome to the product catalog API"

// HomeHandler serves the welcome and greeting endpoints
type HomeHandler struct {
	logger *slog.Logger
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		logger: logger,
	}
}

// Home handles GET /
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: welcomeMessage}, h.logger)
}

// Greet handles GET /greet/{name}
// The name is echoed back as given, without validation.
func (h *HomeHandler) Greet(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")
	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Hello, " + name}, h.logger)
}
