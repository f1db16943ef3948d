package handler

import (
	"net/http"
	"strings"

	"mini-pos/internal/model"
	"mini-pos/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// List handles GET /api/menu requests.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Menu(r.Context()))
}

// Items handles GET /api/menu/{category} requests.
func (h *MenuHandler) Items(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, h.logger)
		return
	}

	category := strings.TrimPrefix(r.URL.Path, "/api/menu/")
	category = strings.TrimSuffix(category, "/")
	if category == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "category is required", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MenuCategory{
		Name:  category,
		Items: h.service.Items(r.Context(), category),
	})
}
