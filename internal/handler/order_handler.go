package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"mini-pos/internal/model"
	"mini-pos/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles requests against the open order.
type OrderHandler struct {
	service service.RegisterService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.RegisterService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// View handles GET /api/order requests.
func (h *OrderHandler) View(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.View(r.Context()))
}

// AddItem handles POST /api/order/items requests.
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, h.logger)
		return
	}

	var req model.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	view, err := h.service.AddItem(r.Context(), req.Category, req.Item)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// RemoveAt handles DELETE /api/order/items/{index} requests.
func (h *OrderHandler) RemoveAt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, r, h.logger)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/order/items/")
	raw = strings.TrimSuffix(raw, "/")
	index, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		// Whole number past any order position.
		writeJSON(w, http.StatusOK, h.service.View(r.Context()))
		return
	}
	if err != nil {
		writeDomainError(w, r, model.ErrInvalidIndex, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.RemoveAt(r.Context(), index))
}

// Clear handles DELETE /api/order requests.
func (h *OrderHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, r, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Clear(r.Context()))
}

// Checkout handles POST /api/order/checkout requests.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Checkout(r.Context()))
}
