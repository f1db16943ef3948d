package router

import (
	"encoding/json"
	"net/http"
	"strings"

	"mini-pos/internal/handler"
	"mini-pos/internal/middleware"
	"mini-pos/internal/model"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	orderHandler *handler.OrderHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	menuRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/menu" && r.URL.Path != "/api/menu/" {
			menuHandler.Items(w, r)
			return
		}
		menuHandler.List(w, r)
	}

	mux.HandleFunc("/api/menu", menuRouteHandler)
	mux.HandleFunc("/api/menu/", menuRouteHandler)

	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case path == "/api/order" && r.Method == http.MethodDelete:
			orderHandler.Clear(w, r)
		case path == "/api/order":
			orderHandler.View(w, r)
		case path == "/api/order/items":
			orderHandler.AddItem(w, r)
		case path == "/api/order/checkout":
			orderHandler.Checkout(w, r)
		case strings.HasPrefix(path, "/api/order/items/"):
			orderHandler.RemoveAt(w, r)
		default:
			notFound(w, r)
		}
	}

	mux.HandleFunc("/api/order", orderRouteHandler)
	mux.HandleFunc("/api/order/", orderRouteHandler)

	// Apply middleware in order: CorrelationID -> Recovery -> Logging -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.CorrelationID(handler)

	return handler
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error:         model.ErrCodeNotFound,
		Message:       "not found",
		CorrelationID: middleware.CorrelationIDFromContext(r.Context()),
	})
}
