package router

import (
	"net/http"

	"github.com/Abhinav-36/Convertcart/internal/handler"
	"github.com/Abhinav-36/Convertcart/internal/middleware"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(dishHandler *handler.DishHandler, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", dishHandler.Health)
	mux.HandleFunc("/search/dishes", dishHandler.Search)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
	})

	// Middleware order: Recovery -> RequestID -> Logging -> CORS.
	// RequestID must run before Logging so the log line carries the ID.
	var h http.Handler = mux
	h = c.Handler(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
