package handler

import (
	"errors"
	"net/http"

	"github.com/Abhinav-36/Convertcart/internal/model"
	"github.com/Abhinav-36/Convertcart/internal/service"

	"github.com/rs/zerolog"
)

// DishHandler handles dish search HTTP requests.
type DishHandler struct {
	service service.DishService
	logger  zerolog.Logger
}

// NewDishHandler creates a new dish handler.
func NewDishHandler(service service.DishService, logger zerolog.Logger) *DishHandler {
	return &DishHandler{
		service: service,
		logger:  logger.With().Str("handler", "dish").Logger(),
	}
}

// Health handles GET /health requests.
func (h *DishHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:  "ok",
		Message: "Server is running",
	})
}

// Search handles GET /search/dishes requests.
func (h *DishHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed,
			"Method not allowed", "only GET is supported", h.logger)
		return
	}

	query := r.URL.Query()

	// An absent parameter is a distinct failure from a present-but-bad
	// one, so check presence before handing the raw values to the service.
	if !query.Has("name") || !query.Has("minPrice") || !query.Has("maxPrice") {
		writeError(w, r, http.StatusBadRequest,
			model.ErrTitleMissingParameters, model.ErrMissingParameters.Message, h.logger)
		return
	}

	results, err := h.service.Search(r.Context(),
		query.Get("name"), query.Get("minPrice"), query.Get("maxPrice"))
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeError(w, r, http.StatusBadRequest, domainErr.Title, domainErr.Message, h.logger)
			return
		}

		h.logger.Error().Err(err).Msg("dish search failed")
		writeError(w, r, http.StatusInternalServerError,
			model.ErrTitleInternalError, "An error occurred while searching for dishes", h.logger)
		return
	}

	if results == nil {
		results = []model.DishResult{}
	}

	writeJSON(w, http.StatusOK, model.SearchResponse{Restaurants: results})
}
