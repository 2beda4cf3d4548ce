package controllers

import (
	"errors"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"drd/internal/providers"
	"drd/internal/services"
)

type ApiController struct {
	logger  providers.Logger
	service services.CardServiceInterface
}

func NewApiController(logger providers.Logger, service services.CardServiceInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
	}
}

// getLimit reads the optional limit parameter. Absent or unparsable
// values resolve to 0 so the service applies its configured default;
// out-of-range values are clamped downstream, never rejected.
func getLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}

func writeJSON(w http.ResponseWriter, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	resp, err := ac.service.GetUpcomingCards(r.Context(), getLimit(r))
	if err != nil {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, resp)
}

func (ac *ApiController) GetLatestResult(w http.ResponseWriter, r *http.Request) {
	game := r.URL.Query().Get("game")
	if game == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	resp, err := ac.service.GetLatestResult(r.Context(), game)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			http.Error(w, "Game not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, resp)
}
