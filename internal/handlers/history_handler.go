package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/services"
	"github.com/zenithapp/zenith-server/pkg/middleware"
)

// HistoryHandler handles HTTP requests for the history screen.
type HistoryHandler struct {
	Service     *services.HistoryService
	UserService *services.UserService
}

// NewHistoryHandler creates a new instance of HistoryHandler.
func NewHistoryHandler(service *services.HistoryService, userService *services.UserService) *HistoryHandler {
	return &HistoryHandler{
		Service:     service,
		UserService: userService,
	}
}

// GetHistoryHandler returns the heatmap, streaks, trend analysis and
// insight card for one year and scope. Both query parameters are
// optional: year defaults to the current year, scope to global.
func (h *HistoryHandler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch user for history")
		http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
		return
	}

	year := 0
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			http.Error(w, "Invalid year parameter", http.StatusBadRequest)
			return
		}
	}

	view, err := h.Service.GetHistory(r.Context(), user, year, r.URL.Query().Get("scope"))
	if err != nil {
		log.WithError(err).Warn("Failed to build history view")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}
