package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/services"
	"github.com/zenithapp/zenith-server/pkg/middleware"
)

// TrackerHandler handles HTTP requests for the daily tracker screen and
// its log mutations.
type TrackerHandler struct {
	Service     *services.TrackerService
	UserService *services.UserService
}

// NewTrackerHandler creates a new instance of TrackerHandler.
func NewTrackerHandler(service *services.TrackerService, userService *services.UserService) *TrackerHandler {
	return &TrackerHandler{
		Service:     service,
		UserService: userService,
	}
}

// GetTrackerHandler returns the tracker view for the authenticated user.
// The date query parameter defaults to today.
func (h *TrackerHandler) GetTrackerHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch user for tracker")
		http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
		return
	}

	view, err := h.Service.GetTracker(r.Context(), user, r.URL.Query().Get("date"))
	if err != nil {
		log.WithError(err).Warn("Failed to build tracker view")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// ToggleHabitHandler flips a habit's completion for a date.
func (h *TrackerHandler) ToggleHabitHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	habitID := mux.Vars(r)["habitId"]

	var payload struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	checked, err := h.Service.ToggleHabit(r.Context(), claims.UserID, payload.Date, habitID)
	if err != nil {
		log.WithError(err).WithField("habitID", habitID).Warn("Failed to toggle habit")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"habitId":   habitID,
		"completed": checked,
	})
}

// SetCounterHandler records a counter habit's value for a date.
func (h *TrackerHandler) SetCounterHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	habitID := mux.Vars(r)["habitId"]

	var payload struct {
		Date  string `json:"date"`
		Value int    `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.Service.SetCounter(r.Context(), claims.UserID, payload.Date, habitID, payload.Value); err != nil {
		log.WithError(err).WithField("habitID", habitID).Warn("Failed to set counter")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"habitId": habitID,
		"value":   payload.Value,
	})
}

// SetNoteHandler stores the free-text reflection for a date.
func (h *TrackerHandler) SetNoteHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Date string `json:"date"`
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.Service.SetNote(r.Context(), claims.UserID, payload.Date, payload.Note); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Note saved"})
}

// SetMenstruatingHandler flags a date as exempt from physical acts.
func (h *TrackerHandler) SetMenstruatingHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Date  string `json:"date"`
		Value bool   `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.Service.SetMenstruating(r.Context(), claims.UserID, payload.Date, payload.Value); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Day updated"})
}
