package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/models"
	"github.com/zenithapp/zenith-server/internal/services"
	"github.com/zenithapp/zenith-server/pkg/middleware"
)

// FeedbackHandler handles HTTP requests for user feedback.
type FeedbackHandler struct {
	Service *services.FeedbackService
}

// NewFeedbackHandler creates a new instance of FeedbackHandler.
func NewFeedbackHandler(service *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: service}
}

// SubmitFeedbackHandler stores a feedback entry from the authenticated
// user.
func (h *FeedbackHandler) SubmitFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Category string `json:"category"`
		Rating   int    `json:"rating"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	fb := &models.Feedback{
		UserID:    claims.UserID,
		UserEmail: claims.Email,
		Category:  payload.Category,
		Rating:    payload.Rating,
		Message:   payload.Message,
	}

	created, err := h.Service.SubmitFeedback(r.Context(), fb)
	if err != nil {
		log.WithError(err).Warn("Failed to submit feedback")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetAllFeedbackHandler lists all feedback entries (admin only).
func (h *FeedbackHandler) GetAllFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetAllFeedback(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch feedback")
		http.Error(w, "Failed to fetch feedback", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// MarkFeedbackReadHandler flags a feedback entry as handled (admin only).
func (h *FeedbackHandler) MarkFeedbackReadHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.MarkRead(r.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to mark feedback read")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Feedback marked as read"})
}
