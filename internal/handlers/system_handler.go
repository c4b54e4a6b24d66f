package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/services"
)

// SystemHandler handles admin endpoints for global settings.
type SystemHandler struct {
	Service *services.SystemService
}

// NewSystemHandler creates a new instance of SystemHandler.
func NewSystemHandler(service *services.SystemService) *SystemHandler {
	return &SystemHandler{Service: service}
}

// GetHijriOffsetHandler returns the current global Hijri offset.
func (h *SystemHandler) GetHijriOffsetHandler(w http.ResponseWriter, r *http.Request) {
	offset, err := h.Service.GetHijriOffset(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to read hijri offset")
		http.Error(w, "Failed to read hijri offset", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"hijriOffset": offset})
}

// UpdateHijriOffsetHandler stores a new global Hijri offset (admin only).
func (h *SystemHandler) UpdateHijriOffsetHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		HijriOffset int `json:"hijriOffset"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateHijriOffset(r.Context(), payload.HijriOffset); err != nil {
		log.WithError(err).Warn("Rejected hijri offset update")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"hijriOffset": payload.HijriOffset})
}
