package alerts

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

// ListAlarms returns recent alarm events, newest first.
func ListAlarms(w http.ResponseWriter, r *http.Request) {
	query := db.DB.Order("triggered_at DESC")

	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if subjectID := r.URL.Query().Get("subject_id"); subjectID != "" {
		query = query.Where("subject_id = ?", subjectID)
	}

	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	query = query.Limit(limit)

	var events []AlarmEvent
	if err := query.Find(&events).Error; err != nil {
		http.Error(w, "Failed to fetch alarms: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}

// AckAlarm marks an active alarm as acknowledged by the signed-in user.
// Acknowledging an already-acknowledged alarm is a no-op.
func AckAlarm(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing user ID in context", http.StatusUnauthorized)
		return
	}

	var event AlarmEvent
	if err := db.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		http.Error(w, "Alarm not found", http.StatusNotFound)
		return
	}

	if event.Status != "acknowledged" {
		now := time.Now()
		if err := db.DB.Model(&event).Updates(map[string]interface{}{
			"status":   "acknowledged",
			"acked_by": userID,
			"acked_at": now,
		}).Error; err != nil {
			http.Error(w, "Failed to acknowledge alarm: "+err.Error(), http.StatusInternalServerError)
			return
		}
		event.Status = "acknowledged"
		event.AckedBy = &userID
		event.AckedAt = &now
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(event)
}
