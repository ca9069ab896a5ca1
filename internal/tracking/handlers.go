package tracking

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/HavenWatch/HW-Backend/internal/fences"
	"github.com/HavenWatch/HW-Backend/internal/staffing"
	"github.com/go-chi/chi/v5"
)

type positionRequest struct {
	SubjectID string   `json:"subject_id"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Timestamp string   `json:"timestamp,omitempty"` // RFC3339; defaults to now
}

// ProcessPositionHandler ingests one position ping and returns the
// transition result.
func ProcessPositionHandler(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.SubjectID == "" || req.Lat == nil || req.Lng == nil {
		http.Error(w, "subject_id, lat and lng are required", http.StatusBadRequest)
		return
	}

	at := time.Now()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			http.Error(w, "Invalid timestamp, expected RFC3339", http.StatusBadRequest)
			return
		}
		at = parsed
	}

	result, err := ActiveDetector.ProcessPosition(r.Context(), req.SubjectID, *req.Lat, *req.Lng, at)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCoordinate):
			http.Error(w, "Invalid coordinates", http.StatusBadRequest)
		case errors.Is(err, fences.ErrSnapshotUnavailable):
			http.Error(w, "Fence configuration unavailable", http.StatusServiceUnavailable)
		case errors.Is(err, staffing.ErrRosterUnavailable):
			// The transition was applied and the alarm recorded; only
			// responder selection failed. Surface that distinctly.
			log.Printf("[tracking] %v", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(result)
		default:
			log.Printf("[tracking] %v", err)
			http.Error(w, "Failed to process position: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// SubjectStatusHandler returns the subject's open membership record and the
// cached last position, if any.
func SubjectStatusHandler(w http.ResponseWriter, r *http.Request) {
	subjectID := chi.URLParam(r, "subject_id")

	current, err := ActiveStore.CurrentFence(subjectID)
	if err != nil {
		http.Error(w, "Failed to fetch status: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var lastPos *LastPosition
	if ActiveCache != nil {
		lastPos, err = ActiveCache.Load(r.Context(), subjectID)
		if err != nil {
			// Cache trouble shouldn't hide the durable state.
			log.Printf("[tracking] position cache read failed for %s: %v", subjectID, err)
			lastPos = nil
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"subject_id":    subjectID,
		"current_fence": current,
		"last_position": lastPos,
	})
}

// SubjectHistoryHandler returns membership intervals overlapping a time
// window, defaulting to the last 24 hours.
func SubjectHistoryHandler(w http.ResponseWriter, r *http.Request) {
	subjectID := chi.URLParam(r, "subject_id")

	to := time.Now()
	from := to.Add(-24 * time.Hour)

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "Invalid 'from', expected RFC3339", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "Invalid 'to', expected RFC3339", http.StatusBadRequest)
			return
		}
		to = parsed
	}
	if to.Before(from) {
		http.Error(w, "'to' must not precede 'from'", http.StatusBadRequest)
		return
	}

	history, err := ActiveStore.History(subjectID, from, to)
	if err != nil {
		http.Error(w, "Failed to fetch history: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"subject_id": subjectID,
		"from":       from,
		"to":         to,
		"intervals":  history,
	})
}
