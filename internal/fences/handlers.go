package fences

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/geo"
	"github.com/go-chi/chi/v5"
)

// ListFences returns all fences, including inactive ones.
func ListFences(w http.ResponseWriter, r *http.Request) {
	var fences []Fence

	query := db.DB.Order("id ASC")
	if r.URL.Query().Get("active") == "true" {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&fences).Error; err != nil {
		http.Error(w, "Failed to fetch fences: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fences)
}

// GetFence returns a single fence with its parsed vertex list, so the
// dashboard can render what the tracker will actually evaluate.
func GetFence(w http.ResponseWriter, r *http.Request) {
	fenceID := chi.URLParam(r, "fence_id")

	var fence Fence
	if err := db.DB.First(&fence, "id = ?", fenceID).Error; err != nil {
		http.Error(w, "Fence not found", http.StatusNotFound)
		return
	}

	poly := geo.ParseBoundary(fence.Boundary)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"fence":    fence,
		"vertices": poly,
		"usable":   len(poly) >= 3,
	})
}

// CreateFence creates a new fence (admin only). The boundary is parsed once
// up front purely to warn about configurations that will never match.
func CreateFence(w http.ResponseWriter, r *http.Request) {
	var fence Fence
	if err := json.NewDecoder(r.Body).Decode(&fence); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if fence.Name == "" || fence.Boundary == "" {
		http.Error(w, "Name and boundary are required", http.StatusBadRequest)
		return
	}

	if err := db.DB.Create(&fence).Error; err != nil {
		http.Error(w, "Failed to create fence: "+err.Error(), http.StatusInternalServerError)
		return
	}

	poly := geo.ParseBoundary(fence.Boundary)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"fence":  fence,
		"usable": len(poly) >= 3,
	})
}

// UpdateFence updates an existing fence (admin only).
func UpdateFence(w http.ResponseWriter, r *http.Request) {
	fenceID := chi.URLParam(r, "fence_id")

	var fence Fence
	if err := db.DB.First(&fence, "id = ?", fenceID).Error; err != nil {
		http.Error(w, "Fence not found", http.StatusNotFound)
		return
	}

	var updates struct {
		Name        *string `json:"name,omitempty"`
		Description *string `json:"description,omitempty"`
		Boundary    *string `json:"boundary,omitempty"`
		Active      *bool   `json:"active,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Description != nil {
		updateMap["description"] = *updates.Description
	}
	if updates.Boundary != nil {
		updateMap["boundary"] = *updates.Boundary
	}
	if updates.Active != nil {
		updateMap["active"] = *updates.Active
	}

	if err := db.DB.Model(&fence).Updates(updateMap).Error; err != nil {
		http.Error(w, "Failed to update fence: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Fence updated successfully")
}

// DeleteFence deletes a fence (admin only). Membership history rows keep
// their fence_id for the audit trail; they are never cascaded.
func DeleteFence(w http.ResponseWriter, r *http.Request) {
	fenceID := chi.URLParam(r, "fence_id")

	if err := db.DB.Delete(&Fence{}, "id = ?", fenceID).Error; err != nil {
		http.Error(w, "Failed to delete fence: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
