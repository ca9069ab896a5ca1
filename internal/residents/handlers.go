package residents

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

// ListResidents returns residents, optionally filtered by status.
func ListResidents(w http.ResponseWriter, r *http.Request) {
	query := db.DB.Order("name ASC")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var residents []Resident
	if err := query.Find(&residents).Error; err != nil {
		http.Error(w, "Failed to fetch residents: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(residents)
}

// GetResident returns a single resident.
func GetResident(w http.ResponseWriter, r *http.Request) {
	residentID := chi.URLParam(r, "resident_id")

	var resident Resident
	if err := db.DB.First(&resident, "resident_id = ?", residentID).Error; err != nil {
		http.Error(w, "Resident not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resident)
}

// CreateResident creates a resident (admin only).
func CreateResident(w http.ResponseWriter, r *http.Request) {
	var resident Resident
	if err := json.NewDecoder(r.Body).Decode(&resident); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if resident.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if resident.ResidentID == "" {
		resident.ResidentID = utils.GenerateUUID()
	}

	if err := db.DB.Create(&resident).Error; err != nil {
		http.Error(w, "Failed to create resident: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resident)
}

// UpdateResident updates directory fields (admin only).
func UpdateResident(w http.ResponseWriter, r *http.Request) {
	residentID := chi.URLParam(r, "resident_id")

	var resident Resident
	if err := db.DB.First(&resident, "resident_id = ?", residentID).Error; err != nil {
		http.Error(w, "Resident not found", http.StatusNotFound)
		return
	}

	var updates struct {
		Name    *string `json:"name,omitempty"`
		Room    *string `json:"room,omitempty"`
		Floor   *string `json:"floor,omitempty"`
		Status  *string `json:"status,omitempty"`
		Tracked *bool   `json:"tracked,omitempty"`
		Note    *string `json:"note,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Room != nil {
		updateMap["room"] = *updates.Room
	}
	if updates.Floor != nil {
		updateMap["floor"] = *updates.Floor
	}
	if updates.Status != nil {
		updateMap["status"] = *updates.Status
	}
	if updates.Tracked != nil {
		updateMap["tracked"] = *updates.Tracked
	}
	if updates.Note != nil {
		updateMap["note"] = *updates.Note
	}

	if err := db.DB.Model(&resident).Updates(updateMap).Error; err != nil {
		http.Error(w, "Failed to update resident: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Resident updated successfully")
}
