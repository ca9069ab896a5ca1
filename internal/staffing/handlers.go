package staffing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

// ListStaff returns the staff directory, optionally filtered to on-duty.
func ListStaff(w http.ResponseWriter, r *http.Request) {
	query := db.DB.Order("staff_id ASC")
	if r.URL.Query().Get("on_duty") == "true" {
		query = query.Where("on_duty = ?", true)
	}

	var staff []StaffMember
	if err := query.Find(&staff).Error; err != nil {
		http.Error(w, "Failed to fetch staff: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(staff)
}

// GetStaff returns one staff member.
func GetStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staff_id")

	var staff StaffMember
	if err := db.DB.First(&staff, "staff_id = ?", staffID).Error; err != nil {
		http.Error(w, "Staff member not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(staff)
}

// CreateStaff creates a staff member (admin only).
func CreateStaff(w http.ResponseWriter, r *http.Request) {
	var staff StaffMember
	if err := json.NewDecoder(r.Body).Decode(&staff); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if staff.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if staff.StaffID == "" {
		staff.StaffID = utils.GenerateUUID()
	}

	if err := db.DB.Create(&staff).Error; err != nil {
		http.Error(w, "Failed to create staff member: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(staff)
}

// UpdateStaff updates directory fields and duty status (admin only).
func UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staff_id")

	var staff StaffMember
	if err := db.DB.First(&staff, "staff_id = ?", staffID).Error; err != nil {
		http.Error(w, "Staff member not found", http.StatusNotFound)
		return
	}

	var updates struct {
		Name     *string `json:"name,omitempty"`
		Position *string `json:"position,omitempty"`
		Phone    *string `json:"phone,omitempty"`
		Email    *string `json:"email,omitempty"`
		OnDuty   *bool   `json:"on_duty,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Position != nil {
		updateMap["position"] = *updates.Position
	}
	if updates.Phone != nil {
		updateMap["phone"] = *updates.Phone
	}
	if updates.Email != nil {
		updateMap["email"] = *updates.Email
	}
	if updates.OnDuty != nil {
		updateMap["on_duty"] = *updates.OnDuty
	}

	if err := db.DB.Model(&staff).Updates(updateMap).Error; err != nil {
		http.Error(w, "Failed to update staff member: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Staff member updated successfully")
}

// ReportLocation records the floor a staff member was last seen on. Badge
// readers and the staff app both post here.
func ReportLocation(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staff_id")

	var staff StaffMember
	if err := db.DB.First(&staff, "staff_id = ?", staffID).Error; err != nil {
		http.Error(w, "Staff member not found", http.StatusNotFound)
		return
	}

	var report struct {
		Floor string `json:"floor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil || report.Floor == "" {
		http.Error(w, "Floor is required", http.StatusBadRequest)
		return
	}

	now := time.Now()
	if err := db.DB.Model(&staff).Updates(map[string]interface{}{
		"floor":         report.Floor,
		"floor_seen_at": now,
	}).Error; err != nil {
		http.Error(w, "Failed to record location: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Location recorded")
}
