package residents

import "time"

// Resident is the directory row for a tracked resident. Tracking refers to
// residents by ResidentID; the wearable tag is bound to that id by the
// device gateway, so this table carries no device details.
type Resident struct {
	ResidentID    string     `gorm:"primaryKey" json:"resident_id"`
	Name          string     `gorm:"not null" json:"name"`
	Room          string     `json:"room,omitempty"`
	Floor         string     `json:"floor,omitempty"`
	AdmissionDate *time.Time `json:"admission_date,omitempty"`
	Status        string     `gorm:"default:'active'" json:"status"` // active, discharged
	Tracked       bool       `gorm:"default:true" json:"tracked"`
	Note          string     `json:"note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Resident) TableName() string { return "care.residents" }
