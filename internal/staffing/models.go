package staffing

import "time"

// StaffMember is a directory row for a facility staff member, including the
// last floor their badge or device was seen on.
type StaffMember struct {
	StaffID     string     `gorm:"primaryKey" json:"staff_id"`
	Name        string     `gorm:"not null" json:"name"`
	Position    string     `json:"position"` // free-form role label, e.g. "Senior Caregiver"
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	OnDuty      bool       `gorm:"default:false" json:"on_duty"`
	Floor       *string    `json:"floor,omitempty"`
	FloorSeenAt *time.Time `json:"floor_seen_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (StaffMember) TableName() string { return "staffing.staff_members" }

// StaffCandidate is the read-only snapshot of a staff member evaluated by
// the responder ranking engine. Floor is empty when unknown.
type StaffCandidate struct {
	StaffID     string     `json:"staff_id"`
	Name        string     `json:"name"`
	Position    string     `json:"position"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Floor       string     `json:"floor,omitempty"`
	FloorSeenAt *time.Time `json:"floor_seen_at,omitempty"`
}
