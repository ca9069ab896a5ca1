package fences

import "time"

// Fence is a configured polygonal safety boundary. The boundary column keeps
// the raw operator-entered encoding (delimited or JSON); parsing happens at
// snapshot time so a bad edit never breaks reads of the row itself.
type Fence struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description,omitempty"`
	Boundary    string    `gorm:"type:text;not null" json:"boundary"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Fence) TableName() string { return "fencing.fences" }
