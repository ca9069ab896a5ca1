package alerts

import (
	"time"

	"github.com/lib/pq"
)

// Alarm kinds raised by the transition detector.
const (
	KindBoundaryExit          = "boundary-exit"
	KindContinuedBoundaryExit = "continued-boundary-exit"
)

// AlarmEvent is the persisted audit record for a raised alarm, including
// which staff were picked for notification. Rows are never deleted.
type AlarmEvent struct {
	EventID       string         `gorm:"primaryKey" json:"event_id"`
	SubjectID     string         `gorm:"not null;index" json:"subject_id"`
	Kind          string         `gorm:"not null" json:"kind"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	TriggeredAt   time.Time      `gorm:"not null;index" json:"triggered_at"`
	Status        string         `gorm:"default:'active'" json:"status"` // active, acknowledged
	AckedBy       *string        `json:"acked_by,omitempty"`
	AckedAt       *time.Time     `json:"acked_at,omitempty"`
	NotifiedStaff pq.StringArray `gorm:"type:text[]" json:"notified_staff"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (AlarmEvent) TableName() string { return "alerts.alarm_events" }
