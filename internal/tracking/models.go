package tracking

import (
	"time"

	"github.com/HavenWatch/HW-Backend/internal/staffing"
)

// FenceLog is one membership interval: "subject was inside fence F from
// EnteredAt [until ExitedAt]". A null ExitedAt marks the subject's current
// fence; at most one such row may exist per subject. Rows are never deleted
// (audit trail).
type FenceLog struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	SubjectID string     `gorm:"not null;index" json:"subject_id"`
	FenceID   uint       `gorm:"not null" json:"fence_id"`
	EnteredAt time.Time  `gorm:"not null" json:"entered_at"`
	ExitedAt  *time.Time `json:"exited_at,omitempty"`
}

func (FenceLog) TableName() string { return "tracking.fence_logs" }

// Transition is the classified change in a subject's fence membership
// between two consecutive position pings.
type Transition string

const (
	TransitionStay             Transition = "stay"
	TransitionMove             Transition = "move"
	TransitionEnter            Transition = "enter"
	TransitionEscape           Transition = "escape"
	TransitionPersistentEscape Transition = "persistent-escape"
)

// TransitionResult is returned to the caller of ProcessPosition. FenceID is
// the fence entered, moved into, or stayed in; nil when the subject is
// outside all fences. Notified is populated only when an alarm fired.
type TransitionResult struct {
	SubjectID string                     `json:"subject_id"`
	Kind      Transition                 `json:"kind"`
	FenceID   *uint                      `json:"fence_id,omitempty"`
	AlarmKind string                     `json:"alarm_kind,omitempty"`
	Notified  []staffing.RankedCandidate `json:"notified,omitempty"`
}
