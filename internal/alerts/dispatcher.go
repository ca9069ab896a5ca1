package alerts

import (
	"context"
	"log"
	"time"

	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/staffing"
	"github.com/HavenWatch/HW-Backend/internal/utils"
)

// Alarm is the in-memory payload handed to a dispatcher. Notified carries
// the ranked responder list in notification order; it may be empty, which
// is a valid "no one was notified" outcome rather than an error.
type Alarm struct {
	SubjectID string
	Kind      string
	Lat       float64
	Lng       float64
	At        time.Time
	Notified  []staffing.RankedCandidate
}

// Dispatcher delivers an alarm to the selected staff. Implementations own
// the transport; the ranking decision is already made by the time an Alarm
// reaches them.
type Dispatcher interface {
	Dispatch(ctx context.Context, alarm Alarm) error
}

// LogDispatcher writes alarms to the process log. It is the fallback when
// no delivery transport is configured, and keeps alarm handling observable
// in development.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(ctx context.Context, alarm Alarm) error {
	if len(alarm.Notified) == 0 {
		log.Printf("[alerts] %s subject=%s at (%f,%f): no eligible responders",
			alarm.Kind, alarm.SubjectID, alarm.Lat, alarm.Lng)
		return nil
	}
	for i, rc := range alarm.Notified {
		log.Printf("[alerts] %s subject=%s -> notify #%d %s (%s) score=%d",
			alarm.Kind, alarm.SubjectID, i+1, rc.Name, rc.Position, rc.Score.Total)
	}
	return nil
}

// Pipeline is the standard alarm sink: persist the audit row, then hand the
// alarm to the configured dispatcher. A failed audit write is logged but
// does not block delivery; a failed delivery is logged but does not fail
// the ping that raised the alarm.
type Pipeline struct {
	Dispatcher Dispatcher
}

func (p Pipeline) Raise(ctx context.Context, alarm Alarm) error {
	if _, err := RecordAlarm(alarm); err != nil {
		log.Printf("[alerts] failed to record alarm audit row for subject %s: %v", alarm.SubjectID, err)
	}
	if err := p.Dispatcher.Dispatch(ctx, alarm); err != nil {
		log.Printf("[alerts] dispatch failed for subject %s: %v", alarm.SubjectID, err)
		return err
	}
	return nil
}

// RecordAlarm persists the audit row for a raised alarm. Failures here are
// reported to the caller but must not block delivery.
func RecordAlarm(alarm Alarm) (*AlarmEvent, error) {
	notified := make([]string, 0, len(alarm.Notified))
	for _, rc := range alarm.Notified {
		notified = append(notified, rc.StaffID)
	}

	event := AlarmEvent{
		EventID:       utils.GenerateUUID(),
		SubjectID:     alarm.SubjectID,
		Kind:          alarm.Kind,
		Lat:           alarm.Lat,
		Lng:           alarm.Lng,
		TriggeredAt:   alarm.At,
		Status:        "active",
		NotifiedStaff: notified,
	}
	if err := db.DB.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}
