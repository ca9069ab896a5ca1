package tracking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/HavenWatch/HW-Backend/internal/alerts"
	"github.com/HavenWatch/HW-Backend/internal/fences"
	"github.com/HavenWatch/HW-Backend/internal/geo"
	"github.com/HavenWatch/HW-Backend/internal/staffing"
)

// ErrInvalidCoordinate marks a ping whose coordinates cannot be a real
// position. The ping is discarded; other subjects are unaffected.
var ErrInvalidCoordinate = errors.New("invalid ping coordinate")

// collaboratorTimeout bounds the lazy fence and roster fetches. A hung
// store must fail the single ping, not stall the whole ping pipeline.
const collaboratorTimeout = 5 * time.Second

// FenceSource supplies the parsed fence snapshot for one evaluation.
type FenceSource interface {
	Snapshot(ctx context.Context) ([]fences.ParsedFence, error)
}

// RosterSource supplies the on-duty staff snapshot for responder ranking.
type RosterSource interface {
	ListOnDutyStaff(ctx context.Context) ([]staffing.StaffCandidate, error)
}

// AlarmSink receives raised alarms for persistence and delivery.
type AlarmSink interface {
	Raise(ctx context.Context, alarm alerts.Alarm) error
}

// PositionStore caches the last evaluated position per subject for the
// status dashboard. Implementations are best-effort.
type PositionStore interface {
	Store(ctx context.Context, pos LastPosition) error
	Load(ctx context.Context, subjectID string) (*LastPosition, error)
}

// Detector classifies each incoming position ping against the configured
// fences and the subject's current membership state, mutates the membership
// log accordingly, and raises an alarm when a subject is outside every
// fence.
type Detector struct {
	store  MembershipStore
	fences FenceSource
	roster RosterSource
	ranker *staffing.Ranker
	sink   AlarmSink
	cache  PositionStore // optional
	locks  subjectLocks
}

func NewDetector(store MembershipStore, fenceSource FenceSource, roster RosterSource, ranker *staffing.Ranker, sink AlarmSink) *Detector {
	return &Detector{
		store:  store,
		fences: fenceSource,
		roster: roster,
		ranker: ranker,
		sink:   sink,
	}
}

// SetPositionCache attaches an optional last-position cache.
func (d *Detector) SetPositionCache(cache PositionStore) {
	d.cache = cache
}

// ProcessPosition runs the transition procedure for one ping.
//
// The fence snapshot is fetched before taking the subject lock; a fetch
// failure returns an error wrapping fences.ErrSnapshotUnavailable and leaves
// the membership log untouched — "fences unavailable" is never treated as
// "no fences".
//
// When an alarm fires but the staff roster cannot be read, the alarm is
// still raised (with an empty responder list, so the audit row exists) and
// the returned error wraps staffing.ErrRosterUnavailable alongside the
// non-nil result.
func (d *Detector) ProcessPosition(ctx context.Context, subjectID string, lat, lng float64, at time.Time) (*TransitionResult, error) {
	if subjectID == "" {
		return nil, fmt.Errorf("%w: empty subject id", ErrInvalidCoordinate)
	}
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: (%f, %f)", ErrInvalidCoordinate, lat, lng)
	}
	if at.IsZero() {
		at = time.Now()
	}

	snapCtx, cancel := context.WithTimeout(ctx, collaboratorTimeout)
	snapshot, err := d.fences.Snapshot(snapCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("process position for %s: %w", subjectID, err)
	}

	unlock := d.locks.lock(subjectID)
	defer unlock()

	pt := geo.Point{Lat: lat, Lng: lng}

	// Candidates keep fence configuration order; overlapping fences
	// resolve to the first one deterministically.
	var candidates []fences.ParsedFence
	for _, f := range snapshot {
		if f.Polygon.Contains(pt) {
			candidates = append(candidates, f)
		}
	}

	prev, err := d.store.CurrentFence(subjectID)
	if err != nil {
		return nil, fmt.Errorf("process position for %s: %w", subjectID, err)
	}

	result := &TransitionResult{SubjectID: subjectID}
	var alarmErr error

	switch {
	case prev != nil && containsFenceID(candidates, prev.FenceID):
		result.Kind = TransitionStay
		result.FenceID = &prev.FenceID

	case prev != nil && len(candidates) > 0:
		if err := d.store.Close(prev.ID, at); err != nil {
			return nil, fmt.Errorf("process position for %s: %w", subjectID, err)
		}
		rec, err := d.store.Open(subjectID, candidates[0].ID, at)
		if err != nil {
			return nil, fmt.Errorf("process position for %s: %w", subjectID, err)
		}
		result.Kind = TransitionMove
		result.FenceID = &rec.FenceID

	case prev != nil:
		if err := d.store.Close(prev.ID, at); err != nil {
			return nil, fmt.Errorf("process position for %s: %w", subjectID, err)
		}
		result.Kind = TransitionEscape
		result.AlarmKind = alerts.KindBoundaryExit
		result.Notified, alarmErr = d.raiseAlarm(ctx, subjectID, alerts.KindBoundaryExit, lat, lng, at)

	case len(candidates) > 0:
		rec, err := d.store.Open(subjectID, candidates[0].ID, at)
		if err != nil {
			return nil, fmt.Errorf("process position for %s: %w", subjectID, err)
		}
		result.Kind = TransitionEnter
		result.FenceID = &rec.FenceID

	default:
		// Still missing: no membership record to touch, but keep
		// escalating until the subject is found.
		result.Kind = TransitionPersistentEscape
		result.AlarmKind = alerts.KindContinuedBoundaryExit
		result.Notified, alarmErr = d.raiseAlarm(ctx, subjectID, alerts.KindContinuedBoundaryExit, lat, lng, at)
	}

	log.Printf("[tracking] subject=%s transition=%s at (%.6f,%.6f)", subjectID, result.Kind, lat, lng)

	if d.cache != nil {
		pos := LastPosition{
			SubjectID: subjectID,
			Lat:       lat,
			Lng:       lng,
			At:        at,
			Kind:      result.Kind,
			FenceID:   result.FenceID,
		}
		if err := d.cache.Store(ctx, pos); err != nil {
			log.Printf("[tracking] position cache write failed for %s: %v", subjectID, err)
		}
	}

	if alarmErr != nil {
		return result, fmt.Errorf("process position for %s: %w", subjectID, alarmErr)
	}
	return result, nil
}

// raiseAlarm ranks the on-duty staff and hands the alarm to the sink. A
// roster failure still raises the alarm — the audit trail must show the
// escape even when nobody could be selected — and is returned to the
// caller as a typed error.
func (d *Detector) raiseAlarm(ctx context.Context, subjectID, kind string, lat, lng float64, at time.Time) ([]staffing.RankedCandidate, error) {
	var ranked []staffing.RankedCandidate

	rosterCtx, cancel := context.WithTimeout(ctx, collaboratorTimeout)
	candidates, rosterErr := d.roster.ListOnDutyStaff(rosterCtx)
	cancel()
	if rosterErr == nil {
		ranked = d.ranker.Rank(candidates, at)
		if len(ranked) == 0 {
			log.Printf("[tracking] %s for subject=%s: no eligible responders", kind, subjectID)
		}
	} else {
		log.Printf("[tracking] %s for subject=%s: roster unavailable: %v", kind, subjectID, rosterErr)
	}

	alarm := alerts.Alarm{
		SubjectID: subjectID,
		Kind:      kind,
		Lat:       lat,
		Lng:       lng,
		At:        at,
		Notified:  ranked,
	}
	if err := d.sink.Raise(ctx, alarm); err != nil {
		log.Printf("[tracking] alarm sink failed for subject=%s: %v", subjectID, err)
	}

	return ranked, rosterErr
}

func containsFenceID(candidates []fences.ParsedFence, id uint) bool {
	for _, f := range candidates {
		if f.ID == id {
			return true
		}
	}
	return false
}
