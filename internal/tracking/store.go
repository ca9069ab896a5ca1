package tracking

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/HavenWatch/HW-Backend/internal/db"
	"gorm.io/gorm"
)

// ErrOpenMembershipExists is returned when Open is called for a subject that
// already has an open membership record. This is a programming invariant
// (callers close the previous record first), not a user-facing error.
var ErrOpenMembershipExists = errors.New("subject already has an open membership record")

// MembershipStore is the durable append/close log of fence membership
// intervals.
type MembershipStore interface {
	// CurrentFence returns the subject's open membership record, or nil
	// when the subject is outside all fences.
	CurrentFence(subjectID string) (*FenceLog, error)
	// Open appends a new open record. It fails with ErrOpenMembershipExists
	// if the subject already has one; the existing record is untouched.
	Open(subjectID string, fenceID uint, at time.Time) (*FenceLog, error)
	// Close sets the exit timestamp on an open record. Closing an
	// already-closed record is a no-op; the original timestamp stands.
	Close(recordID uint, at time.Time) error
	// History returns the membership intervals overlapping [from, to],
	// oldest first. Open records overlap any window that reaches past
	// their entry time.
	History(subjectID string, from, to time.Time) ([]FenceLog, error)
}

// GormStore is the postgres-backed MembershipStore. The at-most-one-open
// invariant is enforced twice: the pre-check here, and a partial unique
// index on (subject_id) WHERE exited_at IS NULL created in Init().
type GormStore struct{}

func (GormStore) CurrentFence(subjectID string) (*FenceLog, error) {
	var rec FenceLog
	err := db.DB.Where("subject_id = ? AND exited_at IS NULL", subjectID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("current fence: %w", err)
	}
	return &rec, nil
}

func (GormStore) Open(subjectID string, fenceID uint, at time.Time) (*FenceLog, error) {
	var count int64
	if err := db.DB.Model(&FenceLog{}).
		Where("subject_id = ? AND exited_at IS NULL", subjectID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("open membership: %w", err)
	}
	if count > 0 {
		log.Printf("[tracking] ERROR: rejected second open membership record for subject %s (fence %d)", subjectID, fenceID)
		return nil, ErrOpenMembershipExists
	}

	rec := FenceLog{
		SubjectID: subjectID,
		FenceID:   fenceID,
		EnteredAt: at,
	}
	if err := db.DB.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("open membership: %w", err)
	}
	return &rec, nil
}

func (GormStore) Close(recordID uint, at time.Time) error {
	// The WHERE clause makes this idempotent: only an open record takes
	// the exit timestamp.
	err := db.DB.Model(&FenceLog{}).
		Where("id = ? AND exited_at IS NULL", recordID).
		Update("exited_at", at).Error
	if err != nil {
		return fmt.Errorf("close membership: %w", err)
	}
	return nil
}

func (GormStore) History(subjectID string, from, to time.Time) ([]FenceLog, error) {
	var recs []FenceLog
	err := db.DB.
		Where("subject_id = ? AND entered_at <= ? AND (exited_at IS NULL OR exited_at >= ?)", subjectID, to, from).
		Order("entered_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("membership history: %w", err)
	}
	return recs, nil
}
