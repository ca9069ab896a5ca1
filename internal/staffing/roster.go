package staffing

import (
	"context"
	"errors"
	"fmt"

	"github.com/HavenWatch/HW-Backend/internal/db"
)

// ErrRosterUnavailable wraps directory failures so callers can tell "nobody
// is on duty" apart from "could not read the roster".
var ErrRosterUnavailable = errors.New("staff roster unavailable")

// RosterSource loads the current on-duty staff as ranking candidates.
type RosterSource struct{}

func (RosterSource) ListOnDutyStaff(ctx context.Context) ([]StaffCandidate, error) {
	var rows []StaffMember
	if err := db.DB.WithContext(ctx).Where("on_duty = ?", true).Order("staff_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRosterUnavailable, err)
	}

	candidates := make([]StaffCandidate, 0, len(rows))
	for _, s := range rows {
		c := StaffCandidate{
			StaffID:     s.StaffID,
			Name:        s.Name,
			Position:    s.Position,
			Phone:       s.Phone,
			Email:       s.Email,
			FloorSeenAt: s.FloorSeenAt,
		}
		if s.Floor != nil {
			c.Floor = *s.Floor
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
