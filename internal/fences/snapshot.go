package fences

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/geo"
)

// ErrSnapshotUnavailable wraps fence-store failures so callers can tell
// "no fences configured" apart from "could not read the fence list". The
// transition detector must never treat the latter as an empty fence set.
var ErrSnapshotUnavailable = errors.New("fence snapshot unavailable")

// ParsedFence is a fence with its boundary parsed into a polygon. A fence
// whose boundary yielded fewer than 3 vertices stays in the snapshot but
// contains nothing, so one mangled configuration can't blind evaluation of
// the others.
type ParsedFence struct {
	ID      uint
	Name    string
	Polygon geo.Polygon
}

// SnapshotSource loads the active fences in configuration order (primary key
// order). Containment ties between overlapping fences resolve to the first
// fence in this order.
type SnapshotSource struct{}

func (SnapshotSource) Snapshot(ctx context.Context) ([]ParsedFence, error) {
	var rows []Fence
	if err := db.DB.WithContext(ctx).Where("active = ?", true).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotUnavailable, err)
	}

	parsed := make([]ParsedFence, 0, len(rows))
	for _, f := range rows {
		poly := geo.ParseBoundary(f.Boundary)
		if len(poly) < 3 {
			log.Printf("[fences] fence %d (%s) has %d usable vertices; it will match nothing", f.ID, f.Name, len(poly))
		}
		parsed = append(parsed, ParsedFence{ID: f.ID, Name: f.Name, Polygon: poly})
	}
	return parsed, nil
}
