package tracking

import "sync"

// subjectLocks serializes processing per subject. The transition procedure
// is a read-modify-write over the single-open-record invariant, so two pings
// for the same subject must never interleave; pings for different subjects
// run fully in parallel.
//
// The map grows to one mutex per subject ever seen, which is bounded by the
// resident population.
type subjectLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (sl *subjectLocks) lock(subjectID string) func() {
	sl.mu.Lock()
	if sl.locks == nil {
		sl.locks = make(map[string]*sync.Mutex)
	}
	m, ok := sl.locks[subjectID]
	if !ok {
		m = &sync.Mutex{}
		sl.locks[subjectID] = m
	}
	sl.mu.Unlock()

	m.Lock()
	return m.Unlock
}
