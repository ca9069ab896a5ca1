package staffing_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/HavenWatch/HW-Backend/internal/staffing"
)

func defaultRanker() *staffing.Ranker {
	return staffing.NewRanker(staffing.DefaultRoleKeywords())
}

func candidate(id, position string, floorAge time.Duration, floor, phone, email string, now time.Time) staffing.StaffCandidate {
	c := staffing.StaffCandidate{
		StaffID:  id,
		Name:     id,
		Position: position,
		Phone:    phone,
		Email:    email,
		Floor:    floor,
	}
	if floor != "" {
		seen := now.Add(-floorAge)
		c.FloorSeenAt = &seen
	}
	return c
}

func TestRank_SupervisorFirstNurseSecondUnrecognizedExcluded(t *testing.T) {
	now := time.Now()
	r := defaultRanker()

	supervisor := candidate("s1", "Shift Supervisor", 30*time.Minute, "2F", "555-0101", "sup@example.com", now)
	nurse := candidate("n1", "Registered Nurse", 6*time.Hour, "1F", "555-0102", "", now)
	janitor := candidate("j1", "Janitor", 30*time.Minute, "3F", "555-0103", "jan@example.com", now)

	ranked := r.Rank([]staffing.StaffCandidate{janitor, nurse, supervisor}, now)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 eligible responders, got %d", len(ranked))
	}
	if ranked[0].StaffID != "s1" {
		t.Errorf("expected supervisor first, got %s", ranked[0].StaffID)
	}
	if ranked[1].StaffID != "n1" {
		t.Errorf("expected nurse second, got %s", ranked[1].StaffID)
	}

	// Supervisor: full marks on every factor.
	wantSup := staffing.RoleScoreSupervisor + staffing.RecencyScoreFresh + staffing.FloorScore + staffing.PhoneScore + staffing.EmailScore
	if got := ranked[0].Score.Total; got != wantSup {
		t.Errorf("supervisor total = %d, want %d", got, wantSup)
	}

	// Nurse: 6h-old floor fix lands in the <=8h bucket, phone only.
	wantNurse := staffing.RoleScoreNurse + staffing.RecencyScoreStale + staffing.FloorScore + staffing.PhoneScore
	if got := ranked[1].Score.Total; got != wantNurse {
		t.Errorf("nurse total = %d, want %d", got, wantNurse)
	}

	// The janitor's role contributes nothing; the rest of the breakdown
	// still reflects recency, floor and contact.
	js := r.ScoreCandidate(janitor, now)
	if js.Role != 0 {
		t.Errorf("janitor role score = %d, want 0", js.Role)
	}
	wantJanitor := staffing.RecencyScoreFresh + staffing.FloorScore + staffing.PhoneScore + staffing.EmailScore
	if js.Total != wantJanitor {
		t.Errorf("janitor total = %d, want %d", js.Total, wantJanitor)
	}
}

func TestRank_TieBreakKeepsInputOrder(t *testing.T) {
	now := time.Now()
	r := defaultRanker()

	a := candidate("a", "Caregiver", 30*time.Minute, "1F", "555-1", "a@example.com", now)
	b := candidate("b", "Caregiver", 30*time.Minute, "2F", "555-2", "b@example.com", now)

	ranked := r.Rank([]staffing.StaffCandidate{a, b}, now)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 responders, got %d", len(ranked))
	}
	if ranked[0].StaffID != "a" || ranked[1].StaffID != "b" {
		t.Errorf("tied candidates reordered: got %s, %s", ranked[0].StaffID, ranked[1].StaffID)
	}
	if ranked[0].Score.Total != ranked[1].Score.Total {
		t.Fatalf("test setup broken: totals differ (%d vs %d)", ranked[0].Score.Total, ranked[1].Score.Total)
	}
}

func TestRank_ReturnsAtMostThree(t *testing.T) {
	now := time.Now()
	r := defaultRanker()

	in := []staffing.StaffCandidate{
		candidate("sup", "Supervisor", 30*time.Minute, "1F", "1", "1@x", now),
		candidate("sen", "Senior Caregiver", 30*time.Minute, "1F", "2", "2@x", now),
		candidate("cg", "Caregiver", 30*time.Minute, "1F", "3", "3@x", now),
		candidate("rn", "Nurse", 30*time.Minute, "1F", "4", "4@x", now),
	}

	ranked := r.Rank(in, now)
	if len(ranked) != staffing.MaxResponders {
		t.Fatalf("expected %d responders, got %d", staffing.MaxResponders, len(ranked))
	}
	// The nurse carries the lowest role weight and falls off the list.
	for _, rc := range ranked {
		if rc.StaffID == "rn" {
			t.Error("lowest-scoring candidate should have been cut at the cap")
		}
	}
}

func TestRank_EmptyResultIsValid(t *testing.T) {
	now := time.Now()
	r := defaultRanker()

	ranked := r.Rank([]staffing.StaffCandidate{
		candidate("j1", "Janitor", 30*time.Minute, "1F", "555-1", "j@x", now),
		candidate("v1", "Visitor Liaison", 2*time.Hour, "", "", "", now),
	}, now)

	if len(ranked) != 0 {
		t.Errorf("expected no eligible responders, got %d", len(ranked))
	}

	if got := r.Rank(nil, now); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %d", len(got))
	}
}

func TestRoleScore(t *testing.T) {
	r := defaultRanker()

	tests := []struct {
		position string
		want     int
	}{
		{"Shift Supervisor", staffing.RoleScoreSupervisor},
		{"Team Lead", staffing.RoleScoreSupervisor},
		{"Senior Caregiver", staffing.RoleScoreSeniorCaregiver},
		{"Caregiver", staffing.RoleScoreCaregiver},
		{"Night Care Aide", staffing.RoleScoreCaregiver},
		{"Registered Nurse", staffing.RoleScoreNurse},
		{"NURSE", staffing.RoleScoreNurse},
		{"Janitor", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := r.RoleScore(tt.position); got != tt.want {
			t.Errorf("RoleScore(%q) = %d, want %d", tt.position, got, tt.want)
		}
	}
}

func TestScoreCandidate_RecencyBuckets(t *testing.T) {
	now := time.Now()
	r := defaultRanker()

	tests := []struct {
		name string
		age  time.Duration
		want int
	}{
		{"30 minutes", 30 * time.Minute, staffing.RecencyScoreFresh},
		{"2 hours", 2 * time.Hour, staffing.RecencyScoreRecent},
		{"6 hours", 6 * time.Hour, staffing.RecencyScoreStale},
		{"9 hours", 9 * time.Hour, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidate("x", "Caregiver", tt.age, "1F", "", "", now)
			if got := r.ScoreCandidate(c, now).Recency; got != tt.want {
				t.Errorf("recency score = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("no floor fix at all", func(t *testing.T) {
		c := staffing.StaffCandidate{StaffID: "x", Position: "Caregiver"}
		s := r.ScoreCandidate(c, now)
		if s.Recency != 0 || s.Floor != 0 {
			t.Errorf("expected zero recency and floor scores, got %+v", s)
		}
	})
}

func TestRank_ConcurrentUse(t *testing.T) {
	// One Ranker serves every alarm in the process; ranking for different
	// subjects runs in parallel goroutines. Run under -race.
	now := time.Now()
	r := defaultRanker()

	in := []staffing.StaffCandidate{
		candidate("sup", "Shift Supervisor", 30*time.Minute, "2F", "555-1", "s@x", now),
		candidate("rn", "NURSE", 2*time.Hour, "1F", "", "n@x", now),
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ranked := r.Rank(in, now)
			if len(ranked) != 2 || ranked[0].StaffID != "sup" {
				t.Errorf("concurrent Rank gave inconsistent result: %+v", ranked)
			}
		}()
	}
	wg.Wait()
}

func TestLoadRoleKeywords_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	content := "supervisor:\n  - charge\nnurse:\n  - rn\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	kw, err := staffing.LoadRoleKeywords(path)
	if err != nil {
		t.Fatalf("LoadRoleKeywords: %v", err)
	}

	r := staffing.NewRanker(kw)
	if got := r.RoleScore("Charge of Ward B"); got != staffing.RoleScoreSupervisor {
		t.Errorf("overridden supervisor keyword not matched, got %d", got)
	}
	if got := r.RoleScore("RN"); got != staffing.RoleScoreNurse {
		t.Errorf("overridden nurse keyword not matched, got %d", got)
	}
	// Untouched sections keep their defaults.
	if got := r.RoleScore("Caregiver"); got != staffing.RoleScoreCaregiver {
		t.Errorf("default caregiver keyword lost after partial override, got %d", got)
	}
}

func TestLoadRoleKeywords_MissingFileFallsBack(t *testing.T) {
	kw, err := staffing.LoadRoleKeywords(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	r := staffing.NewRanker(kw)
	if got := r.RoleScore("Nurse"); got != staffing.RoleScoreNurse {
		t.Errorf("defaults not returned alongside the error, got %d", got)
	}
}
