package staffing

import (
	"sort"
	"strings"
	"time"
)

// Scoring weights for responder selection. Higher total = more suitable.
// These are design constants, not operator-tunable configuration; tests
// assert against them by name.
const (
	RoleScoreSupervisor      = 40
	RoleScoreSeniorCaregiver = 35
	RoleScoreCaregiver       = 30
	RoleScoreNurse           = 25

	RecencyScoreFresh  = 30 // floor seen within the last hour
	RecencyScoreRecent = 20 // within 4 hours
	RecencyScoreStale  = 10 // within 8 hours

	FloorScore = 20 // any known floor at all

	PhoneScore = 5
	EmailScore = 5

	// MaxResponders caps how many staff are notified per alarm.
	MaxResponders = 3
)

// Score is the additive per-factor breakdown for one candidate.
type Score struct {
	Role    int `json:"role"`
	Recency int `json:"recency"`
	Floor   int `json:"floor"`
	Contact int `json:"contact"`
	Total   int `json:"total"`
}

// RankedCandidate pairs a candidate with its score breakdown.
type RankedCandidate struct {
	StaffCandidate
	Score Score `json:"score"`
}

// Ranker scores and orders staff candidates for alarm response. It is a
// pure function over its inputs and safe for concurrent use.
type Ranker struct {
	keywords RoleKeywords
}

func NewRanker(kw RoleKeywords) *Ranker {
	return &Ranker{keywords: kw}
}

// RoleScore classifies a free-form position label by keyword substring.
// Senior-caregiver keywords are checked before plain caregiver ones because
// "senior caregiver" contains "caregiver". Unrecognized labels score 0.
func (r *Ranker) RoleScore(position string) int {
	label := fold(position)

	match := func(keys []string) bool {
		for _, k := range keys {
			if k != "" && strings.Contains(label, fold(k)) {
				return true
			}
		}
		return false
	}

	switch {
	case match(r.keywords.Supervisor):
		return RoleScoreSupervisor
	case match(r.keywords.SeniorCaregiver):
		return RoleScoreSeniorCaregiver
	case match(r.keywords.Caregiver):
		return RoleScoreCaregiver
	case match(r.keywords.Nurse):
		return RoleScoreNurse
	default:
		return 0
	}
}

// ScoreCandidate computes the additive breakdown for one candidate at the
// given evaluation time.
func (r *Ranker) ScoreCandidate(c StaffCandidate, now time.Time) Score {
	var s Score

	s.Role = r.RoleScore(c.Position)

	if c.FloorSeenAt != nil {
		switch age := now.Sub(*c.FloorSeenAt); {
		case age <= time.Hour:
			s.Recency = RecencyScoreFresh
		case age <= 4*time.Hour:
			s.Recency = RecencyScoreRecent
		case age <= 8*time.Hour:
			s.Recency = RecencyScoreStale
		}
	}

	if c.Floor != "" {
		s.Floor = FloorScore
	}

	if c.Phone != "" {
		s.Contact += PhoneScore
	}
	if c.Email != "" {
		s.Contact += EmailScore
	}

	s.Total = s.Role + s.Recency + s.Floor + s.Contact
	return s
}

// Rank scores every candidate and returns the top MaxResponders ordered by
// descending total. Ties keep the candidates' original input order.
//
// Eligibility requires a positive total AND a recognized role: a candidate
// whose position matches no role class is never notified, however complete
// their contact and location factors are. An empty result is a valid
// outcome; the caller logs it rather than treating it as an error.
func (r *Ranker) Rank(candidates []StaffCandidate, now time.Time) []RankedCandidate {
	eligible := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		score := r.ScoreCandidate(c, now)
		if score.Total <= 0 || score.Role == 0 {
			continue
		}
		eligible = append(eligible, RankedCandidate{StaffCandidate: c, Score: score})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Score.Total > eligible[j].Score.Total
	})

	if len(eligible) > MaxResponders {
		eligible = eligible[:MaxResponders]
	}
	return eligible
}
