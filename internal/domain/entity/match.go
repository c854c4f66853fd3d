package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a match proposal. Transitions to
// accepted/declined are driven by the volunteer or requester, not by the engine.
type MatchStatus string

const (
	// MatchStatusPending means the proposal awaits a decision.
	MatchStatusPending MatchStatus = "pending"
	// MatchStatusAccepted means the volunteer accepted the proposal.
	MatchStatusAccepted MatchStatus = "accepted"
	// MatchStatusDeclined means the proposal was turned down.
	MatchStatusDeclined MatchStatus = "declined"
	// MatchStatusExpired means the proposal lapsed without a decision.
	MatchStatusExpired MatchStatus = "expired"
)

// IsActive reports whether the status still occupies the volunteer for the
// request. Active matches keep the volunteer out of that request's candidate pool.
func (s MatchStatus) IsActive() bool {
	return s == MatchStatusPending || s == MatchStatusAccepted
}

// Match is a persisted proposal linking one volunteer to one request. The
// (RequestID, VolunteerID) pair is unique; re-creating a match upserts instead
// of duplicating.
type Match struct {
	ID          uuid.UUID   `json:"id"`
	RequestID   uuid.UUID   `json:"request_id"`
	VolunteerID uuid.UUID   `json:"volunteer_id"`
	Score       int         `json:"score"` // Match score at time of creation; 0 for curated matches.
	Status      MatchStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// MatchResult is the transient output of scoring a volunteer against a request.
// It is not persisted unless explicitly converted to a Match.
type MatchResult struct {
	VolunteerID     uuid.UUID `json:"volunteer_id"`
	RequestID       uuid.UUID `json:"request_id"`
	Score           int       `json:"score"`            // Weighted overall score, 0-100.
	SkillScore      int       `json:"skill_score"`      // Skill overlap sub-score, 0-100.
	GeoScore        int       `json:"geo_score"`        // Geographic fit sub-score, 0-100.
	ExperienceScore int       `json:"experience_score"` // Experience/urgency fit sub-score, 0-100.
	DistanceKm      *float64  `json:"distance_km"`      // Set only when both parties have coordinates.
}
