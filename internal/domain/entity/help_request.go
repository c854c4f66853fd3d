package entity

import (
	"time"

	"github.com/google/uuid"
)

// Urgency expresses how time-critical a help request is.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// RequestStatus is the lifecycle state of a help request.
type RequestStatus string

const (
	// RequestStatusOpen means the request is posted and has no proposals yet.
	RequestStatusOpen RequestStatus = "open"
	// RequestStatusMatching means match proposals have been created for the request.
	RequestStatusMatching RequestStatus = "matching"
	// RequestStatusInProgress means volunteers accepted and work started.
	RequestStatusInProgress RequestStatus = "in_progress"
	// RequestStatusCompleted means the request was fulfilled.
	RequestStatusCompleted RequestStatus = "completed"
	// RequestStatusCancelled means the requester withdrew the request.
	RequestStatusCancelled RequestStatus = "cancelled"
)

// HelpRequest represents a posted need for volunteer assistance. It is owned by
// the requester; the matching engine only flips its status when matching begins.
type HelpRequest struct {
	ID                uuid.UUID     `json:"id"`
	RequesterID       uuid.UUID     `json:"requester_id"`       // Excluded from the request's own candidate pool.
	Category          string        `json:"category"`           // Category tag, e.g. "healthcare".
	Urgency           Urgency       `json:"urgency"`            // low | medium | high | critical.
	Latitude          *float64      `json:"latitude"`           // Optional coordinate; both-or-neither with Longitude.
	Longitude         *float64      `json:"longitude"`          // Optional coordinate; both-or-neither with Latitude.
	RequiredSkills    []string      `json:"required_skills"`    // Empty list means no skill constraint.
	VolunteersNeeded  int           `json:"volunteers_needed"`  // Target headcount.
	VolunteersMatched int           `json:"volunteers_matched"` // Headcount already matched.
	ScheduledAt       *time.Time    `json:"scheduled_at"`       // Optional scheduled date.
	Status            RequestStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// HasCoordinates reports whether the request carries a usable location.
func (r *HelpRequest) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// RemainingNeeded returns how many volunteer slots are still unfilled.
func (r *HelpRequest) RemainingNeeded() int {
	remaining := r.VolunteersNeeded - r.VolunteersMatched
	if remaining < 0 {
		return 0
	}

	return remaining
}
