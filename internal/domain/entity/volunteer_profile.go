// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceTier classifies how seasoned a volunteer is.
type ExperienceTier string

const (
	// TierBeginner is the entry tier, also used for unrecognized tier values.
	TierBeginner ExperienceTier = "beginner"
	// TierIntermediate is the middle tier.
	TierIntermediate ExperienceTier = "intermediate"
	// TierExpert is the highest tier.
	TierExpert ExperienceTier = "expert"
)

// VolunteerProfile represents a volunteer's matchable attributes. The profile is
// created and updated by the volunteer; the matching engine only reads it.
type VolunteerProfile struct {
	UserID          uuid.UUID      `json:"user_id"`           // The ID of the user who owns this profile.
	Skills          []string       `json:"skills"`            // Skill tags the volunteer offers.
	AvailableDays   []string       `json:"available_days"`    // Weekdays the volunteer is available; not scored yet.
	TimeSlots       []string       `json:"time_slots"`        // Time slots the volunteer is available; not scored yet.
	Latitude        *float64       `json:"latitude"`          // Optional coordinate; set together with Longitude or not at all.
	Longitude       *float64       `json:"longitude"`         // Optional coordinate; set together with Latitude or not at all.
	ServiceRadiusKm float64        `json:"service_radius_km"` // How far (km) the volunteer is willing to travel.
	ExperienceTier  ExperienceTier `json:"experience_tier"`   // beginner | intermediate | expert.
	Rating          float64        `json:"rating"`            // Cumulative rating on a 0-5 scale.
	IsAvailable     bool           `json:"is_available"`      // Whether the volunteer currently accepts proposals.
	TasksCompleted  int            `json:"tasks_completed"`   // Lifetime completed-task count.
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// HasCoordinates reports whether the profile carries a usable location.
func (p *VolunteerProfile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// HasSkill reports whether the volunteer's skill set contains the given tag.
func (p *VolunteerProfile) HasSkill(tag string) bool {
	for _, skill := range p.Skills {
		if skill == tag {
			return true
		}
	}

	return false
}

// VolunteerDisplay carries read-only presentation fields joined from the user
// store, used to enrich nearby-search responses.
type VolunteerDisplay struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
}
