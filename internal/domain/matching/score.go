package matching

import (
	"math"

	"voluntree/internal/domain/entity"
)

// Weights for combining the three sub-scores into the overall match score.
// Skill dominates (can the volunteer do the task), geography second (can they
// reasonably reach it), experience third (how good are they).
const (
	weightSkill      = 0.40
	weightGeo        = 0.35
	weightExperience = 0.25
)

// DefaultServiceRadiusKm is assumed when a volunteer has no stated radius.
const DefaultServiceRadiusKm = 10.0

const (
	categoryBonus     = 20.0
	requiredSkillsMax = 80.0
)

// SkillScore rates skill overlap between a volunteer and a request on a 0-100
// scale. Requests with no required skills are a perfect match for everyone.
// A request's category tag that also appears in its required-skills list is
// counted twice (bonus plus ratio); downstream thresholds were tuned against
// this behavior, so it is kept as is.
func SkillScore(volunteer *entity.VolunteerProfile, request *entity.HelpRequest) int {
	if len(request.RequiredSkills) == 0 {
		return 100
	}

	score := 0.0
	if volunteer.HasSkill(request.Category) {
		score += categoryBonus
	}

	covered := 0
	for _, required := range request.RequiredSkills {
		if volunteer.HasSkill(required) {
			covered++
		}
	}
	score += float64(covered) / float64(len(request.RequiredSkills)) * requiredSkillsMax

	return int(math.Round(score))
}

// GeoScore rates geographic fit on a 0-100 scale. When either party lacks
// coordinates the score is a neutral 50. Otherwise the distance is banded
// against the volunteer's service radius R: within R scores 100, then 75 up to
// 2R, 50 up to 3R, 25 up to 5R, and 0 beyond. The step function is deliberate;
// a continuous decay would imply precision the stated radius does not carry.
func GeoScore(volunteer *entity.VolunteerProfile, request *entity.HelpRequest) int {
	if !volunteer.HasCoordinates() || !request.HasCoordinates() {
		return 50
	}

	radius := volunteer.ServiceRadiusKm
	if radius <= 0 {
		radius = DefaultServiceRadiusKm
	}

	distance := Distance(*volunteer.Latitude, *volunteer.Longitude, *request.Latitude, *request.Longitude)

	return geoBandScore(distance, radius)
}

// geoBandScore maps a distance onto the banded score relative to the service
// radius. Every band boundary is inclusive on its lower side.
func geoBandScore(distance, radius float64) int {
	switch {
	case distance <= radius:
		return 100
	case distance <= 2*radius:
		return 75
	case distance <= 3*radius:
		return 50
	case distance <= 5*radius:
		return 25
	default:
		return 0
	}
}

// tierBase is the base experience score per tier. Unrecognized tiers fall back
// to the beginner base.
func tierBase(tier entity.ExperienceTier) float64 {
	switch tier {
	case entity.TierExpert:
		return 100
	case entity.TierIntermediate:
		return 70
	default:
		return 40
	}
}

// urgencyMultiplier boosts experts and discounts beginners as urgency rises.
func urgencyMultiplier(urgency entity.Urgency, tier entity.ExperienceTier) float64 {
	switch urgency {
	case entity.UrgencyCritical:
		switch tier {
		case entity.TierExpert:
			return 1.2
		case entity.TierIntermediate:
			return 1.0
		default:
			return 0.7
		}
	case entity.UrgencyHigh:
		switch tier {
		case entity.TierExpert:
			return 1.1
		case entity.TierIntermediate:
			return 1.0
		default:
			return 0.8
		}
	default:
		return 1.0
	}
}

// ExperienceScore rates experience/urgency fit on a 0-100 scale: tier base plus
// a rating bonus of rating x 5, multiplied by the urgency matrix and clamped
// to 100.
func ExperienceScore(volunteer *entity.VolunteerProfile, request *entity.HelpRequest) int {
	tier := volunteer.ExperienceTier
	score := (tierBase(tier) + volunteer.Rating*5) * urgencyMultiplier(request.Urgency, tier)
	if score > 100 {
		score = 100
	}

	return int(math.Round(score))
}

// Score combines the three sub-scores into a weighted overall score and
// attaches the computed distance when both parties have coordinates. It is
// total over well-formed inputs; there are no error conditions.
func Score(volunteer *entity.VolunteerProfile, request *entity.HelpRequest) *entity.MatchResult {
	result := &entity.MatchResult{
		VolunteerID:     volunteer.UserID,
		RequestID:       request.ID,
		SkillScore:      SkillScore(volunteer, request),
		GeoScore:        GeoScore(volunteer, request),
		ExperienceScore: ExperienceScore(volunteer, request),
	}

	result.Score = int(math.Round(
		weightSkill*float64(result.SkillScore) +
			weightGeo*float64(result.GeoScore) +
			weightExperience*float64(result.ExperienceScore),
	))

	if volunteer.HasCoordinates() && request.HasCoordinates() {
		distance := Distance(*volunteer.Latitude, *volunteer.Longitude, *request.Latitude, *request.Longitude)
		result.DistanceKm = &distance
	}

	return result
}
