package matching

import (
	"math"
	"testing"

	"voluntree/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

// latOffsetFor converts a distance in kilometers into a latitude offset in
// degrees along a meridian, so tests can place a request at an exact distance
// from a volunteer.
func latOffsetFor(km float64) float64 {
	return km * 180 / (math.Pi * earthRadiusKm)
}

func TestSkillScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		skills         []string
		category       string
		requiredSkills []string
		expected       int
	}{
		{
			name:           "no required skills is a perfect match",
			skills:         nil,
			category:       "healthcare",
			requiredSkills: nil,
			expected:       100,
		},
		{
			name:           "no required skills even with unrelated skills",
			skills:         []string{"cooking"},
			category:       "transport",
			requiredSkills: []string{},
			expected:       100,
		},
		{
			name:           "category bonus plus full coverage",
			skills:         []string{"medical", "healthcare"},
			category:       "healthcare",
			requiredSkills: []string{"medical"},
			expected:       100,
		},
		{
			name:           "half coverage without category",
			skills:         []string{"driving"},
			category:       "transport",
			requiredSkills: []string{"driving", "first_aid"},
			expected:       40,
		},
		{
			name:           "category only",
			skills:         []string{"healthcare"},
			category:       "healthcare",
			requiredSkills: []string{"medical"},
			expected:       20,
		},
		{
			name:           "no overlap at all",
			skills:         nil,
			category:       "healthcare",
			requiredSkills: []string{"medical"},
			expected:       0,
		},
		{
			name:           "category tag inside required skills counts twice",
			skills:         []string{"healthcare"},
			category:       "healthcare",
			requiredSkills: []string{"healthcare", "medical"},
			expected:       60, // 20 bonus + 1/2 * 80
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			volunteer := &entity.VolunteerProfile{Skills: tt.skills}
			request := &entity.HelpRequest{Category: tt.category, RequiredSkills: tt.requiredSkills}

			assert.Equal(t, tt.expected, SkillScore(volunteer, request))
		})
	}
}

func TestGeoScore_MissingCoordinates(t *testing.T) {
	t.Parallel()

	withCoords := &entity.VolunteerProfile{Latitude: ptr(25.0), Longitude: ptr(121.5)}
	withoutCoords := &entity.VolunteerProfile{}
	request := &entity.HelpRequest{Latitude: ptr(25.0), Longitude: ptr(121.5)}
	blindRequest := &entity.HelpRequest{}

	assert.Equal(t, 50, GeoScore(withoutCoords, request))
	assert.Equal(t, 50, GeoScore(withCoords, blindRequest))
	assert.Equal(t, 50, GeoScore(withoutCoords, blindRequest))
}

func TestGeoScore_Bands(t *testing.T) {
	t.Parallel()

	const radius = 10.0

	tests := []struct {
		name       string
		distanceKm float64
		expected   int
	}{
		{name: "at the volunteer", distanceKm: 0, expected: 100},
		{name: "inside radius", distanceKm: 5, expected: 100},
		{name: "inside double radius", distanceKm: 15, expected: 75},
		{name: "inside triple radius", distanceKm: 25, expected: 50},
		{name: "inside five times radius", distanceKm: 45, expected: 25},
		{name: "beyond five times radius", distanceKm: 60, expected: 0},
		{name: "far beyond", distanceKm: 120, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			volunteer := &entity.VolunteerProfile{
				Latitude:        ptr(0.0),
				Longitude:       ptr(0.0),
				ServiceRadiusKm: radius,
			}
			request := &entity.HelpRequest{
				Latitude:  ptr(latOffsetFor(tt.distanceKm)),
				Longitude: ptr(0.0),
			}

			assert.Equal(t, tt.expected, GeoScore(volunteer, request))
		})
	}
}

func TestGeoBandScore_InclusiveBoundaries(t *testing.T) {
	t.Parallel()

	const radius = 10.0

	// A distance landing exactly on a band boundary belongs to the closer
	// band; only crossing the boundary demotes it.
	tests := []struct {
		name       string
		distanceKm float64
		expected   int
	}{
		{name: "exactly at radius", distanceKm: 10, expected: 100},
		{name: "just past radius", distanceKm: math.Nextafter(10, 11), expected: 75},
		{name: "exactly at double radius", distanceKm: 20, expected: 75},
		{name: "just past double radius", distanceKm: math.Nextafter(20, 21), expected: 50},
		{name: "exactly at triple radius", distanceKm: 30, expected: 50},
		{name: "just past triple radius", distanceKm: math.Nextafter(30, 31), expected: 25},
		{name: "exactly at five times radius", distanceKm: 50, expected: 25},
		{name: "just past five times radius", distanceKm: math.Nextafter(50, 51), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, geoBandScore(tt.distanceKm, radius))
		})
	}
}

func TestGeoScore_DefaultRadius(t *testing.T) {
	t.Parallel()

	// No stated radius falls back to 10 km, so 15 km lands in the 75 band.
	volunteer := &entity.VolunteerProfile{Latitude: ptr(0.0), Longitude: ptr(0.0)}
	request := &entity.HelpRequest{Latitude: ptr(latOffsetFor(15)), Longitude: ptr(0.0)}

	assert.Equal(t, 75, GeoScore(volunteer, request))
}

func TestExperienceScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tier     entity.ExperienceTier
		rating   float64
		urgency  entity.Urgency
		expected int
	}{
		{name: "expert max rating clamps at 100", tier: entity.TierExpert, rating: 5, urgency: entity.UrgencyMedium, expected: 100},
		{name: "expert critical boost clamps at 100", tier: entity.TierExpert, rating: 0, urgency: entity.UrgencyCritical, expected: 100},
		{name: "intermediate baseline", tier: entity.TierIntermediate, rating: 0, urgency: entity.UrgencyLow, expected: 70},
		{name: "intermediate with rating", tier: entity.TierIntermediate, rating: 4, urgency: entity.UrgencyMedium, expected: 90},
		{name: "beginner baseline", tier: entity.TierBeginner, rating: 0, urgency: entity.UrgencyLow, expected: 40},
		{name: "beginner discounted on critical", tier: entity.TierBeginner, rating: 0, urgency: entity.UrgencyCritical, expected: 28},
		{name: "beginner discounted on high", tier: entity.TierBeginner, rating: 0, urgency: entity.UrgencyHigh, expected: 32},
		{name: "expert boosted on high", tier: entity.TierExpert, rating: 0, urgency: entity.UrgencyHigh, expected: 100},
		{name: "unknown tier treated as beginner", tier: "wizard", rating: 2, urgency: entity.UrgencyMedium, expected: 50},
		{name: "unknown tier discounted on critical", tier: "wizard", rating: 0, urgency: entity.UrgencyCritical, expected: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			volunteer := &entity.VolunteerProfile{ExperienceTier: tt.tier, Rating: tt.rating}
			request := &entity.HelpRequest{Urgency: tt.urgency}

			got := ExperienceScore(volunteer, request)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestScore_WeightedCombination(t *testing.T) {
	t.Parallel()

	// Perfect volunteer: empty required skills, same coordinates, expert tier.
	perfect := &entity.VolunteerProfile{
		UserID:          uuid.New(),
		Latitude:        ptr(25.0),
		Longitude:       ptr(121.5),
		ServiceRadiusKm: 10,
		ExperienceTier:  entity.TierExpert,
		Rating:          5,
	}
	request := &entity.HelpRequest{
		ID:        uuid.New(),
		Latitude:  ptr(25.0),
		Longitude: ptr(121.5),
		Urgency:   entity.UrgencyMedium,
	}

	result := Score(perfect, request)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 100, result.SkillScore)
	assert.Equal(t, 100, result.GeoScore)
	assert.Equal(t, 100, result.ExperienceScore)
	require.NotNil(t, result.DistanceKm)
	assert.InDelta(t, 0, *result.DistanceKm, 0.001)
	assert.Equal(t, perfect.UserID, result.VolunteerID)
	assert.Equal(t, request.ID, result.RequestID)
}

func TestScore_HopelessCandidate(t *testing.T) {
	t.Parallel()

	// No skills, beginner with no rating, far outside the service radius, on a
	// critical request: every sub-score bottoms out except the discounted
	// experience base.
	volunteer := &entity.VolunteerProfile{
		UserID:          uuid.New(),
		Latitude:        ptr(0.0),
		Longitude:       ptr(0.0),
		ServiceRadiusKm: 10,
		ExperienceTier:  entity.TierBeginner,
		Rating:          0,
	}
	request := &entity.HelpRequest{
		ID:             uuid.New(),
		Category:       "healthcare",
		RequiredSkills: []string{"medical"},
		Urgency:        entity.UrgencyCritical,
		Latitude:       ptr(latOffsetFor(120)),
		Longitude:      ptr(0.0),
	}

	result := Score(volunteer, request)
	assert.Equal(t, 0, result.SkillScore)
	assert.Equal(t, 0, result.GeoScore)
	assert.Equal(t, 28, result.ExperienceScore)
	assert.Equal(t, 7, result.Score)
	require.NotNil(t, result.DistanceKm)
	assert.InDelta(t, 120, *result.DistanceKm, 0.1)
}

func TestScore_NoDistanceWithoutCoordinates(t *testing.T) {
	t.Parallel()

	volunteer := &entity.VolunteerProfile{UserID: uuid.New()}
	request := &entity.HelpRequest{ID: uuid.New()}

	result := Score(volunteer, request)
	assert.Nil(t, result.DistanceKm)
	assert.Equal(t, 50, result.GeoScore)
}
