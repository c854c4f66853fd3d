package matching

import (
	"testing"

	"voluntree/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// poolVolunteer builds an available volunteer at a given distance (km) north of
// the origin, where test requests sit.
func poolVolunteer(tier entity.ExperienceTier, rating float64, distanceKm float64) *entity.VolunteerProfile {
	return &entity.VolunteerProfile{
		UserID:          uuid.New(),
		Latitude:        ptr(latOffsetFor(distanceKm)),
		Longitude:       ptr(0.0),
		ServiceRadiusKm: 10,
		ExperienceTier:  tier,
		Rating:          rating,
		IsAvailable:     true,
	}
}

func originRequest() *entity.HelpRequest {
	return &entity.HelpRequest{
		ID:        uuid.New(),
		Latitude:  ptr(0.0),
		Longitude: ptr(0.0),
		Urgency:   entity.UrgencyMedium,
	}
}

func TestSelectCandidates_ExcludesAndSorts(t *testing.T) {
	t.Parallel()

	request := originRequest()
	strong := poolVolunteer(entity.TierExpert, 5, 0)
	middling := poolVolunteer(entity.TierIntermediate, 2, 15)
	weak := poolVolunteer(entity.TierBeginner, 0, 45)
	excluded := poolVolunteer(entity.TierExpert, 5, 0)

	pool := []*entity.VolunteerProfile{weak, excluded, middling, strong}
	exclude := map[uuid.UUID]struct{}{excluded.UserID: {}}

	results := SelectCandidates(request, pool, exclude, SelectOptions{})

	require.Len(t, results, 3)
	for _, result := range results {
		assert.NotEqual(t, excluded.UserID, result.VolunteerID)
	}
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	assert.Equal(t, strong.UserID, results[0].VolunteerID)
}

func TestSelectCandidates_MinScoreAndLimit(t *testing.T) {
	t.Parallel()

	request := originRequest()
	pool := []*entity.VolunteerProfile{
		poolVolunteer(entity.TierExpert, 5, 0),
		poolVolunteer(entity.TierExpert, 4, 5),
		poolVolunteer(entity.TierIntermediate, 3, 15),
		poolVolunteer(entity.TierBeginner, 0, 120),
	}

	results := SelectCandidates(request, pool, nil, SelectOptions{MinScore: 40, Limit: 2})

	require.Len(t, results, 2)
	for _, result := range results {
		assert.GreaterOrEqual(t, result.Score, 40)
	}
}

func TestSelectCandidates_StableTieBreak(t *testing.T) {
	t.Parallel()

	request := originRequest()
	first := poolVolunteer(entity.TierExpert, 5, 0)
	second := poolVolunteer(entity.TierExpert, 5, 0)

	results := SelectCandidates(request, []*entity.VolunteerProfile{second, first}, nil, SelectOptions{})
	reversed := SelectCandidates(request, []*entity.VolunteerProfile{first, second}, nil, SelectOptions{})

	require.Len(t, results, 2)
	require.Len(t, reversed, 2)
	assert.Equal(t, results[0].VolunteerID, reversed[0].VolunteerID)
	assert.Less(t, results[0].VolunteerID.String(), results[1].VolunteerID.String())
}

func TestSelectCandidates_MaxDistanceFilter(t *testing.T) {
	t.Parallel()

	request := originRequest()
	near := poolVolunteer(entity.TierExpert, 5, 3)
	// Large personal radius does not save a volunteer outside the search radius.
	far := poolVolunteer(entity.TierExpert, 5, 80)
	far.ServiceRadiusKm = 200
	unknown := &entity.VolunteerProfile{
		UserID:         uuid.New(),
		ExperienceTier: entity.TierExpert,
		Rating:         5,
		IsAvailable:    true,
	}

	radius := 50.0
	results := SelectCandidates(request, []*entity.VolunteerProfile{near, far, unknown}, nil, SelectOptions{
		MaxDistanceKm: &radius,
	})

	require.Len(t, results, 2)
	ids := []uuid.UUID{results[0].VolunteerID, results[1].VolunteerID}
	assert.Contains(t, ids, near.UserID)
	assert.Contains(t, ids, unknown.UserID)
}

func TestSelectCandidates_ZeroRadiusKeepsCoincidentVolunteer(t *testing.T) {
	t.Parallel()

	request := originRequest()
	onTheSpot := poolVolunteer(entity.TierExpert, 5, 0)

	radius := 0.0
	results := SelectCandidates(request, []*entity.VolunteerProfile{onTheSpot}, nil, SelectOptions{
		MaxDistanceKm: &radius,
	})

	require.Len(t, results, 1)
	assert.Equal(t, onTheSpot.UserID, results[0].VolunteerID)
}

func TestSelectCandidates_EmptyPool(t *testing.T) {
	t.Parallel()

	results := SelectCandidates(originRequest(), nil, nil, SelectOptions{MinScore: 30})
	assert.Empty(t, results)
}
