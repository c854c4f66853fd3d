package matching

import (
	"sort"

	"voluntree/internal/domain/entity"

	"github.com/google/uuid"
)

// SelectOptions tunes a candidate selection run. The five service call sites
// use different MinScore values on purpose: display-only lookups tolerate
// weaker matches than operations that create durable records.
type SelectOptions struct {
	// MinScore drops results scoring below the threshold.
	MinScore int

	// Limit truncates the ranked list; zero or negative means no limit.
	Limit int

	// MaxDistanceKm, when set, drops candidates whose computed distance exceeds
	// it. Candidates without a computable distance are never geo-filtered out.
	MaxDistanceKm *float64
}

// SelectCandidates scores every volunteer in the pool against the request,
// skipping IDs in the exclusion set, then filters by distance and threshold,
// sorts descending by score and truncates to the limit. The pool is expected
// to be pre-filtered to available volunteers excluding the requester.
func SelectCandidates(
	request *entity.HelpRequest,
	pool []*entity.VolunteerProfile,
	exclude map[uuid.UUID]struct{},
	opts SelectOptions,
) []*entity.MatchResult {
	results := make([]*entity.MatchResult, 0, len(pool))

	for _, volunteer := range pool {
		if _, excluded := exclude[volunteer.UserID]; excluded {
			continue
		}

		result := Score(volunteer, request)

		if opts.MaxDistanceKm != nil && result.DistanceKm != nil && *result.DistanceKm > *opts.MaxDistanceKm {
			continue
		}

		if result.Score < opts.MinScore {
			continue
		}

		results = append(results, result)
	}

	// Ties break by volunteer ID so repeated runs over the same snapshot
	// produce the same order.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}

		return results[i].VolunteerID.String() < results[j].VolunteerID.String()
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	return results
}
