package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expectedKm             float64
	}{
		{
			name: "identical points", lat1: 25.0, lon1: 121.5, lat2: 25.0, lon2: 121.5,
			expectedKm: 0,
		},
		{
			name: "one degree along the equator", lat1: 0, lon1: 0, lat2: 0, lon2: 1,
			expectedKm: earthRadiusKm * math.Pi / 180,
		},
		{
			name: "one degree along a meridian", lat1: 10, lon1: 45, lat2: 11, lon2: 45,
			expectedKm: earthRadiusKm * math.Pi / 180,
		},
		{
			name: "quarter of the globe", lat1: 0, lon1: 0, lat2: 0, lon2: 90,
			expectedKm: earthRadiusKm * math.Pi / 2,
		},
		{
			name: "antipodal points", lat1: 0, lon1: 0, lat2: 0, lon2: 180,
			expectedKm: earthRadiusKm * math.Pi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expectedKm, got, 0.001)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	forward := Distance(25.033, 121.565, 24.137, 120.686)
	backward := Distance(24.137, 120.686, 25.033, 121.565)

	assert.InDelta(t, forward, backward, 1e-9)
	assert.Greater(t, forward, 0.0)
}
