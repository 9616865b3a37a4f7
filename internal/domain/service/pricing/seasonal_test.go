package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSeasonalFactorTable(t *testing.T) {
	rq := require.New(t)

	for month := time.January; month <= time.December; month++ {
		rq.Greater(SeasonalFactor(month), 0.0, "month %s", month)
		rq.NotEmpty(SeasonalReason(month), "month %s", month)
	}

	// Intake peak against the term-break trough.
	rq.Greater(SeasonalFactor(time.May), SeasonalFactor(time.October))
	rq.Equal(1.15, SeasonalFactor(time.May))
	rq.Equal(0.90, SeasonalFactor(time.October))
}

func TestDistanceCategory(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		distanceKm float64
		category   string
		factor     float64
	}{
		{0.5, "Premium Location", 1.3},
		{1.0, "Premium Location", 1.3},
		{2.0, "Premium Location", 1.3},
		{2.1, "Standard Location", 1.0},
		{6.0, "Standard Location", 1.0},
		{6.1, "Budget Location", 0.8},
		{20.0, "Budget Location", 0.8},
		{0.0, "Budget Location", 0.8},
	}

	for _, tc := range testCases {
		info := distanceCategory(tc.distanceKm)

		rq.Equal(tc.category, info.Category, "distance %.1f", tc.distanceKm)
		rq.Equal(tc.factor, info.Factor, "distance %.1f", tc.distanceKm)
		rq.NotEmpty(info.Description)
	}
}

func TestRoomInfo(t *testing.T) {
	rq := require.New(t)

	single := roomInfo("single", 1)
	rq.Equal("Single (1 of 1 sharing)", single.Description)
	rq.Equal(1.0, single.PerPersonFactor)

	shared2 := roomInfo("shared-2", 2)
	rq.Equal("Shared 2 (2 of 2 sharing)", shared2.Description)
	rq.InDelta(0.8, shared2.PerPersonFactor, 1e-9)

	shared4 := roomInfo("shared-4", 3)
	rq.Equal("Shared 4 (3 of 4 sharing)", shared4.Description)
	rq.InDelta(0.8, shared4.PerPersonFactor, 1e-9)
	rq.Equal(4, shared4.MaxSharing)
}
