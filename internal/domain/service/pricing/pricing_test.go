package pricing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"unistay/internal/domain/entity"
	"unistay/internal/domain/service/pricing"
)

// mid-May: intake season, factor 1.15.
var testNow = time.Date(2026, time.May, 15, 12, 0, 0, 0, time.UTC)

func primeProfile() entity.PropertyProfile {
	return entity.PropertyProfile{
		RoomType:   "single",
		NumSharing: 1,
		Location: entity.Location{
			University:            "University of Colombo",
			DistanceToUniKm:       1,
			DistanceToTransportKm: 0.5,
			SafetyScore:           9,
			IsMainRoad:            true,
		},
		Amenities: entity.Amenities{
			Wifi: true, AttachedBathroom: true, AC: true, Kitchen: true, Laundry: true,
			Parking: true, MealsProvided: true, StudyTable: true, Cupboard: true,
		},
		Reviews: entity.Reviews{
			OverallRating:           5,
			NumReviews:              50,
			LandlordResponseTimeHrs: 1,
			ValueRating:             5,
			MaintenanceRating:       5,
			CleanlinessRating:       5,
		},
	}
}

func budgetProfile() entity.PropertyProfile {
	return entity.PropertyProfile{
		RoomType:   "single",
		NumSharing: 1,
		Location: entity.Location{
			University:      "University of Colombo",
			DistanceToUniKm: 20,
			SafetyScore:     1,
		},
		Reviews: entity.Reviews{
			OverallRating:     3,
			ValueRating:       3,
			MaintenanceRating: 3,
			CleanlinessRating: 3,
		},
	}
}

func TestEstimatePrimeListing(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	result, err := pricing.NewEstimator().Estimate(ctx, primeProfile(), testNow)
	rq.NoError(err)

	rq.InDelta(10.0, result.AmenityScore, 0.01)
	rq.Greater(result.LocationScore, 8.0)
	rq.InDelta(10.0, result.ReviewScore, 0.01)

	rq.Equal("Premium Location", result.LocationInfo.Category)
	rq.Equal("Single (1 of 1 sharing)", result.RoomInfo.Description)

	// Fully loaded premium listing prices well above the reference rate.
	rq.Greater(result.BasePricePerOccupant, 20000.0)

	rq.Len(result.AmenitiesList, 9)
}

func TestEstimateBudgetListing(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	result, err := pricing.NewEstimator().Estimate(ctx, budgetProfile(), testNow)
	rq.NoError(err)

	rq.Equal(0.0, result.AmenityScore)
	rq.Equal(0.0, result.LocationScore)
	// Neutral ratings with zero reviews sit on the damped midpoint.
	rq.Equal(5.0, result.ReviewScore)

	rq.Equal("Budget Location", result.LocationInfo.Category)
	rq.Empty(result.AmenitiesList)

	// Both floor and ordering hold.
	rq.GreaterOrEqual(result.BasePricePerOccupant, 1000.0)

	prime, err := pricing.NewEstimator().Estimate(ctx, primeProfile(), testNow)
	rq.NoError(err)
	rq.Less(result.BasePricePerOccupant, prime.BasePricePerOccupant/2)
}

func TestEstimatePriceFloor(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	estimator := pricing.NewEstimator().WithBaseRate(100).WithPriceFloor(1000)

	result, err := estimator.Estimate(ctx, budgetProfile(), testNow)
	rq.NoError(err)

	rq.Equal(1000.0, result.BasePricePerOccupant)
}

func TestEstimateSharedRoomPricing(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	shared := primeProfile()
	shared.RoomType = "shared-4"
	shared.NumSharing = 4

	single, err := pricing.NewEstimator().Estimate(ctx, primeProfile(), testNow)
	rq.NoError(err)

	result, err := pricing.NewEstimator().Estimate(ctx, shared, testNow)
	rq.NoError(err)

	// Cost splitting: cheaper per occupant than the identical single room.
	rq.Less(result.BasePricePerOccupant, single.BasePricePerOccupant)

	// Room totals are exact multiples for every reported point.
	for _, point := range []entity.PricePoint{
		result.Prices.LastMonth,
		result.Prices.Current,
		result.Prices.NextMonth,
	} {
		rq.Equal(point.Price*4, point.TotalRoomPrice, "month %s", point.Month)
	}

	rq.Equal(result.Prices.NextYearEstimate*4, result.Prices.NextYearTotal)
}

func TestEstimateSeasonalTrajectory(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	result, err := pricing.NewEstimator().Estimate(ctx, primeProfile(), testNow)
	rq.NoError(err)

	prices := result.Prices

	rq.Equal("April", prices.LastMonth.Month)
	rq.Equal("May", prices.Current.Month)
	rq.Equal("June", prices.NextMonth.Month)

	rq.Equal(1.05, prices.LastMonth.SeasonalFactor)
	rq.Equal(1.15, prices.Current.SeasonalFactor)
	rq.Equal(1.10, prices.NextMonth.SeasonalFactor)

	// April (1.05) -> May (1.15) is a rise, May -> June (1.10) a dip.
	rq.Positive(prices.Current.ChangeFromPrevious)
	rq.Negative(prices.NextMonth.ChangeFromPrevious)

	rq.Equal("Start of new academic year, peak demand", prices.Current.Reason)

	// Inflation projection.
	rq.InDelta(result.BasePricePerOccupant*1.08, prices.NextYearEstimate, 0.05)
}

func TestEstimateRecommendedRange(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	wellReviewed, err := pricing.NewEstimator().Estimate(ctx, primeProfile(), testNow)
	rq.NoError(err)

	rq.LessOrEqual(wellReviewed.RecommendedRange.Min, wellReviewed.BasePricePerOccupant)
	rq.GreaterOrEqual(wellReviewed.RecommendedRange.Max, wellReviewed.BasePricePerOccupant)

	// 50 reviews tighten the band to 5% either side.
	rq.InDelta(wellReviewed.BasePricePerOccupant*0.95, wellReviewed.RecommendedRange.Min, 0.05)
	rq.InDelta(wellReviewed.BasePricePerOccupant*1.05, wellReviewed.RecommendedRange.Max, 0.05)

	// Zero reviews keep the default 10% band.
	sparse, err := pricing.NewEstimator().Estimate(ctx, budgetProfile(), testNow)
	rq.NoError(err)

	rq.InDelta(sparse.BasePricePerOccupant*0.90, sparse.RecommendedRange.Min, 0.05)
	rq.InDelta(sparse.BasePricePerOccupant*1.10, sparse.RecommendedRange.Max, 0.05)
}

func TestEstimateDeterministic(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	estimator := pricing.NewEstimator()

	first, err := estimator.Estimate(ctx, primeProfile(), testNow)
	rq.NoError(err)

	second, err := estimator.Estimate(ctx, primeProfile(), testNow)
	rq.NoError(err)

	rq.Equal(first, second)
}

func TestEstimateUniversityRate(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	standard, err := pricing.NewEstimator().Estimate(ctx, primeProfile(), testNow)
	rq.NoError(err)

	boosted, err := pricing.NewEstimator().
		WithUniversityRate("University of Colombo", 15000).
		Estimate(ctx, primeProfile(), testNow)
	rq.NoError(err)

	rq.Greater(boosted.BasePricePerOccupant, standard.BasePricePerOccupant)
}
