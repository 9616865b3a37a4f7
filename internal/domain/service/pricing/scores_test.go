package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"unistay/internal/domain/entity"
	"unistay/pkg/tests"
)

func allAmenities() entity.Amenities {
	return entity.Amenities{
		Wifi:             true,
		AttachedBathroom: true,
		AC:               true,
		Kitchen:          true,
		Laundry:          true,
		Parking:          true,
		MealsProvided:    true,
		StudyTable:       true,
		Cupboard:         true,
	}
}

func randomAmenities(random tests.Randomizer) entity.Amenities {
	return entity.Amenities{
		Wifi:             random.Bool(),
		AttachedBathroom: random.Bool(),
		AC:               random.Bool(),
		Kitchen:          random.Bool(),
		Laundry:          random.Bool(),
		Parking:          random.Bool(),
		MealsProvided:    random.Bool(),
		StudyTable:       random.Bool(),
		Cupboard:         random.Bool(),
	}
}

func TestAmenityScoreBounds(t *testing.T) {
	rq := require.New(t)

	rq.Equal(0.0, amenityScore(entity.Amenities{}))
	rq.InDelta(10.0, amenityScore(allAmenities()), 1e-9)

	random := tests.NewRandomizer()

	for i := 0; i < 200; i++ {
		score := amenityScore(randomAmenities(random))

		rq.GreaterOrEqual(score, 0.0)
		rq.LessOrEqual(score, 10.0)
	}
}

func TestAmenityScoreMonotonic(t *testing.T) {
	rq := require.New(t)

	random := tests.NewRandomizer()

	enable := []func(*entity.Amenities){
		func(a *entity.Amenities) { a.Wifi = true },
		func(a *entity.Amenities) { a.AttachedBathroom = true },
		func(a *entity.Amenities) { a.AC = true },
		func(a *entity.Amenities) { a.Kitchen = true },
		func(a *entity.Amenities) { a.Laundry = true },
		func(a *entity.Amenities) { a.Parking = true },
		func(a *entity.Amenities) { a.MealsProvided = true },
		func(a *entity.Amenities) { a.StudyTable = true },
		func(a *entity.Amenities) { a.Cupboard = true },
	}

	for i := 0; i < 100; i++ {
		base := randomAmenities(random)
		baseScore := amenityScore(base)

		for _, set := range enable {
			richer := base
			set(&richer)

			rq.GreaterOrEqual(amenityScore(richer), baseScore)
		}
	}
}

func TestAmenityLabelsOrdered(t *testing.T) {
	rq := require.New(t)

	rq.Empty(amenityLabels(entity.Amenities{}))

	labels := amenityLabels(allAmenities())
	rq.Equal([]string{
		"WiFi", "Attached Bathroom", "AC", "Kitchen", "Laundry",
		"Parking", "Meals Provided", "Study Table", "Cupboard",
	}, labels)

	rq.Equal([]string{"AC", "Meals Provided"},
		amenityLabels(entity.Amenities{AC: true, MealsProvided: true}))
}

func TestLocationScore(t *testing.T) {
	rq := require.New(t)

	near := entity.Location{DistanceToUniKm: 0, DistanceToTransportKm: 0, SafetyScore: 10}
	far := entity.Location{DistanceToUniKm: 10, DistanceToTransportKm: 10, SafetyScore: 1}

	rq.Greater(locationScore(near), locationScore(far))

	// Safety never hurts.
	for safety := 1; safety < 10; safety++ {
		lower := entity.Location{DistanceToUniKm: 3, DistanceToTransportKm: 1, SafetyScore: safety}
		higher := lower
		higher.SafetyScore = safety + 1

		rq.GreaterOrEqual(locationScore(higher), locationScore(lower))
	}

	// Bonuses never hurt.
	plain := entity.Location{DistanceToUniKm: 2, SafetyScore: 6}
	onMainRoad := plain
	onMainRoad.IsMainRoad = true
	residential := plain
	residential.IsResidentialArea = true

	rq.GreaterOrEqual(locationScore(onMainRoad), locationScore(plain))
	rq.GreaterOrEqual(locationScore(residential), locationScore(plain))

	// Extremes stay clamped.
	rq.Equal(0.0, locationScore(entity.Location{DistanceToUniKm: 50, SafetyScore: 1}))
	rq.LessOrEqual(locationScore(entity.Location{SafetyScore: 10, IsMainRoad: true, IsResidentialArea: true}), 10.0)
}

func TestReviewScore(t *testing.T) {
	rq := require.New(t)

	perfect := entity.Reviews{
		OverallRating:           5,
		NumReviews:              50,
		LandlordResponseTimeHrs: 1,
		ValueRating:             5,
		MaintenanceRating:       5,
		CleanlinessRating:       5,
	}
	rq.InDelta(10.0, reviewScore(perfect), 1e-9)

	// No reviews at all lands exactly on the neutral midpoint.
	unreviewed := perfect
	unreviewed.NumReviews = 0
	rq.InDelta(5.0, reviewScore(unreviewed), 1e-9)

	// Sparse data is pulled toward the midpoint, not past it.
	sparse := perfect
	sparse.NumReviews = 2
	rq.Greater(reviewScore(sparse), 5.0)
	rq.Less(reviewScore(sparse), reviewScore(perfect))

	// Slow landlords cost points, bounded.
	slow := perfect
	slow.LandlordResponseTimeHrs = 96
	rq.Less(reviewScore(slow), reviewScore(perfect))
	rq.GreaterOrEqual(reviewScore(slow), reviewScore(perfect)-1.5)

	// Higher overall rating never lowers the score.
	for rating := 1.0; rating < 5.0; rating += 0.5 {
		lower := entity.Reviews{OverallRating: rating, NumReviews: 10, ValueRating: 3, MaintenanceRating: 3, CleanlinessRating: 3}
		higher := lower
		higher.OverallRating = rating + 0.5

		rq.GreaterOrEqual(reviewScore(higher), reviewScore(lower))
	}
}

func TestSubScoresAlwaysInRange(t *testing.T) {
	rq := require.New(t)

	random := tests.NewRandomizer()

	for i := 0; i < 200; i++ {
		location := entity.Location{
			DistanceToUniKm:       random.Float64() * 30,
			DistanceToTransportKm: random.Float64() * 15,
			SafetyScore:           1 + int(random.Float64()*9),
			IsMainRoad:            random.Bool(),
			IsResidentialArea:     random.Bool(),
		}
		reviews := entity.Reviews{
			OverallRating:           1 + random.Float64()*4,
			NumReviews:              int(random.Float64() * 100),
			LandlordResponseTimeHrs: random.Float64() * 120,
			ValueRating:             1 + random.Float64()*4,
			MaintenanceRating:       1 + random.Float64()*4,
			CleanlinessRating:       1 + random.Float64()*4,
		}

		for _, score := range []float64{
			amenityScore(randomAmenities(random)),
			locationScore(location),
			reviewScore(reviews),
		} {
			rq.GreaterOrEqual(score, 0.0)
			rq.LessOrEqual(score, 10.0)
		}
	}
}
