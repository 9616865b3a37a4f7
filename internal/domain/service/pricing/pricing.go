package pricing

import (
	"context"
	"math"
	"time"

	"unistay/internal/domain"
	"unistay/internal/domain/entity"
	"unistay/pkg/contextx"
	"unistay/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	defaultBaseRate      = 10000.0
	defaultPriceFloor    = 1000.0
	defaultInflationRate = 0.08

	// Sub-score leverage on the base rate.
	amenityMultiplier  = 0.30
	locationMultiplier = 0.25
	reviewMultiplier   = 0.15

	// Recommended-range band around the base price. With enough review data
	// the band tightens.
	defaultRangeBand     = 0.10
	narrowRangeBand      = 0.05
	narrowBandMinReviews = 25
)

// Estimator turns a property profile into a priced recommendation. It holds
// only fixed coefficients, so a single instance is safe for concurrent use.
type Estimator struct {
	baseRate        float64
	universityRates map[string]float64
	priceFloor      float64
	inflationRate   float64
}

func NewEstimator() *Estimator {
	return &Estimator{
		baseRate:        defaultBaseRate,
		universityRates: map[string]float64{},
		priceFloor:      defaultPriceFloor,
		inflationRate:   defaultInflationRate,
	}
}

func (e *Estimator) WithBaseRate(rate float64) *Estimator {
	e.baseRate = rate
	return e
}

// WithUniversityRate overrides the reference rate for one university.
func (e *Estimator) WithUniversityRate(university string, rate float64) *Estimator {
	e.universityRates[university] = rate
	return e
}

func (e *Estimator) WithPriceFloor(floor float64) *Estimator {
	e.priceFloor = floor
	return e
}

func (e *Estimator) WithInflationRate(rate float64) *Estimator {
	e.inflationRate = rate
	return e
}

// Estimate runs the pricing pipeline: sub-scores, tiered base price,
// temporal projection, room aggregation. The reference month comes from now,
// which is the only non-profile input; identical arguments produce identical
// results.
func (e *Estimator) Estimate(ctx context.Context, profile entity.PropertyProfile, now time.Time) (entity.PricingResult, error) {
	amenity := amenityScore(profile.Amenities)
	location := locationScore(profile.Location)
	review := reviewScore(profile.Reviews)

	tier := distanceCategory(profile.Location.DistanceToUniKm)
	room := roomInfo(profile.RoomType, profile.NumSharing)

	rate := e.tierBaseRate(profile.Location.University)
	if rate <= 0 || room.PerPersonFactor <= 0 {
		return entity.PricingResult{}, domain.NewError(errcodes.ComputationError,
			"pricing coefficients misconfigured")
	}

	base := rate * tier.Factor *
		(1 + amenity/10*amenityMultiplier) *
		(1 + location/10*locationMultiplier) *
		(1 + (review-5)/5*reviewMultiplier)

	perOccupant := math.Max(base*room.PerPersonFactor, e.priceFloor)

	prices, err := e.projectPrices(perOccupant, profile.NumSharing, now)
	if err != nil {
		return entity.PricingResult{}, err
	}

	band := defaultRangeBand
	if profile.Reviews.NumReviews >= narrowBandMinReviews {
		band = narrowRangeBand
	}

	result := entity.PricingResult{
		AmenityScore:         round2(amenity),
		LocationScore:        round2(location),
		ReviewScore:          round2(review),
		BasePricePerOccupant: round2(perOccupant),
		LocationInfo:         tier,
		RoomInfo:             room,
		Prices:               prices,
		RecommendedRange: entity.PriceRange{
			Min: round2(perOccupant * (1 - band)),
			Max: round2(perOccupant * (1 + band)),
		},
		AmenitiesList: amenityLabels(profile.Amenities),
	}

	logger(ctx).Debug("price estimated",
		"university", profile.Location.University,
		"room_type", profile.RoomType.String(),
		"base_price", result.BasePricePerOccupant,
	)

	return result, nil
}

// projectPrices derives the month-over-month trajectory and the inflation
// adjusted next-year estimate from the current per-occupant price.
func (e *Estimator) projectPrices(currentPrice float64, numSharing int, now time.Time) (entity.PredictedPrices, error) {
	lastMonth := now.AddDate(0, 0, -30)
	nextMonth := now.AddDate(0, 0, 30)

	currentFactor := SeasonalFactor(now.Month())
	if currentFactor <= 0 {
		return entity.PredictedPrices{}, domain.NewError(errcodes.ComputationError,
			"seasonal multiplier table misconfigured")
	}

	// Totals multiply the already-rounded per-occupant price, so every
	// reported total is exactly price times occupancy.
	lastPrice := round2(currentPrice * SeasonalFactor(lastMonth.Month()) / currentFactor)
	nextPrice := round2(currentPrice * SeasonalFactor(nextMonth.Month()) / currentFactor)
	current := round2(currentPrice)

	nextYear := round2(currentPrice * (1 + e.inflationRate))
	sharing := float64(numSharing)

	return entity.PredictedPrices{
		LastMonth: entity.PricePoint{
			Month:          lastMonth.Month().String(),
			Price:          lastPrice,
			TotalRoomPrice: lastPrice * sharing,
			SeasonalFactor: SeasonalFactor(lastMonth.Month()),
			Reason:         SeasonalReason(lastMonth.Month()),
		},
		Current: entity.PricePoint{
			Month:              now.Month().String(),
			Price:              current,
			TotalRoomPrice:     current * sharing,
			SeasonalFactor:     currentFactor,
			Reason:             SeasonalReason(now.Month()),
			ChangeFromPrevious: percentChange(lastPrice, current),
		},
		NextMonth: entity.PricePoint{
			Month:              nextMonth.Month().String(),
			Price:              nextPrice,
			TotalRoomPrice:     nextPrice * sharing,
			SeasonalFactor:     SeasonalFactor(nextMonth.Month()),
			Reason:             SeasonalReason(nextMonth.Month()),
			ChangeFromPrevious: percentChange(current, nextPrice),
		},
		NextYearEstimate: nextYear,
		NextYearTotal:    nextYear * sharing,
	}, nil
}

func (e *Estimator) tierBaseRate(university string) float64 {
	if rate, ok := e.universityRates[university]; ok {
		return rate
	}
	return e.baseRate
}

// percentChange is the signed percent difference, rounded to two decimals.
func percentChange(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return round2(100 * (to - from) / from)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
