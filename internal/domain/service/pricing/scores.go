package pricing

import (
	"github.com/samber/lo"

	"unistay/internal/domain/entity"
)

// Amenity weights sum to exactly 10, so a fully equipped room scores 10.
// High-impact amenities (AC, attached bathroom, meals) weigh more than
// furniture. Adding an amenity can only add its weight, which keeps the
// score monotonic.
var amenityTable = []amenityWeight{
	{"WiFi", 1.2, func(a entity.Amenities) bool { return a.Wifi }},
	{"Attached Bathroom", 1.6, func(a entity.Amenities) bool { return a.AttachedBathroom }},
	{"AC", 1.6, func(a entity.Amenities) bool { return a.AC }},
	{"Kitchen", 1.1, func(a entity.Amenities) bool { return a.Kitchen }},
	{"Laundry", 0.9, func(a entity.Amenities) bool { return a.Laundry }},
	{"Parking", 0.7, func(a entity.Amenities) bool { return a.Parking }},
	{"Meals Provided", 1.4, func(a entity.Amenities) bool { return a.MealsProvided }},
	{"Study Table", 0.8, func(a entity.Amenities) bool { return a.StudyTable }},
	{"Cupboard", 0.7, func(a entity.Amenities) bool { return a.Cupboard }},
}

type amenityWeight struct {
	label   string
	weight  float64
	present func(entity.Amenities) bool
}

func amenityScore(a entity.Amenities) float64 {
	var score float64
	for _, row := range amenityTable {
		if row.present(a) {
			score += row.weight
		}
	}
	return clamp(score, 0, 10)
}

// amenityLabels lists present amenities in table order, for display.
func amenityLabels(a entity.Amenities) []string {
	return lo.FilterMap(amenityTable, func(row amenityWeight, _ int) (string, bool) {
		return row.label, row.present(a)
	})
}

const (
	locationBase         = 4.0
	uniDistancePenalty   = 0.35 // per km
	transDistancePenalty = 0.25 // per km
	safetyWeight         = 0.55 // per safety point, 1..10
	mainRoadBonus        = 0.5
	residentialAreaBonus = 0.5
)

// locationScore decreases with distance and grows with safety. A property at
// the campus gate with top safety lands near 10; a remote one with safety 1
// bottoms out at 0.
func locationScore(l entity.Location) float64 {
	score := locationBase
	score -= uniDistancePenalty * l.DistanceToUniKm
	score -= transDistancePenalty * l.DistanceToTransportKm
	score += safetyWeight * float64(l.SafetyScore)

	if l.IsMainRoad {
		score += mainRoadBonus
	}
	if l.IsResidentialArea {
		score += residentialAreaBonus
	}

	return clamp(score, 0, 10)
}

const (
	overallWeight     = 0.40
	valueWeight       = 0.25
	maintenanceWeight = 0.20
	cleanlinessWeight = 0.15

	dampingMinReviews  = 5   // fewer reviews pull the score toward neutral
	neutralScore       = 5.0
	responseGraceHrs   = 24.0
	responsePenaltyHrs = 24.0 // penalty grows per this many hours past grace
	responsePenaltyMax = 1.5
)

// reviewScore rescales the weighted [1,5] ratings to [0,10], damps sparse
// data toward the neutral midpoint, and penalises slow landlord response.
func reviewScore(r entity.Reviews) float64 {
	weighted := overallWeight*r.OverallRating +
		valueWeight*r.ValueRating +
		maintenanceWeight*r.MaintenanceRating +
		cleanlinessWeight*r.CleanlinessRating

	score := (weighted - 1) / 4 * 10

	if r.NumReviews < dampingMinReviews {
		confidence := float64(r.NumReviews) / float64(dampingMinReviews)
		score = neutralScore + (score-neutralScore)*confidence
	}

	if r.LandlordResponseTimeHrs > responseGraceHrs {
		penalty := (r.LandlordResponseTimeHrs - responseGraceHrs) / responsePenaltyHrs * 0.5
		score -= min(penalty, responsePenaltyMax)
	}

	return clamp(score, 0, 10)
}

func clamp(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
