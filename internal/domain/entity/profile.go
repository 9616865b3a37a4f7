package entity

import "unistay/internal/domain/value"

// PropertyProfile is the canonical snapshot of a listing's pricing-relevant
// attributes. It is built once by the normalizer and never mutated.
type PropertyProfile struct {
	RoomType   value.RoomType
	NumSharing int
	Location   Location
	Amenities  Amenities
	Reviews    Reviews
}

type Location struct {
	University            string
	DistanceToUniKm       float64
	DistanceToTransportKm float64
	SafetyScore           int // 1..10
	IsMainRoad            bool
	IsResidentialArea     bool
}

type Amenities struct {
	Wifi             bool
	AttachedBathroom bool
	AC               bool
	Kitchen          bool
	Laundry          bool
	Parking          bool
	MealsProvided    bool
	StudyTable       bool
	Cupboard         bool
}

type Reviews struct {
	OverallRating           float64 // 1..5
	NumReviews              int
	LandlordResponseTimeHrs float64
	ValueRating             float64 // 1..5
	MaintenanceRating       float64 // 1..5
	CleanlinessRating       float64 // 1..5
}
