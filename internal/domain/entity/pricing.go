package entity

// PricingResult is assembled fresh per estimation request and returned as a
// whole; there are no partially-filled results.
type PricingResult struct {
	AmenityScore  float64 // 0..10
	LocationScore float64 // 0..10
	ReviewScore   float64 // 0..10

	// BasePricePerOccupant is the current-month price for one occupant,
	// currency-agnostic and never below the configured floor.
	BasePricePerOccupant float64

	LocationInfo LocationInfo
	RoomInfo     RoomInfo

	Prices           PredictedPrices
	RecommendedRange PriceRange

	// AmenitiesList holds display labels of the amenities present, in the
	// fixed table order.
	AmenitiesList []string
}

// LocationInfo is derived display metadata for the distance tier.
type LocationInfo struct {
	Category    string
	Description string
	Factor      float64
}

// RoomInfo is derived display metadata for the room configuration.
type RoomInfo struct {
	Description      string
	TotalPriceFactor float64
	PerPersonFactor  float64
	MaxSharing       int
}

type PredictedPrices struct {
	LastMonth        PricePoint
	Current          PricePoint
	NextMonth        PricePoint
	NextYearEstimate float64
	NextYearTotal    float64
}

// PricePoint is one month on the price trajectory. ChangeFromPrevious is the
// signed percent difference against the preceding month; it is zero for the
// earliest point.
type PricePoint struct {
	Month              string
	Price              float64
	TotalRoomPrice     float64
	SeasonalFactor     float64
	Reason             string
	ChangeFromPrevious float64
}

type PriceRange struct {
	Min float64
	Max float64
}
