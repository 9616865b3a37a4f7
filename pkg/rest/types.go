// Wire types for the pricing API. Field names follow the public contract,
// snake_case throughout.
package rest

// PredictPriceRequest is the attribute bag posted by listing forms. Optional
// numeric fields are pointers; absent values are defaulted, not rejected.
type PredictPriceRequest struct {
	RoomType   string           `json:"room_type"`
	NumSharing *int             `json:"num_sharing" validate:"omitempty,gte=1"`
	Location   LocationPayload  `json:"location"`
	Amenities  AmenitiesPayload `json:"amenities"`
	Reviews    ReviewsPayload   `json:"reviews"`
}

type LocationPayload struct {
	University          string   `json:"university"`
	DistanceToUni       *float64 `json:"distance_to_uni" validate:"omitempty,gte=0"`
	DistanceToTransport *float64 `json:"distance_to_transport" validate:"omitempty,gte=0"`
	SafetyScore         *int     `json:"safety_score"`
	IsMainRoad          bool     `json:"is_main_road"`
	IsResidentialArea   bool     `json:"is_residential_area"`
}

type AmenitiesPayload struct {
	HasWifi             bool `json:"has_wifi"`
	HasAttachedBathroom bool `json:"has_attached_bathroom"`
	HasAC               bool `json:"has_ac"`
	HasKitchen          bool `json:"has_kitchen"`
	HasLaundry          bool `json:"has_laundry"`
	HasParking          bool `json:"has_parking"`
	MealsProvided       bool `json:"meals_provided"`
	HasStudyTable       bool `json:"has_study_table"`
	HasCupboard         bool `json:"has_cupboard"`
}

type ReviewsPayload struct {
	OverallRating        *float64 `json:"overall_rating"`
	NumReviews           *int     `json:"num_reviews"`
	LandlordResponseTime *float64 `json:"landlord_response_time"`
	ValueRating          *float64 `json:"value_rating"`
	MaintenanceRating    *float64 `json:"maintenance_rating"`
	CleanlinessRating    *float64 `json:"cleanliness_rating"`
}

type PredictPriceResponse struct {
	RecommendedRange PriceRange      `json:"recommended_range"`
	LocationInfo     LocationInfo    `json:"location_info"`
	RoomInfo         RoomInfo        `json:"room_info"`
	PredictedPrices  PredictedPrices `json:"predicted_prices"`
	AmenityScore     float64         `json:"amenity_score"`
	LocationScore    float64         `json:"location_score"`
	ReviewScore      float64         `json:"review_score"`
	AmenitiesList    []string        `json:"amenities_list"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type LocationInfo struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

type RoomInfo struct {
	Description string `json:"description"`
}

type PredictedPrices struct {
	LastMonth        MonthPrice `json:"last_month"`
	Current          MonthPrice `json:"current"`
	NextMonth        MonthPrice `json:"next_month"`
	NextYearEstimate float64    `json:"next_year_estimate"`
	NextYearTotal    float64    `json:"next_year_total"`
}

// MonthPrice carries one month of the trajectory. ChangeFromLast is set on
// the current month, ChangeFromCurrent on the next month; the last month has
// neither.
type MonthPrice struct {
	Month             string   `json:"month"`
	Price             float64  `json:"price"`
	TotalRoomPrice    float64  `json:"total_room_price"`
	SeasonalFactor    float64  `json:"seasonal_factor"`
	Reason            string   `json:"reason"`
	ChangeFromLast    *float64 `json:"change_from_last,omitempty"`
	ChangeFromCurrent *float64 `json:"change_from_current,omitempty"`
}

type ForecastRequest struct {
	StartDate string `json:"start_date" validate:"required"`
}

type ForecastResponse struct {
	Success  bool          `json:"success"`
	Forecast []ForecastDay `json:"forecast"`
}

type ForecastDay struct {
	Date              string  `json:"date"`
	PredictedBookings int     `json:"predicted_bookings"`
	PredictedRevenue  float64 `json:"predicted_revenue"`
}

// Error is the structured error envelope.
type Error struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}
