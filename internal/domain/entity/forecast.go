package entity

import "time"

// BookingForecast is a daily booking and revenue projection starting at
// StartDate, inclusive.
type BookingForecast struct {
	StartDate time.Time
	Days      []ForecastDay
}

type ForecastDay struct {
	Date              time.Time
	PredictedBookings int
	PredictedRevenue  float64
}
