package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Pricing engine.
	InvalidNumSharing failure.ErrorCode = "InvalidNumSharing"
	InvalidDistance   failure.ErrorCode = "InvalidDistance"
	ComputationError  failure.ErrorCode = "ComputationError"

	// Booking forecast.
	InvalidStartDate    failure.ErrorCode = "InvalidStartDate"
	ForecastUnavailable failure.ErrorCode = "ForecastUnavailable"
)
