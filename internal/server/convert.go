package server

import (
	"time"

	"unistay/internal/domain/entity"
	"unistay/internal/domain/service/pricing"
	"unistay/pkg/lox"
	"unistay/pkg/rest"
)

func newAttributes(request rest.PredictPriceRequest) pricing.Attributes {
	return pricing.Attributes{
		RoomType:   request.RoomType,
		NumSharing: request.NumSharing,
		Location: pricing.LocationAttributes{
			University:          request.Location.University,
			DistanceToUni:       request.Location.DistanceToUni,
			DistanceToTransport: request.Location.DistanceToTransport,
			SafetyScore:         request.Location.SafetyScore,
			IsMainRoad:          request.Location.IsMainRoad,
			IsResidentialArea:   request.Location.IsResidentialArea,
		},
		Amenities: pricing.AmenityAttributes{
			HasWifi:             request.Amenities.HasWifi,
			HasAttachedBathroom: request.Amenities.HasAttachedBathroom,
			HasAC:               request.Amenities.HasAC,
			HasKitchen:          request.Amenities.HasKitchen,
			HasLaundry:          request.Amenities.HasLaundry,
			HasParking:          request.Amenities.HasParking,
			MealsProvided:       request.Amenities.MealsProvided,
			HasStudyTable:       request.Amenities.HasStudyTable,
			HasCupboard:         request.Amenities.HasCupboard,
		},
		Reviews: pricing.ReviewAttributes{
			OverallRating:        request.Reviews.OverallRating,
			NumReviews:           request.Reviews.NumReviews,
			LandlordResponseTime: request.Reviews.LandlordResponseTime,
			ValueRating:          request.Reviews.ValueRating,
			MaintenanceRating:    request.Reviews.MaintenanceRating,
			CleanlinessRating:    request.Reviews.CleanlinessRating,
		},
	}
}

func newRESTPricingResult(result entity.PricingResult) rest.PredictPriceResponse {
	return rest.PredictPriceResponse{
		RecommendedRange: rest.PriceRange{
			Min: result.RecommendedRange.Min,
			Max: result.RecommendedRange.Max,
		},
		LocationInfo: rest.LocationInfo{
			Category:    result.LocationInfo.Category,
			Description: result.LocationInfo.Description,
		},
		RoomInfo: rest.RoomInfo{
			Description: result.RoomInfo.Description,
		},
		PredictedPrices: rest.PredictedPrices{
			LastMonth:        newRESTMonthPrice(result.Prices.LastMonth, nil, nil),
			Current:          newRESTMonthPrice(result.Prices.Current, &result.Prices.Current.ChangeFromPrevious, nil),
			NextMonth:        newRESTMonthPrice(result.Prices.NextMonth, nil, &result.Prices.NextMonth.ChangeFromPrevious),
			NextYearEstimate: result.Prices.NextYearEstimate,
			NextYearTotal:    result.Prices.NextYearTotal,
		},
		AmenityScore:  result.AmenityScore,
		LocationScore: result.LocationScore,
		ReviewScore:   result.ReviewScore,
		AmenitiesList: result.AmenitiesList,
	}
}

func newRESTMonthPrice(point entity.PricePoint, changeFromLast, changeFromCurrent *float64) rest.MonthPrice {
	return rest.MonthPrice{
		Month:             point.Month,
		Price:             point.Price,
		TotalRoomPrice:    point.TotalRoomPrice,
		SeasonalFactor:    point.SeasonalFactor,
		Reason:            point.Reason,
		ChangeFromLast:    changeFromLast,
		ChangeFromCurrent: changeFromCurrent,
	}
}

func newRESTForecast(forecast entity.BookingForecast) rest.ForecastResponse {
	return rest.ForecastResponse{
		Success: true,
		Forecast: lox.Map(forecast.Days, func(day entity.ForecastDay) rest.ForecastDay {
			return rest.ForecastDay{
				Date:              day.Date.Format(time.DateOnly),
				PredictedBookings: day.PredictedBookings,
				PredictedRevenue:  day.PredictedRevenue,
			}
		}),
	}
}
