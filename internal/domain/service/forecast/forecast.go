package forecast

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/patrickmn/go-cache"

	"unistay/internal/domain/entity"
	"unistay/internal/domain/service/pricing"
	"unistay/pkg/contextx"
	"unistay/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	defaultAvgRoomPrice = 18000.0
	defaultHorizonDays  = 30
	defaultCacheTTL     = 15 * time.Minute

	baselineBookings = 12.0
	weekendUplift    = 1.35
)

// ModelClient is a remote booking-model service. The forecaster treats it as
// optional: when absent or failing, the local calendar model answers.
type ModelClient interface {
	PredictBookings(ctx context.Context, startDate time.Time, horizonDays int) ([]entity.ForecastDay, error)
}

// Forecaster projects daily bookings and revenue over a fixed horizon.
type Forecaster struct {
	modelClient  ModelClient
	avgRoomPrice float64
	horizonDays  int
	cache        *cache.Cache
}

func NewForecaster() *Forecaster {
	return &Forecaster{
		avgRoomPrice: defaultAvgRoomPrice,
		horizonDays:  defaultHorizonDays,
		cache:        cache.New(defaultCacheTTL, defaultCacheTTL),
	}
}

func (f *Forecaster) WithModelClient(client ModelClient) *Forecaster {
	f.modelClient = client
	return f
}

func (f *Forecaster) WithAvgRoomPrice(price float64) *Forecaster {
	f.avgRoomPrice = price
	return f
}

func (f *Forecaster) WithHorizon(days int) *Forecaster {
	if days > 0 {
		f.horizonDays = days
	}
	return f
}

func (f *Forecaster) WithCacheTTL(ttl time.Duration) *Forecaster {
	f.cache = cache.New(ttl, ttl)
	return f
}

// Forecast returns the booking projection starting at startDate. Results are
// cached per start date; within the TTL the identical forecast is returned.
func (f *Forecaster) Forecast(ctx context.Context, startDate time.Time) (entity.BookingForecast, error) {
	startDate = startDate.Truncate(24 * time.Hour)
	key := startDate.Format(time.DateOnly)

	if cached, ok := f.cache.Get(key); ok {
		return cached.(entity.BookingForecast), nil
	}

	days := f.remoteForecast(ctx, startDate)
	if days == nil {
		days = f.localForecast(startDate)
	}

	result := entity.BookingForecast{
		StartDate: startDate,
		Days:      days,
	}

	f.cache.SetDefault(key, result)

	return result, nil
}

func (f *Forecaster) remoteForecast(ctx context.Context, startDate time.Time) []entity.ForecastDay {
	if f.modelClient == nil {
		return nil
	}

	days, err := f.modelClient.PredictBookings(ctx, startDate, f.horizonDays)
	if err != nil {
		logger(ctx).Warn("model service unavailable, using local model", logx.Error(err))
		return nil
	}

	// A forecast with the wrong horizon is as unusable as no forecast.
	if len(days) != f.horizonDays {
		logger(ctx).Warn("model service returned wrong horizon, using local model",
			slog.Int("got", len(days)),
			slog.Int("want", f.horizonDays),
		)

		return nil
	}

	return days
}

// localForecast is a deterministic calendar model: a baseline booking level
// modulated by the month's demand factor and a weekend uplift.
func (f *Forecaster) localForecast(startDate time.Time) []entity.ForecastDay {
	days := make([]entity.ForecastDay, 0, f.horizonDays)

	for i := 0; i < f.horizonDays; i++ {
		date := startDate.AddDate(0, 0, i)

		expected := baselineBookings * pricing.SeasonalFactor(date.Month())
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			expected *= weekendUplift
		}

		bookings := int(math.Round(expected))

		days = append(days, entity.ForecastDay{
			Date:              date,
			PredictedBookings: bookings,
			PredictedRevenue:  float64(bookings) * f.avgRoomPrice,
		})
	}

	return days
}
