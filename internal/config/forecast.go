package config

import "time"

type Forecast struct {
	AvgRoomPrice float64       `env:"FORECAST_AVG_ROOM_PRICE" envDefault:"18000"`
	HorizonDays  int           `env:"FORECAST_HORIZON_DAYS" envDefault:"30"`
	CacheTTL     time.Duration `env:"FORECAST_CACHE_TTL" envDefault:"15m"`

	// ModelServiceURL points at an external booking-model service. Empty
	// means the local calendar model only.
	ModelServiceURL   string `env:"FORECAST_MODEL_URL"`
	ModelServiceToken string `env:"FORECAST_MODEL_TOKEN"`
}
