package server

// Server bundles the entity-specific HTTP servers behind one route
// registrar.
type Server struct {
	PricingServer
	ForecastServer
}

func NewServer(
	pricingServer PricingServer,
	forecastServer ForecastServer,
) Server {
	return Server{
		PricingServer:  pricingServer,
		ForecastServer: forecastServer,
	}
}
