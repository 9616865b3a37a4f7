package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"unistay/internal/config"
	"unistay/internal/domain/service/forecast"
	"unistay/internal/domain/service/pricing"
	"unistay/internal/infrastructure/modelclient"
	"unistay/internal/server"
	"unistay/pkg/application/modules"
	"unistay/pkg/logx"
	"unistay/pkg/middlewarex"
)

const httpServerReadHeaderTimeout = 5 * time.Second

func Run(ctx context.Context) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Domain services
	estimator := pricing.NewEstimator().
		WithBaseRate(cfg.Pricing.BaseRate).
		WithPriceFloor(cfg.Pricing.PriceFloor).
		WithInflationRate(cfg.Pricing.AnnualInflationRate)

	for university, rate := range cfg.Pricing.UniversityRates {
		estimator = estimator.WithUniversityRate(university, rate)
	}

	forecaster := forecast.NewForecaster().
		WithAvgRoomPrice(cfg.Forecast.AvgRoomPrice).
		WithHorizon(cfg.Forecast.HorizonDays).
		WithCacheTTL(cfg.Forecast.CacheTTL)

	if cfg.Forecast.ModelServiceURL != "" {
		forecaster = forecaster.WithModelClient(modelclient.New(
			cfg.Forecast.ModelServiceURL,
			cfg.Forecast.ModelServiceToken,
			cfg.Server.LogFieldMaxLen,
		))
	}

	// 3. HTTP server
	srv := server.NewServer(
		server.NewPricingServer(estimator),
		server.NewForecastServer(forecaster),
	)

	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, cfg.Server.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.Server.LogFieldMaxLen),
		middlewarex.Recovery,
	)
	srv.RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:              cfg.Server.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
	}

	// 4. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}.Run(ctx, g, httpServer)

	modules.MetricServer{
		ListenAddress: cfg.Server.MetricListenAddress,
	}.Run(ctx, g)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
