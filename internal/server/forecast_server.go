package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"

	"unistay/internal/domain/entity"
	"unistay/pkg/errcodes"
	"unistay/pkg/httpx/reply"
	"unistay/pkg/httpx/req"
	"unistay/pkg/rest"
)

type bookingForecaster interface {
	Forecast(ctx context.Context, startDate time.Time) (entity.BookingForecast, error)
}

type ForecastServer struct {
	forecaster bookingForecaster
}

func NewForecastServer(forecaster bookingForecaster) ForecastServer {
	return ForecastServer{
		forecaster: forecaster,
	}
}

func (s ForecastServer) postPredictBookings(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ForecastRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	startDate, err := time.Parse(time.DateOnly, request.StartDate)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("time.Parse: %w", err),
			failure.WithCode(errcodes.InvalidStartDate),
			failure.WithDescription("start_date must be formatted YYYY-MM-DD"),
		)
	}

	forecast, err := s.forecaster.Forecast(ctx, startDate)
	if err != nil {
		return fmt.Errorf("forecaster.Forecast: %w", err)
	}

	predictionsTotal.WithLabelValues("predict-bookings").Inc()

	reply.JSON(ctx, w, http.StatusOK, newRESTForecast(forecast))

	return nil
}
