package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"

	"unistay/internal/domain"
	"unistay/internal/domain/entity"
	"unistay/internal/domain/service/pricing"
	"unistay/pkg/errcodes"
	"unistay/pkg/httpx/reply"
	"unistay/pkg/httpx/req"
	"unistay/pkg/rest"
)

type priceEstimator interface {
	Estimate(ctx context.Context, profile entity.PropertyProfile, now time.Time) (entity.PricingResult, error)
}

type PricingServer struct {
	estimator priceEstimator
	now       func() time.Time
}

func NewPricingServer(estimator priceEstimator) PricingServer {
	return PricingServer{
		estimator: estimator,
		now:       time.Now,
	}
}

// WithClock fixes the reference time; tests use it to pin the current month.
func (s PricingServer) WithClock(now func() time.Time) PricingServer {
	s.now = now
	return s
}

func (s PricingServer) postPredictPrice(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PredictPriceRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	profile, err := pricing.Normalize(newAttributes(request))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("pricing.Normalize: %w", err),
			failure.WithCode(domainCode(err, errcodes.ValidationError)),
			failure.WithDescription(err.Error()),
		)
	}

	result, err := s.estimator.Estimate(ctx, profile, s.now())
	if err != nil {
		return fmt.Errorf("estimator.Estimate: %w", err)
	}

	predictionsTotal.WithLabelValues("predict-price").Inc()

	reply.JSON(ctx, w, http.StatusOK, newRESTPricingResult(result))

	return nil
}

// domainCode extracts the AppError code, falling back when the error carries
// none.
func domainCode(err error, fallback failure.ErrorCode) failure.ErrorCode {
	if code, ok := domain.GetCode(err); ok {
		return code
	}
	return fallback
}
