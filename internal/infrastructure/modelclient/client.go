package modelclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"unistay/internal/domain"
	"unistay/internal/domain/entity"
	"unistay/pkg/errcodes"
	"unistay/pkg/httpx"
	"unistay/pkg/lox"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const requestTimeout = 10 * time.Second

// Client talks to an external booking-model service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client with request/response logging. When apiToken is not
// empty every request carries it as a bearer token.
func New(baseURL string, apiToken string, logFieldMaxLen int) *Client {
	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithLogFieldMaxLen(logFieldMaxLen),
	)

	if apiToken != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, staticTokenAuthenticator{token: apiToken})
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   requestTimeout,
		},
	}
}

type predictRequest struct {
	StartDate   string `json:"start_date"`
	HorizonDays int    `json:"horizon_days"`
}

type predictResponse struct {
	Forecast []forecastDayPayload `json:"forecast"`
}

type forecastDayPayload struct {
	Date              string  `json:"date"`
	PredictedBookings int     `json:"predicted_bookings"`
	PredictedRevenue  float64 `json:"predicted_revenue"`
}

// PredictBookings implements forecast.ModelClient.
func (c *Client) PredictBookings(ctx context.Context, startDate time.Time, horizonDays int) ([]entity.ForecastDay, error) {
	body, err := json.Marshal(predictRequest{
		StartDate:   startDate.Format(time.DateOnly),
		HorizonDays: horizonDays,
	})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewError(errcodes.ForecastUnavailable,
			fmt.Sprintf("model service status %d", resp.StatusCode))
	}

	var payload predictResponse

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.WrapError(err, errcodes.ForecastUnavailable, "model service payload unreadable")
	}

	if len(payload.Forecast) != horizonDays {
		return nil, domain.NewError(errcodes.ForecastUnavailable,
			fmt.Sprintf("model service returned %d days, want %d", len(payload.Forecast), horizonDays))
	}

	days, err := lox.MapErr(payload.Forecast, func(day forecastDayPayload) (entity.ForecastDay, error) {
		date, err := time.Parse(time.DateOnly, day.Date)
		if err != nil {
			return entity.ForecastDay{}, fmt.Errorf("time.Parse(%q): %w", day.Date, err)
		}

		return entity.ForecastDay{
			Date:              date,
			PredictedBookings: day.PredictedBookings,
			PredictedRevenue:  day.PredictedRevenue,
		}, nil
	})
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ForecastUnavailable, "model service payload invalid")
	}

	return days, nil
}

type staticTokenAuthenticator struct {
	token string
}

func (a staticTokenAuthenticator) Authenticate(context.Context) error {
	return nil
}

func (a staticTokenAuthenticator) BearerToken() string {
	return a.token
}
