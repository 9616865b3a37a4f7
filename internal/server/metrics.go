package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var predictionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "unistay_predictions_total",
		Help: "Completed prediction requests by endpoint.",
	},
	[]string{"endpoint"},
)
