package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ForecastsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "powergrid_api_forecasts_computed_total",
		Help: "Total number of forecasts computed.",
	})
	ForecastsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "powergrid_api_forecasts_saved_total",
		Help: "Total number of forecasts persisted with their material lines.",
	})
	ForecastsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "powergrid_api_forecasts_failed_total",
		Help: "Total number of forecast failures (inference or persistence).",
	})
	InferenceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "powergrid_api_inference_duration_seconds",
		Help:    "Duration of one model inference call.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
	})
)
