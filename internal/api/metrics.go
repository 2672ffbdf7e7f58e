package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationsScored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendoreval_evaluations_scored_total",
		Help: "Evaluations scored, by global grade.",
	}, []string{"grade"})

	evaluationsExported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendoreval_evaluations_exported_total",
		Help: "CSV exports produced.",
	})

	classifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendoreval_classifications_total",
		Help: "Suggested ratings computed, by calculator kind and rating.",
	}, []string{"kind", "rating"})

	requestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendoreval_request_errors_total",
		Help: "Requests rejected, by HTTP status.",
	}, []string{"status"})

	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendoreval_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	})
)
