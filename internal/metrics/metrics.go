package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RefreshTotal counts refresh runs by outcome
	RefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "countryfx_refresh_total",
			Help: "Total number of refresh runs",
		},
		[]string{"outcome"},
	)

	// RefreshDuration tracks end-to-end refresh processing time
	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "countryfx_refresh_duration_seconds",
			Help:    "Refresh processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SourceFetchDuration tracks upstream fetch time per source
	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "countryfx_source_fetch_duration_seconds",
			Help:    "Upstream fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// SourceErrorsTotal counts upstream fetch failures per source
	SourceErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "countryfx_source_errors_total",
			Help: "Total number of upstream fetch failures",
		},
		[]string{"source"},
	)

	// CountriesStored tracks the number of countries currently persisted
	CountriesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "countryfx_countries_stored",
			Help: "Number of countries currently persisted",
		},
	)

	// ArtifactRenderFailures counts summary image failures that were
	// swallowed by the refresh pipeline
	ArtifactRenderFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "countryfx_artifact_render_failures_total",
			Help: "Total number of summary image render or write failures",
		},
	)
)
