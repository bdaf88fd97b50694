package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "property_atlas_calculations_total",
		Help: "Calculations served, labeled by calculation type and outcome.",
	}, []string{"type", "status"})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "property_atlas_cache_hits_total",
		Help: "Calculation cache lookups, labeled by hit or miss.",
	}, []string{"result"})
)
