// SPDX-License-Identifier: MIT
// Package: regcolor/pipeline

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsSubsystem = "pipeline"

// Instance status label values.
const (
	StatusOK     = "ok"
	StatusEmpty  = "empty"
	StatusFailed = "failed"
)

// Stage label values of InvalidPercent.
const (
	StageBefore = "before"
	StageAfter  = "after"
)

// Metrics holds the Prometheus collectors of a Pipeline.
type Metrics struct {
	Instances       *prometheus.CounterVec
	Conflicts       prometheus.Counter
	Overrides       prometheus.Counter
	ColorsAllocated prometheus.Counter
	InvalidPercent  *prometheus.HistogramVec
	Duration        prometheus.Histogram
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Instances: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "instances_total",
			Help:      "Instances processed, by outcome",
		}, []string{"status"}),
		Conflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "conflicts_total",
			Help:      "Conflicting pairs met by the resolver",
		}),
		Overrides: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "overrides_total",
			Help:      "Node colors rewritten by the resolver",
		}),
		ColorsAllocated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "colors_allocated_total",
			Help:      "Colors allocated beyond the predicted maximum",
		}),
		InvalidPercent: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "invalid_edge_percent",
			Help:      "Share of conflicting edges per instance, before and after resolution",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}, []string{"stage"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "instance_duration_seconds",
			Help:      "Wall time per processed instance",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
}
