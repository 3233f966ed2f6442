// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tipcalc"

var (
	// RPCRequests counts finished RPCs by procedure and Connect code ("ok" on success).
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rpc_requests_total",
		Help:      "Finished RPCs by procedure and result code.",
	}, []string{"procedure", "code"})

	// RPCDuration observes RPC latency in seconds.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_duration_seconds",
		Help:      "RPC latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure"})

	// SessionsCreated counts sessions handed out by CreateSession.
	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Calculator sessions created.",
	})

	// SessionsDeleted counts sessions removed by DeleteSession.
	SessionsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_deleted_total",
		Help:      "Calculator sessions deleted.",
	})

	// InputsClamped counts numeric inputs that arrived out of range, by field.
	InputsClamped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inputs_clamped_total",
		Help:      "Numeric inputs clamped into their valid range.",
	}, []string{"field"})

	// CurrencySelections counts currency changes by selected code.
	CurrencySelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "currency_selections_total",
		Help:      "Currency selections by code.",
	}, []string{"currency"})
)
