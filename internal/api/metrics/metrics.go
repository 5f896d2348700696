// Package metrics defines and registers all custom Prometheus metrics for the
// course portal. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry via promauto;
// the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts sign-in attempts.
// Labels:
//   - provider: "credentials" or "google"
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of sign-in attempts, by provider and outcome.",
	},
	[]string{"provider", "outcome"},
)

// GateDecisionsTotal counts access-gate outcomes per request.
// Label:
//   - outcome: "allow", "redirect_login", or "redirect_home"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access gate decisions, by outcome.",
	},
	[]string{"outcome"},
)

// TokenVerificationsTotal counts session token checks at the gate.
// Label:
//   - result: "ok", "invalid", or "revoked"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)

// BackendRequestDuration measures latency of calls to the backend API.
// Label:
//   - endpoint: backend path (e.g. "/users/login")
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of outbound requests to the backend API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// AuditQueueDepth tracks pending audit events per dispatcher worker.
// Label:
//   - worker_id: numeric worker index
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of auth events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
