// Package metrics defines and registers all custom Prometheus metrics for
// the user API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userapi"

// RegistrationsTotal counts successfully created accounts.
// Label:
//   - source: "register" (public endpoint) or "admin" (user CRUD)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, labelled by source.",
	},
	[]string{"source"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token checks on the auth gate.
// Label:
//   - result: "ok", "invalid" or "expired"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of token verifications, labelled by result.",
	},
	[]string{"result"},
)

// AuthzDenialsTotal counts requests rejected by the RBAC gate.
// Label:
//   - path: the registered route path (e.g. "/auth/admin-data")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of requests rejected for insufficient role.",
	},
	[]string{"path"},
)
