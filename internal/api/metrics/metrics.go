// Package metrics defines and registers all custom Prometheus metrics for the
// to-do API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at init time and
// are served on the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todoapp"

// UsersRegisteredTotal counts successful sign-ups.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of successfully registered users.",
	},
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

// TokenRefreshesTotal counts access tokens minted through /refresh.
var TokenRefreshesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of access tokens issued via refresh.",
	},
)

// ToDosCreatedTotal counts newly created to-do items.
var ToDosCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "todos_created_total",
		Help:      "Total number of to-do items created.",
	},
)
