// Package metrics holds the portal's prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_login_attempts_total",
		Help: "Login attempts by outcome (success or failure).",
	}, []string{"outcome"})

	Impersonations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_impersonations_total",
		Help: "Impersonation overrides started or swapped.",
	})

	SessionRestores = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_session_restores_total",
		Help: "Sessions restored from the persisted store at startup.",
	})
)
