// Package metrics holds the prometheus collectors of the service. They are
// registered on the default registry and served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var Bookings = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "skillswap",
	Subsystem: "booking",
	Name:      "attempts_total",
	Help:      "Booking attempts by outcome (ok or error kind).",
}, []string{"outcome"})

var BookingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "skillswap",
	Subsystem: "booking",
	Name:      "duration_seconds",
	Help:      "Time spent booking a session, lock wait included.",
	Buckets:   prometheus.DefBuckets,
})

var CreditsMoved = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "skillswap",
	Subsystem: "ledger",
	Name:      "credits_total",
	Help:      "Credits written to the ledger by transaction kind.",
}, []string{"kind"})

var AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "skillswap",
	Subsystem: "auth",
	Name:      "attempts_total",
	Help:      "Sign-up and sign-in attempts by outcome.",
}, []string{"operation", "outcome"})

var EventDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "skillswap",
	Subsystem: "events",
	Name:      "deliveries_total",
	Help:      "Webhook deliveries by event type and result.",
}, []string{"type", "result"})
