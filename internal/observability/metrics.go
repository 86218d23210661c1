package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Signup attempts by outcome (ok, not_found, already_signed_up, full).",
	}, []string{"outcome"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "unregisters_total",
		Help:      "Unregister attempts by outcome (ok, not_found, not_signed_up).",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter)
}

// RecordSignup counts one signup attempt with the given outcome label.
func RecordSignup(outcome string) {
	signupCounter.WithLabelValues(outcome).Inc()
}

// RecordUnregister counts one unregister attempt with the given outcome label.
func RecordUnregister(outcome string) {
	unregisterCounter.WithLabelValues(outcome).Inc()
}
