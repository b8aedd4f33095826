package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "signup_attempts_total",
		Help:      "Number of signup attempts grouped by outcome.",
	}, []string{"result"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "unregister_attempts_total",
		Help:      "Number of unregister attempts grouped by outcome.",
	}, []string{"result"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})

	lastChangeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "last_change_timestamp_seconds",
		Help:      "Unix timestamp of the most recent roster mutation.",
	})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rosterSizeGauge, lastChangeGauge)
}

// RecordSignup counts one signup attempt with its outcome label.
func RecordSignup(result string) {
	signupCounter.WithLabelValues(result).Inc()
}

// RecordUnregister counts one unregister attempt with its outcome label.
func RecordUnregister(result string) {
	unregisterCounter.WithLabelValues(result).Inc()
}

// SetRosterSize updates the participant gauge for one activity.
func SetRosterSize(activity string, size int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(size))
}

// RecordRosterChange updates the mutation watermark gauge.
func RecordRosterChange(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastChangeGauge.Set(float64(ts.Unix()))
}
