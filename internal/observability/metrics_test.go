package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecordSignupIncrementsOutcome(t *testing.T) {
	before := testutil.ToFloat64(signupCounter.WithLabelValues("success"))
	RecordSignup("success")
	after := testutil.ToFloat64(signupCounter.WithLabelValues("success"))

	require.Equal(t, before+1, after)
}

func TestRecordUnregisterIncrementsOutcome(t *testing.T) {
	before := testutil.ToFloat64(unregisterCounter.WithLabelValues("not_registered"))
	RecordUnregister("not_registered")
	after := testutil.ToFloat64(unregisterCounter.WithLabelValues("not_registered"))

	require.Equal(t, before+1, after)
}

func TestRosterGaugeExported(t *testing.T) {
	SetRosterSize("Chess Club", 2)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var family *dto.MetricFamily
	for _, mf := range families {
		if mf.GetName() == "activities_service_roster_participants" {
			family = mf
			break
		}
	}
	require.NotNil(t, family)

	found := false
	for _, metric := range family.GetMetric() {
		for _, label := range metric.GetLabel() {
			if label.GetName() == "activity" && label.GetValue() == "Chess Club" {
				found = true
				require.Equal(t, float64(2), metric.GetGauge().GetValue())
			}
		}
	}
	require.True(t, found)
}

func TestRecordRosterChangeIgnoresZeroTime(t *testing.T) {
	RecordRosterChange(time.Time{})

	ts := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	RecordRosterChange(ts)

	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(lastChangeGauge))
}
