package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(Bookings.WithLabelValues("insufficient_funds"))
	Bookings.WithLabelValues("insufficient_funds").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Bookings.WithLabelValues("insufficient_funds")))

	before = testutil.ToFloat64(CreditsMoved.WithLabelValues("spent"))
	CreditsMoved.WithLabelValues("spent").Add(4)
	assert.Equal(t, before+4, testutil.ToFloat64(CreditsMoved.WithLabelValues("spent")))
}
