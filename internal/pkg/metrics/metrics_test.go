package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIncCache(t *testing.T) {
	before := testutil.ToFloat64(CacheResults().WithLabelValues("metrics_test_op", OutcomeHit))
	IncCache("metrics_test_op", OutcomeHit)
	IncCache("metrics_test_op", OutcomeHit)
	after := testutil.ToFloat64(CacheResults().WithLabelValues("metrics_test_op", OutcomeHit))

	assert.Equal(t, before+2, after)
}

func TestObserveHTTP_CountsRequests(t *testing.T) {
	ObserveHTTP("GET", "/metrics-test", 200, 0.01)
	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/metrics-test", "200"))
	assert.Equal(t, float64(1), got)
}
