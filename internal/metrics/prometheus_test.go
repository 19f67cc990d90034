package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTP(reg)

	m.Observe("/v1/occasions", "GET", "200", 15*time.Millisecond)
	m.Observe("/v1/occasions", "GET", "200", 5*time.Millisecond)
	m.Observe("/v1/occasions", "GET", "500", time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	var observed uint64
	for _, mf := range families {
		switch mf.GetName() {
		case "giftshop_http_requests_total":
			for _, metric := range mf.GetMetric() {
				for _, lp := range metric.GetLabel() {
					if lp.GetName() == "status" {
						counts[lp.GetValue()] = metric.GetCounter().GetValue()
					}
				}
			}
		case "giftshop_http_request_duration_seconds":
			require.Len(t, mf.GetMetric(), 1)
			observed = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}

	assert.Equal(t, 2.0, counts["200"])
	assert.Equal(t, 1.0, counts["500"])
	assert.Equal(t, uint64(3), observed)
}
