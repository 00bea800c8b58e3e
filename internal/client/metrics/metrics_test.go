package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveFetch("updated")
	m.ObserveFetch("updated")
	m.ObserveFetch("rejected")
	m.ObserveStore("set", nil)
	m.ObserveStore("delete", errors.New("disk"))
	m.SetLoggedIn(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.fetches.WithLabelValues("updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetches.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("set", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("delete", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loggedIn))

	m.SetLoggedIn(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.loggedIn))

	n, err := testutil.GatherAndCount(reg, "loginkeeper_fetch_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveFetch("updated")
	m.ObserveStore("set", nil)
	m.SetLoggedIn(true)
}
