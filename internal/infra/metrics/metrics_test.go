package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Estimates.WithLabelValues("plaster").Inc()
	m.StoreOps.WithLabelValues("get", Result(nil)).Inc()
	m.StoreOps.WithLabelValues("get", Result(errors.New("x"))).Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Estimates.WithLabelValues("plaster")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOps.WithLabelValues("get", "error")))

	n, err := testutil.GatherAndCount(reg, "assistant_store_ops_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}
