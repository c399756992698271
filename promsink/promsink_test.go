package promsink

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quantgo"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.RecordInsert(time.Microsecond)
	c.RecordInsert(time.Microsecond)
	c.RecordBatchInsert(10, time.Millisecond)
	c.RecordFlush(12, time.Millisecond)
	c.RecordQuery(time.Millisecond, nil)
	c.RecordQuery(time.Millisecond, quantgo.ErrEmpty)

	assert.Equal(t, 2.0, promtestutil.ToFloat64(c.inserts))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.batchInserts))
	assert.Equal(t, 10.0, promtestutil.ToFloat64(c.batchInsertItems))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.flushes))
	assert.Equal(t, 12.0, promtestutil.ToFloat64(c.flushMerged))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(c.queries))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.queryErrors))
	assert.Equal(t, 1, promtestutil.CollectAndCount(c.insertSeconds))
	assert.Equal(t, 1, promtestutil.CollectAndCount(c.batchInsertSeconds))
	assert.Equal(t, 1, promtestutil.CollectAndCount(c.flushSeconds))
	assert.Equal(t, 1, promtestutil.CollectAndCount(c.querySeconds))
}

func TestCollectorWithEstimator(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	est := quantgo.New[float64](quantgo.WithMetricsCollector(c))
	for i := 0; i < 100; i++ {
		est.Insert(float64(i))
	}

	_, err := est.Query(0.5)
	require.NoError(t, err)

	assert.Equal(t, 100.0, promtestutil.ToFloat64(c.inserts))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.queries))
	assert.Equal(t, 0.0, promtestutil.ToFloat64(c.queryErrors))
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
