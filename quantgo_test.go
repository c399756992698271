package quantgo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quantgo/ckms"
	"github.com/hupe1980/quantgo/testutil"
)

func TestEstimator(t *testing.T) {
	t.Run("InsertAndQuery", func(t *testing.T) {
		est := New[int64](WithTarget(0.5, 0.5), WithBufferCapacity(8))

		for _, v := range []int64{5, 3, 1, 4, 2} {
			est.Insert(v)
		}

		got, err := est.Query(0.5)
		require.NoError(t, err)
		assert.Contains(t, []int64{2, 3}, got)
		assert.Equal(t, 5, est.Count())
	})

	t.Run("DefaultTargets", func(t *testing.T) {
		est := New[float64]()
		rng := testutil.NewRNG(3)

		est.InsertBatch(rng.UniformFloat64s(10_000, 100))

		p50, err := est.Query(0.5)
		require.NoError(t, err)
		assert.InDelta(t, 50, p50, 10)

		p99, err := est.Query(0.99)
		require.NoError(t, err)
		assert.InDelta(t, 99, p99, 2)
	})

	t.Run("EmptyState", func(t *testing.T) {
		est := New[float64]()

		_, err := est.Query(0.5)
		require.ErrorIs(t, err, ErrEmpty)
		require.ErrorIs(t, err, ckms.ErrEmpty)
	})

	t.Run("QueryMax", func(t *testing.T) {
		est := New[int64]()
		rng := testutil.NewRNG(11)

		est.InsertBatch(rng.ShuffledInt64s(1000))

		got, err := est.Query(1.0)
		require.NoError(t, err)
		assert.Equal(t, int64(999), got)
	})

	t.Run("Diagnostics", func(t *testing.T) {
		est := New[int64](WithBufferCapacity(16))

		for i := int64(0); i < 100; i++ {
			est.Insert(i)
		}

		assert.Equal(t, 100, est.Count())
		assert.Positive(t, est.SampleCount())
	})
}

func TestEstimatorMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	est := New[int64](WithMetricsCollector(metrics), WithBufferCapacity(64))

	for i := int64(0); i < 100; i++ {
		est.Insert(i)
	}
	est.InsertBatch([]int64{100, 101, 102})
	est.Flush()

	_, err := est.Query(0.5)
	require.NoError(t, err)

	_, _ = New[int64](WithMetricsCollector(metrics)).Query(0.5)

	stats := metrics.GetStats()
	assert.Equal(t, int64(100), stats.InsertCount)
	assert.Equal(t, int64(1), stats.BatchInsertCount)
	assert.Equal(t, int64(3), stats.BatchInsertItems)
	// 100 single inserts flushed once at capacity 64, leaving 36 buffered;
	// the batch adds 3 more before the explicit flush.
	assert.Equal(t, int64(1), stats.FlushCount)
	assert.Equal(t, int64(39), stats.FlushItems)
	assert.Equal(t, int64(2), stats.QueryCount)
	assert.Equal(t, int64(1), stats.QueryErrors)
}

func TestBasicMetricsCollectorBatchInsert(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	metrics.RecordBatchInsert(10, 4*time.Millisecond)
	metrics.RecordBatchInsert(5, 2*time.Millisecond)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.BatchInsertCount)
	assert.Equal(t, int64(15), stats.BatchInsertItems)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.BatchInsertAvgNanos)
}

func TestOptions(t *testing.T) {
	t.Run("NilOptionsIgnored", func(t *testing.T) {
		est := New[float64](nil, WithTarget(0.9, 0.01))
		est.Insert(1)

		_, err := est.Query(0.9)
		require.NoError(t, err)
	})

	t.Run("NilCollectorAndLoggerDisable", func(t *testing.T) {
		est := New[float64](WithMetricsCollector(nil), WithLogger(nil))
		est.Insert(1)

		got, err := est.Query(0.5)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got)
	})

	t.Run("WithTargets", func(t *testing.T) {
		targets := []ckms.Target{
			ckms.NewTarget(0.5, 0.05),
			ckms.NewTarget(0.999, 0.0001),
		}

		est := New[int64](WithTargets(targets...))
		est.Insert(1)

		_, err := est.Query(0.999)
		require.NoError(t, err)
	})
}
