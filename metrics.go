package quantgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the promsink
// subpackage ships a ready-made Prometheus implementation.
//
// The estimator core never depends on metrics being collected; only the
// Estimator facade records.
type MetricsCollector interface {
	// RecordInsert is called after each single-value insert.
	// duration is the total time taken, including a flush if one triggered.
	RecordInsert(duration time.Duration)

	// RecordBatchInsert is called after each batch insert.
	// count is the number of values buffered, duration the total time taken.
	RecordBatchInsert(count int, duration time.Duration)

	// RecordFlush is called after each explicit flush.
	// merged is the number of buffered values folded into the sample list.
	RecordFlush(merged int, duration time.Duration)

	// RecordQuery is called after each quantile query.
	// err is non-nil only for the empty-summary condition.
	RecordQuery(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration)           {}
func (NoopMetricsCollector) RecordBatchInsert(int, time.Duration) {}
func (NoopMetricsCollector) RecordFlush(int, time.Duration)       {}
func (NoopMetricsCollector) RecordQuery(time.Duration, error)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount           atomic.Int64
	InsertTotalNanos      atomic.Int64
	BatchInsertCount      atomic.Int64
	BatchInsertItems      atomic.Int64
	BatchInsertTotalNanos atomic.Int64
	FlushCount            atomic.Int64
	FlushItems            atomic.Int64
	QueryCount            atomic.Int64
	QueryErrors           atomic.Int64
	QueryTotalNanos       atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordBatchInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchInsert(count int, duration time.Duration) {
	b.BatchInsertCount.Add(1)
	b.BatchInsertItems.Add(int64(count))
	b.BatchInsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordFlush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFlush(merged int, duration time.Duration) {
	b.FlushCount.Add(1)
	b.FlushItems.Add(int64(merged))
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:         b.InsertCount.Load(),
		InsertAvgNanos:      b.getAvgInsertNanos(),
		BatchInsertCount:    b.BatchInsertCount.Load(),
		BatchInsertItems:    b.BatchInsertItems.Load(),
		BatchInsertAvgNanos: b.getAvgBatchInsertNanos(),
		FlushCount:          b.FlushCount.Load(),
		FlushItems:          b.FlushItems.Load(),
		QueryCount:          b.QueryCount.Load(),
		QueryErrors:         b.QueryErrors.Load(),
		QueryAvgNanos:       b.getAvgQueryNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgBatchInsertNanos() int64 {
	count := b.BatchInsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.BatchInsertTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount         int64
	InsertAvgNanos      int64
	BatchInsertCount    int64
	BatchInsertItems    int64
	BatchInsertAvgNanos int64
	FlushCount          int64
	FlushItems          int64
	QueryCount          int64
	QueryErrors         int64
	QueryAvgNanos       int64
}
