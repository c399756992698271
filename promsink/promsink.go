// Package promsink provides a Prometheus-backed metrics collector for
// quantgo estimators.
package promsink

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/quantgo"
)

// Compile time check to ensure Collector satisfies the collector interface.
var _ quantgo.MetricsCollector = (*Collector)(nil)

// Collector feeds estimator operation metrics into a Prometheus registry.
type Collector struct {
	inserts            prometheus.Counter
	insertSeconds      prometheus.Histogram
	batchInserts       prometheus.Counter
	batchInsertItems   prometheus.Counter
	batchInsertSeconds prometheus.Histogram
	flushes            prometheus.Counter
	flushMerged        prometheus.Counter
	flushSeconds       prometheus.Histogram
	queries            prometheus.Counter
	queryErrors        prometheus.Counter
	querySeconds       prometheus.Histogram
}

// New creates and registers all metrics with the provided registry.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantgo_inserts_total",
			Help: "Total observations inserted one at a time",
		}),
		insertSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quantgo_insert_duration_seconds",
			Help:    "Insert latency, including flushes triggered by a full buffer",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
		}),
		batchInserts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantgo_batch_inserts_total",
			Help: "Total batch insert calls",
		}),
		batchInsertItems: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantgo_batch_insert_items_total",
			Help: "Total observations inserted via batches",
		}),
		batchInsertSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quantgo_batch_insert_duration_seconds",
			Help:    "Batch insert latency, including flushes triggered by a full buffer",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		flushes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantgo_flushes_total",
			Help: "Total explicit flushes",
		}),
		flushMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantgo_flush_merged_total",
			Help: "Total buffered observations folded into the sample list by explicit flushes",
		}),
		flushSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quantgo_flush_duration_seconds",
			Help:    "Flush latency",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantgo_queries_total",
			Help: "Total quantile queries",
		}),
		queryErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantgo_query_errors_total",
			Help: "Total quantile queries answered with the empty-summary error",
		}),
		querySeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quantgo_query_duration_seconds",
			Help:    "Query latency, including the implicit flush",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}

	reg.MustRegister(
		c.inserts, c.insertSeconds,
		c.batchInserts, c.batchInsertItems, c.batchInsertSeconds,
		c.flushes, c.flushMerged, c.flushSeconds,
		c.queries, c.queryErrors, c.querySeconds,
	)

	return c
}

// RecordInsert implements quantgo.MetricsCollector.
func (c *Collector) RecordInsert(duration time.Duration) {
	c.inserts.Inc()
	c.insertSeconds.Observe(duration.Seconds())
}

// RecordBatchInsert implements quantgo.MetricsCollector.
func (c *Collector) RecordBatchInsert(count int, duration time.Duration) {
	c.batchInserts.Inc()
	c.batchInsertItems.Add(float64(count))
	c.batchInsertSeconds.Observe(duration.Seconds())
}

// RecordFlush implements quantgo.MetricsCollector.
func (c *Collector) RecordFlush(merged int, duration time.Duration) {
	c.flushes.Inc()
	c.flushMerged.Add(float64(merged))
	c.flushSeconds.Observe(duration.Seconds())
}

// RecordQuery implements quantgo.MetricsCollector.
func (c *Collector) RecordQuery(duration time.Duration, err error) {
	c.queries.Inc()
	c.querySeconds.Observe(duration.Seconds())
	if err != nil {
		c.queryErrors.Inc()
	}
}
