// Package quantgo provides streaming computation of targeted
// epsilon-approximate quantiles in bounded memory.
//
// Quantgo summarizes an unbounded numeric stream (latencies, payload sizes)
// with the CKMS biased-quantile algorithm: every reported quantile is within
// a caller-specified error tolerance of the true rank, without storing every
// observation.
//
// # Quick Start
//
//	est := quantgo.New[float64](
//	    quantgo.WithTarget(0.5, 0.05),   // median, ±5% rank error
//	    quantgo.WithTarget(0.9, 0.01),   // p90, ±1% rank error
//	    quantgo.WithTarget(0.99, 0.001), // p99, ±0.1% rank error
//	)
//
//	for _, latency := range latencies {
//	    est.Insert(latency)
//	}
//
//	p99, err := est.Query(0.99)
//
// With no targets configured, the default invariants are the median at 5
// percent inaccuracy and the 99th percentile at 0.1 percent inaccuracy.
//
// # Observability
//
// Structured logging and metrics are injected, never global, and the core
// algorithm does not depend on either:
//
//	metrics := &quantgo.BasicMetricsCollector{}
//	est := quantgo.New[float64](
//	    quantgo.WithLogger(quantgo.NewJSONLogger(slog.LevelInfo)),
//	    quantgo.WithMetricsCollector(metrics),
//	)
//
// The promsink subpackage integrates with Prometheus.
//
// # Concurrency
//
// An Estimator is not safe for concurrent use. Wrap one instance in a mutex,
// funnel observations through a single writer, or keep independent per-shard
// estimators. Merging independently built summaries is out of scope and not
// equivalent to the single-stream case.
//
// # Key Features
//
//   - Targeted (biased) error bounds: tight where you query, loose elsewhere
//   - Amortized O(1) insert; merge cost paid at flush time only
//   - Generic over integer and float value types
//   - Injected structured logging (log/slog) and pluggable metrics
//   - Estimates are always previously inserted values, never interpolations
package quantgo
