package quantgo

import (
	"time"

	"github.com/hupe1980/quantgo/ckms"
)

// Number constrains the observed value type to totally-ordered numerics.
type Number = ckms.Number

// Estimator computes targeted epsilon-approximate quantiles over an unbounded
// stream of observations in bounded memory. It wraps a ckms.Stream with
// structured logging and metrics instrumentation; the underlying algorithm
// never depends on either.
//
// An Estimator is not safe for concurrent use. Callers must serialize access
// externally (a single writer, or a mutex around one instance) or keep
// independent per-shard estimators.
type Estimator[T Number] struct {
	stream           *ckms.Stream[T]
	logger           *Logger
	metricsCollector MetricsCollector
}

// New creates an Estimator for values of type T.
//
// Example:
//
//	est := quantgo.New[float64](
//	    quantgo.WithTarget(0.5, 0.05),
//	    quantgo.WithTarget(0.99, 0.001),
//	)
func New[T Number](optFns ...Option) *Estimator[T] {
	opts := applyOptions(optFns)

	return &Estimator[T]{
		stream:           ckms.New[T](opts.targets, opts.bufferCap),
		logger:           opts.logger,
		metricsCollector: opts.metricsCollector,
	}
}

// Insert adds a single observation. Amortized O(1); reaching the buffer
// capacity triggers an internal flush.
func (e *Estimator[T]) Insert(v T) {
	start := time.Now()

	e.stream.Insert(v)

	e.metricsCollector.RecordInsert(time.Since(start))
	e.logger.LogInsert(e.stream.Count())
}

// InsertBatch adds many observations at once, flushing if the buffer capacity
// is reached or exceeded after all values are buffered.
func (e *Estimator[T]) InsertBatch(vs []T) {
	start := time.Now()

	e.stream.InsertBatch(vs)

	e.metricsCollector.RecordBatchInsert(len(vs), time.Since(start))
	e.logger.LogBatchInsert(len(vs), e.stream.Count())
}

// Flush folds buffered observations into the summary. It is a no-op when
// nothing is buffered. Queries flush implicitly; calling Flush is only needed
// to control when the merge cost is paid.
func (e *Estimator[T]) Flush() {
	start := time.Now()
	pending := e.stream.Pending()

	e.stream.Flush()

	e.metricsCollector.RecordFlush(pending, time.Since(start))
	e.logger.LogFlush(pending, e.stream.SampleCount())
}

// Query returns the estimated value at the given quantile, e.g. 0.50 or 0.99.
// It forces a flush first, so the answer reflects every inserted value.
// ErrEmpty is returned if no observation was ever inserted.
func (e *Estimator[T]) Query(quantile float64) (T, error) {
	start := time.Now()

	v, err := e.stream.Query(quantile)

	e.metricsCollector.RecordQuery(time.Since(start), err)
	e.logger.LogQuery(quantile, e.stream.SampleCount(), err)

	return v, translateError(err)
}

// Count returns the all-time number of inserted observations.
func (e *Estimator[T]) Count() int {
	return e.stream.Count()
}

// SampleCount returns the number of retained samples, a proxy for the
// summary's memory footprint.
func (e *Estimator[T]) SampleCount() int {
	return e.stream.SampleCount()
}
