package quantgo

import (
	"log/slog"

	"github.com/hupe1980/quantgo/ckms"
)

type options struct {
	targets          []ckms.Target
	bufferCap        int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Estimator constructor behavior.
type Option func(*options)

// WithTargets configures the quantile invariants the estimator optimizes for.
// When no targets are configured, ckms.DefaultTargets is used: the median at
// 5 percent inaccuracy and the 99th percentile at 0.1 percent inaccuracy.
//
// Targets are a precondition, not validated: quantile and error outside (0, 1)
// produce undefined error bounds.
func WithTargets(targets ...ckms.Target) Option {
	return func(o *options) {
		o.targets = append(o.targets, targets...)
	}
}

// WithTarget adds a single quantile invariant. Convenience wrapper for
// WithTargets(ckms.NewTarget(quantile, epsilon)).
func WithTarget(quantile, epsilon float64) Option {
	return func(o *options) {
		o.targets = append(o.targets, ckms.NewTarget(quantile, epsilon))
	}
}

// WithBufferCapacity configures how many observations are buffered before a
// flush triggers automatically. Larger buffers amortize merge cost better at
// the price of larger flush latency spikes.
//
// If n is not positive, ckms.DefaultBufferCapacity is used.
func WithBufferCapacity(n int) Option {
	return func(o *options) {
		o.bufferCap = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &quantgo.BasicMetricsCollector{}
//	est := quantgo.New[float64](quantgo.WithMetricsCollector(metrics))
//	// ... use est ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, Avg latency: %dns\n", stats.InsertCount, stats.InsertAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := quantgo.NewJSONLogger(slog.LevelInfo)
//	est := quantgo.New[float64](quantgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
