package ckms

import (
	"errors"
	"slices"
)

// DefaultBufferCapacity is the number of observations buffered before a
// flush triggers automatically.
const DefaultBufferCapacity = 4096

// ErrEmpty is returned by Query when no observation was ever inserted.
var ErrEmpty = errors.New("no samples in summary")

// Stream is a CKMS biased-quantile summary over a stream of values of type T.
//
// Observations are buffered and folded into the sample list in sorted batches
// (merge), after which redundant samples are pruned (compress). Queries force
// a flush first, so the answer always reflects every inserted value.
//
// A Stream is not safe for concurrent use.
type Stream[T Number] struct {
	list      sampleList[T]
	buffer    []T
	bufferCap int
	count     int
}

// New creates a Stream with the given target invariants and buffer capacity.
// If targets is empty, DefaultTargets is used. If bufferCap is not positive,
// DefaultBufferCapacity is used.
func New[T Number](targets []Target, bufferCap int) *Stream[T] {
	if len(targets) == 0 {
		targets = DefaultTargets()
	}

	if bufferCap <= 0 {
		bufferCap = DefaultBufferCapacity
	}

	return &Stream[T]{
		list: sampleList[T]{
			targets: slices.Clone(targets),
		},
		buffer:    make([]T, 0, bufferCap),
		bufferCap: bufferCap,
	}
}

// Insert adds a single observation. Amortized O(1); reaching the buffer
// capacity triggers a flush.
func (s *Stream[T]) Insert(v T) {
	s.buffer = append(s.buffer, v)

	if len(s.buffer) == s.bufferCap {
		s.Flush()
	}
}

// InsertBatch adds many observations at once. All values are buffered first;
// a flush triggers if the capacity is reached or exceeded.
func (s *Stream[T]) InsertBatch(vs []T) {
	s.buffer = append(s.buffer, vs...)

	if len(s.buffer) >= s.bufferCap {
		s.Flush()
	}
}

// Flush folds buffered observations into the sample list and prunes redundant
// samples. It is a no-op when nothing is buffered, so repeated flushes leave
// the summary unchanged.
func (s *Stream[T]) Flush() {
	if len(s.buffer) == 0 {
		return
	}

	slices.Sort(s.buffer)

	s.list.merge(s.buffer)
	s.count += len(s.buffer)

	// Hand buffer growth beyond the configured capacity back in case a bulk
	// insert overshot the range.
	if cap(s.buffer) > s.bufferCap {
		s.buffer = make([]T, 0, s.bufferCap)
	} else {
		s.buffer = s.buffer[:0]
	}

	s.list.compress()
}

// Query returns the estimated value at the given quantile, e.g. 0.50 or 0.99.
// It flushes first. ErrEmpty is returned if no value was ever inserted.
//
// The estimate is always a previously inserted value, never an interpolation.
func (s *Stream[T]) Query(quantile float64) (T, error) {
	s.Flush()

	if len(s.list.samples) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	size := len(s.list.samples)
	desired := int(quantile * float64(s.count))
	bound := float64(desired) + s.list.allowableError(desired, size)/2

	rankMin := 0
	cur := s.list.samples[0]

	for i := 1; i < size; i++ {
		prev := cur
		cur = s.list.samples[i]

		rankMin += prev.G

		if float64(rankMin+cur.G+cur.Delta) > bound {
			return prev.Value, nil
		}
	}

	// Edge case of wanting the maximum value.
	return s.list.samples[size-1].Value, nil
}

// Count returns the all-time number of inserted observations, including
// values still sitting in the buffer.
func (s *Stream[T]) Count() int {
	return s.count + len(s.buffer)
}

// SampleCount returns the number of retained samples, a proxy for the
// summary's memory footprint.
func (s *Stream[T]) SampleCount() int {
	return len(s.list.samples)
}

// Pending returns the number of buffered observations not yet merged into
// the sample list.
func (s *Stream[T]) Pending() int {
	return len(s.buffer)
}

// Samples returns a copy of the retained samples in rank order.
func (s *Stream[T]) Samples() []Sample[T] {
	return slices.Clone(s.list.samples)
}
