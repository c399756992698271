package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/exp/constraints"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int63n returns a non-negative pseudo-random int64 in [0,n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// ShuffledInt64s returns the values 0..n-1 in a pseudo-random order fixed by
// the seed. Because every value equals its own zero-based rank, a quantile
// estimate over the set can be checked against its true rank directly.
func (r *RNG) ShuffledInt64s(n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := make([]int64, n)
	for i := range values {
		values[i] = int64(i)
	}

	r.rand.Shuffle(n, func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	return values
}

// UniformFloat64s returns n pseudo-random values uniformly distributed in
// [0, max).
func (r *RNG) UniformFloat64s(n int, max float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	values := make([]float64, n)
	for i := range values {
		values[i] = r.rand.Float64() * max
	}

	return values
}

// RankWindow returns the 1-based rank interval [lo, hi] that v occupies in
// sorted. With duplicate values a single value covers a whole interval of
// ranks; lo == hi + 1 means v is absent (it would sit between ranks).
func RankWindow[T constraints.Ordered](sorted []T, v T) (lo, hi int) {
	lo = sort.Search(len(sorted), func(i int) bool { return sorted[i] >= v }) + 1
	hi = sort.Search(len(sorted), func(i int) bool { return sorted[i] > v })
	return lo, hi
}

// RankError returns the smallest distance between rank and the rank interval
// v occupies in sorted, i.e. how far off a quantile estimate v is from the
// desired rank.
func RankError[T constraints.Ordered](sorted []T, v T, rank float64) float64 {
	lo, hi := RankWindow(sorted, v)

	if rank < float64(lo) {
		return float64(lo) - rank
	}
	if rank > float64(hi) {
		return rank - float64(hi)
	}
	return 0
}
