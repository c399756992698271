package ckms

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number constrains the sample value type to totally-ordered numerics.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sample is one retained summary tuple: an observed value together with the
// rank bookkeeping that bounds its true rank.
type Sample[T Number] struct {
	// Value is the observed value this sample retains.
	Value T
	// G is the minimum number of ranks this sample represents, relative to
	// the previous retained sample. Always >= 1.
	G int
	// Delta is the additional uncertainty in this sample's true rank beyond
	// G. Always >= 0; zero for the first and last sample, whose ranks are
	// known exactly.
	Delta int
}

// sampleList is the ordered sample sequence plus the rank-bound bookkeeping.
// Samples are kept in non-decreasing value order; insertion order is rank
// order. The sum of all G values equals the all-time observation count.
type sampleList[T Number] struct {
	targets []Target
	samples []Sample[T]
}

// allowableError is the f(r_i, n) function from the CKMS paper: the tightest
// rank uncertainty any registered target tolerates at the given position.
//
// NOTE: per CKMS this should use the all-time observation count, not the
// current list size. Using the list size is a looser bound that trades
// memory for simplicity; changing it would shift the calibrated accuracy
// of every consumer, so it stays.
func (l *sampleList[T]) allowableError(rank, size int) float64 {
	minErr := float64(size + 1)
	for _, t := range l.targets {
		if err := t.errorBound(float64(rank), float64(size)); err < minErr {
			minErr = err
		}
	}

	return math.Floor(minErr)
}

// merge inserts a sorted batch of values into the sample list, keeping a
// single forward-only cursor over the old samples so the whole batch costs
// O(len(values) + len(samples)).
func (l *sampleList[T]) merge(values []T) {
	if len(values) == 0 {
		return
	}

	start := 0
	if len(l.samples) == 0 {
		l.samples = append(l.samples, Sample[T]{Value: values[0], G: 1})
		start = 1
	}

	old := l.samples
	out := make([]Sample[T], 0, len(old)+len(values)-start)
	out = append(out, old[0])

	j := 1           // cursor into old; old[j:] is still ahead of the insertion point
	size := len(old) // current list size, grows with every insertion

	for _, v := range values[start:] {
		// Advance: move old samples smaller than v behind the cursor.
		for j < len(old) && out[len(out)-1].Value < v {
			out = append(out, old[j])
			j++
		}

		// If the scan overshot onto a strictly larger sample, back it up so
		// the new item lands immediately before it. A value tie stays put:
		// the new item is inserted right after the equal sample.
		if out[len(out)-1].Value > v {
			out = out[:len(out)-1]
			j--
		}

		pos := len(out)

		var delta int
		if pos > 0 && pos < size {
			delta = int(l.allowableError(pos, size)) - 1
			if delta < 0 {
				delta = 0
			}
		}

		out = append(out, Sample[T]{Value: v, G: 1, Delta: delta})
		size++
	}

	out = append(out, old[j:]...)
	l.samples = out
}

// compress removes samples that the error bounds make redundant, absorbing
// each removed sample's rank width into its successor. It is a single
// left-to-right pass: a sample that just absorbed its predecessor is settled
// for this pass, so merges can expose new opportunities only on a later
// flush. The first sample is never absorbed; its rank stays exact.
func (l *sampleList[T]) compress() {
	s := l.samples
	if len(s) < 3 {
		return
	}

	kept := s[:1]
	size := len(s)

	r := 1
	for r+1 < len(s) {
		prev, next := s[r], s[r+1]

		// Rank position next holds in the current list, before the removal.
		rank := len(kept) + 1

		if float64(prev.G+next.G+next.Delta) <= l.allowableError(rank, size) {
			next.G += prev.G
			kept = append(kept, next)
			size--
			r += 2
		} else {
			kept = append(kept, prev)
			r++
		}
	}

	kept = append(kept, s[r:]...)
	l.samples = kept
}
