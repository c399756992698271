package ckms

// Target is an invariant for quantile estimation: a quantile to track and the
// error tolerance allowed around it. It is immutable once constructed.
//
// Preconditions (not validated): quantile and epsilon must lie in (0, 1).
// Values outside that interval produce undefined error bounds.
type Target struct {
	quantile float64
	epsilon  float64

	// Derived rank-error coefficients, precomputed at construction.
	u float64
	v float64
}

// NewTarget creates an invariant for the given quantile (e.g. 0.99) with the
// given error allowance (e.g. 0.001).
func NewTarget(quantile, epsilon float64) Target {
	return Target{
		quantile: quantile,
		epsilon:  epsilon,
		u:        2.0 * epsilon / (1.0 - quantile),
		v:        2.0 * epsilon / quantile,
	}
}

// DefaultTargets returns the default invariants: the median at 5 percent
// inaccuracy and the 99th percentile at 0.1 percent inaccuracy.
func DefaultTargets() []Target {
	return []Target{
		NewTarget(0.5, 0.05),
		NewTarget(0.99, 0.001),
	}
}

// Quantile returns the targeted quantile.
func (t Target) Quantile() float64 { return t.quantile }

// Error returns the error allowance around the targeted quantile.
func (t Target) Error() float64 { return t.epsilon }

// errorBound is the per-target contribution to the f(r_i, n) function from the
// CKMS paper: how wide the rank range at the given rank may be without
// violating this target's accuracy contract.
func (t Target) errorBound(rank, n float64) float64 {
	if rank <= t.quantile*n {
		return t.u * (n - rank)
	}
	return t.v * rank
}
