// Package testutil provides deterministic data generators and rank helpers
// for tests and benchmarks.
package testutil
