// Package ckms implements the Cormode, Korn, Muthukrishnan, and Srivastava
// algorithm for streaming calculation of targeted high-percentile
// epsilon-approximate quantiles.
//
// It is a generalization of the earlier work by Greenwald and Khanna (GK),
// allowing different error bounds per targeted quantile, which makes the
// calculation of high percentiles far more space-efficient.
//
// See: Cormode, Korn, Muthukrishnan, and Srivastava,
// "Effective Computation of Biased Quantiles over Data Streams", ICDE 2005.
//
// Greenwald and Khanna, "Space-efficient online computation of quantile
// summaries", SIGMOD 2001.
//
// A Stream is not safe for concurrent use. Callers must serialize access
// externally or keep independent per-shard streams.
package ckms
