// Package dist provides concrete distributions for use as sampling targets
// and proposals. All distributions produce points in R^n as []float64 (a
// univariate distribution returns a slice of length 1) and evaluate their
// own (log) density. The sampler package defines the capability interfaces
// these types satisfy.
package dist
