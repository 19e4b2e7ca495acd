// Package graph enumerates complete paths through a tokenizer lattice in
// best-first order. Walker is the dynamic, on-demand enumerator driven by
// advance/retreat/discard; EnumerateStatic is a precomputed enumerator that
// must agree with Walker on ordering for any lattice.
package graph
