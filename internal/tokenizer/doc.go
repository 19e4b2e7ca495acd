// Package tokenizer owns the inverted index built from registered aliases,
// the approximate-match scorer, and the lattice builder that turns a query's
// fingerprint stream into a weighted graph for the walker to traverse.
package tokenizer
