// Package term implements the term model: stemming a surface word and
// mapping the stem to a 32-bit fingerprint, with a closed set of reserved
// fingerprints tagged numeric or opaque.
package term
