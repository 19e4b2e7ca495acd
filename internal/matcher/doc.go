// Package matcher computes alignment statistics between a query's
// fingerprint tail and a registered alias's fingerprints. Two matcher
// variants are provided: an exact-prefix matcher and an approximate,
// edit-distance-style matcher restricted by downstream/opaque predicates.
package matcher
