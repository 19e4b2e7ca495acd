// Package numparse recognizes spelled-out English cardinal numbers in a
// stream of term-model fingerprints and emits every valid-length prefix as
// a (value, length) match, so the tokenizer can inject numeric edges into
// its lattice alongside alias edges.
package numparse
