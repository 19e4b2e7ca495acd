// Package replcache provides a bounded, thread-safe least-recently-used
// cache of per-line lattices, so the REPL can retype or re-run an
// utterance without rebuilding its lattice from scratch.
package replcache
