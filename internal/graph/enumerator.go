package graph

import "github.com/standardbeagle/tokcat/internal/tokenizer"

// EnumerateStatic precomputes every complete path through lattice by
// depth-first search, trying each position's edges in their already
// score-sorted order. This yields the same best-first, insertion-order-tied
// ordering Walker produces dynamically, without any shared mutable state.
func EnumerateStatic(lattice tokenizer.Lattice) [][]tokenizer.Edge {
	n := len(lattice)
	var results [][]tokenizer.Edge
	var path []tokenizer.Edge

	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			results = append(results, append([]tokenizer.Edge(nil), path...))
			return
		}
		for _, e := range lattice[pos] {
			if pos+e.Length > n {
				continue
			}
			path = append(path, e)
			rec(pos + e.Length)
			path = path[:len(path)-1]
		}
	}
	rec(0)
	return results
}

// EnumerateDynamic drives a Walker to produce the same sequence of complete
// paths as EnumerateStatic, computing each completion on demand.
func EnumerateDynamic(lattice tokenizer.Lattice) [][]tokenizer.Edge {
	n := len(lattice)
	w := NewWalker(lattice, n)

	var results [][]tokenizer.Edge
	path, ok := w.AdvanceToCompletion()
	for ok {
		results = append(results, path)
		path, ok = w.NextPath()
	}
	return results
}
