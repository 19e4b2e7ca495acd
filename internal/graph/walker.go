package graph

import "github.com/standardbeagle/tokcat/internal/tokenizer"

// Walker enumerates complete paths through a Lattice on demand. left holds
// the edges committed to the current candidate path, current is the
// position those edges reach, and right is a greedy best-score completion
// from current to the end, recomputed whenever current or the tried-set
// changes.
type Walker struct {
	lattice tokenizer.Lattice
	n       int

	left    []tokenizer.Edge
	current int
	right   []tokenizer.Edge

	// tried[p] counts how many of lattice[p]'s edges (sorted by descending
	// score) have been exhausted at position p via Discard, for the branch
	// currently being explored. Discard clears the entry once it exhausts
	// the last edge at p, so a different branch that later reaches p starts
	// fresh rather than inheriting exhaustion from an unrelated prefix.
	tried map[int]int

	pending *pendingDiscard
}

type pendingDiscard struct {
	pos int
}

// NewWalker builds a walker over lattice for a query of length n.
func NewWalker(lattice tokenizer.Lattice, n int) *Walker {
	w := &Walker{
		lattice: lattice,
		n:       n,
		tried:   make(map[int]int),
	}
	w.right = w.computeRight(0)
	return w
}

// bestUntried returns the best not-yet-exhausted edge at position pos, and
// whether one exists.
func (w *Walker) bestUntried(pos int) (tokenizer.Edge, bool) {
	edges := w.lattice[pos]
	idx := w.tried[pos]
	if idx >= len(edges) {
		return tokenizer.Edge{}, false
	}
	return edges[idx], true
}

// computeRight greedily extends from to the end of the query, returning nil
// when no untried edge admits a full completion.
func (w *Walker) computeRight(from int) []tokenizer.Edge {
	var right []tokenizer.Edge
	pos := from
	for pos < w.n {
		e, ok := w.bestUntried(pos)
		if !ok {
			return nil
		}
		right = append(right, e)
		pos += e.Length
	}
	return right
}

// Advance moves one edge forward along the current best continuation.
// Returns true iff an advance occurred.
func (w *Walker) Advance() bool {
	if len(w.right) == 0 {
		return false
	}
	next := w.right[0]
	w.left = append(w.left, next)
	w.current += next.Length
	w.right = w.computeRight(w.current)
	return true
}

// Retreat undoes the most recent Advance. When keepEdge is false, the
// popped edge is marked pending for Discard so the caller can move on to
// the position's next-best option.
func (w *Walker) Retreat(keepEdge bool) bool {
	if len(w.left) == 0 {
		return false
	}
	last := w.left[len(w.left)-1]
	w.left = w.left[:len(w.left)-1]
	pos := w.current - last.Length
	w.current = pos

	if keepEdge {
		w.pending = nil
	} else {
		w.pending = &pendingDiscard{pos: pos}
	}
	w.right = w.computeRight(w.current)
	return true
}

// Discard marks the edge just retreated-from as exhausted at its starting
// position and recomputes the best completion. Returns true iff a new
// completion exists.
func (w *Walker) Discard() bool {
	if w.pending == nil {
		return false
	}
	pos := w.pending.pos
	w.tried[pos]++
	w.pending = nil
	w.right = w.computeRight(w.current)
	if len(w.right) > 0 {
		return true
	}
	// pos has no untried edges left for this attempt. That exhaustion is only
	// valid for the branch we just backed out of: a different prefix can
	// reach pos with room for edges this branch had already ruled out here,
	// so clear the count rather than letting it persist across branches.
	delete(w.tried, pos)
	return false
}

// Complete reports whether the committed left segment alone covers the
// entire query.
func (w *Walker) Complete() bool {
	return w.current == w.n
}

// CurrentEdgeScore returns the score of the edge most recently advanced
// over, or 0 if no edge has been advanced yet.
func (w *Walker) CurrentEdgeScore() float64 {
	if len(w.left) == 0 {
		return 0
	}
	return w.left[len(w.left)-1].Score
}

// Left returns the edges committed to the current candidate path, in order.
func (w *Walker) Left() []tokenizer.Edge {
	return w.left
}

// Current returns the position reached by the committed left segment.
func (w *Walker) Current() int {
	return w.current
}

// HasCompletion reports whether a full completion currently exists from
// the walker's position (either it is already complete, or right reaches
// the end).
func (w *Walker) HasCompletion() bool {
	return w.Complete() || len(w.right) > 0
}

// AdvanceToCompletion repeatedly advances until Complete, backtracking via
// Retreat(false)+Discard when a dead end is hit. Returns the full path and
// true, or false if no completion remains reachable from the walker's
// current state.
func (w *Walker) AdvanceToCompletion() ([]tokenizer.Edge, bool) {
	for !w.Complete() {
		if w.Advance() {
			continue
		}
		if !w.backtrack() {
			return nil, false
		}
	}
	return append([]tokenizer.Edge(nil), w.left...), true
}

// backtrack pops the last committed edge and exhausts it, walking back
// further positions as needed until a usable alternative exists.
func (w *Walker) backtrack() bool {
	for {
		if !w.Retreat(false) {
			return false
		}
		if w.Discard() {
			return true
		}
	}
}

// NextPath backtracks from the current complete path (if any) to the next
// best complete path, in best-first order. Returns false once every path
// has been exhausted.
func (w *Walker) NextPath() ([]tokenizer.Edge, bool) {
	if !w.backtrack() {
		return nil, false
	}
	return w.AdvanceToCompletion()
}
