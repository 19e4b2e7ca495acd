package tokenizer

import (
	"fmt"

	"github.com/standardbeagle/tokcat/internal/matcher"
	"github.com/standardbeagle/tokcat/internal/term"
)

// EdgeKind tags what kind of match produced an Edge.
type EdgeKind int

const (
	EdgeAlias EdgeKind = iota
	EdgeNumber
	EdgeUnknown
)

// UnknownLabel is the sentinel edge label meaning "unknown single term".
const UnknownLabel int64 = -1

// Edge is a weighted lattice edge. Edges are immutable once built.
type Edge struct {
	Score  float64
	Length int
	Label  int64
	Kind   EdgeKind
}

// Lattice is an array indexed by query position; Lattice[i] holds the edges
// starting at position i, sorted by descending score.
type Lattice [][]Edge

// Alias is the immutable record the tokenizer indexes. Lexicon domains
// build Aliases and hand them to AddItem with no back-reference retained,
// so the tokenizer never needs to import the lexicon package.
type Alias struct {
	ID               int
	Token            string
	Text             string
	Terms            []string
	Stemmed          []string
	Hashes           []term.Hash
	Matcher          matcher.Func
	IsDownstreamTerm func(term.Hash) bool
}

// Token is the emitted unit a harness or caller consumes.
type Token struct {
	Kind       EdgeKind
	AliasToken string
	Value      int64
	// Unknown carries the original surface terms covered by an unknown
	// edge. The tokenizer itself has no access to the original query's
	// start position, so it leaves this empty; callers that walk a
	// lattice over a known query (e.g. the relevance harness) fill it in
	// using the edge's position and length.
	Unknown []string
}

// String renders a token the way relevance fixtures compare against:
// an alias token verbatim, a number as its decimal value, and an unknown
// term as the surface words it covers joined by underscores.
func (t Token) String() string {
	switch t.Kind {
	case EdgeNumber:
		return fmt.Sprintf("%d", t.Value)
	case EdgeUnknown:
		if len(t.Unknown) == 0 {
			return "?"
		}
		out := t.Unknown[0]
		for _, w := range t.Unknown[1:] {
			out += "_" + w
		}
		return out
	default:
		return t.AliasToken
	}
}
