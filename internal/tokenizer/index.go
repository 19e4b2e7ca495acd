package tokenizer

import (
	"sort"

	"github.com/standardbeagle/tokcat/internal/matcher"
	"github.com/standardbeagle/tokcat/internal/numparse"
	"github.com/standardbeagle/tokcat/internal/term"
)

// Tokenizer owns the inverted index, the scorer, and the lattice builder.
// It is appended to at ingestion time via AddItem and is read-only
// thereafter; a Tokenizer may be shared across concurrent queries as long
// as each query builds its own Lattice.
type Tokenizer struct {
	model     *term.Model
	numParser *numparse.Parser

	aliases    []*Alias
	postings   map[term.Hash][]int
	freq       map[term.Hash]int
	hashToText map[term.Hash]string
}

// New builds an empty Tokenizer over model and numParser.
func New(model *term.Model, numParser *numparse.Parser) *Tokenizer {
	return &Tokenizer{
		model:      model,
		numParser:  numParser,
		postings:   make(map[term.Hash][]int),
		freq:       make(map[term.Hash]int),
		hashToText: make(map[term.Hash]string),
	}
}

// AddItem assigns the next dense alias id, appends it to every
// fingerprint's postings list, bumps the frequency counter for each
// occurrence, and records the stem text for each fingerprint on first
// sight. Duplicate fingerprints within one alias are appended once per
// occurrence, matching the reference's postings behavior.
func (t *Tokenizer) AddItem(a *Alias) int {
	id := len(t.aliases)
	a.ID = id
	t.aliases = append(t.aliases, a)

	for i, h := range a.Hashes {
		t.postings[h] = append(t.postings[h], id)
		t.freq[h]++
		if _, ok := t.hashToText[h]; !ok {
			t.hashToText[h] = a.Stemmed[i]
		}
	}
	return id
}

// Postings returns the alias ids indexed under fingerprint h, for tests and
// diagnostics.
func (t *Tokenizer) Postings(h term.Hash) []int {
	return t.postings[h]
}

// Frequency returns how many times fingerprint h occurs across all
// registered aliases.
func (t *Tokenizer) Frequency(h term.Hash) int {
	return t.freq[h]
}

// HashToText decodes a fingerprint back to the stem text recorded for it at
// first sight. Per the preserved design note, this is stemmed text, not the
// original surface text.
func (t *Tokenizer) HashToText(h term.Hash) (string, bool) {
	s, ok := t.hashToText[h]
	return s, ok
}

// Alias returns the alias registered under id.
func (t *Tokenizer) Alias(id int) *Alias {
	return t.aliases[id]
}

// Model returns the term model this tokenizer was built over, so callers
// that only hold a *Tokenizer (e.g. the relevance harness) can stem and
// hash a query without separately threading a *term.Model through.
func (t *Tokenizer) Model() *term.Model {
	return t.model
}

// GenerateGraph builds the lattice for a query already reduced to
// fingerprints (hashes) and their parallel stems.
func (t *Tokenizer) GenerateGraph(hashes []term.Hash, stems []string) Lattice {
	n := len(hashes)
	lattice := make(Lattice, n)

	for i := 0; i < n; i++ {
		tail := hashes[i:]
		var edges []Edge

		if ids, ok := t.postings[hashes[i]]; ok {
			for _, id := range ids {
				alias := t.aliases[id]
				diff := alias.Matcher(tail, alias.Hashes, alias.IsDownstreamTerm, t.model.IsTokenHash)
				score, length := scoreDiff(alias.Hashes, alias.IsDownstreamTerm, diff)
				if length > 0 {
					edges = append(edges, Edge{Score: score, Length: length, Label: int64(id), Kind: EdgeAlias})
				}
			}
		}

		var numMatches []numparse.Match
		t.numParser.Parse(tail, &numMatches)
		for _, nm := range numMatches {
			seg := tail[:nm.Length]
			common := make(map[term.Hash]struct{}, len(seg))
			for _, h := range seg {
				common[h] = struct{}{}
			}
			diff := matcher.DiffResults{
				Match:       seg,
				Cost:        0,
				LeftmostA:   0,
				RightmostA:  nm.Length - 1,
				Alignments:  nm.Length,
				CommonTerms: common,
			}
			score, length := scoreDiff(seg, func(term.Hash) bool { return false }, diff)
			if length > 0 {
				edges = append(edges, Edge{Score: score, Length: length, Label: nm.Value, Kind: EdgeNumber})
			}
		}

		if len(edges) == 0 {
			edges = append(edges, Edge{Score: 0, Length: 1, Label: UnknownLabel, Kind: EdgeUnknown})
		}

		sort.SliceStable(edges, func(a, b int) bool { return edges[a].Score > edges[b].Score })
		lattice[i] = edges
	}

	return lattice
}

// TokenFromEdge maps an edge to the token it emits.
func (t *Tokenizer) TokenFromEdge(e Edge) Token {
	switch e.Kind {
	case EdgeNumber:
		return Token{Kind: EdgeNumber, Value: e.Label}
	case EdgeUnknown:
		return Token{Kind: EdgeUnknown}
	default:
		alias := t.aliases[e.Label]
		return Token{Kind: EdgeAlias, AliasToken: alias.Token}
	}
}
