package tokenizer

import (
	"testing"

	"github.com/standardbeagle/tokcat/internal/matcher"
	"github.com/standardbeagle/tokcat/internal/numparse"
	"github.com/standardbeagle/tokcat/internal/term"
)

func newFixture() (*term.Model, *numparse.Parser, *Tokenizer) {
	m := term.NewModel()
	np := numparse.NewParser(m)
	tok := New(m, np)
	return m, np, tok
}

func noDownstream(term.Hash) bool { return false }

func buildAlias(m *term.Model, token, text string, mf matcher.Func) *Alias {
	terms := splitWords(text)
	stemmed := make([]string, len(terms))
	hashes := make([]term.Hash, len(terms))
	for i, w := range terms {
		stemmed[i] = m.Stem(w)
		hashes[i] = m.HashTerm(stemmed[i])
	}
	return &Alias{
		Token:            token,
		Text:             text,
		Terms:            terms,
		Stemmed:          stemmed,
		Hashes:           hashes,
		Matcher:          mf,
		IsDownstreamTerm: noDownstream,
	}
}

func splitWords(s string) []string {
	var out []string
	word := ""
	for _, r := range s {
		if r == ' ' {
			if word != "" {
				out = append(out, word)
				word = ""
			}
			continue
		}
		word += string(r)
	}
	if word != "" {
		out = append(out, word)
	}
	return out
}

func TestPostingsScenario(t *testing.T) {
	m, _, tok := newFixture()

	a0 := buildAlias(m, "a0", "a b c", matcher.ExactPrefixMatch)
	a1 := buildAlias(m, "a1", "b c d", matcher.ExactPrefixMatch)
	a2 := buildAlias(m, "a2", "d e f", matcher.ExactPrefixMatch)

	tok.AddItem(a0)
	tok.AddItem(a1)
	tok.AddItem(a2)

	check := func(word string, wantIDs []int, wantFreq int) {
		h := m.StemAndHash(word)
		got := tok.Postings(h)
		if len(got) != len(wantIDs) {
			t.Fatalf("%s: postings = %v, want %v", word, got, wantIDs)
		}
		for i := range wantIDs {
			if got[i] != wantIDs[i] {
				t.Errorf("%s: postings[%d] = %d, want %d", word, i, got[i], wantIDs[i])
			}
		}
		if gotFreq := tok.Frequency(h); gotFreq != wantFreq {
			t.Errorf("%s: frequency = %d, want %d", word, gotFreq, wantFreq)
		}
	}

	check("a", []int{0}, 1)
	check("b", []int{0, 1}, 2)
	check("c", []int{0, 1}, 2)
	check("d", []int{1, 2}, 2)
	check("e", []int{2}, 1)
	check("f", []int{2}, 1)
}

func TestAddItemTotalPostingsInvariant(t *testing.T) {
	m, _, tok := newFixture()
	aliases := []*Alias{
		buildAlias(m, "a0", "red convertible sedan", matcher.ExactPrefixMatch),
		buildAlias(m, "a1", "knobby tires", matcher.ApproximateMatch),
	}
	total := 0
	for _, a := range aliases {
		tok.AddItem(a)
		total += len(a.Hashes)
	}

	sum := 0
	for _, a := range aliases {
		for _, h := range a.Hashes {
			postings := tok.Postings(h)
			found := false
			for _, id := range postings {
				if id == a.ID {
					found = true
				}
			}
			if !found {
				t.Errorf("postings for %v missing alias id %d", h, a.ID)
			}
		}
	}
	for h := range tok.postings {
		sum += len(tok.postings[h])
	}
	if sum != total {
		t.Errorf("total postings = %d, want %d", sum, total)
	}
}

func TestGenerateGraphRoundTrip(t *testing.T) {
	m, _, tok := newFixture()
	alias := buildAlias(m, "car:honda_civic", "honda civic", matcher.ExactPrefixMatch)
	tok.AddItem(alias)

	lattice := tok.GenerateGraph(alias.Hashes, alias.Stemmed)
	if len(lattice) != 2 {
		t.Fatalf("expected lattice of length 2, got %d", len(lattice))
	}
	best := lattice[0][0]
	if best.Kind != EdgeAlias || best.Label != int64(alias.ID) {
		t.Errorf("expected best edge at position 0 to be the alias itself, got %+v", best)
	}
	token := tok.TokenFromEdge(best)
	if token.AliasToken != "car:honda_civic" {
		t.Errorf("unexpected token %+v", token)
	}
}

func TestGenerateGraphEmptyQuery(t *testing.T) {
	_, _, tok := newFixture()
	lattice := tok.GenerateGraph(nil, nil)
	if len(lattice) != 0 {
		t.Errorf("expected empty lattice for empty query, got %v", lattice)
	}
}

func TestGenerateGraphAllUnknown(t *testing.T) {
	m, _, tok := newFixture()
	hashes := []term.Hash{m.StemAndHash("xyzzy"), m.StemAndHash("plugh")}
	lattice := tok.GenerateGraph(hashes, []string{"xyzzy", "plugh"})
	for i, edges := range lattice {
		if len(edges) != 1 || edges[0].Kind != EdgeUnknown || edges[0].Label != UnknownLabel {
			t.Errorf("position %d: expected single unknown edge, got %+v", i, edges)
		}
	}
}

func TestGenerateGraphNumberOnlyQuery(t *testing.T) {
	m, _, tok := newFixture()
	hashes := []term.Hash{m.StemAndHash("twenty"), m.StemAndHash("one")}
	lattice := tok.GenerateGraph(hashes, []string{"twenty", "one"})

	var numberEdge Edge
	found := false
	for _, e := range lattice[0] {
		if e.Kind == EdgeNumber && e.Length == 2 {
			numberEdge = e
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a length-2 number edge at position 0, got %+v", lattice[0])
	}
	if numberEdge.Score != 2 {
		t.Errorf("expected score 2 (matchFactor=1 x commonFactor=1 x positionFactor=1 x lengthFactor=2), got %v", numberEdge.Score)
	}
}
