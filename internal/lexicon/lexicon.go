package lexicon

import (
	"strings"

	lcierrors "github.com/standardbeagle/tokcat/internal/errors"
	"github.com/standardbeagle/tokcat/internal/matcher"
	"github.com/standardbeagle/tokcat/internal/numparse"
	"github.com/standardbeagle/tokcat/internal/term"
	"github.com/standardbeagle/tokcat/internal/tokenizer"
)

// AliasInput is the raw {token, text} pair a caller (typically the catalog
// loader) registers for a domain.
type AliasInput struct {
	Token   string
	Text    string
	Matcher matcher.Name // overrides the domain's matcher when non-empty
}

// Domain is a named group of aliases sharing provenance. A domain may be
// ingestion=false, in which case its aliases are exposed only as downstream
// fingerprints to other domains and are never indexed by the tokenizer.
type Domain struct {
	Name          string
	Ingestion     bool
	DefaultMatch  matcher.Name
	Aliases       []*tokenizer.Alias
	ownSet        map[term.Hash]struct{}
	downstreamSet map[term.Hash]struct{}
}

func (d *Domain) isDownstreamTerm(h term.Hash) bool {
	if d.downstreamSet == nil {
		return false
	}
	_, ok := d.downstreamSet[h]
	return ok
}

// Lexicon owns the term model, the number parser, and an ordered list of
// domains. It is built once and is read-only after Ingest runs.
type Lexicon struct {
	Model     *term.Model
	NumParser *numparse.Parser
	Domains   []*Domain
}

// New builds a Lexicon with a fresh term model and number parser.
func New() *Lexicon {
	m := term.NewModel()
	return &Lexicon{
		Model:     m,
		NumParser: numparse.NewParser(m),
	}
}

// AddDomain registers a new domain and stems/hashes each of its aliases.
// Registration is an idempotent append: calling AddDomain twice for aliases
// already present duplicates postings when ingested, by design (see the
// idempotence law in the test suite).
func (l *Lexicon) AddDomain(name string, items []AliasInput, ingestion bool, defaultMatcher matcher.Name) (*Domain, error) {
	d := &Domain{Name: name, Ingestion: ingestion, DefaultMatch: defaultMatcher}

	for i, item := range items {
		text := strings.TrimSpace(strings.ToLower(item.Text))
		if text == "" {
			return nil, lcierrors.NewCatalogError(name, i, errEmptyText)
		}

		mname := defaultMatcher
		if item.Matcher != "" {
			mname = item.Matcher
		}
		mf, ok := matcher.Lookup(mname)
		if !ok {
			return nil, lcierrors.NewCatalogError(name, i, errUnknownMatcher(mname))
		}

		terms := strings.Fields(text)
		stemmed := make([]string, len(terms))
		hashes := make([]term.Hash, len(terms))
		for j, w := range terms {
			stemmed[j] = l.Model.Stem(w)
			hashes[j] = l.Model.HashTerm(stemmed[j])
		}

		alias := &tokenizer.Alias{
			Token:            item.Token,
			Text:             text,
			Terms:            terms,
			Stemmed:          stemmed,
			Hashes:           hashes,
			Matcher:          mf,
			IsDownstreamTerm: d.isDownstreamTerm,
		}
		d.Aliases = append(d.Aliases, alias)
	}

	l.Domains = append(l.Domains, d)
	return d, nil
}

// Ingest computes every domain's downstream fingerprint set, then hands
// every ingestion domain's aliases to tok.
func (l *Lexicon) Ingest(tok *tokenizer.Tokenizer) error {
	ownSets := make([]map[term.Hash]struct{}, len(l.Domains))
	for i, d := range l.Domains {
		own := make(map[term.Hash]struct{})
		for _, a := range d.Aliases {
			for _, h := range a.Hashes {
				own[h] = struct{}{}
			}
		}
		d.ownSet = own
		ownSets[i] = own
	}

	numeric := l.NumParser.OwnHashedTerms()

	for i, d := range l.Domains {
		downstream := make(map[term.Hash]struct{}, len(numeric))
		for h := range numeric {
			downstream[h] = struct{}{}
		}
		for j, other := range ownSets {
			if j == i {
				continue
			}
			for h := range other {
				downstream[h] = struct{}{}
			}
		}
		d.downstreamSet = downstream
	}

	for _, d := range l.Domains {
		if !d.Ingestion {
			continue
		}
		for _, a := range d.Aliases {
			tok.AddItem(a)
		}
	}

	return nil
}

// Terms returns the union of every registered alias's surface terms plus
// the number parser's own recognized words.
func (l *Lexicon) Terms() map[string]struct{} {
	set := make(map[string]struct{})
	for _, d := range l.Domains {
		for _, a := range d.Aliases {
			for _, w := range a.Terms {
				set[w] = struct{}{}
			}
		}
	}
	l.NumParser.AddTermsToSet(set)
	return set
}

var errEmptyText = emptyTextError{}

type emptyTextError struct{}

func (emptyTextError) Error() string { return "alias text must not be empty" }

type unknownMatcherError string

func (e unknownMatcherError) Error() string { return "unknown matcher: " + string(e) }

func errUnknownMatcher(name matcher.Name) error {
	return unknownMatcherError(string(name))
}
