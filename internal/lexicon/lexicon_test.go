package lexicon

import (
	"errors"
	"testing"

	lcierrors "github.com/standardbeagle/tokcat/internal/errors"
	"github.com/standardbeagle/tokcat/internal/matcher"
	"github.com/standardbeagle/tokcat/internal/tokenizer"
)

func TestAddDomainRejectsEmptyText(t *testing.T) {
	l := New()
	_, err := l.AddDomain("cars", []AliasInput{{Token: "car:x", Text: "   "}}, true, matcher.ExactPrefix)
	if err == nil {
		t.Fatal("expected error for empty alias text")
	}
	var catErr *lcierrors.CatalogError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected a CatalogError, got %v (%T)", err, err)
	}
	if catErr.Domain != "cars" || catErr.AliasIndex != 0 {
		t.Errorf("unexpected error context: %+v", catErr)
	}
}

func TestAddDomainStemsAndHashes(t *testing.T) {
	l := New()
	d, err := l.AddDomain("cars", []AliasInput{{Token: "car:civic", Text: "honda civic"}}, true, matcher.ExactPrefix)
	if err != nil {
		t.Fatal(err)
	}
	a := d.Aliases[0]
	if len(a.Terms) != 2 || len(a.Stemmed) != 2 || len(a.Hashes) != 2 {
		t.Fatalf("expected parallel arrays of length 2, got %+v", a)
	}
}

func TestDownstreamSetExcludesOwnDomain(t *testing.T) {
	l := New()
	cars, _ := l.AddDomain("cars", []AliasInput{{Token: "car:civic", Text: "honda civic"}}, true, matcher.ExactPrefix)
	_, _ = l.AddDomain("attrs", []AliasInput{{Token: "attr:color:red", Text: "red"}}, true, matcher.ExactPrefix)

	tok := tokenizer.New(l.Model, l.NumParser)
	if err := l.Ingest(tok); err != nil {
		t.Fatal(err)
	}

	hondaHash := l.Model.StemAndHash("honda")
	redHash := l.Model.StemAndHash("red")

	if cars.isDownstreamTerm(hondaHash) {
		t.Errorf("cars domain should not consider its own term downstream")
	}
	if !cars.isDownstreamTerm(redHash) {
		t.Errorf("cars domain should consider the attrs domain's term downstream")
	}
}

func TestIngestFeedsOnlyIngestionDomains(t *testing.T) {
	l := New()
	_, _ = l.AddDomain("cars", []AliasInput{{Token: "car:civic", Text: "honda civic"}}, true, matcher.ExactPrefix)
	_, _ = l.AddDomain("hidden", []AliasInput{{Token: "hidden:x", Text: "ghost term"}}, false, matcher.ExactPrefix)

	tok := tokenizer.New(l.Model, l.NumParser)
	if err := l.Ingest(tok); err != nil {
		t.Fatal(err)
	}

	ghostHash := l.Model.StemAndHash("ghost")
	if postings := tok.Postings(ghostHash); len(postings) != 0 {
		t.Errorf("non-ingestion domain should not be indexed, got postings %v", postings)
	}
	hondaHash := l.Model.StemAndHash("honda")
	if postings := tok.Postings(hondaHash); len(postings) != 1 {
		t.Errorf("expected ingestion domain to be indexed, got %v", postings)
	}
}

func TestIngestIdempotenceModuloDuplicates(t *testing.T) {
	l := New()
	items := []AliasInput{{Token: "car:civic", Text: "honda civic"}}
	_, _ = l.AddDomain("cars", items, true, matcher.ExactPrefix)

	tok1 := tokenizer.New(l.Model, l.NumParser)
	_ = l.Ingest(tok1)

	l2 := New()
	_, _ = l2.AddDomain("cars", items, true, matcher.ExactPrefix)
	tok2 := tokenizer.New(l2.Model, l2.NumParser)
	_ = l2.Ingest(tok2)

	hondaHash := l.Model.StemAndHash("honda")
	if len(tok1.Postings(hondaHash)) != len(tok2.Postings(hondaHash)) {
		t.Errorf("re-ingesting the same alias set should yield identical postings counts")
	}
}

func TestTermsIncludesNumberWords(t *testing.T) {
	l := New()
	_, _ = l.AddDomain("cars", []AliasInput{{Token: "car:civic", Text: "honda civic"}}, true, matcher.ExactPrefix)
	terms := l.Terms()
	if _, ok := terms["honda"]; !ok {
		t.Errorf("expected alias term in set")
	}
	if _, ok := terms["seven"]; !ok {
		t.Errorf("expected number parser word in set")
	}
}
