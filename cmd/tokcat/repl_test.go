package main

import (
	"testing"

	"github.com/standardbeagle/tokcat/internal/lexicon"
	"github.com/standardbeagle/tokcat/internal/matcher"
	"github.com/standardbeagle/tokcat/internal/tokenizer"
)

func buildReplFixture(t *testing.T) *replModel {
	t.Helper()
	lex := lexicon.New()
	if _, err := lex.AddDomain("cars", []lexicon.AliasInput{
		{Token: "car:honda_civic", Text: "honda civic"},
	}, true, matcher.Approximate); err != nil {
		t.Fatal(err)
	}

	tok := tokenizer.New(lex.Model, lex.NumParser)
	if err := lex.Ingest(tok); err != nil {
		t.Fatal(err)
	}

	return newReplModel(lex, tok)
}

func TestReplRunQueryCachesByNormalizedInput(t *testing.T) {
	m := buildReplFixture(t)
	m.input = "Honda Civic"
	m.runQuery()

	if m.status != "complete" {
		t.Fatalf("expected a complete path, got status %q", m.status)
	}
	if m.cache.Size() != 1 {
		t.Fatalf("expected one cache entry, got %d", m.cache.Size())
	}

	m.input = "honda civic"
	m.runQuery()
	if m.cache.Size() != 1 {
		t.Fatalf("expected the normalized form to reuse the same cache entry, got %d entries", m.cache.Size())
	}
}

func TestReplRetreatAndDiscardReportsNoAlternative(t *testing.T) {
	m := buildReplFixture(t)
	m.input = "honda civic"
	m.runQuery()

	before := append([]tokenizer.Edge(nil), m.path...)
	m.retreatAndDiscard()
	if m.status != "discarded, no alternative at this position" {
		t.Errorf("expected the only edge at position 0 to leave no alternative, got status %q", m.status)
	}
	m.advanceToEnd()

	if len(before) == 0 {
		t.Fatal("expected a non-empty initial path")
	}
}
