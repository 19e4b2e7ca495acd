package main

import (
	"fmt"
	"os"

	"github.com/standardbeagle/tokcat/internal/catalog"
	"github.com/standardbeagle/tokcat/internal/lexicon"
	"github.com/standardbeagle/tokcat/internal/tokenizer"
)

// loadCatalog reads a single catalog file or every catalog file in a
// directory, depending on what path names on disk.
func loadCatalog(path string) (*catalog.Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return catalog.LoadDir(path)
	}
	return catalog.Load(path)
}

// buildTokenizer loads the catalog at path and ingests it into a fresh
// lexicon and tokenizer, returning both so callers can stem/hash queries
// and suggest against unmatched terms.
func buildTokenizer(path string) (*lexicon.Lexicon, *tokenizer.Tokenizer, error) {
	c, err := loadCatalog(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}

	lex := lexicon.New()
	if err := c.IntoLexicon(lex); err != nil {
		return nil, nil, fmt.Errorf("registering catalog: %w", err)
	}

	tok := tokenizer.New(lex.Model, lex.NumParser)
	if err := lex.Ingest(tok); err != nil {
		return nil, nil, fmt.Errorf("ingesting lexicon: %w", err)
	}

	return lex, tok, nil
}
