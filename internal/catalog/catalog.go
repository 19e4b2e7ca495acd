package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	lcierrors "github.com/standardbeagle/tokcat/internal/errors"
	"github.com/standardbeagle/tokcat/internal/lexicon"
	"github.com/standardbeagle/tokcat/internal/logging"
	"github.com/standardbeagle/tokcat/internal/matcher"
	"go.uber.org/zap"
)

// AliasRecord is one alias entry in a catalog YAML file.
type AliasRecord struct {
	Token   string `yaml:"token"`
	Text    string `yaml:"text"`
	Matcher string `yaml:"matcher,omitempty"`
}

// DomainRecord is one domain entry in a catalog YAML file.
type DomainRecord struct {
	Name      string        `yaml:"name"`
	Ingestion bool          `yaml:"ingestion"`
	Matcher   string        `yaml:"matcher"`
	Aliases   []AliasRecord `yaml:"aliases"`
}

// file is the top-level YAML document shape.
type file struct {
	Domains []DomainRecord `yaml:"domains"`
}

// Catalog is the decoded, validated in-memory form of one or more catalog
// YAML files.
type Catalog struct {
	Domains []DomainRecord
}

// Load reads one YAML file into a Catalog, validating that every alias
// carries non-empty text before returning.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lcierrors.NewParseError(path, 0, 0, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, lcierrors.NewParseError(path, 0, 0, err)
	}

	for _, d := range f.Domains {
		for i, a := range d.Aliases {
			if strings.TrimSpace(a.Text) == "" {
				return nil, lcierrors.NewCatalogError(d.Name, i, fmt.Errorf("alias %q in %s has empty text", a.Token, path))
			}
		}
	}

	logging.L().Debug("loaded catalog file",
		zap.String("path", path),
		zap.Int("domains", len(f.Domains)))

	return &Catalog{Domains: f.Domains}, nil
}

// LoadLenient reads one YAML file like Load, but never fails fast on a
// validation error: every alias with empty text is collected into the
// returned error slice instead of aborting on the first one, so a `catalog
// validate` command can report every problem in the file in one pass. A
// malformed YAML document still fails immediately, since there is no
// partial Catalog to report against in that case.
func LoadLenient(path string) (*Catalog, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{lcierrors.NewParseError(path, 0, 0, err)}
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, []error{lcierrors.NewParseError(path, 0, 0, err)}
	}

	var errs []error
	for _, d := range f.Domains {
		for i, a := range d.Aliases {
			if strings.TrimSpace(a.Text) == "" {
				errs = append(errs, lcierrors.NewCatalogError(d.Name, i, fmt.Errorf("alias %q in %s has empty text", a.Token, path)))
			}
		}
	}

	return &Catalog{Domains: f.Domains}, errs
}

// LoadDir reads and merges every *.yaml/*.yml file in dir, in lexical
// filename order. Domain names must be unique across the merged set.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, lcierrors.NewParseError(dir, 0, 0, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	merged := &Catalog{}
	seen := make(map[string]struct{})
	for _, name := range names {
		c, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		for _, d := range c.Domains {
			if _, ok := seen[d.Name]; ok {
				return nil, lcierrors.NewCatalogError(d.Name, -1, fmt.Errorf("duplicate domain name across catalog files in %s", dir))
			}
			seen[d.Name] = struct{}{}
		}
		merged.Domains = append(merged.Domains, c.Domains...)
	}

	logging.L().Info("loaded catalog directory",
		zap.String("dir", dir),
		zap.Int("files", len(names)),
		zap.Int("domains", len(merged.Domains)))

	return merged, nil
}

// IntoLexicon registers every decoded domain onto lex.
func (c *Catalog) IntoLexicon(lex *lexicon.Lexicon) error {
	for _, d := range c.Domains {
		items := make([]lexicon.AliasInput, len(d.Aliases))
		for i, a := range d.Aliases {
			items[i] = lexicon.AliasInput{
				Token:   a.Token,
				Text:    a.Text,
				Matcher: matcher.Name(a.Matcher),
			}
		}
		if _, err := lex.AddDomain(d.Name, items, d.Ingestion, matcher.Name(d.Matcher)); err != nil {
			return err
		}
		logging.L().Info("registered domain",
			zap.String("domain", d.Name),
			zap.Int("aliasCount", len(d.Aliases)),
			zap.Bool("ingestion", d.Ingestion))
	}
	return nil
}
