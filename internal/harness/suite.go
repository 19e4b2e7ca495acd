package harness

import (
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	lcierrors "github.com/standardbeagle/tokcat/internal/errors"
	"github.com/standardbeagle/tokcat/internal/graph"
	"github.com/standardbeagle/tokcat/internal/logging"
	"github.com/standardbeagle/tokcat/internal/term"
	"github.com/standardbeagle/tokcat/internal/tokenizer"
	"go.uber.org/zap"
)

// Case is one relevance fixture: an input utterance and the whitespace-split
// token strings the tokenizer is expected to emit for it, tagged with the
// suites it belongs to. A case with no Suites runs only when Run is given no
// suite filter.
type Case struct {
	Priority int      `yaml:"priority"`
	Suites   []string `yaml:"suites"`
	Input    string   `yaml:"input"`
	Expected string   `yaml:"expected"`
}

type suiteFile struct {
	Cases []Case `yaml:"cases"`
}

// Suite is a decoded set of relevance cases.
type Suite struct {
	Cases []Case
}

// LoadSuite reads one YAML file into a Suite.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lcierrors.NewParseError(path, 0, 0, err)
	}

	var f suiteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, lcierrors.NewParseError(path, 0, 0, err)
	}

	logging.L().Debug("loaded relevance suite",
		zap.String("path", path),
		zap.Int("cases", len(f.Cases)))

	return &Suite{Cases: f.Cases}, nil
}

// CaseResult is one case's outcome.
type CaseResult struct {
	Case     Case
	Passed   bool
	Emitted  []string
	Duration time.Duration
}

// Report aggregates every case's outcome for one Run.
type Report struct {
	Results []CaseResult
	Passed  int
	Failed  int
}

// selected reports whether c should run given the requested suite filter.
// An empty filter runs every case.
func selected(c Case, suites []string) bool {
	if len(suites) == 0 {
		return true
	}
	for _, want := range suites {
		for _, have := range c.Suites {
			if want == have {
				return true
			}
		}
	}
	return false
}

// Run tokenizes every selected case's input against tok and compares the
// emitted token strings, in order, to the whitespace-split expected field.
// Cases run concurrently on a bounded errgroup when more than one is
// selected; tok is read-only from Run's perspective, and each case builds
// its own private lattice and walker, matching the "shared read-only core,
// private per-query state" concurrency rule.
func (s *Suite) Run(tok *tokenizer.Tokenizer, suites ...string) Report {
	var selectedCases []Case
	for _, c := range s.Cases {
		if selected(c, suites) {
			selectedCases = append(selectedCases, c)
		}
	}

	results := make([]CaseResult, len(selectedCases))

	if len(selectedCases) <= 1 {
		for i, c := range selectedCases {
			results[i] = runCase(tok, c)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(8)
		for i, c := range selectedCases {
			i, c := i, c
			g.Go(func() error {
				results[i] = runCase(tok, c)
				return nil
			})
		}
		_ = g.Wait()
	}

	report := Report{Results: results}
	for _, r := range results {
		if r.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	logging.L().Info("ran relevance suite",
		zap.Int("total", len(results)),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed))

	return report
}

// runCase tokenizes one case's input and drives a walker to check whether
// some complete path's emitted token strings equal the expected sequence.
// On a mismatch at the current position, it backtracks via Retreat(false)
// + Discard and retries the same position before giving up on the case.
func runCase(tok *tokenizer.Tokenizer, c Case) CaseResult {
	start := time.Now()

	words := strings.Fields(strings.ToLower(c.Input))
	expected := strings.Fields(c.Expected)

	model := tok.Model()
	stems := make([]string, len(words))
	hashes := make([]term.Hash, len(words))
	for i, w := range words {
		stems[i] = model.Stem(w)
		hashes[i] = model.HashTerm(stems[i])
	}

	lattice := tok.GenerateGraph(hashes, stems)
	w := graph.NewWalker(lattice, len(words))

	var emitted []string
	expectedIdx := 0
	passed := false

	for {
		if w.Complete() {
			passed = expectedIdx == len(expected)
			break
		}
		if expectedIdx >= len(expected) {
			passed = false
			break
		}
		if !w.Advance() {
			passed = false
			break
		}

		edges := w.Left()
		edge := edges[len(edges)-1]
		pos := w.Current() - edge.Length

		tk := tok.TokenFromEdge(edge)
		if edge.Kind == tokenizer.EdgeUnknown {
			tk.Unknown = words[pos : pos+edge.Length]
		}
		surface := tk.String()

		if surface == expected[expectedIdx] {
			emitted = append(emitted, surface)
			expectedIdx++
			continue
		}

		w.Retreat(false)
		if !w.Discard() {
			passed = false
			break
		}
	}

	return CaseResult{
		Case:     c,
		Passed:   passed,
		Emitted:  emitted,
		Duration: time.Since(start),
	}
}
