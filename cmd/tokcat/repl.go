package main

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/tokcat/internal/graph"
	"github.com/standardbeagle/tokcat/internal/lexicon"
	"github.com/standardbeagle/tokcat/internal/logging"
	"github.com/standardbeagle/tokcat/internal/replcache"
	"github.com/standardbeagle/tokcat/internal/term"
	"github.com/standardbeagle/tokcat/internal/tokenizer"
)

var replCommand = &cli.Command{
	Name:  "repl",
	Usage: "interactive utterance tokenizer with path stepping",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "catalog", Required: true, Usage: "catalog YAML file or directory"},
		&cli.StringFlag{Name: "log-file", Value: "tokcat-repl.log", Usage: "file to write structured logs to, so the REPL UI stays clean"},
	},
	Action: func(c *cli.Context) error {
		logger, err := logging.NewREPLLogger(c.String("log-file"))
		if err != nil {
			return err
		}
		logging.SetGlobal(logger)
		defer logger.Sync()

		lex, tok, err := buildTokenizer(c.String("catalog"))
		if err != nil {
			return err
		}

		m := newReplModel(lex, tok)
		p := tea.NewProgram(m)
		_, err = p.Run()
		return err
	},
}

type replModel struct {
	lex *lexicon.Lexicon
	tok *tokenizer.Tokenizer

	input   string
	cache   *replcache.LRU
	walker  *graph.Walker
	words   []string
	path    []tokenizer.Edge
	status  string
	stepped bool
}

func newReplModel(lex *lexicon.Lexicon, tok *tokenizer.Tokenizer) *replModel {
	return &replModel{
		lex:   lex,
		tok:   tok,
		cache: replcache.New(100),
	}
}

func (m *replModel) Init() tea.Cmd { return nil }

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.runQuery()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRight:
		m.advance()
	case tea.KeyLeft:
		m.retreatAndDiscard()
	default:
		m.input += keyMsg.String()
	}
	return m, nil
}

// runQuery builds (or reuses, via the xxhash-keyed cache) the lattice for
// the current input line and starts a fresh walker over it.
func (m *replModel) runQuery() {
	normalized := strings.ToLower(strings.TrimSpace(m.input))
	if normalized == "" {
		return
	}
	key := xxhash.Sum64String(normalized)

	entry, ok := m.cache.Get(key)
	if !ok {
		words := strings.Fields(normalized)
		stems := make([]string, len(words))
		hashes := make([]term.Hash, len(words))
		for i, w := range words {
			stems[i] = m.lex.Model.Stem(w)
			hashes[i] = m.lex.Model.HashTerm(stems[i])
		}
		entry = replcache.Entry{Lattice: m.tok.GenerateGraph(hashes, stems), Words: words}
		m.cache.Set(key, entry)
	}

	m.words = entry.Words
	m.walker = graph.NewWalker(entry.Lattice, len(entry.Words))
	m.path = nil
	m.stepped = true
	m.advanceToEnd()
}

func (m *replModel) advanceToEnd() {
	if m.walker == nil {
		return
	}
	path, ok := m.walker.AdvanceToCompletion()
	if !ok {
		m.status = "no complete path"
		m.path = nil
		return
	}
	m.path = path
	m.status = "complete"
}

func (m *replModel) advance() {
	if m.walker == nil || m.walker.Complete() {
		return
	}
	m.walker.Advance()
	m.path = append([]tokenizer.Edge(nil), m.walker.Left()...)
}

func (m *replModel) retreatAndDiscard() {
	if m.walker == nil {
		return
	}
	if m.walker.Retreat(false) {
		if m.walker.Discard() {
			m.status = "discarded, next-best completion available"
		} else {
			m.status = "discarded, no alternative at this position"
		}
	}
	m.path = append([]tokenizer.Edge(nil), m.walker.Left()...)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tokenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m *replModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("tokcat repl"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "> %s\n\n", m.input)

	if m.stepped {
		pos := 0
		for _, edge := range m.path {
			tk := m.tok.TokenFromEdge(edge)
			if edge.Kind == tokenizer.EdgeUnknown && pos+edge.Length <= len(m.words) {
				tk.Unknown = m.words[pos : pos+edge.Length]
			}
			fmt.Fprintf(&b, "  %s %s\n", tokenStyle.Render(tk.String()), dimStyle.Render(fmt.Sprintf("score=%.3f", edge.Score)))
			pos += edge.Length
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: tokenize  →: advance  ←: retreat+discard  esc: quit"))
	return b.String()
}
