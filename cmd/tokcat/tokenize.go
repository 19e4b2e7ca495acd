package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/tokcat/internal/graph"
	"github.com/standardbeagle/tokcat/internal/suggest"
	"github.com/standardbeagle/tokcat/internal/term"
	"github.com/standardbeagle/tokcat/internal/tokenizer"
)

var tokenizeCommand = &cli.Command{
	Name:      "tokenize",
	Usage:     "tokenize one utterance against a catalog",
	ArgsUsage: "<utterance>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "catalog", Required: true, Usage: "catalog YAML file or directory"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.Exit("tokenize requires an utterance argument", 1)
		}
		utterance := strings.Join(c.Args().Slice(), " ")

		lex, tok, err := buildTokenizer(c.String("catalog"))
		if err != nil {
			return err
		}

		words := strings.Fields(strings.ToLower(utterance))
		if len(words) == 0 {
			fmt.Println("(empty utterance)")
			return nil
		}

		stems := make([]string, len(words))
		hashVals := make([]term.Hash, len(words))
		for i, w := range words {
			stems[i] = lex.Model.Stem(w)
			hashVals[i] = lex.Model.HashTerm(stems[i])
		}

		lattice := tok.GenerateGraph(hashVals, stems)
		w := graph.NewWalker(lattice, len(words))
		path, ok := w.AdvanceToCompletion()
		if !ok {
			fmt.Println("no complete path found")
			return nil
		}

		pos := 0
		terms := lex.Terms()
		candidates := make([]string, 0, len(terms))
		for t := range terms {
			candidates = append(candidates, t)
		}

		for _, edge := range path {
			tk := tok.TokenFromEdge(edge)
			if edge.Kind == tokenizer.EdgeUnknown {
				tk.Unknown = words[pos : pos+edge.Length]
			}
			fmt.Printf("%-24s score=%.4f len=%d\n", tk.String(), edge.Score, edge.Length)

			if edge.Kind == tokenizer.EdgeUnknown {
				for _, word := range tk.Unknown {
					if m := suggest.Rank(word, candidates, 3); len(m) > 0 {
						fmt.Printf("  did you mean %q for %q? (score=%.2f)\n", m[0].Text, word, m[0].Score)
					}
				}
			}
			pos += edge.Length
		}
		return nil
	},
}
