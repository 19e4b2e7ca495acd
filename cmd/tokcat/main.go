// Command tokcat tokenizes utterances against a YAML alias catalog: it
// builds a lexicon and tokenizer from the catalog, then either tokenizes a
// single utterance, runs a relevance suite, validates a catalog, or drops
// into an interactive REPL.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/tokcat/internal/logging"
)

func main() {
	app := &cli.App{
		Name:  "tokcat",
		Usage: "tokenize utterances against a YAML alias catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "zap log level: debug, info, warn, error",
				Value: "info",
			},
		},
		Before: func(c *cli.Context) error {
			logger, err := buildLogger(c.String("log-level"))
			if err != nil {
				return err
			}
			logging.SetGlobal(logger)
			return nil
		},
		Commands: []*cli.Command{
			tokenizeCommand,
			suiteCommand,
			catalogCommand,
			replCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "tokcat:", err)
		os.Exit(1)
	}
}
