package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/tokcat/internal/harness"
)

var suiteCommand = &cli.Command{
	Name:  "suite",
	Usage: "run a relevance suite against a catalog",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "catalog", Required: true, Usage: "catalog YAML file or directory"},
		&cli.StringFlag{Name: "suite", Required: true, Usage: "relevance suite YAML file"},
		&cli.StringFlag{Name: "only", Usage: "comma-separated suite names to restrict to"},
	},
	Action: func(c *cli.Context) error {
		_, tok, err := buildTokenizer(c.String("catalog"))
		if err != nil {
			return err
		}

		s, err := harness.LoadSuite(c.String("suite"))
		if err != nil {
			return err
		}

		var only []string
		if v := c.String("only"); v != "" {
			only = strings.Split(v, ",")
		}

		report := s.Run(tok, only...)
		for _, r := range report.Results {
			status := "PASS"
			if !r.Passed {
				status = "FAIL"
			}
			fmt.Printf("[%s] %-40s emitted=%v (%s)\n", status, r.Case.Input, r.Emitted, r.Duration)
		}
		fmt.Printf("\n%d passed, %d failed\n", report.Passed, report.Failed)

		if report.Failed > 0 {
			return cli.Exit("", 1)
		}
		return nil
	},
}
