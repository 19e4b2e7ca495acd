package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/tokcat/internal/catalog"
	lcierrors "github.com/standardbeagle/tokcat/internal/errors"
)

var catalogCommand = &cli.Command{
	Name:  "catalog",
	Usage: "catalog maintenance subcommands",
	Subcommands: []*cli.Command{
		{
			Name:      "validate",
			Usage:     "validate every catalog YAML file in a directory, reporting per-domain alias counts",
			ArgsUsage: "<dir>",
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return cli.Exit("catalog validate requires a directory argument", 1)
				}
				dir := c.Args().First()

				entries, err := os.ReadDir(dir)
				if err != nil {
					return err
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

				var allErrs []error
				aliasCounts := make(map[string]int)
				for _, name := range names {
					cat, errs := catalog.LoadLenient(filepath.Join(dir, name))
					allErrs = append(allErrs, errs...)
					if cat == nil {
						continue
					}
					for _, d := range cat.Domains {
						aliasCounts[d.Name] += len(d.Aliases)
					}
				}

				domainNames := make([]string, 0, len(aliasCounts))
				for name := range aliasCounts {
					domainNames = append(domainNames, name)
				}
				sort.Strings(domainNames)
				for _, name := range domainNames {
					fmt.Printf("%-24s %d aliases\n", name, aliasCounts[name])
				}

				if len(allErrs) > 0 {
					multi := lcierrors.NewMultiError(allErrs)
					fmt.Fprintln(os.Stderr, multi.Error())
					return cli.Exit("", 1)
				}
				return nil
			},
		},
	},
}
