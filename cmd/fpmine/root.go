// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tomtom215/fpminer/internal/logging"
)

// options are the flags shared by every subcommand.
type options struct {
	input        string
	output       string
	personColumn string
	itemColumn   string
	minSupport   int
	maxLength    int
	json         bool
	logLevel     string
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "fpmine",
		Short: "Mine frequent itemsets and association rules from a purchases CSV",
		Long: `fpmine reads (person, item) rows from a CSV file, groups them into one
transaction per person and mines every itemset bought by at least
--min-support persons. Each itemset is expanded into association rules
written to --output, one per line:

  (bread, milk) --> (eggs) 	support: 3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.Config{
				Level:     opts.logLevel,
				Format:    "console",
				Timestamp: true,
				Output:    cmd.ErrOrStderr(),
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMine(cmd.Context(), opts, stdout)
		},
	}
	root.SetOut(stdout)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.input, "input", "i", "", "purchases CSV with a header row")
	flags.StringVar(&opts.personColumn, "person-column", "Person", "column identifying the buyer")
	flags.StringVar(&opts.itemColumn, "item-column", "item", "column identifying the item")
	flags.IntVarP(&opts.minSupport, "min-support", "s", 100, "minimum number of persons per itemset")
	flags.StringVar(&opts.logLevel, "log-level", "info", "trace, debug, info, warn or error")

	root.Flags().StringVarP(&opts.output, "output", "o", "Output.txt", `rule report path, "-" for stdout`)
	root.Flags().IntVar(&opts.maxLength, "max-length", 0, "largest itemset to mine, 0 for unbounded")
	root.Flags().BoolVar(&opts.json, "json", false, "write rules as a JSON array")

	root.AddCommand(newItemsCmd(opts, stdout), newVersionCmd(stdout))
	return root
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the fpmine version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(stdout, "fpmine %s\n", version)
			return err
		},
	}
}
