// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newItemsCmd(opts *options, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List items bought by at least --min-support persons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.input == "" {
				return errNoInput
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			items, err := db.ItemFrequencies(cmd.Context(), opts.source(), opts.minSupport)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ITEM\tSUPPORT")
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%d\n", it.Item, it.Support)
			}
			return tw.Flush()
		},
	}
}
