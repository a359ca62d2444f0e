// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

// Command fpmine mines a purchases CSV once and writes its association
// rules to a file.
//
//	fpmine --input purchases.csv --output Output.txt --min-support 100
//	fpmine items --input purchases.csv --min-support 10
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/fpminer/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		logging.Error().Err(err).Msg("fpmine failed")
		stop()
		os.Exit(1)
	}
}
