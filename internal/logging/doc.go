// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

// Package logging provides centralized zerolog-based structured logging for FPMiner.
//
// A single global zerolog logger is configured once at startup from
// config.LoggingConfig and shared by every package. JSON output is the
// default; console output is available for local runs.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("transactions", n).Msg("Dataset prepared")
//	logging.Error().Err(err).Msg("Mining run failed")
//
//	// Request-scoped logging picks up request_id and correlation_id
//	logging.Ctx(ctx).Info().Msg("Mining request accepted")
//
// # Adapters
//
// Two adapters route third-party logging into the same zerolog stream:
//
//   - SlogHandler implements slog.Handler for sutureslog (supervisor events)
//   - WatermillLogger implements watermill.LoggerAdapter for the event bus
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(), and prefer structured
// fields over formatted messages:
//
//	logging.Info().Str("run_id", id).Int("itemsets", n).Msg("Run stored")  // Correct
//	logging.Info().Msgf("stored run %s with %d itemsets", id, n)           // Avoid
package logging
