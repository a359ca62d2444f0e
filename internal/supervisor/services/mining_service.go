// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/fpminer/internal/mining"
	"github.com/tomtom215/fpminer/internal/models"
	"github.com/tomtom215/fpminer/internal/rules"
)

// BatchMiner mines the configured input source. *mining.Engine satisfies it.
type BatchMiner interface {
	MineSource(ctx context.Context, source string) (*models.Run, error)
}

// MiningServiceConfig holds configuration for the batch mining service.
type MiningServiceConfig struct {
	// RunOnStartup mines as soon as the service starts.
	RunOnStartup bool

	// Interval re-mines periodically. Zero mines once and stops the service.
	Interval time.Duration

	// OutputPath receives the rule report after each successful run.
	// Empty skips the report.
	OutputPath string

	// Timeout bounds a single run. Zero means no limit.
	Timeout time.Duration
}

// MiningService runs batch mining under supervision and writes the rule
// report of each run to OutputPath.
//
// In run-once mode a failed run returns its error so the supervisor
// restarts the service with backoff; a successful run stops it for good.
// In periodic mode failures are logged and retried on the next tick.
type MiningService struct {
	miner  BatchMiner
	config MiningServiceConfig
	logger zerolog.Logger
	name   string
}

// NewMiningService creates a batch mining service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMiningService(miner BatchMiner, cfg MiningServiceConfig, logger zerolog.Logger) *MiningService {
	return &MiningService{
		miner:  miner,
		config: cfg,
		logger: logger.With().Str("service", "batch-miner").Logger(),
		name:   "batch-miner",
	}
}

// Serve implements suture.Service.
func (s *MiningService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("run_on_startup", s.config.RunOnStartup).
		Dur("interval", s.config.Interval).
		Str("output", s.config.OutputPath).
		Msg("batch mining service starting")

	if s.config.Interval <= 0 {
		if s.config.RunOnStartup {
			if err := s.runOnce(ctx); err != nil {
				return err
			}
		}
		return suture.ErrDoNotRestart
	}

	if s.config.RunOnStartup {
		if err := s.runOnce(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial mining run failed (will retry on schedule)")
		}
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("batch mining service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.runOnce(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled mining run failed")
			}
		}
	}
}

// runOnce mines the source and writes the report. An input with no
// frequent items is not a failure.
func (s *MiningService) runOnce(ctx context.Context) error {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	run, err := s.miner.MineSource(ctx, models.SourceSchedule)
	switch {
	case errors.Is(err, mining.ErrNoTransactions):
		s.logger.Info().Msg("no items meet the minimum support, nothing to report")
		return nil
	case err != nil:
		return fmt.Errorf("batch mining: %w", err)
	}

	if s.config.OutputPath == "" {
		return nil
	}

	count, err := writeReportFile(s.config.OutputPath, run)
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("run_id", run.ID).
		Int("rules", count).
		Str("path", s.config.OutputPath).
		Msg("rule report written")
	return nil
}

// writeReportFile streams the rules of run into a temporary file next to
// path and renames it into place, so readers never see a partial report.
func writeReportFile(path string, run *models.Run) (int, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fpminer-report-*")
	if err != nil {
		return 0, fmt.Errorf("create report: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	rw := rules.NewReportWriter(tmp)
	if err := rules.ExpandAll(run.All(), rw); err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("write report: %w", err)
	}
	if err := rw.Flush(); err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("flush report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close report: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("install report: %w", err)
	}
	return rw.Count(), nil
}

// String returns the service name for logging.
func (s *MiningService) String() string {
	return s.name
}
