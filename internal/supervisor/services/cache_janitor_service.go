// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// CacheCleaner drops expired cache entries and returns how many it removed.
type CacheCleaner interface {
	CleanupCaches() int
}

// CacheJanitorService sweeps expired result cache entries on an interval.
type CacheJanitorService struct {
	cleaner  CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor sweeping every interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(cleaner CacheCleaner, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	return &CacheJanitorService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service. A non-positive interval stops the
// service without restart.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.cleaner.CleanupCaches(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired cache entries swept")
			}
		}
	}
}

// String returns the service name for logging.
func (s *CacheJanitorService) String() string {
	return s.name
}
