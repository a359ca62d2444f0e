// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package events

import (
	"slices"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/fpminer/internal/logging"
	"github.com/tomtom215/fpminer/internal/models"
)

// AuditHandler logs completed runs and keeps the most recent ones in memory.
//
// The GoChannel pub/sub delivers concurrent publishes in no particular
// order, so the buffer is kept sorted by CompletedAt and the runs that
// completed earliest are evicted first.
type AuditHandler struct {
	mu          sync.Mutex
	recent      []models.RunCompletedEvent
	capacity    int
	received    int64
	parseErrors int64
}

// NewAuditHandler returns a handler remembering the last capacity events.
func NewAuditHandler(capacity int) *AuditHandler {
	if capacity <= 0 {
		capacity = 64
	}
	return &AuditHandler{capacity: capacity}
}

// Handle consumes one RunCompletedEvent. Undecodable payloads are logged
// and acknowledged; retrying would not fix them.
func (h *AuditHandler) Handle(msg *message.Message) error {
	var event models.RunCompletedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.mu.Lock()
		h.received++
		h.parseErrors++
		h.mu.Unlock()
		logging.Warn().
			Err(err).
			Str("message_uuid", msg.UUID).
			Msg("Dropping undecodable run event")
		return nil
	}

	logging.Info().
		Str("run_id", event.RunID).
		Str("source", event.Source).
		Str("correlation_id", msg.Metadata.Get(MetadataCorrelationID)).
		Int("transactions", event.Transactions).
		Int("itemsets", event.Itemsets).
		Int("rules", event.Rules).
		Int64("duration_ms", event.DurationMS).
		Msg("Mining run completed")

	h.mu.Lock()
	h.remember(event)
	h.received++
	h.mu.Unlock()

	return nil
}

// remember inserts event after every event completed no later than it.
// Callers hold h.mu.
func (h *AuditHandler) remember(event models.RunCompletedEvent) {
	at := len(h.recent)
	for at > 0 && h.recent[at-1].CompletedAt.After(event.CompletedAt) {
		at--
	}
	h.recent = slices.Insert(h.recent, at, event)
	if over := len(h.recent) - h.capacity; over > 0 {
		h.recent = slices.Delete(h.recent, 0, over)
	}
}

// Recent returns the remembered events ordered by completion time.
func (h *AuditHandler) Recent() []models.RunCompletedEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.RunCompletedEvent, len(h.recent))
	copy(out, h.recent)
	return out
}

// AuditStats are counters for the audit handler.
type AuditStats struct {
	Received    int64 `json:"received"`
	ParseErrors int64 `json:"parse_errors"`
}

// Stats returns the handler counters.
func (h *AuditHandler) Stats() AuditStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return AuditStats{Received: h.received, ParseErrors: h.parseErrors}
}
