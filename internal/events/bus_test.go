// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package events

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/fpminer/internal/logging"
	"github.com/tomtom215/fpminer/internal/models"
)

// startBus runs bus in the background and waits until handlers are subscribed.
func startBus(t *testing.T, bus *Bus) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = bus.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	select {
	case <-bus.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("bus did not start")
	}
}

func TestBus_PublishRunCompleted(t *testing.T) {
	t.Parallel()

	bus, err := NewBus(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}

	received := make(chan *message.Message, 1)
	bus.AddConsumer("test-consumer", TopicRunCompleted, func(msg *message.Message) error {
		received <- msg
		return nil
	})
	startBus(t, bus)

	ctx := logging.ContextWithCorrelationID(context.Background(), "corr1234")
	event := models.RunCompletedEvent{RunID: "run-1", Source: models.SourceAPI, Itemsets: 4}
	if err := bus.PublishRunCompleted(ctx, event); err != nil {
		t.Fatalf("PublishRunCompleted() error = %v", err)
	}

	select {
	case msg := <-received:
		if got := msg.Metadata.Get(MetadataCorrelationID); got != "corr1234" {
			t.Errorf("correlation_id = %q, want corr1234", got)
		}
		if got := msg.Metadata.Get(MetadataEventType); got != "run_completed" {
			t.Errorf("event_type = %q, want run_completed", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBus_AuditHandler(t *testing.T) {
	t.Parallel()

	bus, err := NewBus(DefaultConfig(), logging.NewWatermillLogger(logging.Logger()))
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}
	audit := NewAuditHandler(2)
	bus.AddConsumer("run-audit", TopicRunCompleted, audit.Handle)
	startBus(t, bus)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"r1", "r2", "r3"} {
		event := models.RunCompletedEvent{RunID: id, CompletedAt: base.Add(time.Duration(i) * time.Second)}
		if err := bus.PublishRunCompleted(context.Background(), event); err != nil {
			t.Fatalf("PublishRunCompleted() error = %v", err)
		}
	}

	// Received is bumped after the event is remembered.
	deadline := time.Now().Add(5 * time.Second)
	for audit.Stats().Received < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("audit handler received %d events, want 3", audit.Stats().Received)
		}
		time.Sleep(10 * time.Millisecond)
	}

	recent := audit.Recent()
	if len(recent) != 2 || recent[0].RunID != "r2" || recent[1].RunID != "r3" {
		t.Errorf("Recent() = %v, want [r2 r3]", recent)
	}
}

func TestAuditHandler_OrdersByCompletion(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := map[string]time.Time{
		"r1": base,
		"r2": base.Add(time.Second),
		"r3": base.Add(2 * time.Second),
		"r4": base.Add(3 * time.Second),
	}

	tests := []struct {
		name    string
		arrival []string
		want    []string
	}{
		{"in order", []string{"r1", "r2", "r3", "r4"}, []string{"r2", "r3", "r4"}},
		{"reversed", []string{"r4", "r3", "r2", "r1"}, []string{"r2", "r3", "r4"}},
		{"interleaved", []string{"r3", "r1", "r4", "r2"}, []string{"r2", "r3", "r4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			audit := NewAuditHandler(3)
			for _, id := range tt.arrival {
				payload, err := json.Marshal(models.RunCompletedEvent{RunID: id, CompletedAt: events[id]})
				if err != nil {
					t.Fatalf("marshal: %v", err)
				}
				if err := audit.Handle(message.NewMessage(watermill.NewUUID(), payload)); err != nil {
					t.Fatalf("Handle(%s) error = %v", id, err)
				}
			}

			recent := audit.Recent()
			got := make([]string, len(recent))
			for i, e := range recent {
				got[i] = e.RunID
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Recent() = %v, want %v", got, tt.want)
			}
			if s := audit.Stats(); s.Received != int64(len(tt.arrival)) {
				t.Errorf("Stats().Received = %d, want %d", s.Received, len(tt.arrival))
			}
		})
	}
}

func TestAuditHandler_BadPayload(t *testing.T) {
	t.Parallel()

	audit := NewAuditHandler(0)
	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))

	if err := audit.Handle(msg); err != nil {
		t.Errorf("Handle() error = %v, want nil (ack bad payloads)", err)
	}
	if s := audit.Stats(); s.Received != 1 || s.ParseErrors != 1 {
		t.Errorf("Stats() = %+v", s)
	}
	if len(audit.Recent()) != 0 {
		t.Error("bad payload should not be remembered")
	}
}

func TestBus_PublishWithoutConsumers(t *testing.T) {
	t.Parallel()

	bus, err := NewBus(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}
	defer bus.Close()

	if err := bus.PublishRunCompleted(context.Background(), models.RunCompletedEvent{RunID: "x"}); err != nil {
		t.Errorf("PublishRunCompleted() error = %v", err)
	}
	if bus.String() != "event-bus" {
		t.Errorf("String() = %q", bus.String())
	}
}
