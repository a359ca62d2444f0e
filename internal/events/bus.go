// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"github.com/tomtom215/fpminer/internal/logging"
	"github.com/tomtom215/fpminer/internal/metrics"
	"github.com/tomtom215/fpminer/internal/models"
)

// TopicRunCompleted carries models.RunCompletedEvent payloads.
const TopicRunCompleted = "mining.run.completed"

// Metadata keys set on published messages.
const (
	MetadataCorrelationID = "correlation_id"
	MetadataEventType     = "event_type"
)

// Config configures the bus.
type Config struct {
	// OutputChannelBuffer is the per-subscriber GoChannel buffer.
	OutputChannelBuffer int64

	// CloseTimeout is how long to wait for handlers to finish when closing.
	CloseTimeout time.Duration

	// Retry configuration
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		OutputChannelBuffer:  256,
		CloseTimeout:         10 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
	}
}

// Publisher publishes mining events. The engine depends on this rather
// than on Bus.
type Publisher interface {
	PublishRunCompleted(ctx context.Context, event models.RunCompletedEvent) error
}

// Bus couples a GoChannel pub/sub with a Watermill router.
type Bus struct {
	pubsub *gochannel.GoChannel
	router *message.Router
	logger watermill.LoggerAdapter
}

var _ Publisher = (*Bus)(nil)

// NewBus creates a bus. A nil logger discards Watermill's own logs.
func NewBus(cfg Config, logger watermill.LoggerAdapter) (*Bus, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: cfg.OutputChannelBuffer,
	}, logger)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	// Outer to inner: Recoverer converts panics to errors, Retry backs off.
	router.AddMiddleware(middleware.Recoverer)
	if cfg.RetryMaxRetries > 0 {
		retry := middleware.Retry{
			MaxRetries:      cfg.RetryMaxRetries,
			InitialInterval: cfg.RetryInitialInterval,
			Multiplier:      2.0,
			Logger:          logger,
		}
		router.AddMiddleware(retry.Middleware)
	}

	return &Bus{pubsub: pubsub, router: router, logger: logger}, nil
}

// AddConsumer registers handler for topic. It must be called before Serve.
func (b *Bus) AddConsumer(name, topic string, handler func(msg *message.Message) error) {
	b.router.AddConsumerHandler(name, topic, b.pubsub, func(msg *message.Message) error {
		err := handler(msg)
		metrics.RecordEventConsumed(topic, err)
		return err
	})
}

// Serve runs the router until ctx is cancelled. It implements suture.Service.
func (b *Bus) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		if err := b.router.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close event router")
		}
	}()

	if err := b.router.Run(ctx); err != nil {
		return fmt.Errorf("event router: %w", err)
	}
	return ctx.Err()
}

// Running is closed once the router has started all handlers.
func (b *Bus) Running() chan struct{} {
	return b.router.Running()
}

// Publish sends payload as JSON on topic.
func (b *Bus) Publish(ctx context.Context, topic, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	msg.Metadata.Set(MetadataEventType, eventType)
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataCorrelationID, id)
	}

	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	metrics.RecordEventPublished(topic)
	return nil
}

// PublishRunCompleted publishes event on TopicRunCompleted.
func (b *Bus) PublishRunCompleted(ctx context.Context, event models.RunCompletedEvent) error {
	return b.Publish(ctx, TopicRunCompleted, "run_completed", event)
}

// Close shuts down the router and the pub/sub.
func (b *Bus) Close() error {
	return errors.Join(b.router.Close(), b.pubsub.Close())
}

// String names the service in supervisor logs.
func (b *Bus) String() string {
	return "event-bus"
}
