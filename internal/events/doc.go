// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package events is the in-process event bus for mining run notifications.

The bus is a Watermill GoChannel pub/sub behind a message.Router carrying
Recoverer and Retry middleware. The mining engine publishes a
models.RunCompletedEvent on TopicRunCompleted after every stored run;
consumers such as AuditHandler subscribe through AddConsumer.

Lifecycle:

	bus, _ := events.NewBus(events.DefaultConfig(), logging.NewWatermillLogger(logger))
	bus.AddConsumer("run-audit", events.TopicRunCompleted, events.NewAuditHandler(64).Handle)
	go bus.Serve(ctx)       // blocks until ctx is done
	<-bus.Running()
	bus.PublishRunCompleted(ctx, event)

Consumers must be registered before Serve. GoChannel is not persistent:
events published while no consumer is subscribed are dropped.
*/
package events
