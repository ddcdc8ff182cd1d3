package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher interface allows event publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventHandler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[EventType][]EventHandler),
	}
}

// Publish synchronously invokes handlers for the given event.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.listeners[event.Type]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		_ = handler(ctx, event)
	}
	return nil
}

// Subscribe registers a handler for the given event type.
func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}

// redisMirror wraps a dispatcher and additionally publishes every event as
// JSON on a Redis channel for external consumers. Mirror failures are logged
// and never fail the originating request.
type redisMirror struct {
	inner   Dispatcher
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

// NewRedisMirror decorates inner with Redis pub/sub mirroring. Returns inner
// unchanged when the client or channel is not configured.
func NewRedisMirror(inner Dispatcher, client *redis.Client, channel string, logger *zap.Logger) Dispatcher {
	if client == nil || channel == "" {
		return inner
	}
	return &redisMirror{inner: inner, client: client, channel: channel, logger: logger}
}

func (d *redisMirror) Publish(ctx context.Context, event Event) error {
	if payload, err := json.Marshal(event); err != nil {
		d.logger.Warn("failed to encode event for mirror", zap.Error(err))
	} else if err := d.client.Publish(ctx, d.channel, payload).Err(); err != nil {
		d.logger.Warn("failed to mirror event to redis", zap.Error(err))
	}
	return d.inner.Publish(ctx, event)
}

func (d *redisMirror) Subscribe(eventType EventType, handler EventHandler) {
	d.inner.Subscribe(eventType, handler)
}
