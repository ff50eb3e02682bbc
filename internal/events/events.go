// Package events delivers domain events to an optional webhook. Delivery runs
// on a worker pool and never blocks or fails the operation that produced the
// event.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/metrics"
	"github.com/GlebRadaev/skillswap/pkg/clients"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=events

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Type string

const (
	UserSignedUp     Type = "user.signed_up"
	UserSignedIn     Type = "user.signed_in"
	SessionBooked    Type = "session.booked"
	CreditsPurchased Type = "credits.purchased"
)

type Event struct {
	ID         string         `json:"id"`
	Type       Type           `json:"type"`
	UserID     string         `json:"user_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event)
}

type Dispatcher struct {
	url           string
	client        clients.HTTPClientI
	workerPool    WorkerPoolI
	retryInterval time.Duration
}

func New(cfg *config.Config, client clients.HTTPClientI) *Dispatcher {
	return &Dispatcher{
		url:           cfg.EventsWebhook,
		client:        client,
		workerPool:    NewWorkerPool(cfg.EventWorkers, cfg.EventQueue),
		retryInterval: retryInterval,
	}
}

// Publish queues e for delivery and returns at once. When the queue is full
// the event is dropped.
func (d *Dispatcher) Publish(ctx context.Context, e Event) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	if d.url == "" {
		zap.L().Info("Event", zap.String("type", string(e.Type)), zap.String("userID", e.UserID), zap.Any("data", e.Data))
		return
	}

	deliverCtx := context.WithoutCancel(ctx)
	err := d.workerPool.AddTask(ctx, func() error {
		return d.deliver(deliverCtx, e)
	})
	if err != nil {
		metrics.EventDeliveries.WithLabelValues(string(e.Type), "dropped").Inc()
		zap.L().Warn("Event dropped", zap.String("type", string(e.Type)), zap.Error(err))
	}
}

func (d *Dispatcher) Close() {
	d.workerPool.Close()
}

func (d *Dispatcher) deliver(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", e.ID, err)
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respHeaders, err := d.client.Post(ctx, d.url, headers, body)
		wait := d.retryInterval * time.Duration(attempt)

		switch {
		case err != nil:
			zap.L().Warn("Event delivery failed", zap.String("eventID", e.ID), zap.Int("attempt", attempt), zap.Error(err))
		case statusCode >= 200 && statusCode < 300:
			metrics.EventDeliveries.WithLabelValues(string(e.Type), "delivered").Inc()
			return nil
		case statusCode == http.StatusTooManyRequests:
			wait = retryAfter(respHeaders, wait)
			zap.L().Warn("Rate limit detected, retrying", zap.String("eventID", e.ID), zap.Int("attempt", attempt), zap.Duration("retryAfter", wait))
		case statusCode >= 500:
			zap.L().Warn("Webhook unavailable, retrying", zap.String("eventID", e.ID), zap.Int("status", statusCode), zap.Int("attempt", attempt))
		default:
			metrics.EventDeliveries.WithLabelValues(string(e.Type), "rejected").Inc()
			return fmt.Errorf("webhook rejected event %s with status %d", e.ID, statusCode)
		}

		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}

	metrics.EventDeliveries.WithLabelValues(string(e.Type), "failed").Inc()
	return fmt.Errorf("failed to deliver event %s after %d retries", e.ID, maxRetries)
}

func retryAfter(headers http.Header, fallback time.Duration) time.Duration {
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
