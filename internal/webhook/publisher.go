package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_incident_sync/internal/models"
)

const (
	webhookQueueKey = "geo_sync:webhook_events"
)

// WebhookEvent - структура для данных вебхука об инциденте рядом с пользователем
type WebhookEvent struct {
	UserID         string              `json:"user_id"`
	Notification   models.Notification `json:"notification"`
	Incident       models.Incident     `json:"incident"`
	DistanceMeters float64             `json:"distance_meters"`
	Timestamp      time.Time           `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// Forwarder ставит оповещения по области в очередь вебхуков
type Forwarder struct {
	publisher WebhookPublisher
}

func NewForwarder(publisher WebhookPublisher) *Forwarder {
	return &Forwarder{publisher: publisher}
}

func (f *Forwarder) Forward(ctx context.Context, userID string, n models.Notification, alert models.AreaAlert) error {
	return f.publisher.Publish(ctx, NewEvent(userID, n, alert))
}

// NewEvent собирает событие вебхука из уведомления
func NewEvent(userID string, n models.Notification, alert models.AreaAlert) WebhookEvent {
	return WebhookEvent{
		UserID:         userID,
		Notification:   n,
		Incident:       alert.Incident,
		DistanceMeters: alert.Distance,
		Timestamp:      n.CreatedAt,
	}
}
