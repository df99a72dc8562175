package events

import (
	"ad-ledger/internal/models"
	"ad-ledger/utils"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// DefaultChannel is the pub/sub channel used when none is configured
const DefaultChannel = "ad_events"

// RedisPublisher publishes ad events as JSON on a Redis pub/sub channel
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) PublishAdEvent(ctx context.Context, event models.AdEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("publish %s for ad %s: %w", event.Type, event.AdID, err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish %s for ad %s: %w", event.Type, event.AdID, err)
	}
	return nil
}

// LogPublisher writes ad events to the application log. Used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) PublishAdEvent(_ context.Context, event models.AdEvent) error {
	fields := map[string]any{
		"type":   event.Type,
		"ad_id":  event.AdID,
		"owner":  event.Owner,
		"status": event.Status,
	}
	if event.Bidder != "" {
		fields["bidder"] = event.Bidder
		fields["amount"] = event.Amount
	}
	utils.Debug("ad event", fields)
	return nil
}
