package notifier

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RunBridge subscribes to the cross-instance redis channel and relays
// events published by sibling instances into the local hub. Events
// originating from this instance are skipped, the hub already delivered
// them. Blocks until ctx is cancelled.
func RunBridge(ctx context.Context, rdb *redis.Client, hub *Hub, channel, instanceID string, logger *zap.Logger) {
	pubsub := rdb.Subscribe(ctx, channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var bridged bridgeMessage
			if err := json.Unmarshal([]byte(msg.Payload), &bridged); err != nil {
				logger.Warn("dropping malformed bridge message", zap.Error(err))
				continue
			}
			if bridged.Origin == instanceID {
				continue
			}
			hub.Broadcast(bridged.Message)
		}
	}
}
