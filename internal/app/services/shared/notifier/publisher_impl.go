package notifier

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/constvars"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// bridgeMessage is the envelope relayed through redis between service
// instances. Origin lets an instance skip its own publications.
type bridgeMessage struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

// publisherService is the notification publisher: every event goes to
// the local websocket hub, to the redis channel for sibling instances,
// and to the durable broker queue for downstream consumers. All three
// legs are fire-and-forget.
type publisherService struct {
	hub        *Hub
	redisRepo  contracts.RedisRepository
	queue      contracts.EventQueueService
	channel    string
	instanceID string
	Log        *zap.Logger
}

func NewPublisher(
	hub *Hub,
	redisRepo contracts.RedisRepository,
	queue contracts.EventQueueService,
	channel string,
	instanceID string,
	logger *zap.Logger,
) contracts.NotificationPublisher {
	if instanceID == "" {
		instanceID = uuid.NewString()
	}
	return &publisherService{
		hub:        hub,
		redisRepo:  redisRepo,
		queue:      queue,
		channel:    channel,
		instanceID: instanceID,
		Log:        logger,
	}
}

func (s *publisherService) Publish(event string, payload interface{}) {
	message, err := json.Marshal(Envelope{Event: event, Payload: payload})
	if err != nil {
		s.Log.Error("failed to marshal event envelope",
			zap.String(constvars.LoggingEventKey, event),
			zap.Error(err),
		)
		return
	}

	s.hub.Broadcast(message)

	if s.redisRepo != nil {
		bridged, err := json.Marshal(bridgeMessage{Origin: s.instanceID, Message: message})
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := s.redisRepo.Publish(ctx, s.channel, bridged); err != nil {
				s.Log.Warn("failed to bridge event to redis",
					zap.String(constvars.LoggingEventKey, event),
					zap.Error(err),
				)
			}
			cancel()
		}
	}

	if s.queue != nil {
		if err := s.queue.Enqueue(event, payload); err != nil {
			s.Log.Warn("failed to enqueue event for downstream consumers",
				zap.String(constvars.LoggingEventKey, event),
				zap.Error(err),
			)
		}
	}
}
