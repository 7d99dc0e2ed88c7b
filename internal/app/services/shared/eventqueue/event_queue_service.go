package eventqueue

import (
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// QueueMessage is the payload stored in RabbitMQ for downstream
// consumers (reporting, HIS integration).
type QueueMessage struct {
	ID        string          `json:"id"`
	Event     string          `json:"event"`
	Body      json.RawMessage `json:"body,omitempty"`
	EmittedAt time.Time       `json:"emitted_at"`
}

// Service publishes domain events onto a durable RabbitMQ queue.
type Service struct {
	ch        *amqp.Channel
	queueName string
	log       *zap.Logger
	mu        sync.Mutex
}

// NewService opens a channel and declares the durable event queue.
func NewService(conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.EventQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		queueName: queueName,
		log:       log,
	}, nil
}

func (s *Service) Enqueue(event string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := QueueMessage{
		ID:        uuid.NewString(),
		Event:     event,
		Body:      body,
		EmittedAt: time.Now(),
	}
	raw, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.ch.Publish(
		"",          // default exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    message.ID,
			Body:         raw,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}
	return nil
}
