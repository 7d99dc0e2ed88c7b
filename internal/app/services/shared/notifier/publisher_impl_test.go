package notifier

import (
	"context"
	sharedredis "medflow-service/internal/app/services/shared/redis"
	"medflow-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeQueue struct {
	events []string
}

func (f *fakeQueue) Enqueue(event string, payload interface{}) error {
	f.events = append(f.events, event)
	return nil
}

func TestPublisher_FansOutToAllLegs(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := sharedredis.NewRedisRepository(rdb)
	queue := &fakeQueue{}

	hub := NewHub(zap.NewNop())
	go hub.Run()

	conn := dialHub(t, hub)
	time.Sleep(50 * time.Millisecond)

	sub := rdb.Subscribe(context.Background(), "patient_flow_events")
	defer sub.Close()
	subCh := sub.Channel()
	time.Sleep(50 * time.Millisecond)

	publisher := NewPublisher(hub, repo, queue, "patient_flow_events", "instance-a", zap.NewNop())
	publisher.Publish(constvars.EventPatientCreated, map[string]string{"id": "patient-1"})

	// websocket leg
	envelope := readEnvelope(t, conn)
	assert.Equal(t, constvars.EventPatientCreated, envelope.Event)

	// redis bridge leg, tagged with this instance's origin
	select {
	case msg := <-subCh:
		var bridged bridgeMessage
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &bridged))
		assert.Equal(t, "instance-a", bridged.Origin)

		var inner Envelope
		require.NoError(t, json.Unmarshal(bridged.Message, &inner))
		assert.Equal(t, constvars.EventPatientCreated, inner.Event)
	case <-time.After(2 * time.Second):
		t.Fatal("no message arrived on the redis channel")
	}

	// broker leg
	assert.Equal(t, []string{constvars.EventPatientCreated}, queue.events)
}

func TestPublisher_WorksWithoutOptionalLegs(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	conn := dialHub(t, hub)
	time.Sleep(50 * time.Millisecond)

	publisher := NewPublisher(hub, nil, nil, "", "", zap.NewNop())
	publisher.Publish(constvars.EventBedUpdated, "General-1")

	envelope := readEnvelope(t, conn)
	assert.Equal(t, constvars.EventBedUpdated, envelope.Event)
}
