package notifier

import (
	"context"
	"medflow-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	s := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(s.Close)

	url := "ws" + strings.TrimPrefix(s.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	first := dialHub(t, hub)
	second := dialHub(t, hub)

	// give the register channel a moment to drain
	time.Sleep(50 * time.Millisecond)

	message, err := json.Marshal(Envelope{Event: constvars.EventPatientCreated, Payload: "p1"})
	require.NoError(t, err)
	hub.Broadcast(message)

	for _, conn := range []*websocket.Conn{first, second} {
		envelope := readEnvelope(t, conn)
		assert.Equal(t, constvars.EventPatientCreated, envelope.Event)
	}
}

func TestHub_EmergencyRelay(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	sender := dialHub(t, hub)
	receiver := dialHub(t, hub)
	time.Sleep(50 * time.Millisecond)

	raw, err := json.Marshal(map[string]interface{}{
		"event":   constvars.EventTriggerEmergency,
		"payload": map[string]string{"type": "Code Blue"},
	})
	require.NoError(t, err)
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, raw))

	envelope := readEnvelope(t, receiver)
	assert.Equal(t, constvars.EventEmergency, envelope.Event)

	clearMsg, err := json.Marshal(map[string]interface{}{"event": constvars.EventClearEmergency})
	require.NoError(t, err)
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, clearMsg))

	envelope = readEnvelope(t, receiver)
	assert.Equal(t, constvars.EventClearEmergency, envelope.Event)
}

func TestRunBridge(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	hub := NewHub(zap.NewNop())
	go hub.Run()

	conn := dialHub(t, hub)
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go RunBridge(ctx, rdb, hub, "patient_flow_events", "self-instance", zap.NewNop())
	time.Sleep(50 * time.Millisecond)

	inner, err := json.Marshal(Envelope{Event: constvars.EventBedUpdated, Payload: "General-1"})
	require.NoError(t, err)

	// own-origin messages must be skipped
	own, err := json.Marshal(bridgeMessage{Origin: "self-instance", Message: inner})
	require.NoError(t, err)
	require.NoError(t, rdb.Publish(ctx, "patient_flow_events", own).Err())

	foreign, err := json.Marshal(bridgeMessage{Origin: "other-instance", Message: inner})
	require.NoError(t, err)
	require.NoError(t, rdb.Publish(ctx, "patient_flow_events", foreign).Err())

	envelope := readEnvelope(t, conn)
	assert.Equal(t, constvars.EventBedUpdated, envelope.Event)

	// nothing else should arrive, the own-origin publication was dropped
	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}
