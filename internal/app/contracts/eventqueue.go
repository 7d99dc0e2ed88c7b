package contracts

// EventQueueService hands domain events to the durable broker queue for
// downstream consumers (reporting, HIS integration). Like the websocket
// fan-out it is advisory, the caller ignores enqueue failures.
type EventQueueService interface {
	Enqueue(event string, payload interface{}) error
}
