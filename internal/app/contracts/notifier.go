package contracts

// NotificationPublisher fans typed events out to every connected
// dashboard. Fire-and-forget: delivery is best effort, a publish failure
// must never roll back or block the state change that produced it.
type NotificationPublisher interface {
	Publish(event string, payload interface{})
}
