package domain

// EventKind is the closed set of processor event types this service reacts
// to. Anything the processor sends outside this set maps to EventUnknown and
// is acknowledged without side effects.
type EventKind string

const (
	EventPaymentSucceeded EventKind = "payment_intent.succeeded"
	EventPaymentFailed    EventKind = "payment_intent.payment_failed"
	EventUnknown          EventKind = "unknown"
)

// KindOf maps a raw processor event type tag onto the closed EventKind set.
func KindOf(eventType string) EventKind {
	switch EventKind(eventType) {
	case EventPaymentSucceeded:
		return EventPaymentSucceeded
	case EventPaymentFailed:
		return EventPaymentFailed
	default:
		return EventUnknown
	}
}

// WebhookEvent is a processor callback whose signature has already been
// verified. RawType preserves the processor's tag for unknown kinds.
type WebhookEvent struct {
	ID      string
	Kind    EventKind
	RawType string
	Payload []byte
}
