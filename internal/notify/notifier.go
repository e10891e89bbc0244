// internal/notify/notifier.go
// Fire-and-forget event fan-out to the other party of a swipe or
// match. Delivery failure is logged and never surfaces to the caller.

package notify

import (
	"context"
	"time"
)

// Event types emitted by the discovery engine
const (
	EventLikeReceived = "like.received"
	EventMatchCreated = "match.created"
)

// Event is a single notification payload
type Event struct {
	Type      string    `json:"type"`
	ActorID   int64     `json:"actor_id,omitempty"`
	MatchID   string    `json:"match_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier delivers an event to a user. Implementations must be safe
// for concurrent use and must not panic on delivery failure.
type Notifier interface {
	Notify(ctx context.Context, userID int64, event Event)
}

type nopNotifier struct{}

func (nopNotifier) Notify(ctx context.Context, userID int64, event Event) {}

// Nop returns a notifier that drops everything, used in tests and when
// no delivery channel is configured.
func Nop() Notifier {
	return nopNotifier{}
}

type multiNotifier struct {
	notifiers []Notifier
}

// Multi fans each event out to every given notifier
func Multi(notifiers ...Notifier) Notifier {
	return &multiNotifier{notifiers: notifiers}
}

func (m *multiNotifier) Notify(ctx context.Context, userID int64, event Event) {
	for _, n := range m.notifiers {
		n.Notify(ctx, userID, event)
	}
}
