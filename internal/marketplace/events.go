package marketplace

import "slices"

// EventKind names a state change.
type EventKind string

const (
	EventSignedUp           EventKind = "signed_up"
	EventLoggedIn           EventKind = "logged_in"
	EventLoggedOut          EventKind = "logged_out"
	EventProfileUpdated     EventKind = "profile_updated"
	EventProviderApproved   EventKind = "provider_approved"
	EventProviderDeclined   EventKind = "provider_declined"
	EventAvailabilityChange EventKind = "availability_changed"
	EventProviderSelected   EventKind = "provider_selected"
	EventBookingCreated     EventKind = "booking_created"
	EventBookingCompleted   EventKind = "booking_completed"
)

// Event is published after a mutation has been persisted.
type Event struct {
	Kind      EventKind
	UserID    int64
	BookingID int64
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn for every future Event and returns a function that
// removes it.
func (c *Controller) Subscribe(fn func(Event)) (unsubscribe func()) {
	c.nextSubID++
	id := c.nextSubID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	return func() {
		c.subscribers = slices.DeleteFunc(c.subscribers, func(s subscriber) bool { return s.id == id })
	}
}

// publish delivers e to the subscribers registered when it starts, so a
// callback may unsubscribe itself or others.
func (c *Controller) publish(e Event) {
	for _, s := range slices.Clone(c.subscribers) {
		s.fn(e)
	}
}
