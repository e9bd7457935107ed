package marketplace

import (
	"testing"

	"github.com/dmitrijs2005/lawnbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe_ReceivesEventsInOrder(t *testing.T) {
	e := newEnv(t)

	var got []EventKind
	unsubscribe := e.c.Subscribe(func(ev Event) { got = append(got, ev.Kind) })

	m := e.seed(t)
	e.login(t, "c@x.com")
	require.NoError(t, e.c.SelectProvider(e.ctx, m.provider.ID))
	b, err := e.c.CreateBooking(e.ctx, BookingRequest{Date: "2024-06-02"})
	require.NoError(t, err)

	var last Event
	e.c.Subscribe(func(ev Event) { last = ev })

	e.login(t, "a@x.com")
	_, err = e.c.CompleteBooking(e.ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, Event{Kind: EventBookingCompleted, UserID: m.provider.ID, BookingID: b.ID}, last)

	unsubscribe()
	require.NoError(t, e.c.Logout(e.ctx))

	assert.Equal(t, []EventKind{
		EventSignedUp, EventSignedUp, EventSignedUp,
		EventLoggedIn, EventProviderApproved, EventAvailabilityChange, EventLoggedOut,
		EventLoggedIn, EventProviderSelected, EventBookingCreated,
		EventLoggedIn, EventBookingCompleted,
	}, got)
}

func TestSubscribe_NoEventOnFailure(t *testing.T) {
	e := newEnv(t)
	e.signup(t, "Alice", "a@x.com", models.RoleCustomer, "")

	called := false
	e.c.Subscribe(func(Event) { called = true })

	_, err := e.c.Signup(e.ctx, SignupRequest{Email: "a@x.com", Password: "p", Role: models.RoleCustomer})
	require.Error(t, err)
	assert.False(t, called)
}

func TestSubscribe_UnsubscribeDuringPublish(t *testing.T) {
	e := newEnv(t)

	var got []string
	var unsubscribeA func()
	unsubscribeA = e.c.Subscribe(func(Event) {
		got = append(got, "A")
		unsubscribeA()
	})
	e.c.Subscribe(func(Event) { got = append(got, "B") })
	e.c.Subscribe(func(Event) { got = append(got, "C") })

	e.signup(t, "Alice", "a@x.com", models.RoleCustomer, "")
	assert.Equal(t, []string{"A", "B", "C"}, got)

	got = nil
	e.signup(t, "Bob", "b@x.com", models.RoleCustomer, "")
	assert.Equal(t, []string{"B", "C"}, got)
}
