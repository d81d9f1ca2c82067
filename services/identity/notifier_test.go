package identity

import (
	"testing"

	"roomdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierDeliversSignInAndSignOut(t *testing.T) {
	n := NewNotifier()
	var seen []Event
	n.Subscribe(func(ev Event) { seen = append(seen, ev) })

	alice := &models.User{ID: "user-1", Email: "alice@example.com"}
	n.SignedIn(alice)
	n.SignedOut("user-1")

	require.Len(t, seen, 2)
	assert.True(t, seen[0].SignedIn)
	assert.Equal(t, "user-1", seen[0].UserID)
	assert.Equal(t, alice, seen[0].User)
	assert.False(t, seen[1].SignedIn)
	assert.Equal(t, "user-1", seen[1].UserID)
}

func TestNotifierSignOutTargetsOnlyThatUser(t *testing.T) {
	// Two users are signed in concurrently; when the first signs out the
	// broadcast must carry the first user's ID, not whoever signed in last.
	n := NewNotifier()
	var signedOut []string
	n.Subscribe(func(ev Event) {
		if !ev.SignedIn {
			signedOut = append(signedOut, ev.UserID)
		}
	})

	n.SignedIn(&models.User{ID: "user-a"})
	n.SignedIn(&models.User{ID: "user-b"})
	n.SignedOut("user-a")

	assert.Equal(t, []string{"user-a"}, signedOut)
}

func TestNotifierSkipsRepeatedSignIn(t *testing.T) {
	n := NewNotifier()
	calls := 0
	n.Subscribe(func(Event) { calls++ })

	n.SignedIn(&models.User{ID: "user-1"})
	n.SignedIn(&models.User{ID: "user-1", Name: "renamed"})

	assert.Equal(t, 1, calls, "a user already signed in must broadcast at most once")
}

func TestNotifierSkipsRepeatedSignOut(t *testing.T) {
	n := NewNotifier()
	calls := 0
	n.Subscribe(func(Event) { calls++ })

	n.SignedIn(&models.User{ID: "user-1"})
	n.SignedOut("user-1")
	n.SignedOut("user-1")

	assert.Equal(t, 2, calls)
}

func TestNotifierDeliversSignOutForUnknownUser(t *testing.T) {
	// Revocation can arrive for a user this process never saw sign in
	// (token issued before a restart); observers still hear about it.
	n := NewNotifier()
	var seen []Event
	n.Subscribe(func(ev Event) { seen = append(seen, ev) })

	n.SignedOut("user-1")

	require.Len(t, seen, 1)
	assert.False(t, seen[0].SignedIn)
	assert.Equal(t, "user-1", seen[0].UserID)
}

func TestNotifierIndependentUserTransitions(t *testing.T) {
	n := NewNotifier()
	var order []string
	n.Subscribe(func(ev Event) {
		if ev.SignedIn {
			order = append(order, "in:"+ev.UserID)
		} else {
			order = append(order, "out:"+ev.UserID)
		}
	})

	n.SignedIn(&models.User{ID: "user-a"})
	n.SignedIn(&models.User{ID: "user-b"})
	n.SignedOut("user-b")
	n.SignedIn(&models.User{ID: "user-b"})

	assert.Equal(t, []string{"in:user-a", "in:user-b", "out:user-b", "in:user-b"}, order)
}

func TestNotifierUnsubscribeStopsDelivery(t *testing.T) {
	n := NewNotifier()
	calls := 0
	unsubscribe := n.Subscribe(func(Event) { calls++ })

	n.SignedIn(&models.User{ID: "user-1"})
	unsubscribe()
	n.SignedIn(&models.User{ID: "user-2"})

	assert.Equal(t, 1, calls)
}

func TestNotifierUnsubscribeIsIdempotent(t *testing.T) {
	n := NewNotifier()
	calls := 0
	first := n.Subscribe(func(Event) { calls++ })
	n.Subscribe(func(Event) { calls++ })

	first()
	first() // second call must not disturb the remaining observer

	n.SignedIn(&models.User{ID: "user-1"})
	assert.Equal(t, 1, calls)
}

func TestNotifierMultipleObservers(t *testing.T) {
	n := NewNotifier()
	a, b := 0, 0
	n.Subscribe(func(Event) { a++ })
	n.Subscribe(func(Event) { b++ })

	n.SignedIn(&models.User{ID: "user-1"})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
