// File: services/identity/notifier.go
package identity

import (
	"sync"

	"roomdesk/models"
)

// Event is one identity transition: a user signing in or out. User is set
// on sign-in events; sign-out events carry only the user ID.
type Event struct {
	UserID   string
	User     *models.User
	SignedIn bool
}

// Notifier broadcasts identity transitions to registered observers. The
// server holds many authenticated users at once, so transitions are tracked
// per user: an observer sees at most one event per actual change of a
// user's signed-in state, and one user's transition never carries another
// user's identity. Subscribe returns a deregistration handle that is safe
// to call more than once.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
	state  map[string]bool
}

// NewNotifier returns an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		subs:  make(map[int]func(Event)),
		state: make(map[string]bool),
	}
}

// Subscribe registers an observer and returns its deregistration handle.
func (n *Notifier) Subscribe(fn func(Event)) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// SignedIn broadcasts a sign-in for the user. A user already signed in
// (token refresh, repeated login) does not produce another event.
func (n *Notifier) SignedIn(user *models.User) {
	n.mu.Lock()
	if n.state[user.ID] {
		n.mu.Unlock()
		return
	}
	n.state[user.ID] = true
	observers := n.snapshotLocked()
	n.mu.Unlock()

	deliver(observers, Event{UserID: user.ID, User: user, SignedIn: true})
}

// SignedOut broadcasts a sign-out for the user. A sign-out for a user whose
// last broadcast state was already signed-out is skipped; a sign-out for a
// user this process never saw sign in is still delivered, so revocation
// after a restart reaches observers.
func (n *Notifier) SignedOut(userID string) {
	n.mu.Lock()
	if signedIn, known := n.state[userID]; known && !signedIn {
		n.mu.Unlock()
		return
	}
	n.state[userID] = false
	observers := n.snapshotLocked()
	n.mu.Unlock()

	deliver(observers, Event{UserID: userID, SignedIn: false})
}

func (n *Notifier) snapshotLocked() []func(Event) {
	observers := make([]func(Event), 0, len(n.subs))
	for _, fn := range n.subs {
		observers = append(observers, fn)
	}
	return observers
}

func deliver(observers []func(Event), ev Event) {
	for _, fn := range observers {
		fn(ev)
	}
}
