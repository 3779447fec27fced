package storefront

import (
	"sync"

	"github.com/fekuna/shopwave-storefront/internal/storefront/dto"
)

// Listener receives recomputed views of one session. A nil view means the
// session ended and no further calls follow.
type Listener func(view *dto.View)

// Notifier fans recomputed views out to the listeners of a session.
// Deliveries for one session are serialized and never go back in version, so
// the last view a listener saw is always the newest committed one.
type Notifier struct {
	mu       sync.RWMutex
	next     uint64
	sessions map[string]*subscribers
}

type subscribers struct {
	deliver   sync.Mutex // held while views are handed to listeners
	delivered int64      // version of the newest view handed out
	listeners map[uint64]Listener
}

func NewNotifier() *Notifier {
	return &Notifier{sessions: make(map[string]*subscribers)}
}

func (n *Notifier) Subscribe(sessionID string, l Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.next++
	id := n.next
	subs := n.sessions[sessionID]
	if subs == nil {
		subs = &subscribers{listeners: make(map[uint64]Listener)}
		n.sessions[sessionID] = subs
	}
	subs.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(subs.listeners, id)
			if len(subs.listeners) == 0 && n.sessions[sessionID] == subs {
				delete(n.sessions, sessionID)
			}
		})
	}
}

// Notify hands view to every listener of the session. A view whose version is
// not newer than one already delivered is dropped. Listeners run outside the
// subscription lock, so they may subscribe or unsubscribe from the callback.
func (n *Notifier) Notify(sessionID string, view *dto.View) {
	n.mu.RLock()
	subs := n.sessions[sessionID]
	n.mu.RUnlock()
	if subs == nil {
		return
	}

	subs.deliver.Lock()
	defer subs.deliver.Unlock()

	if view.Version <= subs.delivered {
		return
	}
	subs.delivered = view.Version

	for _, l := range n.snapshot(subs) {
		l(view)
	}
}

// Drop forgets every listener of a session after telling each one, with a nil
// view, that the session is gone.
func (n *Notifier) Drop(sessionID string) {
	n.mu.Lock()
	subs := n.sessions[sessionID]
	delete(n.sessions, sessionID)
	n.mu.Unlock()
	if subs == nil {
		return
	}

	subs.deliver.Lock()
	defer subs.deliver.Unlock()
	for _, l := range n.snapshot(subs) {
		l(nil)
	}
}

func (n *Notifier) snapshot(subs *subscribers) []Listener {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Listener, 0, len(subs.listeners))
	for _, l := range subs.listeners {
		out = append(out, l)
	}
	return out
}
