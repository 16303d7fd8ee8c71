package money

import "sync"

// Subscription identifies a callback registered with a [Notifier].
// The zero value never identifies a registered callback.
type Subscription uint64

// Notifier is a list of zero-argument callbacks that are invoked
// synchronously, in subscription order, each time [Notifier.Notify] is called.
// The zero value is an empty notifier ready to use.
// Notifier is safe for concurrent use by multiple goroutines.
type Notifier struct {
	mu   sync.Mutex
	last Subscription
	subs []subscriber
}

type subscriber struct {
	id Subscription
	fn func()
}

// Subscribe registers fn and returns a handle for [Notifier.Unsubscribe].
func (n *Notifier) Subscribe(fn func()) Subscription {
	if fn == nil {
		invalidArgument("nil callback")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last++
	n.subs = append(n.subs, subscriber{id: n.last, fn: fn})
	return n.last
}

// Unsubscribe removes the callback registered under s.
// It returns false if s is not registered.
// A notification already in progress still reaches the removed callback.
func (n *Notifier) Unsubscribe(s Subscription) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, sub := range n.subs {
		if sub.id == s {
			subs := make([]subscriber, 0, len(n.subs)-1)
			subs = append(subs, n.subs[:i]...)
			n.subs = append(subs, n.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered callbacks.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// Notify invokes every registered callback on the calling goroutine.
// The list is snapshotted first and no lock is held while callbacks run,
// so a callback may subscribe, unsubscribe or notify again.
func (n *Notifier) Notify() {
	n.mu.Lock()
	subs := n.subs
	n.mu.Unlock()
	for _, sub := range subs {
		sub.fn()
	}
}
