// Package session keeps the cached signed-in identity of an identity gateway and
// fans session changes out to auth state listeners.
package session

import (
	"sort"
	"sync"

	"authkit/internal/domain/entity"
	"authkit/internal/domain/service"
)

type delivery struct {
	// target is the only listener to notify; 0 broadcasts to every listener registered up to maxID.
	target   uint64
	maxID    uint64
	identity *entity.Identity
}

// Notifier delivers auth state notifications in order from one dispatcher goroutine.
type Notifier struct {
	mu        sync.Mutex
	listeners map[uint64]service.AuthStateListener
	nextID    uint64
	queue     []delivery

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewNotifier starts the dispatcher. Close stops it.
func NewNotifier() *Notifier {
	n := &Notifier{
		listeners: make(map[uint64]service.AuthStateListener),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	go n.loop()

	return n
}

// Subscribe registers listener and queues one delivery of current for it alone.
func (n *Notifier) Subscribe(listener service.AuthStateListener, current *entity.Identity) service.Unsubscribe {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.listeners[id] = listener
	n.queue = append(n.queue, delivery{target: id, identity: current.Clone()})
	n.mu.Unlock()
	n.signal()

	var once sync.Once

	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

// Publish queues identity for every listener registered so far.
func (n *Notifier) Publish(identity *entity.Identity) {
	n.mu.Lock()
	n.queue = append(n.queue, delivery{maxID: n.nextID, identity: identity.Clone()})
	n.mu.Unlock()
	n.signal()
}

// Close stops the dispatcher; queued notifications are dropped.
func (n *Notifier) Close() {
	n.closeOnce.Do(func() {
		close(n.done)
	})
}

func (n *Notifier) signal() {
	select {
	case n.wake <- struct{}{}:
	default:
	}
}

func (n *Notifier) loop() {
	for {
		select {
		case <-n.done:
			return
		case <-n.wake:
		}

		for {
			next, ok := n.pop()
			if !ok {
				break
			}

			for _, listener := range n.recipients(next) {
				select {
				case <-n.done:
					return
				default:
				}
				listener(next.identity.Clone())
			}
		}
	}
}

func (n *Notifier) pop() (delivery, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.queue) == 0 {
		return delivery{}, false
	}
	next := n.queue[0]
	n.queue = n.queue[1:]

	return next, true
}

// recipients resolves listeners at dispatch time so an unsubscribed listener is skipped.
func (n *Notifier) recipients(d delivery) []service.AuthStateListener {
	n.mu.Lock()
	defer n.mu.Unlock()

	if d.target != 0 {
		if listener, ok := n.listeners[d.target]; ok {
			return []service.AuthStateListener{listener}
		}

		return nil
	}

	ids := make([]uint64, 0, len(n.listeners))
	for id := range n.listeners {
		if id <= d.maxID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	recipients := make([]service.AuthStateListener, 0, len(ids))
	for _, id := range ids {
		recipients = append(recipients, n.listeners[id])
	}

	return recipients
}
